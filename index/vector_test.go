package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVector(t *testing.T) {
	t.Run("normalizes to unit length", func(t *testing.T) {
		v := NormalizeVector([]float32{3, 4})

		var magnitude float64
		for _, val := range v {
			magnitude += float64(val * val)
		}
		assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})

	t.Run("unit vector unchanged", func(t *testing.T) {
		v := NormalizeVector([]float32{1, 0, 0})
		assert.Equal(t, []float32{1, 0, 0}, v)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := NormalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, v)
	})

	t.Run("empty vector", func(t *testing.T) {
		assert.Empty(t, NormalizeVector(nil))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		input := []float32{3, 4}
		NormalizeVector(input)
		assert.Equal(t, []float32{3, 4}, input)
	})
}

func TestSimilarity(t *testing.T) {
	t.Run("identical unit vectors", func(t *testing.T) {
		a := []float32{1, 0}
		assert.InDelta(t, 1.0, similarity(a, a), 1e-6)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, similarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	})

	t.Run("opposed vectors clamp to zero", func(t *testing.T) {
		assert.Equal(t, float32(0), similarity([]float32{1, 0}, []float32{-1, 0}))
	})

	t.Run("monotonic in angle", func(t *testing.T) {
		query := []float32{1, 0}
		near := NormalizeVector([]float32{0.9, 0.1})
		far := NormalizeVector([]float32{0.5, 0.5})

		assert.Greater(t, similarity(query, near), similarity(query, far))
	})
}
