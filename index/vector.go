package index

import "math"

// NormalizeVector normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	// Calculate magnitude
	var magnitude float32
	for _, val := range v {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	// Can't normalize zero vector
	if magnitude == 0 {
		result := make([]float32, len(v))
		return result
	}

	// Normalize
	result := make([]float32, len(v))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}

// dotProduct calculates the dot product of two vectors.
// For unit vectors this equals their cosine similarity.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// similarity maps the cosine of two unit vectors onto [0, 1].
// The mapping is monotonic: a smaller cosine distance always yields a
// larger similarity, so additive boosts downstream preserve ordering.
func similarity(a, b []float32) float32 {
	cos := dotProduct(a, b)
	if cos < 0 {
		return 0
	}
	if cos > 1 {
		return 1
	}
	return cos
}
