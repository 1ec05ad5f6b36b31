package candidex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcehire/candidex/core"
)

func TestNewEngine(t *testing.T) {
	t.Run("create new engine", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		engine, err := NewEngine(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, engine)
		defer engine.Close()

		assert.NotNil(t, engine.Repository())
		assert.NotNil(t, engine.Index())
		assert.NotNil(t, engine.Lifecycle())
		assert.NotNil(t, engine.backend)
		assert.NotNil(t, engine.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0644))

		engine, err := NewEngine(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, engine)
	})
}

func TestEngine_Close(t *testing.T) {
	tmpDir := t.TempDir()
	engine, err := NewEngine(tmpDir)
	require.NoError(t, err)

	assert.NoError(t, engine.Close())
}

func TestEngine_SnapshotAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	engine, err := NewEngine(tmpDir)
	require.NoError(t, err)

	record, err := engine.Repository().PutCandidate(ctx, &core.CandidateRecord{
		Name:          "Asha",
		EmbeddingText: "asha",
	})
	require.NoError(t, err)
	require.NoError(t, engine.Index().Insert(record.Id, []float32{1, 0, 0}))

	// Close persists the snapshot.
	require.NoError(t, engine.Close())

	reopened, err := NewEngine(tmpDir)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, []core.ID{record.Id}, reopened.Index().IDs())

	report, err := reopened.Lifecycle().Verify(ctx)
	require.NoError(t, err)
	assert.True(t, report.Clean())
}

func TestEngine_Clear(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(t.TempDir())
	require.NoError(t, err)
	defer engine.Close()

	record, err := engine.Repository().PutCandidate(ctx, &core.CandidateRecord{
		Name:          "Ravi",
		EmbeddingText: "ravi",
	})
	require.NoError(t, err)
	require.NoError(t, engine.Index().Insert(record.Id, []float32{1, 0, 0}))

	require.NoError(t, engine.Clear(ctx))

	count, err := engine.Repository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, engine.Index().Size())
}

func TestEngine_FactoryMethods(t *testing.T) {
	engine, err := NewEngine(t.TempDir())
	require.NoError(t, err)
	defer engine.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := engine.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := engine.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})

	t.Run("can create reindexer", func(t *testing.T) {
		r := engine.NewReindexer(nil, os.Stderr)
		require.NotNil(t, r)
	})
}
