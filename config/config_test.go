package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "candidex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
embedding:
  host: http://embed:9000/v1
  model: text-embedding-3-small
  request_timeout_sec: 10
storage:
  data_dir: /var/lib/candidex
search:
  overfetch_factor: 5
ingestion:
  pool_size: 4
logging:
  level: debug
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://embed:9000/v1", cfg.Embedding.Host)
		assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
		assert.Equal(t, 10, cfg.Embedding.RequestTimeoutSec)
		assert.Equal(t, "/var/lib/candidex", cfg.Storage.DataDir)
		assert.Equal(t, filepath.Join("/var/lib/candidex", "index.snapshot"), cfg.Storage.SnapshotPath)
		assert.Equal(t, 5, cfg.Search.OverfetchFactor)
		assert.Equal(t, 4, cfg.Ingestion.PoolSize)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty config gets defaults", func(t *testing.T) {
		path := writeConfig(t, "{}")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:11434/v1", cfg.Embedding.Host)
		assert.Equal(t, "embeddinggemma", cfg.Embedding.Model)
		assert.Equal(t, 30, cfg.Embedding.RequestTimeoutSec)
		assert.Equal(t, "data", cfg.Storage.DataDir)
		assert.Equal(t, 3, cfg.Search.OverfetchFactor)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("CANDIDEX_EMBED_HOST", "http://ollama:11434/v1")
		path := writeConfig(t, `
embedding:
  host: ${CANDIDEX_EMBED_HOST}
  model: ${CANDIDEX_EMBED_MODEL:-embeddinggemma}
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://ollama:11434/v1", cfg.Embedding.Host)
		assert.Equal(t, "embeddinggemma", cfg.Embedding.Model)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "embedding: [")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: verbose\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "logging.level")
	})

	t.Run("negative pool size", func(t *testing.T) {
		path := writeConfig(t, "ingestion:\n  pool_size: -1\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "pool_size")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "embeddinggemma", cfg.Embedding.Model)
}
