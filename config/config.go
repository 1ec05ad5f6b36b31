// Copyright 2026 Sourcehire Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the candidex configuration.
type Config struct {
	Embedding EmbeddingConfig `yaml:"embedding"`
	Storage   StorageConfig   `yaml:"storage"`
	Search    SearchConfig    `yaml:"search"`
	Ingestion IngestionConfig `yaml:"ingestion"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// EmbeddingConfig holds embedding service settings.
type EmbeddingConfig struct {
	Host              string `yaml:"host"`
	Model             string `yaml:"model"`
	RequestTimeoutSec int    `yaml:"request_timeout_sec"`
}

// StorageConfig holds record store and snapshot settings.
type StorageConfig struct {
	DataDir      string `yaml:"data_dir"`
	SnapshotPath string `yaml:"snapshot_path"` // default: <data_dir>/index.snapshot
}

// SearchConfig holds ranking pipeline settings.
type SearchConfig struct {
	OverfetchFactor int `yaml:"overfetch_factor"`
}

// IngestionConfig holds ingestion pipeline settings.
type IngestionConfig struct {
	PoolSize int `yaml:"pool_size"` // 0 = derived from CPU count
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
}

// Load reads configuration from a YAML file.
// Environment variables of the form ${VAR} or ${VAR:-default} are
// substituted before parsing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Embedding.Host == "" {
		c.Embedding.Host = "http://localhost:11434/v1"
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "embeddinggemma"
	}
	if c.Embedding.RequestTimeoutSec <= 0 {
		c.Embedding.RequestTimeoutSec = 30
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Storage.SnapshotPath == "" {
		c.Storage.SnapshotPath = filepath.Join(c.Storage.DataDir, "index.snapshot")
	}
	if c.Search.OverfetchFactor <= 0 {
		c.Search.OverfetchFactor = 3
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Search.OverfetchFactor < 1 {
		return fmt.Errorf("search.overfetch_factor must be at least 1, got %d", c.Search.OverfetchFactor)
	}
	if c.Ingestion.PoolSize < 0 {
		return fmt.Errorf("ingestion.pool_size must not be negative, got %d", c.Ingestion.PoolSize)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
