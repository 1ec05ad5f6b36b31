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


package candidex

import (
	"context"
	"io"
	"log/slog"

	"github.com/sourcehire/candidex/ai"
	"github.com/sourcehire/candidex/ai/openai"
	"github.com/sourcehire/candidex/index"
	"github.com/sourcehire/candidex/ingestion"
	"github.com/sourcehire/candidex/lifecycle"
	"github.com/sourcehire/candidex/reindex"
	"github.com/sourcehire/candidex/search"
	"github.com/sourcehire/candidex/storage"
	"github.com/sourcehire/candidex/storage/badger"
)

// Engine bundles the record store, the vector index, and the embedding
// provider into one handle. It is the intended entry point for
// applications embedding candidex as a library.
type Engine struct {
	backend   *badger.Backend
	repo      storage.CandidateRepository
	idx       *index.Index
	lifecycle *lifecycle.Manager
	provider  ai.AIProvider
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig     *ai.Config
	snapshotPath string
	inMemory     bool
	skipLoad     bool
}

// WithAIConfig overrides the default embedding service configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithSnapshotPath overrides where the index snapshot is stored.
// Default is <dataDir>/index.snapshot.
func WithSnapshotPath(path string) EngineOption {
	return func(o *engineOptions) {
		o.snapshotPath = path
	}
}

// WithInMemoryStore keeps the record store in memory. Intended for tests
// and experiments; the snapshot file is still honored if one exists.
func WithInMemoryStore() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithoutSnapshotLoad skips restoring the index snapshot at startup.
// Use before a reindex run, when the snapshot is known to be stale.
func WithoutSnapshotLoad() EngineOption {
	return func(o *engineOptions) {
		o.skipLoad = true
	}
}

// NewEngine opens the record store under dataDir, restores the index
// snapshot when one exists, and connects the embedding provider.
func NewEngine(dataDir string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig:     ai.DefaultConfig(),
		snapshotPath: dataDir + "/index.snapshot",
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(dataDir, options.inMemory)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewCandidateRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	idx := index.New()

	manager, err := lifecycle.NewManager(repo, idx, options.snapshotPath)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	if !options.skipLoad {
		if err := manager.Load(context.Background()); err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	return &Engine{
		backend:   backend,
		repo:      repo,
		idx:       idx,
		lifecycle: manager,
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

// Close persists the index snapshot and releases all resources.
func (e *Engine) Close() error {
	if err := e.lifecycle.Persist(context.Background()); err != nil {
		e.logger.Error("error persisting index snapshot", "err", err)
	}

	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}

	if err := e.repo.Close(); err != nil {
		e.logger.Error("error closing candidate repository", "err", err)
		return err
	}

	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Repository returns the candidate record store.
func (e *Engine) Repository() storage.CandidateRepository {
	return e.repo
}

// Index returns the in-memory vector index.
func (e *Engine) Index() *index.Index {
	return e.idx
}

// Lifecycle returns the snapshot and verification manager.
func (e *Engine) Lifecycle() *lifecycle.Manager {
	return e.lifecycle
}

// NewSearcher creates a searcher over this engine's store and index.
func (e *Engine) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(e.repo, e.idx, e.provider, opts...)
}

// NewIngestionPipeline creates an ingestion pipeline over this engine's
// store and index.
func (e *Engine) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(e.repo, e.idx, e.provider, opts...)
}

// NewReindexer creates a reindexer that rebuilds this engine's index
// from the record store.
func (e *Engine) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(e.repo, e.idx, e.provider.Embedder(), config, progress)
}

// Clear removes every candidate record and empties the index.
func (e *Engine) Clear(ctx context.Context) error {
	if err := e.repo.DeleteAll(ctx); err != nil {
		return err
	}
	e.idx.RemoveAll()
	return nil
}
