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


package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sourcehire/candidex/ai"
	"github.com/sourcehire/candidex/core"
	"github.com/sourcehire/candidex/index"
	"github.com/sourcehire/candidex/storage"
)

// Config holds configuration for the reindexing operation.
type Config struct {
	// BatchSize is the number of records to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer rebuilds the vector index from stored candidate records.
// Every record's embedding text is re-embedded with the configured
// embedder; the new vectors replace the index contents atomically at
// the end, so a failed run leaves the old index untouched.
type Reindexer struct {
	repo     storage.CandidateRepository
	idx      *index.Index
	embedder ai.Embedder
	config   *Config
	progress io.Writer
	iterator *RecordIterator
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(repo storage.CandidateRepository, idx *index.Index, embedder ai.Embedder, config *Config, progress io.Writer) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}

	return &Reindexer{
		repo:     repo,
		idx:      idx,
		embedder: embedder,
		config:   config,
		progress: progress,
		iterator: NewRecordIterator(repo, config.BatchSize),
	}
}

// Run executes the reindexing operation. All candidate records are
// re-embedded and the index is rebuilt from the results.
// Progress is reported to the configured writer.
func (r *Reindexer) Run(ctx context.Context) error {
	totalRecords, err := r.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if totalRecords == 0 {
		fmt.Fprintf(r.progress, "No candidates found in database (0 records)\n")
		r.idx.RemoveAll()
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d candidates (batch size: %d)\n",
		totalRecords, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, totalRecords, r.config.ReportInterval)
	tracker.Start()

	entries := make([]core.IndexEntry, 0, totalRecords)
	processed := 0

	err = r.iterator.ForEach(ctx, func(records []*core.CandidateRecord) error {
		batch, err := r.embedBatch(ctx, records)
		if err != nil {
			return err
		}

		entries = append(entries, batch...)
		processed += len(records)
		tracker.Update(processed)

		return nil
	})
	if err != nil {
		return err
	}

	// Swap the rebuilt contents in one step.
	if err := r.idx.Replace(entries); err != nil {
		return fmt.Errorf("failed to swap index contents: %w", err)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Processed %d candidates in %v (%.1f candidates/sec)\n",
		totalRecords, elapsed.Round(time.Second), float64(totalRecords)/elapsed.Seconds())

	return nil
}

// embedBatch embeds one batch of records with retry and returns the
// resulting index entries.
func (r *Reindexer) embedBatch(ctx context.Context, records []*core.CandidateRecord) ([]core.IndexEntry, error) {
	if len(records) == 0 {
		return nil, nil
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.EmbeddingText
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = r.embedder.EmbedTexts(ctx, texts)
		return err
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings after %d attempts: %w", r.config.MaxRetries, err)
	}

	if len(embeddings) != len(records) {
		return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(records), len(embeddings))
	}

	entries := make([]core.IndexEntry, len(records))
	for i, record := range records {
		entries[i] = core.IndexEntry{
			Id:     record.Id,
			Vector: index.NormalizeVector(embeddings[i]),
		}
	}
	return entries, nil
}
