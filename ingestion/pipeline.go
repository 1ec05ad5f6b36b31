package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcehire/candidex/ai"
	"github.com/sourcehire/candidex/core"
	"github.com/sourcehire/candidex/index"
	"github.com/sourcehire/candidex/storage"
)

// embedBatchSize is how many embedding texts go into one batched API call.
const embedBatchSize = 16

// Pipeline orchestrates the ingestion of candidate resumes.
// Embeddings are generated concurrently on a worker pool; the paired
// index and store writes run sequentially in submission order.
type Pipeline struct {
	repository    storage.CandidateRepository
	idx           *index.Index
	embedder      ai.Embedder
	embeddingPool *ants.Pool
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.embeddingPool = embeddingPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	repository storage.CandidateRepository,
	idx *index.Index,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository:    repository,
		idx:           idx,
		embedder:      provider.Embedder(),
		embeddingPool: embeddingPool,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Report summarizes the outcome of one Ingest call.
type Report struct {
	Ingested int // candidates now searchable
	Updated  int // subset of Ingested that replaced an existing candidate
	Failed   int // candidates skipped after an embedding or storage failure
}

// Ingest embeds and stores the given payloads. A candidate whose
// embedding or storage fails is counted in Report.Failed and skipped;
// the rest of the batch proceeds. Re-ingesting a resume with identical
// embedding text updates the existing candidate instead of creating a
// duplicate.
func (p *Pipeline) Ingest(ctx context.Context, payloads []*Payload) (*Report, error) {
	report := &Report{}
	if len(payloads) == 0 {
		return report, nil
	}

	records := make([]*core.CandidateRecord, len(payloads))
	failures := make([]error, len(payloads))
	for i, payload := range payloads {
		record, err := payload.toRecord()
		if err != nil {
			failures[i] = err
			continue
		}
		if err := core.ValidateCandidateRecord(record); err != nil {
			failures[i] = err
			continue
		}
		records[i] = record
	}

	vectors := p.embedAll(ctx, records, failures)

	for i, record := range records {
		if failures[i] != nil {
			p.logger.Warn("skipping candidate", "position", i, "err", failures[i])
			report.Failed++
			continue
		}

		updated, err := p.store(ctx, record, vectors[i])
		if err != nil {
			p.logger.Error("failed to store candidate", "position", i, "err", err)
			report.Failed++
			continue
		}
		report.Ingested++
		if updated {
			report.Updated++
		}
	}

	return report, nil
}

// embedAll generates vectors for all records that survived conversion,
// batching texts and running the batches concurrently on the pool.
// Failures land in the shared failures slice, positionally.
func (p *Pipeline) embedAll(ctx context.Context, records []*core.CandidateRecord, failures []error) [][]float32 {
	vectors := make([][]float32, len(records))

	// Positions of records that still need a vector.
	pending := make([]int, 0, len(records))
	for i, record := range records {
		if failures[i] == nil && record != nil {
			pending = append(pending, i)
		}
	}

	var wg sync.WaitGroup
	for start := 0; start < len(pending); start += embedBatchSize {
		end := min(start+embedBatchSize, len(pending))
		batch := pending[start:end]

		wg.Add(1)
		submitErr := p.embeddingPool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for j, pos := range batch {
				texts[j] = records[pos].EmbeddingText
			}

			embedded, err := p.embedder.EmbedTexts(ctx, texts)
			if err != nil || len(embedded) != len(batch) {
				if err == nil {
					err = errors.New("embedder returned wrong number of vectors")
				}
				for _, pos := range batch {
					failures[pos] = err
				}
				return
			}

			for j, pos := range batch {
				vectors[pos] = embedded[j]
			}
		})
		if submitErr != nil {
			wg.Done()
			for _, pos := range batch {
				failures[pos] = submitErr
			}
		}
	}
	wg.Wait()

	return vectors
}

// store performs the paired write for one candidate: resolve the ID,
// insert the vector, then put the record. The vector goes in first so a
// partial failure leaves an orphaned vector, which search detects and
// skips, rather than a record that silently never matches.
func (p *Pipeline) store(ctx context.Context, record *core.CandidateRecord, vector []float32) (updated bool, err error) {
	fp := core.FingerprintFromContent(record.EmbeddingText)
	existing, err := p.repository.FindByFingerprint(ctx, fp)
	switch {
	case err == nil:
		record.Id = existing
		updated = true
	case errors.Is(err, storage.ErrNotFound):
		record.Id, err = p.repository.NextID(ctx)
		if err != nil {
			return false, err
		}
	default:
		return false, err
	}

	if err := p.idx.Insert(record.Id, vector); err != nil {
		return false, err
	}

	if _, err := p.repository.PutCandidate(ctx, record); err != nil {
		// Roll the vector back so the pair stays consistent.
		if !updated {
			p.idx.Remove(record.Id)
		}
		return false, err
	}

	return updated, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
