package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/sourcehire/candidex/ai"
	"github.com/sourcehire/candidex/core"
	"github.com/sourcehire/candidex/index"
	"github.com/sourcehire/candidex/storage"
)

const (
	// LocationBoost is added to the base similarity when the candidate's
	// recorded location matches the query location.
	LocationBoost = 0.2

	// ExperienceBoost is added when the candidate's recorded experience
	// meets or exceeds the requested years.
	ExperienceBoost = 0.1

	// DefaultOverfetchFactor widens the index pool so that candidates
	// eliminated by the location filter still leave enough survivors to
	// fill the requested limit.
	DefaultOverfetchFactor = 3
)

// Searcher ranks stored candidates against a free-text query, combining
// vector similarity with rule-based location and experience adjustments.
type Searcher struct {
	repository storage.CandidateRepository
	idx        *index.Index
	embedder   ai.Embedder
	overfetch  int
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithOverfetchFactor sets how many times the requested limit is fetched
// from the index before filtering. Must be at least 1.
func WithOverfetchFactor(factor int) Option {
	return func(s *Searcher) error {
		if factor < 1 {
			return ErrInvalidOverfetchFactor
		}
		s.overfetch = factor
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	repository storage.CandidateRepository,
	idx *index.Index,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if repository == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		repository: repository,
		idx:        idx,
		embedder:   provider.Embedder(),
		overfetch:  DefaultOverfetchFactor,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search ranks stored candidates against the query.
// Returns up to query.Limit results in rank order plus per-query stats.
func (s *Searcher) Search(ctx context.Context, query *core.Query) ([]*core.ScoredResult, *core.SearchStats, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor ranks stored candidates against the query with monitoring.
// The monitor receives callbacks at each stage of the ranking pipeline.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query *core.Query, monitor SearchMonitor) ([]*core.ScoredResult, *core.SearchStats, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateQuery(query); err != nil {
		return nil, nil, err
	}

	monitor.Start(query)

	stats := &core.SearchStats{}

	// A zero limit is a valid request for nothing.
	if query.Limit == 0 {
		results := []*core.ScoredResult{}
		monitor.Finish(results, stats)
		return results, stats, nil
	}

	embedding, err := s.embedder.EmbedText(ctx, query.Text)
	if err != nil {
		s.logger.Error("error generating embedding for query", "err", err)
		return nil, nil, fmt.Errorf("%w: %w", core.ErrSearch, err)
	}
	monitor.AfterQueryEmbedding(len(embedding))

	// Over-fetch so location filtering still leaves enough survivors.
	matches := s.idx.Search(embedding, query.Limit*s.overfetch)
	stats.TotalConsidered = len(matches)

	ids := make([]core.ID, 0, len(matches))
	similarities := make(map[core.ID]float32, len(matches))
	for _, match := range matches {
		ids = append(ids, match.Id)
		similarities[match.Id] = match.Similarity
	}
	monitor.AfterIndexSearch(ids)

	if len(ids) == 0 {
		results := []*core.ScoredResult{}
		monitor.Finish(results, stats)
		return results, stats, nil
	}

	records, err := s.repository.GetCandidates(ctx, ids...)
	if err != nil {
		s.logger.Error("error retrieving candidate records", "count", len(ids), "err", err)
		return nil, nil, fmt.Errorf("%w: %w", core.ErrSearch, err)
	}

	// Vectors whose record is gone are counted and skipped, never fatal.
	resolved := make(map[core.ID]bool, len(records))
	for _, record := range records {
		resolved[record.Id] = true
	}
	for _, id := range ids {
		if !resolved[id] {
			stats.ResolutionFailures++
			monitor.ResolutionFailure(id)
			s.logger.Warn("index vector has no stored record", "id", id)
		}
	}

	results := make([]*core.ScoredResult, 0, len(records))
	for _, record := range records {
		base := similarities[record.Id]
		boosted := base

		contact := core.ParseContact(record.ContactJSON)

		if query.Location != "" && contact.Location != "" {
			if !matchesLocation(contact.Location, query.Location) {
				stats.ExcludedByLocation++
				monitor.LocationExcluded(record)
				continue
			}
			boosted += LocationBoost
			monitor.LocationBoosted(record)
		}

		if query.ExperienceYears > 0 && record.ExperienceYears >= query.ExperienceYears {
			boosted += ExperienceBoost
			monitor.ExperienceBoosted(record)
		}

		results = append(results, &core.ScoredResult{
			CandidateID:    record.Id,
			BaseSimilarity: base,
			BoostedScore:   boosted,
		})
	}

	// Boosted score descending, id ascending on ties, for determinism.
	slices.SortFunc(results, func(a, b *core.ScoredResult) int {
		if a.BoostedScore > b.BoostedScore {
			return -1
		}
		if a.BoostedScore < b.BoostedScore {
			return 1
		}
		if a.CandidateID < b.CandidateID {
			return -1
		}
		if a.CandidateID > b.CandidateID {
			return 1
		}
		return 0
	})

	if len(results) > query.Limit {
		results = results[:query.Limit]
	}
	for i, result := range results {
		result.Rank = i + 1
	}

	monitor.Finish(results, stats)
	return results, stats, nil
}
