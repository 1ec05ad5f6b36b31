package search

import "github.com/sourcehire/candidex/core"

// SearchMonitor provides hooks to observe the ranking pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query *core.Query)
	AfterQueryEmbedding(dimension int)
	AfterIndexSearch(ids []core.ID)
	ResolutionFailure(id core.ID)
	LocationExcluded(record *core.CandidateRecord)
	LocationBoosted(record *core.CandidateRecord)
	ExperienceBoosted(record *core.CandidateRecord)
	Finish(results []*core.ScoredResult, stats *core.SearchStats)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Query)                                   {}
func (n *noopMonitor) AfterQueryEmbedding(_ int)                             {}
func (n *noopMonitor) AfterIndexSearch(_ []core.ID)                          {}
func (n *noopMonitor) ResolutionFailure(_ core.ID)                           {}
func (n *noopMonitor) LocationExcluded(_ *core.CandidateRecord)              {}
func (n *noopMonitor) LocationBoosted(_ *core.CandidateRecord)               {}
func (n *noopMonitor) ExperienceBoosted(_ *core.CandidateRecord)             {}
func (n *noopMonitor) Finish(_ []*core.ScoredResult, _ *core.SearchStats)    {}
