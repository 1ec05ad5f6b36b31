package ingestion

import "errors"

var (
	// ErrCandidateRepositoryRequired is returned when a candidate repository is not provided.
	ErrCandidateRepositoryRequired = errors.New("candidate repository required")

	// ErrIndexRequired is returned when a vector index is not provided.
	ErrIndexRequired = errors.New("vector index required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)
