package storage

import (
	"context"

	"github.com/sourcehire/candidex/core"
)

// CandidateRepository provides operations for managing candidate records.
// Implementations must be thread-safe and support concurrent access.
type CandidateRepository interface {
	// PutCandidate stores a candidate record, fully replacing any prior
	// record under the same ID (no field-level merge). Records with ID=0
	// get a new ID from the store's sequence. The fingerprint index is
	// updated alongside the record. Returns the record with ID and
	// timestamps populated.
	PutCandidate(ctx context.Context, record *core.CandidateRecord) (*core.CandidateRecord, error)

	// GetCandidate retrieves a single candidate by ID.
	// Returns ErrNotFound if the candidate doesn't exist.
	GetCandidate(ctx context.Context, id core.ID) (*core.CandidateRecord, error)

	// GetCandidates retrieves multiple candidates by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetCandidates(ctx context.Context, ids ...core.ID) ([]*core.CandidateRecord, error)

	// DeleteCandidate removes a candidate and its fingerprint index entry.
	// Returns ErrNotFound if the candidate doesn't exist.
	DeleteCandidate(ctx context.Context, id core.ID) error

	// DeleteAll removes every candidate record and fingerprint entry.
	// The ID sequence is not reset, so deleted IDs are never reused.
	DeleteAll(ctx context.Context) error

	// AllIDs returns the IDs of all stored candidates in ascending order.
	AllIDs(ctx context.Context) ([]core.ID, error)

	// Count returns the number of stored candidate records.
	Count(ctx context.Context) (int, error)

	// FindByFingerprint returns the ID of the candidate whose embedding
	// text hashes to the given fingerprint, or ErrNotFound.
	FindByFingerprint(ctx context.Context, fp core.Fingerprint) (core.ID, error)

	// NextID reserves a fresh ID from the store's sequence without
	// writing a record. Used when a caller must know the ID before the
	// record itself is stored.
	NextID(ctx context.Context) (core.ID, error)

	// Close releases the repository's resources.
	Close() error
}
