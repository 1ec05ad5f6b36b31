package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for candidates.
// IDs are assigned from a database sequence at ingestion and are never
// reused, even after the candidate is deleted.
type ID uint64

// Fingerprint is a content-based hash of a candidate's embedding text.
// It is used to map a re-ingested identical resume back to its existing
// candidate instead of creating a duplicate.
type Fingerprint uint64

// FingerprintFromContent computes a deterministic fingerprint from text
// using BLAKE2b hashing. Identical content always produces the same value.
func FingerprintFromContent(text string) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// CandidateRecord is the stored form of a candidate.
// The embedding vector itself lives in the vector index, not here;
// EmbeddingText is the exact text the vector was produced from and is
// immutable for as long as that vector is in the index.
type CandidateRecord struct {
	Id              ID
	Name            string
	Skills          []string
	ExperienceYears float32 // 0 = unknown
	Education       string
	Summary         string
	EmbeddingText   string
	ContactJSON     []byte // raw, loosely structured; parsed tolerantly at query time
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// Query describes a single candidate search request.
// Queries are constructed per request and never persisted.
type Query struct {
	Text            string  // required free-text description
	Location        string  // optional filter/boost hint
	ExperienceYears float32 // optional, 0 = unset
	Limit           int
}

// ScoredResult is one ranked candidate from a search.
//
// BaseSimilarity is the cosine similarity of unit vectors clamped to
// [0, 1]. BoostedScore adds fixed rule boosts on top and is deliberately
// not clamped, so it ranges over [0, 1.3] with the default rules.
type ScoredResult struct {
	CandidateID    ID
	BaseSimilarity float32
	BoostedScore   float32
	Rank           int // 1-based final position
}

// SearchStats reports per-query counters for anomalies absorbed by the
// ranking pipeline.
type SearchStats struct {
	TotalConsidered    int // candidates retrieved from the index pool
	ExcludedByLocation int
	ResolutionFailures int // orphaned vectors skipped during record resolution
}

// VerificationReport describes the consistency of the vector index
// against the record store. Produced by a read-only check; never the
// result of a mutation.
type VerificationReport struct {
	VectorCount     int
	RecordCount     int
	OrphanedVectors []ID // in the index, missing from the store
	OrphanedRecords []ID // in the store, missing from the index
}

// Clean reports whether the index and store are fully consistent.
func (r *VerificationReport) Clean() bool {
	return len(r.OrphanedVectors) == 0 && len(r.OrphanedRecords) == 0
}

// IndexEntry is one candidate vector in a persisted index snapshot.
type IndexEntry struct {
	Id     ID
	Vector []float32
}

// SnapshotFormatVersion is the current on-disk format of IndexSnapshot.
// Load rejects snapshots written with a different version.
const SnapshotFormatVersion uint32 = 1

// IndexSnapshot is the persisted form of the vector index.
type IndexSnapshot struct {
	Version   uint32
	Dimension int
	Entries   []IndexEntry
}
