package index

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sourcehire/candidex/core"
)

var (
	// ErrDimensionMismatch is returned when an inserted vector does not
	// match the dimension established by the first insertion.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmptyVector is returned when an inserted vector has no
	// magnitude and therefore cannot participate in cosine search.
	ErrEmptyVector = errors.New("vector is empty or zero")
)

// Match is one nearest-neighbor hit from a Search call.
type Match struct {
	Id         core.ID
	Similarity float32 // cosine of unit vectors, clamped to [0, 1]
}

// Index is an in-memory vector index over candidate embeddings.
//
// Vectors are normalized to unit length at insertion, so search reduces
// to a dot product. Searches run concurrently under a read lock;
// mutations (Insert, Remove, RemoveAll, Replace) are exclusive.
type Index struct {
	mu        sync.RWMutex
	vectors   map[core.ID][]float32
	dimension int // 0 until the first insertion fixes it
}

// New creates an empty index. The vector dimension is fixed by the
// first Insert or Replace.
func New() *Index {
	return &Index{vectors: make(map[core.ID][]float32)}
}

// Insert adds or replaces the vector for id. Idempotent per id: a second
// insertion for the same id fully replaces the first. Vectors whose
// dimension disagrees with the index are rejected.
func (x *Index) Insert(id core.ID, vector []float32) error {
	normalized := NormalizeVector(vector)
	if !hasMagnitude(normalized) {
		return ErrEmptyVector
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.dimension == 0 {
		x.dimension = len(normalized)
	} else if len(normalized) != x.dimension {
		return fmt.Errorf("%w: index holds %d-dimensional vectors, got %d",
			ErrDimensionMismatch, x.dimension, len(normalized))
	}

	x.vectors[id] = normalized
	return nil
}

// Remove deletes the vector for id, if present. Used to roll back a
// paired write when the record store side fails.
func (x *Index) Remove(id core.ID) {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.vectors, id)
}

// RemoveAll clears the index entirely. There are no partial clears.
func (x *Index) RemoveAll() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.vectors = make(map[core.ID][]float32)
	x.dimension = 0
}

// Size returns the number of stored vectors.
func (x *Index) Size() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.vectors)
}

// Dimension returns the fixed vector dimension, or 0 if the index is empty.
func (x *Index) Dimension() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.dimension
}

// IDs returns the ids of all stored vectors in ascending order.
func (x *Index) IDs() []core.ID {
	x.mu.RLock()
	defer x.mu.RUnlock()

	ids := make([]core.ID, 0, len(x.vectors))
	for id := range x.vectors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Search returns up to k nearest neighbors of the query vector, ordered
// by similarity descending with ties broken by id ascending for
// determinism. k larger than the index size returns everything; k <= 0
// returns nothing. The query vector is normalized internally.
func (x *Index) Search(vector []float32, k int) []Match {
	if k <= 0 {
		return nil
	}

	query := NormalizeVector(vector)

	x.mu.RLock()
	matches := make([]Match, 0, len(x.vectors))
	for id, stored := range x.vectors {
		matches = append(matches, Match{Id: id, Similarity: similarity(query, stored)})
	}
	x.mu.RUnlock()

	slices.SortFunc(matches, func(a, b Match) int {
		if a.Similarity > b.Similarity {
			return -1
		}
		if a.Similarity < b.Similarity {
			return 1
		}
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// Entries returns a snapshot of the index contents ordered by id, for
// persistence. Vectors are copied so the snapshot stays stable while
// the index keeps mutating.
func (x *Index) Entries() []core.IndexEntry {
	x.mu.RLock()
	defer x.mu.RUnlock()

	entries := make([]core.IndexEntry, 0, len(x.vectors))
	for id, vector := range x.vectors {
		entries = append(entries, core.IndexEntry{Id: id, Vector: slices.Clone(vector)})
	}
	slices.SortFunc(entries, func(a, b core.IndexEntry) int {
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})
	return entries
}

// Replace atomically swaps the full index contents with the given
// entries. Callers build the entries off-lock (e.g. while decoding a
// snapshot); the swap itself is the only exclusive section, so a failed
// load never leaves the index partially overwritten.
func (x *Index) Replace(entries []core.IndexEntry) error {
	staged := make(map[core.ID][]float32, len(entries))
	dimension := 0
	for _, entry := range entries {
		normalized := NormalizeVector(entry.Vector)
		if !hasMagnitude(normalized) {
			return fmt.Errorf("%w: entry %d", ErrEmptyVector, entry.Id)
		}
		if dimension == 0 {
			dimension = len(normalized)
		} else if len(normalized) != dimension {
			return fmt.Errorf("%w: entry %d has dimension %d, want %d",
				ErrDimensionMismatch, entry.Id, len(normalized), dimension)
		}
		staged[entry.Id] = normalized
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.vectors = staged
	x.dimension = dimension
	return nil
}

func hasMagnitude(v []float32) bool {
	for _, val := range v {
		if val != 0 {
			return true
		}
	}
	return false
}
