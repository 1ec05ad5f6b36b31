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


package core

import "errors"

// Error taxonomy shared across packages. Per-candidate anomalies
// (orphaned vectors, unparseable contact data) are intentionally absent:
// those are absorbed inside the ranking pipeline as counters, never
// surfaced as errors.
var (
	// ErrEmbedding indicates an embedding provider failure. Fatal to the
	// single operation that needed the vector, never to the process.
	ErrEmbedding = errors.New("embedding failed")

	// ErrSearch indicates a query-path failure that aborts one search.
	ErrSearch = errors.New("search failed")

	// ErrPersistence indicates a snapshot persist/load failure. A failed
	// load leaves the in-memory index untouched.
	ErrPersistence = errors.New("persistence failed")

	// ErrSnapshotVersion indicates a snapshot with an incompatible
	// on-disk format version.
	ErrSnapshotVersion = errors.New("incompatible snapshot version")

	// ErrInvalidCandidate indicates a CandidateRecord failed validation.
	ErrInvalidCandidate = errors.New("invalid candidate record")

	// ErrInvalidQuery indicates a Query failed validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmptyQueryText indicates the query Text field is empty.
	ErrEmptyQueryText = errors.New("query text cannot be empty")

	// ErrEmptyEmbeddingText indicates the candidate has no text to embed.
	ErrEmptyEmbeddingText = errors.New("embedding text cannot be empty")

	// ErrNegativeLimit indicates a negative result limit.
	ErrNegativeLimit = errors.New("limit cannot be negative")
)
