// Package index provides the in-memory vector index for candidate
// embeddings.
//
// The index stores one unit-length vector per candidate id and answers
// nearest-neighbor queries by brute-force cosine similarity, which is
// exact and fast enough at the scale of a single recruiter's candidate
// pool. Similarity is reported on [0, 1] (cosine clamped at zero), a
// monotonic mapping of cosine distance, so downstream additive boosts
// keep the ordering meaningful.
package index
