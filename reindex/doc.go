// Package reindex provides functionality for rebuilding the vector index
// from stored candidate records.
//
// This is used after an embedding model change or when the index snapshot
// is lost. The package supports batch processing, progress tracking, and
// retry logic with exponential backoff. The rebuilt vectors replace the
// index contents in a single atomic swap.
package reindex
