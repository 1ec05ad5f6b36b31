// Package ingestion provides pipeline orchestration for processing resumes.
//
// The Pipeline type manages the ingestion workflow for candidates, including:
//   - Building embedding text from parsed resume fields
//   - Generating embeddings concurrently on a worker pool
//   - Writing the vector and the record as a pair, vector first
//
// Re-ingesting a resume whose embedding text is unchanged maps back to
// the existing candidate via its content fingerprint instead of creating
// a duplicate. Per-candidate failures are counted and skipped; they never
// fail the batch.
package ingestion
