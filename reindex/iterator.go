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


package reindex

import (
	"context"

	"github.com/sourcehire/candidex/core"
	"github.com/sourcehire/candidex/storage"
)

const (
	// DefaultBatchSize is the default number of records to fetch in each batch
	DefaultBatchSize = 100
)

// RecordIterator iterates over all candidate records in batches.
type RecordIterator struct {
	repo      storage.CandidateRepository
	batchSize int
}

// NewRecordIterator creates a new record iterator.
// batchSize: number of records to fetch in each batch (must be > 0)
func NewRecordIterator(repo storage.CandidateRepository, batchSize int) *RecordIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &RecordIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all candidate records in ID order, calling fn
// for each batch. Iteration stops on the first error from fn or when
// all records are processed. Context cancellation is checked between
// batches.
func (it *RecordIterator) ForEach(ctx context.Context, fn func([]*core.CandidateRecord) error) error {
	ids, err := it.repo.AllIDs(ctx)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	for i := 0; i < len(ids); i += it.batchSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := min(i+it.batchSize, len(ids))

		records, err := it.repo.GetCandidates(ctx, ids[i:end]...)
		if err != nil {
			return err
		}

		if err := fn(records); err != nil {
			return err
		}
	}

	return nil
}
