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

import "fmt"

// ValidateCandidateRecord validates a CandidateRecord according to
// domain rules.
//
// Validation rules:
//   - EmbeddingText must not be empty (the vector is derived from it)
//
// NOT validated:
//   - ID (0 is valid until the database sequence assigns one)
//   - ContactJSON (loose data; malformed content is treated as absent,
//     never rejected)
//   - ExperienceYears (0 means unknown)
func ValidateCandidateRecord(record *CandidateRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidCandidate)
	}

	if record.EmbeddingText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyEmbeddingText)
	}

	return nil
}

// ValidateQuery validates a Query according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Limit must not be negative (0 is valid and yields empty results)
func ValidateQuery(query *Query) error {
	if query == nil {
		return fmt.Errorf("%w: query is nil", ErrInvalidQuery)
	}

	if query.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrEmptyQueryText)
	}

	if query.Limit < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrNegativeLimit)
	}

	return nil
}
