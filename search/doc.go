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


// Package search provides the candidate ranking pipeline.
//
// The Searcher type implements a multi-stage ranking algorithm that combines:
//   - Semantic search using vector embeddings
//   - Location filtering and boosting from parsed contact data
//   - Experience boosting against the requested years
//
// The index pool is over-fetched relative to the requested limit so that
// location filtering still leaves enough survivors. Results are ordered by
// boosted score descending with id ascending on ties, so repeated queries
// over an unchanged corpus return identical rankings.
package search
