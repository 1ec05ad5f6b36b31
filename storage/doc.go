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


// Package storage provides the storage abstraction layer for candidex.
//
// This package defines the repository interface that decouples storage
// implementation from business logic, plus the MUS serialization helpers
// shared by the record store and the index snapshot format.
//
// Public constructors of implementation packages return interface types
// to enforce abstraction:
//
//	repo, err := badger.NewCandidateRepository(backend)  // storage.CandidateRepository
//
// All repository implementations must be thread-safe, and every method
// accepts a context.Context for cancellation.
package storage
