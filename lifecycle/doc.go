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


// Package lifecycle makes the in-memory vector index durable.
//
// The Manager persists the index to a versioned snapshot file, restores
// it at startup, and verifies the index against the record store. Loads
// are staged: the snapshot is fully decoded before the live index is
// swapped, so failures never leave a half-loaded index.
package lifecycle
