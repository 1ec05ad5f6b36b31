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


package storage

import (
	"github.com/sourcehire/candidex/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalCandidateRecord serializes a CandidateRecord to bytes.
func MarshalCandidateRecord(record *core.CandidateRecord) []byte {
	buf := make([]byte, core.CandidateRecordMUS.Size(*record))
	core.CandidateRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalCandidateRecord deserializes a CandidateRecord from bytes.
func UnmarshalCandidateRecord(data []byte) (*core.CandidateRecord, error) {
	record, _, err := core.CandidateRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalIndexSnapshot serializes an IndexSnapshot to bytes.
func MarshalIndexSnapshot(snapshot *core.IndexSnapshot) []byte {
	buf := make([]byte, core.IndexSnapshotMUS.Size(*snapshot))
	core.IndexSnapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalIndexSnapshot deserializes an IndexSnapshot from bytes.
func UnmarshalIndexSnapshot(data []byte) (*core.IndexSnapshot, error) {
	snapshot, _, err := core.IndexSnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
