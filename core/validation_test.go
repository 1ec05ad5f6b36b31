package core

import (
	"errors"
	"testing"
)

func TestValidateCandidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *CandidateRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &CandidateRecord{
				Name:          "Asha Nair",
				EmbeddingText: "backend engineer",
			},
			wantErr: nil,
		},
		{
			name: "valid record without id",
			record: &CandidateRecord{
				EmbeddingText: "backend engineer",
			},
			wantErr: nil,
		},
		{
			name: "valid record with malformed contact",
			record: &CandidateRecord{
				EmbeddingText: "backend engineer",
				ContactJSON:   []byte("{not json"),
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidCandidate,
		},
		{
			name: "missing embedding text",
			record: &CandidateRecord{
				Name: "Asha Nair",
			},
			wantErr: ErrEmptyEmbeddingText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidateRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCandidateRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCandidateRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   *Query
		wantErr error
	}{
		{
			name:    "valid query",
			query:   &Query{Text: "go engineer", Limit: 10},
			wantErr: nil,
		},
		{
			name:    "zero limit is valid",
			query:   &Query{Text: "go engineer"},
			wantErr: nil,
		},
		{
			name:    "nil query",
			query:   nil,
			wantErr: ErrInvalidQuery,
		},
		{
			name:    "empty text",
			query:   &Query{Limit: 10},
			wantErr: ErrEmptyQueryText,
		},
		{
			name:    "negative limit",
			query:   &Query{Text: "go engineer", Limit: -1},
			wantErr: ErrNegativeLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateQuery() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateQuery() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
