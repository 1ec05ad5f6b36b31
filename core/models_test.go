package core

import (
	"testing"
)

func TestFingerprintFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same fingerprint",
			content: "senior backend engineer, 8 years of Go",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "A much longer resume text with skills, education and a summary that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp1 := FingerprintFromContent(tt.content)
			fp2 := FingerprintFromContent(tt.content)

			if fp1 != fp2 {
				t.Errorf("FingerprintFromContent() produced different fingerprints for same content: %d vs %d", fp1, fp2)
			}
		})
	}
}

func TestFingerprintFromContent_Different(t *testing.T) {
	fp1 := FingerprintFromContent("resume one")
	fp2 := FingerprintFromContent("resume two")

	if fp1 == fp2 {
		t.Errorf("FingerprintFromContent() produced same fingerprint for different content")
	}
}

func TestVerificationReport_Clean(t *testing.T) {
	tests := []struct {
		name   string
		report VerificationReport
		want   bool
	}{
		{
			name:   "empty report is clean",
			report: VerificationReport{VectorCount: 3, RecordCount: 3},
			want:   true,
		},
		{
			name:   "orphaned vector",
			report: VerificationReport{OrphanedVectors: []ID{7}},
			want:   false,
		},
		{
			name:   "orphaned record",
			report: VerificationReport{OrphanedRecords: []ID{7}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.Clean(); got != tt.want {
				t.Errorf("Clean() = %v, want %v", got, tt.want)
			}
		})
	}
}
