package core

import "testing"

func TestParseContact(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want Contact
	}{
		{
			name: "all fields",
			raw:  []byte(`{"location": "Bangalore, India", "email": "a@example.com", "phone": "+91 99999"}`),
			want: Contact{Location: "Bangalore, India", Email: "a@example.com", Phone: "+91 99999"},
		},
		{
			name: "missing keys",
			raw:  []byte(`{"email": "a@example.com"}`),
			want: Contact{Email: "a@example.com"},
		},
		{
			name: "wrong value types",
			raw:  []byte(`{"location": 42, "email": ["x"], "phone": null}`),
			want: Contact{},
		},
		{
			name: "malformed document",
			raw:  []byte(`{"location": "Ban`),
			want: Contact{},
		},
		{
			name: "empty blob",
			raw:  nil,
			want: Contact{},
		},
		{
			name: "whitespace trimmed",
			raw:  []byte(`{"location": "  Mumbai  "}`),
			want: Contact{Location: "Mumbai"},
		},
		{
			name: "extra keys ignored",
			raw:  []byte(`{"location": "Pune", "linkedin": "in/someone"}`),
			want: Contact{Location: "Pune"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseContact(tt.raw)
			if got != tt.want {
				t.Errorf("ParseContact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseExperienceYears(t *testing.T) {
	tests := []struct {
		name       string
		experience string
		want       float32
	}{
		{name: "plain years", experience: "5 years", want: 5},
		{name: "decimal", experience: "3.5", want: 3.5},
		{name: "plus suffix", experience: "10+ years", want: 10},
		{name: "bare number", experience: "7", want: 7},
		{name: "words only", experience: "a decade", want: 0},
		{name: "empty", experience: "", want: 0},
		{name: "negative rejected", experience: "-2 years", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseExperienceYears(tt.experience); got != tt.want {
				t.Errorf("ParseExperienceYears(%q) = %v, want %v", tt.experience, got, tt.want)
			}
		})
	}
}
