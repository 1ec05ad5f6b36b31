package core

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Contact is the parsed view of a candidate's loosely structured contact
// blob. Any field may be empty when the source data did not carry it.
type Contact struct {
	Location string
	Email    string
	Phone    string
}

// ParseContact extracts a Contact from a raw JSON blob produced by the
// upstream resume parser. The blob is duck-typed: keys may be missing,
// values may have the wrong type, and the whole document may be
// malformed. All of those cases yield absent fields, never an error —
// absence of data must not be conflated with a mismatch downstream.
func ParseContact(raw []byte) Contact {
	var contact Contact
	if len(raw) == 0 {
		return contact
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return contact
	}

	contact.Location = stringField(fields, "location")
	contact.Email = stringField(fields, "email")
	contact.Phone = stringField(fields, "phone")
	return contact
}

// stringField reads a string value from a duck-typed map, tolerating
// missing keys and non-string values.
func stringField(fields map[string]any, key string) string {
	value, ok := fields[key]
	if !ok {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// ParseExperienceYears extracts a leading number of years from a
// free-text experience field such as "5 years" or "3.5". Returns 0 when
// no number can be recovered.
func ParseExperienceYears(experience string) float32 {
	fields := strings.Fields(experience)
	if len(fields) == 0 {
		return 0
	}

	token := strings.TrimSuffix(fields[0], "+")
	years, err := strconv.ParseFloat(token, 32)
	if err != nil || years < 0 {
		return 0
	}
	return float32(years)
}
