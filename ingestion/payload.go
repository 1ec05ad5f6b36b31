package ingestion

import (
	"encoding/json"
	"strings"

	"github.com/sourcehire/candidex/core"
)

// Payload is one parsed resume submitted for ingestion. Fields mirror
// what upstream resume parsers reliably produce; any of them may be
// empty.
type Payload struct {
	Name       string         `json:"name"`
	Skills     []string       `json:"skills"`
	Experience string         `json:"experience"` // free text, e.g. "5 years"
	Education  string         `json:"education"`
	Summary    string         `json:"summary"`
	Contact    map[string]any `json:"contact"` // loosely structured

	// EmbeddingText overrides the generated embedding text when set.
	EmbeddingText string `json:"embedding_text,omitempty"`
}

// toRecord converts the payload into a storable candidate record.
func (p *Payload) toRecord() (*core.CandidateRecord, error) {
	text := p.EmbeddingText
	if text == "" {
		text = buildEmbeddingText(p)
	}

	var contactJSON []byte
	if len(p.Contact) > 0 {
		encoded, err := json.Marshal(p.Contact)
		if err != nil {
			return nil, err
		}
		contactJSON = encoded
	}

	return &core.CandidateRecord{
		Name:            p.Name,
		Skills:          p.Skills,
		ExperienceYears: core.ParseExperienceYears(p.Experience),
		Education:       p.Education,
		Summary:         p.Summary,
		EmbeddingText:   text,
		ContactJSON:     contactJSON,
	}, nil
}

// buildEmbeddingText composes the text a candidate's vector is produced
// from. Labeled segments give the embedding model cues about which part
// of the resume each phrase came from; empty fields are omitted so
// sparse resumes don't embed filler labels.
func buildEmbeddingText(p *Payload) string {
	var segments []string

	if p.Name != "" {
		segments = append(segments, "Name: "+p.Name)
	}
	if p.Summary != "" {
		segments = append(segments, "Summary: "+p.Summary)
	}
	if len(p.Skills) > 0 {
		segments = append(segments, "Skills: "+strings.Join(p.Skills, ", "))
	}
	if p.Experience != "" {
		segments = append(segments, "Experience: "+p.Experience)
	}
	if p.Education != "" {
		segments = append(segments, "Education: "+p.Education)
	}
	if location, ok := p.Contact["location"].(string); ok && location != "" {
		segments = append(segments, "Location: "+location)
	}

	return strings.Join(segments, "\n")
}
