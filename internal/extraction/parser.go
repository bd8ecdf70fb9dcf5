// Package extraction is the ingestion boundary for externally produced
// document-extraction payloads. Payloads arrive as loosely typed JSON; the
// parser validates them against a schema and hands typed, invariant-checked
// facts to the rule logic. Nothing downstream touches raw JSON.
package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/casemark/strategist/pkg/models"
)

// DocumentFacts is the typed form of one document's extraction payload.
type DocumentFacts struct {
	DocumentID string   `json:"-"`
	Parties    []string `json:"parties,omitempty"`
	Dates      []string `json:"dates,omitempty"`
	Amounts    []string `json:"amounts,omitempty"`
	KeyIssues  []string `json:"key_issues,omitempty"`
	Claims     []string `json:"claims,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Timeline   []struct {
		EventDate   string `json:"event_date"`
		Description string `json:"description"`
	} `json:"timeline,omitempty"`
}

const factsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "parties":    {"type": "array", "items": {"type": "string"}},
    "dates":      {"type": "array", "items": {"type": "string"}},
    "amounts":    {"type": "array", "items": {"type": "string"}},
    "key_issues": {"type": "array", "items": {"type": "string"}},
    "claims":     {"type": "array", "items": {"type": "string"}},
    "summary":    {"type": "string"},
    "timeline": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "event_date":  {"type": "string"},
          "description": {"type": "string"}
        },
        "required": ["event_date"]
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("extracted_facts.json", factsSchema)

// Parse validates and decodes one extraction payload. A nil or empty
// payload yields empty facts without error; a schema-invalid payload
// returns an error the caller may log and skip.
func Parse(documentID string, raw json.RawMessage) (DocumentFacts, error) {
	facts := DocumentFacts{DocumentID: documentID}
	if len(bytes.TrimSpace(raw)) == 0 {
		return facts, nil
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return facts, fmt.Errorf("decode extraction payload: %w", err)
	}
	if err := compiledSchema.Validate(instance); err != nil {
		return facts, fmt.Errorf("validate extraction payload: %w", err)
	}
	if err := json.Unmarshal(raw, &facts); err != nil {
		return facts, fmt.Errorf("decode extraction payload: %w", err)
	}
	facts.DocumentID = documentID
	return facts, nil
}

// ParseDocuments parses every document payload, skipping invalid ones.
// The engine must degrade rather than fail on garbled input.
func ParseDocuments(documents []models.Document) []DocumentFacts {
	parsed := make([]DocumentFacts, 0, len(documents))
	for _, doc := range documents {
		facts, err := Parse(doc.ID, doc.ExtractedJSON)
		if err != nil {
			continue
		}
		parsed = append(parsed, facts)
	}
	return parsed
}

// dateFormats lists the formats extraction payloads have been seen to use.
var dateFormats = []string{"2006-01-02", "02/01/2006", "2 January 2006", time.RFC3339}

// ParseDate parses an extracted date string. The zero time and false are
// returned for unparseable input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TimelineEvents converts parsed document timelines into dated events,
// dropping entries whose dates cannot be parsed.
func TimelineEvents(parsed []DocumentFacts) []models.TimelineEvent {
	var events []models.TimelineEvent
	for _, facts := range parsed {
		for _, entry := range facts.Timeline {
			when, ok := ParseDate(entry.EventDate)
			if !ok {
				continue
			}
			events = append(events, models.TimelineEvent{
				EventDate:   when,
				Description: entry.Description,
			})
		}
		for _, raw := range facts.Dates {
			if when, ok := ParseDate(raw); ok {
				events = append(events, models.TimelineEvent{
					EventDate:   when,
					Description: "extracted date",
				})
			}
		}
	}
	return events
}

// Claims returns every extracted claim with its source document id, in
// document order, for the inconsistency detector.
type Claim struct {
	DocumentID string
	Text       string
}

// CollectClaims gathers claims and summaries across parsed documents.
func CollectClaims(parsed []DocumentFacts) []Claim {
	var claims []Claim
	for _, facts := range parsed {
		for _, text := range facts.Claims {
			claims = append(claims, Claim{DocumentID: facts.DocumentID, Text: text})
		}
		if facts.Summary != "" {
			claims = append(claims, Claim{DocumentID: facts.DocumentID, Text: facts.Summary})
		}
	}
	return claims
}

// CollectText concatenates all extracted free text for keyword scanning,
// lowercased.
func CollectText(input models.CaseInput, parsed []DocumentFacts) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(input.ExtractedText))
	for _, facts := range parsed {
		for _, group := range [][]string{facts.KeyIssues, facts.Claims} {
			for _, text := range group {
				b.WriteString(" ")
				b.WriteString(strings.ToLower(text))
			}
		}
		if facts.Summary != "" {
			b.WriteString(" ")
			b.WriteString(strings.ToLower(facts.Summary))
		}
	}
	return b.String()
}
