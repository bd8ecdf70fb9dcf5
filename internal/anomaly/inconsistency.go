package anomaly

import (
	"fmt"
	"strings"

	"github.com/casemark/strategist/internal/extraction"
	"github.com/casemark/strategist/pkg/models"
)

// detectInconsistencies groups extracted claims and summaries by a
// normalized key (leading characters, case-insensitive). A group holding
// more than one distinct literal text is a narrative inconsistency.
func (s *Service) detectInconsistencies(parsed []extraction.DocumentFacts) []models.Observation {
	claims := extraction.CollectClaims(parsed)

	type group struct {
		texts  []string
		docIDs []string
	}
	groups := make(map[string]*group)
	var keyOrder []string

	for _, claim := range claims {
		key := normalizeKey(claim.Text, s.config.KeyLength)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			keyOrder = append(keyOrder, key)
		}
		if !contains(g.texts, claim.Text) {
			g.texts = append(g.texts, claim.Text)
		}
		if !contains(g.docIDs, claim.DocumentID) {
			g.docIDs = append(g.docIDs, claim.DocumentID)
		}
	}

	var observations []models.Observation
	for _, key := range keyOrder {
		g := groups[key]
		if len(g.texts) < 2 {
			continue
		}
		observations = append(observations, models.Observation{
			ID:                fmt.Sprintf("inconsistency_%d", len(observations)+1),
			Type:              models.ObservationInconsistency,
			Description:       fmt.Sprintf("the same point is stated %d different ways across the documents: %q vs %q", len(g.texts), g.texts[0], g.texts[1]),
			WhyUnusual:        "accounts of the same fact should not drift between documents prepared from the same source",
			WhatShouldExist:   "a single consistent account, or an explanation for the revision",
			LeveragePotential: models.LeverageHigh,
			SourceDocumentIDs: g.docIDs,
		})
	}
	return observations
}

func normalizeKey(text string, length int) string {
	key := strings.ToLower(strings.TrimSpace(text))
	if len(key) > length {
		key = key[:length]
	}
	return key
}

func contains(list []string, want string) bool {
	for _, have := range list {
		if have == want {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
