// Package evidence classifies served documents against a practice-area
// checklist and reports coverage, completeness, and missing core evidence.
package evidence

import (
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/casemark/strategist/pkg/models"
)

// categoryOrder fixes the order of coverage rows in the output.
var categoryOrder = []models.EvidenceCategory{
	models.CategoryVisual,
	models.CategoryDocument,
	models.CategoryProcedural,
	models.CategoryMedical,
	models.CategoryOther,
}

// BuildMap classifies documents against the checklist. It is a pure
// function of its inputs; identical inputs yield identical maps.
func BuildMap(documents []models.Document, checklist []models.ChecklistItem) models.EvidenceMap {
	expected := make(map[models.EvidenceCategory]int)
	present := make(map[models.EvidenceCategory]int)

	var missing, missingCore []models.ChecklistItem
	var values, weights []float64
	critical := 0

	for _, item := range checklist {
		expected[item.Category]++

		matched := anyDocumentMatches(documents, item.Patterns)
		if matched {
			present[item.Category]++
		} else {
			missing = append(missing, item)
			if item.IsCore {
				missingCore = append(missingCore, item)
			}
			if item.Priority == models.LeverageCritical {
				critical++
			}
		}

		v := 0.0
		if matched {
			v = 1.0
		}
		values = append(values, v)
		weights = append(weights, float64(models.LeverageRank(item.Priority)))
	}

	var coverage []models.CategoryCoverage
	for _, cat := range categoryOrder {
		exp := expected[cat]
		if exp == 0 {
			continue
		}
		coverage = append(coverage, models.CategoryCoverage{
			Category: cat,
			Expected: exp,
			Present:  present[cat],
			Coverage: float64(present[cat]) / float64(exp),
		})
	}

	completeness := 0.0
	if len(values) > 0 {
		completeness = 100 * stat.Mean(values, weights)
	}

	return models.EvidenceMap{
		Coverage:             coverage,
		Missing:              missing,
		MissingCore:          missingCore,
		Completeness:         completeness,
		CriticalMissingCount: critical,
	}
}

// MissingItems converts unmatched checklist entries into evidence items
// for the impact mapper.
func MissingItems(m models.EvidenceMap) []models.EvidenceItem {
	items := make([]models.EvidenceItem, 0, len(m.Missing))
	for _, entry := range m.Missing {
		items = append(items, models.EvidenceItem{
			ID:       entry.ID,
			Name:     entry.Name,
			Category: entry.Category,
			Urgency:  entry.Urgency,
		})
	}
	return items
}

func anyDocumentMatches(documents []models.Document, patterns []string) bool {
	for _, doc := range documents {
		if DocumentMatches(doc, patterns) {
			return true
		}
	}
	return false
}

// DocumentMatches reports whether a document matches any detection
// pattern, checking name, declared type, and serialized extracted content.
func DocumentMatches(doc models.Document, patterns []string) bool {
	haystack := strings.ToLower(doc.Name + " " + doc.Type + " " + string(doc.ExtractedJSON))
	for _, pattern := range patterns {
		p := strings.ToLower(strings.TrimSpace(pattern))
		if p == "" {
			continue
		}
		if strings.Contains(haystack, p) {
			return true
		}
	}
	return false
}
