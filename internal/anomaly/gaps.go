package anomaly

import (
	"fmt"

	"github.com/casemark/strategist/internal/evidence"
	"github.com/casemark/strategist/internal/extraction"
	"github.com/casemark/strategist/internal/practice"
	"github.com/casemark/strategist/pkg/models"
)

// detectEvidenceGaps reports every expected-evidence entry with no
// matching document. Leverage mirrors the checklist item's priority.
func (s *Service) detectEvidenceGaps(documents []models.Document, checklist []models.ChecklistItem) []models.Observation {
	var observations []models.Observation
	for _, item := range checklist {
		if anyMatch(documents, item.Patterns) {
			continue
		}
		observations = append(observations, models.Observation{
			ID:                "evidence_gap_" + item.ID,
			Type:              models.ObservationEvidenceGap,
			Description:       fmt.Sprintf("no document matches %q", item.Name),
			WhyUnusual:        fmt.Sprintf("%s is expected in every bundle for this practice area", item.Name),
			WhatShouldExist:   item.Name,
			LeveragePotential: item.Priority,
		})
	}
	return observations
}

// detectGovernanceGaps reports governance rules with no partial textual
// evidence of compliance anywhere in the bundle.
func (s *Service) detectGovernanceGaps(documents []models.Document, rules []models.GovernanceRule) []models.Observation {
	var observations []models.Observation
	for _, rule := range rules {
		if anyMatch(documents, rule.Patterns) {
			continue
		}
		observations = append(observations, models.Observation{
			ID:                "governance_gap_" + rule.ID,
			Type:              models.ObservationGovernanceGap,
			Description:       fmt.Sprintf("no evidence of compliance with %q", rule.Name),
			WhyUnusual:        "mandatory record-keeping leaves traces; their complete absence needs explaining",
			WhatShouldExist:   rule.WhatShouldExist,
			LeveragePotential: models.LeverageMedium,
		})
	}
	return observations
}

// detectPracticeSpecific contributes at most one extra observation for
// areas with a bespoke detector. Housing gets a statutory repair-deadline
// check: a recorded complaint with no landlord response event within the
// statutory window.
func (s *Service) detectPracticeSpecific(input models.CaseInput, parsed []extraction.DocumentFacts, area practice.Area) (models.Observation, bool) {
	if area.ID != "housing_disrepair" {
		return models.Observation{}, false
	}

	events := append([]models.TimelineEvent{}, input.Timeline...)
	events = append(events, extraction.TimelineEvents(parsed)...)

	const statutoryWindowDays = 56
	for _, event := range events {
		if !describes(event.Description, "complaint", "reported", "notified") {
			continue
		}
		responded := false
		for _, later := range events {
			if !later.EventDate.After(event.EventDate) {
				continue
			}
			if int(later.EventDate.Sub(event.EventDate).Hours()/24) > statutoryWindowDays {
				continue
			}
			if describes(later.Description, "response", "repair", "works order", "inspection") {
				responded = true
				break
			}
		}
		if !responded {
			return models.Observation{
				ID:                "housing_statutory_deadline",
				Type:              models.ObservationGovernanceGap,
				Description:       fmt.Sprintf("no landlord response within %d days of the complaint on %s", statutoryWindowDays, event.EventDate.Format("2006-01-02")),
				WhyUnusual:        "the statutory response window elapsed without a recorded acknowledgement or works order",
				WhatShouldExist:   "an acknowledgement and works order inside the statutory window",
				LeveragePotential: models.LeverageCritical,
				RelatedDates:      []string{event.EventDate.Format("2006-01-02")},
			}, true
		}
	}
	return models.Observation{}, false
}

func anyMatch(documents []models.Document, patterns []string) bool {
	for _, doc := range documents {
		if evidence.DocumentMatches(doc, patterns) {
			return true
		}
	}
	return false
}

func describes(description string, words ...string) bool {
	for _, word := range words {
		if containsFold(description, word) {
			return true
		}
	}
	return false
}
