package anomaly

import (
	"strings"
	"testing"
	"time"

	"github.com/casemark/strategist/internal/extraction"
	"github.com/casemark/strategist/internal/practice"
	"github.com/casemark/strategist/pkg/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testArea() practice.Area {
	return practice.Area{
		ID:    "criminal",
		Label: "Criminal defence",
		Checklist: []models.ChecklistItem{
			{ID: "cctv_footage", Name: "CCTV footage", Patterns: []string{"cctv"},
				IsCore: true, Priority: models.LeverageCritical},
			{ID: "custody_record", Name: "Custody record", Patterns: []string{"custody"},
				Priority: models.LeverageMedium},
		},
		Governance: []models.GovernanceRule{
			{ID: "disclosure_schedule", Name: "Unused material schedule",
				Patterns: []string{"mg6c", "unused material"}, WhatShouldExist: "a served MG6C"},
		},
	}
}

func TestDetect_CapsAtSixObservations(t *testing.T) {
	// Five adjacent 40-day gaps plus two evidence gaps and a governance
	// gap would yield eight observations uncapped.
	var timeline []models.TimelineEvent
	for i := 0; i < 6; i++ {
		timeline = append(timeline, models.TimelineEvent{
			EventDate:   day("2025-01-01").AddDate(0, 0, i*40),
			Description: "hearing",
		})
	}
	input := models.CaseInput{Timeline: timeline}

	got := NewService(Config{}).Detect(input, nil, testArea())
	if len(got) > 6 {
		t.Fatalf("Detect returned %d observations, want at most 6", len(got))
	}
	if len(got) != 6 {
		t.Fatalf("Detect returned %d observations, want exactly 6 from 8 candidates", len(got))
	}
}

func TestDetect_RanksByLeverage(t *testing.T) {
	input := models.CaseInput{
		Timeline: []models.TimelineEvent{
			{EventDate: day("2025-01-01"), Description: "instruction received"},
			{EventDate: day("2025-02-15"), Description: "first attendance"}, // 45 days
			{EventDate: day("2025-05-21"), Description: "next hearing"},     // 95 days
		},
	}

	got := NewService(Config{}).Detect(input, nil, practice.Area{ID: "generic"})
	if len(got) != 2 {
		t.Fatalf("got %d observations, want 2 gaps", len(got))
	}
	if got[0].LeveragePotential != models.LeverageHigh || !strings.Contains(got[0].Description, "95-day") {
		t.Errorf("first observation = %s %q, want the 95-day gap at high leverage",
			got[0].LeveragePotential, got[0].Description)
	}
	if got[1].LeveragePotential != models.LeverageLow || !strings.Contains(got[1].Description, "45-day") {
		t.Errorf("second observation = %s %q, want the 45-day gap at low leverage",
			got[1].LeveragePotential, got[1].Description)
	}
}

func TestDetect_InconsistentClaims(t *testing.T) {
	parsed := []extraction.DocumentFacts{
		{DocumentID: "doc-1", Claims: []string{"The claimant reported the leak on 3 March and was ignored"}},
		{DocumentID: "doc-2", Claims: []string{"The claimant reported the leak on 3 march and repairs began at once"}},
	}

	got := NewService(Config{}).Detect(models.CaseInput{}, parsed, practice.Area{ID: "generic"})

	var found *models.Observation
	for i := range got {
		if got[i].Type == models.ObservationInconsistency {
			found = &got[i]
			break
		}
	}
	if found == nil {
		t.Fatal("no inconsistency observation for conflicting claims")
	}
	if found.LeveragePotential != models.LeverageHigh {
		t.Errorf("inconsistency leverage = %s, want high", found.LeveragePotential)
	}
	if len(found.SourceDocumentIDs) != 2 {
		t.Errorf("SourceDocumentIDs = %v, want both documents", found.SourceDocumentIDs)
	}
}

func TestDetect_EvidenceGapMirrorsChecklistPriority(t *testing.T) {
	input := models.CaseInput{
		Documents: []models.Document{{ID: "d1", Name: "custody record PDF"}},
	}

	got := NewService(Config{}).Detect(input, nil, testArea())

	var cctvGap *models.Observation
	for i := range got {
		if got[i].ID == "evidence_gap_cctv_footage" {
			cctvGap = &got[i]
		}
		if got[i].ID == "evidence_gap_custody_record" {
			t.Error("custody record is present but still reported as a gap")
		}
	}
	if cctvGap == nil {
		t.Fatal("missing CCTV did not produce an evidence gap observation")
	}
	if cctvGap.LeveragePotential != models.LeverageCritical {
		t.Errorf("CCTV gap leverage = %s, want the checklist priority critical", cctvGap.LeveragePotential)
	}
}

func TestDetect_GovernanceGap(t *testing.T) {
	got := NewService(Config{}).Detect(models.CaseInput{}, nil, practice.Area{
		ID: "criminal",
		Governance: []models.GovernanceRule{
			{ID: "disclosure_schedule", Name: "Unused material schedule",
				Patterns: []string{"mg6c"}, WhatShouldExist: "a served MG6C"},
		},
	})

	if len(got) != 1 || got[0].Type != models.ObservationGovernanceGap {
		t.Fatalf("got %+v, want a single governance gap observation", got)
	}
	if got[0].WhatShouldExist != "a served MG6C" {
		t.Errorf("WhatShouldExist = %q", got[0].WhatShouldExist)
	}
}

func TestDetect_HousingStatutoryDeadline(t *testing.T) {
	input := models.CaseInput{
		Timeline: []models.TimelineEvent{
			{EventDate: day("2025-01-10"), Description: "disrepair complaint reported to landlord"},
			{EventDate: day("2025-04-01"), Description: "tenant chased by phone"},
		},
	}

	got := NewService(Config{}).Detect(input, nil, practice.Area{ID: "housing_disrepair"})

	var deadline *models.Observation
	for i := range got {
		if got[i].ID == "housing_statutory_deadline" {
			deadline = &got[i]
		}
	}
	if deadline == nil {
		t.Fatal("unanswered complaint did not trigger the statutory deadline observation")
	}
	if deadline.LeveragePotential != models.LeverageCritical {
		t.Errorf("leverage = %s, want critical", deadline.LeveragePotential)
	}

	// A repair inside the window clears it.
	input.Timeline = append(input.Timeline, models.TimelineEvent{
		EventDate: day("2025-02-01"), Description: "landlord response and works order raised",
	})
	for _, obs := range NewService(Config{}).Detect(input, nil, practice.Area{ID: "housing_disrepair"}) {
		if obs.ID == "housing_statutory_deadline" {
			t.Error("in-window response still triggered the statutory deadline observation")
		}
	}
}

func TestDetect_CompressedTimeline(t *testing.T) {
	var timeline []models.TimelineEvent
	base := day("2025-06-01")
	for i := 0; i < 12; i++ {
		timeline = append(timeline, models.TimelineEvent{
			EventDate:   base.AddDate(0, 0, i*2),
			Description: "file activity",
		})
	}

	got := NewService(Config{}).Detect(models.CaseInput{Timeline: timeline}, nil, practice.Area{ID: "generic"})

	found := false
	for _, obs := range got {
		if obs.ID == "timeline_compressed" {
			found = true
		}
	}
	if !found {
		t.Error("12 events in 22 days did not trigger the compressed-timeline observation")
	}
}

func TestNewService_FillsZeroThresholds(t *testing.T) {
	s := NewService(Config{MaxObservations: 3})
	if s.config.MaxObservations != 3 {
		t.Errorf("MaxObservations = %d, want the explicit 3", s.config.MaxObservations)
	}
	if s.config.GapDays != DefaultConfig().GapDays {
		t.Errorf("GapDays = %d, want default %d", s.config.GapDays, DefaultConfig().GapDays)
	}
}
