package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/casemark/strategist/pkg/models"
)

func sampleInput() models.CaseInput {
	raw := 65.0
	return models.CaseInput{
		CaseID:       "case-001",
		PracticeArea: "criminal",
		Charge:       models.Charge{Offence: "wounding with intent", SpecificIntent: true},
		Documents: []models.Document{
			{ID: "d1", Name: "custody record", Type: "pdf"},
			{ID: "d2", Name: "witness statement", ExtractedJSON: json.RawMessage(
				`{"claims":["the attacker was seen in poor lighting"],"summary":"brief glimpse of a male running"}`)},
		},
		Timeline: []models.TimelineEvent{
			{EventDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Description: "arrest"},
			{EventDate: time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), Description: "first hearing"},
		},
		Dependencies: []models.Dependency{
			{ID: "cctv_incident_window", Status: models.DependencyOutstanding},
		},
		RawProbability: &raw,
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := New()
	input := sampleInput()

	first := e.Analyze(context.Background(), input)
	second := e.Analyze(context.Background(), input)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical inputs produced different reports:\n%s", diff)
	}
}

func TestAnalyze_ReportShape(t *testing.T) {
	got := New().Analyze(context.Background(), sampleInput())

	if got.CaseID != "case-001" || got.PracticeArea != "criminal" {
		t.Errorf("header = %s/%s", got.CaseID, got.PracticeArea)
	}
	if len(got.Routes) != 8 {
		t.Fatalf("got %d route assessments, want 8", len(got.Routes))
	}
	if len(got.Triggers) == 0 {
		t.Error("report carries no pressure triggers")
	}
	if len(got.Observations) > 6 {
		t.Errorf("got %d observations, want at most 6", len(got.Observations))
	}
	if len(got.MoveOptics) != len(got.Moves) {
		t.Errorf("%d optics results for %d moves", len(got.MoveOptics), len(got.Moves))
	}
	for i, m := range got.Moves {
		if m.Order != i+1 {
			t.Errorf("move at index %d has order %d", i, m.Order)
		}
	}
}

func TestAnalyze_SuppressesProbabilityOnThinEvidence(t *testing.T) {
	raw := 70.0
	input := models.CaseInput{
		CaseID:         "thin",
		PracticeArea:   "criminal",
		RawProbability: &raw,
	}

	got := New().Analyze(context.Background(), input)
	if got.Probability.Show {
		t.Error("probability shown with no documents served")
	}
	if got.CalibratedProbability != nil {
		t.Errorf("calibrated probability %v emitted while gated off", *got.CalibratedProbability)
	}
}

func TestAnalyze_MalformedExtractionDegrades(t *testing.T) {
	input := models.CaseInput{
		CaseID:       "garbled",
		PracticeArea: "criminal",
		Documents: []models.Document{
			{ID: "d1", Name: "bundle", ExtractedJSON: json.RawMessage(`{"claims": 42}`)},
			{ID: "d2", Name: "noise", ExtractedJSON: json.RawMessage(`not json at all`)},
		},
	}

	got := New().Analyze(context.Background(), input)
	if len(got.Routes) != 8 {
		t.Errorf("malformed payloads broke route evaluation: %d routes", len(got.Routes))
	}
	if len(got.Triggers) == 0 {
		t.Error("malformed payloads silenced the trigger generator")
	}
}

func TestAnalyze_UnknownAreaFallsBack(t *testing.T) {
	got := New().Analyze(context.Background(), models.CaseInput{
		CaseID:       "x",
		PracticeArea: "maritime_salvage",
	})
	if got.PracticeArea != "generic" {
		t.Errorf("PracticeArea = %q, want generic fallback", got.PracticeArea)
	}
}

func TestOpposingStrength(t *testing.T) {
	if got := opposingStrength(nil); got != 50 {
		t.Errorf("opposingStrength(nil) = %v, want 50", got)
	}
	strong := []models.ElementState{
		{ID: models.ElementIdentification, Support: models.SupportStrong},
		{ID: models.ElementActCausation, Support: models.SupportStrong},
	}
	weak := []models.ElementState{
		{ID: models.ElementIdentification, Support: models.SupportNone},
	}
	if opposingStrength(strong) <= opposingStrength(weak) {
		t.Error("stronger opposing evidence did not score higher")
	}
}
