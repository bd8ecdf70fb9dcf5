package optics

import (
	"testing"

	"github.com/casemark/strategist/pkg/models"
)

func TestScore_DecisionTable(t *testing.T) {
	tests := []struct {
		name   string
		action string
		sig    Signals
		want   models.Optics
	}{
		{
			"disclosure request is attractive",
			"written disclosure request for the incident-window CCTV",
			Signals{Timing: TimingOnTime, Persistence: PersistenceFirstRequest, Proportionality: Proportional},
			models.OpticsAttractive,
		},
		{
			"continuity chase is attractive",
			"chase the continuity schedule",
			Signals{Timing: TimingOnTime, Persistence: PersistenceChased, Proportionality: Proportional, HasChaseTrail: true},
			models.OpticsAttractive,
		},
		{
			"abuse of process without a trail is risky",
			"abuse of process application",
			Signals{Timing: TimingOnTime, Persistence: PersistenceFirstRequest},
			models.OpticsRisky,
		},
		{
			"speculative application is risky",
			"speculative application to stay proceedings",
			Signals{Timing: TimingOnTime},
			models.OpticsRisky,
		},
		{
			"early documented exclusion application is attractive",
			"section 78 exclusion application",
			Signals{Timing: TimingEarly, HasChaseTrail: true},
			models.OpticsAttractive,
		},
		{
			"undocumented exclusion application stays risky when late",
			"s78 exclusion application",
			Signals{Timing: TimingLate},
			models.OpticsRisky,
		},
		{
			"plain procedural step is neutral",
			"file the certificate of readiness",
			Signals{Timing: TimingOnTime},
			models.OpticsNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.action, tt.sig)
			if got.Optics != tt.want {
				t.Fatalf("Score(%q) = %s, want %s (%s)", tt.action, got.Optics, tt.want, got.Explanation)
			}
			if got.Explanation == "" {
				t.Error("empty explanation")
			}
		})
	}
}

func TestScore_Adjustments(t *testing.T) {
	// A sound disclosure request made late drops to neutral.
	got := Score("written disclosure request", Signals{Timing: TimingLate})
	if got.Optics != models.OpticsNeutral {
		t.Errorf("late disclosure request = %s, want neutral", got.Optics)
	}
	if len(got.Factors) == 0 {
		t.Error("adjusted verdict carries no factors")
	}

	// Raising a risky point early softens it.
	got = Score("speculative application", Signals{Timing: TimingEarly})
	if got.Optics != models.OpticsNeutral {
		t.Errorf("early speculative application = %s, want neutral", got.Optics)
	}

	// A disproportionate ask loses its attractiveness.
	got = Score("written disclosure request", Signals{Timing: TimingOnTime, Proportionality: Disproportionate})
	if got.Optics != models.OpticsNeutral {
		t.Errorf("disproportionate disclosure request = %s, want neutral", got.Optics)
	}

	// Repetition without a trail turns anything risky.
	got = Score("file the certificate of readiness", Signals{Persistence: PersistenceRepeated})
	if got.Optics != models.OpticsRisky {
		t.Errorf("repeated request without trail = %s, want risky", got.Optics)
	}

	// A chase trail neutralises a risky verdict.
	got = Score("abuse of process application", Signals{Persistence: PersistenceRepeated, HasChaseTrail: true})
	if got.Optics != models.OpticsNeutral {
		t.Errorf("risky application with chase trail = %s, want neutral", got.Optics)
	}
}

func TestScore_NonNeutralAlwaysCarriesFactors(t *testing.T) {
	cases := []struct {
		action string
		sig    Signals
	}{
		{"written disclosure request", Signals{}},
		{"speculative application", Signals{}},
		{"s78 exclusion", Signals{}},
		{"anything at all", Signals{Persistence: PersistenceRepeated}},
	}
	for _, c := range cases {
		got := Score(c.action, c.sig)
		if got.Optics != models.OpticsNeutral && len(got.Factors) == 0 {
			t.Errorf("Score(%q) verdict %s has no factors", c.action, got.Optics)
		}
	}
}

func TestScore_NeutralDefaultHasNoFactors(t *testing.T) {
	got := Score("file the certificate of readiness", Signals{Timing: TimingOnTime})
	if got.Optics != models.OpticsNeutral {
		t.Fatalf("verdict = %s, want neutral", got.Optics)
	}
	if len(got.Factors) != 0 {
		t.Errorf("neutral default carries factors: %v", got.Factors)
	}
}
