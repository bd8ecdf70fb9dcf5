// Package optics scores how a proposed action is likely to land with the
// court. The verdict is a keyword/metadata decision table with timing,
// persistence, and proportionality adjustments; every non-neutral verdict
// carries the factors that drove it, so the decision stays auditable.
package optics

import (
	"strings"

	"github.com/casemark/strategist/pkg/models"
)

// Timing is when the action is being taken relative to the court timetable.
type Timing string

const (
	TimingEarly   Timing = "early"
	TimingOnTime  Timing = "on_time"
	TimingLate    Timing = "late"
	TimingUnknown Timing = "unknown"
)

// Persistence is how many times the underlying request has been made.
type Persistence string

const (
	PersistenceFirstRequest Persistence = "first_request"
	PersistenceChased       Persistence = "chased"
	PersistenceRepeated     Persistence = "repeated"
	PersistenceUnknown      Persistence = "unknown"
)

// Proportionality is whether the action is proportionate to what is at stake.
type Proportionality string

const (
	Proportional      Proportionality = "proportional"
	Disproportionate  Proportionality = "disproportionate"
	ProportionUnknown Proportionality = "unknown"
)

// Signals bundles the metadata the scorer weighs alongside the action text.
type Signals struct {
	Timing          Timing
	Persistence     Persistence
	Proportionality Proportionality
	HasChaseTrail   bool
}

// Score applies the decision table and its post-adjustments.
func Score(action string, sig Signals) models.OpticsResult {
	text := strings.ToLower(action)

	verdict := models.OpticsNeutral
	explanation := "routine application with no notable optics signals"
	var factors []string

	switch {
	case containsAny(text, "disclosure request", "continuity", "written submission", "request for disclosure", "disclosure"):
		verdict = models.OpticsAttractive
		explanation = "courts expect disclosure and continuity to be pressed; doing so in writing reads as diligence"
		factors = append(factors, "disclosure/continuity request made through proper channels")

	case containsAny(text, "abuse of process") && !sig.HasChaseTrail && sig.Persistence == PersistenceFirstRequest:
		verdict = models.OpticsRisky
		explanation = "an abuse-of-process application with no chase history reads as tactical"
		factors = append(factors, "abuse-of-process application without a documented chase trail", "first request, no prior follow-up")

	case containsAny(text, "speculative", "unsupported"):
		verdict = models.OpticsRisky
		explanation = "applications without an evidential foundation draw judicial criticism"
		factors = append(factors, "no documented basis for the application")

	case containsAny(text, "pace", "exclusion", "section 78", "s78"):
		if sig.HasChaseTrail {
			verdict = models.OpticsNeutral
			explanation = "a PACE exclusion application with a documented basis is unremarkable"
			if sig.Timing == TimingEarly {
				verdict = models.OpticsAttractive
				explanation = "an early, documented PACE exclusion application reads as well-prepared"
				factors = append(factors, "documented basis for exclusion", "raised early")
			}
		} else {
			verdict = models.OpticsRisky
			explanation = "a PACE exclusion application without a documented basis invites criticism"
			factors = append(factors, "no documented basis for exclusion")
		}
	}

	// Post-adjustments, applied in a fixed order.
	if sig.Timing == TimingLate && verdict == models.OpticsAttractive {
		verdict = models.OpticsNeutral
		explanation = "a sound application loses its shine when made late"
		factors = append(factors, "raised late in the timetable")
	}
	if sig.Timing == TimingEarly && verdict == models.OpticsRisky {
		verdict = models.OpticsNeutral
		explanation = "raising the point early softens an otherwise risky application"
		factors = append(factors, "raised early, before positions hardened")
	}
	if sig.Proportionality == Disproportionate && verdict == models.OpticsAttractive {
		verdict = models.OpticsNeutral
		explanation = "the ask is disproportionate to what is at stake"
		factors = append(factors, "disproportionate to the issue")
	}
	if sig.Persistence == PersistenceRepeated && !sig.HasChaseTrail {
		verdict = models.OpticsRisky
		explanation = "repeating a request with no recorded follow-up reads as harassment rather than persistence"
		factors = append(factors, "repeated request without a documented chase trail")
	}
	if verdict == models.OpticsRisky && sig.HasChaseTrail {
		verdict = models.OpticsNeutral
		explanation = "the documented chase trail shows persistence rather than opportunism"
		factors = append(factors, "documented chase trail on record")
	}

	if verdict == models.OpticsNeutral && len(factors) == 0 {
		// The neutral default carries no factors; anything else must.
		return models.OpticsResult{Optics: verdict, Explanation: explanation}
	}
	return models.OpticsResult{Optics: verdict, Explanation: explanation, Factors: factors}
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
