// Package probability decides whether numeric confidence may be shown at
// all, and calibrates externally supplied probabilities against evidence
// strength. No probability is ever produced here; thin evidence means hard
// suppression, not a guess.
package probability

import (
	"fmt"

	"github.com/casemark/strategist/pkg/models"
)

// Canonical gating policy. Earlier revisions of the policy disagreed on
// the literal cutoffs; these are the documented canonical values.
const (
	// DecisionSupportThreshold is the completeness below which output is
	// decision support only.
	DecisionSupportThreshold = 10.0
	// ProvisionalThreshold is the completeness below which the bundle is
	// too incomplete for numbers.
	ProvisionalThreshold = 40.0
	// CriticalMissingLimit suppresses numbers regardless of completeness.
	CriticalMissingLimit = 3
)

// ShouldShow gates numeric confidence on evidence completeness (0-100) and
// the count of critical missing items.
func ShouldShow(practiceArea string, completeness float64, criticalMissingCount int) models.ProbabilityGateDecision {
	switch {
	case completeness < DecisionSupportThreshold:
		return models.ProbabilityGateDecision{
			Show: false,
			Reason: fmt.Sprintf(
				"decision support only: evidence completeness is %.0f%%, far too thin for any numeric confidence in a %s matter",
				completeness, areaLabel(practiceArea)),
		}
	case completeness < ProvisionalThreshold || criticalMissingCount >= CriticalMissingLimit:
		return models.ProbabilityGateDecision{
			Show: false,
			Reason: fmt.Sprintf(
				"provisional: the bundle is incomplete (completeness %.0f%%, %d critical item(s) missing); numbers would mislead",
				completeness, criticalMissingCount),
		}
	}
	return models.ProbabilityGateDecision{Show: true}
}

func areaLabel(practiceArea string) string {
	if practiceArea == "" {
		return "general"
	}
	return practiceArea
}

// CalibrationFloor is the minimum calibrated value.
const CalibrationFloor = 5.0

// Calibrate rescales an externally supplied raw probability (0-100)
// against independently computed opposing evidence strength (0-100).
// Stronger opposing evidence means a larger downgrade. The result is
// floored at CalibrationFloor and never exceeds the raw input.
func Calibrate(raw, opposingStrength float64) float64 {
	if raw < 0 {
		raw = 0
	}
	if raw > 100 {
		raw = 100
	}
	if opposingStrength < 0 {
		opposingStrength = 0
	}
	if opposingStrength > 100 {
		opposingStrength = 100
	}

	calibrated := raw * (1 - opposingStrength/200)
	if calibrated < CalibrationFloor {
		calibrated = CalibrationFloor
	}
	if calibrated > raw {
		calibrated = raw
	}
	return calibrated
}
