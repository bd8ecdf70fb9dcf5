// Package pressure converts observations into recommended pressure tones
// per practice area. The generator always returns at least one trigger and
// never defaults to STRIKE: a strike recommendation must be earned by a
// specific supporting observation.
package pressure

import (
	"fmt"
	"strings"

	"github.com/casemark/strategist/internal/practice"
	"github.com/casemark/strategist/pkg/models"
)

// Generate applies the practice-area rule set to the observations and
// evidence map. The fallback is a single PROBE trigger; the system is
// never silent on tone.
func Generate(input models.CaseInput, observations []models.Observation, evidenceMap models.EvidenceMap, area practice.Area) []models.PressureTrigger {
	var triggers []models.PressureTrigger

	switch area.ID {
	case "clinical_negligence":
		triggers = append(triggers, clinicalTriggers(observations)...)
	case "housing_disrepair":
		triggers = append(triggers, housingTriggers(observations)...)
	case "criminal":
		triggers = append(triggers, criminalTriggers(observations, evidenceMap)...)
	}

	triggers = append(triggers, genericTriggers(observations)...)

	if len(triggers) == 0 {
		triggers = append(triggers, models.PressureTrigger{
			Trigger:         "no specific pressure rule fired",
			WhyItMatters:    "a neutral probing request keeps the other side responding without committing the defence",
			RecommendedTone: models.ToneProbe,
		})
	}
	return triggers
}

func clinicalTriggers(observations []models.Observation) []models.PressureTrigger {
	var out []models.PressureTrigger

	if matchObservation(observations, "delay") && matchObservation(observations, "deterioration", "surgery", "escalation") {
		out = append(out, models.PressureTrigger{
			Trigger:         "treatment delay alongside recorded deterioration",
			WhyItMatters:    "a documented delay followed by deterioration and surgical intervention is the spine of a breach-and-causation case",
			RecommendedTone: models.TonePressure,
		})
	}
	if matchObservation(observations, "radiology", "addendum", "discrepancy") {
		out = append(out, models.PressureTrigger{
			Trigger:         "radiology addendum or reporting discrepancy",
			WhyItMatters:    "an amended or inconsistent radiology report is concrete, datable, and hard to explain away",
			RecommendedTone: models.ToneStrike,
		})
	}
	if matchObservation(observations, "escalation", "news2", "early warning") {
		out = append(out, models.PressureTrigger{
			Trigger:         "missing mandatory escalation records",
			WhyItMatters:    "escalation on early-warning scores is mandatory; its absence is a governance failure in itself",
			RecommendedTone: models.TonePressure,
		})
	}
	return out
}

func housingTriggers(observations []models.Observation) []models.PressureTrigger {
	var out []models.PressureTrigger
	if matchObservation(observations, "statutory", "deadline", "response window") {
		out = append(out, models.PressureTrigger{
			Trigger:         "statutory repair-response deadline breached",
			WhyItMatters:    "a breached statutory window is a complete point: no judgement call is needed to establish it",
			RecommendedTone: models.ToneStrike,
		})
	}
	if matchObservation(observations, "gas safety") {
		out = append(out, models.PressureTrigger{
			Trigger:         "no in-date gas safety record",
			WhyItMatters:    "the annual gas safety record is a strict obligation with penal consequences",
			RecommendedTone: models.TonePressure,
		})
	}
	return out
}

func criminalTriggers(observations []models.Observation, evidenceMap models.EvidenceMap) []models.PressureTrigger {
	var out []models.PressureTrigger
	if matchObservation(observations, "mg6", "unused material", "disclosure") {
		out = append(out, models.PressureTrigger{
			Trigger:         "disclosure schedules outstanding",
			WhyItMatters:    "outstanding schedules block trial readiness and the court will expect them chased",
			RecommendedTone: models.TonePressure,
		})
	}
	if len(evidenceMap.MissingCore) >= 3 {
		out = append(out, models.PressureTrigger{
			Trigger:         fmt.Sprintf("%d core evidence items still unserved", len(evidenceMap.MissingCore)),
			WhyItMatters:    "a bundle missing this much core material cannot fairly proceed to plea",
			RecommendedTone: models.TonePressure,
		})
	}
	return out
}

// genericTriggers handles the low-leverage administrative residue across
// all practice areas.
func genericTriggers(observations []models.Observation) []models.PressureTrigger {
	var out []models.PressureTrigger
	for _, obs := range observations {
		if obs.LeveragePotential != models.LeverageLow {
			continue
		}
		out = append(out, models.PressureTrigger{
			Trigger:         obs.Description,
			WhyItMatters:    "a low-stakes administrative gap is a safe opening question",
			RecommendedTone: models.ToneProbe,
		})
	}
	return out
}

func matchObservation(observations []models.Observation, words ...string) bool {
	for _, obs := range observations {
		text := strings.ToLower(obs.Description + " " + obs.WhyUnusual + " " + obs.WhatShouldExist)
		for _, word := range words {
			if strings.Contains(text, word) {
				return true
			}
		}
	}
	return false
}
