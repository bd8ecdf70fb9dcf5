package moves

import (
	"fmt"
	"sort"

	"github.com/casemark/strategist/pkg/models"
)

// Sequence reorders moves by priority, remaps and prunes dependencies,
// deduplicates by requested evidence, renumbers to a contiguous 1..N, and
// attaches fork points. Every step produces a new slice; the input is
// never mutated.
func Sequence(in []models.Move) []models.Move {
	out := sortByPriority(in)
	out = renumber(out)
	out = dedupeByEvidence(out)
	out = addForkPoints(out)
	return out
}

// Priority scores a move: information gain per unit cost, doubled for the
// extraction phase, minus a penalty for locking the defence in.
func Priority(m models.Move) float64 {
	cost := float64(m.Cost) / 100
	if cost <= 0 {
		cost = 1
	}
	phaseMultiplier := 1.0
	if m.Phase == models.PhaseInformationExtraction {
		phaseMultiplier = 2.0
	}
	return float64(models.LeverageRank(m.InformationGain))/cost*phaseMultiplier - commitmentPenalty(m.CommitmentLevel)
}

func commitmentPenalty(level models.CommitmentLevel) float64 {
	switch level {
	case models.CommitmentMedium:
		return 1
	case models.CommitmentHigh:
		return 2
	}
	return 0
}

// sortByPriority orders moves descending by priority, stable so equal
// priorities retain generation order.
func sortByPriority(in []models.Move) []models.Move {
	out := append([]models.Move{}, in...)
	sort.SliceStable(out, func(i, j int) bool {
		return Priority(out[i]) > Priority(out[j])
	})
	return out
}

// renumber assigns contiguous 1..N orders following slice position and
// remaps dependencies through the old→new mapping, dropping any dependency
// that no longer precedes its move. Acyclicity holds by construction:
// every surviving dependency is strictly smaller than its move's order.
func renumber(in []models.Move) []models.Move {
	mapping := make(map[int]int, len(in))
	for i, m := range in {
		mapping[m.Order] = i + 1
	}

	out := make([]models.Move, len(in))
	for i, m := range in {
		m.Order = i + 1
		m.Dependencies = remapDeps(m.Dependencies, mapping, m.Order)
		out[i] = m
	}
	return out
}

func remapDeps(deps []int, mapping map[int]int, selfOrder int) []int {
	var remapped []int
	seen := make(map[int]bool)
	for _, dep := range deps {
		mapped, ok := mapping[dep]
		if !ok || mapped >= selfOrder || seen[mapped] {
			continue
		}
		seen[mapped] = true
		remapped = append(remapped, mapped)
	}
	sort.Ints(remapped)
	return remapped
}

// dedupeByEvidence drops later moves that request the same evidence as an
// earlier one (first occurrence wins), redirecting dependencies on the
// dropped move to its surviving twin, then renumbers.
func dedupeByEvidence(in []models.Move) []models.Move {
	firstByEvidence := make(map[string]int)
	redirect := make(map[int]int, len(in))

	var kept []models.Move
	for _, m := range in {
		key := m.EvidenceRequested
		if key != "" {
			if keeper, ok := firstByEvidence[key]; ok {
				redirect[m.Order] = keeper
				continue
			}
			firstByEvidence[key] = m.Order
		}
		redirect[m.Order] = m.Order
		kept = append(kept, m)
	}

	for i, m := range kept {
		var deps []int
		for _, dep := range m.Dependencies {
			deps = append(deps, redirect[dep])
		}
		kept[i].Dependencies = deps
	}
	return renumber(kept)
}

// addForkPoints branches every information-extraction move that is not
// last: an admission or silence flows to the next move, a denial jumps two
// ahead (or to the next move when none exists further on).
func addForkPoints(in []models.Move) []models.Move {
	out := append([]models.Move{}, in...)
	for i := range out {
		if out[i].Phase != models.PhaseInformationExtraction || i == len(out)-1 {
			continue
		}
		next := out[i+1].Order
		deny := next
		if i+2 < len(out) {
			deny = out[i+2].Order
		}
		out[i].ForkPoint = &models.ForkPoint{IfAdmit: next, IfDeny: deny, IfSilence: next}
	}
	return out
}

// Warnings surfaces ordering problems: expensive or escalatory moves
// sequenced before any information extraction, and authored out-of-order
// notes that carry real content.
func Warnings(sequenced []models.Move) []string {
	firstExtraction := -1
	for i, m := range sequenced {
		if m.Phase == models.PhaseInformationExtraction {
			firstExtraction = i
			break
		}
	}

	var warnings []string
	for i, m := range sequenced {
		early := firstExtraction == -1 || i < firstExtraction
		if early && m.Cost > 1000 {
			warnings = append(warnings, fmt.Sprintf(
				"move %d spends %d before any information-extraction step has run", m.Order, m.Cost))
		}
		if early && m.Phase == models.PhaseEscalation {
			warnings = append(warnings, fmt.Sprintf(
				"move %d escalates before any information-extraction step has run", m.Order))
		}
		if len(m.OutOfOrderNote) > 20 {
			warnings = append(warnings, fmt.Sprintf("move %d: %s", m.Order, m.OutOfOrderNote))
		}
	}
	return warnings
}

// AnalyzeCost sums spend outside the extraction phase and quantifies what
// confirming a gap cheaply would save against the expert tier.
func AnalyzeCost(sequenced []models.Move) models.CostAnalysis {
	costBeforeExpert := 0
	highGainExists := false
	for _, m := range sequenced {
		if m.Phase != models.PhaseInformationExtraction {
			costBeforeExpert += m.Cost
		}
		if models.LeverageRank(m.InformationGain) >= models.LeverageRank(models.LeverageHigh) {
			highGainExists = true
		}
	}

	analysis := models.CostAnalysis{
		CostBeforeExpert:     costBeforeExpert,
		ExpertSpendCondition: "expert-tier spend is justified only if the cheap information moves fail to confirm the evidential gap",
	}
	if highGainExists && expertTierCost > costBeforeExpert {
		analysis.UnnecessarySpendAvoidedIfGapConfirmed = expertTierCost - costBeforeExpert
	}
	return analysis
}
