// Package impact projects the strategic effect of missing evidence: which
// attack paths each item touches and what happens if it arrives clean,
// late, or adverse. Items matching no attack path are dropped; there is no
// impact to report.
package impact

import (
	"fmt"
	"strings"

	"github.com/casemark/strategist/pkg/models"
)

// categoryKeywords drive the category↔input matching heuristic.
var categoryKeywords = map[models.EvidenceCategory][]string{
	models.CategoryVisual:     {"cctv", "camera", "footage", "bwv", "body-worn", "video"},
	models.CategoryMedical:    {"injury", "hospital", "medical", "report"},
	models.CategoryDocument:   {"disclosure", "schedule", "unused material", "log"},
	models.CategoryProcedural: {"interview", "custody", "pace", "999", "audio"},
}

// MapImpacts projects the impact of each missing item across the supplied
// attack paths. Output order follows input order; output length is at most
// the input length and strictly less when any item matches nothing.
func MapImpacts(missing []models.EvidenceItem, paths []models.AttackPath) []models.EvidenceImpact {
	totalGaps := len(missing)
	var impacts []models.EvidenceImpact

	for _, item := range missing {
		affectedPaths, affectedRoutes := matchPaths(item, paths)
		if len(affectedPaths) == 0 {
			continue
		}

		impact := models.EvidenceImpact{
			EvidenceItem:          item,
			AffectedAttackPathIDs: affectedPaths,
			ImpactOnDefence:       direction(item.Category, totalGaps),
		}
		impact.IfArrivesClean, impact.IfArrivesLate, impact.IfArrivesAdverse = narratives(item, affectedRoutes)
		impact.ViabilityChanges = viabilityChanges(item.Category, affectedRoutes)
		impact.KillSwitch = killSwitch(item.Category, affectedRoutes)
		impact.PivotTrigger = pivotTrigger(item.Category, affectedRoutes)

		impacts = append(impacts, impact)
	}
	return impacts
}

func matchPaths(item models.EvidenceItem, paths []models.AttackPath) ([]string, []models.RouteID) {
	var pathIDs []string
	var routes []models.RouteID
	seenRoute := make(map[models.RouteID]bool)

	name := strings.ToLower(item.Name)
	for _, path := range paths {
		if !pathMatches(name, item.Category, path) {
			continue
		}
		pathIDs = append(pathIDs, path.ID)
		if !seenRoute[path.Route] {
			seenRoute[path.Route] = true
			routes = append(routes, path.Route)
		}
	}
	return pathIDs, routes
}

func pathMatches(itemName string, category models.EvidenceCategory, path models.AttackPath) bool {
	keywords := categoryKeywords[category]
	for _, input := range path.EvidenceInputs {
		in := strings.ToLower(input)
		if strings.Contains(in, itemName) || strings.Contains(itemName, in) {
			return true
		}
		for _, kw := range keywords {
			if strings.Contains(in, kw) && strings.Contains(itemName, kw) {
				return true
			}
		}
	}
	return false
}

// direction fixes ImpactOnDefence per category. Document gaps flip with
// volume: a thin bundle with many holes is disclosure leverage for the
// defence; one isolated hole usually means a hostile document is coming.
func direction(category models.EvidenceCategory, totalGaps int) models.ImpactDirection {
	switch category {
	case models.CategoryDocument:
		if totalGaps >= 3 {
			return models.ImpactHelps
		}
		return models.ImpactHurts
	case models.CategoryVisual, models.CategoryMedical, models.CategoryProcedural:
		return models.ImpactDepends
	}
	return models.ImpactNeutral
}

func narratives(item models.EvidenceItem, routes []models.RouteID) (clean, late, adverse string) {
	switch item.Category {
	case models.CategoryVisual:
		if hasRoute(routes, models.RouteIdentificationChallenge) {
			return fmt.Sprintf("%s shows nothing decisive: identification stays contestable and the sequence duration stays open", item.Name),
				fmt.Sprintf("late service of %s keeps the identification challenge alive and adds disclosure-failure leverage", item.Name),
				fmt.Sprintf("%s supports a clear identification: the identification challenge collapses and the sequence duration is fixed", item.Name)
		}
		return fmt.Sprintf("%s does not contradict the defence account", item.Name),
			fmt.Sprintf("late service of %s is itself a disclosure point", item.Name),
			fmt.Sprintf("%s corroborates the prosecution narrative of the act", item.Name)

	case models.CategoryMedical:
		if hasRoute(routes, models.RouteIntentDenial) || hasRoute(routes, models.RouteAlternativeMentalState) {
			return fmt.Sprintf("%s shows a brief, single-impact injury pattern consistent with a momentary act", item.Name),
				fmt.Sprintf("late %s delays the intent analysis and justifies holding position on plea", item.Name),
				fmt.Sprintf("%s shows a sustained or repeated injury pattern pointing to specific intent", item.Name)
		}
		return fmt.Sprintf("%s leaves the mechanism of injury open", item.Name),
			fmt.Sprintf("late %s postpones any causation concession", item.Name),
			fmt.Sprintf("%s fixes the mechanism of injury against the defence", item.Name)

	case models.CategoryDocument:
		return fmt.Sprintf("%s arrives complete and the disclosure position regularises", item.Name),
			fmt.Sprintf("continued absence of %s compounds the disclosure failure and strengthens any stay or exclusion argument", item.Name),
			fmt.Sprintf("%s reveals material that narrows the open routes", item.Name)

	case models.CategoryProcedural:
		return fmt.Sprintf("%s confirms procedural compliance; leverage shifts to the substantive routes", item.Name),
			fmt.Sprintf("outstanding %s keeps the procedural-compliance question open in the defence's favour", item.Name),
			fmt.Sprintf("%s discloses a procedural breach worth an exclusion application", item.Name)
	}

	return fmt.Sprintf("%s arrives without changing the strategic picture", item.Name),
		fmt.Sprintf("late arrival of %s has no strategic cost", item.Name),
		fmt.Sprintf("%s cuts against the defence on a secondary issue", item.Name)
}

func viabilityChanges(category models.EvidenceCategory, routes []models.RouteID) []models.ViabilityChange {
	var changes []models.ViabilityChange
	for _, route := range routes {
		change := models.ViabilityChange{Route: route, Change: models.ChangeNeutral}
		switch {
		case category == models.CategoryVisual && route == models.RouteIdentificationChallenge:
			change.Change = models.ChangeKills
			change.Explanation = "a clear multi-source identification would end the identification challenge"
		case category == models.CategoryVisual && route == models.RouteActDenial:
			change.Change = models.ChangeWeakens
			change.Explanation = "footage of the act narrows the room to dispute it"
		case category == models.CategoryMedical && (route == models.RouteIntentDenial || route == models.RouteAlternativeMentalState):
			change.Change = models.ChangeWeakens
			change.Explanation = "a sustained injury pattern would point to specific intent"
		case category == models.CategoryMedical && route == models.RouteWeaponUncertaintyCausation:
			change.Change = models.ChangeWeakens
			change.Explanation = "a definitive mechanism finding would close the causation uncertainty"
		case category == models.CategoryDocument && route == models.RouteProceduralDisclosureLeverage:
			change.Change = models.ChangeStrengthens
			change.Explanation = "every outstanding schedule strengthens the disclosure position"
		case category == models.CategoryProcedural && route == models.RouteProceduralDisclosureLeverage:
			change.Change = models.ChangeStrengthens
			change.Explanation = "unexplained procedural records keep the compliance question open"
		default:
			change.Explanation = "no direct effect on this route projected"
		}
		changes = append(changes, change)
	}
	return changes
}

// killSwitch and pivotTrigger name collapse conditions only for the
// category/route pairings that have one. They are never fabricated.
func killSwitch(category models.EvidenceCategory, routes []models.RouteID) string {
	switch {
	case category == models.CategoryVisual && hasRoute(routes, models.RouteIdentificationChallenge):
		return "CCTV shows a strong identification from multiple sources"
	case category == models.CategoryMedical && hasRoute(routes, models.RouteWeaponUncertaintyCausation):
		return "the medical evidence fixes a single definitive mechanism of injury"
	}
	return ""
}

func pivotTrigger(category models.EvidenceCategory, routes []models.RouteID) string {
	if category == models.CategoryMedical && hasRoute(routes, models.RouteIntentDenial) && hasRoute(routes, models.RouteAlternativeMentalState) {
		return "a sustained injury pattern: pivot from intent denial to the lesser-intent offence"
	}
	return ""
}

func hasRoute(routes []models.RouteID, want models.RouteID) bool {
	for _, route := range routes {
		if route == want {
			return true
		}
	}
	return false
}
