// Package strategy evaluates the closed catalog of eight canonical defence
// routes against the current evidence state. Evaluation is deterministic:
// the same context always yields the same eight assessments, in catalog
// order, with every inapplicable route reported as blocked rather than
// omitted.
package strategy

import (
	"strings"

	"github.com/casemark/strategist/pkg/models"
)

// Context is the evidence state the evaluator reasons over. Text must be
// lowercased extracted free text; missing fields degrade to safe defaults.
type Context struct {
	Charge           models.Charge
	ProceduralStatus models.ProceduralStatus
	Elements         []models.ElementState
	Dependencies     []models.Dependency
	Position         *models.CasePosition
	Text             string
}

// Evaluate assesses every canonical route. Exactly eight assessments are
// returned, one per catalog entry, in catalog order.
func Evaluate(ctx Context) []models.RouteAssessment {
	ctx.Text = strings.ToLower(ctx.Text)

	out := make([]models.RouteAssessment, 0, len(models.AllRoutes))
	for _, route := range models.AllRoutes {
		var a models.RouteAssessment
		switch route {
		case models.RouteProceduralDisclosureLeverage:
			a = assessProceduralDisclosure(ctx)
		case models.RouteIdentificationChallenge:
			a = assessIdentification(ctx)
		case models.RouteIntentDenial:
			a = assessIntentDenial(ctx)
		case models.RouteWeaponUncertaintyCausation:
			a = assessWeaponCausation(ctx)
		case models.RouteActDenial:
			a = assessActDenial(ctx)
		case models.RouteSelfDefence:
			a = assessSelfDefence(ctx)
		case models.RouteAlternativeMentalState:
			a = assessAlternativeMentalState(ctx)
		case models.RouteMitigationEarlyResolution:
			a = assessMitigation(ctx)
		}
		a.RouteID = route
		out = append(out, a)
	}
	return out
}

// supportOf returns the support level for an element id, SupportUnknown
// when the element was never assessed.
func supportOf(elements []models.ElementState, id string) models.Support {
	for _, el := range elements {
		if el.ID == id {
			return el.Support
		}
	}
	return models.SupportUnknown
}

// gapsOf returns the recorded evidence gaps behind an element.
func gapsOf(elements []models.ElementState, id string) []string {
	for _, el := range elements {
		if el.ID != id {
			continue
		}
		refs := make([]string, 0, len(el.Gaps))
		for _, gap := range el.Gaps {
			refs = append(refs, string(gap))
		}
		return refs
	}
	return nil
}

func isWeakOrNone(s models.Support) bool {
	return s == models.SupportWeak || s == models.SupportNone
}

func textContainsAny(text string, markers []string) (string, bool) {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return marker, true
		}
	}
	return "", false
}
