package strategy

import (
	"fmt"
	"strings"

	"github.com/casemark/strategist/pkg/models"
)

// keyDisclosureKinds are the disclosure dependencies whose absence makes
// procedural leverage viable on its own.
var keyDisclosureKinds = []string{"cctv", "continuity", "bwv", "body", "999", "audio", "cad", "interview"}

// identificationUncertaintyMarkers are the free-text signals that an
// identification is challengeable even without a formal element state.
var identificationUncertaintyMarkers = []string{
	"poor lighting", "brief glimpse", "partial view", "fleeting",
	"obscured", "unsure", "could not be certain", "some distance away",
	"never seen before", "hood", "balaclava",
}

// weaponHedgeMarkers signal a hedged identification of the weapon or
// injury mechanism.
var weaponHedgeMarkers = []string{
	"possibly a", "appears to be", "what looked like", "unclear what",
	"mechanism unclear", "mechanism of injury is unclear",
	"consistent with either", "not recovered", "no weapon was found",
}

// selfDefenceMarkers are the only signals that may promote self-defence.
// The route is blocked by default and never inferred from absence of
// evidence.
var selfDefenceMarkers = []string{
	"self defence", "self-defence", "acted in self defence",
	"was attacked first", "defending himself", "defending herself",
	"defending themselves", "feared for his safety", "feared for her safety",
}

func assessProceduralDisclosure(ctx Context) models.RouteAssessment {
	var outstanding []string
	for _, dep := range ctx.Dependencies {
		if dep.Status != models.DependencyOutstanding {
			continue
		}
		id := strings.ToLower(dep.ID)
		for _, kind := range keyDisclosureKinds {
			if strings.Contains(id, kind) {
				outstanding = append(outstanding, dep.ID)
				break
			}
		}
	}

	unsafe := ctx.ProceduralStatus == models.ProceduralUnsafe ||
		ctx.ProceduralStatus == models.ProceduralConditionallyUnsafe

	if unsafe || len(outstanding) > 0 {
		var reasons []string
		if unsafe {
			reasons = append(reasons, fmt.Sprintf("procedural safety assessed as %s", ctx.ProceduralStatus))
		}
		if len(outstanding) > 0 {
			reasons = append(reasons, fmt.Sprintf("%d key disclosure item(s) still outstanding", len(outstanding)))
		}
		return models.RouteAssessment{
			Status:               models.RouteViable,
			Reasons:              reasons,
			RequiredDependencies: outstanding,
		}
	}

	return models.RouteAssessment{
		Status:  models.RouteRisky,
		Reasons: []string{"no key disclosure item is outstanding and no procedural unsafety recorded"},
		Constraints: []string{
			"leverage weakens once the disclosure position is regularised",
		},
	}
}

func assessIdentification(ctx Context) models.RouteAssessment {
	support := supportOf(ctx.Elements, models.ElementIdentification)
	marker, hasMarker := textContainsAny(ctx.Text, identificationUncertaintyMarkers)

	switch {
	case support == models.SupportStrong:
		return models.RouteAssessment{
			Status:  models.RouteBlocked,
			Reasons: []string{"identification evidence is assessed as strong"},
		}
	case isWeakOrNone(support):
		return models.RouteAssessment{
			Status:               models.RouteViable,
			Reasons:              []string{fmt.Sprintf("identification support is %s", support)},
			RequiredDependencies: gapsOf(ctx.Elements, models.ElementIdentification),
		}
	case hasMarker:
		return models.RouteAssessment{
			Status:  models.RouteViable,
			Reasons: []string{fmt.Sprintf("identification uncertainty in the evidence: %q", marker)},
		}
	}

	return models.RouteAssessment{
		Status:  models.RouteRisky,
		Reasons: []string{"identification has some support and no uncertainty markers were found"},
	}
}

func assessIntentDenial(ctx Context) models.RouteAssessment {
	if !ctx.Charge.SpecificIntent {
		return models.RouteAssessment{
			Status:  models.RouteBlocked,
			Reasons: []string{"charge is not the higher-intent offence; there is no specific intent to deny"},
		}
	}

	support := supportOf(ctx.Elements, models.ElementSpecificIntent)
	switch {
	case support == models.SupportStrong:
		return models.RouteAssessment{
			Status:  models.RouteBlocked,
			Reasons: []string{"specific-intent evidence is assessed as strong"},
		}
	case isWeakOrNone(support):
		return models.RouteAssessment{
			Status:               models.RouteViable,
			Reasons:              []string{fmt.Sprintf("specific-intent support is %s on the higher-intent charge", support)},
			RequiredDependencies: gapsOf(ctx.Elements, models.ElementSpecificIntent),
		}
	case support == models.SupportSome:
		return models.RouteAssessment{
			Status:  models.RouteRisky,
			Reasons: []string{"specific intent has some support; denial carries cross-examination risk"},
		}
	}

	return models.RouteAssessment{
		Status:  models.RouteRisky,
		Reasons: []string{"specific-intent evidence not yet assessed"},
	}
}

func assessWeaponCausation(ctx Context) models.RouteAssessment {
	support := supportOf(ctx.Elements, models.ElementWeaponCausation)
	marker, hedged := textContainsAny(ctx.Text, weaponHedgeMarkers)

	if isWeakOrNone(support) || hedged {
		var reasons []string
		if isWeakOrNone(support) {
			reasons = append(reasons, fmt.Sprintf("weapon/causation support is %s", support))
		}
		if hedged {
			reasons = append(reasons, fmt.Sprintf("hedged description of the weapon or mechanism: %q", marker))
		}
		return models.RouteAssessment{
			Status:               models.RouteViable,
			Reasons:              reasons,
			RequiredDependencies: gapsOf(ctx.Elements, models.ElementWeaponCausation),
		}
	}

	return models.RouteAssessment{
		Status:  models.RouteRisky,
		Reasons: []string{"weapon and mechanism evidence is moderate or unassessed"},
	}
}

func assessActDenial(ctx Context) models.RouteAssessment {
	support := supportOf(ctx.Elements, models.ElementActCausation)
	if isWeakOrNone(support) {
		return models.RouteAssessment{
			Status:               models.RouteViable,
			Reasons:              []string{fmt.Sprintf("act/causation support is %s", support)},
			RequiredDependencies: gapsOf(ctx.Elements, models.ElementActCausation),
		}
	}

	return models.RouteAssessment{
		Status:  models.RouteRisky,
		Reasons: []string{"the act itself has moderate or strong support; outright denial is exposed"},
	}
}

func assessSelfDefence(ctx Context) models.RouteAssessment {
	if marker, ok := textContainsAny(ctx.Text, selfDefenceMarkers); ok {
		return models.RouteAssessment{
			Status:  models.RouteViable,
			Reasons: []string{fmt.Sprintf("explicit self-defence narrative in the evidence: %q", marker)},
			Constraints: []string{
				"rests on the defendant's own account; requires a consistent narrative throughout",
			},
		}
	}

	return models.RouteAssessment{
		Status:  models.RouteBlocked,
		Reasons: []string{"no explicit self-defence narrative anywhere in the evidence"},
		Constraints: []string{
			"must never be advanced by inference; an explicit account is required first",
		},
	}
}

func assessAlternativeMentalState(ctx Context) models.RouteAssessment {
	if !ctx.Charge.SpecificIntent {
		return models.RouteAssessment{
			Status:  models.RouteBlocked,
			Reasons: []string{"no lesser-intent alternative exists for this charge"},
		}
	}

	support := supportOf(ctx.Elements, models.ElementSpecificIntent)
	switch {
	case support == models.SupportStrong:
		return models.RouteAssessment{
			Status:  models.RouteBlocked,
			Reasons: []string{"specific-intent evidence is strong; the lesser offence is not realistically open"},
		}
	case isWeakOrNone(support):
		return models.RouteAssessment{
			Status:               models.RouteViable,
			Reasons:              []string{fmt.Sprintf("specific-intent support is %s; the lesser-intent offence is open", support)},
			RequiredDependencies: gapsOf(ctx.Elements, models.ElementSpecificIntent),
		}
	case support == models.SupportSome:
		return models.RouteAssessment{
			Status:  models.RouteRisky,
			Reasons: []string{"specific intent has some support; the lesser offence remains arguable but contested"},
		}
	}

	return models.RouteAssessment{
		Status:  models.RouteRisky,
		Reasons: []string{"specific-intent evidence not yet assessed"},
	}
}

func assessMitigation(ctx Context) models.RouteAssessment {
	if ctx.Position != nil && (ctx.Position.GuiltyPosture || ctx.Position.EarlyResolution) {
		reason := "an explicit early-resolution posture is recorded on the case"
		if ctx.Position.GuiltyPosture {
			reason = "an explicit guilty posture is recorded on the case"
		}
		return models.RouteAssessment{
			Status:  models.RouteViable,
			Reasons: []string{reason},
		}
	}

	return models.RouteAssessment{
		Status:  models.RouteRisky,
		Reasons: []string{"no recorded resolution decision; mitigation is never proactively recommended"},
		Constraints: []string{
			"promoted only by an explicit recorded decision, never by inference",
		},
	}
}
