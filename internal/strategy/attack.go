package strategy

import "github.com/casemark/strategist/pkg/models"

// pathDef declares the attack paths opened by each route and the evidence
// inputs each path cares about. Inputs are matched against missing
// evidence by the impact mapper.
var pathDefs = map[models.RouteID][]models.AttackPath{
	models.RouteProceduralDisclosureLeverage: {{
		ID:    "ap_disclosure_pressure",
		Name:  "Press the disclosure position",
		EvidenceInputs: []string{
			"unused material schedule", "disclosure schedule", "cctv footage",
			"body-worn video", "interview recording", "continuity schedule",
			"cad log", "999 call audio", "custody record",
		},
	}},
	models.RouteIdentificationChallenge: {{
		ID:    "ap_identification_attack",
		Name:  "Attack the identification",
		EvidenceInputs: []string{
			"cctv footage", "body-worn video", "witness statements",
			"identification procedure record", "footage",
		},
	}},
	models.RouteIntentDenial: {{
		ID:    "ap_intent_attack",
		Name:  "Undermine specific intent",
		EvidenceInputs: []string{
			"medical report", "injury photographs", "witness statements",
			"hospital records",
		},
	}},
	models.RouteWeaponUncertaintyCausation: {{
		ID:    "ap_causation_attack",
		Name:  "Exploit weapon and mechanism uncertainty",
		EvidenceInputs: []string{
			"medical report", "forensic report", "weapon examination",
			"hospital records", "injury photographs",
		},
	}},
	models.RouteActDenial: {{
		ID:    "ap_act_attack",
		Name:  "Dispute the act",
		EvidenceInputs: []string{
			"cctv footage", "witness statements", "forensic report",
		},
	}},
	models.RouteSelfDefence: {{
		ID:    "ap_self_defence_narrative",
		Name:  "Build the self-defence narrative",
		EvidenceInputs: []string{
			"witness statements", "cctv footage", "defendant injury photographs",
		},
	}},
	models.RouteAlternativeMentalState: {{
		ID:    "ap_lesser_offence_platform",
		Name:  "Lay the platform for the lesser-intent offence",
		EvidenceInputs: []string{
			"medical report", "injury photographs", "hospital records",
		},
	}},
	models.RouteMitigationEarlyResolution: {{
		ID:    "ap_mitigation_package",
		Name:  "Assemble the mitigation package",
		EvidenceInputs: []string{
			"pre-sentence report", "character references", "medical report",
		},
	}},
}

// BuildAttackPaths returns the attack paths opened by every route that is
// not blocked, in catalog order.
func BuildAttackPaths(assessments []models.RouteAssessment) []models.AttackPath {
	var paths []models.AttackPath
	for _, assessment := range assessments {
		if assessment.Status == models.RouteBlocked {
			continue
		}
		for _, def := range pathDefs[assessment.RouteID] {
			path := def
			path.Route = assessment.RouteID
			paths = append(paths, path)
		}
	}
	return paths
}
