package extraction

import (
	"strings"

	"github.com/casemark/strategist/pkg/models"
)

var coreElements = []struct {
	id, label     string
	strongMarkers []string
	weakMarkers   []string
}{
	{
		id:            models.ElementIdentification,
		label:         "Identification of the defendant",
		strongMarkers: []string{"clear identification", "identified by multiple witnesses", "known to the witness"},
		weakMarkers:   []string{"poor lighting", "brief glimpse", "partial view", "unsure", "could not be certain"},
	},
	{
		id:            models.ElementSpecificIntent,
		label:         "Specific intent",
		strongMarkers: []string{"stated intention", "premeditat", "planned attack"},
		weakMarkers:   []string{"spur of the moment", "no prior contact", "single blow", "momentary"},
	},
	{
		id:            models.ElementWeaponCausation,
		label:         "Weapon and mechanism of injury",
		strongMarkers: []string{"weapon recovered", "forensic match"},
		weakMarkers:   []string{"mechanism unclear", "object not recovered", "possibly a", "consistent with either"},
	},
	{
		id:            models.ElementActCausation,
		label:         "The act and its causation",
		strongMarkers: []string{"admitted striking", "captured on cctv"},
		weakMarkers:   []string{"no witness to the act", "disputed sequence", "melee"},
	},
}

// BuildElementStates produces the element states the evaluator consumes.
// Explicitly supplied states win; they are normalized but never second-
// guessed. When none are supplied the builder derives a conservative set
// from the extracted free text.
func BuildElementStates(input models.CaseInput, parsed []DocumentFacts) []models.ElementState {
	if len(input.Elements) > 0 {
		out := make([]models.ElementState, len(input.Elements))
		for i, state := range input.Elements {
			out[i] = normalizeElement(state)
		}
		return out
	}

	text := CollectText(input, parsed)
	states := make([]models.ElementState, 0, len(coreElements))
	for _, def := range coreElements {
		states = append(states, models.ElementState{
			ID:      def.id,
			Label:   def.label,
			Support: deriveSupport(text, def.strongMarkers, def.weakMarkers),
		})
	}
	return states
}

func deriveSupport(text string, strongMarkers, weakMarkers []string) models.Support {
	if text == "" {
		return models.SupportUnknown
	}
	weak := containsAny(text, weakMarkers)
	strong := containsAny(text, strongMarkers)
	switch {
	case strong && !weak:
		return models.SupportStrong
	case strong && weak:
		return models.SupportSome
	case weak:
		return models.SupportWeak
	}
	return models.SupportUnknown
}

func normalizeElement(state models.ElementState) models.ElementState {
	switch state.Support {
	case models.SupportNone, models.SupportWeak, models.SupportSome, models.SupportStrong:
	default:
		state.Support = models.SupportUnknown
	}
	return state
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
