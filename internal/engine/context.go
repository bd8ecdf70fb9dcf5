package engine

import (
	"github.com/casemark/strategist/internal/extraction"
	"github.com/casemark/strategist/internal/strategy"
	"github.com/casemark/strategist/pkg/models"
)

func strategyEvaluate(input models.CaseInput, elements []models.ElementState, parsed []extraction.DocumentFacts) []models.RouteAssessment {
	return strategy.Evaluate(strategy.Context{
		Charge:           input.Charge,
		ProceduralStatus: input.ProceduralStatus,
		Elements:         elements,
		Dependencies:     input.Dependencies,
		Position:         input.Position,
		Text:             extraction.CollectText(input, parsed),
	})
}

func strategyPaths(routes []models.RouteAssessment) []models.AttackPath {
	return strategy.BuildAttackPaths(routes)
}
