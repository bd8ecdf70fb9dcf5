// Package engine composes the strategy components into a full case
// report. Every component is a pure function, so independent sections run
// concurrently; assembly order is fixed, making the report deterministic
// regardless of completion order.
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/casemark/strategist/internal/anomaly"
	"github.com/casemark/strategist/internal/evidence"
	"github.com/casemark/strategist/internal/extraction"
	"github.com/casemark/strategist/internal/impact"
	"github.com/casemark/strategist/internal/moves"
	"github.com/casemark/strategist/internal/optics"
	"github.com/casemark/strategist/internal/practice"
	"github.com/casemark/strategist/internal/pressure"
	"github.com/casemark/strategist/internal/probability"
	"github.com/casemark/strategist/pkg/models"
)

// Engine runs the strategy pipeline.
type Engine struct {
	detector *anomaly.Service
}

// New creates an engine with default detector thresholds.
func New() *Engine {
	return &Engine{detector: anomaly.NewService(anomaly.DefaultConfig())}
}

// Analyze produces the full strategic work-up for a case. It never fails
// on malformed input; every component degrades to typed defaults.
func (e *Engine) Analyze(ctx context.Context, input models.CaseInput) models.Report {
	area := practice.Load(input.PracticeArea)
	parsed := extraction.ParseDocuments(input.Documents)

	var (
		evidenceMap  models.EvidenceMap
		elements     []models.ElementState
		routes       []models.RouteAssessment
		paths        []models.AttackPath
		observations []models.Observation
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		evidenceMap = evidence.BuildMap(input.Documents, area.Checklist)
		return nil
	})
	g.Go(func() error {
		elements = extraction.BuildElementStates(input, parsed)
		routes = strategyEvaluate(input, elements, parsed)
		paths = strategyPaths(routes)
		return nil
	})
	g.Go(func() error {
		observations = e.detector.Detect(input, parsed, area)
		return nil
	})
	_ = g.Wait()

	impacts := impact.MapImpacts(evidence.MissingItems(evidenceMap), paths)

	angles := moves.AnglesFromPaths(paths, routes)
	sequenced := moves.Sequence(moves.Generate(angles))

	report := models.Report{
		CaseID:       input.CaseID,
		PracticeArea: area.ID,
		EvidenceMap:  evidenceMap,
		Elements:     elements,
		Routes:       routes,
		AttackPaths:  paths,
		Impacts:      impacts,
		Moves:        sequenced,
		MoveOptics:   scoreMoveOptics(sequenced),
		Warnings:     moves.Warnings(sequenced),
		Cost:         moves.AnalyzeCost(sequenced),
		Observations: observations,
		Triggers:     pressure.Generate(input, observations, evidenceMap, area),
		Probability:  probability.ShouldShow(area.ID, evidenceMap.Completeness, evidenceMap.CriticalMissingCount),
	}

	if report.Probability.Show && input.RawProbability != nil {
		calibrated := probability.Calibrate(*input.RawProbability, opposingStrength(elements))
		report.CalibratedProbability = &calibrated
	}
	return report
}

// scoreMoveOptics scores each sequenced move. Extraction-phase moves are
// early first requests; later phases inherit a chase trail from the moves
// they depend on.
func scoreMoveOptics(sequenced []models.Move) []models.OpticsResult {
	results := make([]models.OpticsResult, 0, len(sequenced))
	for _, move := range sequenced {
		sig := optics.Signals{
			Timing:          optics.TimingOnTime,
			Persistence:     optics.PersistenceFirstRequest,
			Proportionality: optics.Proportional,
			HasChaseTrail:   len(move.Dependencies) > 0,
		}
		if move.Phase == models.PhaseInformationExtraction {
			sig.Timing = optics.TimingEarly
		}
		results = append(results, optics.Score(move.Action+" "+move.EvidenceRequested, sig))
	}
	return results
}

// opposingStrength converts element support into a 0-100 opposing-evidence
// strength for probability calibration.
func opposingStrength(elements []models.ElementState) float64 {
	if len(elements) == 0 {
		return 50 // nothing assessed: calibrate conservatively
	}
	scores := make([]float64, 0, len(elements))
	for _, el := range elements {
		scores = append(scores, supportScore(el.Support))
	}
	return stat.Mean(scores, nil)
}

func supportScore(s models.Support) float64 {
	switch s {
	case models.SupportStrong:
		return 100
	case models.SupportSome:
		return 60
	case models.SupportWeak:
		return 25
	case models.SupportNone:
		return 0
	}
	return 50
}
