// Package moves turns strategy angles into a costed, dependency-ordered
// sequence of moves. Generation and sequencing are pure transformations:
// each pass produces new slices, and the sequenced output always carries a
// contiguous 1..N order with every dependency pointing at an earlier move.
package moves

import (
	"fmt"

	"github.com/casemark/strategist/pkg/models"
)

// Angle is one candidate line of action, usually derived from an open
// attack path.
type Angle struct {
	Action            string
	EvidenceRequested string
	OutOfOrderNote    string
}

// Per-phase cost constants.
const (
	costExtraction = 50
	costCommitment = 500
	costEscalation = 2000

	// expertTierCost is the reference spend for instructing an expert,
	// used by the cost analysis.
	expertTierCost = 5000
)

// Generate produces the initial move list. The angle's position decides
// its phase: the first three angles are cheap information extraction, the
// next two force commitment, the rest escalate. Information gain decays
// with position. Dependencies start as a simple linear chain.
func Generate(angles []Angle) []models.Move {
	out := make([]models.Move, 0, len(angles))
	for i, angle := range angles {
		move := models.Move{
			Order:             i + 1,
			Action:            angle.Action,
			EvidenceRequested: angle.EvidenceRequested,
			OutOfOrderNote:    angle.OutOfOrderNote,
		}

		switch {
		case i < 3:
			move.Phase = models.PhaseInformationExtraction
			move.Cost = costExtraction
			move.CommitmentLevel = models.CommitmentLow
		case i < 5:
			move.Phase = models.PhaseCommitmentForcing
			move.Cost = costCommitment
			move.CommitmentLevel = models.CommitmentMedium
		default:
			move.Phase = models.PhaseEscalation
			move.Cost = costEscalation
			move.CommitmentLevel = models.CommitmentHigh
		}

		switch {
		case i < 2:
			move.InformationGain = models.LeverageHigh
		case i < 4:
			move.InformationGain = models.LeverageMedium
		default:
			move.InformationGain = models.LeverageLow
		}

		if i > 0 {
			move.Dependencies = []int{i}
		}
		out = append(out, move)
	}
	return out
}

// AnglesFromPaths derives angles from open attack paths, cheapest-to-probe
// first: viable routes ahead of risky ones, catalog order within each.
func AnglesFromPaths(paths []models.AttackPath, assessments []models.RouteAssessment) []Angle {
	status := make(map[models.RouteID]models.RouteStatus, len(assessments))
	for _, a := range assessments {
		status[a.RouteID] = a.Status
	}

	var angles []Angle
	for _, want := range []models.RouteStatus{models.RouteViable, models.RouteRisky} {
		for _, path := range paths {
			if status[path.Route] != want {
				continue
			}
			angle := Angle{
				Action:            path.Name,
				EvidenceRequested: firstInput(path),
			}
			if want == models.RouteRisky {
				angle.OutOfOrderNote = fmt.Sprintf(
					"acting on %q before the viable routes are exhausted commits the defence while the route is still risky",
					path.Name)
			}
			angles = append(angles, angle)
		}
	}
	return angles
}

func firstInput(path models.AttackPath) string {
	if len(path.EvidenceInputs) > 0 {
		return path.EvidenceInputs[0]
	}
	return ""
}
