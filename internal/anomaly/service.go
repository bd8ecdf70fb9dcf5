// Package anomaly scans the case timeline, documents, and evidence map for
// observations worth pressing on: timeline gaps, narrative inconsistencies,
// evidence gaps, and governance gaps. The detector emits at most six
// observations per case, highest leverage first.
package anomaly

import (
	"sort"

	"github.com/casemark/strategist/internal/extraction"
	"github.com/casemark/strategist/internal/practice"
	"github.com/casemark/strategist/pkg/models"
)

// Config holds detector thresholds.
type Config struct {
	MaxObservations   int
	GapDays           int // minimum adjacent-event gap worth reporting
	HighGapDays       int
	MediumGapDays     int
	ClusterWindowDays int // compressed-timeline window
	ClusterMinEvents  int
	KeyLength         int // normalized-key prefix for inconsistency grouping
}

// DefaultConfig returns the thresholds used in production.
func DefaultConfig() Config {
	return Config{
		MaxObservations:   6,
		GapDays:           30,
		HighGapDays:       90,
		MediumGapDays:     60,
		ClusterWindowDays: 30,
		ClusterMinEvents:  10,
		KeyLength:         40,
	}
}

// Service runs the sub-detectors and merges their output.
type Service struct {
	config Config
}

// NewService creates a detector, filling unset thresholds from defaults.
func NewService(config Config) *Service {
	def := DefaultConfig()
	if config.MaxObservations <= 0 {
		config.MaxObservations = def.MaxObservations
	}
	if config.GapDays <= 0 {
		config.GapDays = def.GapDays
	}
	if config.HighGapDays <= 0 {
		config.HighGapDays = def.HighGapDays
	}
	if config.MediumGapDays <= 0 {
		config.MediumGapDays = def.MediumGapDays
	}
	if config.ClusterWindowDays <= 0 {
		config.ClusterWindowDays = def.ClusterWindowDays
	}
	if config.ClusterMinEvents <= 0 {
		config.ClusterMinEvents = def.ClusterMinEvents
	}
	if config.KeyLength <= 0 {
		config.KeyLength = def.KeyLength
	}
	return &Service{config: config}
}

// Detect runs every sub-detector, merges, ranks by leverage (stable on
// ties, preserving detection order), and truncates to the cap.
func (s *Service) Detect(input models.CaseInput, parsed []extraction.DocumentFacts, area practice.Area) []models.Observation {
	var all []models.Observation
	all = append(all, s.detectTimelineGaps(input, parsed)...)
	all = append(all, s.detectInconsistencies(parsed)...)
	all = append(all, s.detectEvidenceGaps(input.Documents, area.Checklist)...)
	all = append(all, s.detectGovernanceGaps(input.Documents, area.Governance)...)
	if extra, ok := s.detectPracticeSpecific(input, parsed, area); ok {
		all = append(all, extra)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return models.LeverageRank(all[i].LeveragePotential) > models.LeverageRank(all[j].LeveragePotential)
	})

	if len(all) > s.config.MaxObservations {
		all = all[:s.config.MaxObservations]
	}
	return all
}
