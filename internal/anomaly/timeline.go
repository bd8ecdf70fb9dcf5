package anomaly

import (
	"fmt"
	"sort"
	"time"

	"github.com/casemark/strategist/internal/extraction"
	"github.com/casemark/strategist/pkg/models"
)

// detectTimelineGaps merges dated events from the supplied timeline and
// from document-level extracted dates, then reports unusual gaps between
// adjacent events and unusually compressed activity.
func (s *Service) detectTimelineGaps(input models.CaseInput, parsed []extraction.DocumentFacts) []models.Observation {
	events := append([]models.TimelineEvent{}, input.Timeline...)
	events = append(events, extraction.TimelineEvents(parsed)...)
	if len(events) < 2 {
		return nil
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate)
	})

	var observations []models.Observation
	for i := 1; i < len(events); i++ {
		prev, next := events[i-1], events[i]
		gapDays := int(next.EventDate.Sub(prev.EventDate).Hours() / 24)
		if gapDays <= s.config.GapDays {
			continue
		}

		leverage := models.LeverageLow
		switch {
		case gapDays > s.config.HighGapDays:
			leverage = models.LeverageHigh
		case gapDays >= s.config.MediumGapDays:
			leverage = models.LeverageMedium
		}

		observations = append(observations, models.Observation{
			ID:                fmt.Sprintf("timeline_gap_%d", len(observations)+1),
			Type:              models.ObservationTimelineAnomaly,
			Description:       fmt.Sprintf("%d-day gap between %q and %q", gapDays, prev.Description, next.Description),
			WhyUnusual:        fmt.Sprintf("an active matter rarely goes quiet for %d days without generated records", gapDays),
			WhatShouldExist:   "correspondence, file notes, or system entries covering the gap",
			LeveragePotential: leverage,
			RelatedDates: []string{
				prev.EventDate.Format("2006-01-02"),
				next.EventDate.Format("2006-01-02"),
			},
		})
	}

	if obs, ok := s.detectCompressedTimeline(events); ok {
		observations = append(observations, obs)
	}
	return observations
}

// detectCompressedTimeline flags a burst of recent activity: more than the
// configured number of events inside one window, within the trailing 90
// days of the timeline. The reference point is the latest event, not the
// wall clock, so the result is reproducible.
func (s *Service) detectCompressedTimeline(sorted []models.TimelineEvent) (models.Observation, bool) {
	latest := sorted[len(sorted)-1].EventDate
	recentCutoff := latest.AddDate(0, 0, -90)

	var recent []time.Time
	for _, event := range sorted {
		if !event.EventDate.Before(recentCutoff) {
			recent = append(recent, event.EventDate)
		}
	}

	window := time.Duration(s.config.ClusterWindowDays) * 24 * time.Hour
	for start := 0; start < len(recent); start++ {
		end := start
		for end < len(recent) && recent[end].Sub(recent[start]) <= window {
			end++
		}
		if end-start > s.config.ClusterMinEvents {
			return models.Observation{
				ID:                "timeline_compressed",
				Type:              models.ObservationTimelineAnomaly,
				Description:       fmt.Sprintf("%d events inside a %d-day window", end-start, s.config.ClusterWindowDays),
				WhyUnusual:        "a sudden burst of recorded activity often follows an undisclosed internal review",
				WhatShouldExist:   "the instruction or incident that prompted the burst of activity",
				LeveragePotential: models.LeverageMedium,
				RelatedDates: []string{
					recent[start].Format("2006-01-02"),
					recent[end-1].Format("2006-01-02"),
				},
			}, true
		}
	}
	return models.Observation{}, false
}
