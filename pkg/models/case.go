package models

import (
	"encoding/json"
	"time"
)

// Canonical element ids the route evaluator keys on. Callers supplying
// their own ElementStates should use these ids for the core elements.
const (
	ElementIdentification  = "identification"
	ElementSpecificIntent  = "specific_intent"
	ElementWeaponCausation = "weapon_causation"
	ElementActCausation    = "act_causation"
)

// Document is an uploaded case document, with the extraction payload
// produced by the (external) ingestion pipeline attached as raw JSON.
type Document struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
}

// TimelineEvent is a dated event supplied by the caller or extracted from
// a document.
type TimelineEvent struct {
	EventDate   time.Time `json:"event_date"`
	Description string    `json:"description"`
}

// ProceduralStatus is the externally assessed procedural-safety position
// (custody, interview, disclosure handling).
type ProceduralStatus string

const (
	ProceduralSafe                ProceduralStatus = "SAFE"
	ProceduralConditionallyUnsafe ProceduralStatus = "CONDITIONALLY_UNSAFE"
	ProceduralUnsafe              ProceduralStatus = "UNSAFE"
	ProceduralUnknown             ProceduralStatus = "UNKNOWN"
)

// Charge describes the offence as charged. SpecificIntent marks the
// higher-intent variant of the charge where one exists.
type Charge struct {
	Offence        string `json:"offence"`
	SpecificIntent bool   `json:"specific_intent"`
}

// CasePosition is an explicitly recorded human decision about the case
// posture. The evaluator never infers it.
type CasePosition struct {
	GuiltyPosture   bool   `json:"guilty_posture"`
	EarlyResolution bool   `json:"early_resolution"`
	Note            string `json:"note,omitempty"`
}

// ChecklistItem is one expected-evidence entry in a practice-area
// checklist. Patterns are matched case-insensitively against document
// names, types, and serialized extracted content.
type ChecklistItem struct {
	ID       string           `json:"id" yaml:"id"`
	Name     string           `json:"name" yaml:"name"`
	Patterns []string         `json:"patterns" yaml:"patterns"`
	IsCore   bool             `json:"is_core" yaml:"is_core"`
	Category EvidenceCategory `json:"category" yaml:"category"`
	Priority Leverage         `json:"priority" yaml:"priority"`
	Urgency  EvidenceUrgency  `json:"urgency" yaml:"urgency"`
}

// GovernanceRule is a domain record-keeping obligation checked by the
// anomaly detector.
type GovernanceRule struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Patterns        []string `json:"patterns" yaml:"patterns"`
	WhatShouldExist string   `json:"what_should_exist" yaml:"what_should_exist"`
}

// CategoryCoverage reports checklist coverage for one evidence category.
type CategoryCoverage struct {
	Category EvidenceCategory `json:"category"`
	Expected int              `json:"expected"`
	Present  int              `json:"present"`
	Coverage float64          `json:"coverage"`
}

// EvidenceMap is the output of classifying the served documents against a
// practice-area checklist.
type EvidenceMap struct {
	Coverage            []CategoryCoverage `json:"coverage"`
	Missing             []ChecklistItem    `json:"missing,omitempty"`
	MissingCore         []ChecklistItem    `json:"missing_core,omitempty"`
	Completeness        float64            `json:"completeness"`
	CriticalMissingCount int               `json:"critical_missing_count"`
}

// CaseInput is everything the strategy core consumes for one case. All
// fields are supplied by external collaborators; missing fields degrade to
// safe defaults rather than failing.
type CaseInput struct {
	CaseID           string           `json:"case_id"`
	PracticeArea     string           `json:"practice_area"`
	Charge           Charge           `json:"charge"`
	Documents        []Document       `json:"documents,omitempty"`
	Timeline         []TimelineEvent  `json:"timeline,omitempty"`
	Elements         []ElementState   `json:"elements,omitempty"`
	Dependencies     []Dependency     `json:"dependencies,omitempty"`
	Position         *CasePosition    `json:"position,omitempty"`
	ProceduralStatus ProceduralStatus `json:"procedural_status,omitempty"`
	ExtractedText    string           `json:"extracted_text,omitempty"`
	RawProbability   *float64         `json:"raw_probability,omitempty"`
}

// Report is the full strategic work-up for a case. It is recomputed per
// request; identical inputs produce byte-identical reports.
type Report struct {
	CaseID                string                  `json:"case_id"`
	PracticeArea          string                  `json:"practice_area"`
	EvidenceMap           EvidenceMap             `json:"evidence_map"`
	Elements              []ElementState          `json:"elements,omitempty"`
	Routes                []RouteAssessment       `json:"routes"`
	AttackPaths           []AttackPath            `json:"attack_paths,omitempty"`
	Impacts               []EvidenceImpact        `json:"impacts,omitempty"`
	Moves                 []Move                  `json:"moves,omitempty"`
	MoveOptics            []OpticsResult          `json:"move_optics,omitempty"`
	Warnings              []string                `json:"warnings,omitempty"`
	Cost                  CostAnalysis            `json:"cost"`
	Observations          []Observation           `json:"observations,omitempty"`
	Triggers              []PressureTrigger       `json:"triggers"`
	Probability           ProbabilityGateDecision `json:"probability"`
	CalibratedProbability *float64                `json:"calibrated_probability,omitempty"`
}
