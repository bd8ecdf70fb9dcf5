package models

// Support describes how well an element of the offence or claim is
// supported by the evidence currently served.
type Support string

const (
	SupportNone    Support = "none"
	SupportWeak    Support = "weak"
	SupportSome    Support = "some"
	SupportStrong  Support = "strong"
	SupportUnknown Support = "unknown"
)

// EvidenceRef identifies a piece of evidence referenced by an element gap
// or a route dependency.
type EvidenceRef string

// ElementState maps a legal element (identification, intent, causation...)
// to its current support level and the evidence gaps behind it.
type ElementState struct {
	ID      string        `json:"id"`
	Label   string        `json:"label"`
	Support Support       `json:"support"`
	Gaps    []EvidenceRef `json:"gaps,omitempty"`
}

// DependencyStatus tracks an awaited disclosure item.
type DependencyStatus string

const (
	DependencyOutstanding DependencyStatus = "outstanding"
	DependencyServed      DependencyStatus = "served"
	DependencyUnknown     DependencyStatus = "unknown"
)

// Dependency represents an awaited disclosure or evidence item.
type Dependency struct {
	ID     string           `json:"id"`
	Status DependencyStatus `json:"status"`
}

// RouteID identifies one of the eight canonical strategy routes. Routes are
// a closed catalog: they are never synthesized dynamically.
type RouteID string

const (
	RouteProceduralDisclosureLeverage RouteID = "procedural_disclosure_leverage"
	RouteIdentificationChallenge      RouteID = "identification_challenge"
	RouteIntentDenial                 RouteID = "intent_denial"
	RouteWeaponUncertaintyCausation   RouteID = "weapon_uncertainty_causation"
	RouteActDenial                    RouteID = "act_denial"
	RouteSelfDefence                  RouteID = "self_defence"
	RouteAlternativeMentalState       RouteID = "alternative_mental_state_offence"
	RouteMitigationEarlyResolution    RouteID = "mitigation_early_resolution"
)

// AllRoutes is the canonical catalog, in evaluation order.
var AllRoutes = [8]RouteID{
	RouteProceduralDisclosureLeverage,
	RouteIdentificationChallenge,
	RouteIntentDenial,
	RouteWeaponUncertaintyCausation,
	RouteActDenial,
	RouteSelfDefence,
	RouteAlternativeMentalState,
	RouteMitigationEarlyResolution,
}

// RouteStatus is the viability verdict for a route.
type RouteStatus string

const (
	RouteViable  RouteStatus = "viable"
	RouteRisky   RouteStatus = "risky"
	RouteBlocked RouteStatus = "blocked"
)

// RouteAssessment is the evaluator's verdict on a single canonical route.
type RouteAssessment struct {
	RouteID              RouteID     `json:"route_id"`
	Status               RouteStatus `json:"status"`
	Reasons              []string    `json:"reasons"`
	RequiredDependencies []string    `json:"required_dependencies,omitempty"`
	Constraints          []string    `json:"constraints,omitempty"`
}

// AttackPath is a concrete line of attack under a route, with the evidence
// inputs it declares an interest in.
type AttackPath struct {
	ID             string   `json:"id"`
	Route          RouteID  `json:"route"`
	Name           string   `json:"name"`
	EvidenceInputs []string `json:"evidence_inputs"`
}

// EvidenceCategory classifies evidence for matching heuristics.
type EvidenceCategory string

const (
	CategoryVisual     EvidenceCategory = "visual"
	CategoryDocument   EvidenceCategory = "document"
	CategoryProcedural EvidenceCategory = "procedural"
	CategoryMedical    EvidenceCategory = "medical"
	CategoryOther      EvidenceCategory = "other"
)

// EvidenceUrgency tells the caller when an item is needed by.
type EvidenceUrgency string

const (
	UrgencyBeforePTPH  EvidenceUrgency = "before_ptph"
	UrgencyBeforeTrial EvidenceUrgency = "before_trial"
	UrgencyAnytime     EvidenceUrgency = "anytime"
)

// EvidenceItem is a missing or incoming piece of evidence.
type EvidenceItem struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category EvidenceCategory `json:"category"`
	Urgency  EvidenceUrgency  `json:"urgency"`
}

// ImpactDirection says which side an arriving item is expected to help.
type ImpactDirection string

const (
	ImpactHelps   ImpactDirection = "helps"
	ImpactHurts   ImpactDirection = "hurts"
	ImpactNeutral ImpactDirection = "neutral"
	ImpactDepends ImpactDirection = "depends"
)

// ViabilityChangeKind describes how an arriving item moves a route.
type ViabilityChangeKind string

const (
	ChangeStrengthens ViabilityChangeKind = "strengthens"
	ChangeWeakens     ViabilityChangeKind = "weakens"
	ChangeKills       ViabilityChangeKind = "kills"
	ChangeNeutral     ViabilityChangeKind = "neutral"
)

// ViabilityChange projects the effect of an evidence item on one route.
type ViabilityChange struct {
	Route       RouteID             `json:"route"`
	Change      ViabilityChangeKind `json:"change"`
	Explanation string              `json:"explanation"`
}

// EvidenceImpact projects the strategic effect of a missing item arriving.
// PivotTrigger and KillSwitch are set only when the category/route pairing
// has a named collapse condition; they are never fabricated.
type EvidenceImpact struct {
	EvidenceItem          EvidenceItem      `json:"evidence_item"`
	AffectedAttackPathIDs []string          `json:"affected_attack_path_ids"`
	ImpactOnDefence       ImpactDirection   `json:"impact_on_defence"`
	IfArrivesClean        string            `json:"if_arrives_clean"`
	IfArrivesLate         string            `json:"if_arrives_late"`
	IfArrivesAdverse      string            `json:"if_arrives_adverse"`
	ViabilityChanges      []ViabilityChange `json:"viability_changes,omitempty"`
	PivotTrigger          string            `json:"pivot_trigger,omitempty"`
	KillSwitch            string            `json:"kill_switch,omitempty"`
}

// MovePhase orders a campaign: extract information cheaply, force
// commitment, then escalate.
type MovePhase string

const (
	PhaseInformationExtraction MovePhase = "INFORMATION_EXTRACTION"
	PhaseCommitmentForcing     MovePhase = "COMMITMENT_FORCING"
	PhaseEscalation            MovePhase = "ESCALATION"
)

// CommitmentLevel is how much a move locks the defence in.
type CommitmentLevel string

const (
	CommitmentLow    CommitmentLevel = "LOW"
	CommitmentMedium CommitmentLevel = "MEDIUM"
	CommitmentHigh   CommitmentLevel = "HIGH"
)

// Leverage is the shared severity scale used for observation leverage and
// move information gain.
type Leverage string

const (
	LeverageLow      Leverage = "LOW"
	LeverageMedium   Leverage = "MEDIUM"
	LeverageHigh     Leverage = "HIGH"
	LeverageCritical Leverage = "CRITICAL"
)

// LeverageRank orders the severity scale, CRITICAL highest. Unknown values
// rank below LOW.
func LeverageRank(l Leverage) int {
	switch l {
	case LeverageCritical:
		return 4
	case LeverageHigh:
		return 3
	case LeverageMedium:
		return 2
	case LeverageLow:
		return 1
	}
	return 0
}

// ForkPoint branches a move on the opponent's response. Values are the
// order numbers of the moves to jump to.
type ForkPoint struct {
	IfAdmit   int `json:"if_admit"`
	IfDeny    int `json:"if_deny"`
	IfSilence int `json:"if_silence"`
}

// Move is one step of the sequenced action plan. After sequencing, Order
// values form a contiguous 1..N permutation and every dependency references
// a strictly smaller order.
type Move struct {
	Order             int             `json:"order"`
	Phase             MovePhase       `json:"phase"`
	Action            string          `json:"action"`
	EvidenceRequested string          `json:"evidence_requested"`
	Cost              int             `json:"cost"`
	CommitmentLevel   CommitmentLevel `json:"commitment_level"`
	InformationGain   Leverage        `json:"information_gain"`
	Dependencies      []int           `json:"dependencies,omitempty"`
	ForkPoint         *ForkPoint      `json:"fork_point,omitempty"`
	OutOfOrderNote    string          `json:"out_of_order_note,omitempty"`
}

// CostAnalysis summarises spend across a move sequence.
type CostAnalysis struct {
	CostBeforeExpert                      int    `json:"cost_before_expert"`
	ExpertSpendCondition                  string `json:"expert_spend_condition"`
	UnnecessarySpendAvoidedIfGapConfirmed int    `json:"unnecessary_spend_avoided_if_gap_confirmed"`
}

// ObservationType classifies what the anomaly detector found.
type ObservationType string

const (
	ObservationTimelineAnomaly ObservationType = "TIMELINE_ANOMALY"
	ObservationInconsistency   ObservationType = "INCONSISTENCY"
	ObservationEvidenceGap     ObservationType = "EVIDENCE_GAP"
	ObservationGovernanceGap   ObservationType = "GOVERNANCE_GAP"
)

// Observation is one anomaly worth pressing on. The detector emits at most
// six per case, highest leverage first.
type Observation struct {
	ID                string          `json:"id"`
	Type              ObservationType `json:"type"`
	Description       string          `json:"description"`
	WhyUnusual        string          `json:"why_unusual"`
	WhatShouldExist   string          `json:"what_should_exist"`
	LeveragePotential Leverage        `json:"leverage_potential"`
	RelatedDates      []string        `json:"related_dates,omitempty"`
	SourceDocumentIDs []string        `json:"source_document_ids,omitempty"`
}

// Tone is the recommended pressure level.
type Tone string

const (
	ToneProbe    Tone = "PROBE"
	TonePressure Tone = "PRESSURE"
	ToneStrike   Tone = "STRIKE"
)

// PressureTrigger recommends a tone for acting on an observation or rule.
type PressureTrigger struct {
	Trigger         string `json:"trigger"`
	WhyItMatters    string `json:"why_it_matters"`
	RecommendedTone Tone   `json:"recommended_tone"`
}

// Optics is the courtroom-perception verdict for a proposed action.
type Optics string

const (
	OpticsAttractive Optics = "attractive"
	OpticsNeutral    Optics = "neutral"
	OpticsRisky      Optics = "risky"
)

// OpticsResult explains an optics verdict. Factors is non-empty whenever
// the verdict is not the neutral default, so the decision stays auditable.
type OpticsResult struct {
	Optics      Optics   `json:"optics"`
	Explanation string   `json:"explanation"`
	Factors     []string `json:"factors,omitempty"`
}

// ProbabilityGateDecision says whether numeric confidence may be shown.
type ProbabilityGateDecision struct {
	Show   bool   `json:"show"`
	Reason string `json:"reason,omitempty"`
}
