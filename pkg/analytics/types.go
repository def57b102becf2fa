// Package analytics contains the read-only passes that run over a finished
// simulation trajectory. Each pass consumes the same immutable snapshot and
// writes nothing shared, so the suite runs them concurrently.
package analytics

import (
	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
	"github.com/dd0wney/cluso-corrosim/pkg/validation"
)

// Snapshot is the finished trajectory and final network state handed to
// every pass. Passes must treat it as immutable.
type Snapshot struct {
	Net       *netmodel.Network
	Timeline  []netmodel.TimelineEntry
	Scenarios []validation.InterventionScenario
}

// LayerSummary is one layer's listing in the layer analysis.
type LayerSummary struct {
	ID               string                   `json:"id"`
	Type             netmodel.LayerType       `json:"type"`
	FormationDay     int                      `json:"formation_day"`
	PersistenceScore float64                  `json:"persistence_score"`
	Members          []string                 `json:"members"`
	MutationEvents   []netmodel.MutationEvent `json:"mutation_events,omitempty"`
}

// LayerInteraction is a cross-layer membership overlap strong enough to report.
type LayerInteraction struct {
	LayerA   string  `json:"layer_a"`
	LayerB   string  `json:"layer_b"`
	Strength float64 `json:"strength"`
	Kind     string  `json:"kind"` // synergistic | competitive | neutral
}

// LayerAnalysisResult lists all layers with an aggregate protection score
// and the pairwise interactions above the reporting threshold.
type LayerAnalysisResult struct {
	Layers          []LayerSummary     `json:"layers"`
	ProtectionScore float64            `json:"protection_score"`
	Interactions    []LayerInteraction `json:"interactions,omitempty"`
}

// AccumulationResult carries each node's time-weighted average corruption
// exposure and the hotspot nodes above the threshold.
type AccumulationResult struct {
	Indices  map[string]float64 `json:"indices"`
	Hotspots []string           `json:"hotspots,omitempty"`
}

// PersistenceResult carries each node's high-corruption dwell fraction,
// observed recovery events, and the chronically corrupted nodes.
type PersistenceResult struct {
	Scores         map[string]float64 `json:"scores"`
	RecoveryEvents map[string]int     `json:"recovery_events,omitempty"`
	ChronicNodes   []string           `json:"chronic_nodes,omitempty"`
}

// MutationTrackingResult flattens the layer-recorded mutation events and
// scores each node's evolutionary pressure.
type MutationTrackingResult struct {
	Events         []netmodel.MutationEvent `json:"events,omitempty"`
	PressureScores map[string]float64       `json:"pressure_scores"`
	Flags          []string                 `json:"flags,omitempty"`
}

// ScenarioScore is one intervention scenario's computed standing.
type ScenarioScore struct {
	Name               string  `json:"name"`
	InterventionType   string  `json:"intervention_type"`
	EffectivenessScore float64 `json:"effectiveness_score"`
	CostBenefit        float64 `json:"cost_benefit"`
}

// Recommendation is one of the top-ranked scenarios with staggered timing.
type Recommendation struct {
	Scenario           string  `json:"scenario"`
	RecommendedDay     int     `json:"recommended_day"`
	Confidence         float64 `json:"confidence"`
	ResourceAllocation float64 `json:"resource_allocation"`
}

// InterventionOptimizationResult ranks the input scenarios by cost-benefit
// and recommends the top ones.
type InterventionOptimizationResult struct {
	Rankings        []ScenarioScore  `json:"rankings"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// RiskPrediction is one forward-looking risk estimate, emitted only when
// its confidence clears the per-type bar.
type RiskPrediction struct {
	Type        string  `json:"type"` // outbreak | mutation
	Probability float64 `json:"probability"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// SuiteResult aggregates whichever passes the request asked for. Risk
// predictions always run.
type SuiteResult struct {
	LayerAnalysis    *LayerAnalysisResult            `json:"layer_analysis,omitempty"`
	Accumulation     *AccumulationResult             `json:"accumulation,omitempty"`
	Persistence      *PersistenceResult              `json:"persistence,omitempty"`
	MutationTracking *MutationTrackingResult         `json:"mutation_tracking,omitempty"`
	InterventionPlan *InterventionOptimizationResult `json:"intervention_optimization,omitempty"`
	RiskPredictions  []RiskPrediction                `json:"risk_predictions,omitempty"`
}
