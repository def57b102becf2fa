package validation

import "github.com/dd0wney/cluso-corrosim/pkg/netmodel"

// Analysis focus values a request may ask for. Risk prediction always runs
// and is not part of the optional set.
const (
	FocusLayerAnalysis            = "layer_analysis"
	FocusAccumulation             = "accumulation"
	FocusPersistence              = "persistence"
	FocusMutationTracking         = "mutation_tracking"
	FocusInterventionOptimization = "intervention_optimization"
)

// NodeSpec describes one entity in the input network.
type NodeSpec struct {
	ID                     string  `json:"id" yaml:"id" validate:"required,max=100"`
	Name                   string  `json:"name" yaml:"name" validate:"required,max=200"`
	InitialCorruptionLevel float64 `json:"initial_corruption_level" yaml:"initial_corruption_level" validate:"min=0,max=1"`
	ResistanceFactor       float64 `json:"resistance_factor" yaml:"resistance_factor" validate:"min=0,max=1"`
	InstitutionalStrength  float64 `json:"institutional_strength" yaml:"institutional_strength" validate:"min=0,max=1"`
	ExposureRisk           float64 `json:"exposure_risk" yaml:"exposure_risk" validate:"min=0,max=1"`
	RecoveryRate           float64 `json:"recovery_rate" yaml:"recovery_rate" validate:"min=0,max=1"`
}

// EdgeSpec describes one influence channel in the input network.
type EdgeSpec struct {
	Source            string  `json:"source" yaml:"source" validate:"required"`
	Target            string  `json:"target" yaml:"target" validate:"required"`
	DiffusionStrength float64 `json:"diffusion_strength" yaml:"diffusion_strength" validate:"min=0,max=1"`
	RelationshipType  string  `json:"relationship_type" yaml:"relationship_type" validate:"required"`
	Bidirectional     bool    `json:"bidirectional" yaml:"bidirectional"`
}

// SimulationParams are the numeric knobs of the simulation loop. Ranges
// follow the external contract; TimeStep is a fraction of a day.
type SimulationParams struct {
	TimeHorizon           float64 `json:"time_horizon" yaml:"time_horizon" validate:"min=1,max=365"`
	TimeStep              float64 `json:"time_step" yaml:"time_step" validate:"min=0.01,max=1"`
	DiffusionCoefficient  float64 `json:"diffusion_coefficient" yaml:"diffusion_coefficient" validate:"min=0,max=1"`
	GrowthRate            float64 `json:"growth_rate" yaml:"growth_rate" validate:"min=0,max=1"`
	CarryingCapacity      float64 `json:"carrying_capacity" yaml:"carrying_capacity" validate:"min=0,max=1"`
	MutationProbability   float64 `json:"mutation_probability" yaml:"mutation_probability" validate:"min=0,max=0.1"`
	InterventionThreshold float64 `json:"intervention_threshold" yaml:"intervention_threshold" validate:"min=0,max=1"`
	// RandomSeed pins the run's random generator for reproducibility.
	// Nil means seed from the clock.
	RandomSeed *int64 `json:"random_seed,omitempty" yaml:"random_seed,omitempty"`
}

// InterventionScenario is one remediation strategy to simulate and score.
type InterventionScenario struct {
	Name             string   `json:"name" yaml:"name" validate:"required,max=100"`
	StartDay         float64  `json:"start_day" yaml:"start_day" validate:"min=0"`
	Duration         float64  `json:"duration" yaml:"duration" validate:"gt=0"`
	TargetNodes      []string `json:"target_nodes,omitempty" yaml:"target_nodes,omitempty"`
	InterventionType string   `json:"intervention_type" yaml:"intervention_type" validate:"required"`
	Effectiveness    float64  `json:"effectiveness" yaml:"effectiveness" validate:"min=0,max=1"`
	Cost             float64  `json:"cost" yaml:"cost" validate:"min=0"`
}

// SimulationRequest is the full validated input contract of a run. Empty
// node and edge lists are legal and produce a trivial run.
type SimulationRequest struct {
	NetworkNodes          []NodeSpec             `json:"network_nodes" yaml:"network_nodes" validate:"dive"`
	NetworkEdges          []EdgeSpec             `json:"network_edges" yaml:"network_edges" validate:"dive"`
	SimulationParams      SimulationParams       `json:"simulation_params" yaml:"simulation_params"`
	InterventionScenarios []InterventionScenario `json:"intervention_scenarios,omitempty" yaml:"intervention_scenarios,omitempty" validate:"dive"`
	AnalysisFocus         []string               `json:"analysis_focus,omitempty" yaml:"analysis_focus,omitempty"`
}

// WantsFocus reports whether the request asked for the given optional
// analytics pass.
func (r *SimulationRequest) WantsFocus(focus string) bool {
	for _, f := range r.AnalysisFocus {
		if f == focus {
			return true
		}
	}
	return false
}

// RelationType returns the edge's relationship type as a model enum.
func (e *EdgeSpec) RelationType() netmodel.RelationshipType {
	return netmodel.RelationshipType(e.RelationshipType)
}

// Type returns the scenario's intervention type as a model enum.
func (s *InterventionScenario) Type() netmodel.InterventionType {
	return netmodel.InterventionType(s.InterventionType)
}
