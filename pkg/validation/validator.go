package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxNetworkNodes = 10000
	MaxNetworkEdges = 100000
	MaxScenarios    = 100
)

func init() {
	validate = validator.New()
}

// ValidateSimulationRequest checks a full simulation request against the
// input contract: struct tag ranges, enum membership, edge endpoint
// existence, and uniqueness of node IDs and scenario names.
func ValidateSimulationRequest(req *SimulationRequest) error {
	if req == nil {
		return errors.New("simulation request cannot be nil")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	if len(req.NetworkNodes) > MaxNetworkNodes {
		return fmt.Errorf("network_nodes: maximum %d nodes allowed, got %d", MaxNetworkNodes, len(req.NetworkNodes))
	}
	if len(req.NetworkEdges) > MaxNetworkEdges {
		return fmt.Errorf("network_edges: maximum %d edges allowed, got %d", MaxNetworkEdges, len(req.NetworkEdges))
	}
	if len(req.InterventionScenarios) > MaxScenarios {
		return fmt.Errorf("intervention_scenarios: maximum %d scenarios allowed, got %d", MaxScenarios, len(req.InterventionScenarios))
	}

	nodeIDs := make(map[string]bool, len(req.NetworkNodes))
	for i, node := range req.NetworkNodes {
		if nodeIDs[node.ID] {
			return fmt.Errorf("network_nodes[%d]: duplicate node id '%s'", i, node.ID)
		}
		nodeIDs[node.ID] = true
	}

	for i, edge := range req.NetworkEdges {
		if !edge.RelationType().Valid() {
			return fmt.Errorf("network_edges[%d]: unknown relationship_type '%s'", i, edge.RelationshipType)
		}
		if !nodeIDs[edge.Source] {
			return fmt.Errorf("network_edges[%d]: source node '%s' does not exist", i, edge.Source)
		}
		if !nodeIDs[edge.Target] {
			return fmt.Errorf("network_edges[%d]: target node '%s' does not exist", i, edge.Target)
		}
	}

	scenarioNames := make(map[string]bool, len(req.InterventionScenarios))
	for i, scenario := range req.InterventionScenarios {
		if !scenario.Type().Valid() {
			return fmt.Errorf("intervention_scenarios[%d]: unknown intervention_type '%s'", i, scenario.InterventionType)
		}
		if scenarioNames[scenario.Name] {
			return fmt.Errorf("intervention_scenarios[%d]: duplicate scenario name '%s'", i, scenario.Name)
		}
		scenarioNames[scenario.Name] = true
		for _, target := range scenario.TargetNodes {
			if !nodeIDs[target] {
				return fmt.Errorf("intervention_scenarios[%d]: target node '%s' does not exist", i, target)
			}
		}
	}

	for i, focus := range req.AnalysisFocus {
		if !validFocus(focus) {
			return fmt.Errorf("analysis_focus[%d]: unknown analysis '%s'", i, focus)
		}
	}

	return nil
}

// validFocus reports whether the focus names a known optional analytics pass.
func validFocus(focus string) bool {
	switch focus {
	case FocusLayerAnalysis, FocusAccumulation, FocusPersistence,
		FocusMutationTracking, FocusInterventionOptimization:
		return true
	}
	return false
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
