package analytics

import (
	"sort"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
	"github.com/dd0wney/cluso-corrosim/pkg/validation"
)

// MaxRecommendations caps how many top scenarios get a scheduled
// recommendation.
const MaxRecommendations = 3

// OptimizeInterventions scores every input scenario, ranks them by
// cost-benefit, and recommends the top ones with staggered timing and an
// equal resource split.
func OptimizeInterventions(scenarios []validation.InterventionScenario) *InterventionOptimizationResult {
	result := &InterventionOptimizationResult{
		Rankings: make([]ScenarioScore, 0, len(scenarios)),
	}

	for _, scenario := range scenarios {
		score := scenario.Effectiveness * typeMultiplier(scenario.Type())
		costBenefit := score
		if scenario.Cost > 0 {
			costBenefit = score / scenario.Cost
		}
		result.Rankings = append(result.Rankings, ScenarioScore{
			Name:               scenario.Name,
			InterventionType:   scenario.InterventionType,
			EffectivenessScore: score,
			CostBenefit:        costBenefit,
		})
	}

	sort.SliceStable(result.Rankings, func(i, j int) bool {
		a, b := result.Rankings[i], result.Rankings[j]
		if a.CostBenefit != b.CostBenefit {
			return a.CostBenefit > b.CostBenefit
		}
		return a.Name < b.Name
	})

	top := len(result.Rankings)
	if top > MaxRecommendations {
		top = MaxRecommendations
	}
	for i := 0; i < top; i++ {
		result.Recommendations = append(result.Recommendations, Recommendation{
			Scenario:           result.Rankings[i].Name,
			RecommendedDay:     i*30 + 15,
			Confidence:         0.8 - float64(i)*0.1,
			ResourceAllocation: 1.0 / float64(top),
		})
	}

	return result
}

// typeMultiplier weights a scenario's base effectiveness by how structural
// its intervention type is.
func typeMultiplier(interventionType netmodel.InterventionType) float64 {
	switch interventionType {
	case netmodel.InterventionAudit:
		return 1.2
	case netmodel.InterventionTraining:
		return 0.8
	case netmodel.InterventionPersonnelChange:
		return 1.5
	case netmodel.InterventionSystemReform:
		return 2.0
	case netmodel.InterventionIsolation:
		return 1.0
	default:
		return 0
	}
}
