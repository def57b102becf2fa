// Package insights turns analytics output into human-readable findings.
package insights

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-corrosim/pkg/analytics"
)

// RunFacts is the slice of the simulation summary the generator needs.
type RunFacts struct {
	FinalTotalCorruption float64
	PeakCorruption       float64
	PeakDay              int
	SystemCaptured       bool
	LayersFormed         int
	NodeCount            int
}

// Generate derives free-text findings from the run facts and whichever
// analytics passes ran. Nil suite fields are skipped.
func Generate(facts RunFacts, suite *analytics.SuiteResult) []string {
	var findings []string

	if facts.SystemCaptured {
		findings = append(findings,
			fmt.Sprintf("System captured: total corruption exceeded the capture threshold on day %d.", facts.PeakDay))
	} else if facts.FinalTotalCorruption > 0.6 {
		findings = append(findings,
			fmt.Sprintf("Corruption remains widespread at the end of the run (mean %.2f).", facts.FinalTotalCorruption))
	} else if facts.PeakCorruption > facts.FinalTotalCorruption+0.1 {
		findings = append(findings,
			fmt.Sprintf("Corruption peaked at %.2f on day %d and has since receded to %.2f.",
				facts.PeakCorruption, facts.PeakDay, facts.FinalTotalCorruption))
	}

	if facts.LayersFormed > 0 {
		findings = append(findings,
			fmt.Sprintf("%d corruption layers formed during the run.", facts.LayersFormed))
	}

	if suite == nil {
		return findings
	}

	if la := suite.LayerAnalysis; la != nil && la.ProtectionScore > 0.5 {
		findings = append(findings,
			fmt.Sprintf("Layered protection is entrenched (protection score %.2f); remediation must break deep and core layers first.", la.ProtectionScore))
	}
	if la := suite.LayerAnalysis; la != nil {
		for _, interaction := range la.Interactions {
			if interaction.Kind == "synergistic" {
				findings = append(findings,
					fmt.Sprintf("Core layers %s and %s reinforce each other (overlap %.2f).",
						interaction.LayerA, interaction.LayerB, interaction.Strength))
			}
		}
	}

	if acc := suite.Accumulation; acc != nil && len(acc.Hotspots) > 0 {
		findings = append(findings,
			fmt.Sprintf("Accumulation hotspots: %s.", strings.Join(acc.Hotspots, ", ")))
	}

	if per := suite.Persistence; per != nil && len(per.ChronicNodes) > 0 {
		findings = append(findings,
			fmt.Sprintf("Chronically corrupted nodes: %s.", strings.Join(per.ChronicNodes, ", ")))
	}

	if mt := suite.MutationTracking; mt != nil {
		for _, flag := range mt.Flags {
			switch flag {
			case "high_adaptation_pressure":
				findings = append(findings,
					"Corruption is adapting faster than it is resisting; interventions are reshaping rather than reducing it.")
			case "resistance_emergence":
				findings = append(findings,
					"Resistance mutations are accumulating; intervention effectiveness will degrade over time.")
			}
		}
	}

	if plan := suite.InterventionPlan; plan != nil && len(plan.Recommendations) > 0 {
		top := plan.Recommendations[0]
		findings = append(findings,
			fmt.Sprintf("Best-value intervention: %q starting around day %d (confidence %.2f).",
				top.Scenario, top.RecommendedDay, top.Confidence))
	}

	for _, risk := range suite.RiskPredictions {
		findings = append(findings,
			fmt.Sprintf("Risk (%s): probability %.2f, confidence %.2f (%s).",
				risk.Type, risk.Probability, risk.Confidence, risk.Description))
	}

	return findings
}
