// Command corrosim runs a corruption-dynamics simulation from a YAML
// scenario file and prints a report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-corrosim/pkg/engine"
	"github.com/dd0wney/cluso-corrosim/pkg/validation"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML scenario file")
	seed := flag.Int64("seed", 0, "random seed (0 = seed from the scenario file or the clock)")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "usage: corrosim -scenario <file.yaml> [-seed N]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*scenarioPath)
	if err != nil {
		log.Fatalf("Failed to read scenario: %v", err)
	}

	var req validation.SimulationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		log.Fatalf("Failed to parse scenario: %v", err)
	}
	if *seed != 0 {
		req.SimulationParams.RandomSeed = seed
	}

	result, err := engine.Run(&req, engine.Options{})
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	printReport(result)
}

// printReport writes a human-readable run report to stdout.
func printReport(result *engine.SimulationResult) {
	fmt.Println()
	fmt.Println("=========================================================================")
	fmt.Println(" Corruption Dynamics Simulation")
	fmt.Println("=========================================================================")
	fmt.Println()
	fmt.Printf(" Run: %s\n", result.RunID)
	fmt.Printf(" Network: %d nodes, %d edges (directed)\n",
		result.Summary.NodeCount, result.Summary.EdgeCount)
	fmt.Printf(" Simulated: %.1f days\n", result.Summary.DaysSimulated)
	fmt.Println()

	fmt.Printf(" Final corruption: %.3f\n", result.Summary.FinalTotalCorruption)
	fmt.Printf(" Peak corruption:  %.3f on day %d\n",
		result.Summary.PeakCorruption, result.Summary.PeakDay)
	if result.Summary.SystemCaptured {
		fmt.Println(" *** SYSTEM CAPTURED: corruption exceeded the capture threshold ***")
	}
	fmt.Printf(" Layers formed:    %d\n", result.Summary.LayersFormed)
	fmt.Printf(" Mutation events:  %d\n", result.Summary.MutationEvents)
	fmt.Println()

	if la := result.LayerAnalysis; la != nil && len(la.Layers) > 0 {
		fmt.Println(" --- Corruption Layers ---")
		fmt.Printf(" %-22s %-14s %10s %12s %8s\n",
			"Layer", "Type", "Formed", "Persistence", "Members")
		fmt.Println(" " + strings.Repeat("-", 70))
		for _, layer := range la.Layers {
			fmt.Printf(" %-22s %-14s %10d %12.3f %8d\n",
				layer.ID, layer.Type, layer.FormationDay,
				layer.PersistenceScore, len(layer.Members))
		}
		fmt.Printf(" Protection score: %.3f\n", la.ProtectionScore)
		fmt.Println()
	}

	if plan := result.InterventionPlan; plan != nil && len(plan.Recommendations) > 0 {
		fmt.Println(" --- Recommended Interventions ---")
		for i, rec := range plan.Recommendations {
			fmt.Printf("  %d. %s (day %d, confidence %.2f, allocation %.0f%%)\n",
				i+1, rec.Scenario, rec.RecommendedDay, rec.Confidence,
				rec.ResourceAllocation*100)
		}
		fmt.Println()
	}

	if len(result.RiskPredictions) > 0 {
		fmt.Println(" --- Risk Predictions ---")
		for _, risk := range result.RiskPredictions {
			fmt.Printf("  [%s] probability %.2f (confidence %.2f): %s\n",
				risk.Type, risk.Probability, risk.Confidence, risk.Description)
		}
		fmt.Println()
	}

	if len(result.Insights) > 0 {
		fmt.Println(" --- Findings ---")
		for _, insight := range result.Insights {
			fmt.Printf("  - %s\n", insight)
		}
		fmt.Println()
	}
}
