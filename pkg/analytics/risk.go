package analytics

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

const (
	// riskWindow is how many trailing timeline points feed the outbreak
	// growth estimate.
	riskWindow = 5

	// HighNodeLevel is the corruption level above which a node counts as
	// highly corrupted for outbreak risk.
	HighNodeLevel = 0.7

	// Confidence bars: predictions below these are suppressed.
	outbreakConfidenceBar = 0.7
	mutationConfidenceBar = 0.6
)

// PredictRisks estimates the outbreak and mutation risks from the trailing
// trajectory and final state. Predictions that do not clear their
// confidence bar are dropped.
func PredictRisks(snap *Snapshot) []RiskPrediction {
	var predictions []RiskPrediction

	if outbreak, ok := outbreakRisk(snap); ok {
		predictions = append(predictions, outbreak)
	}
	if mut, ok := mutationRisk(snap); ok {
		predictions = append(predictions, mut)
	}
	return predictions
}

// outbreakRisk derives from the recent growth of total corruption and the
// number of highly corrupted nodes. Confidence grows with the amount of
// recent history and the strength of the high-node signal.
func outbreakRisk(snap *Snapshot) (RiskPrediction, bool) {
	window := snap.Timeline
	if len(window) > riskWindow {
		window = window[len(window)-riskWindow:]
	}
	if len(window) < 2 {
		return RiskPrediction{}, false
	}

	growth := (window[len(window)-1].TotalCorruption - window[0].TotalCorruption) /
		float64(len(window)-1)

	highCount := 0
	for _, id := range snap.Net.Order {
		if snap.Net.Nodes[id].CorruptionLevel > HighNodeLevel {
			highCount++
		}
	}
	highFraction := 0.0
	if len(snap.Net.Order) > 0 {
		highFraction = float64(highCount) / float64(len(snap.Net.Order))
	}

	probability := netmodel.Clamp01(0.4 + 8*growth + 0.4*highFraction)
	confidence := math.Min(0.95,
		0.5+0.05*float64(len(window))+0.02*math.Min(float64(highCount), 10))

	if confidence <= outbreakConfidenceBar {
		return RiskPrediction{}, false
	}
	return RiskPrediction{
		Type:        "outbreak",
		Probability: probability,
		Confidence:  confidence,
		Description: fmt.Sprintf("corruption growing %.4f/day with %d highly corrupted nodes", growth, highCount),
	}, true
}

// mutationRisk derives from how many nodes carry at least one mutation flag.
func mutationRisk(snap *Snapshot) (RiskPrediction, bool) {
	mutated := 0
	for _, id := range snap.Net.Order {
		if len(snap.Net.Nodes[id].MutationFlags) > 0 {
			mutated++
		}
	}
	if mutated == 0 {
		return RiskPrediction{}, false
	}

	fraction := float64(mutated) / float64(len(snap.Net.Order))
	probability := netmodel.Clamp01(0.3 + 1.4*fraction)
	confidence := math.Min(0.85, 0.4+0.1*float64(mutated))

	if confidence <= mutationConfidenceBar {
		return RiskPrediction{}, false
	}
	return RiskPrediction{
		Type:        "mutation",
		Probability: probability,
		Confidence:  confidence,
		Description: fmt.Sprintf("%d of %d nodes carry adaptive mutations", mutated, len(snap.Net.Order)),
	}, true
}
