package analytics

import (
	"sort"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

// TrackMutations flattens the mutation events recorded against layers,
// scores each node's evolutionary pressure, and raises system-level flags
// when the mutation mix is skewed.
func TrackMutations(snap *Snapshot) *MutationTrackingResult {
	result := &MutationTrackingResult{
		PressureScores: make(map[string]float64, len(snap.Net.Order)),
	}

	for _, layer := range snap.Net.Layers {
		result.Events = append(result.Events, layer.MutationEvents...)
	}
	sort.SliceStable(result.Events, func(i, j int) bool {
		return result.Events[i].Day < result.Events[j].Day
	})

	layerCount := len(snap.Net.Layers)
	if layerCount < 1 {
		layerCount = 1
	}
	for _, id := range snap.Net.Order {
		node := snap.Net.Nodes[id]
		membershipRatio := float64(len(node.LayerMemberships)) / float64(layerCount)
		result.PressureScores[id] = (1 - node.InstitutionalStrength) * node.ExposureRisk * membershipRatio
	}

	adaptation := 0
	resistance := 0
	for _, event := range result.Events {
		switch event.Type {
		case netmodel.MutationAdaptation:
			adaptation++
		case netmodel.MutationResistance:
			resistance++
		}
	}
	if adaptation > 2*resistance && adaptation > 0 {
		result.Flags = append(result.Flags, "high_adaptation_pressure")
	}
	if resistance > 5 {
		result.Flags = append(result.Flags, "resistance_emergence")
	}

	return result
}
