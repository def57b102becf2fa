package analytics

import "github.com/dd0wney/cluso-corrosim/pkg/netmodel"

// InteractionThreshold is the overlap strength below which a layer pair is
// not worth reporting.
const InteractionThreshold = 0.1

// AnalyzeLayers lists every layer, aggregates a protection score weighted by
// layer depth, and reports the cross-layer interactions.
func AnalyzeLayers(snap *Snapshot) *LayerAnalysisResult {
	result := &LayerAnalysisResult{
		Layers: make([]LayerSummary, 0, len(snap.Net.Layers)),
	}

	weightedSum := 0.0
	for _, layer := range snap.Net.Layers {
		result.Layers = append(result.Layers, LayerSummary{
			ID:               layer.ID,
			Type:             layer.Type,
			FormationDay:     layer.FormationDay,
			PersistenceScore: layer.PersistenceScore,
			Members:          layer.MemberIDs(),
			MutationEvents:   layer.MutationEvents,
		})
		weightedSum += layer.PersistenceScore * layerWeight(layer.Type)
	}
	if len(snap.Net.Layers) > 0 {
		result.ProtectionScore = weightedSum / float64(len(snap.Net.Layers))
	}

	result.Interactions = layerInteractions(snap.Net.Layers)
	return result
}

// layerWeight scales a layer's contribution to the protection score by how
// entrenched its type is.
func layerWeight(layerType netmodel.LayerType) float64 {
	switch layerType {
	case netmodel.LayerSurface:
		return 0.2
	case netmodel.LayerIntermediate:
		return 0.4
	case netmodel.LayerDeep:
		return 0.7
	case netmodel.LayerCore:
		return 1.0
	default:
		return 0
	}
}

// layerInteractions computes pairwise overlap strength |shared| /
// min(|a|,|b|) for every layer pair, keeping pairs above the threshold.
func layerInteractions(allLayers []*netmodel.Layer) []LayerInteraction {
	var interactions []LayerInteraction
	for i := 0; i < len(allLayers); i++ {
		for j := i + 1; j < len(allLayers); j++ {
			a, b := allLayers[i], allLayers[j]
			if len(a.Members) == 0 || len(b.Members) == 0 {
				continue
			}

			shared := 0
			for id := range a.Members {
				if b.Members[id] {
					shared++
				}
			}

			smaller := len(a.Members)
			if len(b.Members) < smaller {
				smaller = len(b.Members)
			}

			strength := float64(shared) / float64(smaller)
			if strength <= InteractionThreshold {
				continue
			}

			interactions = append(interactions, LayerInteraction{
				LayerA:   a.ID,
				LayerB:   b.ID,
				Strength: strength,
				Kind:     interactionKind(a.Type, b.Type),
			})
		}
	}
	return interactions
}

// interactionKind tags an overlapping layer pair: two core layers reinforce
// each other, surface and deep layers compete for members, anything else is
// neutral.
func interactionKind(a, b netmodel.LayerType) string {
	switch {
	case a == netmodel.LayerCore && b == netmodel.LayerCore:
		return "synergistic"
	case (a == netmodel.LayerSurface && b == netmodel.LayerDeep) ||
		(a == netmodel.LayerDeep && b == netmodel.LayerSurface):
		return "competitive"
	default:
		return "neutral"
	}
}
