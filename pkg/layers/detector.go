// Package layers detects emergent corruption layers: groups of nodes sitting
// in the same corruption band, tracked as quasi-persistent structures.
package layers

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

const (
	// MinLayerMembers is the smallest band population that forms a layer.
	MinLayerMembers = 2

	// JaccardThreshold is the similarity above which a candidate band is
	// considered the same as an existing layer of the same type.
	JaccardThreshold = 0.7
)

// detectionOrder fixes the type iteration so runs are reproducible.
var detectionOrder = []netmodel.LayerType{
	netmodel.LayerCore,
	netmodel.LayerDeep,
	netmodel.LayerIntermediate,
	netmodel.LayerSurface,
}

// Classify maps a corruption level to its threshold band. The second return
// is false when the level falls below every band.
func Classify(corruption float64) (netmodel.LayerType, bool) {
	switch {
	case corruption > 0.8:
		return netmodel.LayerCore, true
	case corruption > 0.6:
		return netmodel.LayerDeep, true
	case corruption > 0.4:
		return netmodel.LayerIntermediate, true
	case corruption > 0.2:
		return netmodel.LayerSurface, true
	default:
		return "", false
	}
}

// Detect partitions nodes into threshold bands and creates a layer for every
// band with enough members that does not duplicate an existing same-type
// layer. Matched candidates leave the existing layer untouched; duplicate
// suppression never merges membership.
func Detect(net *netmodel.Network, day float64) []*netmodel.Layer {
	bands := make(map[netmodel.LayerType][]string)
	for _, id := range net.Order {
		node := net.Nodes[id]
		if band, ok := Classify(node.CorruptionLevel); ok {
			bands[band] = append(bands[band], id)
		}
	}

	var created []*netmodel.Layer
	for _, layerType := range detectionOrder {
		members := bands[layerType]
		if len(members) < MinLayerMembers {
			continue
		}

		candidate := make(map[string]bool, len(members))
		for _, id := range members {
			candidate[id] = true
		}

		if matchesExisting(net, layerType, candidate) {
			continue
		}

		formationDay := int(math.Floor(day))
		layer := &netmodel.Layer{
			ID:                   fmt.Sprintf("%s_%d", layerType, formationDay),
			Type:                 layerType,
			FormationDay:         formationDay,
			Members:              candidate,
			PersistenceScore:     persistenceScore(net, members),
			ProtectionMechanisms: ProtectionMechanisms(layerType),
		}
		net.AddLayer(layer)
		created = append(created, layer)
	}
	return created
}

// matchesExisting reports whether any same-type layer is Jaccard-similar
// enough to the candidate set to suppress creation.
func matchesExisting(net *netmodel.Network, layerType netmodel.LayerType, candidate map[string]bool) bool {
	for _, existing := range net.LayersOfType(layerType) {
		if Jaccard(candidate, existing.Members) > JaccardThreshold {
			return true
		}
	}
	return false
}

// persistenceScore is the mean of (1-institutional_strength) * exposure_risk
// * corruption_level over the candidate members.
func persistenceScore(net *netmodel.Network, members []string) float64 {
	if len(members) == 0 {
		return 0
	}
	sum := 0.0
	for _, id := range members {
		node := net.Nodes[id]
		sum += (1 - node.InstitutionalStrength) * node.ExposureRisk * node.CorruptionLevel
	}
	return sum / float64(len(members))
}

// Jaccard returns |a∩b| / |a∪b| for two member sets, 0 when both are empty.
func Jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for id := range a {
		if b[id] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// ProtectionMechanisms returns the static mechanism tags for a layer type.
func ProtectionMechanisms(layerType netmodel.LayerType) []string {
	switch layerType {
	case netmodel.LayerSurface:
		return []string{"social_normalization", "peer_pressure"}
	case netmodel.LayerIntermediate:
		return []string{"procedural_complexity", "information_asymmetry"}
	case netmodel.LayerDeep:
		return []string{"institutional_capture", "network_effects"}
	case netmodel.LayerCore:
		return []string{"systemic_immunity", "adaptive_resistance", "cross_layer_protection"}
	default:
		return nil
	}
}
