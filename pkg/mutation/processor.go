// Package mutation implements the stochastic adaptive-state transitions
// corruption develops under environmental pressure.
package mutation

import (
	"math"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

// Rand is the uniform source the processor samples from. The engine's
// seeded generator satisfies it.
type Rand interface {
	Float64() float64
}

// CorruptionFloor is the level below which nodes do not mutate.
const CorruptionFloor = 0.3

// Pressure combines the active-intervention count and system-wide corruption
// into the environmental pressure driving mutation likelihood, capped at 1.
func Pressure(activeInterventions int, totalCorruption float64) float64 {
	return math.Min(1, 0.2*float64(activeInterventions)+0.3*totalCorruption)
}

// Process runs one mutation pass over the network. Each sufficiently
// corrupted node is sampled against the pressure-adjusted probability; a
// triggered node picks a mutation type, applies its effect, gets tagged, and
// records an event on every layer it belongs to. Returns the events raised
// this pass.
func Process(net *netmodel.Network, day float64, rng Rand) []netmodel.MutationEvent {
	pressure := Pressure(len(net.State.ActiveInterventions), net.State.TotalCorruption)
	adjusted := net.State.MutationProbability * (1 + pressure)

	var events []netmodel.MutationEvent
	for _, id := range net.Order {
		node := net.Nodes[id]
		if node.CorruptionLevel <= CorruptionFloor {
			continue
		}
		if rng.Float64() >= adjusted {
			continue
		}

		mutationType := sampleType(rng.Float64(), pressure)
		apply(net, node, mutationType)
		node.MutationFlags[mutationType] = true

		event := netmodel.MutationEvent{
			Day:           day,
			Type:          mutationType,
			AffectedNodes: []string{node.ID},
			Severity:      math.Min(1, baseSeverity(mutationType)*(1+pressure)),
		}
		for _, layer := range net.LayersOfNode(node.ID) {
			layer.MutationEvents = append(layer.MutationEvents, event)
		}
		events = append(events, event)
	}
	return events
}

// sampleType picks a mutation type by cumulative-probability sampling.
// Resistance becomes the dominant outcome once pressure passes 0.7.
func sampleType(draw, pressure float64) netmodel.MutationType {
	resistanceWeight := 0.3
	if pressure > 0.7 {
		resistanceWeight = 0.6
	}

	cumulative := 0.4
	if draw < cumulative {
		return netmodel.MutationAdaptation
	}
	cumulative += resistanceWeight
	if draw < cumulative {
		return netmodel.MutationResistance
	}
	cumulative += 0.2
	if draw < cumulative {
		return netmodel.MutationVirulence
	}
	return netmodel.MutationStealth
}

// apply mutates the node (or its outgoing edges) according to the mutation
// type, clamping every scalar back into [0,1].
func apply(net *netmodel.Network, node *netmodel.Node, mutationType netmodel.MutationType) {
	switch mutationType {
	case netmodel.MutationAdaptation:
		node.ExposureRisk = netmodel.Clamp01(node.ExposureRisk * 1.1)
	case netmodel.MutationResistance:
		node.ResistanceFactor = netmodel.Clamp01(node.ResistanceFactor * 1.2)
	case netmodel.MutationVirulence:
		for _, edge := range net.Outgoing[node.ID] {
			edge.DiffusionStrength = netmodel.Clamp01(edge.DiffusionStrength * 1.05)
		}
	case netmodel.MutationStealth:
		node.ExposureRisk = netmodel.Clamp01(node.ExposureRisk * 0.9)
	}
}

// baseSeverity is the pre-pressure severity of each mutation type.
func baseSeverity(mutationType netmodel.MutationType) float64 {
	switch mutationType {
	case netmodel.MutationAdaptation:
		return 0.3
	case netmodel.MutationResistance:
		return 0.5
	case netmodel.MutationVirulence:
		return 0.7
	case netmodel.MutationStealth:
		return 0.4
	default:
		return 0
	}
}
