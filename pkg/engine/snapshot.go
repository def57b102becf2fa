package engine

import (
	"sort"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

// appendSnapshot captures the per-node state for one whole simulated day and
// flushes the spike events accumulated since the previous snapshot.
func (e *Engine) appendSnapshot(day int) {
	nodes := make(map[string]netmodel.NodeSnapshot, len(e.net.Order))
	for _, id := range e.net.Order {
		node := e.net.Nodes[id]

		memberships := make([]string, 0, len(node.LayerMemberships))
		for layerID := range node.LayerMemberships {
			memberships = append(memberships, layerID)
		}
		sort.Strings(memberships)

		mutations := make([]string, 0, len(node.MutationFlags))
		for flag := range node.MutationFlags {
			mutations = append(mutations, string(flag))
		}
		sort.Strings(mutations)

		nodes[id] = netmodel.NodeSnapshot{
			CorruptionLevel: node.CorruptionLevel,
			Layers:          memberships,
			Mutations:       mutations,
		}
	}

	e.timeline = append(e.timeline, netmodel.TimelineEntry{
		Day:             day,
		TotalCorruption: e.net.State.TotalCorruption,
		Nodes:           nodes,
		Events:          e.pendingEvents,
	})
	e.pendingEvents = nil
}
