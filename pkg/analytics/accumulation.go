package analytics

import (
	"sort"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

// HotspotThreshold is the accumulation index above which a node counts as a
// hotspot.
const HotspotThreshold = 0.7

// AccumulationIndex computes each node's time-weighted average corruption
// exposure: the trapezoidal-rule integral of its history divided by the
// elapsed days. The index is invariant under re-scaling of the time axis.
func AccumulationIndex(snap *Snapshot) *AccumulationResult {
	result := &AccumulationResult{
		Indices: make(map[string]float64, len(snap.Net.Order)),
	}

	for _, id := range snap.Net.Order {
		node := snap.Net.Nodes[id]
		index := accumulationIndexOf(node.History)
		result.Indices[id] = index
		if index > HotspotThreshold {
			result.Hotspots = append(result.Hotspots, id)
		}
	}
	sort.Strings(result.Hotspots)
	return result
}

// accumulationIndexOf integrates one node's corruption history with the
// trapezoidal rule. A history with no elapsed time short-circuits to 0
// rather than dividing by zero.
func accumulationIndexOf(history []netmodel.HistoryPoint) float64 {
	if len(history) < 2 {
		return 0
	}

	integral := 0.0
	for i := 1; i < len(history); i++ {
		prev, curr := history[i-1], history[i]
		width := curr.Day - prev.Day
		integral += (prev.CorruptionLevel + curr.CorruptionLevel) / 2 * width
	}

	elapsed := history[len(history)-1].Day - history[0].Day
	if elapsed <= 0 {
		return 0
	}
	return integral / elapsed
}
