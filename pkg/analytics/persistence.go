package analytics

import "sort"

const (
	// HighCorruptionLevel is the level above which a history point counts
	// toward a node's persistence score.
	HighCorruptionLevel = 0.6

	// RecoveryDrop is the level decrease between consecutive history points
	// that counts as a recovery event.
	RecoveryDrop = 0.15

	// ChronicThreshold is the persistence score above which a node is
	// chronically corrupted.
	ChronicThreshold = 0.8
)

// AnalyzePersistence scores each node by the fraction of its history spent
// above the high-corruption level, counts its recovery events, and flags
// the chronic nodes.
func AnalyzePersistence(snap *Snapshot) *PersistenceResult {
	result := &PersistenceResult{
		Scores:         make(map[string]float64, len(snap.Net.Order)),
		RecoveryEvents: make(map[string]int),
	}

	for _, id := range snap.Net.Order {
		node := snap.Net.Nodes[id]
		if len(node.History) == 0 {
			result.Scores[id] = 0
			continue
		}

		high := 0
		recoveries := 0
		for i, point := range node.History {
			if point.CorruptionLevel > HighCorruptionLevel {
				high++
			}
			if i > 0 && node.History[i-1].CorruptionLevel-point.CorruptionLevel > RecoveryDrop {
				recoveries++
			}
		}

		score := float64(high) / float64(len(node.History))
		result.Scores[id] = score
		if recoveries > 0 {
			result.RecoveryEvents[id] = recoveries
		}
		if score > ChronicThreshold {
			result.ChronicNodes = append(result.ChronicNodes, id)
		}
	}

	sort.Strings(result.ChronicNodes)
	return result
}
