// Package visualization projects a finished timeline into chart-ready
// shapes. Everything here is purely derived from the trajectory; no new
// computation happens on the simulation state.
package visualization

import "github.com/dd0wney/cluso-corrosim/pkg/netmodel"

// Heatmap is a day-by-node corruption matrix. Values[i][j] is the level of
// NodeIDs[j] on Days[i].
type Heatmap struct {
	Days    []int       `json:"days"`
	NodeIDs []string    `json:"node_ids"`
	Values  [][]float64 `json:"values"`
}

// TimeSeries tracks the system-wide trajectory per snapshot day.
type TimeSeries struct {
	Days            []int     `json:"days"`
	TotalCorruption []float64 `json:"total_corruption"`
}

// Data bundles the projections returned with every simulation result.
type Data struct {
	Heatmap    *Heatmap    `json:"heatmap"`
	TimeSeries *TimeSeries `json:"time_series"`
}

// Project builds the heatmap and time-series views of a timeline. The node
// order fixes the heatmap's column order.
func Project(timeline []netmodel.TimelineEntry, nodeOrder []string) *Data {
	heatmap := &Heatmap{
		Days:    make([]int, 0, len(timeline)),
		NodeIDs: nodeOrder,
		Values:  make([][]float64, 0, len(timeline)),
	}
	series := &TimeSeries{
		Days:            make([]int, 0, len(timeline)),
		TotalCorruption: make([]float64, 0, len(timeline)),
	}

	for _, entry := range timeline {
		row := make([]float64, len(nodeOrder))
		for i, id := range nodeOrder {
			row[i] = entry.Nodes[id].CorruptionLevel
		}
		heatmap.Days = append(heatmap.Days, entry.Day)
		heatmap.Values = append(heatmap.Values, row)

		series.Days = append(series.Days, entry.Day)
		series.TotalCorruption = append(series.TotalCorruption, entry.TotalCorruption)
	}

	return &Data{Heatmap: heatmap, TimeSeries: series}
}
