package visualization

import (
	"testing"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

func sampleTimeline() []netmodel.TimelineEntry {
	return []netmodel.TimelineEntry{
		{
			Day:             0,
			TotalCorruption: 0.3,
			Nodes: map[string]netmodel.NodeSnapshot{
				"a": {CorruptionLevel: 0.5},
				"b": {CorruptionLevel: 0.1},
			},
		},
		{
			Day:             1,
			TotalCorruption: 0.4,
			Nodes: map[string]netmodel.NodeSnapshot{
				"a": {CorruptionLevel: 0.6},
				"b": {CorruptionLevel: 0.2},
			},
		},
	}
}

func TestProject_Heatmap(t *testing.T) {
	data := Project(sampleTimeline(), []string{"a", "b"})

	if len(data.Heatmap.Days) != 2 || data.Heatmap.Days[0] != 0 || data.Heatmap.Days[1] != 1 {
		t.Errorf("Heatmap days = %v", data.Heatmap.Days)
	}
	if len(data.Heatmap.NodeIDs) != 2 {
		t.Fatalf("Heatmap nodes = %v", data.Heatmap.NodeIDs)
	}
	// Column order follows the given node order.
	if data.Heatmap.Values[0][0] != 0.5 || data.Heatmap.Values[0][1] != 0.1 {
		t.Errorf("Day 0 row = %v", data.Heatmap.Values[0])
	}
	if data.Heatmap.Values[1][0] != 0.6 || data.Heatmap.Values[1][1] != 0.2 {
		t.Errorf("Day 1 row = %v", data.Heatmap.Values[1])
	}
}

func TestProject_TimeSeries(t *testing.T) {
	data := Project(sampleTimeline(), []string{"a", "b"})

	series := data.TimeSeries
	if len(series.Days) != 2 || len(series.TotalCorruption) != 2 {
		t.Fatalf("TimeSeries lengths = %d/%d", len(series.Days), len(series.TotalCorruption))
	}
	if series.TotalCorruption[0] != 0.3 || series.TotalCorruption[1] != 0.4 {
		t.Errorf("TotalCorruption = %v", series.TotalCorruption)
	}
}

func TestProject_EmptyTimeline(t *testing.T) {
	data := Project(nil, []string{"a"})

	if len(data.Heatmap.Values) != 0 || len(data.TimeSeries.Days) != 0 {
		t.Error("Empty timeline should produce empty projections")
	}
	if len(data.Heatmap.NodeIDs) != 1 {
		t.Errorf("NodeIDs = %v, want the given order", data.Heatmap.NodeIDs)
	}
}
