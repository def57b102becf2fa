package netmodel

import (
	"math"
	"testing"
)

// TestNewNetwork_BidirectionalMirror verifies that a bidirectional seed
// materializes both directed edges with identical strength and type.
func TestNewNetwork_BidirectionalMirror(t *testing.T) {
	net := NewNetwork(
		[]NodeSeed{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		[]EdgeSeed{{Source: "a", Target: "b", DiffusionStrength: 0.5, Type: RelationPeer, Bidirectional: true}},
		0.01,
	)

	if len(net.Edges) != 2 {
		t.Fatalf("Expected 2 directed edges, got %d", len(net.Edges))
	}

	var forward, reverse *Edge
	for _, edge := range net.Edges {
		if edge.Source == "a" && edge.Target == "b" {
			forward = edge
		}
		if edge.Source == "b" && edge.Target == "a" {
			reverse = edge
		}
	}
	if forward == nil || reverse == nil {
		t.Fatal("Expected both directions to exist")
	}
	if forward.DiffusionStrength != reverse.DiffusionStrength {
		t.Errorf("Mirror strength mismatch: %f vs %f", forward.DiffusionStrength, reverse.DiffusionStrength)
	}
	if forward.Type != reverse.Type {
		t.Errorf("Mirror type mismatch: %s vs %s", forward.Type, reverse.Type)
	}
}

// TestNewNetwork_DirectedEdgeNotMirrored verifies directed seeds stay one-way.
func TestNewNetwork_DirectedEdgeNotMirrored(t *testing.T) {
	net := NewNetwork(
		[]NodeSeed{{ID: "a"}, {ID: "b"}},
		[]EdgeSeed{{Source: "a", Target: "b", DiffusionStrength: 0.5, Type: RelationHierarchical}},
		0.01,
	)

	if len(net.Edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d", len(net.Edges))
	}
	if len(net.Incoming["a"]) != 0 {
		t.Errorf("Expected no incoming edges for source, got %d", len(net.Incoming["a"]))
	}
	if len(net.Incoming["b"]) != 1 {
		t.Errorf("Expected 1 incoming edge for target, got %d", len(net.Incoming["b"]))
	}
}

// TestNewNetwork_InitialTotalCorruption verifies the mean initialization.
func TestNewNetwork_InitialTotalCorruption(t *testing.T) {
	net := NewNetwork(
		[]NodeSeed{
			{ID: "a", CorruptionLevel: 0.2},
			{ID: "b", CorruptionLevel: 0.4},
			{ID: "c", CorruptionLevel: 0.9},
		},
		nil, 0.01,
	)

	want := (0.2 + 0.4 + 0.9) / 3
	if math.Abs(net.State.TotalCorruption-want) > 1e-12 {
		t.Errorf("TotalCorruption = %f, want %f", net.State.TotalCorruption, want)
	}
}

// TestNewNetwork_EmptyNetwork verifies the divide-by-zero guard.
func TestNewNetwork_EmptyNetwork(t *testing.T) {
	net := NewNetwork(nil, nil, 0.01)
	if net.State.TotalCorruption != 0 {
		t.Errorf("Empty network TotalCorruption = %f, want 0", net.State.TotalCorruption)
	}
	if net.State.EnvironmentalPressure != EnvironmentalPressureBaseline {
		t.Errorf("EnvironmentalPressure = %f, want %f",
			net.State.EnvironmentalPressure, EnvironmentalPressureBaseline)
	}
}

// TestAddLayer_RecordsMembership verifies member nodes learn their layer id.
func TestAddLayer_RecordsMembership(t *testing.T) {
	net := NewNetwork([]NodeSeed{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil, 0.01)

	layer := &Layer{
		ID:      "deep_3",
		Type:    LayerDeep,
		Members: map[string]bool{"a": true, "c": true},
	}
	net.AddLayer(layer)

	if !net.Nodes["a"].LayerMemberships["deep_3"] {
		t.Error("Node a should be a member of deep_3")
	}
	if net.Nodes["b"].LayerMemberships["deep_3"] {
		t.Error("Node b should not be a member of deep_3")
	}
	if got := net.LayersOfType(LayerDeep); len(got) != 1 {
		t.Errorf("LayersOfType(deep) = %d layers, want 1", len(got))
	}
	if got := net.LayersOfNode("c"); len(got) != 1 || got[0].ID != "deep_3" {
		t.Errorf("LayersOfNode(c) = %v", got)
	}
}

// TestNodeHistory_SeededAtConstruction verifies day-0 history.
func TestNodeHistory_SeededAtConstruction(t *testing.T) {
	net := NewNetwork([]NodeSeed{{ID: "a", CorruptionLevel: 0.7}}, nil, 0.01)

	history := net.Nodes["a"].History
	if len(history) != 1 {
		t.Fatalf("Expected 1 initial history point, got %d", len(history))
	}
	if history[0].Day != 0 || history[0].CorruptionLevel != 0.7 {
		t.Errorf("Initial history = %+v", history[0])
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}
	for _, tc := range cases {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestEnumValidity(t *testing.T) {
	if !RelationPeer.Valid() || RelationshipType("friendly").Valid() {
		t.Error("RelationshipType.Valid misclassified")
	}
	if !LayerCore.Valid() || LayerType("abyssal").Valid() {
		t.Error("LayerType.Valid misclassified")
	}
	if !InterventionAudit.Valid() || InterventionType("bribe").Valid() {
		t.Error("InterventionType.Valid misclassified")
	}
}
