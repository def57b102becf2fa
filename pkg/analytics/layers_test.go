package analytics

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

func layerSnapshot(allLayers ...*netmodel.Layer) *Snapshot {
	net := netmodel.NewNetwork([]netmodel.NodeSeed{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}, nil, 0.01)
	for _, layer := range allLayers {
		net.AddLayer(layer)
	}
	return &Snapshot{Net: net}
}

func TestAnalyzeLayers_ProtectionScore(t *testing.T) {
	snap := layerSnapshot(
		&netmodel.Layer{ID: "core_1", Type: netmodel.LayerCore, PersistenceScore: 0.5,
			Members: map[string]bool{"a": true, "b": true}},
		&netmodel.Layer{ID: "surface_2", Type: netmodel.LayerSurface, PersistenceScore: 0.4,
			Members: map[string]bool{"c": true, "d": true}},
	)

	result := AnalyzeLayers(snap)

	if len(result.Layers) != 2 {
		t.Fatalf("Layers = %d, want 2", len(result.Layers))
	}
	// Weighted by depth: (0.5*1.0 + 0.4*0.2) / 2.
	want := (0.5*1.0 + 0.4*0.2) / 2
	if math.Abs(result.ProtectionScore-want) > 1e-12 {
		t.Errorf("ProtectionScore = %f, want %f", result.ProtectionScore, want)
	}
	if result.Layers[0].Members[0] != "a" || result.Layers[0].Members[1] != "b" {
		t.Errorf("Members = %v, want sorted [a b]", result.Layers[0].Members)
	}
}

func TestAnalyzeLayers_NoLayers(t *testing.T) {
	result := AnalyzeLayers(layerSnapshot())
	if result.ProtectionScore != 0 {
		t.Errorf("ProtectionScore = %f, want 0", result.ProtectionScore)
	}
	if len(result.Layers) != 0 || len(result.Interactions) != 0 {
		t.Error("Empty snapshot should produce empty analysis")
	}
}

func TestLayerInteractions_Kinds(t *testing.T) {
	cases := []struct {
		name     string
		a, b     *netmodel.Layer
		wantKind string
	}{
		{
			name: "core pair is synergistic",
			a: &netmodel.Layer{ID: "core_1", Type: netmodel.LayerCore,
				Members: map[string]bool{"a": true, "b": true}},
			b: &netmodel.Layer{ID: "core_5", Type: netmodel.LayerCore,
				Members: map[string]bool{"b": true, "c": true}},
			wantKind: "synergistic",
		},
		{
			name: "surface and deep compete",
			a: &netmodel.Layer{ID: "surface_1", Type: netmodel.LayerSurface,
				Members: map[string]bool{"a": true, "b": true}},
			b: &netmodel.Layer{ID: "deep_3", Type: netmodel.LayerDeep,
				Members: map[string]bool{"a": true, "c": true}},
			wantKind: "competitive",
		},
		{
			name: "anything else is neutral",
			a: &netmodel.Layer{ID: "surface_1", Type: netmodel.LayerSurface,
				Members: map[string]bool{"a": true, "b": true}},
			b: &netmodel.Layer{ID: "intermediate_2", Type: netmodel.LayerIntermediate,
				Members: map[string]bool{"a": true, "d": true}},
			wantKind: "neutral",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := AnalyzeLayers(layerSnapshot(tc.a, tc.b))
			if len(result.Interactions) != 1 {
				t.Fatalf("Interactions = %d, want 1", len(result.Interactions))
			}
			interaction := result.Interactions[0]
			if interaction.Kind != tc.wantKind {
				t.Errorf("Kind = %s, want %s", interaction.Kind, tc.wantKind)
			}
			// One shared member out of a 2-member smaller set.
			if math.Abs(interaction.Strength-0.5) > 1e-12 {
				t.Errorf("Strength = %f, want 0.5", interaction.Strength)
			}
		})
	}
}

func TestLayerInteractions_DisjointSuppressed(t *testing.T) {
	snap := layerSnapshot(
		&netmodel.Layer{ID: "core_1", Type: netmodel.LayerCore,
			Members: map[string]bool{"a": true, "b": true}},
		&netmodel.Layer{ID: "deep_2", Type: netmodel.LayerDeep,
			Members: map[string]bool{"c": true, "d": true}},
	)

	result := AnalyzeLayers(snap)
	if len(result.Interactions) != 0 {
		t.Errorf("Disjoint layers reported %d interactions, want 0", len(result.Interactions))
	}
}
