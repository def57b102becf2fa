package netmodel

import "sort"

// EnvironmentalPressureBaseline is the fixed pressure level a network starts
// with. Mutation processing adds intervention and corruption terms on top.
const EnvironmentalPressureBaseline = 0.3

// NodeSeed carries the initial values for one node at construction time.
// Inputs are assumed to have passed request validation already.
type NodeSeed struct {
	ID                    string
	Name                  string
	CorruptionLevel       float64
	ResistanceFactor      float64
	InstitutionalStrength float64
	ExposureRisk          float64
	RecoveryRate          float64
}

// EdgeSeed carries the initial values for one edge at construction time.
type EdgeSeed struct {
	Source            string
	Target            string
	DiffusionStrength float64
	Type              RelationshipType
	Bidirectional     bool
}

// Network is the complete mutable state of one simulation run: the node and
// edge maps, the layers formed so far, and the global scalars.
type Network struct {
	Nodes map[string]*Node
	// Order fixes node iteration order so seeded runs are reproducible.
	Order    []string
	Edges    []*Edge
	Incoming map[string][]*Edge
	Outgoing map[string][]*Edge
	Layers   []*Layer
	State    *GlobalState
}

// NewNetwork builds the node/edge maps from seeds. Every bidirectional seed
// materializes two directed edges with identical strength and type. Initial
// total corruption is the arithmetic mean of node levels, 0 for an empty
// network.
func NewNetwork(nodes []NodeSeed, edges []EdgeSeed, mutationProbability float64) *Network {
	net := &Network{
		Nodes:    make(map[string]*Node, len(nodes)),
		Order:    make([]string, 0, len(nodes)),
		Incoming: make(map[string][]*Edge),
		Outgoing: make(map[string][]*Edge),
		State: &GlobalState{
			ActiveInterventions:   make(map[string]*Intervention),
			EnvironmentalPressure: EnvironmentalPressureBaseline,
			MutationProbability:   mutationProbability,
		},
	}

	for _, seed := range nodes {
		node := &Node{
			ID:                    seed.ID,
			Name:                  seed.Name,
			CorruptionLevel:       seed.CorruptionLevel,
			ResistanceFactor:      seed.ResistanceFactor,
			InstitutionalStrength: seed.InstitutionalStrength,
			ExposureRisk:          seed.ExposureRisk,
			RecoveryRate:          seed.RecoveryRate,
			LayerMemberships:      make(map[string]bool),
			MutationFlags:         make(map[MutationType]bool),
			History: []HistoryPoint{
				{Day: 0, CorruptionLevel: seed.CorruptionLevel},
			},
		}
		net.Nodes[node.ID] = node
		net.Order = append(net.Order, node.ID)
	}

	for _, seed := range edges {
		net.addEdge(seed.Source, seed.Target, seed.DiffusionStrength, seed.Type, seed.Bidirectional)
		if seed.Bidirectional {
			net.addEdge(seed.Target, seed.Source, seed.DiffusionStrength, seed.Type, seed.Bidirectional)
		}
	}

	net.State.TotalCorruption = net.MeanCorruption()
	return net
}

// addEdge appends one directed edge and indexes it by both endpoints.
func (n *Network) addEdge(source, target string, strength float64, relType RelationshipType, bidirectional bool) {
	edge := &Edge{
		Source:            source,
		Target:            target,
		DiffusionStrength: strength,
		Type:              relType,
		Bidirectional:     bidirectional,
	}
	n.Edges = append(n.Edges, edge)
	n.Outgoing[source] = append(n.Outgoing[source], edge)
	n.Incoming[target] = append(n.Incoming[target], edge)
}

// MeanCorruption returns the population mean corruption level, 0 for an
// empty network.
func (n *Network) MeanCorruption() float64 {
	if len(n.Order) == 0 {
		return 0
	}
	sum := 0.0
	for _, id := range n.Order {
		sum += n.Nodes[id].CorruptionLevel
	}
	return sum / float64(len(n.Order))
}

// RefreshTotalCorruption recomputes the global mean after node updates.
func (n *Network) RefreshTotalCorruption() {
	n.State.TotalCorruption = n.MeanCorruption()
}

// AddLayer registers a newly detected layer and records the membership on
// every member node.
func (n *Network) AddLayer(layer *Layer) {
	n.Layers = append(n.Layers, layer)
	for id := range layer.Members {
		if node, ok := n.Nodes[id]; ok {
			node.LayerMemberships[layer.ID] = true
		}
	}
}

// LayersOfType returns the layers of the given type in formation order.
func (n *Network) LayersOfType(t LayerType) []*Layer {
	var out []*Layer
	for _, layer := range n.Layers {
		if layer.Type == t {
			out = append(out, layer)
		}
	}
	return out
}

// LayersOfNode returns the layers the node currently belongs to, in
// formation order.
func (n *Network) LayersOfNode(nodeID string) []*Layer {
	node, ok := n.Nodes[nodeID]
	if !ok {
		return nil
	}
	var out []*Layer
	for _, layer := range n.Layers {
		if node.LayerMemberships[layer.ID] {
			out = append(out, layer)
		}
	}
	return out
}

// Clamp01 bounds v to the unit interval. Every mutable scalar in the model
// lives in [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// sortedKeys returns the keys of a string set in sorted order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
