package netmodel

// RelationshipType classifies an edge between two entities.
type RelationshipType string

const (
	RelationHierarchical  RelationshipType = "hierarchical"
	RelationPeer          RelationshipType = "peer"
	RelationTransactional RelationshipType = "transactional"
	RelationInformal      RelationshipType = "informal"
)

// Valid reports whether rt is one of the known relationship types.
func (rt RelationshipType) Valid() bool {
	switch rt {
	case RelationHierarchical, RelationPeer, RelationTransactional, RelationInformal:
		return true
	}
	return false
}

// LayerType classifies an emergent corruption layer by depth of entrenchment.
type LayerType string

const (
	LayerSurface      LayerType = "surface"
	LayerIntermediate LayerType = "intermediate"
	LayerDeep         LayerType = "deep"
	LayerCore         LayerType = "core"
)

// Valid reports whether lt is one of the known layer types.
func (lt LayerType) Valid() bool {
	switch lt {
	case LayerSurface, LayerIntermediate, LayerDeep, LayerCore:
		return true
	}
	return false
}

// InterventionType selects the remediation mechanism an intervention applies.
type InterventionType string

const (
	InterventionAudit           InterventionType = "audit"
	InterventionTraining        InterventionType = "training"
	InterventionPersonnelChange InterventionType = "personnel_change"
	InterventionSystemReform    InterventionType = "system_reform"
	InterventionIsolation       InterventionType = "isolation"
)

// Valid reports whether it is one of the known intervention types.
func (it InterventionType) Valid() bool {
	switch it {
	case InterventionAudit, InterventionTraining, InterventionPersonnelChange,
		InterventionSystemReform, InterventionIsolation:
		return true
	}
	return false
}

// MutationType identifies an adaptive response corruption can develop under pressure.
type MutationType string

const (
	MutationAdaptation MutationType = "adaptation"
	MutationResistance MutationType = "resistance"
	MutationVirulence  MutationType = "virulence"
	MutationStealth    MutationType = "stealth"
)

// HistoryPoint records a node's corruption level after one evolution step.
type HistoryPoint struct {
	Day             float64  `json:"day"`
	CorruptionLevel float64  `json:"corruption_level"`
	Events          []string `json:"events,omitempty"`
}

// Node is a single entity in the organizational network. All scalar fields
// stay within [0,1] for the lifetime of a run. History is append-only.
type Node struct {
	ID                    string
	Name                  string
	CorruptionLevel       float64
	ResistanceFactor      float64
	InstitutionalStrength float64
	ExposureRisk          float64
	RecoveryRate          float64
	LayerMemberships      map[string]bool
	MutationFlags         map[MutationType]bool
	History               []HistoryPoint
}

// Edge is a directed influence channel. Bidirectional input edges are
// materialized as two directed edges at construction time.
type Edge struct {
	Source            string
	Target            string
	DiffusionStrength float64
	Type              RelationshipType
	Bidirectional     bool
	// CurrentFlow is a scratch value kept for compatibility with older
	// consumers; nothing downstream reads it.
	CurrentFlow float64
}

// MutationEvent records one mutation occurrence against a layer.
type MutationEvent struct {
	Day           float64      `json:"day"`
	Type          MutationType `json:"type"`
	AffectedNodes []string     `json:"affected_nodes"`
	Severity      float64      `json:"severity"`
}

// Layer is an emergent group of nodes sharing a corruption band. Layers are
// never deleted and membership only grows once created.
type Layer struct {
	ID                   string
	Type                 LayerType
	FormationDay         int
	Members              map[string]bool
	PersistenceScore     float64
	MutationEvents       []MutationEvent
	ProtectionMechanisms []string
}

// MemberIDs returns the layer's member node IDs in sorted order.
func (l *Layer) MemberIDs() []string {
	return sortedKeys(l.Members)
}

// Intervention is an active remediation scenario with its resolved target set.
type Intervention struct {
	Name          string
	Type          InterventionType
	StartDay      float64
	EndDay        float64
	Effectiveness float64
	Targets       map[string]bool
}

// GlobalState carries the simulation-wide scalars updated every step.
type GlobalState struct {
	CurrentDay            float64
	TotalCorruption       float64
	ActiveInterventions   map[string]*Intervention
	EnvironmentalPressure float64
	MutationProbability   float64
}
