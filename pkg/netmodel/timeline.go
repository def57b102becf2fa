package netmodel

// NodeSnapshot is one node's visible state inside a timeline entry.
type NodeSnapshot struct {
	CorruptionLevel float64  `json:"corruption_level"`
	Layers          []string `json:"layers,omitempty"`
	Mutations       []string `json:"mutations,omitempty"`
}

// TimelineEntry is the per-day snapshot the engine appends on integer days.
type TimelineEntry struct {
	Day             int                     `json:"day"`
	TotalCorruption float64                 `json:"total_corruption"`
	Nodes           map[string]NodeSnapshot `json:"nodes"`
	Events          []string                `json:"events,omitempty"`
}
