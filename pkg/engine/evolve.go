package engine

import (
	"fmt"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

const (
	// noiseAmplitude bounds the uniform noise term before exposure scaling.
	noiseAmplitude = 0.01

	// spikeDelta is the per-step corruption change that tags history points
	// as a spike (positive) or recovery event (negative).
	spikeDelta = 0.1
)

// evolve advances every node one explicit Euler step of the
// reaction-diffusion dynamics. Updates are synchronous: all gradients are
// computed against the levels at the start of the step.
func (e *Engine) evolve(day, dt float64) {
	levels := make(map[string]float64, len(e.net.Order))
	for _, id := range e.net.Order {
		levels[id] = e.net.Nodes[id].CorruptionLevel
	}

	growthRate := e.params.GrowthRate
	capacity := e.params.CarryingCapacity
	diffusionCoeff := e.params.DiffusionCoefficient

	for _, id := range e.net.Order {
		node := e.net.Nodes[id]
		c := levels[id]

		// Logistic autocatalysis. A zero carrying capacity means no room
		// for growth at all.
		growth := 0.0
		if capacity > 0 {
			growth = growthRate * c * (1 - c/capacity)
		}

		// Incoming-edge gradient sum: only edges pointing at this node
		// contribute.
		diffusion := 0.0
		for _, edge := range e.net.Incoming[id] {
			diffusion += edge.DiffusionStrength * (levels[edge.Source] - c)
		}
		diffusion *= diffusionCoeff

		recovery := -node.RecoveryRate * c * node.InstitutionalStrength
		noise := (e.rng.Float64()*2 - 1) * noiseAmplitude * node.ExposureRisk

		delta := (growth + diffusion + recovery + noise) * (1 - node.ResistanceFactor) * dt
		node.CorruptionLevel = netmodel.Clamp01(c + delta)

		e.appendHistory(node, day)
	}
}

// appendHistory records the node's new level, tagging spikes and recoveries
// relative to the immediately prior history point.
func (e *Engine) appendHistory(node *netmodel.Node, day float64) {
	prior := node.History[len(node.History)-1].CorruptionLevel
	change := node.CorruptionLevel - prior

	var tags []string
	switch {
	case change > spikeDelta:
		tags = []string{"corruption_spike"}
		e.pendingEvents = append(e.pendingEvents,
			fmt.Sprintf("corruption spike at %s (%.2f -> %.2f)", node.Name, prior, node.CorruptionLevel))
	case change < -spikeDelta:
		tags = []string{"recovery_event"}
		e.pendingEvents = append(e.pendingEvents,
			fmt.Sprintf("recovery at %s (%.2f -> %.2f)", node.Name, prior, node.CorruptionLevel))
	}

	node.History = append(node.History, netmodel.HistoryPoint{
		Day:             day,
		CorruptionLevel: node.CorruptionLevel,
		Events:          tags,
	})
}
