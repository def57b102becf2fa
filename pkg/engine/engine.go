// Package engine drives the time-stepped corruption simulation: natural
// reaction-diffusion dynamics, intervention lifecycle and effects, layer
// detection, mutation processing, and per-day snapshots.
package engine

import (
	"errors"
	"math"

	"github.com/dd0wney/cluso-corrosim/pkg/layers"
	"github.com/dd0wney/cluso-corrosim/pkg/metrics"
	"github.com/dd0wney/cluso-corrosim/pkg/mutation"
	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
	"github.com/dd0wney/cluso-corrosim/pkg/validation"
)

// CaptureThreshold is the total corruption above which the run halts early:
// the system is considered captured.
const CaptureThreshold = 0.99

// dayEpsilon absorbs float drift when day accumulates fractional steps.
const dayEpsilon = 1e-9

// ErrDegenerateTimeStep is returned when the configured time step is zero or
// negative; the loop would never advance.
var ErrDegenerateTimeStep = errors.New("time step must be positive")

// runState tracks the engine through its lifecycle.
type runState int

const (
	stateInitialized runState = iota
	stateRunning
	stateTerminated
)

// Engine owns the network for the duration of one run. It is not safe for
// concurrent use; the loop is strictly sequential.
type Engine struct {
	net       *netmodel.Network
	params    validation.SimulationParams
	scenarios []validation.InterventionScenario
	rng       Rand
	registry  *metrics.Registry

	state         runState
	timeline      []netmodel.TimelineEntry
	pendingEvents []string
	activated     map[string]bool

	daysSimulated  float64
	peakCorruption float64
	peakDay        int
	captured       bool
	mutationEvents int
}

// New wires an engine around a freshly built network. The registry may be
// nil when no metrics are wanted.
func New(net *netmodel.Network, params validation.SimulationParams, scenarios []validation.InterventionScenario, rng Rand, registry *metrics.Registry) *Engine {
	return &Engine{
		net:       net,
		params:    params,
		scenarios: scenarios,
		rng:       rng,
		registry:  registry,
		state:     stateInitialized,
		activated: make(map[string]bool),
	}
}

// Simulate runs the day loop to termination. Terminal conditions: the day
// passes the time horizon, or total corruption exceeds CaptureThreshold.
func (e *Engine) Simulate() error {
	dt := e.params.TimeStep
	if dt <= 0 {
		return ErrDegenerateTimeStep
	}
	e.state = stateRunning

	// Day is derived from the step index rather than accumulated, so a
	// fractional dt cannot drift past integer snapshot days.
	for step := 0; ; step++ {
		day := float64(step) * dt
		if day > e.params.TimeHorizon+dayEpsilon {
			break
		}
		e.net.State.CurrentDay = day
		e.daysSimulated = day

		e.updateInterventionLifecycle(day)
		e.evolve(day, dt)
		e.net.RefreshTotalCorruption()
		e.applyInterventionEffects(dt)
		e.net.RefreshTotalCorruption()

		created := layers.Detect(e.net, day)
		if e.registry != nil {
			for _, layer := range created {
				e.registry.RecordLayer(string(layer.Type))
			}
		}

		events := mutation.Process(e.net, day, e.rng)
		e.mutationEvents += len(events)
		if e.registry != nil {
			for _, event := range events {
				e.registry.RecordMutation(string(event.Type))
			}
		}

		if total := e.net.State.TotalCorruption; total > e.peakCorruption {
			e.peakCorruption = total
			e.peakDay = int(math.Floor(day))
		}

		if isIntegerDay(day) {
			e.appendSnapshot(int(math.Round(day)))
		}

		if e.net.State.TotalCorruption > CaptureThreshold {
			e.captured = true
			break
		}
	}

	e.state = stateTerminated
	return nil
}

// Network exposes the final network state after Simulate returns.
func (e *Engine) Network() *netmodel.Network {
	return e.net
}

// Timeline returns the per-day snapshots recorded so far.
func (e *Engine) Timeline() []netmodel.TimelineEntry {
	return e.timeline
}

// isIntegerDay reports whether day lands on a whole simulated day.
func isIntegerDay(day float64) bool {
	return math.Abs(day-math.Round(day)) < dayEpsilon
}
