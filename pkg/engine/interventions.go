package engine

import (
	"math"
	"sort"

	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
)

// updateInterventionLifecycle activates scenarios whose start day has
// arrived and expires interventions past their end day. A scenario without
// an explicit target list targets every node.
func (e *Engine) updateInterventionLifecycle(day float64) {
	floorDay := math.Floor(day)

	for i := range e.scenarios {
		scenario := &e.scenarios[i]
		if e.activated[scenario.Name] {
			continue
		}
		if math.Floor(scenario.StartDay) != floorDay {
			continue
		}

		targets := make(map[string]bool)
		if len(scenario.TargetNodes) > 0 {
			for _, id := range scenario.TargetNodes {
				targets[id] = true
			}
		} else {
			for _, id := range e.net.Order {
				targets[id] = true
			}
		}

		e.net.State.ActiveInterventions[scenario.Name] = &netmodel.Intervention{
			Name:          scenario.Name,
			Type:          scenario.Type(),
			StartDay:      scenario.StartDay,
			EndDay:        scenario.StartDay + scenario.Duration,
			Effectiveness: scenario.Effectiveness,
			Targets:       targets,
		}
		e.activated[scenario.Name] = true
		if e.registry != nil {
			e.registry.RecordIntervention(scenario.InterventionType)
		}
	}

	for name, active := range e.net.State.ActiveInterventions {
		if active.EndDay < day {
			delete(e.net.State.ActiveInterventions, name)
		}
	}
}

// applyInterventionEffects applies every active intervention's type-specific
// adjustment to its target nodes, scaled by effectiveness and the time step.
// Interventions apply in name order so seeded runs stay reproducible.
func (e *Engine) applyInterventionEffects(dt float64) {
	if len(e.net.State.ActiveInterventions) == 0 {
		return
	}

	names := make([]string, 0, len(e.net.State.ActiveInterventions))
	for name := range e.net.State.ActiveInterventions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		active := e.net.State.ActiveInterventions[name]
		strength := active.Effectiveness * dt

		for _, id := range e.net.Order {
			if !active.Targets[id] {
				continue
			}
			node := e.net.Nodes[id]

			switch active.Type {
			case netmodel.InterventionAudit:
				node.CorruptionLevel = netmodel.Clamp01(node.CorruptionLevel * (1 - 0.3*strength))
			case netmodel.InterventionTraining:
				node.ResistanceFactor = math.Min(1, node.ResistanceFactor+0.1*strength)
			case netmodel.InterventionPersonnelChange:
				node.CorruptionLevel = netmodel.Clamp01(node.CorruptionLevel * (1 - 0.5*strength))
			case netmodel.InterventionSystemReform:
				node.InstitutionalStrength = math.Min(1, node.InstitutionalStrength+0.15*strength)
			case netmodel.InterventionIsolation:
				node.ExposureRisk = netmodel.Clamp01(node.ExposureRisk * (1 - 0.4*strength))
			}
		}
	}
}
