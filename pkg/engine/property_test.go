package engine

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-corrosim/pkg/validation"
)

// TestSimulationInvariants uses property-based testing to verify dynamics
// invariants. These properties should ALWAYS hold for any valid parameter set.
func TestSimulationInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	runWith := func(seed int64, levels []float64, growth, diffusion float64) *SimulationResult {
		req := &validation.SimulationRequest{
			SimulationParams: validation.SimulationParams{
				TimeHorizon:          15,
				TimeStep:             1,
				GrowthRate:           growth,
				DiffusionCoefficient: diffusion,
				CarryingCapacity:     1,
				MutationProbability:  0.05,
				RandomSeed:           &seed,
			},
		}
		for i, level := range levels {
			id := string(rune('a' + i))
			req.NetworkNodes = append(req.NetworkNodes, validation.NodeSpec{
				ID: id, Name: id,
				InitialCorruptionLevel: level,
				ResistanceFactor:       0.3,
				InstitutionalStrength:  0.4,
				ExposureRisk:           0.6,
				RecoveryRate:           0.2,
			})
			if i > 0 {
				req.NetworkEdges = append(req.NetworkEdges, validation.EdgeSpec{
					Source: string(rune('a' + i - 1)), Target: id,
					DiffusionStrength: 0.5, RelationshipType: "peer",
					Bidirectional: true,
				})
			}
		}
		result, err := Run(req, Options{})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return result
	}

	genLevels := gen.SliceOfN(4, gen.Float64Range(0, 0.95))
	genRate := gen.Float64Range(0, 1)

	// Property 1: every recorded level stays inside the unit interval.
	properties.Property("corruption levels stay in [0,1]", prop.ForAll(
		func(seed int64, levels []float64, growth, diffusion float64) bool {
			result := runWith(seed, levels, growth, diffusion)
			for _, entry := range result.Timeline {
				if entry.TotalCorruption < 0 || entry.TotalCorruption > 1 {
					return false
				}
				for _, node := range entry.Nodes {
					if node.CorruptionLevel < 0 || node.CorruptionLevel > 1 {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		genLevels,
		genRate,
		genRate,
	))

	// Property 2: the total is always the arithmetic mean of the node levels.
	properties.Property("total corruption equals node mean", prop.ForAll(
		func(seed int64, levels []float64, growth, diffusion float64) bool {
			result := runWith(seed, levels, growth, diffusion)
			for _, entry := range result.Timeline {
				sum := 0.0
				for _, node := range entry.Nodes {
					sum += node.CorruptionLevel
				}
				if math.Abs(entry.TotalCorruption-sum/float64(len(entry.Nodes))) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		genLevels,
		genRate,
		genRate,
	))

	// Property 3: the run never records more days than the horizon allows,
	// and an uncaptured run covers every day.
	properties.Property("timeline bounded by horizon", prop.ForAll(
		func(seed int64, levels []float64, growth, diffusion float64) bool {
			result := runWith(seed, levels, growth, diffusion)
			if len(result.Timeline) > 16 {
				return false
			}
			if !result.Summary.SystemCaptured && len(result.Timeline) != 16 {
				return false
			}
			return true
		},
		gen.Int64(),
		genLevels,
		genRate,
		genRate,
	))

	// Property 4: the same seed reproduces the same final state.
	properties.Property("seeded runs are deterministic", prop.ForAll(
		func(seed int64, levels []float64, growth, diffusion float64) bool {
			first := runWith(seed, levels, growth, diffusion)
			second := runWith(seed, levels, growth, diffusion)
			return first.Summary == second.Summary
		},
		gen.Int64(),
		genLevels,
		genRate,
		genRate,
	))

	properties.TestingRun(t)
}
