package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-corrosim/pkg/analytics"
	"github.com/dd0wney/cluso-corrosim/pkg/insights"
	"github.com/dd0wney/cluso-corrosim/pkg/metrics"
	"github.com/dd0wney/cluso-corrosim/pkg/netmodel"
	"github.com/dd0wney/cluso-corrosim/pkg/validation"
	"github.com/dd0wney/cluso-corrosim/pkg/visualization"
)

// Options configures a run beyond the request itself.
type Options struct {
	// Rand overrides the random source. Nil falls back to the request's
	// seed, or the clock when no seed is given.
	Rand Rand
	// Metrics receives run observations when non-nil.
	Metrics *metrics.Registry
}

// Summary condenses a finished run.
type Summary struct {
	NodeCount            int     `json:"node_count"`
	EdgeCount            int     `json:"edge_count"`
	DaysSimulated        float64 `json:"days_simulated"`
	FinalTotalCorruption float64 `json:"final_total_corruption"`
	PeakCorruption       float64 `json:"peak_corruption"`
	PeakDay              int     `json:"peak_day"`
	SystemCaptured       bool    `json:"system_captured"`
	LayersFormed         int     `json:"layers_formed"`
	MutationEvents       int     `json:"mutation_events"`
}

// SimulationResult is everything a run produces: the summary, the day-indexed
// timeline, derived projections, risk predictions, findings, and whichever
// optional analytics blocks the request asked for.
type SimulationResult struct {
	RunID            string                                    `json:"run_id"`
	Summary          Summary                                   `json:"simulation_summary"`
	Timeline         []netmodel.TimelineEntry                  `json:"simulation_timeline"`
	Visualization    *visualization.Data                       `json:"visualization_data"`
	RiskPredictions  []analytics.RiskPrediction                `json:"risk_predictions,omitempty"`
	Insights         []string                                  `json:"insights,omitempty"`
	LayerAnalysis    *analytics.LayerAnalysisResult            `json:"layer_analysis,omitempty"`
	Accumulation     *analytics.AccumulationResult             `json:"accumulation,omitempty"`
	Persistence      *analytics.PersistenceResult              `json:"persistence,omitempty"`
	MutationTracking *analytics.MutationTrackingResult         `json:"mutation_tracking,omitempty"`
	InterventionPlan *analytics.InterventionOptimizationResult `json:"intervention_optimization,omitempty"`
}

// Run is the single synchronous entry point: validate the request, build
// the network, run the simulation to termination, then fan out the
// analytics passes over the finished trajectory and derive insights.
func Run(req *validation.SimulationRequest, opts Options) (*SimulationResult, error) {
	started := time.Now()

	if err := validation.ValidateSimulationRequest(req); err != nil {
		if opts.Metrics != nil {
			opts.Metrics.SimulationsTotal.WithLabelValues("rejected").Inc()
		}
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		if seed := req.SimulationParams.RandomSeed; seed != nil {
			rng = NewSeededRand(*seed)
		} else {
			rng = NewClockRand()
		}
	}

	net := buildNetwork(req)
	eng := New(net, req.SimulationParams, req.InterventionScenarios, rng, opts.Metrics)
	if err := eng.Simulate(); err != nil {
		if opts.Metrics != nil {
			opts.Metrics.SimulationsTotal.WithLabelValues("failed").Inc()
		}
		return nil, err
	}

	snap := &analytics.Snapshot{
		Net:       net,
		Timeline:  eng.timeline,
		Scenarios: req.InterventionScenarios,
	}
	suite := analytics.RunSuite(snap, req.AnalysisFocus)

	summary := Summary{
		NodeCount:            len(net.Order),
		EdgeCount:            len(net.Edges),
		DaysSimulated:        eng.daysSimulated,
		FinalTotalCorruption: net.State.TotalCorruption,
		PeakCorruption:       eng.peakCorruption,
		PeakDay:              eng.peakDay,
		SystemCaptured:       eng.captured,
		LayersFormed:         len(net.Layers),
		MutationEvents:       eng.mutationEvents,
	}

	findings := insights.Generate(insights.RunFacts{
		FinalTotalCorruption: summary.FinalTotalCorruption,
		PeakCorruption:       summary.PeakCorruption,
		PeakDay:              summary.PeakDay,
		SystemCaptured:       summary.SystemCaptured,
		LayersFormed:         summary.LayersFormed,
		NodeCount:            summary.NodeCount,
	}, suite)

	if opts.Metrics != nil {
		opts.Metrics.RecordSimulation("completed", time.Since(started),
			summary.DaysSimulated, summary.PeakCorruption, summary.SystemCaptured)
	}

	return &SimulationResult{
		RunID:            uuid.New().String(),
		Summary:          summary,
		Timeline:         eng.timeline,
		Visualization:    visualization.Project(eng.timeline, net.Order),
		RiskPredictions:  suite.RiskPredictions,
		Insights:         findings,
		LayerAnalysis:    suite.LayerAnalysis,
		Accumulation:     suite.Accumulation,
		Persistence:      suite.Persistence,
		MutationTracking: suite.MutationTracking,
		InterventionPlan: suite.InterventionPlan,
	}, nil
}

// buildNetwork converts a validated request into the simulation's network.
func buildNetwork(req *validation.SimulationRequest) *netmodel.Network {
	nodes := make([]netmodel.NodeSeed, 0, len(req.NetworkNodes))
	for _, spec := range req.NetworkNodes {
		nodes = append(nodes, netmodel.NodeSeed{
			ID:                    spec.ID,
			Name:                  spec.Name,
			CorruptionLevel:       spec.InitialCorruptionLevel,
			ResistanceFactor:      spec.ResistanceFactor,
			InstitutionalStrength: spec.InstitutionalStrength,
			ExposureRisk:          spec.ExposureRisk,
			RecoveryRate:          spec.RecoveryRate,
		})
	}

	edges := make([]netmodel.EdgeSeed, 0, len(req.NetworkEdges))
	for _, spec := range req.NetworkEdges {
		edges = append(edges, netmodel.EdgeSeed{
			Source:            spec.Source,
			Target:            spec.Target,
			DiffusionStrength: spec.DiffusionStrength,
			Type:              spec.RelationType(),
			Bidirectional:     spec.Bidirectional,
		})
	}

	return netmodel.NewNetwork(nodes, edges, req.SimulationParams.MutationProbability)
}
