package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimulationMetrics() {
	r.SimulationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "corrosim_simulations_total",
			Help: "Total number of simulation runs",
		},
		[]string{"status"},
	)

	r.SimulationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "corrosim_simulation_duration_seconds",
			Help:    "Wall-clock duration of simulation runs",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.SimulationDays = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "corrosim_simulation_days",
			Help:    "Simulated days completed per run",
			Buckets: []float64{1, 7, 30, 90, 180, 365},
		},
	)

	r.EarlyCapturesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "corrosim_early_captures_total",
			Help: "Runs halted early because total corruption exceeded the capture threshold",
		},
	)

	r.PeakCorruption = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "corrosim_peak_corruption",
			Help:    "Peak total corruption reached per run",
			Buckets: []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0},
		},
	)

	r.LayersFormedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "corrosim_layers_formed_total",
			Help: "Layers formed during simulation runs",
		},
		[]string{"layer_type"},
	)

	r.MutationEventsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "corrosim_mutation_events_total",
			Help: "Mutation events raised during simulation runs",
		},
		[]string{"mutation_type"},
	)

	r.InterventionsApplied = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "corrosim_interventions_applied_total",
			Help: "Intervention activations by type",
		},
		[]string{"intervention_type"},
	)
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "corrosim_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "corrosim_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
}
