package metrics

import (
	"time"
)

// RecordSimulation records one completed simulation run.
func (r *Registry) RecordSimulation(status string, duration time.Duration, daysSimulated, peakCorruption float64, captured bool) {
	r.SimulationsTotal.WithLabelValues(status).Inc()
	r.SimulationDuration.Observe(duration.Seconds())
	r.SimulationDays.Observe(daysSimulated)
	r.PeakCorruption.Observe(peakCorruption)
	if captured {
		r.EarlyCapturesTotal.Inc()
	}
}

// RecordLayer records a newly formed layer.
func (r *Registry) RecordLayer(layerType string) {
	r.LayersFormedTotal.WithLabelValues(layerType).Inc()
}

// RecordMutation records a mutation event.
func (r *Registry) RecordMutation(mutationType string) {
	r.MutationEventsTotal.WithLabelValues(mutationType).Inc()
}

// RecordIntervention records an intervention activation.
func (r *Registry) RecordIntervention(interventionType string) {
	r.InterventionsApplied.WithLabelValues(interventionType).Inc()
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
