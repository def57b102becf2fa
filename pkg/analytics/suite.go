package analytics

import (
	"runtime"

	"github.com/dd0wney/cluso-corrosim/pkg/parallel"
	"github.com/dd0wney/cluso-corrosim/pkg/validation"
)

// RunSuite fans the requested passes out over a worker pool. Every pass
// reads only the immutable snapshot and writes only its own result field,
// so completion order does not matter. Risk prediction always runs; the
// other passes run when named in focus.
func RunSuite(snap *Snapshot, focus []string) *SuiteResult {
	result := &SuiteResult{}
	wants := func(name string) bool {
		for _, f := range focus {
			if f == name {
				return true
			}
		}
		return false
	}

	tasks := []func(){
		func() { result.RiskPredictions = PredictRisks(snap) },
	}
	if wants(validation.FocusLayerAnalysis) {
		tasks = append(tasks, func() { result.LayerAnalysis = AnalyzeLayers(snap) })
	}
	if wants(validation.FocusAccumulation) {
		tasks = append(tasks, func() { result.Accumulation = AccumulationIndex(snap) })
	}
	if wants(validation.FocusPersistence) {
		tasks = append(tasks, func() { result.Persistence = AnalyzePersistence(snap) })
	}
	if wants(validation.FocusMutationTracking) {
		tasks = append(tasks, func() { result.MutationTracking = TrackMutations(snap) })
	}
	if wants(validation.FocusInterventionOptimization) {
		tasks = append(tasks, func() { result.InterventionPlan = OptimizeInterventions(snap.Scenarios) })
	}

	pool, err := parallel.NewWorkerPool(runtime.NumCPU())
	if err != nil {
		// Only reachable with an absurd worker count; fall back to serial.
		for _, task := range tasks {
			task()
		}
		return result
	}
	defer pool.Close()

	pool.RunAll(tasks)
	return result
}
