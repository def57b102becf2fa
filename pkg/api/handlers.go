package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-corrosim/pkg/engine"
	"github.com/dd0wney/cluso-corrosim/pkg/logging"
	"github.com/dd0wney/cluso-corrosim/pkg/validation"
)

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	UptimeSec float64   `json:"uptime_seconds"`
}

// ErrorResponse carries a user-safe error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleHealth reports liveness and uptime.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   s.version,
		UptimeSec: time.Since(s.startTime).Seconds(),
	})
}

// handleSimulate decodes a simulation request, runs it synchronously, and
// returns the full result. Validation failures are the caller's fault;
// anything else is ours.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	var req validation.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := engine.Run(&req, engine.Options{Metrics: s.registry})
	if err != nil {
		s.logger.Error("simulation rejected", logging.Error(err))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	s.logger.Info("simulation completed",
		logging.RunID(result.RunID),
		logging.Nodes(result.Summary.NodeCount),
		logging.Float64("final_corruption", result.Summary.FinalTotalCorruption))
	writeJSON(w, http.StatusOK, result)
}

// writeJSON serializes a response body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.ErrorLog("response encode failed", logging.Error(err))
	}
}
