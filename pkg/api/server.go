// Package api wraps the simulation core in a thin HTTP surface. The core
// stays a synchronous Run call; this layer only decodes requests, invokes
// it, and encodes results.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/cluso-corrosim/pkg/logging"
	"github.com/dd0wney/cluso-corrosim/pkg/metrics"
)

// Server represents the HTTP API server
type Server struct {
	registry  *metrics.Registry
	logger    logging.Logger
	startTime time.Time
	version   string
	port      int
}

// NewServer creates a new API server
func NewServer(port int, registry *metrics.Registry) *Server {
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	return &Server{
		registry:  registry,
		logger:    logging.DefaultLogger().With(logging.Component("api")),
		startTime: time.Now(),
		version:   "1.0.0",
		port:      port,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.registry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))

	mux.HandleFunc("/simulate", s.instrument("/simulate", s.handleSimulate))

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("listening", logging.String("addr", addr))
	return http.ListenAndServe(addr, mux)
}

// instrument wraps a handler with request metrics and logging.
func (s *Server) instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		elapsed := time.Since(started)
		s.registry.RecordHTTPRequest(r.Method, path,
			fmt.Sprintf("%d", recorder.status), elapsed)
		s.logger.Info("request",
			logging.String("method", r.Method),
			logging.Path(path),
			logging.Int("status", recorder.status),
			logging.Latency(elapsed))
	}
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
