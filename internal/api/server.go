// Package api exposes the validation engine over HTTP: JSON endpoints for
// the six engine operations, registry listings, report rendering, health,
// and Prometheus metrics. Handlers are stateless wrappers over the pure
// engine, so the server is safe for any request concurrency.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"enercheck/internal/logging"
	"enercheck/ports"
)

// Server is the HTTP surface of the validation service
type Server struct {
	router    *chi.Mux
	validator ports.ValidatorPort
	renderer  ports.ReportRendererPort
	metrics   *Metrics
	log       *logging.Logger
}

// NewServer wires routes, middleware, and metrics around the validator
func NewServer(validator ports.ValidatorPort, renderer ports.ReportRendererPort, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Default
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	s := &Server{
		router:    chi.NewRouter(),
		validator: validator,
		renderer:  renderer,
		metrics:   NewMetrics(registry),
		log:       log.WithComponent("API"),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/validate/simulations", s.handleValidateSimulations)
		r.Post("/validate/tea", s.handleValidateTEA)
		r.Post("/validate/hypothesis", s.handleValidateHypothesis)
		r.Post("/validate/conclusions", s.handleValidateConclusions)
		r.Post("/validate/workflow", s.handleValidateWorkflow)
		r.Get("/quick-check", s.handleQuickCheck)
		r.Get("/benchmarks", s.handleListBenchmarks)
		r.Get("/facts", s.handleListFacts)
		r.Post("/reports/markdown", s.handleRenderReport)
	})

	s.router.Get("/healthz", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return s
}

// Handler returns the root handler for mounting or serving
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
