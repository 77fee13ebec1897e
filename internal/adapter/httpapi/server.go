// Package httpapi is the serving boundary of the dashboard data service.
// It hands the derived series, site inventory, and survey tables to
// rendering collaborators as JSON, and the series as a CSV download. It
// renders nothing itself.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coastwatch/sea-level-service/internal/catalog"
	"github.com/coastwatch/sea-level-service/internal/domain"
	"github.com/coastwatch/sea-level-service/internal/observability"
)

// SnapshotPublisher pushes a snapshot to downstream consumers.
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, snapshot domain.Snapshot) error
}

// Server exposes the dashboard data API plus health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	catalog    *catalog.Catalog
	publisher  SnapshotPublisher // nil when publishing is disabled
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer builds the router and wraps it in an http.Server. Pass a nil
// publisher to disable the snapshot endpoint.
func NewServer(addr string, cat *catalog.Catalog, publisher SnapshotPublisher, metrics *observability.Metrics, logger *slog.Logger) *Server {
	s := &Server{
		catalog:   cat,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.countRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sea-level", s.handleSeries)
		r.Get("/sea-level/summary", s.handleSummary)
		r.Get("/sea-level.csv", s.handleSeriesCSV)
		r.Get("/damage-sites", s.handleSites)
		r.Get("/mental-health", s.handleMentalHealth)
		r.Get("/projections", s.handleProjections)
		r.Post("/snapshot/publish", s.handlePublish)
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// countRequests records per-route request counts by status code. The chi
// route pattern is resolved after the handler runs so parameterized
// routes are not exploded into distinct label values.
func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.catalog.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
