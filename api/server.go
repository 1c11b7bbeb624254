// Package api exposes the scenario operations over a plain REST surface:
// GET /scenarios, GET /scenarios/{scenarioID}, GET /search.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dunwich/arkham-central-mcp/internal/arkham"
	"github.com/dunwich/arkham-central-mcp/internal/models"
	"github.com/dunwich/arkham-central-mcp/internal/search"
)

// ScenarioService is the slice of the retrieval service the API needs.
type ScenarioService interface {
	ListScenarios(ctx context.Context) ([]models.ScenarioSummary, error)
	GetScenario(ctx context.Context, id string) (*models.ScenarioDetail, error)
	SearchScenarios(ctx context.Context, name string) ([]models.ScenarioSummary, error)
}

// Server serves the REST API.
type Server struct {
	svc    ScenarioService
	logger *slog.Logger
}

// NewServer creates a Server. A nil logger falls back to slog's default.
func NewServer(svc ScenarioService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, logger: logger}
}

// Router builds the route table.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/scenarios", s.handleListScenarios)
	r.Get("/scenarios/{scenarioID}", s.handleGetScenario)
	r.Get("/search", s.handleSearch)

	return r
}

// ListenAndServe runs the API server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("REST API listening", "addr", addr)
	return srv.ListenAndServe()
}

func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := s.svc.ListScenarios(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scenarios)
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scenarioID")

	detail, err := s.svc.GetScenario(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	typ, err := search.ParseQueryType(r.URL.Query().Get("type"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	results, err := search.Dispatch(r.Context(), s.svc, typ, r.URL.Query().Get("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// writeError maps the retrieval error taxonomy onto HTTP statuses:
// validation and not-supported → 400, not-found → 404, upstream → 502.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var kind string
	switch {
	case errors.Is(err, arkham.ErrValidation):
		status, kind = http.StatusBadRequest, "validation"
	case errors.Is(err, arkham.ErrNotSupported):
		status, kind = http.StatusBadRequest, "not_supported"
	case errors.Is(err, arkham.ErrNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, arkham.ErrUpstream):
		status, kind = http.StatusBadGateway, "upstream_error"
		s.logger.Error("upstream failure", "path", r.URL.Path, "error", err)
	default:
		status, kind = http.StatusInternalServerError, "internal"
		s.logger.Error("unexpected failure", "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, map[string]string{
		"error":   kind,
		"message": err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
