// Package handler implements the HTTP handlers for the travel planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, document.go, ...) but share the Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/backend/internal/document"
	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/service"
)

// DocumentServicer defines the operations the document and render log
// handlers depend on. Defining it here, in the consumer package, lets
// handler tests inject a mock without the rendering pipeline.
type DocumentServicer interface {
	Render(ctx context.Context, sessionKey string, plan domain.TravelPlan) (document.Artifact, error)
	GetRender(ctx context.Context, id uuid.UUID) (domain.RenderRecord, error)
	ListRenders(ctx context.Context, p domain.PaginationParams) ([]domain.RenderRecord, int64, error)
}

// CostServicer defines the cost split operations the cost handler depends on.
type CostServicer interface {
	PerTraveler(ctx context.Context, costs domain.CostBreakdown, travelers int) (service.PerTravelerCosts, error)
}

// Server holds the dependencies of every endpoint.
type Server struct {
	docs          DocumentServicer
	costs         CostServicer
	log           *slog.Logger
	renderTimeout time.Duration
}

// NewServer constructs the Server. A zero renderTimeout leaves renders
// bounded only by the request context.
func NewServer(docs DocumentServicer, costs CostServicer, log *slog.Logger, renderTimeout time.Duration) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{docs: docs, costs: costs, log: log, renderTimeout: renderTimeout}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, 0)
}

// Routes returns the API router. Mount it under "/".
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Post("/documents", s.CreateDocument)
	r.Post("/costs/per-traveler", s.SplitCosts)
	r.Get("/renders", s.ListRenders)
	r.Get("/renders/{id}", s.GetRender)
	return r
}
