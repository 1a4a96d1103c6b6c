// Package service contains the business logic of the travel planner API.
// Services orchestrate the document pipeline and the cost engine and record
// render attempts. No SQL lives here; services depend on repo interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/travel-planner/backend/internal/document"
	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/repo"
)

const tracerName = "github.com/pkordes/travel-planner/backend/internal/service"

// Assembler renders one plan. *document.Assembler satisfies it.
type Assembler interface {
	Assemble(ctx context.Context, plan domain.TravelPlan) (document.Artifact, error)
}

// AssemblerFor returns the assembler owning a session key and a release func
// called once the render is over.
type AssemblerFor func(sessionKey string) (Assembler, func())

// DocumentService renders plans and keeps the render log.
type DocumentService struct {
	assemblers AssemblerFor
	renders    repo.RenderRepo
	log        *slog.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

// DocumentOption configures a DocumentService.
type DocumentOption func(*DocumentService)

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) DocumentOption {
	return func(s *DocumentService) { s.tracer = t }
}

// WithClock overrides the clock stamping render records.
func WithClock(now func() time.Time) DocumentOption {
	return func(s *DocumentService) { s.now = now }
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(assemblers AssemblerFor, renders repo.RenderRepo, log *slog.Logger, opts ...DocumentOption) *DocumentService {
	s := &DocumentService{
		assemblers: assemblers,
		renders:    renders,
		log:        log,
		tracer:     otel.Tracer(tracerName),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render assembles plan through the session's assembler and records the
// attempt. A rejected re-entrant request (domain.ErrRenderInProgress) is
// not recorded. Failing to record never fails the render.
func (s *DocumentService) Render(ctx context.Context, sessionKey string, plan domain.TravelPlan) (document.Artifact, error) {
	ctx, span := s.tracer.Start(ctx, "document.render",
		trace.WithAttributes(attribute.String("render.session_key", sessionKey)))
	defer span.End()

	assembler, release := s.assemblers(sessionKey)
	defer release()

	started := s.now()
	art, err := assembler.Assemble(ctx, plan)
	if errors.Is(err, domain.ErrRenderInProgress) {
		span.AddEvent("render.in_progress")
		return document.Artifact{}, fmt.Errorf("service.DocumentService.Render: %w", err)
	}
	finished := s.now()

	rec := domain.RenderRecord{
		ID:         uuid.New(),
		SessionKey: sessionKey,
		FileName:   document.FileName(plan, started),
		PageCount:  art.Pages,
		Outcome:    domain.RenderDone,
		StartedAt:  started,
		FinishedAt: finished,
	}
	if err != nil {
		rec.Outcome = domain.RenderFailed
		rec.Error = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		s.log.ErrorContext(ctx, "render failed",
			"session_key", sessionKey,
			"render_id", rec.ID,
			"error", err,
		)
	} else {
		span.SetAttributes(
			attribute.Int("render.pages", art.Pages),
			attribute.Int("render.bytes", len(art.Bytes)),
		)
		s.log.InfoContext(ctx, "document rendered",
			"session_key", sessionKey,
			"render_id", rec.ID,
			"file_name", art.FileName,
			"pages", art.Pages,
			"bytes", len(art.Bytes),
			"duration_ms", finished.Sub(started).Milliseconds(),
		)
	}

	// The log entry outlives a cancelled request.
	if _, rerr := s.renders.Create(context.WithoutCancel(ctx), rec); rerr != nil {
		s.log.WarnContext(ctx, "render log write failed", "render_id", rec.ID, "error", rerr)
	}

	if err != nil {
		return document.Artifact{}, fmt.Errorf("service.DocumentService.Render: %w", err)
	}
	return art, nil
}

// GetRender returns one render record.
func (s *DocumentService) GetRender(ctx context.Context, id uuid.UUID) (domain.RenderRecord, error) {
	rec, err := s.renders.GetByID(ctx, id)
	if err != nil {
		return domain.RenderRecord{}, fmt.Errorf("service.DocumentService.GetRender: %w", err)
	}
	return rec, nil
}

// ListRenders returns one page of the render log and the total count.
func (s *DocumentService) ListRenders(ctx context.Context, p domain.PaginationParams) ([]domain.RenderRecord, int64, error) {
	recs, total, err := s.renders.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.DocumentService.ListRenders: %w", err)
	}
	return recs, total, nil
}
