package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/document"
	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/handler"
	"github.com/pkordes/travel-planner/backend/internal/service"
)

// mockDocumentServicer is a test double for handler.DocumentServicer.
// Set only the method fields your test needs.
type mockDocumentServicer struct {
	render      func(ctx context.Context, sessionKey string, plan domain.TravelPlan) (document.Artifact, error)
	getRender   func(ctx context.Context, id uuid.UUID) (domain.RenderRecord, error)
	listRenders func(ctx context.Context, p domain.PaginationParams) ([]domain.RenderRecord, int64, error)
}

func (m *mockDocumentServicer) Render(ctx context.Context, key string, plan domain.TravelPlan) (document.Artifact, error) {
	return m.render(ctx, key, plan)
}
func (m *mockDocumentServicer) GetRender(ctx context.Context, id uuid.UUID) (domain.RenderRecord, error) {
	return m.getRender(ctx, id)
}
func (m *mockDocumentServicer) ListRenders(ctx context.Context, p domain.PaginationParams) ([]domain.RenderRecord, int64, error) {
	return m.listRenders(ctx, p)
}

// compile-time check: mockDocumentServicer must satisfy handler.DocumentServicer.
var _ handler.DocumentServicer = (*mockDocumentServicer)(nil)

// mockCostServicer is a test double for handler.CostServicer.
type mockCostServicer struct {
	perTraveler func(ctx context.Context, costs domain.CostBreakdown, travelers int) (service.PerTravelerCosts, error)
}

func (m *mockCostServicer) PerTraveler(ctx context.Context, costs domain.CostBreakdown, travelers int) (service.PerTravelerCosts, error) {
	return m.perTraveler(ctx, costs, travelers)
}

var _ handler.CostServicer = (*mockCostServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its router, the
// same way main.go does.
func newHTTPHandler(docs handler.DocumentServicer, costs handler.CostServicer) http.Handler {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return handler.NewServer(docs, costs, log, 5*time.Second).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body io.Reader) handler.ErrorResponse {
	t.Helper()
	var e handler.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&e))
	return e
}
