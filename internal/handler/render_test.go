package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/handler"
)

func renderFixture() domain.RenderRecord {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.RenderRecord{
		ID:         uuid.New(),
		SessionKey: "alice",
		FileName:   "Travel_Plan_Delhi_to_Goa_2023-12-15.pdf",
		PageCount:  5,
		Outcome:    domain.RenderDone,
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
}

func TestListRenders_200(t *testing.T) {
	var got domain.PaginationParams
	svc := &mockDocumentServicer{listRenders: func(_ context.Context, p domain.PaginationParams) ([]domain.RenderRecord, int64, error) {
		got = p
		return []domain.RenderRecord{renderFixture()}, 11, nil
	}}
	h := newHTTPHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/renders?page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 5}, got)

	var body handler.RenderList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, domain.RenderDone, body.Data[0].Outcome)
	assert.Equal(t, handler.Pagination{Page: 2, Limit: 5, Total: 11}, body.Pagination)
}

func TestListRenders_200_EmptyDefaults(t *testing.T) {
	var got domain.PaginationParams
	svc := &mockDocumentServicer{listRenders: func(_ context.Context, p domain.PaginationParams) ([]domain.RenderRecord, int64, error) {
		got = p
		return nil, 0, nil
	}}
	h := newHTTPHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/renders", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, got)
	assert.JSONEq(t, `{"data":[],"pagination":{"page":1,"limit":20,"total":0}}`, rec.Body.String())
}

func TestListRenders_422_BadPage(t *testing.T) {
	h := newHTTPHandler(&mockDocumentServicer{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/renders?page=first", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListRenders_500(t *testing.T) {
	svc := &mockDocumentServicer{listRenders: func(context.Context, domain.PaginationParams) ([]domain.RenderRecord, int64, error) {
		return nil, 0, errors.New("db down")
	}}
	h := newHTTPHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/renders", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetRender_200(t *testing.T) {
	want := renderFixture()
	svc := &mockDocumentServicer{getRender: func(_ context.Context, id uuid.UUID) (domain.RenderRecord, error) {
		require.Equal(t, want.ID, id)
		return want, nil
	}}
	h := newHTTPHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/renders/"+want.ID.String(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.RenderRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, want.ID, body.ID)
	assert.Equal(t, 5, body.PageCount)
}

func TestGetRender_404(t *testing.T) {
	svc := &mockDocumentServicer{getRender: func(context.Context, uuid.UUID) (domain.RenderRecord, error) {
		return domain.RenderRecord{}, domain.ErrNotFound
	}}
	h := newHTTPHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/renders/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec.Body).Error.Code)
}

func TestGetRender_422_InvalidID(t *testing.T) {
	h := newHTTPHandler(&mockDocumentServicer{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/renders/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
