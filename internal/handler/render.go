package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// RenderList is the body of GET /renders.
type RenderList struct {
	Data       []domain.RenderRecord `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

// ListRenders handles GET /renders.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListRenders(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		requestError(w, "invalid page parameter: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		requestError(w, "invalid limit parameter: "+err.Error())
		return
	}

	params := domain.NewPaginationParams(page, limit)
	recs, total, err := s.docs.ListRenders(r.Context(), params)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	if recs == nil {
		recs = []domain.RenderRecord{}
	}
	writeJSON(w, http.StatusOK, RenderList{
		Data: recs,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetRender handles GET /renders/{id}.
func (s *Server) GetRender(w http.ResponseWriter, r *http.Request) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		requestError(w, "invalid id parameter: "+err.Error())
		return
	}

	rec, err := s.docs.GetRender(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "render not found")
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
