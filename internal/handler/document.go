package handler

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// SessionHeader carries the caller's session key. Renders sharing a key are
// single-flight; a missing header gives every request its own pipeline.
const SessionHeader = "X-Session-ID"

// PageCountHeader reports the page count of a rendered document.
const PageCountHeader = "X-Page-Count"

// CreateDocument handles POST /documents.
// The body is a travel plan; the response is the rendered PDF.
func (s *Server) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var plan domain.TravelPlan
	if !decodeBody(w, r, &plan, "travel plan") {
		return
	}

	ctx := r.Context()
	if s.renderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.renderTimeout)
		defer cancel()
	}

	art, err := s.docs.Render(ctx, r.Header.Get(SessionHeader), plan)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRenderInProgress):
			writeError(w, http.StatusConflict, "render_in_progress", "a document is already being generated for this session")
		case errors.Is(err, domain.ErrRenderFailed):
			s.log.ErrorContext(r.Context(), "document render failed", "error", err)
			writeError(w, http.StatusInternalServerError, "render_failed", "could not generate the document, please retry")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/pdf")
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": art.FileName}))
	h.Set("Content-Length", strconv.Itoa(len(art.Bytes)))
	h.Set(PageCountHeader, strconv.Itoa(art.Pages))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(art.Bytes)
}
