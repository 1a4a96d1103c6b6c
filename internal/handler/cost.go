package handler

import (
	"errors"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/travel-planner/backend/internal/costsplit"
	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// PerTravelerResponse is the body of POST /costs/per-traveler.
type PerTravelerResponse struct {
	Travelers   int                  `json:"travelers"`
	PerTraveler domain.CostBreakdown `json:"per_traveler"`
	Shares      []costsplit.Share    `json:"shares"`
}

// SplitCosts handles POST /costs/per-traveler?travelers=N.
// The body is a cost breakdown; every field is divided by N.
func (s *Server) SplitCosts(w http.ResponseWriter, r *http.Request) {
	var travelers int
	if err := runtime.BindQueryParameter("form", true, true, "travelers", r.URL.Query(), &travelers); err != nil {
		requestError(w, "invalid travelers parameter: "+err.Error())
		return
	}

	var costs domain.CostBreakdown
	if !decodeBody(w, r, &costs, "cost breakdown") {
		return
	}

	got, err := s.costs.PerTraveler(r.Context(), costs, travelers)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			unprocessable(w, "validation_error", err, domain.ErrValidation)
		case errors.Is(err, domain.ErrInconsistentTotal):
			unprocessable(w, "inconsistent_total", err, domain.ErrInconsistentTotal)
		default:
			s.internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, PerTravelerResponse{
		Travelers:   got.Travelers,
		PerTraveler: got.PerTraveler,
		Shares:      got.Shares,
	})
}
