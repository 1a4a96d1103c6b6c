package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-planner/backend/internal/costsplit"
	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// PerTravelerCosts is a breakdown divided across a party.
type PerTravelerCosts struct {
	Travelers   int
	PerTraveler domain.CostBreakdown
	Shares      []costsplit.Share
}

// CostService exposes the cost split engine.
type CostService struct{}

// NewCostService constructs a CostService.
func NewCostService() *CostService {
	return &CostService{}
}

// PerTraveler divides costs across travelers. It returns domain.ErrValidation
// for travelers < 1 and domain.ErrInconsistentTotal when the total does not
// match its components.
func (s *CostService) PerTraveler(_ context.Context, costs domain.CostBreakdown, travelers int) (PerTravelerCosts, error) {
	per, err := costsplit.DerivePerTraveler(costs, travelers)
	if err != nil {
		return PerTravelerCosts{}, fmt.Errorf("service.CostService.PerTraveler: %w", err)
	}
	return PerTravelerCosts{
		Travelers:   travelers,
		PerTraveler: per,
		Shares:      costsplit.Shares(per),
	}, nil
}
