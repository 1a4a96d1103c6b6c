package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/service"
)

func costs() domain.CostBreakdown {
	return domain.CostBreakdown{
		Accommodation: "₹12000", Transportation: "₹8000", Activities: "₹4000", Food: "₹6000", Total: "₹30000",
	}
}

func TestCostService_PerTraveler(t *testing.T) {
	svc := service.NewCostService()

	got, err := svc.PerTraveler(context.Background(), costs(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, got.Travelers)
	assert.Equal(t, domain.Money("₹6000"), got.PerTraveler.Accommodation)
	assert.Equal(t, domain.Money("₹15000"), got.PerTraveler.Total)
	assert.True(t, got.PerTraveler.Miscellaneous.IsZero())
	require.Len(t, got.Shares, 4)
	assert.Equal(t, "40.0", got.Shares[0].Percent)
}

func TestCostService_PerTraveler_InvalidTravelers(t *testing.T) {
	_, err := service.NewCostService().PerTraveler(context.Background(), costs(), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCostService_PerTraveler_InconsistentTotal(t *testing.T) {
	c := costs()
	c.Total = "₹99999"

	_, err := service.NewCostService().PerTraveler(context.Background(), c, 2)

	assert.ErrorIs(t, err, domain.ErrInconsistentTotal)
}
