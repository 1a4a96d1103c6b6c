package costsplit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/costsplit"
	"github.com/pkordes/travel-planner/backend/internal/currency"
	"github.com/pkordes/travel-planner/backend/internal/domain"
)

func sampleCosts() domain.CostBreakdown {
	return domain.CostBreakdown{
		Accommodation:  "₹4000",
		Transportation: "₹2000",
		Activities:     "₹1000",
		Food:           "₹1000",
		Total:          "₹8000",
	}
}

// ---- DerivePerTraveler -----------------------------------------------------

func TestDerivePerTraveler_TwoTravelers(t *testing.T) {
	got, err := costsplit.DerivePerTraveler(sampleCosts(), 2)

	require.NoError(t, err)
	assert.Equal(t, domain.CostBreakdown{
		Accommodation:  "₹2000",
		Transportation: "₹1000",
		Activities:     "₹500",
		Food:           "₹500",
		Total:          "₹4000",
	}, got)
}

func TestDerivePerTraveler_OneTravelerIsIdentity(t *testing.T) {
	got, err := costsplit.DerivePerTraveler(sampleCosts(), 1)

	require.NoError(t, err)
	assert.Equal(t, sampleCosts(), got)
}

func TestDerivePerTraveler_OneTraveler_NormalizesDecoratedInput(t *testing.T) {
	in := domain.CostBreakdown{
		Accommodation:  "₹4,000",
		Transportation: "2000",
		Activities:     "Rs 1000",
		Food:           "₹1,000",
		Miscellaneous:  "₹500",
		Total:          "₹8,500",
	}

	got, err := costsplit.DerivePerTraveler(in, 1)

	require.NoError(t, err)
	for _, f := range costsplit.Components {
		assert.Equal(t, currency.Parse(costsplit.Value(in, f)), currency.Parse(costsplit.Value(got, f)), f)
	}
	assert.Equal(t, domain.Money("₹8500"), got.Total)
	assert.Equal(t, domain.Money("₹4000"), got.Accommodation)
}

func TestDerivePerTraveler_Linearity(t *testing.T) {
	in := domain.CostBreakdown{
		Accommodation:  "₹7001",
		Transportation: "₹2999",
		Activities:     "₹1234",
		Food:           "₹4321",
		Miscellaneous:  "₹445",
		Total:          "₹16000",
	}

	for _, n := range []int{1, 2, 3, 4, 7} {
		got, err := costsplit.DerivePerTraveler(in, n)
		require.NoError(t, err)

		for _, f := range costsplit.Components {
			want := currency.PerUnit(costsplit.Value(in, f), n)
			assert.Equal(t, want, costsplit.Value(got, f), "field %s with %d travelers", f, n)
		}
		assert.Equal(t, currency.PerUnit(in.Total, n), got.Total)
	}
}

func TestDerivePerTraveler_TotalComesFromOriginalTotal(t *testing.T) {
	// 1001/3 + 1001/3 + 1001/3 + 1001/3 rounds to 4*334 = 1336,
	// but the total must be round(4004/3) = 1335.
	in := domain.CostBreakdown{
		Accommodation:  "₹1001",
		Transportation: "₹1001",
		Activities:     "₹1001",
		Food:           "₹1001",
		Total:          "₹4004",
	}

	got, err := costsplit.DerivePerTraveler(in, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.Money("₹334"), got.Food)
	assert.Equal(t, domain.Money("₹1335"), got.Total)
}

func TestDerivePerTraveler_MissingMiscellaneousStaysAbsent(t *testing.T) {
	got, err := costsplit.DerivePerTraveler(sampleCosts(), 3)

	require.NoError(t, err)
	assert.True(t, got.Miscellaneous.IsZero())
}

func TestDerivePerTraveler_ZeroTravelers(t *testing.T) {
	_, err := costsplit.DerivePerTraveler(sampleCosts(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDerivePerTraveler_InconsistentTotal(t *testing.T) {
	in := sampleCosts()
	in.Total = "₹9000"

	_, err := costsplit.DerivePerTraveler(in, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInconsistentTotal)
}

func TestDerivePerTraveler_MalformedFieldParsesToZero(t *testing.T) {
	in := domain.CostBreakdown{
		Accommodation:  "₹4000",
		Transportation: "included",
		Activities:     "₹1000",
		Food:           "₹1000",
		Total:          "₹6000",
	}

	got, err := costsplit.DerivePerTraveler(in, 2)

	require.NoError(t, err)
	assert.Equal(t, domain.Money("₹0"), got.Transportation)
	assert.Equal(t, domain.Money("₹3000"), got.Total)
}

// ---- CheckTotal ------------------------------------------------------------

func TestCheckTotal_ToleranceOfOnePerComponent(t *testing.T) {
	in := sampleCosts()
	in.Total = "₹8004" // four components, off by four
	assert.NoError(t, costsplit.CheckTotal(in))

	in.Total = "₹8005"
	assert.ErrorIs(t, costsplit.CheckTotal(in), domain.ErrInconsistentTotal)

	in.Miscellaneous = "₹0" // a fifth component widens the tolerance
	assert.NoError(t, costsplit.CheckTotal(in))
}

// ---- Shares ----------------------------------------------------------------

func TestShares(t *testing.T) {
	shares := costsplit.Shares(sampleCosts())

	require.Len(t, shares, 4)
	assert.Equal(t, costsplit.Accommodation, shares[0].Field)
	assert.Equal(t, "Accommodation", shares[0].Label)
	assert.Equal(t, domain.Money("₹4000"), shares[0].Value)
	assert.Equal(t, "50.0", shares[0].Percent)
	assert.Equal(t, "25.0", shares[1].Percent)
	assert.Equal(t, "12.5", shares[2].Percent)
	assert.Equal(t, "12.5", shares[3].Percent)
}

func TestShares_ValueKeepsDisplayString(t *testing.T) {
	c := sampleCosts()
	c.Accommodation = "₹4,000.00"
	c.Total = "8000"

	shares := costsplit.Shares(c)

	assert.Equal(t, domain.Money("₹4,000.00"), shares[0].Value)
	// The decimal point is dropped when parsing, so the share is computed
	// from 400000.
	assert.Equal(t, "5000.0", shares[0].Percent)
	assert.Equal(t, domain.Money("₹2000"), shares[1].Value)
}

func TestShares_ZeroTotal(t *testing.T) {
	in := sampleCosts()
	in.Total = "unknown"

	for _, s := range costsplit.Shares(in) {
		assert.Equal(t, "0.0", s.Percent)
	}
}

func TestShares_IncludesMiscellaneousWhenPresent(t *testing.T) {
	in := sampleCosts()
	in.Miscellaneous = "₹1000"
	in.Total = "₹9000"

	shares := costsplit.Shares(in)

	require.Len(t, shares, 5)
	assert.Equal(t, costsplit.Miscellaneous, shares[4].Field)
	assert.Equal(t, "11.1", shares[4].Percent)
}
