// Package costsplit re-derives cost breakdowns from their display strings:
// the per-traveler split and the share of each category in the total.
package costsplit

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-planner/backend/internal/currency"
	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// Field identifies one component of a cost breakdown.
type Field string

const (
	Accommodation  Field = "accommodation"
	Transportation Field = "transportation"
	Activities     Field = "activities"
	Food           Field = "food"
	Miscellaneous  Field = "miscellaneous"
)

// Components lists the summed fields in display order. Total is not a component.
var Components = []Field{Accommodation, Transportation, Activities, Food, Miscellaneous}

var labels = map[Field]string{
	Accommodation:  "Accommodation",
	Transportation: "Transportation",
	Activities:     "Activities",
	Food:           "Food",
	Miscellaneous:  "Miscellaneous",
}

// Label returns the human-readable name of f.
func (f Field) Label() string { return labels[f] }

// Value returns the display value of f in c. Unknown fields are absent.
func Value(c domain.CostBreakdown, f Field) domain.Money {
	switch f {
	case Accommodation:
		return c.Accommodation
	case Transportation:
		return c.Transportation
	case Activities:
		return c.Activities
	case Food:
		return c.Food
	case Miscellaneous:
		return c.Miscellaneous
	}
	return ""
}

// Present returns the fields of c that carry a value, in display order.
// The four mandatory fields are always present; Miscellaneous only when set.
func Present(c domain.CostBreakdown) []Field {
	fields := make([]Field, 0, len(Components))
	for _, f := range Components {
		if f == Miscellaneous && c.Miscellaneous.IsZero() {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// CheckTotal verifies that the parsed total equals the sum of the parsed
// present components within a tolerance of 1 per summed component.
func CheckTotal(c domain.CostBreakdown) error {
	fields := Present(c)
	var sum int64
	for _, f := range fields {
		sum += currency.Parse(Value(c, f))
	}
	total := currency.Parse(c.Total)
	diff := total - sum
	if diff < 0 {
		diff = -diff
	}
	if diff > int64(len(fields)) {
		return fmt.Errorf("%w: total %d, components sum to %d", domain.ErrInconsistentTotal, total, sum)
	}
	return nil
}

// DerivePerTraveler splits every present field of c across travelers.
// Each value is parsed, divided, rounded half up and re-formatted. The total
// is derived from the original total rather than from the rounded parts, so
// rounding never accumulates into it. Absent fields stay absent.
func DerivePerTraveler(c domain.CostBreakdown, travelers int) (domain.CostBreakdown, error) {
	if travelers < 1 {
		return domain.CostBreakdown{}, fmt.Errorf("costsplit.DerivePerTraveler: %w: travelers must be at least 1, got %d", domain.ErrValidation, travelers)
	}
	if err := CheckTotal(c); err != nil {
		return domain.CostBreakdown{}, fmt.Errorf("costsplit.DerivePerTraveler: %w", err)
	}

	out := domain.CostBreakdown{
		Accommodation:  currency.PerUnit(c.Accommodation, travelers),
		Transportation: currency.PerUnit(c.Transportation, travelers),
		Activities:     currency.PerUnit(c.Activities, travelers),
		Food:           currency.PerUnit(c.Food, travelers),
		Total:          currency.PerUnit(c.Total, travelers),
	}
	if !c.Miscellaneous.IsZero() {
		out.Miscellaneous = currency.PerUnit(c.Miscellaneous, travelers)
	}
	return out, nil
}

// Share is one component's slice of the total. Value is the component as
// given, for display; Percent is computed from parsed magnitudes.
type Share struct {
	Field   Field        `json:"field"`
	Label   string       `json:"label"`
	Value   domain.Money `json:"value"`
	Percent string       `json:"percent"` // one decimal place, e.g. "37.5"
}

// Shares returns the percentage of the total taken by each present field.
// A zero total yields 0.0 for every field instead of failing.
func Shares(c domain.CostBreakdown) []Share {
	total := decimal.NewFromInt(currency.Parse(c.Total))
	fields := Present(c)
	shares := make([]Share, 0, len(fields))
	for _, f := range fields {
		v := currency.Parse(Value(c, f))
		pct := decimal.Zero
		if !total.IsZero() {
			pct = decimal.NewFromInt(v).Mul(decimal.NewFromInt(100)).Div(total)
		}
		display := currency.Display(Value(c, f))
		if display.IsZero() {
			display = currency.Format(0)
		}
		shares = append(shares, Share{
			Field:   f,
			Label:   f.Label(),
			Value:   display,
			Percent: pct.StringFixed(1),
		})
	}
	return shares
}
