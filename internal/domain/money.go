package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Money is a monetary value exactly as displayed ("₹1,500", "₹2000/night").
// It is the canonical stored form: arithmetic always parses it on demand
// (see package currency) and never caches a numeric copy.
type Money string

// IsZero reports whether the value is absent.
func (m Money) IsZero() bool { return m == "" }

// String implements fmt.Stringer.
func (m Money) String() string { return string(m) }

// UnmarshalJSON accepts either a JSON string or a JSON number. Numbers are
// kept as their literal text so "4000" and 4000 decode to the same Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*m = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("money: %w", err)
		}
		*m = Money(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("money: expected string or number, got %s", data)
		}
		*m = Money(n.String())
		return nil
	}
}
