// Package currency converts between display money strings and integer
// magnitudes.
//
// Upstream values carry glyphs, thousands separators and unit suffixes in
// arbitrary positions ("₹1,500/night", "INR 2000"), so Parse keeps only the
// ASCII digits. The conversion is intentionally lossy: a decimal point is
// dropped like any other separator.
package currency

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// Glyph is the currency prefix applied to every formatted value.
const Glyph = "₹"

// Parse extracts a non-negative magnitude from s. It never fails: a string
// without digits, or a digit run too long for an int64, parses to 0.
func Parse[S ~string](s S) int64 {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Format renders n with the currency glyph and no separators or decimals.
func Format(n int64) domain.Money {
	return domain.Money(Glyph + strconv.FormatInt(n, 10))
}

// Display returns s as shown to a reader: unchanged except for a leading
// Glyph when s lacks one. Empty input stays empty. Display never parses, so
// decimals, separators and ranges survive.
func Display[S ~string](s S) domain.Money {
	v := strings.TrimSpace(string(s))
	if v == "" || strings.HasPrefix(v, Glyph) {
		return domain.Money(v)
	}
	return domain.Money(Glyph + v)
}

// Normalize re-formats a display value in the canonical convention.
// Normalize(Format(n)) == Format(n) for every n >= 0.
func Normalize[S ~string](s S) domain.Money {
	return Format(Parse(s))
}

// PerUnit divides the parsed value of s by n, rounding half up, and formats
// the result. n must be positive.
func PerUnit[S ~string](s S, n int) domain.Money {
	return Format(divRound(Parse(s), n))
}

// divRound returns round(v/n) with halves rounded away from zero.
func divRound(v int64, n int) int64 {
	q := decimal.NewFromInt(v).Div(decimal.NewFromInt(int64(n)))
	return q.Round(0).IntPart()
}
