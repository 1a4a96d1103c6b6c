// Package layout distributes sections across fixed-size pages.
//
// The composer knows nothing about the rendering backend. It estimates the
// height of each block from its text length and kind, which keeps the
// result a pure function of its input.
package layout

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/pkordes/travel-planner/backend/internal/section"
)

// Header is repeated verbatim on every page.
type Header struct {
	Title string
	Dates string
	Route string
}

// Footer carries the page number, 1-based and gap-free across the document.
type Footer struct {
	PageNumber int
	Text       string
}

// Page is one laid-out page.
type Page struct {
	Number  int
	Section section.Kind
	// Continued is true for the overflow pages of a section.
	Continued bool
	Header    Header
	Body      []section.Block
	Footer    Footer
	// Used is the estimated height of Body in the same unit as Options.Capacity.
	Used float64
}

// Metrics is the estimated height of one line of a block and the gap after it.
type Metrics struct {
	Line float64
	Gap  float64
}

// Options tune the height estimate. Units are arbitrary but must be
// consistent; the defaults are millimetres on A4 with 20mm margins.
type Options struct {
	// Capacity is the body height available on each page.
	Capacity float64
	// CharsPerLine approximates how many characters wrap onto one line.
	CharsPerLine int

	SectionTitle Metrics
	Heading      Metrics
	SubHeading   Metrics
	Item         Metrics
	Total        Metrics
	Note         Metrics
}

// DefaultOptions matches the PDF backend's A4 geometry.
func DefaultOptions() Options {
	return Options{
		Capacity:     212,
		CharsPerLine: 88,
		SectionTitle: Metrics{Line: 10, Gap: 6},
		Heading:      Metrics{Line: 7, Gap: 2},
		SubHeading:   Metrics{Line: 6, Gap: 1},
		Item:         Metrics{Line: 6, Gap: 1},
		Total:        Metrics{Line: 10, Gap: 5},
		Note:         Metrics{Line: 5, Gap: 1},
	}
}

// Validate reports options the composer cannot work with.
func (o Options) Validate() error {
	if o.Capacity <= 0 {
		return fmt.Errorf("layout: capacity must be positive, got %v", o.Capacity)
	}
	if o.CharsPerLine <= 0 {
		return fmt.Errorf("layout: chars per line must be positive, got %d", o.CharsPerLine)
	}
	return nil
}

// SectionTitleBlock returns the block that opens a section's first page.
// Level 0 distinguishes it from entry headings.
func SectionTitleBlock(title string) section.Block {
	return section.Block{Kind: section.Heading, Level: 0, Text: title}
}

// Estimate returns the height a block is expected to occupy.
func (o Options) Estimate(b section.Block) float64 {
	m := o.metrics(b)
	n := utf8.RuneCountInString(b.String())
	lines := math.Max(1, math.Ceil(float64(n)/float64(o.CharsPerLine)))
	return lines*m.Line + m.Gap
}

func (o Options) metrics(b section.Block) Metrics {
	switch {
	case b.Kind == section.Heading && b.Level == 0:
		return o.SectionTitle
	case b.Kind == section.Heading && b.Level == 1:
		return o.Heading
	case b.Kind == section.Heading:
		return o.SubHeading
	case b.Style == section.StyleTotal:
		return o.Total
	case b.Style == section.StyleNote:
		return o.Note
	}
	return o.Item
}
