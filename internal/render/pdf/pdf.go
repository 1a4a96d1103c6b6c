// Package pdf serializes composed pages to PDF with go-pdf/fpdf.
//
// The backend draws exactly the pages it is given and never breaks pages
// on its own; pagination is decided upstream by package layout.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pkordes/travel-planner/backend/internal/currency"
	"github.com/pkordes/travel-planner/backend/internal/layout"
	"github.com/pkordes/travel-planner/backend/internal/section"
)

// A4 portrait geometry in millimetres. The body starts below the running
// header and must match layout.DefaultOptions().Capacity.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	margin       = 20.0
	contentWidth = pageWidth - 2*margin
	bodyTop      = margin + 45
)

// glyphFallback replaces the rupee sign, which the Latin-1 core fonts lack.
const glyphFallback = "Rs."

type rgb struct{ r, g, b int }

var (
	colorTitle   = rgb{37, 99, 235}
	colorSection = rgb{30, 64, 175}
	colorMuted   = rgb{75, 85, 99}
	colorText    = rgb{31, 41, 55}
	colorNote    = rgb{107, 114, 128}
	colorRule    = rgb{249, 115, 22}
	colorTotalBg = rgb{243, 244, 246}
)

// accent colours the bar beside a heading, keyed by block tag.
var accent = map[string]rgb{
	string(section.ModeFlight): {37, 99, 235},
	string(section.ModeTrain):  {16, 185, 129},
	string(section.ModeBus):    {249, 115, 22},
	string(section.ModeFerry):  {14, 165, 233},
	string(section.ModeCar):    {168, 85, 247},
}

// Renderer writes layout documents as A4 PDFs.
type Renderer struct {
	compress bool
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithCompression toggles stream compression (enabled by default).
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

// New returns a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws every page of doc and returns the PDF bytes. The fpdf
// document is created per call and discarded on return, so concurrent
// renders never share drawing state.
func (r *Renderer) Render(ctx context.Context, doc layout.Document) ([]byte, error) {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetMargins(margin, margin, margin)
	f.SetAutoPageBreak(false, margin)
	f.SetCompression(r.compress)
	f.SetCatalogSort(true)
	f.SetTitle(doc.Title, true)
	f.SetCreator("travel-planner", true)
	if !doc.CreatedAt.IsZero() {
		f.SetCreationDate(doc.CreatedAt)
		f.SetModificationDate(doc.CreatedAt)
	}

	d := drawer{f: f, tr: f.UnicodeTranslatorFromDescriptor("")}
	for _, p := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f.AddPage()
		d.header(p.Header)
		for _, b := range p.Body {
			d.block(b)
		}
		d.footer(p.Footer)
	}
	if f.Err() {
		return nil, fmt.Errorf("pdf.Renderer.Render: %w", f.Error())
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Renderer.Render: output: %w", err)
	}
	return buf.Bytes(), nil
}

type drawer struct {
	f  *fpdf.Fpdf
	tr func(string) string
}

func (d drawer) text(s string) string {
	return d.tr(strings.ReplaceAll(s, currency.Glyph, glyphFallback))
}

func (d drawer) color(c rgb) { d.f.SetTextColor(c.r, c.g, c.b) }

func (d drawer) header(h layout.Header) {
	f := d.f
	f.SetY(margin)
	f.SetFont("Helvetica", "B", 22)
	d.color(colorTitle)
	f.CellFormat(contentWidth, 10, d.text(h.Title), "", 1, "C", false, 0, "")

	f.SetFont("Helvetica", "", 12)
	d.color(colorMuted)
	f.CellFormat(contentWidth, 8, d.text(h.Dates), "", 1, "C", false, 0, "")
	f.CellFormat(contentWidth, 8, d.text(h.Route), "", 1, "C", false, 0, "")

	f.SetDrawColor(colorRule.r, colorRule.g, colorRule.b)
	f.Line(margin, margin+35, pageWidth-margin, margin+35)
	f.SetY(bodyTop)
}

func (d drawer) footer(ft layout.Footer) {
	f := d.f
	f.SetY(pageHeight - 15)
	f.SetFont("Helvetica", "", 8)
	d.color(colorNote)
	f.CellFormat(contentWidth, 5, d.text(ft.Text), "", 0, "R", false, 0, "")
}

func (d drawer) block(b section.Block) {
	f := d.f
	switch {
	case b.Kind == section.Heading && b.Level == 0:
		f.SetFont("Helvetica", "B", 16)
		d.color(colorSection)
		f.CellFormat(contentWidth, 10, d.text(b.Text), "B", 1, "L", false, 0, "")
		f.Ln(6)
	case b.Kind == section.Heading:
		size, height := 13.0, 7.0
		if b.Level > 1 {
			size, height = 11, 6
		}
		if c, ok := accent[b.Tag]; ok {
			f.SetFillColor(c.r, c.g, c.b)
			f.Rect(margin-3, f.GetY(), 1, height, "F")
		}
		f.SetFont("Helvetica", "B", size)
		d.color(colorTitle)
		f.MultiCell(contentWidth, height, d.text(b.Text), "", "L", false)
		f.Ln(2)
	case b.Style == section.StyleTotal:
		f.SetFillColor(colorTotalBg.r, colorTotalBg.g, colorTotalBg.b)
		f.SetFont("Helvetica", "B", 13)
		d.color(colorText)
		f.CellFormat(contentWidth*0.6, 10, d.text(b.Label), "", 0, "L", true, 0, "")
		d.color(colorTitle)
		f.CellFormat(contentWidth*0.4, 10, d.text(b.Text), "", 1, "R", true, 0, "")
		f.Ln(5)
	case b.Style == section.StyleNote:
		f.SetFont("Helvetica", "I", 9)
		d.color(colorNote)
		f.MultiCell(contentWidth, 5, d.text(b.String()), "", "L", false)
		f.Ln(1)
	default:
		indent := 0.0
		if b.Level > 1 {
			indent = 5
		}
		f.SetX(margin + indent)
		f.SetFont("Helvetica", "", 11)
		d.color(colorText)
		f.MultiCell(contentWidth-indent, 6, d.text(b.String()), "", "L", false)
		f.Ln(1)
	}
}
