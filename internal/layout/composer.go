package layout

import (
	"fmt"

	"github.com/pkordes/travel-planner/backend/internal/section"
)

// Composer lays out sections onto pages.
type Composer struct {
	opts Options
}

// NewComposer returns a Composer using opts. Invalid options are rejected
// so that a misconfiguration fails at startup rather than per render.
func NewComposer(opts Options) (*Composer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Composer{opts: opts}, nil
}

// Options returns the composer's configuration.
func (c *Composer) Options() Options { return c.opts }

// Compose assigns the blocks of every section to pages:
//   - every section starts on a new page;
//   - a heading always shares a page with the block that follows it, and a
//     section's title shares a page with its first unit;
//   - a unit that does not fit in what is left of a non-empty page moves to
//     a continuation page; a unit larger than a whole page is placed alone.
//
// Every page gets the same header and a footer numbered 1..N.
func (c *Composer) Compose(header Header, sections []section.Section) []Page {
	var pages []Page
	for _, sec := range sections {
		pages = append(pages, c.composeSection(sec)...)
	}
	for i := range pages {
		n := i + 1
		pages[i].Number = n
		pages[i].Header = header
		pages[i].Footer = Footer{PageNumber: n, Text: fmt.Sprintf("Page %d", n)}
	}
	return pages
}

func (c *Composer) composeSection(sec section.Section) []Page {
	title := SectionTitleBlock(sec.Title)
	units := splitUnits(sec.Blocks)
	if len(units) == 0 {
		return []Page{{Section: sec.Kind, Body: []section.Block{title}, Used: c.opts.Estimate(title)}}
	}
	units[0] = append([]section.Block{title}, units[0]...)

	var pages []Page
	cur := Page{Section: sec.Kind}
	for _, u := range units {
		h := c.height(u)
		if len(cur.Body) > 0 && cur.Used+h > c.opts.Capacity {
			pages = append(pages, cur)
			cur = Page{Section: sec.Kind, Continued: true}
		}
		cur.Body = append(cur.Body, u...)
		cur.Used += h
	}
	return append(pages, cur)
}

func (c *Composer) height(unit []section.Block) float64 {
	var h float64
	for _, b := range unit {
		h += c.opts.Estimate(b)
	}
	return h
}

// splitUnits groups blocks that must not be separated by a page break: a
// heading is kept with whatever follows it, so "Day 3" + "Meals" + the
// first meal form one unit. Trailing headings form a unit of their own.
func splitUnits(blocks []section.Block) [][]section.Block {
	var units [][]section.Block
	for i := 0; i < len(blocks); {
		j := i
		for j < len(blocks)-1 && blocks[j].Kind == section.Heading {
			j++
		}
		unit := make([]section.Block, j-i+1)
		copy(unit, blocks[i:j+1])
		units = append(units, unit)
		i = j + 1
	}
	return units
}
