// Package section turns the parts of a travel plan into layout-agnostic
// content blocks, one Section per plan category.
//
// Each section kind is a tagged variant with its own builder; Build
// dispatches through a lookup table keyed by Kind.
package section

// BlockKind distinguishes headings from the items that follow them.
type BlockKind int

const (
	Heading BlockKind = iota
	Item
)

func (k BlockKind) String() string {
	if k == Heading {
		return "heading"
	}
	return "item"
}

// Style marks blocks that a renderer should set apart.
type Style int

const (
	StylePlain Style = iota
	StyleTotal       // the cost breakdown's final row
	StyleNote        // footnotes and the closing attribution
)

// Block is one unit of text. It carries no geometry or styling beyond Style.
type Block struct {
	Kind BlockKind
	// Level is 1 for entry headings (a day, a hotel) and 2 for sub-blocks
	// such as a day's meals.
	Level int
	Label string
	Text  string
	Style Style
	// Tag is an optional machine-readable category, e.g. the inferred
	// transport mode of a transport heading.
	Tag string
}

// String returns the block as a single line of text.
func (b Block) String() string {
	if b.Label == "" {
		return b.Text
	}
	return b.Label + ": " + b.Text
}

func heading(text string) Block {
	return Block{Kind: Heading, Level: 1, Text: text}
}

func item(label, text string) Block {
	return Block{Kind: Item, Level: 1, Label: label, Text: text}
}

func note(text string) Block {
	return Block{Kind: Item, Level: 1, Text: text, Style: StyleNote}
}
