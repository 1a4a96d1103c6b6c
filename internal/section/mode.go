package section

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// TransportMode is the category inferred from a transport option's free-text type.
type TransportMode string

const (
	ModeFlight TransportMode = "flight"
	ModeTrain  TransportMode = "train"
	ModeBus    TransportMode = "bus"
	ModeFerry  TransportMode = "ferry"
	ModeCar    TransportMode = "car"
	ModeOther  TransportMode = "other"
)

// modeWords is checked in order; the first mode with a matching word wins.
var modeWords = []struct {
	mode  TransportMode
	words []string
}{
	{ModeFlight, []string{"flight", "flights", "air", "airline", "plane", "fly"}},
	{ModeTrain, []string{"train", "trains", "rail", "railway", "metro"}},
	{ModeBus, []string{"bus", "buses", "coach", "volvo"}},
	{ModeFerry, []string{"ferry", "boat", "cruise", "ship"}},
	{ModeCar, []string{"car", "cab", "taxi", "drive", "self-drive", "rental", "rickshaw", "bike", "scooter"}},
}

// Mode infers the transport category of a free-text type such as
// "Overnight Train (AC 2-tier)". Unrecognized types map to ModeOther.
func Mode(kind string) TransportMode {
	folded := cases.Fold().String(kind)
	tokens := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})
	for _, mw := range modeWords {
		for _, tok := range tokens {
			for _, w := range mw.words {
				if tok == w {
					return mw.mode
				}
			}
		}
	}
	return ModeOther
}
