package section

import (
	"fmt"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// Kind identifies one of the five plan categories.
type Kind string

const (
	Itinerary      Kind = "itinerary"
	Accommodations Kind = "accommodations"
	Transportation Kind = "transportation"
	Costs          Kind = "costs"
	Activities     Kind = "activities"
)

// Kinds is the fixed document order.
var Kinds = []Kind{Itinerary, Accommodations, Transportation, Costs, Activities}

// Section is a titled, ordered list of blocks for one plan category.
type Section struct {
	Kind   Kind
	Title  string
	Blocks []Block
}

type variant struct {
	title string
	build func(domain.TravelPlan) []Block
}

var variants = map[Kind]variant{
	Itinerary:      {title: "Itinerary", build: buildItinerary},
	Accommodations: {title: "Accommodations", build: buildAccommodations},
	Transportation: {title: "Transportation", build: buildTransportation},
	Costs:          {title: "Cost Breakdown", build: buildCosts},
	Activities:     {title: "Activities", build: buildActivities},
}

// Build produces the section of the given kind from plan.
func Build(kind Kind, plan domain.TravelPlan) (Section, error) {
	v, ok := variants[kind]
	if !ok {
		return Section{}, fmt.Errorf("section.Build: unknown kind %q", kind)
	}
	return Section{Kind: kind, Title: v.title, Blocks: v.build(plan)}, nil
}

// Title returns the display title of kind, or "" for an unknown kind.
func Title(kind Kind) string {
	return variants[kind].title
}
