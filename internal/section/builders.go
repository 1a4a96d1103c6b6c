package section

import (
	"fmt"
	"slices"

	"github.com/pkordes/travel-planner/backend/internal/costsplit"
	"github.com/pkordes/travel-planner/backend/internal/currency"
	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/textutil"
)

// Headings used when an entry has no usable name.
const (
	UnnamedAccommodation = "Accommodation"
	UnnamedTransport     = "Transport"
	UnnamedActivity      = "Activity"
)

// Fixed footnotes of the cost breakdown.
const (
	FoodBudgetNote    = "Food budget typically averages ₹500-1000 per person per day depending on preferences."
	MiscellaneousNote = "Miscellaneous expenses include shopping, souvenirs, additional entertainment, and unexpected costs."
)

func buildItinerary(plan domain.TravelPlan) []Block {
	var blocks []Block
	for _, day := range plan.Itinerary {
		title := fmt.Sprintf("Day %d: %s", day.Day, textutil.Clean(day.Date))
		if t := textutil.Clean(day.Title); t != "" {
			title += " - " + t
		}
		blocks = append(blocks, heading(title))

		for _, a := range day.Activities {
			if a = textutil.Clean(a); a != "" {
				blocks = append(blocks, item("", a))
			}
		}
		blocks = append(blocks, mealBlocks(day.Meals)...)
	}
	return blocks
}

// mealBlocks renders breakfast, lunch and dinner in that order, skipping
// absent meals. No sub-heading is emitted when no meal is set.
func mealBlocks(m *domain.Meals) []Block {
	if m == nil {
		return nil
	}
	var meals []Block
	for _, meal := range []struct{ label, text string }{
		{"Breakfast", m.Breakfast},
		{"Lunch", m.Lunch},
		{"Dinner", m.Dinner},
	} {
		if text := textutil.Clean(meal.text); text != "" {
			meals = append(meals, Block{Kind: Item, Level: 2, Label: meal.label, Text: text})
		}
	}
	if len(meals) == 0 {
		return nil
	}
	return append([]Block{{Kind: Heading, Level: 2, Text: "Meals"}}, meals...)
}

func buildAccommodations(plan domain.TravelPlan) []Block {
	sorted := slices.Clone(plan.Accommodations)
	slices.SortStableFunc(sorted, func(a, b domain.Accommodation) int {
		pa, pb := currency.Parse(a.PricePerNight), currency.Parse(b.PricePerNight)
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		}
		return 0
	})

	var blocks []Block
	for _, acc := range sorted {
		blocks = append(blocks, heading(orDefault(textutil.Clean(acc.Name), UnnamedAccommodation)))
		if t := textutil.Clean(acc.Type); t != "" {
			blocks = append(blocks, item("Type", t))
		}
		if p := currency.Display(textutil.Clean(string(acc.PricePerNight))); p != "" {
			blocks = append(blocks, item("Price", string(p)+"/night"))
		}
		if d := textutil.Clean(acc.Description); d != "" {
			blocks = append(blocks, item("", d))
		}
	}
	return blocks
}

func buildTransportation(plan domain.TravelPlan) []Block {
	var blocks []Block
	for _, opt := range plan.Transport {
		h := heading(orDefault(textutil.Clean(opt.Type), UnnamedTransport))
		h.Tag = string(Mode(opt.Type))
		blocks = append(blocks,
			h,
			item("Route", textutil.Clean(opt.From)+" to "+textutil.Clean(opt.To)),
		)
		if p := currency.Display(textutil.Clean(string(opt.EstimatedPrice))); p != "" {
			blocks = append(blocks, item("Price", string(p)))
		}
		if d := textutil.Clean(opt.Duration); d != "" {
			blocks = append(blocks, item("Duration", d))
		}
		if d := textutil.Clean(opt.Details); d != "" {
			blocks = append(blocks, item("", d))
		}
	}
	return blocks
}

// buildCosts renders the components in their fixed order followed by the
// total, which is always the last row regardless of the breakdown contents.
func buildCosts(plan domain.TravelPlan) []Block {
	var blocks []Block
	for _, s := range costsplit.Shares(plan.Costs) {
		blocks = append(blocks, item(s.Label, fmt.Sprintf("%s (%s%%)", s.Value, s.Percent)))
	}
	total := currency.Display(textutil.Clean(string(plan.Costs.Total)))
	if total == "" {
		total = currency.Format(0)
	}
	blocks = append(blocks,
		Block{Kind: Item, Level: 1, Label: "Total Cost", Text: string(total), Style: StyleTotal},
		note(FoodBudgetNote),
		note(MiscellaneousNote),
	)
	return blocks
}

func buildActivities(plan domain.TravelPlan) []Block {
	var blocks []Block
	for _, a := range plan.Activities {
		blocks = append(blocks, heading(orDefault(textutil.Clean(a.Name), UnnamedActivity)))
		if c := textutil.Clean(a.Category); c != "" {
			blocks = append(blocks, item("Category", c))
		}
		if d := textutil.Clean(a.Description); d != "" {
			blocks = append(blocks, item("", d))
		}
	}
	return blocks
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
