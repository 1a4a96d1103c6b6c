// Package domain contains the core data types for the travel planner.
// It has no external dependencies beyond uuid and is imported by every other
// internal package (currency, section, layout, document, service, handler).
package domain

// TravelPlan is the aggregate produced by the plan generator for one request.
// It is treated as an immutable snapshot: renders read it and never modify it.
type TravelPlan struct {
	Itinerary      []ItineraryDay    `json:"itinerary"`
	Accommodations []Accommodation   `json:"accommodation_suggestions"`
	Transport      []TransportOption `json:"transportation_options"`
	Costs          CostBreakdown     `json:"estimated_costs"`
	Activities     []Activity        `json:"activities"`
	// Travelers is the party size requested by the user. Zero means unknown;
	// use TravelerCount for arithmetic.
	Travelers int `json:"travelers,omitempty"`
}

// ItineraryDay is one day of the day-by-day itinerary.
// Date is kept exactly as the generator produced it (ISO-like, not validated).
type ItineraryDay struct {
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	Title      string   `json:"title,omitempty"`
	Activities []string `json:"activities"`
	Meals      *Meals   `json:"meals,omitempty"`
}

// Meals lists the planned meals of a day. Every field is optional.
type Meals struct {
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Dinner    string `json:"dinner,omitempty"`
}

// Accommodation is a suggested place to stay.
type Accommodation struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Location      string   `json:"location,omitempty"`
	PricePerNight Money    `json:"price_per_night"`
	TotalPrice    Money    `json:"total_price,omitempty"`
	Rating        *float64 `json:"rating,omitempty"` // 0..5 when present
	Amenities     []string `json:"amenities,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// TransportOption is one way of getting between two places.
// Type is free text ("Flight", "Overnight train", ...), never an enum.
type TransportOption struct {
	Type           string `json:"type"`
	From           string `json:"from"`
	To             string `json:"to"`
	EstimatedPrice Money  `json:"estimated_price"`
	Duration       string `json:"duration,omitempty"`
	Details        string `json:"details,omitempty"`
}

// CostBreakdown is the estimated trip cost split by category.
// Miscellaneous is optional; an empty value means the field is absent.
type CostBreakdown struct {
	Accommodation  Money `json:"accommodation"`
	Transportation Money `json:"transportation"`
	Activities     Money `json:"activities"`
	Food           Money `json:"food"`
	Miscellaneous  Money `json:"miscellaneous,omitempty"`
	Total          Money `json:"total"`
}

// Activity is a recommended activity at the destination.
type Activity struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location,omitempty"`
	EstimatedCost Money  `json:"estimated_cost,omitempty"`
	Duration      string `json:"duration,omitempty"`
}

// Placeholders used when the plan lacks the data a header field needs.
const (
	PlaceholderSource      = "Source"
	PlaceholderDestination = "Destination"
	PlaceholderStartDate   = "Start Date"
	PlaceholderEndDate     = "End Date"
)

// TravelerCount returns the party size, defaulting to 1 when unknown.
func (p TravelPlan) TravelerCount() int {
	if p.Travelers < 1 {
		return 1
	}
	return p.Travelers
}

// Route returns the trip's origin and destination, taken from the first
// transport option. Missing values fall back to the Source/Destination placeholders.
func (p TravelPlan) Route() (source, destination string) {
	source, destination = PlaceholderSource, PlaceholderDestination
	if len(p.Transport) == 0 {
		return source, destination
	}
	if p.Transport[0].From != "" {
		source = p.Transport[0].From
	}
	if p.Transport[0].To != "" {
		destination = p.Transport[0].To
	}
	return source, destination
}

// DateRange returns the dates of the first and last itinerary days.
func (p TravelPlan) DateRange() (first, last string) {
	first, last = PlaceholderStartDate, PlaceholderEndDate
	if len(p.Itinerary) == 0 {
		return first, last
	}
	if d := p.Itinerary[0].Date; d != "" {
		first = d
	}
	if d := p.Itinerary[len(p.Itinerary)-1].Date; d != "" {
		last = d
	}
	return first, last
}

// FirstDate returns the date of the first itinerary day, or "" when there is none.
func (p TravelPlan) FirstDate() string {
	if len(p.Itinerary) == 0 {
		return ""
	}
	return p.Itinerary[0].Date
}
