package response_models

type DayPlan struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

type HotelSuggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	PriceRange  string   `json:"priceRange"`
	Rating      float64  `json:"rating"`
	Amenities   []string `json:"amenities"`
}

// TripPlan is the itinerary document rendered by the planner UI.
type TripPlan struct {
	Destination          string            `json:"destination"`
	DestinationImage     string            `json:"destinationImage"`
	Dates                string            `json:"dates"`
	Itinerary            []DayPlan         `json:"itinerary"`
	Accommodations       string            `json:"accommodations"`
	Transportation       string            `json:"transportation"`
	LocalTips            string            `json:"localTips"`
	EstimatedCost        string            `json:"estimatedCost"`
	HotelRecommendations []HotelSuggestion `json:"hotelRecommendations"`
}

// TripPlanResult pairs a plan with how it was produced. Fallback is set when the
// plan was synthesized locally instead of recovered from the generator output.
type TripPlanResult struct {
	Plan     TripPlan `json:"plan"`
	Fallback bool     `json:"fallback"`
	Strategy string   `json:"strategy,omitempty"`
	Notice   string   `json:"notice,omitempty"`
}
