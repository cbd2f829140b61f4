package planner

import (
	"strings"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// FallbackMarker is the substring of LocalTips that identifies a synthesized
// plan. Clients hide the tips field when they see it.
const FallbackMarker = "fallback plan"

const fallbackLocalTips = "This is a fallback plan as we couldn't parse the AI response. Please try again later."

// FallbackPlan builds a complete plan from the request alone. Apart from the
// destination, dates and budget-tier prices it is identical for every request.
func FallbackPlan(req request_models.TripRequest) response_models.TripPlan {
	nightly := NightlyRateRange(req.Budget)

	return response_models.TripPlan{
		Destination:      strings.TrimSpace(req.Destination),
		DestinationImage: DefaultDestinationImage,
		Dates:            utils.FormatTripDates(req.DepartureDate, req.ReturnDate),
		Itinerary: []response_models.DayPlan{
			{Day: 1, Activities: []string{"Check-in to hotel", "Local dinner at recommended restaurant"}},
			{Day: 2, Activities: []string{"Morning sightseeing", "Afternoon museum visit", "Evening entertainment"}},
			{Day: 3, Activities: []string{"Guided tour", "Free time for shopping", "Special dinner experience"}},
		},
		Accommodations: "Suggested 4-star hotel in city center",
		Transportation: "Local public transit and walking recommended",
		LocalTips:      fallbackLocalTips,
		EstimatedCost:  TripCostRange(req.Budget),
		HotelRecommendations: []response_models.HotelSuggestion{
			{
				Name:        "City Center Hotel",
				Description: "Conveniently located in the city center with modern amenities",
				Image:       defaultHotelImages[0],
				PriceRange:  nightly,
				Rating:      4.2,
				Amenities:   []string{"Free WiFi", "Breakfast Included", "Fitness Center"},
			},
			{
				Name:        "Riverside Lodge",
				Description: "Charming accommodation with scenic views and excellent service",
				Image:       defaultHotelImages[1],
				PriceRange:  nightly,
				Rating:      4.5,
				Amenities:   []string{"Free WiFi", "Restaurant", "Concierge Service"},
			},
			{
				Name:        "Traveler's Haven",
				Description: "Comfortable and well-rated option with great value for money",
				Image:       defaultHotelImages[2],
				PriceRange:  nightly,
				Rating:      4.0,
				Amenities:   []string{"Free WiFi", "Airport Shuttle", "24-hour Reception"},
			},
		},
	}
}

// IsFallback reports whether plan was produced by FallbackPlan.
func IsFallback(plan response_models.TripPlan) bool {
	return strings.Contains(plan.LocalTips, FallbackMarker)
}

// IsValid is the acceptance check for any plan handed to a client.
func IsValid(plan response_models.TripPlan) bool {
	return strings.TrimSpace(plan.Destination) != "" && len(plan.Itinerary) > 0
}
