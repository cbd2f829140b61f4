package planner

import (
	"strings"

	"yatra/internal/models/response_models"
)

const DefaultDestinationImage = "https://images.unsplash.com/photo-1488646953014-85cb44e25828?q=80&w=1000"

const (
	minHotelRating     = 3.0
	maxHotelRating     = 5.0
	defaultHotelRating = 4.0
)

var defaultHotelImages = []string{
	"https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=1000",
	"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?q=80&w=1000",
	"https://images.unsplash.com/photo-1618773928121-c32242e63f39?q=80&w=1000",
}

var defaultAmenities = []string{"Free Wifi", "Breakfast", "Air Conditioning"}

// Normalize fills optional fields and rewrites every currency-bearing field to
// the canonical ₹ notation. It never reorders the itinerary and is idempotent.
func Normalize(plan response_models.TripPlan, budget string) response_models.TripPlan {
	out := plan

	if strings.TrimSpace(out.DestinationImage) == "" {
		out.DestinationImage = DefaultDestinationImage
	}

	out.Itinerary = make([]response_models.DayPlan, len(plan.Itinerary))
	for i, day := range plan.Itinerary {
		if day.Activities == nil {
			day.Activities = []string{}
		}
		out.Itinerary[i] = day
	}

	out.EstimatedCost = NormalizeEstimatedCost(plan.EstimatedCost, budget)

	out.HotelRecommendations = make([]response_models.HotelSuggestion, len(plan.HotelRecommendations))
	for i, hotel := range plan.HotelRecommendations {
		out.HotelRecommendations[i] = normalizeHotel(hotel, i, budget)
	}

	return out
}

// NormalizeEstimatedCost canonicalizes the currency of a trip estimate. An
// estimate without any amount is replaced by the range for the budget tier.
func NormalizeEstimatedCost(cost, budget string) string {
	cost = strings.TrimSpace(CanonicalizeCurrency(cost))
	if !hasDigit(cost) {
		return TripCostRange(budget)
	}
	if !strings.Contains(cost, CanonicalCurrency) {
		return prefixFirstAmount(cost)
	}
	return cost
}

// NormalizePriceRange canonicalizes a nightly hotel price. A bare symbol run
// such as "€€" is expanded by its length: one, two or three symbols map to the
// budget, medium and luxury nightly ranges. An empty price takes the range of
// the requested budget tier.
func NormalizePriceRange(price, budget string) string {
	price = strings.TrimSpace(CanonicalizeCurrency(price))
	if price == "" {
		return NightlyRateRange(budget)
	}
	if !hasDigit(price) {
		return nightlyRateForSymbols(leadingSymbolRun(price))
	}
	if !strings.Contains(price, CanonicalCurrency) {
		return prefixFirstAmount(price)
	}
	return price
}

func normalizeHotel(h response_models.HotelSuggestion, index int, budget string) response_models.HotelSuggestion {
	if strings.TrimSpace(h.Image) == "" {
		h.Image = defaultHotelImages[index%len(defaultHotelImages)]
	}
	h.PriceRange = NormalizePriceRange(h.PriceRange, budget)

	switch {
	case h.Rating == 0:
		h.Rating = defaultHotelRating
	case h.Rating < minHotelRating:
		h.Rating = minHotelRating
	case h.Rating > maxHotelRating:
		h.Rating = maxHotelRating
	}

	if len(h.Amenities) == 0 {
		h.Amenities = append([]string(nil), defaultAmenities...)
	}
	return h
}
