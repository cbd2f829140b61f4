package planner

import (
	"reflect"
	"strings"
	"testing"

	"yatra/internal/models/response_models"
)

func TestNormalizePriceRange(t *testing.T) {
	tests := []struct {
		price  string
		budget string
		want   string
	}{
		{"$$ per night", TierBudget, "₹4,000 - ₹8,000 per night"},
		{"€€€", TierBudget, "₹8,000 - ₹20,000 per night"},
		{"€", TierLuxury, "₹1,500 - ₹4,000 per night"},
		{"₹₹", TierBudget, "₹4,000 - ₹8,000 per night"},
		{"££££", TierMedium, defaultNightlyRate},
		{"moderate", TierMedium, defaultNightlyRate},
		{"", TierLuxury, "₹8,000 - ₹20,000 per night"},
		{"$120 - $200 per night", TierMedium, "₹120 - ₹200 per night"},
		{"Rs. 3500 per night", TierMedium, "₹3500 per night"},
		{"INR 5,000", TierMedium, "₹5,000"},
		{"4000 per night", TierMedium, "₹4000 per night"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			if got := NormalizePriceRange(tt.price, tt.budget); got != tt.want {
				t.Errorf("NormalizePriceRange(%q, %q) = %q, want %q", tt.price, tt.budget, got, tt.want)
			}
		})
	}
}

func TestNormalizeEstimatedCost(t *testing.T) {
	tests := []struct {
		cost   string
		budget string
		want   string
	}{
		{"$$$", TierLuxury, "₹60,000 - ₹1,50,000"},
		{"€€", TierMedium, "₹30,000 - ₹60,000"},
		{"", TierBudget, "₹15,000 - ₹30,000"},
		{"Varies based on your selections", "backpacker", defaultTripCost},
		{"€1,000 - €2,000 per person", TierMedium, "₹1,000 - ₹2,000 per person"},
		{"About 45000 for two", TierMedium, "About ₹45000 for two"},
		{"₹40,000", TierLuxury, "₹40,000"},
	}

	for _, tt := range tests {
		t.Run(tt.cost, func(t *testing.T) {
			got := NormalizeEstimatedCost(tt.cost, tt.budget)
			if got != tt.want {
				t.Errorf("NormalizeEstimatedCost(%q, %q) = %q, want %q", tt.cost, tt.budget, got, tt.want)
			}
			if !strings.Contains(got, CanonicalCurrency) || !hasDigit(got) {
				t.Errorf("%q is not a canonical amount", got)
			}
		})
	}
}

func samplePlan() response_models.TripPlan {
	return response_models.TripPlan{
		Destination: "Leh Ladakh",
		Dates:       "Jun 1 to Jun 4",
		Itinerary: []response_models.DayPlan{
			{Day: 3, Activities: []string{"Pangong Lake"}},
			{Day: 1, Activities: nil},
		},
		EstimatedCost: "$$",
		HotelRecommendations: []response_models.HotelSuggestion{
			{Name: "The Grand Dragon", PriceRange: "€€€", Rating: 5.6},
			{Name: "Zostel", PriceRange: "$25 per night", Rating: 2.1, Image: "https://example.com/z.jpg", Amenities: []string{"Cafe"}},
			{Name: "Unrated", PriceRange: "₹"},
		},
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	got := Normalize(samplePlan(), TierMedium)

	if got.DestinationImage != DefaultDestinationImage {
		t.Errorf("destinationImage = %q", got.DestinationImage)
	}
	if got.EstimatedCost != "₹30,000 - ₹60,000" {
		t.Errorf("estimatedCost = %q", got.EstimatedCost)
	}
	if got.Itinerary[0].Day != 3 || got.Itinerary[1].Day != 1 {
		t.Errorf("itinerary order changed: %+v", got.Itinerary)
	}
	if got.Itinerary[1].Activities == nil {
		t.Error("nil activities should become an empty list")
	}

	hotels := got.HotelRecommendations
	if hotels[0].PriceRange != "₹8,000 - ₹20,000 per night" || hotels[0].Rating != 5.0 {
		t.Errorf("hotel 0 = %+v", hotels[0])
	}
	if hotels[0].Image != defaultHotelImages[0] || len(hotels[0].Amenities) == 0 {
		t.Errorf("hotel 0 defaults not filled: %+v", hotels[0])
	}
	if hotels[1].PriceRange != "₹25 per night" || hotels[1].Rating != 3.0 || hotels[1].Image != "https://example.com/z.jpg" {
		t.Errorf("hotel 1 = %+v", hotels[1])
	}
	if hotels[2].PriceRange != "₹1,500 - ₹4,000 per night" || hotels[2].Rating != defaultHotelRating {
		t.Errorf("hotel 2 = %+v", hotels[2])
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, budget := range []string{TierBudget, TierMedium, TierLuxury, "unknown"} {
		once := Normalize(samplePlan(), budget)
		twice := Normalize(once, budget)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("budget %q: second pass changed the plan:\n%+v\n%+v", budget, once, twice)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := samplePlan()
	_ = Normalize(in, TierLuxury)
	if in.HotelRecommendations[0].PriceRange != "€€€" || in.EstimatedCost != "$$" {
		t.Errorf("input was modified: %+v", in)
	}
}
