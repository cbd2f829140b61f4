package planner

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const goaPlan = `{
  "destination": "Goa, India",
  "dates": "Mar 1 to Mar 3",
  "itinerary": [
    {"day": 1, "activities": ["Baga Beach", "Fort Aguada"]},
    {"day": 2, "activities": ["Spice plantation tour"]}
  ],
  "accommodations": "Beach shack in Anjuna",
  "transportation": "Rented scooter",
  "localTips": "Carry cash for shacks",
  "estimatedCost": "₹30,000 - ₹60,000",
  "hotelRecommendations": [
    {"name": "Sea Breeze", "description": "By the sea", "image": "", "priceRange": "€€", "rating": 4.4, "amenities": ["Pool"]}
  ]
}`

func TestRecoverStrategies(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		strategy Strategy
	}{
		{"direct", "  " + goaPlan + "\n", StrategyDirect},
		{"fenced with language tag", "Here is your plan:\n```json\n" + goaPlan + "\n```\nEnjoy!", StrategyFenced},
		{"fenced without tag", "```\n" + goaPlan + "\n```", StrategyFenced},
		{"fenced on one line", "Plan: ```" + strings.ReplaceAll(goaPlan, "\n", " ") + "```", StrategyFenced},
		{"prose around document", "Sure! " + goaPlan + " Have a nice trip.", StrategyRepaired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Recover(tt.raw)
			if err != nil {
				t.Fatalf("Recover() error = %v", err)
			}
			if got.Strategy != tt.strategy {
				t.Errorf("strategy = %q, want %q", got.Strategy, tt.strategy)
			}
			if got.Plan.Destination != "Goa, India" {
				t.Errorf("destination = %q", got.Plan.Destination)
			}
			if len(got.Plan.Itinerary) != 2 || got.Plan.Itinerary[1].Day != 2 {
				t.Errorf("itinerary = %+v", got.Plan.Itinerary)
			}
		})
	}
}

func TestRecoverPrefersDirectParse(t *testing.T) {
	inner := "```json\n{\"destination\": \"Rome\", \"itinerary\": [{\"day\": 1, \"activities\": [\"Colosseum\"]}]}\n```"
	doc := map[string]any{
		"destination": "Paris",
		"itinerary":   []any{map[string]any{"day": 1, "activities": []string{"Louvre"}}},
		"localTips":   "Example output: " + inner,
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(fencedCandidates(string(raw))) == 0 {
		t.Fatal("expected the text to contain a fenced block")
	}

	got, err := Recover(string(raw))
	if err != nil {
		t.Fatalf("Recover() error = %v", err)
	}
	if got.Strategy != StrategyDirect || got.Plan.Destination != "Paris" {
		t.Errorf("got %q from %q, want Paris from direct", got.Plan.Destination, got.Strategy)
	}
}

func TestRecoverRepairsMalformedDocument(t *testing.T) {
	raw := `Here you go: {"destination": "Goa", "itinerary": [{"day": 1, "activities": ["Try "fish thali" at a shack",]}], "localTips": "Carry cash",} Enjoy!`

	got, err := Recover(raw)
	if err != nil {
		t.Fatalf("Recover() error = %v", err)
	}
	if got.Strategy != StrategyRepaired {
		t.Errorf("strategy = %q, want %q", got.Strategy, StrategyRepaired)
	}
	want := `Try "fish thali" at a shack`
	if acts := got.Plan.Itinerary[0].Activities; len(acts) != 1 || acts[0] != want {
		t.Errorf("activities = %q, want [%q]", acts, want)
	}
}

func TestRecoverFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", " \n\t "},
		{"no document", "I'm sorry, I can't help with that."},
		{"itinerary is an object", `{"destination": "Goa", "itinerary": {"day": 1}}`},
		{"itinerary missing", `{"destination": "Goa"}`},
		{"itinerary empty", `{"destination": "Goa", "itinerary": []}`},
		{"destination missing", `{"itinerary": [{"day": 1, "activities": ["x"]}]}`},
		{"top level array", `[{"destination": "Goa"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Recover(tt.raw)
			if !errors.Is(err, ErrUnrecoverableResponse) {
				t.Fatalf("Recover() error = %v, want ErrUnrecoverableResponse", err)
			}
			if got != nil {
				t.Errorf("Recover() = %+v, want nil", got)
			}
		})
	}
}

func TestRecoverLenientFieldTypes(t *testing.T) {
	raw := `{
  "destination": "Manali",
  "itinerary": [
    {"day": "Day 1", "activities": "Solang Valley"},
    {"activities": ["Hadimba Temple", 42]}
  ],
  "estimatedCost": 45000,
  "accommodations": ["Homestay", "Cottage"],
  "hotelRecommendations": [{"name": "Snow Valley", "rating": "4.6", "priceRange": "$"}]
}`

	got, err := Recover(raw)
	if err != nil {
		t.Fatalf("Recover() error = %v", err)
	}
	plan := got.Plan

	if plan.Itinerary[0].Day != 1 || plan.Itinerary[0].Activities[0] != "Solang Valley" {
		t.Errorf("day 1 = %+v", plan.Itinerary[0])
	}
	if plan.Itinerary[1].Day != 2 {
		t.Errorf("missing day number should follow position, got %d", plan.Itinerary[1].Day)
	}
	if plan.Itinerary[1].Activities[1] != "42" {
		t.Errorf("numeric activity = %q", plan.Itinerary[1].Activities[1])
	}
	if plan.EstimatedCost != "45000" {
		t.Errorf("estimatedCost = %q", plan.EstimatedCost)
	}
	if plan.Accommodations != "Homestay, Cottage" {
		t.Errorf("accommodations = %q", plan.Accommodations)
	}
	if h := plan.HotelRecommendations[0]; h.Rating != 4.6 || h.PriceRange != "$" {
		t.Errorf("hotel = %+v", h)
	}
}

func TestRecoverKeepsPlanWhenHotelsMalformed(t *testing.T) {
	raw := `{"destination": "Jammu", "itinerary": [{"day": 1, "activities": ["Raghunath Temple"]}], "hotelRecommendations": "ask locally"}`

	got, err := Recover(raw)
	if err != nil {
		t.Fatalf("Recover() error = %v", err)
	}
	if len(got.Plan.HotelRecommendations) != 0 {
		t.Errorf("hotels = %+v, want none", got.Plan.HotelRecommendations)
	}
}
