package services

import (
	"bytes"
	"testing"

	"yatra/internal/models/response_models"
	"yatra/internal/planner"
)

func TestRenderPDF(t *testing.T) {
	svc := NewItineraryDocumentService()

	plans := map[string]response_models.TripPlan{
		"generated": planner.Normalize(response_models.TripPlan{
			Destination:    "Leh Ladakh",
			Dates:          "Jun 1, 2025 to Jun 4, 2025",
			Itinerary:      []response_models.DayPlan{{Day: 1, Activities: []string{"Acclimatize", "Shanti Stupa at sunset"}}},
			Accommodations: "Guesthouses in Leh",
			Transportation: "Shared taxis",
			LocalTips:      "Drink plenty of water. Café hopping in Changspa.",
			EstimatedCost:  "₹45,000",
			HotelRecommendations: []response_models.HotelSuggestion{
				{Name: "Hotel Singge Palace", PriceRange: "₹₹", Rating: 4.3},
			},
		}, "medium"),
		"fallback": planner.FallbackPlan(validRequest()),
	}

	for name, plan := range plans {
		t.Run(name, func(t *testing.T) {
			doc, filename, err := svc.RenderPDF(plan)
			if err != nil {
				t.Fatalf("RenderPDF: %v", err)
			}
			if !bytes.HasPrefix(doc, []byte("%PDF-")) {
				t.Errorf("output is not a PDF: %q", doc[:8])
			}
			if filename == "" {
				t.Error("missing file name")
			}
		})
	}
}

func TestDocumentFileName(t *testing.T) {
	tests := map[string]string{
		"Leh Ladakh":      "leh-ladakh-trip-plan.pdf",
		"  Goa!! ":        "goa-trip-plan.pdf",
		"Jammu & Kashmir": "jammu-kashmir-trip-plan.pdf",
		"":                "trip-trip-plan.pdf",
		"---":             "trip-trip-plan.pdf",
	}
	for in, want := range tests {
		if got := documentFileName(in); got != want {
			t.Errorf("documentFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPDFText(t *testing.T) {
	if got := pdfText("₹4,000 - ₹8,000 per night"); got != "Rs.4,000 - Rs.8,000 per night" {
		t.Errorf("pdfText = %q", got)
	}
}
