package planner

import (
	"strings"
	"testing"
)

func TestTierTablesAreComplete(t *testing.T) {
	for _, tier := range []string{TierBudget, TierMedium, TierLuxury, "ultra-premium", ""} {
		for name, r := range map[string]string{
			"trip":    TripCostRange(tier),
			"nightly": NightlyRateRange(tier),
		} {
			if r == "" || !hasDigit(r) || !strings.HasPrefix(r, CanonicalCurrency) {
				t.Errorf("%s range for tier %q = %q", name, tier, r)
			}
		}
	}

	if TripCostRange(" Luxury ") != tripCostByTier[TierLuxury] {
		t.Error("tier lookup should ignore case and surrounding spaces")
	}
	if TripCostRange("unknown") != defaultTripCost || NightlyRateRange("unknown") != defaultNightlyRate {
		t.Error("unknown tiers should use the default ranges")
	}
}

func TestCanonicalizeCurrency(t *testing.T) {
	tests := map[string]string{
		"$100":          "₹100",
		"US$100":        "₹100",
		"£50 - £80":     "₹50 - ₹80",
		"Rs 200":        "₹200",
		"INR1500":       "₹1500",
		"₹₹":            "₹₹",
		"Resort (RSVP)": "Resort (RSVP)",
	}
	for in, want := range tests {
		if got := CanonicalizeCurrency(in); got != want {
			t.Errorf("CanonicalizeCurrency(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLeadingSymbolRun(t *testing.T) {
	tests := map[string]int{
		"":              0,
		"per night":     0,
		"₹":             1,
		"₹₹ per night":  2,
		"₹₹₹, ₹₹, or ₹": 3,
		"about ₹₹₹₹":    4,
	}
	for in, want := range tests {
		if got := leadingSymbolRun(in); got != want {
			t.Errorf("leadingSymbolRun(%q) = %d, want %d", in, got, want)
		}
	}
}
