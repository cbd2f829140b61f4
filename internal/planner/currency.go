package planner

import (
	"regexp"
	"strings"
	"unicode"
)

// CanonicalCurrency is the only currency marker a normalized plan carries.
const CanonicalCurrency = "₹"

const (
	TierBudget = "budget"
	TierMedium = "medium"
	TierLuxury = "luxury"
)

const (
	defaultTripCost    = "₹25,000 - ₹50,000"
	defaultNightlyRate = "₹3,000 - ₹6,000 per night"
)

var tripCostByTier = map[string]string{
	TierBudget: "₹15,000 - ₹30,000",
	TierMedium: "₹30,000 - ₹60,000",
	TierLuxury: "₹60,000 - ₹1,50,000",
}

// nightly ranges are keyed by how many currency symbols denote the tier
var nightlyRateBySymbols = map[int]string{
	1: "₹1,500 - ₹4,000 per night",
	2: "₹4,000 - ₹8,000 per night",
	3: "₹8,000 - ₹20,000 per night",
}

var symbolsByTier = map[string]int{
	TierBudget: 1,
	TierMedium: 2,
	TierLuxury: 3,
}

var (
	foreignSymbolPattern = regexp.MustCompile(`US\$|[$€£¥₩₫₽₺₱฿₦]`)
	currencyCodePattern  = regexp.MustCompile(`\b(?:INR|Rs\.?)\s*(\d)`)
)

func normalizeTier(budget string) string {
	return strings.ToLower(strings.TrimSpace(budget))
}

// TripCostRange returns the whole-trip estimate for a budget tier. Unknown tiers
// get a default range.
func TripCostRange(budget string) string {
	if r, ok := tripCostByTier[normalizeTier(budget)]; ok {
		return r
	}
	return defaultTripCost
}

// NightlyRateRange returns the per-night hotel range for a budget tier.
func NightlyRateRange(budget string) string {
	return nightlyRateForSymbols(symbolsByTier[normalizeTier(budget)])
}

func nightlyRateForSymbols(n int) string {
	if r, ok := nightlyRateBySymbols[n]; ok {
		return r
	}
	return defaultNightlyRate
}

// CanonicalizeCurrency rewrites foreign currency symbols and codes to ₹.
func CanonicalizeCurrency(s string) string {
	s = foreignSymbolPattern.ReplaceAllString(s, CanonicalCurrency)
	return currencyCodePattern.ReplaceAllString(s, CanonicalCurrency+"$1")
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// leadingSymbolRun counts the first consecutive run of ₹ in s.
func leadingSymbolRun(s string) int {
	i := strings.Index(s, CanonicalCurrency)
	if i < 0 {
		return 0
	}
	n := 0
	for rest := s[i:]; strings.HasPrefix(rest, CanonicalCurrency); rest = rest[len(CanonicalCurrency):] {
		n++
	}
	return n
}

// prefixFirstAmount puts ₹ in front of the first number of s.
func prefixFirstAmount(s string) string {
	i := strings.IndexFunc(s, unicode.IsDigit)
	if i < 0 {
		return s
	}
	return s[:i] + CanonicalCurrency + s[i:]
}
