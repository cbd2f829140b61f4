package utils

import "testing"

func TestTripLengthDays(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2025-03-01", "2025-03-05", 5},
		{"2025-03-01", "2025-03-01", 1},
		{"2024-12-30", "2025-01-02", 4},
		{"2025-03-05", "2025-03-01", 0},
		{"03/01/2025", "2025-03-05", 0},
		{"", "", 0},
	}
	for _, tt := range tests {
		if got := TripLengthDays(tt.from, tt.to); got != tt.want {
			t.Errorf("TripLengthDays(%q, %q) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestFormatTripDates(t *testing.T) {
	if got := FormatTripDates("2025-03-01", "2025-03-05"); got != "Mar 1, 2025 to Mar 5, 2025" {
		t.Errorf("FormatTripDates = %q", got)
	}
	if got := FormatTripDates("soon", "later"); got != "soon to later" {
		t.Errorf("unparseable dates should be echoed, got %q", got)
	}
}
