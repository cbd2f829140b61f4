// utils/time_utils.go
package utils

import (
	"fmt"
	"time"
)

// TripDateLayout is the calendar date format the planner form submits.
const TripDateLayout = "2006-01-02"

const tripDisplayLayout = "Jan 2, 2006"

// Trip dates are calendar days in India Standard Time.
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+30*60)
}()

func ParseTripDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TripDateLayout, s, istLoc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// TripLengthDays counts both the departure and the return day. It returns 0
// when either date does not parse or the range is reversed.
func TripLengthDays(departure, ret string) int {
	from, err := ParseTripDate(departure)
	if err != nil {
		return 0
	}
	to, err := ParseTripDate(ret)
	if err != nil || to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// FormatTripDates renders a date range for display ("Mar 1, 2025 to Mar 5, 2025").
// Unparseable input is echoed as given.
func FormatTripDates(departure, ret string) string {
	from, errFrom := ParseTripDate(departure)
	to, errTo := ParseTripDate(ret)
	if errFrom != nil || errTo != nil {
		return fmt.Sprintf("%s to %s", departure, ret)
	}
	return fmt.Sprintf("%s to %s", from.Format(tripDisplayLayout), to.Format(tripDisplayLayout))
}
