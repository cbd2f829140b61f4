package response_models

import (
	"time"
)

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
	// Optional: timezone used for bucketing (defaults to UTC if empty)
	Timezone string `json:"timezone,omitempty"`
}

type KPIBlock struct {
	TotalAccounts int64   `json:"total_accounts"`
	NewAccounts   int64   `json:"new_accounts"`
	TotalReviews  int64   `json:"total_reviews"`
	NewReviews    int64   `json:"new_reviews"`
	AverageRating float64 `json:"average_rating"`
	Destinations  int64   `json:"destinations"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type CountSeries struct {
	Points []SeriesPoint `json:"points"`
}

type RatingCount struct {
	Rating  int     `json:"rating"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

type DashboardReport struct {
	Range      TimeRange     `json:"range"`
	KPIs       KPIBlock      `json:"kpis"`
	NewReviews CountSeries   `json:"new_reviews"`
	NewUsers   CountSeries   `json:"new_users"`
	Ratings    []RatingCount `json:"ratings"`
}
