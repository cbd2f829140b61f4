package services

import (
	"context"
	"fmt"
	"math"
	"time"

	resp "yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = time.Now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng)

	// ---------- Core counts ----------
	totalAccounts, err := s.repo.CountTotalAccounts(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	newAccounts, err := s.repo.CountNewAccounts(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, dbError(err)
	}
	totalReviews, err := s.repo.CountTotalReviews(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	newReviews, err := s.repo.CountNewReviews(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, dbError(err)
	}
	destinations, err := s.repo.CountDestinations(ctx)
	if err != nil {
		return nil, dbError(err)
	}

	// ---------- Ratings ----------
	ratingRows, err := s.repo.RatingBreakdown(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	ratings, average := ratingBreakdown(ratingRows)

	// ---------- Series ----------
	reviewRows, err := s.repo.NewReviewsSeries(ctx, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, dbError(err)
	}
	userRows, err := s.repo.NewUsersSeries(ctx, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, dbError(err)
	}

	return &resp.DashboardReport{
		Range: rng,
		KPIs: resp.KPIBlock{
			TotalAccounts: totalAccounts,
			NewAccounts:   newAccounts,
			TotalReviews:  totalReviews,
			NewReviews:    newReviews,
			AverageRating: average,
			Destinations:  destinations,
		},
		NewReviews: resp.CountSeries{Points: seriesPoints(reviewRows)},
		NewUsers:   resp.CountSeries{Points: seriesPoints(userRows)},
		Ratings:    ratings,
	}, nil
}

// ratingBreakdown always reports all five star levels, in ascending order,
// and the mean rating rounded to two decimals.
func ratingBreakdown(rows []repositories.RatingRow) ([]resp.RatingCount, float64) {
	counts := make(map[int]int64, len(rows))
	var total, weighted int64
	for _, r := range rows {
		counts[r.Rating] += r.Count
		total += r.Count
		weighted += int64(r.Rating) * r.Count
	}

	out := make([]resp.RatingCount, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		var pct float64
		if total > 0 {
			pct = float64(counts[rating]) * 100.0 / float64(total)
		}
		out = append(out, resp.RatingCount{Rating: rating, Count: counts[rating], Percent: pct})
	}

	if total == 0 {
		return out, 0
	}
	return out, math.Round(float64(weighted)/float64(total)*100) / 100
}

func seriesPoints(rows []repositories.BucketSum) []resp.SeriesPoint {
	points := make([]resp.SeriesPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
	}
	return points
}

func dbError(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}
