package services

import (
	"context"
	"errors"
	"testing"
	"time"

	resp "yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type fakeDashboardRepo struct {
	ratings   []repositories.RatingRow
	series    []repositories.BucketSum
	err       error
	gotStart  time.Time
	gotEnd    time.Time
	gotPeriod string
}

func (f *fakeDashboardRepo) CountTotalAccounts(ctx context.Context) (int64, error) { return 12, f.err }

func (f *fakeDashboardRepo) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	f.gotStart, f.gotEnd = start, end
	return 3, f.err
}

func (f *fakeDashboardRepo) CountTotalReviews(ctx context.Context) (int64, error) { return 4, nil }

func (f *fakeDashboardRepo) CountNewReviews(ctx context.Context, start, end time.Time) (int64, error) {
	return 2, nil
}

func (f *fakeDashboardRepo) CountDestinations(ctx context.Context) (int64, error) { return 5, nil }

func (f *fakeDashboardRepo) RatingBreakdown(ctx context.Context) ([]repositories.RatingRow, error) {
	return f.ratings, nil
}

func (f *fakeDashboardRepo) NewReviewsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]repositories.BucketSum, error) {
	f.gotPeriod = interval
	return f.series, nil
}

func (f *fakeDashboardRepo) NewUsersSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]repositories.BucketSum, error) {
	return nil, nil
}

func TestBuildDashboard(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeDashboardRepo{
		ratings: []repositories.RatingRow{{Rating: 5, Count: 2}, {Rating: 4, Count: 1}, {Rating: 2, Count: 1}},
		series:  []repositories.BucketSum{{Bucket: day, Sum: 2}},
	}
	svc := NewDashboardService(repo)

	end := day.AddDate(0, 0, 7)
	report, err := svc.BuildDashboard(context.Background(), resp.TimeRange{Start: end, End: day})
	if err != nil {
		t.Fatalf("BuildDashboard: %v", err)
	}

	if !repo.gotStart.Equal(day) || !repo.gotEnd.Equal(end) {
		t.Errorf("range not reordered: %v - %v", repo.gotStart, repo.gotEnd)
	}
	if repo.gotPeriod != "day" || report.Range.Interval != "day" {
		t.Errorf("interval = %q", repo.gotPeriod)
	}

	kpis := report.KPIs
	if kpis.TotalAccounts != 12 || kpis.NewAccounts != 3 || kpis.TotalReviews != 4 || kpis.NewReviews != 2 || kpis.Destinations != 5 {
		t.Errorf("kpis = %+v", kpis)
	}
	// (5*2 + 4 + 2) / 4
	if kpis.AverageRating != 4.0 {
		t.Errorf("average = %v, want 4", kpis.AverageRating)
	}

	if len(report.Ratings) != 5 {
		t.Fatalf("ratings = %+v", report.Ratings)
	}
	if report.Ratings[0].Rating != 1 || report.Ratings[0].Count != 0 {
		t.Errorf("1-star = %+v", report.Ratings[0])
	}
	if report.Ratings[4].Count != 2 || report.Ratings[4].Percent != 50 {
		t.Errorf("5-star = %+v", report.Ratings[4])
	}
	if len(report.NewReviews.Points) != 1 || report.NewReviews.Points[0].Value != 2 {
		t.Errorf("series = %+v", report.NewReviews)
	}
	if report.NewUsers.Points == nil {
		t.Error("empty series should encode as []")
	}
}

func TestBuildDashboardDefaultsAndErrors(t *testing.T) {
	repo := &fakeDashboardRepo{}
	report, err := NewDashboardService(repo).BuildDashboard(context.Background(), resp.TimeRange{})
	if err != nil {
		t.Fatalf("BuildDashboard: %v", err)
	}
	if got := report.Range.End.Sub(report.Range.Start); got != 30*24*time.Hour {
		t.Errorf("default window = %v", got)
	}
	if report.KPIs.AverageRating != 0 {
		t.Errorf("average without reviews = %v", report.KPIs.AverageRating)
	}

	repo.err = errStorage
	if _, err := NewDashboardService(repo).BuildDashboard(context.Background(), resp.TimeRange{}); !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}
}
