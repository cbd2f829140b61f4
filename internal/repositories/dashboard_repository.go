package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "yatra/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error)
	CountTotalReviews(ctx context.Context) (int64, error)
	CountNewReviews(ctx context.Context, start, end time.Time) (int64, error)
	CountDestinations(ctx context.Context) (int64, error)

	// Ratings
	RatingBreakdown(ctx context.Context) ([]RatingRow, error)

	// Time series
	NewReviewsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error)
	NewUsersSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    int64     `gorm:"column:sum"`
}

type RatingRow struct {
	Rating int   `gorm:"column:rating"`
	Count  int64 `gorm:"column:count"`
}

// ---------- Helpers ----------

// dateTrunc buckets a column of UNIX seconds, optionally in a timezone, and
// returns the expression with its bind arguments.
func dateTrunc(interval, tz string, unixColumn string) (string, []interface{}) {
	if tz == "" {
		return "date_trunc(?, to_timestamp(" + unixColumn + "))", []interface{}{interval}
	}
	return "date_trunc(?, timezone(?, to_timestamp(" + unixColumn + ")))", []interface{}{interval, tz}
}

// ---------- Counts ----------
func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalReviews(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Review{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewReviews(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Review{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountDestinations(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Destination{}).Count(&n).Error
	return n, err
}

// ---------- Ratings ----------
func (r *dashboardRepository) RatingBreakdown(ctx context.Context) ([]RatingRow, error) {
	var rows []RatingRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Review{}).
		Select("rating, COUNT(*) AS count").
		Group("rating").
		Order("rating ASC").
		Find(&rows).Error
	return rows, err
}

// ---------- Series ----------
func (r *dashboardRepository) NewReviewsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	return r.countSeries(ctx, "reviews", start, end, interval, tz)
}

func (r *dashboardRepository) NewUsersSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	return r.countSeries(ctx, "accounts", start, end, interval, tz)
}

func (r *dashboardRepository) countSeries(ctx context.Context, table string, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	truncExpr, args := dateTrunc(interval, tz, "created_at")
	err := r.db.WithContext(ctx).
		Table(table).
		Select(truncExpr+" AS bucket, COUNT(*) AS sum", args...).
		Where("deleted_at IS NULL").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}
