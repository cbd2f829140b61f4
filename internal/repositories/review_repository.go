package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type ReviewRepositoryInterface interface {
	CreateReview(ctx context.Context, review *db_models.Review) error
	ListReviews(ctx context.Context, page, pageSize int) ([]db_models.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) (bool, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) ListReviews(ctx context.Context, page, pageSize int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// DeleteReview soft-deletes a review and reports whether a row was affected.
func (r *ReviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Review{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
