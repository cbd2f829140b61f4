package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, request request_models.AddReviewRequest) (*response_models.ReviewResponse, error)
	GetReviews(ctx context.Context, page, pageSize int) ([]response_models.ReviewResponse, error)
	DeleteReview(ctx context.Context, id string) error
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo}
}

func (s *ReviewService) AddReview(ctx context.Context, request request_models.AddReviewRequest) (*response_models.ReviewResponse, error) {
	name := strings.TrimSpace(request.Name)
	feedback := strings.TrimSpace(request.Feedback)
	if name == "" || feedback == "" {
		return nil, fmt.Errorf("%w: name and feedback are required", utils.ErrInvalidInput)
	}
	if request.Rating < 1 || request.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", utils.ErrInvalidInput)
	}

	review := &db_models.Review{
		Name:     name,
		Rating:   request.Rating,
		Feedback: feedback,
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toReviewResponse(*review)
	return &resp, nil
}

func (s *ReviewService) GetReviews(ctx context.Context, page, pageSize int) ([]response_models.ReviewResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListReviews(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}
	return out, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid review id", utils.ErrInvalidInput)
	}

	deleted, err := s.reviewRepo.DeleteReview(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrReviewNotFound
	}
	return nil
}

func toReviewResponse(review db_models.Review) response_models.ReviewResponse {
	return response_models.ReviewResponse{
		ID:        review.ID.String(),
		Name:      review.Name,
		Rating:    review.Rating,
		Feedback:  review.Feedback,
		CreatedAt: review.CreatedAt,
	}
}

func validatePaging(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return utils.ErrInvalidPageSize
	}
	return nil
}
