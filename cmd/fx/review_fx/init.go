package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(reviewRepo repositories.ReviewRepositoryInterface) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo)
}
