package destination_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Options(
	fx.Provide(NewDestinationService, NewDestinationRepo),
	fx.Invoke(seedCatalog),
)

func NewDestinationService(repo repositories.DestinationRepository, logger *zap.Logger) services.DestinationServiceInterface {
	return services.NewDestinationService(repo, logger)
}

func NewDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func seedCatalog(lc fx.Lifecycle, service services.DestinationServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return service.SeedCatalog(ctx)
		},
	})
}
