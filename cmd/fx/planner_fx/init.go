package planner_fx

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"yatra/internal/api/controllers"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	services.NewTripPlannerService,
	services.NewItineraryDocumentService,
	services.NewTripOptionsService,
	controllers.NewTripPlanController,
)

// ProvideTextGenerator creates the generator client for the configured provider.
func ProvideTextGenerator(lc fx.Lifecycle, cfg utils.GeneratorConfig, logger *zap.Logger) (utils.TextGeneratorInterface, error) {
	logger.Info("initializing text generator",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model))

	generator, err := utils.NewTextGenerator(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	if closer, ok := generator.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return generator, nil
}
