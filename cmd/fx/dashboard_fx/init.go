package dashboard_fx

import (
	"go.uber.org/fx"

	"yatra/internal/api/controllers"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	repositories.NewDashboardRepository,
	services.NewDashboardService,
	controllers.NewDashboardController,
)
