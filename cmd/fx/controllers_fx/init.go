package controllers_fx

import (
	"go.uber.org/fx"

	"yatra/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripOptionsController))
