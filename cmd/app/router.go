package main

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"yatra/internal/api/controllers"
	"yatra/internal/infra"
	"yatra/pkg/memcache"
	"yatra/pkg/middleware"
	"yatra/pkg/utils"
)

type Controllers struct {
	TripPlan     *controllers.TripPlanController
	TripOptions  *controllers.TripOptionsController
	Reviews      *controllers.ReviewController
	Destinations *controllers.DestinationsController
	Accounts     *controllers.AccountController
	Dashboard    *controllers.DashboardController
}

func ProvideRouter(
	cfg *infra.Config,
	tokens *utils.TokenIssuer,
	visitors memcache.VisitorStore,
	tripPlanController *controllers.TripPlanController,
	tripOptionsController *controllers.TripOptionsController,
	reviewController *controllers.ReviewController,
	destinationsController *controllers.DestinationsController,
	accountController *controllers.AccountController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tokens, visitors, Controllers{
		TripPlan:     tripPlanController,
		TripOptions:  tripOptionsController,
		Reviews:      reviewController,
		Destinations: destinationsController,
		Accounts:     accountController,
		Dashboard:    dashboardController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, tokens *utils.TokenIssuer, visitors memcache.VisitorStore, ctrl Controllers) {

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "ok")
	})

	r.GET("/trips/options", ctrl.TripOptions.GetTripOptions)

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.RateLimitMiddleware(visitors))
	tripsGroup.POST("/plan", ctrl.TripPlan.GeneratePlan)
	tripsGroup.POST("/plan/pdf", ctrl.TripPlan.DownloadPlanPDF)
	tripsGroup.POST("/prompt", ctrl.TripPlan.PreviewPrompt)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("", ctrl.Destinations.GetAllDestinations)
	destinationsGroup.GET("/suggest", ctrl.Destinations.SuggestDestinations)

	reviewsGroup := r.Group("/reviews")
	reviewsGroup.GET("", ctrl.Reviews.ListReviews)
	reviewsGroup.POST("", ctrl.Reviews.AddReview)
	reviewsGroup.DELETE("/:id",
		middleware.JWTAuthMiddleware(tokens),
		middleware.RoleMiddleware("admin"),
		ctrl.Reviews.DeleteReview)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", ctrl.Accounts.Register)
	accountsGroup.POST("/login", ctrl.Accounts.Login)

	dashboardGroup := r.Group("/dashboard")
	dashboardGroup.Use(middleware.JWTAuthMiddleware(tokens), middleware.RoleMiddleware("admin"))
	dashboardGroup.GET("/stats", ctrl.Dashboard.GetDashboard)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader, controllers.FallbackHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
