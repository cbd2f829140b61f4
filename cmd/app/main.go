package main

import (
	"context"
	"errors"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"yatra/cmd/fx/account_fx"
	"yatra/cmd/fx/config_fx"
	"yatra/cmd/fx/controllers_fx"
	"yatra/cmd/fx/dashboard_fx"
	"yatra/cmd/fx/db_fx"
	"yatra/cmd/fx/destination_fx"
	"yatra/cmd/fx/logger_fx"
	"yatra/cmd/fx/memcache_fx"
	"yatra/cmd/fx/planner_fx"
	"yatra/cmd/fx/review_fx"
	"yatra/internal/infra"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		planner_fx.Module,
		review_fx.Module,
		destination_fx.Module,
		account_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
