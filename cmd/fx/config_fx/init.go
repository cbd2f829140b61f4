package config_fx

import (
	"time"

	"go.uber.org/fx"

	"yatra/internal/infra"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	infra.LoadConfig,
	provideGeneratorConfig,
	providePlanTimeout,
)

func provideGeneratorConfig(cfg *infra.Config) utils.GeneratorConfig {
	return cfg.Generator
}

func providePlanTimeout(cfg *infra.Config) time.Duration {
	return cfg.PlanTimeout
}
