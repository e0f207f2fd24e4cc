package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"vitatrack/internal/infra"
	"vitatrack/pkg/retry"
)

var Module = fx.Provide(
	infra.LoadConfig, provideLogger, provideRetryPolicy)

func provideLogger(cfg infra.Config) (*zap.Logger, error) {
	return infra.NewLogger(cfg)
}

func provideRetryPolicy(cfg infra.Config, log *zap.Logger) retry.Policy {
	policy := cfg.RetryPolicy()
	policy.Logger = log
	return policy
}
