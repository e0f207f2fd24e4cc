package dashboard

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"vitatrack/internal/infra"
	"vitatrack/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideTipProvider, provideTipService,
)

func provideDashboardService(
	exercises services.ExerciseService,
	meals services.NutritionService,
	wellness services.WellnessService,
	cfg infra.Config,
) services.DashboardService {
	return services.NewDashboardService(exercises, meals, wellness, cfg.Location)
}

// provideTipProvider returns nil when no model is configured; tips then
// come from the static rotation.
func provideTipProvider(lc fx.Lifecycle, cfg infra.Config, log *zap.Logger) services.TipProvider {
	switch cfg.TipProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			log.Warn("TIP_PROVIDER=openai without OPENAI_API_KEY, using static tips")
			return nil
		}
		return services.NewOpenAITipProvider(cfg.OpenAIKey, cfg.OpenAIModel)
	case "gemini":
		if cfg.GeminiKey == "" {
			log.Warn("TIP_PROVIDER=gemini without GEMINI_API_KEY, using static tips")
			return nil
		}
		provider, err := services.NewGeminiTipProvider(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			log.Error("failed to create gemini client, using static tips", zap.Error(err))
			return nil
		}
		if closer, ok := provider.(interface{ Close() error }); ok {
			lc.Append(fx.Hook{OnStop: func(ctx context.Context) error { return closer.Close() }})
		}
		return provider
	case "":
		return nil
	default:
		log.Warn("unknown TIP_PROVIDER, using static tips", zap.String("provider", cfg.TipProvider))
		return nil
	}
}

func provideTipService(provider services.TipProvider, dashboard services.DashboardService, cfg infra.Config, log *zap.Logger) services.TipService {
	return services.NewTipService(provider, dashboard, cfg.Location, log.Named("tips"))
}
