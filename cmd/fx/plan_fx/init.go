package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vitatrack/internal/repositories"
	"vitatrack/internal/services"
	"vitatrack/pkg/retry"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(repo repositories.PlanRepository, policy retry.Policy) services.PlanService {
	return services.NewPlanService(repo, policy)
}
