package logs_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vitatrack/internal/repositories"
	"vitatrack/internal/services"
	"vitatrack/pkg/retry"
)

var Module = fx.Provide(
	provideExerciseRepo, provideExerciseService,
	provideNutritionRepo, provideNutritionService,
	provideWellnessRepo, provideWellnessService,
)

func provideExerciseRepo(db *gorm.DB) repositories.ExerciseRepository {
	return repositories.NewExerciseRepository(db)
}

func provideExerciseService(repo repositories.ExerciseRepository, policy retry.Policy) services.ExerciseService {
	return services.NewExerciseService(repo, policy)
}

func provideNutritionRepo(db *gorm.DB) repositories.NutritionRepository {
	return repositories.NewNutritionRepository(db)
}

func provideNutritionService(repo repositories.NutritionRepository, policy retry.Policy) services.NutritionService {
	return services.NewNutritionService(repo, policy)
}

func provideWellnessRepo(db *gorm.DB) repositories.WellnessRepository {
	return repositories.NewWellnessRepository(db)
}

func provideWellnessService(repo repositories.WellnessRepository, policy retry.Policy) services.WellnessService {
	return services.NewWellnessService(repo, policy)
}
