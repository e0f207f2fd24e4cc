package services

import (
	"context"

	"github.com/google/uuid"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/models/request_models"
	"vitatrack/internal/repositories"
	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

type NutritionService interface {
	ListMeals(ctx context.Context, identity dm.Identity) ([]dm.NutritionLog, error)
	LogMeal(ctx context.Context, identity dm.Identity, request request_models.MealRequest) (*dm.NutritionLog, error)
}

type nutritionService struct {
	repo   repositories.NutritionRepository
	policy retry.Policy
}

func NewNutritionService(repo repositories.NutritionRepository, policy retry.Policy) NutritionService {
	return &nutritionService{repo: repo, policy: policy}
}

func (s *nutritionService) ListMeals(ctx context.Context, identity dm.Identity) ([]dm.NutritionLog, error) {
	if err := guard(identity, ""); err != nil {
		return nil, err
	}
	return fetch(ctx, s.policy, "nutrition.list", func(ctx context.Context) ([]dm.NutritionLog, error) {
		return s.repo.ListByUser(ctx, identity.UserID)
	})
}

func (s *nutritionService) LogMeal(ctx context.Context, identity dm.Identity, request request_models.MealRequest) (*dm.NutritionLog, error) {
	if err := guard(identity, request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	items := request_models.FoodItems(request.FoodItems)
	log := dm.NutritionLog{
		ID:            uuid.New(),
		UserID:        identity.UserID,
		MealType:      dm.MealType(request.MealType),
		FoodItems:     items,
		TotalCalories: dm.TotalCalories(items),
	}

	return insert(ctx, s.policy, "nutrition.insert", func(ctx context.Context) (*dm.NutritionLog, error) {
		return s.repo.Insert(ctx, log)
	})
}
