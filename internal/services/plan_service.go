package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/models/request_models"
	"vitatrack/internal/repositories"
	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

// PlanService covers workout and meal plans. Plans are created once and
// never updated.
type PlanService interface {
	ListWorkoutPlans(ctx context.Context, identity dm.Identity, tag string) ([]dm.WorkoutPlan, error)
	CreateWorkoutPlan(ctx context.Context, identity dm.Identity, request request_models.WorkoutPlanRequest) (*dm.WorkoutPlan, error)
	ListMealPlans(ctx context.Context, identity dm.Identity, tag string) ([]dm.MealPlan, error)
	CreateMealPlan(ctx context.Context, identity dm.Identity, request request_models.MealPlanRequest) (*dm.MealPlan, error)
}

type planService struct {
	repo   repositories.PlanRepository
	policy retry.Policy
}

func NewPlanService(repo repositories.PlanRepository, policy retry.Policy) PlanService {
	return &planService{repo: repo, policy: policy}
}

func (s *planService) ListWorkoutPlans(ctx context.Context, identity dm.Identity, tag string) ([]dm.WorkoutPlan, error) {
	if err := guard(identity, ""); err != nil {
		return nil, err
	}
	plans, err := fetch(ctx, s.policy, "workout_plan.list", func(ctx context.Context) ([]dm.WorkoutPlan, error) {
		return s.repo.ListWorkoutPlans(ctx, identity.UserID)
	})
	tag = normalizeTag(tag)
	if err != nil || tag == "" {
		return plans, err
	}
	filtered := make([]dm.WorkoutPlan, 0, len(plans))
	for _, p := range plans {
		if dm.HasTag(p.Tags, tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *planService) CreateWorkoutPlan(ctx context.Context, identity dm.Identity, request request_models.WorkoutPlanRequest) (*dm.WorkoutPlan, error) {
	if err := guard(identity, request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	plan := dm.WorkoutPlan{
		ID:          uuid.New(),
		UserID:      identity.UserID,
		Title:       strings.TrimSpace(request.Title),
		Description: request.Description,
		Difficulty:  request.Difficulty,
		Exercises:   request_models.PlannedExercises(request.Exercises),
		Tags:        normalizeTags(request.Tags),
	}

	return insert(ctx, s.policy, "workout_plan.insert", func(ctx context.Context) (*dm.WorkoutPlan, error) {
		return s.repo.InsertWorkoutPlan(ctx, plan)
	})
}

func (s *planService) ListMealPlans(ctx context.Context, identity dm.Identity, tag string) ([]dm.MealPlan, error) {
	if err := guard(identity, ""); err != nil {
		return nil, err
	}
	plans, err := fetch(ctx, s.policy, "meal_plan.list", func(ctx context.Context) ([]dm.MealPlan, error) {
		return s.repo.ListMealPlans(ctx, identity.UserID)
	})
	tag = normalizeTag(tag)
	if err != nil || tag == "" {
		return plans, err
	}
	filtered := make([]dm.MealPlan, 0, len(plans))
	for _, p := range plans {
		if dm.HasTag(p.Tags, tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *planService) CreateMealPlan(ctx context.Context, identity dm.Identity, request request_models.MealPlanRequest) (*dm.MealPlan, error) {
	if err := guard(identity, request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	plan := dm.MealPlan{
		ID:          uuid.New(),
		UserID:      identity.UserID,
		Title:       strings.TrimSpace(request.Title),
		Description: request.Description,
		Meals:       request_models.PlannedMeals(request.Meals),
		Tags:        normalizeTags(request.Tags),
	}

	return insert(ctx, s.policy, "meal_plan.insert", func(ctx context.Context) (*dm.MealPlan, error) {
		return s.repo.InsertMealPlan(ctx, plan)
	})
}

// normalizeTags lowercases, trims and drops duplicates, keeping order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = normalizeTag(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
