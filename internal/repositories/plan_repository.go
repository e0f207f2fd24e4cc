package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitatrack/internal/models/db_models"
	dm "vitatrack/internal/models/domain_models"
)

const (
	workoutPlansTable = "workout_plans"
	mealPlansTable    = "meal_plans"
)

type PlanRepository interface {
	ListWorkoutPlans(ctx context.Context, userID uuid.UUID) ([]dm.WorkoutPlan, error)
	InsertWorkoutPlan(ctx context.Context, plan dm.WorkoutPlan) (*dm.WorkoutPlan, error)
	ListMealPlans(ctx context.Context, userID uuid.UUID) ([]dm.MealPlan, error)
	InsertMealPlan(ctx context.Context, plan dm.MealPlan) (*dm.MealPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) ListWorkoutPlans(ctx context.Context, userID uuid.UUID) ([]dm.WorkoutPlan, error) {
	rows, err := listByOwner[db_models.WorkoutPlan](ctx, p.db, userID)
	if err != nil {
		return nil, storeError(workoutPlansTable, "list", err)
	}
	out := make([]dm.WorkoutPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := workoutPlanFromRow(row)
		if err != nil {
			return nil, storeError(workoutPlansTable, "list", err)
		}
		out = append(out, plan)
	}
	return out, storeError(workoutPlansTable, "list", nil)
}

func (p *planRepository) InsertWorkoutPlan(ctx context.Context, plan dm.WorkoutPlan) (*dm.WorkoutPlan, error) {
	row, err := workoutPlanToRow(plan)
	if err != nil {
		return nil, err
	}
	ok, err := insertOne(ctx, p.db, &row)
	if err != nil || !ok {
		return nil, storeError(workoutPlansTable, "insert", err)
	}
	out, err := workoutPlanFromRow(row)
	if err != nil {
		return nil, err
	}
	return &out, storeError(workoutPlansTable, "insert", nil)
}

func (p *planRepository) ListMealPlans(ctx context.Context, userID uuid.UUID) ([]dm.MealPlan, error) {
	rows, err := listByOwner[db_models.MealPlan](ctx, p.db, userID)
	if err != nil {
		return nil, storeError(mealPlansTable, "list", err)
	}
	out := make([]dm.MealPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := mealPlanFromRow(row)
		if err != nil {
			return nil, storeError(mealPlansTable, "list", err)
		}
		out = append(out, plan)
	}
	return out, storeError(mealPlansTable, "list", nil)
}

func (p *planRepository) InsertMealPlan(ctx context.Context, plan dm.MealPlan) (*dm.MealPlan, error) {
	row, err := mealPlanToRow(plan)
	if err != nil {
		return nil, err
	}
	ok, err := insertOne(ctx, p.db, &row)
	if err != nil || !ok {
		return nil, storeError(mealPlansTable, "insert", err)
	}
	out, err := mealPlanFromRow(row)
	if err != nil {
		return nil, err
	}
	return &out, storeError(mealPlansTable, "insert", nil)
}
