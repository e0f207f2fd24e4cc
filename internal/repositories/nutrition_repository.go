package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitatrack/internal/models/db_models"
	dm "vitatrack/internal/models/domain_models"
)

const nutritionTable = "nutrition_logs"

type NutritionRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dm.NutritionLog, error)
	Insert(ctx context.Context, log dm.NutritionLog) (*dm.NutritionLog, error)
}

type nutritionRepository struct {
	db *gorm.DB
}

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dm.NutritionLog, error) {
	rows, err := listByOwner[db_models.NutritionLog](ctx, r.db, userID)
	if err != nil {
		return nil, storeError(nutritionTable, "list", err)
	}
	out := make([]dm.NutritionLog, 0, len(rows))
	for _, row := range rows {
		n, err := nutritionFromRow(row)
		if err != nil {
			return nil, storeError(nutritionTable, "list", err)
		}
		out = append(out, n)
	}
	return out, storeError(nutritionTable, "list", nil)
}

func (r *nutritionRepository) Insert(ctx context.Context, log dm.NutritionLog) (*dm.NutritionLog, error) {
	row, err := nutritionToRow(log)
	if err != nil {
		return nil, err
	}
	ok, err := insertOne(ctx, r.db, &row)
	if err != nil || !ok {
		return nil, storeError(nutritionTable, "insert", err)
	}
	out, err := nutritionFromRow(row)
	if err != nil {
		return nil, err
	}
	return &out, storeError(nutritionTable, "insert", nil)
}
