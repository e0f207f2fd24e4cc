package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitatrack/internal/models/db_models"
	dm "vitatrack/internal/models/domain_models"
)

const exerciseTable = "exercise_logs"

type ExerciseRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dm.ExerciseLog, error)
	Insert(ctx context.Context, log dm.ExerciseLog) (*dm.ExerciseLog, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dm.ExerciseLog, error) {
	rows, err := listByOwner[db_models.ExerciseLog](ctx, r.db, userID)
	if err != nil {
		return nil, storeError(exerciseTable, "list", err)
	}
	out := make([]dm.ExerciseLog, 0, len(rows))
	for _, row := range rows {
		e, err := exerciseFromRow(row)
		if err != nil {
			return nil, storeError(exerciseTable, "list", err)
		}
		out = append(out, e)
	}
	return out, storeError(exerciseTable, "list", nil)
}

// Insert returns nil, nil when the store reported no inserted row.
func (r *exerciseRepository) Insert(ctx context.Context, log dm.ExerciseLog) (*dm.ExerciseLog, error) {
	row, err := exerciseToRow(log)
	if err != nil {
		return nil, err
	}
	ok, err := insertOne(ctx, r.db, &row)
	if err != nil || !ok {
		return nil, storeError(exerciseTable, "insert", err)
	}
	out, err := exerciseFromRow(row)
	if err != nil {
		return nil, err
	}
	return &out, storeError(exerciseTable, "insert", nil)
}
