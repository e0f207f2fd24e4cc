package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitatrack/internal/models/db_models"
	dm "vitatrack/internal/models/domain_models"
)

const wellnessTable = "wellness_logs"

// WellnessRepository stores mood, sleep and stress entries in one table.
type WellnessRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dm.WellnessEntry, error)
	Insert(ctx context.Context, entry dm.WellnessEntry) (dm.WellnessEntry, error)
}

type wellnessRepository struct {
	db *gorm.DB
}

func NewWellnessRepository(db *gorm.DB) WellnessRepository {
	return &wellnessRepository{db: db}
}

func (r *wellnessRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dm.WellnessEntry, error) {
	rows, err := listByOwner[db_models.WellnessLog](ctx, r.db, userID)
	if err != nil {
		return nil, storeError(wellnessTable, "list", err)
	}
	out := make([]dm.WellnessEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, wellnessFromRow(row))
	}
	return out, storeError(wellnessTable, "list", nil)
}

func (r *wellnessRepository) Insert(ctx context.Context, entry dm.WellnessEntry) (dm.WellnessEntry, error) {
	row, err := wellnessToRow(entry)
	if err != nil {
		return nil, err
	}
	ok, err := insertOne(ctx, r.db, &row)
	if err != nil || !ok {
		return nil, storeError(wellnessTable, "insert", err)
	}
	return wellnessFromRow(row), storeError(wellnessTable, "insert", nil)
}
