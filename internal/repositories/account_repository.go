package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitatrack/internal/models/db_models"
)

const accountsTable = "accounts"

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return storeError(accountsTable, "insert", a.db.WithContext(ctx).Create(account).Error)
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return findOne[db_models.Account](ctx, a.db, accountsTable, "id = ?", id)
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return findOne[db_models.Account](ctx, a.db, accountsTable, "email = ?", email)
}

func (a *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	err := a.db.WithContext(ctx).
		Model(&db_models.Account{BaseModel: db_models.BaseModel{ID: id}}).
		Update("password_hash", hash).Error
	return storeError(accountsTable, "update", err)
}
