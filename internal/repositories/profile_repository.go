package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vitatrack/internal/models/db_models"
	dm "vitatrack/internal/models/domain_models"
)

const (
	profilesTable    = "profiles"
	preferencesTable = "user_preferences"
)

// ProfileUpdate carries the mutable profile fields; nil leaves a field as is.
type ProfileUpdate struct {
	FullName  *string
	AvatarURL *string
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*dm.Profile, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, profile dm.Profile) (*dm.Profile, error)
	Update(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*dm.Profile, error)
	FindPreferences(ctx context.Context, userID uuid.UUID) (*dm.Preferences, error)
	UpsertPreferences(ctx context.Context, prefs dm.Preferences) (*dm.Preferences, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*dm.Profile, error) {
	row, err := findOne[db_models.Profile](ctx, p.db, profilesTable, "id = ?", id)
	if err != nil || row == nil {
		return nil, err
	}
	profile := profileFromRow(*row)
	return &profile, nil
}

func (p *profileRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, storeError(profilesTable, "count", err)
	}
	return count > 0, storeError(profilesTable, "count", nil)
}

func (p *profileRepository) Insert(ctx context.Context, profile dm.Profile) (*dm.Profile, error) {
	row := db_models.Profile{
		ID:        profile.ID,
		Username:  profile.Username,
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
	}
	ok, err := insertOne(ctx, p.db, &row)
	if err != nil || !ok {
		return nil, storeError(profilesTable, "insert", err)
	}
	out := profileFromRow(row)
	return &out, storeError(profilesTable, "insert", nil)
}

func (p *profileRepository) Update(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*dm.Profile, error) {
	fields := map[string]interface{}{}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.AvatarURL != nil {
		fields["avatar_url"] = *update.AvatarURL
	}
	if len(fields) > 0 {
		result := p.db.WithContext(ctx).
			Model(&db_models.Profile{}).
			Where("id = ?", id).
			Updates(fields)
		if result.Error != nil {
			return nil, storeError(profilesTable, "update", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, storeError(profilesTable, "update", nil)
		}
	}
	return p.FindByID(ctx, id)
}

func (p *profileRepository) FindPreferences(ctx context.Context, userID uuid.UUID) (*dm.Preferences, error) {
	row, err := findOne[db_models.UserPreferences](ctx, p.db, preferencesTable, "id = ?", userID)
	if err != nil || row == nil {
		return nil, err
	}
	return &dm.Preferences{
		UserID:               row.ID,
		Language:             row.Language,
		NotificationsEnabled: row.NotificationsEnabled,
		Theme:                row.Theme,
	}, nil
}

func (p *profileRepository) UpsertPreferences(ctx context.Context, prefs dm.Preferences) (*dm.Preferences, error) {
	row := db_models.UserPreferences{
		ID:                   prefs.UserID,
		Language:             prefs.Language,
		NotificationsEnabled: prefs.NotificationsEnabled,
		Theme:                prefs.Theme,
	}
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"language", "notifications_enabled", "theme", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, storeError(preferencesTable, "upsert", err)
	}
	out := prefs
	return &out, storeError(preferencesTable, "upsert", nil)
}
