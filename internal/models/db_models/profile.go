package db_models

import "github.com/google/uuid"

// Profile shares its primary key with the owning account.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"uniqueIndex;not null"`
	FullName  string
	AvatarURL *string
	CreatedAt int64 `gorm:"autoCreateTime:milli"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli"`
}

type UserPreferences struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Language             string    `gorm:"size:2;not null"`
	NotificationsEnabled bool      `gorm:"not null"`
	Theme                string    `gorm:"size:8;not null"`
	CreatedAt            int64     `gorm:"autoCreateTime:milli"`
	UpdatedAt            int64     `gorm:"autoUpdateTime:milli"`
}

func (UserPreferences) TableName() string { return "user_preferences" }
