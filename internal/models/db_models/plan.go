package db_models

import (
	"gorm.io/datatypes"
)

type WorkoutPlan struct {
	LogModel
	Title       string `gorm:"not null"`
	Description *string
	Difficulty  string         `gorm:"not null"`
	Exercises   datatypes.JSON `gorm:"not null"`
	Tags        Tags
}

func (WorkoutPlan) TableName() string { return "workout_plans" }

type MealPlan struct {
	LogModel
	Title       string `gorm:"not null"`
	Description *string
	Meals       datatypes.JSON `gorm:"not null"`
	Tags        Tags
}

func (MealPlan) TableName() string { return "meal_plans" }

// All lists the tables created by AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&Profile{},
		&UserPreferences{},
		&ExerciseLog{},
		&NutritionLog{},
		&WellnessLog{},
		&WorkoutPlan{},
		&MealPlan{},
	}
}
