package db_models

import "gorm.io/datatypes"

type ExerciseLog struct {
	LogModel
	ActivityType string `gorm:"not null"`
	Duration     int    `gorm:"not null"`
	Distance     *float64
	Calories     *int
	GPSData      datatypes.JSON
	Notes        *string
}

func (ExerciseLog) TableName() string { return "exercise_logs" }

type NutritionLog struct {
	LogModel
	MealType      string         `gorm:"not null"`
	FoodItems     datatypes.JSON `gorm:"not null"`
	TotalCalories *int
}

func (NutritionLog) TableName() string { return "nutrition_logs" }

// WellnessLog stores every wellness kind in one table. Mood holds the mood
// label, or one of the sentinels below for sleep and stress rows.
type WellnessLog struct {
	LogModel
	Mood         string `gorm:"not null"`
	EnergyLevel  int    `gorm:"not null"`
	SleepHours   *float64
	SleepQuality *int
	StressLevel  *int
	Notes        *string
}

const (
	SleepSentinel  = "sleep_log"
	StressSentinel = "stress_log"
)

func (WellnessLog) TableName() string { return "wellness_logs" }
