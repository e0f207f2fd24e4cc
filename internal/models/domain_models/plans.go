package domain_models

import (
	"time"

	"github.com/google/uuid"
)

type PlannedExercise struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Sets     *int   `json:"sets,omitempty"`
	Reps     *int   `json:"reps,omitempty"`
}

type WorkoutPlan struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	Difficulty  string            `json:"difficulty"`
	Exercises   []PlannedExercise `json:"exercises"`
	Tags        []string          `json:"tags"`
	CreatedAt   time.Time         `json:"created_at"`
}

type PlannedMeal struct {
	Name      string     `json:"name"`
	MealType  MealType   `json:"meal_type"`
	FoodItems []FoodItem `json:"food_items"`
}

type MealPlan struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Meals       []PlannedMeal `json:"meals"`
	Tags        []string      `json:"tags"`
	CreatedAt   time.Time     `json:"created_at"`
}

func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
