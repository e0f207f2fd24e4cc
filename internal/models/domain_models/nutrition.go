package domain_models

import (
	"time"

	"github.com/google/uuid"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type FoodItem struct {
	Name     string  `json:"name"`
	Portion  string  `json:"portion"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type NutritionLog struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	MealType      MealType   `json:"meal_type"`
	FoodItems     []FoodItem `json:"food_items"`
	TotalCalories int        `json:"total_calories"`
	CreatedAt     time.Time  `json:"created_at"`
}

func TotalCalories(items []FoodItem) int {
	total := 0
	for _, item := range items {
		total += item.Calories
	}
	return total
}
