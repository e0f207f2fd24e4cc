package request_models

import dm "vitatrack/internal/models/domain_models"

type PlannedExerciseRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Duration int    `json:"duration" binding:"gte=0"`
	Sets     *int   `json:"sets" binding:"omitempty,gte=1"`
	Reps     *int   `json:"reps" binding:"omitempty,gte=1"`
}

type WorkoutPlanRequest struct {
	UserID      string                   `json:"user_id" binding:"omitempty,uuid"`
	Title       string                   `json:"title" binding:"required,max=120"`
	Description *string                  `json:"description" binding:"omitempty,max=2000"`
	Difficulty  string                   `json:"difficulty" binding:"required,max=30"`
	Exercises   []PlannedExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
	Tags        []string                 `json:"tags" binding:"omitempty,max=20,dive,min=1,max=30"`
}

func PlannedExercises(items []PlannedExerciseRequest) []dm.PlannedExercise {
	out := make([]dm.PlannedExercise, 0, len(items))
	for _, e := range items {
		out = append(out, dm.PlannedExercise{Name: e.Name, Duration: e.Duration, Sets: e.Sets, Reps: e.Reps})
	}
	return out
}

type PlannedMealRequest struct {
	Name      string            `json:"name" binding:"required,max=120"`
	MealType  string            `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	FoodItems []FoodItemRequest `json:"food_items" binding:"omitempty,dive"`
}

func PlannedMeals(items []PlannedMealRequest) []dm.PlannedMeal {
	out := make([]dm.PlannedMeal, 0, len(items))
	for _, m := range items {
		out = append(out, dm.PlannedMeal{Name: m.Name, MealType: dm.MealType(m.MealType), FoodItems: FoodItems(m.FoodItems)})
	}
	return out
}

type MealPlanRequest struct {
	UserID      string               `json:"user_id" binding:"omitempty,uuid"`
	Title       string               `json:"title" binding:"required,max=120"`
	Description *string              `json:"description" binding:"omitempty,max=2000"`
	Meals       []PlannedMealRequest `json:"meals" binding:"required,min=1,dive"`
	Tags        []string             `json:"tags" binding:"omitempty,max=20,dive,min=1,max=30"`
}

type ProfileUpdateRequest struct {
	UserID    string  `json:"user_id" binding:"omitempty,uuid"`
	FullName  *string `json:"full_name" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

type PreferencesRequest struct {
	UserID               string `json:"user_id" binding:"omitempty,uuid"`
	Language             string `json:"language" binding:"required,oneof=es en"`
	NotificationsEnabled *bool  `json:"notifications_enabled" binding:"required"`
	Theme                string `json:"theme" binding:"required,oneof=light dark"`
}
