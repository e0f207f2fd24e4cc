package request_models

import dm "vitatrack/internal/models/domain_models"

// UserID on write requests is the owner the client claims. It is optional;
// when present it must match the session.

type ExerciseRequest struct {
	UserID       string       `json:"user_id" binding:"omitempty,uuid"`
	ActivityType string       `json:"activity_type" binding:"required,oneof=running walking cycling swimming football basketball yoga other"`
	Duration     int          `json:"duration" binding:"gte=0,lte=1440"`
	Distance     *float64     `json:"distance" binding:"omitempty,gte=0"`
	Calories     *int         `json:"calories" binding:"omitempty,gte=0"`
	GPSData      *dm.GPSTrack `json:"gps_data"`
	Notes        *string      `json:"notes" binding:"omitempty,max=1000"`
}

type FoodItemRequest struct {
	Name     string  `json:"name" binding:"required,max=120"`
	Portion  string  `json:"portion" binding:"max=60"`
	Calories int     `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

func (f FoodItemRequest) ToDomain() dm.FoodItem {
	return dm.FoodItem{Name: f.Name, Portion: f.Portion, Calories: f.Calories, Protein: f.Protein, Carbs: f.Carbs, Fat: f.Fat}
}

func FoodItems(items []FoodItemRequest) []dm.FoodItem {
	out := make([]dm.FoodItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToDomain())
	}
	return out
}

// MealRequest has no total; it is always derived from the items.
type MealRequest struct {
	UserID    string            `json:"user_id" binding:"omitempty,uuid"`
	MealType  string            `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	FoodItems []FoodItemRequest `json:"food_items" binding:"required,min=1,dive"`
}

type MoodRequest struct {
	UserID      string  `json:"user_id" binding:"omitempty,uuid"`
	Mood        string  `json:"mood" binding:"omitempty,oneof=contento cansado estresado triste tranquilo motivado"`
	EnergyLevel int     `json:"energy_level" binding:"required,min=1,max=10"`
	Notes       *string `json:"notes" binding:"omitempty,max=1000"`
}

// Sleep and stress entries store an energy level too; when omitted it
// defaults to dm.DefaultEnergyLevel.
type SleepRequest struct {
	UserID      string  `json:"user_id" binding:"omitempty,uuid"`
	Hours       float64 `json:"sleep_hours" binding:"gte=0,lte=24,halfstep"`
	Quality     int     `json:"sleep_quality" binding:"required,min=1,max=5"`
	EnergyLevel int     `json:"energy_level" binding:"omitempty,min=1,max=10"`
	Notes       *string `json:"notes" binding:"omitempty,max=1000"`
}

type StressRequest struct {
	UserID      string  `json:"user_id" binding:"omitempty,uuid"`
	Level       int     `json:"stress_level" binding:"required,min=1,max=10"`
	EnergyLevel int     `json:"energy_level" binding:"omitempty,min=1,max=10"`
	Notes       *string `json:"notes" binding:"omitempty,max=1000"`
}
