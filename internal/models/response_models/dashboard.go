package response_models

import (
	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/stats"
)

const RecentItems = 5

type DashboardReport struct {
	RecentExercises []dm.ExerciseLog        `json:"recent_exercises"`
	RecentMeals     []dm.NutritionLog       `json:"recent_meals"`
	RecentWellness  []WellnessEntryResponse `json:"recent_wellness"`
	Weekly          stats.WeeklySummary     `json:"weekly"`
	Wellness        stats.WellnessStats     `json:"wellness"`
}

type DailyTipResponse struct {
	Tip    string `json:"tip"`
	Source string `json:"source"`
	Date   string `json:"date"`
}
