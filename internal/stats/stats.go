// Package stats computes summaries over logs already loaded in memory.
// Nothing here touches the store.
package stats

import (
	"math"
	"time"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/pkg/utils"
)

type WeeklySummary struct {
	WeekStart            time.Time `json:"week_start"`
	WeekEnd              time.Time `json:"week_end"`
	TotalExerciseMinutes int       `json:"total_exercise_minutes"`
	AverageCalories      int       `json:"average_calories"`
	AverageSleep         float64   `json:"average_sleep"`
}

type WellnessStats struct {
	TotalMoodEntries    int            `json:"total_mood_entries"`
	TotalSleepEntries   int            `json:"total_sleep_entries"`
	TotalStressEntries  int            `json:"total_stress_entries"`
	AverageSleep        float64        `json:"average_sleep"`
	AverageStress       float64        `json:"average_stress"`
	SleepQualityAverage float64        `json:"sleep_quality_average"`
	AverageEnergy       float64        `json:"average_energy"`
	MoodDistribution    map[string]int `json:"mood_distribution"`
}

// WeekRange is the ISO week containing now, see utils.WeekRange.
func WeekRange(now time.Time, loc *time.Location) (time.Time, time.Time) {
	return utils.WeekRange(now, loc)
}

// ComputeWeeklySummary restricts every collection to the current week
// before aggregating.
func ComputeWeeklySummary(now time.Time, loc *time.Location, exercises []dm.ExerciseLog, meals []dm.NutritionLog, wellness []dm.WellnessEntry) WeeklySummary {
	start, end := WeekRange(now, loc)
	summary := WeeklySummary{WeekStart: start, WeekEnd: end}

	for _, e := range exercises {
		if utils.WithinRange(e.CreatedAt, start, end) {
			summary.TotalExerciseMinutes += e.DurationMinutes
		}
	}

	calories := make([]float64, 0, len(meals))
	for _, m := range meals {
		if utils.WithinRange(m.CreatedAt, start, end) {
			calories = append(calories, float64(m.TotalCalories))
		}
	}
	summary.AverageCalories = RoundInt(Mean(calories))

	hours := make([]float64, 0)
	for _, w := range wellness {
		sleep, ok := w.(dm.SleepEntry)
		if ok && !sleep.HoursMissing && utils.WithinRange(sleep.CreatedAt, start, end) {
			hours = append(hours, sleep.Hours)
		}
	}
	summary.AverageSleep = Round1(Mean(hours))

	return summary
}

// ComputeWellnessStats works on the full collection. Energy is averaged
// over every entry since all kinds record it.
func ComputeWellnessStats(entries []dm.WellnessEntry) WellnessStats {
	out := WellnessStats{MoodDistribution: map[string]int{}}
	var sleepHours, sleepQuality, stressLevels, energy []float64

	for _, entry := range entries {
		energy = append(energy, float64(entry.Meta().EnergyLevel))
		switch e := entry.(type) {
		case dm.MoodEntry:
			out.TotalMoodEntries++
			out.MoodDistribution[e.Mood]++
		case dm.SleepEntry:
			out.TotalSleepEntries++
			if !e.HoursMissing {
				sleepHours = append(sleepHours, e.Hours)
			}
			sleepQuality = append(sleepQuality, float64(e.Quality))
		case dm.StressEntry:
			out.TotalStressEntries++
			stressLevels = append(stressLevels, float64(e.Level))
		}
	}

	out.AverageSleep = Round1(Mean(sleepHours))
	out.SleepQualityAverage = Round1(Mean(sleepQuality))
	out.AverageStress = Round1(Mean(stressLevels))
	out.AverageEnergy = Round1(Mean(energy))
	return out
}

// Mean is 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Round1 rounds half away from zero to one decimal.
func Round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

func RoundInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// Latest returns at most n items from a newest first slice.
func Latest[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
