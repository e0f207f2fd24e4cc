package repositories

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"vitatrack/internal/models/db_models"
	dm "vitatrack/internal/models/domain_models"
	"vitatrack/pkg/utils"
)

func toJSON(v interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, utils.NewAppError(utils.CodeValidationError, "cannot encode payload", err)
	}
	return datatypes.JSON(b), nil
}

func fromJSON(raw datatypes.JSON, v interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return utils.DatabaseError("stored json is malformed", err)
	}
	return nil
}

func exerciseToRow(e dm.ExerciseLog) (db_models.ExerciseLog, error) {
	row := db_models.ExerciseLog{
		LogModel:     db_models.LogModel{ID: e.ID, UserID: e.UserID},
		ActivityType: string(e.ActivityType),
		Duration:     e.DurationMinutes,
		Distance:     e.DistanceKm,
		Calories:     e.Calories,
		Notes:        e.Notes,
	}
	if e.GPSTrack != nil {
		raw, err := toJSON(e.GPSTrack)
		if err != nil {
			return row, err
		}
		row.GPSData = raw
	}
	return row, nil
}

func exerciseFromRow(row db_models.ExerciseLog) (dm.ExerciseLog, error) {
	e := dm.ExerciseLog{
		ID:              row.ID,
		UserID:          row.UserID,
		ActivityType:    dm.ActivityType(row.ActivityType),
		DurationMinutes: row.Duration,
		DistanceKm:      row.Distance,
		Calories:        row.Calories,
		Notes:           row.Notes,
		CreatedAt:       utils.FromUnixMillis(row.CreatedAt),
	}
	if len(row.GPSData) > 0 && string(row.GPSData) != "null" {
		var track dm.GPSTrack
		if err := fromJSON(row.GPSData, &track); err != nil {
			return e, err
		}
		e.GPSTrack = &track
	}
	return e, nil
}

func nutritionToRow(n dm.NutritionLog) (db_models.NutritionLog, error) {
	items := n.FoodItems
	if items == nil {
		items = []dm.FoodItem{}
	}
	raw, err := toJSON(items)
	if err != nil {
		return db_models.NutritionLog{}, err
	}
	total := n.TotalCalories
	return db_models.NutritionLog{
		LogModel:      db_models.LogModel{ID: n.ID, UserID: n.UserID},
		MealType:      string(n.MealType),
		FoodItems:     raw,
		TotalCalories: &total,
	}, nil
}

func nutritionFromRow(row db_models.NutritionLog) (dm.NutritionLog, error) {
	n := dm.NutritionLog{
		ID:        row.ID,
		UserID:    row.UserID,
		MealType:  dm.MealType(row.MealType),
		FoodItems: []dm.FoodItem{},
		CreatedAt: utils.FromUnixMillis(row.CreatedAt),
	}
	if err := fromJSON(row.FoodItems, &n.FoodItems); err != nil {
		return n, err
	}
	if row.TotalCalories != nil {
		n.TotalCalories = *row.TotalCalories
	}
	return n, nil
}

// wellnessToRow writes the variant into the shared table using the mood
// column as discriminator.
func wellnessToRow(entry dm.WellnessEntry) (db_models.WellnessLog, error) {
	meta := entry.Meta()
	row := db_models.WellnessLog{
		LogModel:    db_models.LogModel{ID: meta.ID, UserID: meta.UserID},
		EnergyLevel: meta.EnergyLevel,
		Notes:       meta.Notes,
	}
	switch e := entry.(type) {
	case dm.MoodEntry:
		if e.Mood == db_models.SleepSentinel || e.Mood == db_models.StressSentinel {
			return row, utils.ValidationError(fmt.Sprintf("%q no es un estado de ánimo", e.Mood))
		}
		row.Mood = e.Mood
	case dm.SleepEntry:
		hours, quality := e.Hours, e.Quality
		row.Mood = db_models.SleepSentinel
		row.SleepHours = &hours
		row.SleepQuality = &quality
	case dm.StressEntry:
		level := e.Level
		row.Mood = db_models.StressSentinel
		row.StressLevel = &level
	default:
		return row, utils.ValidationError(fmt.Sprintf("tipo de registro desconocido %T", entry))
	}
	return row, nil
}

// wellnessFromRow reads the discriminator; null numeric columns read as 0.
func wellnessFromRow(row db_models.WellnessLog) dm.WellnessEntry {
	meta := dm.EntryMeta{
		ID:          row.ID,
		UserID:      row.UserID,
		EnergyLevel: row.EnergyLevel,
		Notes:       row.Notes,
		CreatedAt:   utils.FromUnixMillis(row.CreatedAt),
	}
	switch row.Mood {
	case db_models.SleepSentinel:
		e := dm.SleepEntry{EntryMeta: meta}
		if row.SleepHours != nil {
			e.Hours = *row.SleepHours
		} else {
			e.HoursMissing = true
		}
		if row.SleepQuality != nil {
			e.Quality = *row.SleepQuality
		}
		return e
	case db_models.StressSentinel:
		e := dm.StressEntry{EntryMeta: meta}
		if row.StressLevel != nil {
			e.Level = *row.StressLevel
		}
		return e
	default:
		return dm.MoodEntry{EntryMeta: meta, Mood: row.Mood}
	}
}

func workoutPlanToRow(p dm.WorkoutPlan) (db_models.WorkoutPlan, error) {
	exercises := p.Exercises
	if exercises == nil {
		exercises = []dm.PlannedExercise{}
	}
	raw, err := toJSON(exercises)
	if err != nil {
		return db_models.WorkoutPlan{}, err
	}
	return db_models.WorkoutPlan{
		LogModel:    db_models.LogModel{ID: p.ID, UserID: p.UserID},
		Title:       p.Title,
		Description: p.Description,
		Difficulty:  p.Difficulty,
		Exercises:   raw,
		Tags:        db_models.Tags(p.Tags),
	}, nil
}

func workoutPlanFromRow(row db_models.WorkoutPlan) (dm.WorkoutPlan, error) {
	p := dm.WorkoutPlan{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		Difficulty:  row.Difficulty,
		Exercises:   []dm.PlannedExercise{},
		Tags:        nonNilTags(row.Tags),
		CreatedAt:   utils.FromUnixMillis(row.CreatedAt),
	}
	return p, fromJSON(row.Exercises, &p.Exercises)
}

func mealPlanToRow(p dm.MealPlan) (db_models.MealPlan, error) {
	meals := p.Meals
	if meals == nil {
		meals = []dm.PlannedMeal{}
	}
	raw, err := toJSON(meals)
	if err != nil {
		return db_models.MealPlan{}, err
	}
	return db_models.MealPlan{
		LogModel:    db_models.LogModel{ID: p.ID, UserID: p.UserID},
		Title:       p.Title,
		Description: p.Description,
		Meals:       raw,
		Tags:        db_models.Tags(p.Tags),
	}, nil
}

func mealPlanFromRow(row db_models.MealPlan) (dm.MealPlan, error) {
	p := dm.MealPlan{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		Meals:       []dm.PlannedMeal{},
		Tags:        nonNilTags(row.Tags),
		CreatedAt:   utils.FromUnixMillis(row.CreatedAt),
	}
	return p, fromJSON(row.Meals, &p.Meals)
}

func nonNilTags(t db_models.Tags) []string {
	if t == nil {
		return []string{}
	}
	return []string(t)
}

func profileFromRow(row db_models.Profile) dm.Profile {
	return dm.Profile{
		ID:        row.ID,
		Username:  row.Username,
		FullName:  row.FullName,
		AvatarURL: row.AvatarURL,
		CreatedAt: utils.FromUnixMillis(row.CreatedAt),
		UpdatedAt: utils.FromUnixMillis(row.UpdatedAt),
	}
}
