package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vitatrack/internal/models/db_models"
	dm "vitatrack/internal/models/domain_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(db_models.All()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func ptr[T any](v T) *T { return &v }

func TestExerciseRepository_ListIsOwnedAndNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewExerciseRepository(newTestDB(t))
	owner, other := uuid.New(), uuid.New()

	for i, minutes := range []int{10, 20, 30} {
		_, err := repo.Insert(ctx, dm.ExerciseLog{
			ID:              uuid.New(),
			UserID:          owner,
			ActivityType:    dm.ActivityRunning,
			DurationMinutes: minutes,
		})
		require.NoError(t, err, "insert %d", i)
		time.Sleep(2 * time.Millisecond)
	}
	_, err := repo.Insert(ctx, dm.ExerciseLog{ID: uuid.New(), UserID: other, ActivityType: dm.ActivityYoga, DurationMinutes: 99})
	require.NoError(t, err)

	logs, err := repo.ListByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, []int{30, 20, 10}, []int{logs[0].DurationMinutes, logs[1].DurationMinutes, logs[2].DurationMinutes})
	for _, l := range logs {
		assert.Equal(t, owner, l.UserID)
	}
}

func TestExerciseRepository_EmptyListIsNotNil(t *testing.T) {
	repo := NewExerciseRepository(newTestDB(t))
	logs, err := repo.ListByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestExerciseRepository_InsertKeepsIDAndGPSTrack(t *testing.T) {
	ctx := context.Background()
	repo := NewExerciseRepository(newTestDB(t))
	id := uuid.New()
	track := &dm.GPSTrack{
		Coordinates: [][2]float64{{-3.7038, 40.4168}, {-3.6883, 40.4153}},
		Elevation:   []float64{650, 655},
	}

	saved, err := repo.Insert(ctx, dm.ExerciseLog{
		ID:              id,
		UserID:          uuid.New(),
		ActivityType:    dm.ActivityCycling,
		DurationMinutes: 45,
		DistanceKm:      ptr(12.5),
		Calories:        ptr(400),
		GPSTrack:        track,
		Notes:           ptr("Retiro"),
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, id, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	require.NotNil(t, saved.GPSTrack)
	assert.Equal(t, track.Coordinates, saved.GPSTrack.Coordinates)

	logs, err := repo.ListByUser(ctx, saved.UserID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 12.5, *logs[0].DistanceKm)
	assert.Equal(t, "Retiro", *logs[0].Notes)
	assert.Equal(t, track.Elevation, logs[0].GPSTrack.Elevation)
}

func TestNutritionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewNutritionRepository(newTestDB(t))
	owner := uuid.New()
	items := []dm.FoodItem{
		{Name: "Avena", Portion: "50g", Calories: 190, Protein: 6.5, Carbs: 33, Fat: 3.5},
		{Name: "Plátano", Portion: "1", Calories: 105, Carbs: 27},
	}

	_, err := repo.Insert(ctx, dm.NutritionLog{
		ID: uuid.New(), UserID: owner, MealType: dm.MealBreakfast,
		FoodItems: items, TotalCalories: dm.TotalCalories(items),
	})
	require.NoError(t, err)

	logs, err := repo.ListByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 295, logs[0].TotalCalories)
	assert.Equal(t, items, logs[0].FoodItems)
}

func TestWellnessRepository_VariantsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewWellnessRepository(db)
	owner := uuid.New()

	entries := []dm.WellnessEntry{
		dm.MoodEntry{EntryMeta: dm.EntryMeta{ID: uuid.New(), UserID: owner, EnergyLevel: 7}, Mood: "contento"},
		dm.SleepEntry{EntryMeta: dm.EntryMeta{ID: uuid.New(), UserID: owner, EnergyLevel: 5}, Hours: 7.5, Quality: 4},
		dm.StressEntry{EntryMeta: dm.EntryMeta{ID: uuid.New(), UserID: owner, EnergyLevel: 3, Notes: ptr("exámenes")}, Level: 8},
	}
	for _, e := range entries {
		saved, err := repo.Insert(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, e.Kind(), saved.Kind())
		time.Sleep(2 * time.Millisecond)
	}

	var raw []db_models.WellnessLog
	require.NoError(t, db.Order("created_at ASC").Find(&raw).Error)
	require.Len(t, raw, 3)
	assert.Equal(t, "contento", raw[0].Mood)
	assert.Nil(t, raw[0].SleepHours)
	assert.Equal(t, db_models.SleepSentinel, raw[1].Mood)
	assert.Nil(t, raw[1].StressLevel)
	assert.Equal(t, db_models.StressSentinel, raw[2].Mood)
	assert.Nil(t, raw[2].SleepQuality)

	got, err := repo.ListByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, 3)

	stress, ok := got[0].(dm.StressEntry)
	require.True(t, ok, "newest entry is %T", got[0])
	assert.Equal(t, 8, stress.Level)
	assert.Equal(t, "exámenes", *stress.Notes)

	sleep, ok := got[1].(dm.SleepEntry)
	require.True(t, ok)
	assert.Equal(t, 7.5, sleep.Hours)
	assert.Equal(t, 4, sleep.Quality)

	mood, ok := got[2].(dm.MoodEntry)
	require.True(t, ok)
	assert.Equal(t, "contento", mood.Mood)
	assert.Equal(t, 7, mood.EnergyLevel)
}

func TestWellnessRepository_RejectsSentinelAsMood(t *testing.T) {
	repo := NewWellnessRepository(newTestDB(t))
	_, err := repo.Insert(context.Background(), dm.MoodEntry{
		EntryMeta: dm.EntryMeta{ID: uuid.New(), UserID: uuid.New(), EnergyLevel: 5},
		Mood:      db_models.SleepSentinel,
	})
	require.Error(t, err)
}

func TestWellnessFromRow_NullSleepFieldsAreMarked(t *testing.T) {
	entry := wellnessFromRow(db_models.WellnessLog{Mood: db_models.SleepSentinel, EnergyLevel: 4})
	sleep, ok := entry.(dm.SleepEntry)
	require.True(t, ok)
	assert.Zero(t, sleep.Hours)
	assert.True(t, sleep.HoursMissing)
	assert.Zero(t, sleep.Quality)
}

func TestPlanRepository_TagsAndJSONColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanRepository(newTestDB(t))
	owner := uuid.New()

	_, err := repo.InsertWorkoutPlan(ctx, dm.WorkoutPlan{
		ID: uuid.New(), UserID: owner, Title: "Fuerza", Difficulty: "intermediate",
		Exercises: []dm.PlannedExercise{{Name: "Sentadillas", Duration: 10, Sets: ptr(4), Reps: ptr(12)}},
		Tags:      []string{"fuerza", "piernas"},
	})
	require.NoError(t, err)
	_, err = repo.InsertMealPlan(ctx, dm.MealPlan{
		ID: uuid.New(), UserID: owner, Title: "Semana ligera",
		Meals: []dm.PlannedMeal{{Name: "Ensalada", MealType: dm.MealLunch, FoodItems: []dm.FoodItem{{Name: "Lechuga", Calories: 20}}}},
	})
	require.NoError(t, err)

	workouts, err := repo.ListWorkoutPlans(ctx, owner)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, []string{"fuerza", "piernas"}, workouts[0].Tags)
	assert.Equal(t, 12, *workouts[0].Exercises[0].Reps)

	meals, err := repo.ListMealPlans(ctx, owner)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.NotNil(t, meals[0].Tags)
	assert.Empty(t, meals[0].Tags)
	assert.Equal(t, "Lechuga", meals[0].Meals[0].FoodItems[0].Name)
}

func TestProfileRepository_InsertUpdateAndPreferences(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))
	id := uuid.New()

	missing, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.Insert(ctx, dm.Profile{ID: id, Username: "ana", FullName: "Ana"})
	require.NoError(t, err)

	taken, err := repo.UsernameTaken(ctx, "ana")
	require.NoError(t, err)
	assert.True(t, taken)

	_, err = repo.Insert(ctx, dm.Profile{ID: uuid.New(), Username: "ana"})
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	updated, err := repo.Update(ctx, id, ProfileUpdate{FullName: ptr("Ana García")})
	require.NoError(t, err)
	assert.Equal(t, "Ana García", updated.FullName)
	assert.Equal(t, "ana", updated.Username)

	prefs, err := repo.FindPreferences(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, prefs)

	_, err = repo.UpsertPreferences(ctx, dm.DefaultPreferences(id))
	require.NoError(t, err)
	_, err = repo.UpsertPreferences(ctx, dm.Preferences{UserID: id, Language: "en", Theme: "dark"})
	require.NoError(t, err)

	prefs, err = repo.FindPreferences(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, "en", prefs.Language)
	assert.Equal(t, "dark", prefs.Theme)
	assert.False(t, prefs.NotificationsEnabled)
}

func TestAccountRepository_FindAndUpdatePassword(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := &db_models.Account{Email: "ana@example.com", PasswordHash: "old", FullName: "Ana"}
	require.NoError(t, repo.Insert(ctx, account))
	assert.NotEqual(t, uuid.Nil, account.ID)

	err := repo.Insert(ctx, &db_models.Account{Email: "ana@example.com", PasswordHash: "x"})
	assert.True(t, IsDuplicate(err))

	require.NoError(t, repo.UpdatePasswordHash(ctx, account.ID, "new"))

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "new", found.PasswordHash)

	none, err := repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, none)
}
