package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/models/request_models"
	"vitatrack/pkg/utils"
)

func ptr[T any](v T) *T { return &v }

func TestLogExercise_ClaimedOwnerMismatchWritesNothing(t *testing.T) {
	repo := &fakeExerciseRepo{}
	svc := NewExerciseService(repo, testPolicy())
	me := sessionFor(uuid.New())

	_, err := svc.LogExercise(context.Background(), me, request_models.ExerciseRequest{
		UserID:       uuid.NewString(),
		ActivityType: "running",
		Duration:     30,
	})

	require.Error(t, err)
	assert.Equal(t, utils.CodeInvalidUser, utils.CodeOf(err))
	assert.Empty(t, repo.insertedIDs)
}

func TestLogExercise_NoSession(t *testing.T) {
	svc := NewExerciseService(&fakeExerciseRepo{}, testPolicy())
	_, err := svc.LogExercise(context.Background(), dm.Identity{}, request_models.ExerciseRequest{ActivityType: "running"})
	assert.Equal(t, utils.CodeUserNotFound, utils.CodeOf(err))
}

func TestLogExercise_MatchingClaimIsAccepted(t *testing.T) {
	repo := &fakeExerciseRepo{}
	svc := NewExerciseService(repo, testPolicy())
	me := sessionFor(uuid.New())

	saved, err := svc.LogExercise(context.Background(), me, request_models.ExerciseRequest{
		UserID:       me.UserID.String(),
		ActivityType: "yoga",
		Duration:     50,
	})
	require.NoError(t, err)
	assert.Equal(t, me.UserID, saved.UserID)
	assert.Nil(t, saved.DistanceKm)
}

func TestLogExercise_Validation(t *testing.T) {
	svc := NewExerciseService(&fakeExerciseRepo{}, testPolicy())
	me := sessionFor(uuid.New())

	tests := []struct {
		name string
		req  request_models.ExerciseRequest
	}{
		{name: "unknown activity", req: request_models.ExerciseRequest{ActivityType: "chess", Duration: 10}},
		{name: "negative duration", req: request_models.ExerciseRequest{ActivityType: "running", Duration: -1}},
		{name: "negative distance", req: request_models.ExerciseRequest{ActivityType: "running", Distance: ptr(-2.0)}},
		{name: "elevation length", req: request_models.ExerciseRequest{ActivityType: "running", GPSData: &dm.GPSTrack{
			Coordinates: [][2]float64{{0, 0}, {0, 1}},
			Elevation:   []float64{1},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LogExercise(context.Background(), me, tt.req)
			assert.Equal(t, utils.CodeValidationError, utils.CodeOf(err))
		})
	}
}

func TestLogExercise_DistanceDerivedFromTrack(t *testing.T) {
	svc := NewExerciseService(&fakeExerciseRepo{}, testPolicy())

	saved, err := svc.LogExercise(context.Background(), sessionFor(uuid.New()), request_models.ExerciseRequest{
		ActivityType: "walking",
		Duration:     20,
		GPSData:      &dm.GPSTrack{Coordinates: [][2]float64{{0, 0}, {0, 1}}},
	})
	require.NoError(t, err)
	require.NotNil(t, saved.DistanceKm)
	// One degree of latitude.
	assert.InDelta(t, 111.19, *saved.DistanceKm, 0.01)
}

func TestLogExercise_TransientInsertRetriesWithSameID(t *testing.T) {
	repo := &fakeExerciseRepo{}
	repo.queue = []error{utils.NewTransientError("reset", nil), utils.NewTransientError("reset", nil)}
	svc := NewExerciseService(repo, testPolicy())

	saved, err := svc.LogExercise(context.Background(), sessionFor(uuid.New()), request_models.ExerciseRequest{
		ActivityType: "running", Duration: 5,
	})
	require.NoError(t, err)
	require.Len(t, repo.insertedIDs, 3)
	assert.Equal(t, repo.insertedIDs[0], repo.insertedIDs[2])
	assert.Equal(t, saved.ID, repo.insertedIDs[0])
}

func TestLogExercise_InsertWithoutRowIsInsertFailed(t *testing.T) {
	svc := NewExerciseService(&fakeExerciseRepo{dropInsert: true}, testPolicy())
	_, err := svc.LogExercise(context.Background(), sessionFor(uuid.New()), request_models.ExerciseRequest{ActivityType: "other"})
	assert.Equal(t, utils.CodeInsertFailed, utils.CodeOf(err))
}

func TestListExercises(t *testing.T) {
	me := sessionFor(uuid.New())

	t.Run("empty is not nil", func(t *testing.T) {
		svc := NewExerciseService(&fakeExerciseRepo{}, testPolicy())
		logs, err := svc.ListExercises(context.Background(), me)
		require.NoError(t, err)
		assert.NotNil(t, logs)
	})

	t.Run("store error is database error", func(t *testing.T) {
		repo := &fakeExerciseRepo{}
		repo.queue = []error{utils.DatabaseError("relation missing", nil)}
		_, err := NewExerciseService(repo, testPolicy()).ListExercises(context.Background(), me)
		assert.Equal(t, utils.CodeDatabaseError, utils.CodeOf(err))
	})

	t.Run("exhausted transient failures surface as network error", func(t *testing.T) {
		repo := &fakeExerciseRepo{}
		for i := 0; i < 4; i++ {
			repo.queue = append(repo.queue, utils.NewTransientError("timeout", nil))
		}
		_, err := NewExerciseService(repo, testPolicy()).ListExercises(context.Background(), me)
		assert.Equal(t, utils.CodeNetworkError, utils.CodeOf(err))
	})

	t.Run("foreign error is normalized", func(t *testing.T) {
		repo := &fakeExerciseRepo{}
		repo.queue = []error{errors.New("boom")}
		_, err := NewExerciseService(repo, testPolicy()).ListExercises(context.Background(), me)
		assert.Equal(t, utils.CodeAPIError, utils.CodeOf(err))
	})
}

func TestLogMeal_TotalIsDerived(t *testing.T) {
	repo := &fakeNutritionRepo{}
	svc := NewNutritionService(repo, testPolicy())

	saved, err := svc.LogMeal(context.Background(), sessionFor(uuid.New()), request_models.MealRequest{
		MealType: "dinner",
		FoodItems: []request_models.FoodItemRequest{
			{Name: "Arroz", Calories: 200},
			{Name: "Pollo", Calories: 250, Protein: 30},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 450, saved.TotalCalories)
	assert.Len(t, saved.FoodItems, 2)
}

func TestLogMeal_RequiresItems(t *testing.T) {
	svc := NewNutritionService(&fakeNutritionRepo{}, testPolicy())
	_, err := svc.LogMeal(context.Background(), sessionFor(uuid.New()), request_models.MealRequest{MealType: "snack"})
	assert.Equal(t, utils.CodeValidationError, utils.CodeOf(err))
}

func TestWellness_LogVariants(t *testing.T) {
	repo := &fakeWellnessRepo{}
	svc := NewWellnessService(repo, testPolicy())
	me := sessionFor(uuid.New())
	ctx := context.Background()

	_, err := svc.LogMood(ctx, me, request_models.MoodRequest{EnergyLevel: 5})
	require.Error(t, err)
	assert.Equal(t, "Por favor selecciona un estado de ánimo", utils.UserMessage(err))

	_, err = svc.LogMood(ctx, me, request_models.MoodRequest{Mood: "eufórico", EnergyLevel: 5})
	assert.Equal(t, utils.CodeValidationError, utils.CodeOf(err))

	_, err = svc.LogSleep(ctx, me, request_models.SleepRequest{Hours: 7.3, Quality: 3, EnergyLevel: 5})
	assert.Equal(t, utils.CodeValidationError, utils.CodeOf(err))

	_, err = svc.LogStress(ctx, me, request_models.StressRequest{Level: 11, EnergyLevel: 5})
	assert.Equal(t, utils.CodeValidationError, utils.CodeOf(err))

	_, err = svc.LogMood(ctx, me, request_models.MoodRequest{Mood: "contento", EnergyLevel: 5})
	require.NoError(t, err)
	_, err = svc.LogSleep(ctx, me, request_models.SleepRequest{Hours: 7, Quality: 4, EnergyLevel: 5})
	require.NoError(t, err)
	_, err = svc.LogStress(ctx, me, request_models.StressRequest{Level: 3, EnergyLevel: 5})
	require.NoError(t, err)

	got, err := svc.Stats(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"contento": 1}, got.MoodDistribution)
	assert.Equal(t, 7.0, got.AverageSleep)
	assert.Equal(t, 4.0, got.SleepQualityAverage)
	assert.Equal(t, 3.0, got.AverageStress)
	assert.Equal(t, 5.0, got.AverageEnergy)
	assert.Equal(t, 1, got.TotalMoodEntries)
}

func TestWellness_SleepAndStressDefaultEnergy(t *testing.T) {
	svc := NewWellnessService(&fakeWellnessRepo{}, testPolicy())
	me := sessionFor(uuid.New())
	ctx := context.Background()

	sleep, err := svc.LogSleep(ctx, me, request_models.SleepRequest{Hours: 6.5, Quality: 3})
	require.NoError(t, err)
	assert.Equal(t, dm.DefaultEnergyLevel, sleep.Meta().EnergyLevel)

	stress, err := svc.LogStress(ctx, me, request_models.StressRequest{Level: 4})
	require.NoError(t, err)
	assert.Equal(t, dm.DefaultEnergyLevel, stress.Meta().EnergyLevel)

	stress, err = svc.LogStress(ctx, me, request_models.StressRequest{Level: 4, EnergyLevel: 8})
	require.NoError(t, err)
	assert.Equal(t, 8, stress.Meta().EnergyLevel)

	_, err = svc.LogStress(ctx, me, request_models.StressRequest{Level: 4, EnergyLevel: 11})
	assert.Equal(t, utils.CodeValidationError, utils.CodeOf(err))
}

func TestWellness_MismatchedOwner(t *testing.T) {
	repo := &fakeWellnessRepo{}
	svc := NewWellnessService(repo, testPolicy())
	_, err := svc.LogStress(context.Background(), sessionFor(uuid.New()), request_models.StressRequest{
		UserID: uuid.NewString(), Level: 3, EnergyLevel: 5,
	})
	assert.True(t, errors.Is(err, utils.ErrInvalidUser))
	assert.Empty(t, repo.rows)
}

func TestPlans_CreateAndFilterByTag(t *testing.T) {
	svc := NewPlanService(&fakePlanRepo{}, testPolicy())
	me := sessionFor(uuid.New())
	ctx := context.Background()

	_, err := svc.CreateWorkoutPlan(ctx, me, request_models.WorkoutPlanRequest{
		Title: " Piernas ", Difficulty: "beginner",
		Exercises: []request_models.PlannedExerciseRequest{{Name: "Zancadas", Duration: 10}},
		Tags:      []string{"Fuerza", "fuerza", " casa "},
	})
	require.NoError(t, err)
	_, err = svc.CreateWorkoutPlan(ctx, me, request_models.WorkoutPlanRequest{
		Title: "Cardio", Difficulty: "advanced",
		Exercises: []request_models.PlannedExerciseRequest{{Name: "Correr", Duration: 30}},
	})
	require.NoError(t, err)

	all, err := svc.ListWorkoutPlans(ctx, me, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Cardio", all[0].Title)

	tagged, err := svc.ListWorkoutPlans(ctx, me, "fuerza")
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, "Piernas", tagged[0].Title)
	assert.Equal(t, []string{"fuerza", "casa"}, tagged[0].Tags)

	for _, query := range []string{"Fuerza", " CASA "} {
		tagged, err = svc.ListWorkoutPlans(ctx, me, query)
		require.NoError(t, err)
		assert.Len(t, tagged, 1, "tag %q", query)
	}

	_, err = svc.CreateMealPlan(ctx, me, request_models.MealPlanRequest{Title: "Vacío"})
	assert.Equal(t, utils.CodeValidationError, utils.CodeOf(err))

	meal, err := svc.CreateMealPlan(ctx, me, request_models.MealPlanRequest{
		Title: "Semana",
		Meals: []request_models.PlannedMealRequest{{Name: "Tostadas", MealType: "breakfast"}},
	})
	require.NoError(t, err)
	assert.Equal(t, dm.MealBreakfast, meal.Meals[0].MealType)

	empty, err := svc.ListMealPlans(ctx, me, "inexistente")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
