package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vitatrack/internal/models/db_models"
	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/repositories"
	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

func testPolicy() retry.Policy {
	return retry.Policy{MaxRetries: 3, InitialDelay: time.Millisecond, Logger: zap.NewNop()}
}

func sessionFor(id uuid.UUID) dm.Identity {
	return dm.Identity{UserID: id, Email: "ana.garcia@example.com", FullName: "Ana"}
}

// failures returns the queued error for the next call, if any.
type failures struct {
	mu    sync.Mutex
	queue []error
}

func (f *failures) next() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) == 0 {
		return nil
	}
	err := f.queue[0]
	f.queue = f.queue[1:]
	return err
}

type fakeExerciseRepo struct {
	failures
	rows        []dm.ExerciseLog
	insertedIDs []uuid.UUID
	dropInsert  bool
}

func (f *fakeExerciseRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dm.ExerciseLog, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	out := make([]dm.ExerciseLog, 0)
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeExerciseRepo) Insert(ctx context.Context, log dm.ExerciseLog) (*dm.ExerciseLog, error) {
	f.insertedIDs = append(f.insertedIDs, log.ID)
	if err := f.next(); err != nil {
		return nil, err
	}
	if f.dropInsert {
		return nil, nil
	}
	log.CreatedAt = time.Now()
	f.rows = append(f.rows, log)
	return &log, nil
}

type fakeNutritionRepo struct {
	failures
	rows []dm.NutritionLog
}

func (f *fakeNutritionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dm.NutritionLog, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	out := make([]dm.NutritionLog, 0)
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeNutritionRepo) Insert(ctx context.Context, log dm.NutritionLog) (*dm.NutritionLog, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	log.CreatedAt = time.Now()
	f.rows = append(f.rows, log)
	return &log, nil
}

type fakeWellnessRepo struct {
	failures
	rows []dm.WellnessEntry
}

func (f *fakeWellnessRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dm.WellnessEntry, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	out := make([]dm.WellnessEntry, 0)
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].Meta().UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeWellnessRepo) Insert(ctx context.Context, entry dm.WellnessEntry) (dm.WellnessEntry, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	f.rows = append(f.rows, entry)
	return entry, nil
}

type fakePlanRepo struct {
	workouts []dm.WorkoutPlan
	meals    []dm.MealPlan
}

func (f *fakePlanRepo) ListWorkoutPlans(ctx context.Context, userID uuid.UUID) ([]dm.WorkoutPlan, error) {
	out := make([]dm.WorkoutPlan, 0)
	for i := len(f.workouts) - 1; i >= 0; i-- {
		if f.workouts[i].UserID == userID {
			out = append(out, f.workouts[i])
		}
	}
	return out, nil
}

func (f *fakePlanRepo) InsertWorkoutPlan(ctx context.Context, plan dm.WorkoutPlan) (*dm.WorkoutPlan, error) {
	f.workouts = append(f.workouts, plan)
	return &plan, nil
}

func (f *fakePlanRepo) ListMealPlans(ctx context.Context, userID uuid.UUID) ([]dm.MealPlan, error) {
	out := make([]dm.MealPlan, 0)
	for i := len(f.meals) - 1; i >= 0; i-- {
		if f.meals[i].UserID == userID {
			out = append(out, f.meals[i])
		}
	}
	return out, nil
}

func (f *fakePlanRepo) InsertMealPlan(ctx context.Context, plan dm.MealPlan) (*dm.MealPlan, error) {
	f.meals = append(f.meals, plan)
	return &plan, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]dm.Profile
	prefs    map[uuid.UUID]dm.Preferences
	inserts  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]dm.Profile{}, prefs: map[uuid.UUID]dm.Preferences{}}
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*dm.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProfileRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProfileRepo) Insert(ctx context.Context, profile dm.Profile) (*dm.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[profile.ID]; ok {
		return nil, utils.DatabaseError("duplicate", gorm.ErrDuplicatedKey)
	}
	f.inserts++
	profile.CreatedAt = time.Now()
	f.profiles[profile.ID] = profile
	return &profile, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, id uuid.UUID, update repositories.ProfileUpdate) (*dm.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	if update.FullName != nil {
		p.FullName = *update.FullName
	}
	if update.AvatarURL != nil {
		p.AvatarURL = update.AvatarURL
	}
	f.profiles[id] = p
	return &p, nil
}

func (f *fakeProfileRepo) FindPreferences(ctx context.Context, userID uuid.UUID) (*dm.Preferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.prefs[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProfileRepo) UpsertPreferences(ctx context.Context, prefs dm.Preferences) (*dm.Preferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs[prefs.UserID] = prefs
	return &prefs, nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[uuid.UUID]*db_models.Account{}}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == account.Email {
			return utils.DatabaseError("duplicate", gorm.ErrDuplicatedKey)
		}
	}
	copied := *account
	f.accounts[account.ID] = &copied
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[id]; ok {
		a.PasswordHash = hash
	}
	return nil
}

type fakeMail struct {
	mu    sync.Mutex
	codes map[string]string
}

func (f *fakeMail) SendPasswordResetCode(to, code string, validFor time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.codes == nil {
		f.codes = map[string]string{}
	}
	f.codes[to] = code
	return nil
}
