package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/models/request_models"
	"vitatrack/pkg/utils"
)

func TestUsernameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "ana.garcia@example.com", want: "ana.garcia"},
		{email: "Luis+gym@example.com", want: "luisgym"},
		{email: "@example.com", want: "user"},
		{email: "", want: "user"},
		{email: "josé@example.com", want: "jos"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, UsernameFromEmail(tt.email))
		})
	}
}

func TestEnsureProfile_CreatesOnce(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, testPolicy(), zap.NewNop())
	me := sessionFor(uuid.New())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.EnsureProfile(context.Background(), me, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, "ana.garcia", repo.profiles[me.UserID].Username)
}

func TestEnsureProfile_UsernameCollisionGetsSuffix(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, testPolicy(), zap.NewNop())
	ctx := context.Background()

	first, err := svc.EnsureProfile(ctx, sessionFor(uuid.New()), "")
	require.NoError(t, err)
	second, err := svc.EnsureProfile(ctx, sessionFor(uuid.New()), "")
	require.NoError(t, err)

	assert.Equal(t, "ana.garcia", first.Username)
	assert.NotEqual(t, first.Username, second.Username)
	assert.True(t, strings.HasPrefix(second.Username, "ana.garcia"))
}

func TestProfile_GetAndUpdate(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, testPolicy(), zap.NewNop())
	me := sessionFor(uuid.New())
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, me)
	assert.Equal(t, utils.CodeNotFound, utils.CodeOf(err))

	_, err = svc.EnsureProfile(ctx, me, "ana")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, me, request_models.ProfileUpdateRequest{UserID: uuid.NewString(), FullName: ptr("X")})
	assert.Equal(t, utils.CodeInvalidUser, utils.CodeOf(err))
	assert.Equal(t, "Ana", repo.profiles[me.UserID].FullName)

	_, err = svc.UpdateProfile(ctx, me, request_models.ProfileUpdateRequest{AvatarURL: ptr("no es url")})
	assert.Equal(t, utils.CodeValidationError, utils.CodeOf(err))

	updated, err := svc.UpdateProfile(ctx, me, request_models.ProfileUpdateRequest{FullName: ptr("Ana García")})
	require.NoError(t, err)
	assert.Equal(t, "Ana García", updated.FullName)
}

func TestPreferences_DefaultsThenUpdate(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), testPolicy(), zap.NewNop())
	me := sessionFor(uuid.New())
	ctx := context.Background()

	prefs, err := svc.GetPreferences(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, dm.DefaultPreferences(me.UserID), *prefs)

	_, err = svc.UpdatePreferences(ctx, me, request_models.PreferencesRequest{Language: "fr", Theme: "dark", NotificationsEnabled: ptr(true)})
	assert.Equal(t, utils.CodeValidationError, utils.CodeOf(err))

	_, err = svc.UpdatePreferences(ctx, me, request_models.PreferencesRequest{Language: "en", Theme: "dark", NotificationsEnabled: ptr(false)})
	require.NoError(t, err)

	prefs, err = svc.GetPreferences(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, "en", prefs.Language)
	assert.False(t, prefs.NotificationsEnabled)
}
