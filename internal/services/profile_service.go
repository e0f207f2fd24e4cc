package services

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/models/request_models"
	"vitatrack/internal/repositories"
	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

const defaultUsername = "user"

type ProfileService interface {
	// EnsureProfile creates the caller's profile when it does not exist yet.
	// preferredUsername may be empty.
	EnsureProfile(ctx context.Context, identity dm.Identity, preferredUsername string) (*dm.Profile, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	GetProfile(ctx context.Context, identity dm.Identity) (*dm.Profile, error)
	UpdateProfile(ctx context.Context, identity dm.Identity, request request_models.ProfileUpdateRequest) (*dm.Profile, error)
	GetPreferences(ctx context.Context, identity dm.Identity) (*dm.Preferences, error)
	UpdatePreferences(ctx context.Context, identity dm.Identity, request request_models.PreferencesRequest) (*dm.Preferences, error)
}

type profileService struct {
	repo   repositories.ProfileRepository
	policy retry.Policy
	log    *zap.Logger
}

func NewProfileService(repo repositories.ProfileRepository, policy retry.Policy, log *zap.Logger) ProfileService {
	return &profileService{repo: repo, policy: policy, log: log}
}

func (s *profileService) EnsureProfile(ctx context.Context, identity dm.Identity, preferredUsername string) (*dm.Profile, error) {
	if err := guard(identity, ""); err != nil {
		return nil, err
	}
	existing, err := s.findProfile(ctx, identity)
	if err != nil || existing != nil {
		return existing, err
	}

	username := preferredUsername
	if username == "" {
		username = UsernameFromEmail(identity.Email)
	}

	for attempt := 0; attempt < 3; attempt++ {
		candidate := username
		taken, err := s.UsernameTaken(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if taken || attempt > 0 {
			suffix, err := utils.GenerateOtpCode(4)
			if err != nil {
				return nil, utils.Normalize(err)
			}
			candidate = username + suffix
		}

		profile := dm.Profile{ID: identity.UserID, Username: candidate, FullName: identity.FullName}
		created, err := insert(ctx, s.policy, "profile.insert", func(ctx context.Context) (*dm.Profile, error) {
			return s.repo.Insert(ctx, profile)
		})
		if err == nil {
			s.log.Info("profile created", zap.String("user_id", identity.UserID.String()), zap.String("username", candidate))
			return created, nil
		}
		if !repositories.IsDuplicate(err) {
			return nil, err
		}
		// Either a concurrent sign in created the row or the username raced.
		if existing, ferr := s.findProfile(ctx, identity); ferr != nil || existing != nil {
			return existing, ferr
		}
	}
	return nil, utils.ErrInsertFailed
}

func (s *profileService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return fetch(ctx, s.policy, "profile.username_taken", func(ctx context.Context) (bool, error) {
		return s.repo.UsernameTaken(ctx, username)
	})
}

func (s *profileService) GetProfile(ctx context.Context, identity dm.Identity) (*dm.Profile, error) {
	if err := guard(identity, ""); err != nil {
		return nil, err
	}
	profile, err := s.findProfile(ctx, identity)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.ErrNotFound
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, identity dm.Identity, request request_models.ProfileUpdateRequest) (*dm.Profile, error) {
	if err := guard(identity, request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	update := repositories.ProfileUpdate{FullName: request.FullName, AvatarURL: request.AvatarURL}
	profile, err := fetch(ctx, s.policy, "profile.update", func(ctx context.Context) (*dm.Profile, error) {
		return s.repo.Update(ctx, identity.UserID, update)
	})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.ErrNotFound
	}
	return profile, nil
}

// GetPreferences falls back to the defaults until the user saves some.
func (s *profileService) GetPreferences(ctx context.Context, identity dm.Identity) (*dm.Preferences, error) {
	if err := guard(identity, ""); err != nil {
		return nil, err
	}
	prefs, err := fetch(ctx, s.policy, "preferences.get", func(ctx context.Context) (*dm.Preferences, error) {
		return s.repo.FindPreferences(ctx, identity.UserID)
	})
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		defaults := dm.DefaultPreferences(identity.UserID)
		return &defaults, nil
	}
	return prefs, nil
}

func (s *profileService) UpdatePreferences(ctx context.Context, identity dm.Identity, request request_models.PreferencesRequest) (*dm.Preferences, error) {
	if err := guard(identity, request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	prefs := dm.Preferences{
		UserID:               identity.UserID,
		Language:             request.Language,
		NotificationsEnabled: *request.NotificationsEnabled,
		Theme:                request.Theme,
	}
	return insert(ctx, s.policy, "preferences.upsert", func(ctx context.Context) (*dm.Preferences, error) {
		return s.repo.UpsertPreferences(ctx, prefs)
	})
}

func (s *profileService) findProfile(ctx context.Context, identity dm.Identity) (*dm.Profile, error) {
	return fetch(ctx, s.policy, "profile.get", func(ctx context.Context) (*dm.Profile, error) {
		return s.repo.FindByID(ctx, identity.UserID)
	})
}

// UsernameFromEmail is the local part of the address reduced to letters,
// digits, dots and underscores; "user" when nothing is left.
func UsernameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return defaultUsername
	}
	return b.String()
}
