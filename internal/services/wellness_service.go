package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/models/request_models"
	"vitatrack/internal/repositories"
	"vitatrack/internal/stats"
	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

type WellnessService interface {
	ListWellness(ctx context.Context, identity dm.Identity) ([]dm.WellnessEntry, error)
	LogMood(ctx context.Context, identity dm.Identity, request request_models.MoodRequest) (dm.WellnessEntry, error)
	LogSleep(ctx context.Context, identity dm.Identity, request request_models.SleepRequest) (dm.WellnessEntry, error)
	LogStress(ctx context.Context, identity dm.Identity, request request_models.StressRequest) (dm.WellnessEntry, error)
	Stats(ctx context.Context, identity dm.Identity) (stats.WellnessStats, error)
}

type wellnessService struct {
	repo   repositories.WellnessRepository
	policy retry.Policy
}

func NewWellnessService(repo repositories.WellnessRepository, policy retry.Policy) WellnessService {
	return &wellnessService{repo: repo, policy: policy}
}

func (s *wellnessService) ListWellness(ctx context.Context, identity dm.Identity) ([]dm.WellnessEntry, error) {
	if err := guard(identity, ""); err != nil {
		return nil, err
	}
	return fetch(ctx, s.policy, "wellness.list", func(ctx context.Context) ([]dm.WellnessEntry, error) {
		return s.repo.ListByUser(ctx, identity.UserID)
	})
}

func (s *wellnessService) Stats(ctx context.Context, identity dm.Identity) (stats.WellnessStats, error) {
	entries, err := s.ListWellness(ctx, identity)
	if err != nil {
		return stats.WellnessStats{}, err
	}
	return stats.ComputeWellnessStats(entries), nil
}

func (s *wellnessService) LogMood(ctx context.Context, identity dm.Identity, request request_models.MoodRequest) (dm.WellnessEntry, error) {
	if err := guard(identity, request.UserID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(request.Mood) == "" {
		return nil, utils.ValidationError("Por favor selecciona un estado de ánimo")
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	return s.save(ctx, dm.MoodEntry{
		EntryMeta: meta(identity, request.EnergyLevel, request.Notes),
		Mood:      request.Mood,
	})
}

func (s *wellnessService) LogSleep(ctx context.Context, identity dm.Identity, request request_models.SleepRequest) (dm.WellnessEntry, error) {
	if err := guard(identity, request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	return s.save(ctx, dm.SleepEntry{
		EntryMeta: meta(identity, energyOrDefault(request.EnergyLevel), request.Notes),
		Hours:     request.Hours,
		Quality:   request.Quality,
	})
}

func (s *wellnessService) LogStress(ctx context.Context, identity dm.Identity, request request_models.StressRequest) (dm.WellnessEntry, error) {
	if err := guard(identity, request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	return s.save(ctx, dm.StressEntry{
		EntryMeta: meta(identity, energyOrDefault(request.EnergyLevel), request.Notes),
		Level:     request.Level,
	})
}

func (s *wellnessService) save(ctx context.Context, entry dm.WellnessEntry) (dm.WellnessEntry, error) {
	saved, err := retry.Do(ctx, s.policy, "wellness.insert", func(ctx context.Context) (dm.WellnessEntry, error) {
		return s.repo.Insert(ctx, entry)
	})
	if err != nil {
		return nil, utils.Normalize(err)
	}
	if saved == nil {
		return nil, utils.ErrInsertFailed
	}
	return saved, nil
}

func meta(identity dm.Identity, energy int, notes *string) dm.EntryMeta {
	return dm.EntryMeta{
		ID:          uuid.New(),
		UserID:      identity.UserID,
		EnergyLevel: energy,
		Notes:       notes,
	}
}

func energyOrDefault(level int) int {
	if level == 0 {
		return dm.DefaultEnergyLevel
	}
	return level
}
