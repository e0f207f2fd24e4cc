package services

import (
	"context"
	"math"

	"github.com/google/uuid"

	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/models/request_models"
	"vitatrack/internal/repositories"
	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

type ExerciseService interface {
	ListExercises(ctx context.Context, identity dm.Identity) ([]dm.ExerciseLog, error)
	LogExercise(ctx context.Context, identity dm.Identity, request request_models.ExerciseRequest) (*dm.ExerciseLog, error)
}

type exerciseService struct {
	repo   repositories.ExerciseRepository
	policy retry.Policy
}

func NewExerciseService(repo repositories.ExerciseRepository, policy retry.Policy) ExerciseService {
	return &exerciseService{repo: repo, policy: policy}
}

func (s *exerciseService) ListExercises(ctx context.Context, identity dm.Identity) ([]dm.ExerciseLog, error) {
	if err := guard(identity, ""); err != nil {
		return nil, err
	}
	return fetch(ctx, s.policy, "exercise.list", func(ctx context.Context) ([]dm.ExerciseLog, error) {
		return s.repo.ListByUser(ctx, identity.UserID)
	})
}

func (s *exerciseService) LogExercise(ctx context.Context, identity dm.Identity, request request_models.ExerciseRequest) (*dm.ExerciseLog, error) {
	if err := guard(identity, request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	if err := validateTrack(request.GPSData); err != nil {
		return nil, err
	}

	log := dm.ExerciseLog{
		ID:              uuid.New(),
		UserID:          identity.UserID,
		ActivityType:    dm.ActivityType(request.ActivityType),
		DurationMinutes: request.Duration,
		DistanceKm:      request.Distance,
		Calories:        request.Calories,
		GPSTrack:        request.GPSData,
		Notes:           request.Notes,
	}
	if log.DistanceKm == nil && log.GPSTrack != nil && len(log.GPSTrack.Coordinates) >= 2 {
		km := math.Round(log.GPSTrack.DistanceKm()*100) / 100
		log.DistanceKm = &km
	}

	return insert(ctx, s.policy, "exercise.insert", func(ctx context.Context) (*dm.ExerciseLog, error) {
		return s.repo.Insert(ctx, log)
	})
}

func validateTrack(track *dm.GPSTrack) error {
	if track == nil {
		return nil
	}
	if len(track.Elevation) > 0 && len(track.Elevation) != len(track.Coordinates) {
		return utils.ValidationError("La elevación debe tener un valor por cada coordenada")
	}
	for _, c := range track.Coordinates {
		if c[0] < -180 || c[0] > 180 || c[1] < -90 || c[1] > 90 {
			return utils.ValidationError("Coordenadas GPS fuera de rango")
		}
	}
	return nil
}
