package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	dm "vitatrack/internal/models/domain_models"
	resp "vitatrack/internal/models/response_models"
	"vitatrack/internal/stats"
	"vitatrack/pkg/utils"
)

type DashboardService interface {
	// BuildDashboard fetches the three log collections concurrently and
	// fails as a whole when any fetch fails.
	BuildDashboard(ctx context.Context, identity dm.Identity) (*resp.DashboardReport, error)
	WeeklySummary(ctx context.Context, identity dm.Identity) (stats.WeeklySummary, error)
}

type dashboardService struct {
	exercises ExerciseService
	meals     NutritionService
	wellness  WellnessService
	location  *time.Location
	now       func() time.Time
}

func NewDashboardService(exercises ExerciseService, meals NutritionService, wellness WellnessService, location *time.Location) DashboardService {
	return &dashboardService{
		exercises: exercises,
		meals:     meals,
		wellness:  wellness,
		location:  location,
		now:       time.Now,
	}
}

type logBundle struct {
	exercises []dm.ExerciseLog
	meals     []dm.NutritionLog
	wellness  []dm.WellnessEntry
}

func (s *dashboardService) loadAll(ctx context.Context, identity dm.Identity) (*logBundle, error) {
	var b logBundle
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		b.exercises, err = s.exercises.ListExercises(gctx, identity)
		return err
	})
	g.Go(func() (err error) {
		b.meals, err = s.meals.ListMeals(gctx, identity)
		return err
	})
	g.Go(func() (err error) {
		b.wellness, err = s.wellness.ListWellness(gctx, identity)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, utils.Normalize(err)
	}
	return &b, nil
}

func (s *dashboardService) BuildDashboard(ctx context.Context, identity dm.Identity) (*resp.DashboardReport, error) {
	b, err := s.loadAll(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &resp.DashboardReport{
		RecentExercises: stats.Latest(b.exercises, resp.RecentItems),
		RecentMeals:     stats.Latest(b.meals, resp.RecentItems),
		RecentWellness:  resp.NewWellnessEntryResponses(stats.Latest(b.wellness, resp.RecentItems)),
		Weekly:          stats.ComputeWeeklySummary(s.now(), s.location, b.exercises, b.meals, b.wellness),
		Wellness:        stats.ComputeWellnessStats(b.wellness),
	}, nil
}

func (s *dashboardService) WeeklySummary(ctx context.Context, identity dm.Identity) (stats.WeeklySummary, error) {
	b, err := s.loadAll(ctx, identity)
	if err != nil {
		return stats.WeeklySummary{}, err
	}
	return stats.ComputeWeeklySummary(s.now(), s.location, b.exercises, b.meals, b.wellness), nil
}
