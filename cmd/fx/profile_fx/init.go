package profile_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vitatrack/internal/repositories"
	"vitatrack/internal/services"
	"vitatrack/pkg/retry"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(repo repositories.ProfileRepository, policy retry.Policy, log *zap.Logger) services.ProfileService {
	return services.NewProfileService(repo, policy, log.Named("profile"))
}
