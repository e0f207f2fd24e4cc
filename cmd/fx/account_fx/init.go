package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vitatrack/internal/infra"
	"vitatrack/internal/repositories"
	"vitatrack/internal/services"
	mem "vitatrack/pkg/memcache"
	"vitatrack/pkg/middleware"
	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenIssuer, provideIdentityResolver)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg infra.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	profiles services.ProfileService,
	mailService services.IMailService,
	resetCodes mem.ResetTokenStore,
	revoked mem.RevocationStore,
	tokens *utils.TokenIssuer,
	policy retry.Policy,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, profiles, mailService, resetCodes, revoked, tokens, policy, log.Named("account"))
}

func provideIdentityResolver(accounts services.AccountServiceInterface) middleware.IdentityResolver {
	return accounts
}
