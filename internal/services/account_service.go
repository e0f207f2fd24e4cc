package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vitatrack/internal/models/db_models"
	dm "vitatrack/internal/models/domain_models"
	"vitatrack/internal/models/request_models"
	"vitatrack/internal/models/response_models"
	"vitatrack/internal/repositories"
	mem "vitatrack/pkg/memcache"
	"vitatrack/pkg/retry"
	"vitatrack/pkg/utils"
)

const resetCodeTTL = 15 * time.Minute

// AccountServiceInterface is the session collaborator. CurrentUser is the
// only call the data access services depend on, through the middleware.
type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.SessionResponse, error)
	SignIn(ctx context.Context, request request_models.LoginRequest) (*response_models.SessionResponse, error)
	SignOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (dm.Identity, error)
	ForgotPassword(ctx context.Context, request request_models.RequestForgotPassword) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, identity dm.Identity, request request_models.ChangePasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	profiles    ProfileService
	mailService IMailService
	resetCodes  mem.ResetTokenStore
	revoked     mem.RevocationStore
	tokens      *utils.TokenIssuer
	policy      retry.Policy
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	profiles ProfileService,
	mailService IMailService,
	resetCodes mem.ResetTokenStore,
	revoked mem.RevocationStore,
	tokens *utils.TokenIssuer,
	policy retry.Policy,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		profiles:    profiles,
		mailService: mailService,
		resetCodes:  resetCodes,
		revoked:     revoked,
		tokens:      tokens,
		policy:      policy,
		log:         log,
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.SessionResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	email := normalizeEmail(request.Email)
	username := strings.ToLower(request.Username)

	if username != "" {
		taken, err := a.profiles.UsernameTaken(ctx, username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, utils.ValidationError("El nombre de usuario ya está en uso")
		}
	}

	existing, err := a.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ValidationError("El correo electrónico ya está registrado")
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.Normalize(err)
	}

	account := &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     strings.TrimSpace(request.FullName),
	}
	err = retry.Exec(ctx, a.policy, "account.insert", func(ctx context.Context) error {
		return a.accountRepo.Insert(ctx, account)
	})
	if err != nil {
		if repositories.IsDuplicate(err) {
			return nil, utils.ValidationError("El correo electrónico ya está registrado")
		}
		return nil, utils.Normalize(err)
	}

	return a.openSession(ctx, account, username)
}

func (a *AccountService) SignIn(ctx context.Context, request request_models.LoginRequest) (*response_models.SessionResponse, error) {
	startTime := time.Now()

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}
	account, err := a.findByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.AuthError("Correo o contraseña incorrectos", nil)
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.AuthError("Correo o contraseña incorrectos", err)
	}

	session, err := a.openSession(ctx, account, "")
	if err != nil {
		return nil, err
	}
	a.log.Debug("sign in", zap.String("user_id", account.ID.String()), zap.Duration("took", time.Since(startTime)))
	return session, nil
}

// openSession makes sure the profile exists, then issues the token.
func (a *AccountService) openSession(ctx context.Context, account *db_models.Account, username string) (*response_models.SessionResponse, error) {
	identity := identityOf(account)
	profile, err := a.profiles.EnsureProfile(ctx, identity, username)
	if err != nil {
		return nil, err
	}

	token, claims, err := a.tokens.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, utils.AuthError("No se pudo iniciar sesión", err)
	}
	return &response_models.SessionResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Profile:   profile,
	}, nil
}

func (a *AccountService) SignOut(ctx context.Context, token string) error {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return utils.AuthError("Sesión no válida", err)
	}
	a.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
	return nil
}

func (a *AccountService) CurrentUser(ctx context.Context, token string) (dm.Identity, error) {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return dm.Identity{}, utils.AuthError("Sesión no válida o caducada", err)
	}
	if a.revoked.IsRevoked(claims.ID) {
		return dm.Identity{}, utils.AuthError("La sesión se ha cerrado", nil)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return dm.Identity{}, utils.AuthError("Sesión no válida", err)
	}

	account, err := fetch(ctx, a.policy, "account.get", func(ctx context.Context) (*db_models.Account, error) {
		return a.accountRepo.FindByID(ctx, userID)
	})
	if err != nil {
		return dm.Identity{}, err
	}
	if account == nil {
		return dm.Identity{}, utils.ErrUserNotFound
	}
	return identityOf(account), nil
}

// ForgotPassword answers the same way for unknown addresses.
func (a *AccountService) ForgotPassword(ctx context.Context, request request_models.RequestForgotPassword) error {
	if err := utils.ValidateStruct(request); err != nil {
		return err
	}
	email := normalizeEmail(request.Email)
	account, err := a.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		a.log.Info("password reset for unknown email")
		return nil
	}

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return utils.Normalize(err)
	}
	a.resetCodes.Set(email, code, resetCodeTTL)

	if err := a.mailService.SendPasswordResetCode(email, code, resetCodeTTL); err != nil {
		a.log.Error("send reset code", zap.String("user_id", account.ID.String()), zap.Error(err))
		return utils.NewAppError(utils.CodeAPIError, "No se pudo enviar el correo", err)
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	if err := utils.ValidateStruct(request); err != nil {
		return err
	}
	email := normalizeEmail(request.Email)
	if !a.resetCodes.Consume(email, request.Code) {
		return utils.ValidationError("El código no es válido o ha caducado")
	}
	account, err := a.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.ErrUserNotFound
	}
	return a.setPassword(ctx, account.ID, request.NewPassword)
}

func (a *AccountService) ChangePassword(ctx context.Context, identity dm.Identity, request request_models.ChangePasswordRequest) error {
	if err := guard(identity, ""); err != nil {
		return err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return err
	}
	account, err := fetch(ctx, a.policy, "account.get", func(ctx context.Context) (*db_models.Account, error) {
		return a.accountRepo.FindByID(ctx, identity.UserID)
	})
	if err != nil {
		return err
	}
	if account == nil {
		return utils.ErrUserNotFound
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.CurrentPassword); err != nil {
		return utils.AuthError("La contraseña actual no es correcta", err)
	}
	return a.setPassword(ctx, account.ID, request.NewPassword)
}

func (a *AccountService) setPassword(ctx context.Context, id uuid.UUID, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return utils.Normalize(err)
	}
	err = retry.Exec(ctx, a.policy, "account.update_password", func(ctx context.Context) error {
		return a.accountRepo.UpdatePasswordHash(ctx, id, hash)
	})
	return utils.Normalize(err)
}

func (a *AccountService) findByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return fetch(ctx, a.policy, "account.find_by_email", func(ctx context.Context) (*db_models.Account, error) {
		return a.accountRepo.FindByEmail(ctx, email)
	})
}

func identityOf(account *db_models.Account) dm.Identity {
	return dm.Identity{UserID: account.ID, Email: account.Email, FullName: account.FullName}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
