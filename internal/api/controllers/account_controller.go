package controllers

import (
	"github.com/gin-gonic/gin"

	"vitatrack/internal/models/request_models"
	"vitatrack/internal/models/response_models"
	"vitatrack/internal/services"
	"vitatrack/pkg/middleware"
	"vitatrack/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// bindJSON renders binding failures as VALIDATION_ERROR and reports
// whether the handler may continue.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.HandleServiceError(c, utils.BindingError(err))
		return false
	}
	return true
}

// Register godoc
// @Summary Register a new account
// @Description Create the account and its profile, then open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := a.accountService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, session, "Cuenta creada correctamente")
}

// Login godoc
// @Summary Login to an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := a.accountService.SignIn(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Sesión iniciada")
}

// Logout godoc
// @Summary Revoke the current token
// @Tags Auth
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	if err := a.accountService.SignOut(c.Request.Context(), middleware.AccessToken(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Sesión cerrada")
}

func (a *AccountController) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	utils.RespondSuccess(c, response_models.CurrentUserResponse{
		ID:       identity.UserID.String(),
		Email:    identity.Email,
		FullName: identity.FullName,
	}, "")
}

// ForgotPassword godoc
// @Summary Request a password reset code
// @Description Mails a six digit code when the address exists. The answer is the same either way.
// @Tags Auth
// @Param request body request_models.RequestForgotPassword true "Email"
// @Router /auth/forgot-password [post]
func (a *AccountController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if !bindJSON(c, &req) {
		return
	}

	if err := a.accountService.ForgotPassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Si el correo existe, recibirás un código para restablecer tu contraseña")
}

func (a *AccountController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.accountService.ResetPassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Contraseña actualizada")
}

func (a *AccountController) ChangePassword(c *gin.Context) {
	var req request_models.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.accountService.ChangePassword(c.Request.Context(), middleware.CurrentIdentity(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Contraseña actualizada")
}
