package controllers

import (
	"github.com/gin-gonic/gin"

	"vitatrack/internal/models/request_models"
	"vitatrack/internal/services"
	"vitatrack/pkg/middleware"
	"vitatrack/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileService
}

func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

func (p *ProfileController) GetProfile(c *gin.Context) {
	profile, err := p.profileService.GetProfile(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "")
}

func (p *ProfileController) UpdateProfile(c *gin.Context) {
	var req request_models.ProfileUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := p.profileService.UpdateProfile(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Perfil actualizado")
}

func (p *ProfileController) GetPreferences(c *gin.Context) {
	prefs, err := p.profileService.GetPreferences(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prefs, "")
}

func (p *ProfileController) UpdatePreferences(c *gin.Context) {
	var req request_models.PreferencesRequest
	if !bindJSON(c, &req) {
		return
	}
	prefs, err := p.profileService.UpdatePreferences(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prefs, "Preferencias guardadas")
}
