package controllers

import (
	"github.com/gin-gonic/gin"

	"vitatrack/internal/models/request_models"
	"vitatrack/internal/models/response_models"
	"vitatrack/internal/services"
	"vitatrack/pkg/middleware"
	"vitatrack/pkg/utils"
)

// LogController serves the exercise, meal and wellness logs.
type LogController struct {
	exerciseService  services.ExerciseService
	nutritionService services.NutritionService
	wellnessService  services.WellnessService
}

func NewLogController(
	exerciseService services.ExerciseService,
	nutritionService services.NutritionService,
	wellnessService services.WellnessService,
) *LogController {
	return &LogController{
		exerciseService:  exerciseService,
		nutritionService: nutritionService,
		wellnessService:  wellnessService,
	}
}

// ListExercises godoc
// @Summary List the caller's exercise sessions, newest first
// @Tags Exercises
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /exercises [get]
func (l *LogController) ListExercises(c *gin.Context) {
	logs, err := l.exerciseService.ListExercises(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, logs, "")
}

// LogExercise godoc
// @Summary Record an exercise session
// @Description Distance is derived from gps_data when omitted.
// @Tags Exercises
// @Security BearerAuth
// @Param request body request_models.ExerciseRequest true "Exercise"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /exercises [post]
func (l *LogController) LogExercise(c *gin.Context) {
	var req request_models.ExerciseRequest
	if !bindJSON(c, &req) {
		return
	}
	saved, err := l.exerciseService.LogExercise(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, saved, "Ejercicio registrado")
}

func (l *LogController) ListMeals(c *gin.Context) {
	logs, err := l.nutritionService.ListMeals(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, logs, "")
}

func (l *LogController) LogMeal(c *gin.Context) {
	var req request_models.MealRequest
	if !bindJSON(c, &req) {
		return
	}
	saved, err := l.nutritionService.LogMeal(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, saved, "Comida registrada")
}

func (l *LogController) ListWellness(c *gin.Context) {
	entries, err := l.wellnessService.ListWellness(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewWellnessEntryResponses(entries), "")
}

func (l *LogController) LogMood(c *gin.Context) {
	var req request_models.MoodRequest
	if !bindJSON(c, &req) {
		return
	}
	saved, err := l.wellnessService.LogMood(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, response_models.NewWellnessEntryResponse(saved), "Estado de ánimo registrado")
}

func (l *LogController) LogSleep(c *gin.Context) {
	var req request_models.SleepRequest
	if !bindJSON(c, &req) {
		return
	}
	saved, err := l.wellnessService.LogSleep(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, response_models.NewWellnessEntryResponse(saved), "Sueño registrado")
}

func (l *LogController) LogStress(c *gin.Context) {
	var req request_models.StressRequest
	if !bindJSON(c, &req) {
		return
	}
	saved, err := l.wellnessService.LogStress(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, response_models.NewWellnessEntryResponse(saved), "Estrés registrado")
}

func (l *LogController) WellnessStats(c *gin.Context) {
	stats, err := l.wellnessService.Stats(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "")
}
