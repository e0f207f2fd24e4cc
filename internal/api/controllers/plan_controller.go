package controllers

import (
	"github.com/gin-gonic/gin"

	"vitatrack/internal/models/request_models"
	"vitatrack/internal/services"
	"vitatrack/pkg/middleware"
	"vitatrack/pkg/utils"
)

type PlanController struct {
	planService services.PlanService
}

func NewPlanController(planService services.PlanService) *PlanController {
	return &PlanController{planService: planService}
}

// ListWorkoutPlans godoc
// @Summary List workout plans, optionally filtered by tag
// @Tags Plans
// @Security BearerAuth
// @Param tag query string false "Tag"
// @Router /plans/workouts [get]
func (p *PlanController) ListWorkoutPlans(c *gin.Context) {
	plans, err := p.planService.ListWorkoutPlans(c.Request.Context(), middleware.CurrentIdentity(c), c.Query("tag"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "")
}

func (p *PlanController) CreateWorkoutPlan(c *gin.Context) {
	var req request_models.WorkoutPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := p.planService.CreateWorkoutPlan(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, plan, "Plan de entrenamiento creado")
}

func (p *PlanController) ListMealPlans(c *gin.Context) {
	plans, err := p.planService.ListMealPlans(c.Request.Context(), middleware.CurrentIdentity(c), c.Query("tag"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "")
}

func (p *PlanController) CreateMealPlan(c *gin.Context) {
	var req request_models.MealPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := p.planService.CreateMealPlan(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, plan, "Plan de comidas creado")
}
