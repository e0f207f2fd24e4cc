package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vitatrack/internal/api/controllers"
	"vitatrack/internal/infra"
	"vitatrack/pkg/middleware"
	"vitatrack/pkg/utils"
)

type Controllers struct {
	Account   *controllers.AccountController
	Profile   *controllers.ProfileController
	Logs      *controllers.LogController
	Plans     *controllers.PlanController
	Dashboard *controllers.DashboardController
}

func ProvideRouter(
	cfg infra.Config,
	log *zap.Logger,
	db *gorm.DB,
	resolver middleware.IdentityResolver,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	logController *controllers.LogController,
	planController *controllers.PlanController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/healthz", healthHandler(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r, middleware.JWTAuthMiddleware(resolver), Controllers{
		Account:   accountController,
		Profile:   profileController,
		Logs:      logController,
		Plans:     planController,
		Dashboard: dashboardController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, ctl Controllers) {
	authGroup := r.Group("/auth")
	authGroup.POST("/register", ctl.Account.Register)
	authGroup.POST("/login", ctl.Account.Login)
	authGroup.POST("/forgot-password", ctl.Account.ForgotPassword)
	authGroup.POST("/reset-password", ctl.Account.ResetPassword)
	authGroup.POST("/logout", auth, ctl.Account.Logout)
	authGroup.GET("/me", auth, ctl.Account.Me)
	authGroup.POST("/change-password", auth, ctl.Account.ChangePassword)

	protected := r.Group("", auth)

	protected.GET("/profile", ctl.Profile.GetProfile)
	protected.PUT("/profile", ctl.Profile.UpdateProfile)
	protected.GET("/profile/preferences", ctl.Profile.GetPreferences)
	protected.PUT("/profile/preferences", ctl.Profile.UpdatePreferences)

	protected.GET("/exercises", ctl.Logs.ListExercises)
	protected.POST("/exercises", ctl.Logs.LogExercise)
	protected.GET("/meals", ctl.Logs.ListMeals)
	protected.POST("/meals", ctl.Logs.LogMeal)

	wellness := protected.Group("/wellness")
	wellness.GET("", ctl.Logs.ListWellness)
	wellness.GET("/stats", ctl.Logs.WellnessStats)
	wellness.POST("/mood", ctl.Logs.LogMood)
	wellness.POST("/sleep", ctl.Logs.LogSleep)
	wellness.POST("/stress", ctl.Logs.LogStress)

	plans := protected.Group("/plans")
	plans.GET("/workouts", ctl.Plans.ListWorkoutPlans)
	plans.POST("/workouts", ctl.Plans.CreateWorkoutPlan)
	plans.GET("/meals", ctl.Plans.ListMealPlans)
	plans.POST("/meals", ctl.Plans.CreateMealPlan)

	protected.GET("/dashboard", ctl.Dashboard.GetDashboard)
	protected.GET("/dashboard/weekly", ctl.Dashboard.GetWeeklySummary)
	protected.GET("/tips/daily", ctl.Dashboard.GetDailyTip)
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			utils.Logger(c).Warn("health check failed", zap.Error(err))
			utils.HandleServiceError(c, utils.NewAppError(utils.CodeNetworkError, "database unreachable", err))
			return
		}
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	}
}
