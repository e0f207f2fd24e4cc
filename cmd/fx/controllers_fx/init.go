package controllers_fx

import (
	"go.uber.org/fx"

	"vitatrack/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewLogController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewDashboardController))
