package routes

import (
	"maintenance-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runUsageRouter(api *echo.Group, ctrl *controllers.UsageController) {
	api.POST("/usage", ctrl.RecordVisit)
	api.POST("/usage/auto", ctrl.AutoSweep)
}
