package routes

import (
	"maintenance-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(api *echo.Group, ctrl *controllers.DashboardController) {
	api.GET("/companies/:slug/zones", ctrl.GetZones)
	api.GET("/companies/:slug/zones/:zone/equipment", ctrl.GetZoneEquipment)
	api.GET("/companies/:slug/equipment/:code", ctrl.GetEquipmentDetail)
}
