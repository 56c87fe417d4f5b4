package routes

import (
	"maintenance-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runCompanyRouter(api *echo.Group, ctrl *controllers.CompanyController) {
	api.GET("/companies", ctrl.GetCompanies)
	api.GET("/companies/:slug", ctrl.FindCompany)
}
