package routes

import (
	"maintenance-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTaskRouter(api *echo.Group, ctrl *controllers.TaskController) {
	api.GET("/companies/:company/tasks", ctrl.GetTasks)
	api.POST("/tasks", ctrl.CreateTask)
	api.PUT("/companies/:company/tasks/:id/complete", ctrl.CompleteTask)
}
