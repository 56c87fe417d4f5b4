package routes

import (
	"maintenance-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runChatRouter(api *echo.Group, ctrl *controllers.ChatController) {
	api.GET("/companies/:company/chat", ctrl.GetFeed)
	api.POST("/chat", ctrl.PostMessage)
}
