package routes

import (
	"net/http"

	"maintenance-system/internal/repositories"

	"github.com/labstack/echo/v4"
)

func runHealthRouter(e *echo.Echo, store *repositories.CachedSheetStore) {
	e.GET("/healthz", func(ctx echo.Context) error {
		if store.Offline() {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"store":  "offline",
			})
		}
		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "ok",
			"store":  "online",
		})
	})
}
