// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"net/http"

	"greetme-server/commons"
	"greetme-server/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, api *handlers.API) {
	commons.Logger.Debug("Registering API routes")

	e.GET("/health", api.HealthHandler)

	group := e.Group("/api")
	group.POST("/register", api.RegisterHandler)
	group.GET("/verify", api.VerifyHandler)
	group.POST("/login", api.LoginHandler)
	group.GET("/profile/:id", api.ProfileHandler)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]any{
			"error":  "Route not found",
			"path":   c.Request().URL.Path,
			"method": c.Request().Method,
		})
	})

	commons.Logger.Info("API routes registered successfully")
}
