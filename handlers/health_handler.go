// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler godoc
// @Summary      Health check
// @Produce      json
// @Success      200 {object} HealthResponse "Service is up"
// @Router       /health [get]
func (a *API) HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "GreetMe API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
