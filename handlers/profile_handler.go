// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"greetme-server/db"

	"github.com/labstack/echo/v4"
)

// ProfileHandler godoc
// @Summary      Get a public profile
// @Description  Returns the public profile of a verified account. Unverified accounts are not visible.
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "Account id"
// @Success      200 {object} ProfileResponse  "Profile found"
// @Failure      404 {object} echo.HTTPError   "Account absent or unverified"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /api/profile/{id} [get]
func (a *API) ProfileHandler(c echo.Context) error {
	logger := c.Logger()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid profile id:", err)
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "User not found.",
		}
	}

	acct, err := a.Accounts.Profile(uint(id))
	if err != nil {
		if errors.Is(err, db.ErrAccountNotFound) {
			logger.Error("Profile not found or not verified")
			return &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: "User not found.",
			}
		}
		logger.Errorf("Profile fetch failed: %v", err)
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  "Failed to fetch user profile.",
			Internal: err,
		}
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		User: ProfileUser{
			ID:        acct.ID,
			Name:      acct.Name,
			Email:     acct.Email,
			Nickname:  acct.Nickname,
			CreatedAt: acct.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}
