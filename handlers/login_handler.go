// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"greetme-server/accounts"

	"github.com/labstack/echo/v4"
)

// LoginHandler godoc
// @Summary      Login with email and password
// @Description  Authenticates a verified account. No session token is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  LoginRequest  true  "Login payload"
// @Success      200 {object} LoginResponse    "Login successful"
// @Failure      400 {object} echo.HTTPError   "Missing email or password"
// @Failure      401 {object} echo.HTTPError   "Bad credentials or unverified account"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /api/login [post]
func (a *API) LoginHandler(c echo.Context) error {
	logger := c.Logger()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Email and password are required.",
		}
	}

	acct, err := a.Accounts.Login(req.Email, req.Password)
	if err != nil {
		var ve *accounts.ValidationError
		switch {
		case errors.As(err, &ve):
			logger.Error("Login request missing fields")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: ve.Message,
			}
		case errors.Is(err, accounts.ErrUnverifiedAccount):
			logger.Error("Login rejected: account not verified")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Please verify your email address before logging in.",
			}
		case errors.Is(err, accounts.ErrInvalidCredentials):
			logger.Error("Login rejected: invalid credentials")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid email or password.",
			}
		default:
			logger.Errorf("Login failed: %v", err)
			return &echo.HTTPError{
				Code:     http.StatusInternalServerError,
				Message:  "Login failed. Please try again.",
				Internal: err,
			}
		}
	}

	logger.Infof("Account %d logged in", acct.ID)
	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		User: LoginUser{
			ID:       acct.ID,
			Name:     acct.Name,
			Email:    acct.Email,
			Nickname: acct.Nickname,
		},
	})
}
