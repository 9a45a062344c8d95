// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"greetme-server/accounts"
	"greetme-server/db"

	"github.com/labstack/echo/v4"
)

// RegisterHandler godoc
// @Summary      Register a new account
// @Description  Creates a new unverified account and sends a verification email.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest  body  RegisterRequest  true  "Registration payload"
// @Success      201 {object} RegisterResponse  "Registration successful"
// @Failure      400 {object} echo.HTTPError    "Validation failure or duplicate email/telephone"
// @Failure      500 {object} echo.HTTPError    "Internal server error"
// @Router       /api/register [post]
func (a *API) RegisterHandler(c echo.Context) error {
	logger := c.Logger()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid registration request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "All fields are required.",
		}
	}

	userID, err := a.Accounts.Register(accounts.RegisterInput{
		Name:      req.Name,
		Telephone: req.Telephone,
		Email:     req.Email,
		Nickname:  req.Nickname,
		Password:  req.Password,
	})
	if err != nil {
		var ve *accounts.ValidationError
		switch {
		case errors.As(err, &ve):
			logger.Error("Registration validation failed: ", ve.Message)
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: ve.Message,
			}
		case errors.Is(err, db.ErrEmailTaken):
			logger.Error("Registration rejected: email already exists")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Email already exists.",
			}
		case errors.Is(err, db.ErrTelephoneTaken):
			logger.Error("Registration rejected: telephone already exists")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Telephone number already exists.",
			}
		default:
			logger.Errorf("Registration failed: %v", err)
			return &echo.HTTPError{
				Code:     http.StatusInternalServerError,
				Message:  "Registration failed. Please try again.",
				Internal: err,
			}
		}
	}

	logger.Infof("Account %d registered successfully", userID)
	return c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully. Please check your email for verification link.",
		UserID:  userID,
	})
}
