// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"greetme-server/accounts"

	"github.com/labstack/echo/v4"
)

// VerifyHandler godoc
// @Summary      Verify an email address
// @Description  Confirms email ownership with the token sent at registration.
// @Tags         auth
// @Produce      json
// @Param        token  query  string  true  "Verification token"
// @Param        email  query  string  true  "Email address the token was issued for"
// @Success      200 {object} VerifyResponse   "Account verified"
// @Failure      400 {object} echo.HTTPError   "Missing parameters, mismatched token, or already verified"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /api/verify [get]
func (a *API) VerifyHandler(c echo.Context) error {
	logger := c.Logger()

	token := c.QueryParam("token")
	email := c.QueryParam("email")

	acct, err := a.Accounts.Verify(email, token)
	if err != nil {
		var ve *accounts.ValidationError
		switch {
		case errors.As(err, &ve):
			logger.Error("Verification request missing parameters")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: ve.Message,
			}
		case errors.Is(err, accounts.ErrNotFoundOrAlreadyVerified):
			// Absent account, stale token and already-verified all look
			// the same from the outside.
			logger.Error("Verification failed: no matching unverified account")
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Invalid verification token or email, or account already verified.",
			}
		default:
			logger.Errorf("Verification failed: %v", err)
			return &echo.HTTPError{
				Code:     http.StatusInternalServerError,
				Message:  "Email verification failed. Please try again.",
				Internal: err,
			}
		}
	}

	logger.Infof("Account %d verified successfully", acct.ID)
	return c.JSON(http.StatusOK, VerifyResponse{
		Message: "Thank you for confirming your registration",
		User: VerifiedUser{
			ID:    acct.ID,
			Name:  acct.Name,
			Email: acct.Email,
		},
	})
}
