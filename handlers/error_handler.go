// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"

	"greetme-server/commons"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every error as {"error": message}. Internal
// detail is only exposed when APP_ENV is development.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he, ok := err.(*echo.HTTPError)
	if !ok {
		he = &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  "Internal Server Error",
			Internal: err,
		}
	}

	if he.Code >= 500 {
		c.Logger().Errorf("Internal error on %s %s: %v",
			c.Request().Method, c.Request().URL.Path, err)
	}

	body := map[string]any{
		"error": fmt.Sprintf("%v", he.Message),
	}
	if commons.GetEnv("APP_ENV", "development") == "development" && he.Internal != nil {
		body["detail"] = he.Internal.Error()
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(he.Code)
	} else {
		writeErr = c.JSON(he.Code, body)
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
