package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "notebase/internal/errors"
)

// respondError maps a service error to its HTTP response. Business errors
// pass through with their message; anything else is logged and returned as
// a generic 500. Bearer tokens and claim payloads are never logged.
func respondError(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("internal error: %v", err)
	}
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
