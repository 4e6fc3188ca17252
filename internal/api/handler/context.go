package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the caller identity injected by the Auth middleware and
// fast-fails before any service call when it is absent.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// ctxToken returns the token id and expiry of the presented token, needed by
// logout to scope the revocation to the token's remaining lifetime.
func ctxToken(c echo.Context) (string, time.Time, error) {
	id, _ := c.Get("token_id").(string)
	if id == "" {
		return "", time.Time{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	exp, _ := c.Get("token_expires").(time.Time)
	return id, exp, nil
}
