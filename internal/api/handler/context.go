package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity claims injected by the Auth
// middleware. The email claim proves the middleware ran; without it the
// request never presented a valid token.
func ctxIdentity(c echo.Context) (email string, roles []string, err error) {
	email, _ = c.Get("email").(string)
	if email == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	roles, _ = c.Get("roles").([]string)
	return email, roles, nil
}
