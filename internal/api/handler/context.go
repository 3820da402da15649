package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/session"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware.
// An empty user id means the middleware did not run on this route; reject
// rather than proceed with a half-built identity.
func ctxIdentity(c echo.Context) (userID, email string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	return userID, email, nil
}

// ctxSession extracts the session snapshot set by the Session middleware.
// A missing snapshot degrades to the anonymous session.
func ctxSession(c echo.Context) session.Session {
	sess, _ := c.Get("session").(session.Session)
	return sess
}
