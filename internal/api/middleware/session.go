package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/session"
)

// Session derives the request's session snapshot from the identity claims
// set by Auth. The role comes from the resolver (cache first, then the
// backing store), so nothing the client sends can influence it. Must run
// after Auth.
func Session(resolver *session.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)

			sess := session.Session{
				UserID: userID,
				Role:   resolver.Resolve(c.Request().Context(), userID),
			}
			c.Set("session", sess)
			c.Set("role", sess.Role)

			return next(c)
		}
	}
}
