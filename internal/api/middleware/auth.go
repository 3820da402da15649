package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/core/ports"
)

// Auth validates the JWT and injects the identity claims into context. The
// token carries identity only (subject and email); the authorization role is
// resolved per request by the session middleware, never read from the token.
//
// Revoked tokens are rejected. A failed revocation check also rejects: when
// the denylist cannot be consulted the middleware fails closed.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			revoked, err := revoker.IsRevoked(c.Request().Context(), parts[1])
			if err != nil || revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token no longer valid")
			}

			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("token", parts[1])

			return next(c)
		}
	}
}

// AuthOptional injects identity claims when a valid bearer token is present
// and proceeds anonymously otherwise. Used on public routes whose responses
// adapt to the session (listing browse) without requiring one.
func AuthOptional(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			revoked, err := revoker.IsRevoked(c.Request().Context(), parts[1])
			if err != nil || revoked {
				return next(c)
			}

			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("token", parts[1])

			return next(c)
		}
	}
}
