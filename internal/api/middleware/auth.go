package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// Auth validates the bearer token and injects the user claims into context.
// A token must both carry a valid signature and still have a live session:
// logout removes the session, invalidating the token before its exp claim.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
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

			user, err := sessions.Get(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrSessionExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
				return err
			}

			c.Set("user_id", user.ID)
			c.Set("user_name", user.Name)
			c.Set("role", user.Role)
			c.Set("token", parts[1])

			return next(c)
		}
	}
}
