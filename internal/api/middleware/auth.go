package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/core/ports"
)

// Auth validates the bearer JWT and injects the caller identity into context.
// Expired and revoked tokens are rejected alike; downstream handlers read the
// identity via c.Get("user_id").
func Auth(jwtSecret string, denylist ports.TokenDenylist) echo.MiddlewareFunc {
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

			claims := jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid || claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			if denylist != nil && claims.ID != "" {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "server error")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
			}

			c.Set("user_id", claims.Subject)
			c.Set("token_id", claims.ID)
			if claims.ExpiresAt != nil {
				c.Set("token_expires", claims.ExpiresAt.Time)
			}

			return next(c)
		}
	}
}
