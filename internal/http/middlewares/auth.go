package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"microtask-market.com/microtask-market/internal/constants"
	model "microtask-market.com/microtask-market/internal/models"
)

const actorContextKey = "actor"

type actorClaims struct {
	Role   string `json:"role"`
	Status string `json:"status"`
	jwt.RegisteredClaims
}

// Actor resolves the bearer token into the acting identity. Token
// issuance happens elsewhere; this layer only verifies and decodes.
func Actor(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims := &actorClaims{}
			token, err := jwt.ParseWithClaims(
				strings.TrimPrefix(header, "Bearer "),
				claims,
				func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, jwt.ErrSignatureInvalid
					}
					return []byte(secret), nil
				},
			)
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			status := constants.UserStatus(claims.Status)
			if status == "" {
				status = constants.UserStatusActive
			}

			c.Set(actorContextKey, model.Actor{
				ID:     claims.Subject,
				Role:   constants.Role(claims.Role),
				Status: status,
			})

			return next(c)
		}
	}
}

// ActorFrom returns the identity placed on the context by Actor. The
// zero Actor means the route was registered without the middleware.
func ActorFrom(c echo.Context) model.Actor {
	actor, _ := c.Get(actorContextKey).(model.Actor)
	return actor
}
