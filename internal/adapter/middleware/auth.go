package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"lostfound-backend/internal/domain/user"
)

const actorKey = "actor"

// ActorClaims is the bearer token payload issued by the account service.
type ActorClaims struct {
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var errNoBearer = errors.New("missing bearer token")

// Authenticate verifies an HS256 bearer token and stores the caller on the context.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFn := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			claims := &ActorClaims{}
			if _, err := parser.ParseWithClaims(raw, claims, keyFn); err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			if claims.UserID == 0 {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token has no user"})
			}

			role := user.RoleUser
			if user.Role(claims.Role) == user.RoleAdmin {
				role = user.RoleAdmin
			}
			SetActor(c, user.Actor{UserID: claims.UserID, Name: claims.Name, Role: role})
			return next(c)
		}
	}
}

func bearer(h string) (string, error) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tok) == "" {
		return "", errNoBearer
	}
	return strings.TrimSpace(tok), nil
}

func SetActor(c echo.Context, a user.Actor) { c.Set(actorKey, a) }

func ActorFrom(c echo.Context) (user.Actor, bool) {
	a, ok := c.Get(actorKey).(user.Actor)
	return a, ok
}
