package handlers

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"uk.co.dudmesh.contacts/internal/model"
)

const principalKey = "principal"

// ResolvePrincipal attaches the user matching the Authorization header to
// the request, when there is one. A missing or unmatched token is not an
// error here; guarded routes reject it via RequirePrincipal.
func ResolvePrincipal(users UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(echo.HeaderAuthorization)
			token = strings.TrimPrefix(token, "Bearer ")
			if token != "" {
				user, err := users.Resolve(token)
				switch {
				case err == nil:
					c.Set(principalKey, user)
				case !errors.Is(err, model.ErrorUserNotFound):
					return err
				}
			}
			return next(c)
		}
	}
}

func RequirePrincipal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Principal(c) == nil {
				return model.ErrorUnauthorized
			}
			return next(c)
		}
	}
}

func Principal(c echo.Context) *model.User {
	if user, ok := c.Get(principalKey).(*model.User); ok {
		return user
	}
	return nil
}
