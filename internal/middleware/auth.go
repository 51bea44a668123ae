package middleware

import (
	"net/http"

	"gaming-storefront/internal/auth"

	"github.com/labstack/echo/v4"
)

const (
	AdminIdentityHeader = "X-Admin-Identity"
	adminIdentityKey    = "admin_identity"
)

// AdminOnly rejects requests whose X-Admin-Identity header is not accepted by
// the authorizer.
func AdminOnly(authorizer auth.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := c.Request().Header.Get(AdminIdentityHeader)
			if !authorizer.IsAdmin(identity) {
				return echo.NewHTTPError(http.StatusForbidden, "admin access denied")
			}
			c.Set(adminIdentityKey, identity)
			return next(c)
		}
	}
}

func AdminIdentity(c echo.Context) string {
	identity, _ := c.Get(adminIdentityKey).(string)
	return identity
}
