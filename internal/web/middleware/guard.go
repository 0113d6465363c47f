package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireSession gates privileged views on the presence of a session
// identity. Unauthenticated visitors are redirected to the login page.
//
// No role distinction is made here: any decoded identity passes. The
// decoded payload is unsigned, display-only data; role-based authorization
// is enforced exclusively by the backend, which rejects requests carrying
// an insufficient credential with a 401.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := Identity(c); !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}
