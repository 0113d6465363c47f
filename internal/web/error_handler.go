package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/autohub/dealer-portal/internal/core/domain"
	"github.com/autohub/dealer-portal/internal/core/session"
	"github.com/autohub/dealer-portal/internal/web/middleware"
	"github.com/autohub/dealer-portal/internal/web/view"
)

type errorPage struct {
	Status  int
	Title   string
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Implements the portal's one global, cross-cutting error rule: a
//     backend 401 from any page clears the persisted credential and expiry
//     marker and sends the visitor to the login page. The page that issued
//     the request never handles this itself.
//   - Renders everything else as an HTML error page, logging unexpected
//     errors without leaking their details to the visitor.
func NewHTTPErrorHandler(log zerolog.Logger, secureCookies bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrUnauthorized) {
			session.NewManager(middleware.NewCookieStore(c, secureCookies), log).Logout()
			log.Info().Str("path", c.Path()).Msg("backend rejected credential, session cleared")
			_ = c.Redirect(http.StatusFound, "/login")
			return
		}

		status, message := resolveError(err, log, c)
		page := view.Page{
			Title: http.StatusText(status),
			Data:  errorPage{Status: status, Title: http.StatusText(status), Message: message},
		}
		if identity, ok := middleware.Identity(c); ok {
			page.Authed = true
			page.Username = identity.Username
		}
		if renderErr := c.Render(status, "error.html", page); renderErr != nil {
			_ = c.String(status, message)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: bind failures, 404 from the router, and the like.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if errors.Is(err, domain.ErrNotFound) {
		return http.StatusNotFound, "Asset not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong. Please try again."
}
