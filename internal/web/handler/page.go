// Package handler contains the portal's page handlers. Every page follows
// the same shape: fetch what it needs through the backend service, render,
// and on a mutating form submission redirect back so the next GET re-fetches
// fresh state. Errors stay local to the page as flash notifications; only
// authorization failures escape to the global error handler.
package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/autohub/dealer-portal/internal/web/middleware"
	"github.com/autohub/dealer-portal/internal/web/view"
)

const flashCookie = "portal_flash"

// Generic user-facing messages for failures that carry no backend message.
const (
	msgFetchFailed  = "Failed to load data. Please try again."
	msgSubmitFailed = "Failed to submit. Please check your connection."
)

// newPage assembles the template envelope for the current request: session
// identity for the navigation bar plus any pending flash notification.
func newPage(c echo.Context, title string, data any) view.Page {
	p := view.Page{Title: title, Data: data}
	if identity, ok := middleware.Identity(c); ok {
		p.Authed = true
		p.Username = identity.Username
	}
	p.Flash = popFlash(c)
	return p
}

// setFlash queues a one-shot notification for the next rendered page.
// kind is "success" or "error". The value is base64-encoded to stay
// cookie-safe for arbitrary backend messages.
func setFlash(c echo.Context, kind, message string) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(kind + "\x1f" + message))
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the pending notification, if any.
func popFlash(c echo.Context) *view.Flash {
	ck, err := c.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	decoded, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(string(decoded), "\x1f")
	if !ok {
		return nil
	}
	return &view.Flash{Kind: kind, Message: message}
}
