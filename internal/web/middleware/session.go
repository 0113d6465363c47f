package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/autohub/dealer-portal/internal/core/domain"
	"github.com/autohub/dealer-portal/internal/core/session"
)

// Context keys under which the session middleware publishes state for
// downstream handlers.
const (
	ctxSessionKey  = "session"
	ctxIdentityKey = "identity"
)

// cookieStore persists session values as HTTP cookies on the current
// request/response pair. Reads see the request's cookies; writes take
// effect from the browser's next request, which is always a redirect away
// for the flows that mutate the session.
type cookieStore struct {
	c      echo.Context
	secure bool
}

// NewCookieStore returns a session.Store bound to the given request.
func NewCookieStore(c echo.Context, secure bool) session.Store {
	return &cookieStore{c: c, secure: secure}
}

func (s *cookieStore) Get(name string) (string, bool) {
	ck, err := s.c.Cookie(name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	return ck.Value, true
}

func (s *cookieStore) Set(name, value string) {
	s.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *cookieStore) Delete(name string) {
	s.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Session builds the per-request session manager, derives the identity from
// the persisted credential, and propagates the credential into the request
// context so the backend client attaches it to every outgoing call.
func Session(secure bool, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mgr := session.NewManager(NewCookieStore(c, secure), log)
			c.Set(ctxSessionKey, mgr)

			if identity, ok := mgr.Current(); ok {
				c.Set(ctxIdentityKey, identity)
				if token, ok := mgr.Token(); ok {
					ctx := session.ContextWithToken(c.Request().Context(), token)
					c.SetRequest(c.Request().WithContext(ctx))
				}
			}
			return next(c)
		}
	}
}

// SessionManager returns the per-request session manager installed by
// Session. Panics if the middleware did not run; routes are always mounted
// behind it.
func SessionManager(c echo.Context) *session.Manager {
	mgr, ok := c.Get(ctxSessionKey).(*session.Manager)
	if !ok {
		panic("middleware: session manager missing from context")
	}
	return mgr
}

// Identity returns the decoded display identity for the current request,
// if the session is authenticated.
func Identity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(ctxIdentityKey).(domain.Identity)
	return identity, ok
}
