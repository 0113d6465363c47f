package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/autohub/dealer-portal/internal/core/ports"
	"github.com/autohub/dealer-portal/internal/infrastructure/backend"
	"github.com/autohub/dealer-portal/internal/web/middleware"
	"github.com/autohub/dealer-portal/internal/web/view"
)

// AuthHandler serves login, registration, and logout.
type AuthHandler struct {
	backend ports.BackendService
	log     zerolog.Logger
}

func NewAuthHandler(backend ports.BackendService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{backend: backend, log: log}
}

type credentialsForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type authPage struct {
	Username string
}

func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", newPage(c, "System Login", authPage{}))
}

// Login exchanges the submitted credentials for a bearer token, persists it
// through the session manager, and lands on the admin dashboard. Backend
// validation messages are shown verbatim; transport failures fall back to a
// generic denial.
func (h *AuthHandler) Login(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderLoginError(c, form.Username, err.Error())
	}

	grant, err := h.backend.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		return h.renderLoginError(c, form.Username, loginFailureMessage(err))
	}

	if _, err := middleware.SessionManager(c).Login(grant.Token, grant.Expires); err != nil {
		// Decode failures are logged inside the manager and never shown;
		// the visitor simply lands back on the login page.
		return c.Redirect(http.StatusFound, "/login")
	}

	setFlash(c, "success", "Session authenticated")
	return c.Redirect(http.StatusFound, "/admin")
}

func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", newPage(c, "License Setup", authPage{}))
}

// Register creates an operator identity and sends the visitor to the login
// page on success.
func (h *AuthHandler) Register(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderRegisterError(c, form.Username, err.Error())
	}

	if err := h.backend.Register(c.Request().Context(), form.Username, form.Password); err != nil {
		message := "Registration failed"
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			message = apiErr.Message
		} else {
			h.log.Error().Err(err).Msg("registration request failed")
		}
		return h.renderRegisterError(c, form.Username, message)
	}

	setFlash(c, "success", "License identity registered")
	return c.Redirect(http.StatusFound, "/login")
}

// Logout clears the persisted credential and expiry marker together.
func (h *AuthHandler) Logout(c echo.Context) error {
	middleware.SessionManager(c).Logout()
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderLoginError(c echo.Context, username, message string) error {
	page := newPage(c, "System Login", authPage{Username: username})
	page.Flash = &view.Flash{Kind: "error", Message: message}
	return c.Render(http.StatusOK, "login.html", page)
}

func (h *AuthHandler) renderRegisterError(c echo.Context, username, message string) error {
	page := newPage(c, "License Setup", authPage{Username: username})
	page.Flash = &view.Flash{Kind: "error", Message: message}
	return c.Render(http.StatusOK, "register.html", page)
}

// loginFailureMessage prefers the backend's own message when the response
// carried one; otherwise the user sees a generic denial.
func loginFailureMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "System access denied"
}
