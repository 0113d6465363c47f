package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PagesHandler serves the static informational pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", newPage(c, "Home", nil))
}

func (h *PagesHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", newPage(c, "Digital License", nil))
}

func (h *PagesHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", newPage(c, "Establish Connection", nil))
}

// HealthHandler handles the GET /health liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
