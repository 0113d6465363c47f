package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/autohub/dealer-portal/internal/core/domain"
	"github.com/autohub/dealer-portal/internal/core/ports"
	"github.com/autohub/dealer-portal/internal/infrastructure/backend"
	"github.com/autohub/dealer-portal/internal/web/view"
)

// AdminHandler serves the privileged dashboard: inventory CRUD, lead
// viewing, and image upload. Every mutation redirects back to the
// dashboard, so the next GET re-fetches fresh state from the backend. No
// optimistic updates, no client-side reconciliation.
type AdminHandler struct {
	backend ports.BackendService
	log     zerolog.Logger
}

func NewAdminHandler(backend ports.BackendService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{backend: backend, log: log}
}

type adminPage struct {
	Tab         string
	Inventory   []carView
	Leads       []domain.Lead
	Statuses    []domain.CarStatus
	UploadedURL string
}

type newCarForm struct {
	VIN      string  `form:"vin"       validate:"required"`
	Model    string  `form:"model"     validate:"required"`
	Price    float64 `form:"price"     validate:"required"`
	ImageURL string  `form:"image_url"`
}

type statusForm struct {
	ID     string `form:"id"     validate:"required"`
	Status string `form:"status" validate:"required"`
}

// Dashboard renders inventory and leads. ?tab=leads switches tabs;
// ?image_url= pre-fills the registration form after an upload.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	data := adminPage{
		Tab:         c.QueryParam("tab"),
		Statuses:    domain.CarStatuses,
		UploadedURL: c.QueryParam("image_url"),
	}
	if data.Tab != "leads" {
		data.Tab = "inventory"
	}

	dash, err := h.backend.Dashboard(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		h.log.Error().Err(err).Msg("dashboard fetch failed")
		page := newPage(c, "Control Center", data)
		page.Flash = &view.Flash{Kind: "error", Message: "Failed to load dashboard data"}
		return c.Render(http.StatusOK, "admin.html", page)
	}

	data.Leads = dash.Leads
	data.Inventory = make([]carView, 0, len(dash.Inventory))
	for _, car := range dash.Inventory {
		data.Inventory = append(data.Inventory, carView{Car: car, Image: h.backend.AssetURL(car.ImageURL)})
	}
	return c.Render(http.StatusOK, "admin.html", newPage(c, "Control Center", data))
}

// CreateCar registers a new vehicle and returns to the dashboard.
func (h *AdminHandler) CreateCar(c echo.Context) error {
	var form newCarForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.redirect(c, "error", err.Error())
	}

	car := domain.NewCar{
		VIN:      form.VIN,
		Model:    form.Model,
		Price:    form.Price,
		ImageURL: form.ImageURL,
	}
	if err := h.backend.CreateCar(c.Request().Context(), car); err != nil {
		return h.mutationError(c, err, "Registration failed")
	}
	return h.redirect(c, "success", "Asset registered successfully")
}

// UpdateStatus moves a vehicle to a new sales status.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var form statusForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.redirect(c, "error", err.Error())
	}

	if err := h.backend.UpdateCarStatus(c.Request().Context(), form.ID, domain.CarStatus(form.Status)); err != nil {
		return h.mutationError(c, err, "Status sync failed")
	}
	return h.redirect(c, "success", "Asset status updated")
}

// DeleteCar writes off a vehicle.
func (h *AdminHandler) DeleteCar(c echo.Context) error {
	if err := h.backend.DeleteCar(c.Request().Context(), c.Param("id")); err != nil {
		return h.mutationError(c, err, "Removal failed")
	}
	return h.redirect(c, "success", "Asset removed")
}

// Upload proxies the image to the backend and returns to the dashboard with
// the stored URL pre-filled into the registration form.
func (h *AdminHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return h.redirect(c, "error", "No image selected")
	}
	src, err := fh.Open()
	if err != nil {
		return h.redirect(c, "error", "Local upload failed")
	}
	defer src.Close()

	storedURL, err := h.backend.UploadImage(c.Request().Context(), fh.Filename, src)
	if err != nil {
		return h.mutationError(c, err, "Local upload failed")
	}

	setFlash(c, "success", "Asset image verified and stored")
	return c.Redirect(http.StatusFound, "/admin?image_url="+url.QueryEscape(storedURL))
}

// mutationError lets authorization failures escape to the global handler
// and converts everything else into a flash on the re-fetched dashboard,
// preferring the backend's own message when it sent one.
func (h *AdminHandler) mutationError(c echo.Context, err error, fallback string) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	h.log.Error().Err(err).Msg("dashboard mutation failed")

	message := fallback
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	return h.redirect(c, "error", message)
}

func (h *AdminHandler) redirect(c echo.Context, kind, message string) error {
	setFlash(c, kind, message)
	return c.Redirect(http.StatusFound, "/admin")
}
