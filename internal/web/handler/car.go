package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/autohub/dealer-portal/internal/core/domain"
	"github.com/autohub/dealer-portal/internal/core/ports"
	"github.com/autohub/dealer-portal/internal/web/view"
)

// CarHandler serves the asset detail page and its inquiry form.
type CarHandler struct {
	backend ports.BackendService
	log     zerolog.Logger
}

func NewCarHandler(backend ports.BackendService, log zerolog.Logger) *CarHandler {
	return &CarHandler{backend: backend, log: log}
}

type carPage struct {
	Car       domain.Car
	Image     string
	Submitted bool
}

type inquiryForm struct {
	Name  string `form:"name"  validate:"required"`
	Phone string `form:"phone" validate:"required"`
}

// Show renders one vehicle. A missing id gets the distinct not-found page
// rather than the generic failure notification.
func (h *CarHandler) Show(c echo.Context) error {
	car, err := h.backend.GetCar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fetchError(c, err)
	}
	return h.render(c, http.StatusOK, car, false)
}

// Inquire creates a lead for the vehicle. The vehicle is re-fetched so the
// lead carries its current "<make> <model>" label; on success the page
// renders its submitted confirmation state in place of the form.
func (h *CarHandler) Inquire(c echo.Context) error {
	var form inquiryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	car, err := h.backend.GetCar(ctx, c.Param("id"))
	if err != nil {
		return h.fetchError(c, err)
	}

	lead := domain.NewLead{
		CarModel: car.DisplayName(),
		Name:     form.Name,
		Phone:    form.Phone,
	}
	if err := h.backend.CreateLead(ctx, lead); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		h.log.Error().Err(err).Str("car_id", car.ID).Msg("lead submission failed")
		page := newPage(c, car.DisplayName(), carPage{Car: car, Image: h.backend.AssetURL(car.ImageURL)})
		page.Flash = &view.Flash{Kind: "error", Message: msgSubmitFailed}
		return c.Render(http.StatusOK, "car.html", page)
	}

	return h.render(c, http.StatusOK, car, true)
}

func (h *CarHandler) render(c echo.Context, status int, car domain.Car, submitted bool) error {
	data := carPage{
		Car:       car,
		Image:     h.backend.AssetURL(car.ImageURL),
		Submitted: submitted,
	}
	return c.Render(status, "car.html", newPage(c, car.DisplayName(), data))
}

func (h *CarHandler) fetchError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return err
	case errors.Is(err, domain.ErrNotFound):
		return c.Render(http.StatusNotFound, "notfound.html", newPage(c, "Asset Not Found", nil))
	}
	h.log.Error().Err(err).Str("car_id", c.Param("id")).Msg("asset fetch failed")
	page := newPage(c, "Asset Not Found", nil)
	page.Flash = &view.Flash{Kind: "error", Message: msgFetchFailed}
	return c.Render(http.StatusOK, "notfound.html", page)
}
