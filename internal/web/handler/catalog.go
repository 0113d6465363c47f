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

// CatalogHandler serves the public vehicle listing.
type CatalogHandler struct {
	backend ports.BackendService
	log     zerolog.Logger
}

func NewCatalogHandler(backend ports.BackendService, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{backend: backend, log: log}
}

// carView pairs a vehicle with its resolved image URL for templates.
type carView struct {
	Car   domain.Car
	Image string
}

type catalogPage struct {
	Cars []carView
}

func (h *CatalogHandler) Show(c echo.Context) error {
	cars, err := h.backend.ListCars(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		h.log.Error().Err(err).Msg("catalog fetch failed")
		page := newPage(c, "Global Portfolio", catalogPage{})
		page.Flash = &view.Flash{Kind: "error", Message: msgFetchFailed}
		return c.Render(http.StatusOK, "catalog.html", page)
	}

	views := make([]carView, 0, len(cars))
	for _, car := range cars {
		views = append(views, carView{Car: car, Image: h.backend.AssetURL(car.ImageURL)})
	}
	return c.Render(http.StatusOK, "catalog.html", newPage(c, "Global Portfolio", catalogPage{Cars: views}))
}
