// Package web assembles the portal's HTTP surface: routing, rendering,
// validation, and the global error rule.
package web

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/autohub/dealer-portal/internal/core/ports"
	"github.com/autohub/dealer-portal/internal/infrastructure/config"
	"github.com/autohub/dealer-portal/internal/web/handler"
	"github.com/autohub/dealer-portal/internal/web/middleware"
	"github.com/autohub/dealer-portal/internal/web/view"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc ports.BackendService, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.SecureCookies)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))
	e.Use(middleware.Session(cfg.SecureCookies, log))

	// --- Handlers ---
	pages := handler.NewPagesHandler()
	catalog := handler.NewCatalogHandler(svc, log)
	car := handler.NewCarHandler(svc, log)
	auth := handler.NewAuthHandler(svc, log)
	admin := handler.NewAdminHandler(svc, log)

	// --- Public pages ---
	e.GET("/", pages.Home)
	e.GET("/about", pages.About)
	e.GET("/contact", pages.Contact)
	e.GET("/catalog", catalog.Show)
	e.GET("/cars/:id", car.Show)
	e.POST("/cars/:id/inquiry", car.Inquire)

	// --- Authentication ---
	e.GET("/login", auth.ShowLogin)
	e.POST("/login", auth.Login)
	e.GET("/register", auth.ShowRegister)
	e.POST("/register", auth.Register)
	e.GET("/logout", auth.Logout)

	// --- Privileged dashboard (any authenticated identity passes; role
	// enforcement is the backend's) ---
	g := e.Group("/admin", middleware.RequireSession())
	g.GET("", admin.Dashboard)
	g.POST("/cars", admin.CreateCar)
	g.POST("/cars/status", admin.UpdateStatus)
	g.POST("/cars/:id/delete", admin.DeleteCar)
	g.POST("/upload", admin.Upload)

	// --- Operational endpoints ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
