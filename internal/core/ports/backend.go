package ports

import (
	"context"
	"io"

	"github.com/autohub/dealer-portal/internal/core/domain"
)

// BackendService is the portal's view of the dealership REST backend. One
// method per endpoint; the backend owns persistence, business rules, and
// authorization. Implementations attach the bearer credential carried in
// ctx to every outgoing request; callers never handle authorization
// headers themselves.
type BackendService interface {
	// Login exchanges operator credentials for a bearer token.
	Login(ctx context.Context, username, password string) (domain.AuthGrant, error)
	// Register creates a new operator identity.
	Register(ctx context.Context, username, password string) error

	// ListCars returns the public inventory.
	ListCars(ctx context.Context) ([]domain.Car, error)
	// GetCar returns one vehicle by id, domain.ErrNotFound when absent.
	GetCar(ctx context.Context, id string) (domain.Car, error)
	// CreateLead registers a customer inquiry.
	CreateLead(ctx context.Context, lead domain.NewLead) error

	// Dashboard returns the full inventory plus captured leads (privileged).
	Dashboard(ctx context.Context) (domain.Dashboard, error)
	// CreateCar registers a new vehicle (privileged).
	CreateCar(ctx context.Context, car domain.NewCar) error
	// UpdateCarStatus moves a vehicle to a new sales status (privileged).
	UpdateCarStatus(ctx context.Context, id string, status domain.CarStatus) error
	// DeleteCar removes a vehicle from the inventory (privileged).
	DeleteCar(ctx context.Context, id string) error
	// UploadImage stores a vehicle image and returns its URL (privileged).
	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)

	// AssetURL resolves a possibly-relative media path against the backend
	// host: empty stays empty, absolute URLs pass through unchanged.
	AssetURL(path string) string
}
