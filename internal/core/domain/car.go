package domain

import "time"

// CarStatus represents the sales state of a vehicle in the inventory.
type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarInTransit CarStatus = "transit"
	CarReserved  CarStatus = "reserved"
	CarSold      CarStatus = "sold"
)

// CarStatuses lists every status the backend accepts, in display order.
var CarStatuses = []CarStatus{CarAvailable, CarInTransit, CarReserved, CarSold}

// Car is a vehicle listing as reported by the backend. The backend is the
// system of record; instances held here are request-scoped copies with no
// freshness guarantee.
type Car struct {
	ID       string    `json:"id"`
	VIN      string    `json:"vin"`
	Make     string    `json:"make"`
	Model    string    `json:"model"`
	PriceUSD float64   `json:"price_usd,omitempty"`
	PriceKZT float64   `json:"price_kzt,omitempty"`
	Status   CarStatus `json:"status"`
	ImageURL string    `json:"image_url"`
	Location string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// DisplayName is the "<make> <model>" label used on pages and in leads.
func (c Car) DisplayName() string {
	return c.Make + " " + c.Model
}

// NewCar carries the fields an operator supplies when registering a vehicle.
// The backend owns all further validation (VIN format, price ranges).
type NewCar struct {
	VIN      string  `json:"vin"`
	Model    string  `json:"model"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}
