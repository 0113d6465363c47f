package domain

import "time"

// Lead is a customer's expressed interest in a vehicle, captured by the
// public inquiry form. Leads are read-only once created; the dashboard
// lists them but never mutates them.
type Lead struct {
	ID            string    `json:"id"`
	CarModel      string    `json:"car_model"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	InquiryType   string    `json:"inquiry_type"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewLead is the payload sent to the backend when an inquiry is submitted.
type NewLead struct {
	CarModel string `json:"car_model"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Dashboard bundles everything the admin view renders in one response.
type Dashboard struct {
	Inventory []Car  `json:"inventory"`
	Leads     []Lead `json:"leads"`
}
