// Package backend is the single point of outbound HTTP configuration for
// the dealership REST API. Every request made here attaches the bearer
// credential carried in the request context; authorization failures are
// reported as domain.ErrUnauthorized so the web layer can react globally.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/autohub/dealer-portal/internal/core/domain"
	"github.com/autohub/dealer-portal/internal/core/session"
	"github.com/autohub/dealer-portal/internal/metrics"
)

// apiSuffix is the path prefix the backend mounts its REST API under.
// Asset URLs are served from the bare host, so resolution strips it.
const apiSuffix = "/api"

// Client talks to the dealership backend. It implements ports.BackendService.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// New builds a Client against baseURL (including the /api prefix). A
// timeout of zero disables the client-wide deadline.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// APIError is a backend response with an error status and, when the body
// carried one, the backend's own message. The message is shown to the user
// verbatim; an empty one falls back to a generic notification.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// Login exchanges operator credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (domain.AuthGrant, error) {
	payload := map[string]string{"username": username, "password": password}
	var grant domain.AuthGrant
	if err := c.doJSON(ctx, "login", http.MethodPost, "/login", payload, &grant); err != nil {
		return domain.AuthGrant{}, err
	}
	return grant, nil
}

// Register creates a new operator identity.
func (c *Client) Register(ctx context.Context, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	return c.doJSON(ctx, "register", http.MethodPost, "/register", payload, nil)
}

// ListCars returns the public inventory.
func (c *Client) ListCars(ctx context.Context) ([]domain.Car, error) {
	var cars []domain.Car
	if err := c.doJSON(ctx, "list_cars", http.MethodGet, "/cars", nil, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// GetCar returns one vehicle by id. A backend 404 surfaces as
// domain.ErrNotFound so the detail page can render its distinct message.
func (c *Client) GetCar(ctx context.Context, id string) (domain.Car, error) {
	var car domain.Car
	if err := c.doJSON(ctx, "get_car", http.MethodGet, "/cars/"+id, nil, &car); err != nil {
		return domain.Car{}, err
	}
	return car, nil
}

// CreateLead registers a customer inquiry.
func (c *Client) CreateLead(ctx context.Context, lead domain.NewLead) error {
	return c.doJSON(ctx, "create_lead", http.MethodPost, "/leads", lead, nil)
}

// Dashboard returns the full inventory plus captured leads.
func (c *Client) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	var dash domain.Dashboard
	if err := c.doJSON(ctx, "dashboard", http.MethodGet, "/admin/dashboard", nil, &dash); err != nil {
		return domain.Dashboard{}, err
	}
	return dash, nil
}

// CreateCar registers a new vehicle.
func (c *Client) CreateCar(ctx context.Context, car domain.NewCar) error {
	return c.doJSON(ctx, "create_car", http.MethodPost, "/admin/cars", car, nil)
}

// UpdateCarStatus moves a vehicle to a new sales status.
func (c *Client) UpdateCarStatus(ctx context.Context, id string, status domain.CarStatus) error {
	payload := map[string]string{"id": id, "status": string(status)}
	return c.doJSON(ctx, "update_car_status", http.MethodPut, "/admin/cars/status", payload, nil)
}

// DeleteCar removes a vehicle from the inventory.
func (c *Client) DeleteCar(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete_car", http.MethodDelete, "/admin/cars/"+id, nil, nil)
}

// UploadImage streams a vehicle image to the backend as multipart form data
// and returns the URL under which the backend stored it.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("backend: build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("backend: read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("backend: finalize upload form: %w", err)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, "upload_image", http.MethodPost, "/admin/upload", mw.FormDataContentType(), &body, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// AssetURL resolves a possibly-relative media path. Empty input stays
// empty, absolute URLs pass through unchanged, and relative paths are
// joined to the backend host (base with the API suffix stripped) with
// exactly one separating slash.
func (c *Client) AssetURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	base := strings.TrimSuffix(c.baseURL, apiSuffix)
	return base + "/" + strings.TrimPrefix(path, "/")
}

// doJSON marshals payload (when non-nil) and issues the request with a JSON
// content type.
func (c *Client) doJSON(ctx context.Context, operation, method, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("backend: encode %s payload: %w", operation, err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.do(ctx, operation, method, path, contentType, body, out)
}

// do executes one backend request. The bearer credential, when present in
// ctx, is attached unconditionally; there is no per-request opt-out. No
// retries: every failure is terminal for the user action that caused it.
func (c *Client) do(ctx context.Context, operation, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: build %s request: %w", operation, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := session.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(operation, "transport_error").Inc()
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(operation, method, path, resp)
	}

	metrics.BackendRequestsTotal.WithLabelValues(operation, "ok").Inc()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("backend: decode %s response: %w", operation, err)
		}
	}
	return nil
}

// statusError maps an error response onto the portal's error taxonomy.
// A 401 from the login exchange itself is a credential-validation failure
// and keeps its backend message; a 401 anywhere else means the session
// credential is no longer accepted and triggers the global logout.
func (c *Client) statusError(operation, method, path string, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if operation != "login" {
			metrics.BackendRequestsTotal.WithLabelValues(operation, "unauthorized").Inc()
			return domain.ErrUnauthorized
		}
	case http.StatusNotFound:
		metrics.BackendRequestsTotal.WithLabelValues(operation, "not_found").Inc()
		return domain.ErrNotFound
	}

	outcome := "client_error"
	if resp.StatusCode >= http.StatusInternalServerError {
		outcome = "server_error"
	}
	metrics.BackendRequestsTotal.WithLabelValues(operation, outcome).Inc()

	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("message", envelope.Error).
		Msg("backend error response")

	return &APIError{Status: resp.StatusCode, Message: envelope.Error}
}
