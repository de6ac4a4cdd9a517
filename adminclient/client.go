// Package adminclient implements the Go client for the rent-a-car API: the
// catalog store, vehicle form workflow, image upload adapter, reservation
// administration and session guard used by the admin tooling.
package adminclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"rentacar/models"
)

// Client is a thin HTTP client for the rent-a-car API. The remote API is
// the sole owner of persisted state; nothing is cached here beyond what the
// catalog store holds for the current session.
type Client struct {
	baseURL    string
	assetBase  string
	token      string
	httpClient *http.Client
}

// New creates a client for the given API root, e.g. "http://localhost:8080/api".
func New(apiURL string) *Client {
	base := strings.TrimRight(apiURL, "/")
	return &Client{
		baseURL:    base,
		assetBase:  deriveAssetBase(base),
		httpClient: http.DefaultClient,
	}
}

// deriveAssetBase strips a trailing API path segment from the API root so
// uploaded-asset URLs and API-call URLs can diverge from a single origin.
func deriveAssetBase(apiURL string) string {
	if s, ok := strings.CutSuffix(apiURL, "/api"); ok {
		return s
	}
	return apiURL
}

// SetToken attaches a session token to subsequent admin calls
func (c *Client) SetToken(token string) {
	c.token = token
}

// AssetBase returns the origin uploaded images are served from
func (c *Client) AssetBase() string {
	return c.assetBase
}

// Login exchanges admin credentials for a signed session token
func (c *Client) Login(email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.doJSON(http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListVehicles fetches the full vehicle catalog
func (c *Client) ListVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := c.doJSON(http.MethodGet, "/vehicles", nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetVehicle fetches a single vehicle by ID
func (c *Client) GetVehicle(id string) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := c.doJSON(http.MethodGet, "/vehicles/"+id, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVehicle adds a vehicle to the catalog
func (c *Client) CreateVehicle(req models.VehicleRequest) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := c.doJSON(http.MethodPost, "/vehicles", req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateVehicle replaces a vehicle record in full
func (c *Client) UpdateVehicle(id string, req models.VehicleRequest) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := c.doJSON(http.MethodPut, "/vehicles/"+id, req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteVehicle removes a vehicle
func (c *Client) DeleteVehicle(id string) error {
	return c.doJSON(http.MethodDelete, "/vehicles/"+id, nil, nil)
}

// ListReservations fetches all reservations
func (c *Client) ListReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.doJSON(http.MethodGet, "/reservations", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// CreateReservation submits a visitor booking request
func (c *Client) CreateReservation(req models.ReservationRequest) (*models.Reservation, error) {
	var r models.Reservation
	if err := c.doJSON(http.MethodPost, "/reservations", req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReservationStatus applies a status change to a reservation
func (c *Client) UpdateReservationStatus(id, status string) (*models.Reservation, error) {
	var r models.Reservation
	req := models.StatusUpdateRequest{Status: status}
	if err := c.doJSON(http.MethodPut, "/reservations/"+id, req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteReservation removes a reservation
func (c *Client) DeleteReservation(id string) error {
	return c.doJSON(http.MethodDelete, "/reservations/"+id, nil, nil)
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func (c *Client) doJSON(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// decodeAPIError surfaces the server-provided message when one exists,
// falling back to a generic status-based error.
func decodeAPIError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return fmt.Errorf("%s", body.Message)
		}
		if body.Error != "" {
			return fmt.Errorf("%s", body.Error)
		}
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
