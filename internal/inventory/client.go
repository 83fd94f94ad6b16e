package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"net/http"
	"reflect"
	"strings"
)

// Criteria maps vehicle JSON field names to the exact values a vehicle must carry.
// Numbers compare by value, so int 2020 matches a JSON 2020.0.
type Criteria map[string]any

// Manager handles communication with the inventory service
type Manager struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Manager
type Option func(*Manager)

// WithHTTPClient replaces the default transport client
func WithHTTPClient(client *http.Client) Option {
	return func(m *Manager) {
		m.httpClient = client
	}
}

// NewManager creates a new inventory service client.
// The default http.Client has no timeout; callers that need one pass WithHTTPClient.
func NewManager(baseURL string, opts ...Option) *Manager {
	m := &Manager{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BaseURL returns the service root the manager talks to
func (m *Manager) BaseURL() string {
	return m.baseURL
}

// GetVehicles retrieves all vehicles in the order the service returns them
func (m *Manager) GetVehicles(ctx context.Context) ([]*Vehicle, error) {
	// Decoding into values sends null entries through UnmarshalJSON, which rejects them
	var vehicles []Vehicle
	if err := m.doJSON(ctx, http.MethodGet, "/vehicles", nil, &vehicles); err != nil {
		return nil, err
	}

	result := make([]*Vehicle, len(vehicles))
	for i := range vehicles {
		result[i] = &vehicles[i]
	}
	return result, nil
}

// FilterVehicles fetches every vehicle and keeps those whose fields equal all criteria values
func (m *Manager) FilterVehicles(ctx context.Context, criteria Criteria) ([]*Vehicle, error) {
	var objects []json.RawMessage
	if err := m.doJSON(ctx, http.MethodGet, "/vehicles", nil, &objects); err != nil {
		return nil, err
	}

	filtered := make([]*Vehicle, 0, len(objects))
	for _, object := range objects {
		var fields map[string]any
		dec := json.NewDecoder(bytes.NewReader(object))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil {
			return nil, err
		}

		ok, err := matches(fields, criteria)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		var vehicle Vehicle
		if err := json.Unmarshal(object, &vehicle); err != nil {
			return nil, err
		}
		filtered = append(filtered, &vehicle)
	}

	return filtered, nil
}

// GetVehicle retrieves a single vehicle by id
func (m *Manager) GetVehicle(ctx context.Context, id int64) (*Vehicle, error) {
	var vehicle Vehicle
	if err := m.doJSON(ctx, http.MethodGet, fmt.Sprintf("/vehicles/%d", id), nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// AddVehicle creates a vehicle and returns it with the id assigned by the service.
// Any id already on vehicle is left out of the request.
func (m *Manager) AddVehicle(ctx context.Context, vehicle *Vehicle) (*Vehicle, error) {
	body := *vehicle
	body.ID = nil

	var created Vehicle
	if err := m.doJSON(ctx, http.MethodPost, "/vehicles", &body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateVehicle replaces the stored vehicle with the same id and returns the service's copy
func (m *Manager) UpdateVehicle(ctx context.Context, vehicle *Vehicle) (*Vehicle, error) {
	if vehicle.ID == nil {
		return nil, ErrMissingID
	}

	var updated Vehicle
	if err := m.doJSON(ctx, http.MethodPut, fmt.Sprintf("/vehicles/%d", *vehicle.ID), vehicle, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVehicle removes a vehicle and returns the raw response without checking its status.
// The body is already read into memory, so closing it is optional.
func (m *Manager) DeleteVehicle(ctx context.Context, id int64) (*http.Response, error) {
	resp, err := m.do(ctx, http.MethodDelete, fmt.Sprintf("/vehicles/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	return resp, nil
}

// GetDistance returns the distance in meters between two stored vehicles
func (m *Manager) GetDistance(ctx context.Context, id1, id2 int64) (float64, error) {
	first, err := m.GetVehicle(ctx, id1)
	if err != nil {
		return 0, err
	}

	second, err := m.GetVehicle(ctx, id2)
	if err != nil {
		return 0, err
	}

	return CalculateDistance(first, second), nil
}

// GetNearestVehicle finds the closest other vehicle to the one with the given id.
// It returns nil without error when no other vehicle exists.
func (m *Manager) GetNearestVehicle(ctx context.Context, id int64) (*Vehicle, error) {
	vehicles, err := m.GetVehicles(ctx)
	if err != nil {
		return nil, err
	}

	target, err := m.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	var nearest *Vehicle
	minDistance := math.MaxFloat64

	for _, vehicle := range vehicles {
		if vehicle.ID != nil && *vehicle.ID == id {
			continue
		}

		// Strict comparison keeps the first vehicle on ties
		if distance := CalculateDistance(target, vehicle); distance < minDistance {
			minDistance = distance
			nearest = vehicle
		}
	}

	return nearest, nil
}

func (m *Manager) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, m.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return m.httpClient.Do(req)
}

func (m *Manager) doJSON(ctx context.Context, method, path string, payload, out any) error {
	resp, err := m.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			Method:     method,
			URL:        m.baseURL + path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func matches(fields map[string]any, criteria Criteria) (bool, error) {
	suitable := true
	for key, want := range criteria {
		got, ok := fields[key]
		if !ok {
			return false, &UnknownFieldError{Field: key}
		}
		if !equalValue(got, want) {
			suitable = false
		}
	}
	return suitable, nil
}

// equalValue compares numbers exactly across integer and float representations
func equalValue(got, want any) bool {
	wantRat, ok := numberRat(want)
	if !ok {
		return reflect.DeepEqual(got, want)
	}
	gotRat, ok := numberRat(got)
	return ok && gotRat.Cmp(wantRat) == 0
}

// numberRat converts a number to an exact rational. Integer literals keep every digit;
// fractional values go through float64 the way a JSON float would.
func numberRat(value any) (*big.Rat, bool) {
	if n, ok := value.(json.Number); ok {
		s := n.String()
		if !strings.ContainsAny(s, ".eE") {
			return new(big.Rat).SetString(s)
		}
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		r := new(big.Rat).SetFloat64(f)
		return r, r != nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Rat).SetInt64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Rat).SetInt(new(big.Int).SetUint64(v.Uint())), true
	case reflect.Float32, reflect.Float64:
		r := new(big.Rat).SetFloat64(v.Float())
		return r, r != nil
	default:
		return nil, false
	}
}
