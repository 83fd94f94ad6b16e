package inventory

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// Vehicle represents a vehicle from the inventory service
type Vehicle struct {
	ID        *int64  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Color     string  `json:"color"`
	Price     float64 `json:"price"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewVehicle creates a vehicle that has not been persisted yet
func NewVehicle(name, model string, year int, color string, price, latitude, longitude float64) *Vehicle {
	return &Vehicle{
		Name:      name,
		Model:     model,
		Year:      year,
		Color:     color,
		Price:     price,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// String returns a short description for logs and debugging
func (v *Vehicle) String() string {
	return fmt.Sprintf("<Vehicle: %s %s %d %s %s>",
		v.Name, v.Model, v.Year, v.Color, strconv.FormatFloat(v.Price, 'f', -1, 64))
}

// Geohash encodes the vehicle's coordinates with the given number of characters
func (v *Vehicle) Geohash(precision uint) string {
	return geohash.EncodeWithPrecision(v.Latitude, v.Longitude, precision)
}

// vehicleJSON mirrors Vehicle with pointer fields so absent keys can be told apart from zero values
type vehicleJSON struct {
	ID        *int64   `json:"id"`
	Name      *string  `json:"name"`
	Model     *string  `json:"model"`
	Year      *int     `json:"year"`
	Color     *string  `json:"color"`
	Price     *float64 `json:"price"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// MissingFieldError is returned when a response object lacks required vehicle fields
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("vehicle response missing fields: %s", strings.Join(e.Fields, ", "))
}

// UnmarshalJSON decodes a vehicle object and rejects objects missing any attribute.
// The id may be absent or null.
func (v *Vehicle) UnmarshalJSON(data []byte) error {
	var raw vehicleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.Name == nil {
		missing = append(missing, "name")
	}
	if raw.Model == nil {
		missing = append(missing, "model")
	}
	if raw.Year == nil {
		missing = append(missing, "year")
	}
	if raw.Color == nil {
		missing = append(missing, "color")
	}
	if raw.Price == nil {
		missing = append(missing, "price")
	}
	if raw.Latitude == nil {
		missing = append(missing, "latitude")
	}
	if raw.Longitude == nil {
		missing = append(missing, "longitude")
	}
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}

	*v = Vehicle{
		ID:        raw.ID,
		Name:      *raw.Name,
		Model:     *raw.Model,
		Year:      *raw.Year,
		Color:     *raw.Color,
		Price:     *raw.Price,
		Latitude:  *raw.Latitude,
		Longitude: *raw.Longitude,
	}
	return nil
}
