package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicle_String(t *testing.T) {
	vehicle := NewVehicle("Toyota", "Camry", 2021, "red", 21000.5, 55.75, 37.61)

	assert.Equal(t, "<Vehicle: Toyota Camry 2021 red 21000.5>", vehicle.String())
}

func TestVehicle_MarshalOmitsNilID(t *testing.T) {
	vehicle := NewVehicle("Toyota", "Camry", 2021, "red", 21000, 55.75, 37.61)

	data, err := json.Marshal(vehicle)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "id")
	assert.Equal(t, "Camry", fields["model"])
	assert.Equal(t, 2021.0, fields["year"])
}

func TestVehicle_UnmarshalJSON(t *testing.T) {
	data := `{"id": 7, "name": "Tesla", "model": "Model 3", "year": 2022, "color": "white",
		"price": 39990.99, "latitude": 37.7749, "longitude": -122.4194}`

	var vehicle Vehicle
	require.NoError(t, json.Unmarshal([]byte(data), &vehicle))

	require.NotNil(t, vehicle.ID)
	assert.Equal(t, int64(7), *vehicle.ID)
	assert.Equal(t, "Tesla", vehicle.Name)
	assert.Equal(t, "Model 3", vehicle.Model)
	assert.Equal(t, 2022, vehicle.Year)
	assert.Equal(t, "white", vehicle.Color)
	assert.Equal(t, 39990.99, vehicle.Price)
	assert.Equal(t, 37.7749, vehicle.Latitude)
	assert.Equal(t, -122.4194, vehicle.Longitude)
}

func TestVehicle_UnmarshalJSON_NullID(t *testing.T) {
	data := `{"id": null, "name": "Lada", "model": "Niva", "year": 1995, "color": "green",
		"price": 0, "latitude": 0, "longitude": 0}`

	var vehicle Vehicle
	require.NoError(t, json.Unmarshal([]byte(data), &vehicle))

	assert.Nil(t, vehicle.ID)
	assert.Equal(t, 0.0, vehicle.Price)
}

func TestVehicle_UnmarshalJSON_MissingFields(t *testing.T) {
	data := `{"id": 1, "name": "Lada", "year": 1995, "color": "green", "price": 100}`

	var vehicle Vehicle
	err := json.Unmarshal([]byte(data), &vehicle)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"model", "latitude", "longitude"}, missing.Fields)
}

func TestVehicle_Geohash(t *testing.T) {
	vehicle := NewVehicle("a", "b", 2000, "c", 1, 57.64911, 10.40744)

	assert.Equal(t, "u4pruyd", vehicle.Geohash(7))
	assert.Len(t, vehicle.Geohash(5), 5)
}
