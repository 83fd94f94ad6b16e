package inventory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance_SamePoint(t *testing.T) {
	points := []*Vehicle{
		NewVehicle("a", "m", 2020, "red", 1, 0, 0),
		NewVehicle("b", "m", 2020, "red", 1, 37.7749, -122.4194),
		NewVehicle("c", "m", 2020, "red", 1, -90, 180),
		NewVehicle("d", "m", 2020, "red", 1, 89.9999, -179.9999),
	}

	for _, p := range points {
		assert.Equal(t, 0.0, CalculateDistance(p, p), "distance from %s to itself", p)
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	sf := NewVehicle("sf", "m", 2020, "red", 1, 37.7749, -122.4194)
	nyc := NewVehicle("nyc", "m", 2020, "red", 1, 40.7128, -74.0060)

	assert.Equal(t, CalculateDistance(sf, nyc), CalculateDistance(nyc, sf))
}

func TestCalculateDistance_QuarterGreatCircle(t *testing.T) {
	origin := NewVehicle("a", "m", 2020, "red", 1, 0, 0)
	east := NewVehicle("b", "m", 2020, "red", 1, 0, 90)

	expected := math.Pi / 2 * EarthRadiusMeters
	assert.InDelta(t, expected, CalculateDistance(origin, east), 1e-6)
	assert.InDelta(t, 10007543.0, CalculateDistance(origin, east), 1.0)
}

func TestCalculateDistance_KnownCities(t *testing.T) {
	// Downtown Portland to the airport is roughly 10 km
	distance := Distance(45.5152, -122.6784, 45.5898, -122.5951)

	assert.Greater(t, distance, 9000.0)
	assert.Less(t, distance, 11000.0)
}

func TestDistance_AntipodalDoesNotProduceNaN(t *testing.T) {
	cases := [][4]float64{
		{0, 0, 0, 180},
		{90, 0, -90, 0},
		{45, 45, -45, -135},
		{12.3456789, 98.7654321, -12.3456789, -81.2345679},
	}

	for _, c := range cases {
		distance := Distance(c[0], c[1], c[2], c[3])
		assert.False(t, math.IsNaN(distance), "distance for %v", c)
		assert.InDelta(t, math.Pi*EarthRadiusMeters, distance, 1.0, "distance for %v", c)
	}
}
