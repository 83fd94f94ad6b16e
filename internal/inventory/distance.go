package inventory

import "math"

// EarthRadiusMeters is the mean Earth radius used for great-circle distances
const EarthRadiusMeters = 6371000

// CalculateDistance returns the great-circle distance between two vehicles in meters
func CalculateDistance(v1, v2 *Vehicle) float64 {
	return Distance(v1.Latitude, v1.Longitude, v2.Latitude, v2.Longitude)
}

// Distance calculates the distance between two points in meters using the Haversine formula
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	dlat := lat2Rad - lat1Rad
	dlng := lng2Rad - lng1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlng/2)*math.Sin(dlng/2)

	// Rounding can push a just outside [0, 1] for near-antipodal points.
	a = math.Max(0, math.Min(1, a))
	c := 2 * math.Asin(math.Sqrt(a))

	return EarthRadiusMeters * c
}
