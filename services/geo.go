// File: /services/geo.go
package services

import (
	"math"
)

// GeoPoint is a coordinate pair in decimal degrees
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

const earthRadiusKm = 6371

// Distance calculates the great-circle distance in kilometers between two
// points using the Haversine formula on a spherical Earth. Out-of-range
// coordinates are not validated.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusKm * c

	return math.Round(distance*10) / 10 // Round to 1 decimal place
}

// TravelTimeMinutes estimates travel time from a distance using a tiered
// average-speed heuristic: local roads for short hops, highway speed for
// longer trips. Display estimate only, not a routing computation.
func TravelTimeMinutes(km float64) int {
	if km <= 0 {
		return 0
	}

	var speedKmh float64
	switch {
	case km <= 5:
		speedKmh = 30
	case km <= 30:
		speedKmh = 50
	default:
		speedKmh = 80
	}

	minutes := int(math.Round(km / speedKmh * 60))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
