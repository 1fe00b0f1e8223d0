// File: /services/geo_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSymmetry(t *testing.T) {
	// Budapest and Debrecen
	d1 := Distance(47.4979, 19.0402, 47.5316, 21.6273)
	d2 := Distance(47.5316, 21.6273, 47.4979, 19.0402)

	assert.Equal(t, d1, d2, "distance must be symmetric")
	assert.Greater(t, d1, 0.0)
}

func TestDistanceSamePoint(t *testing.T) {
	// Center point at Budapest and a place at the same coordinates
	d := Distance(47.4979, 19.0402, 47.4979, 19.0402)
	assert.Equal(t, 0.0, d)
}

func TestDistanceKnownValue(t *testing.T) {
	// Budapest to Szeged is roughly 160 km by air
	d := Distance(47.4979, 19.0402, 46.2530, 20.1414)
	assert.InDelta(t, 160, d, 10)
}

func TestDistanceNonNegative(t *testing.T) {
	points := [][4]float64{
		{0, 0, 0, 0},
		{47.5, 19.0, -33.9, 151.2},
		{-90, -180, 90, 180},
	}
	for _, p := range points {
		assert.GreaterOrEqual(t, Distance(p[0], p[1], p[2], p[3]), 0.0)
	}
}

func TestTravelTimeMinutes(t *testing.T) {
	assert.Equal(t, 0, TravelTimeMinutes(0))

	// 3 km at 30 km/h is 6 minutes
	assert.Equal(t, 6, TravelTimeMinutes(3))

	// 25 km at 50 km/h is 30 minutes
	assert.Equal(t, 30, TravelTimeMinutes(25))

	// 80 km at 80 km/h is an hour
	assert.Equal(t, 60, TravelTimeMinutes(80))
}

func TestTravelTimeMinimumOneMinute(t *testing.T) {
	assert.Equal(t, 1, TravelTimeMinutes(0.1))
}
