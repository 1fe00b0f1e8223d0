// File: /controllers/admin_place_controller_test.go
package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlaceRequest() PlaceRequest {
	return PlaceRequest{
		Name:       "Halászbástya Étterem",
		CategoryID: 1,
		Latitude:   47.5022,
		Longitude:  19.0344,
		PriceLevel: 3,
	}
}

func TestPlaceFromRequestNewPlace(t *testing.T) {
	ac := &AdminPlaceController{}

	place, err := ac.placeFromRequest(samplePlaceRequest(), nil)

	require.NoError(t, err)
	assert.Equal(t, uint(0), place.ID)
	assert.True(t, place.IsActive)
	assert.Equal(t, 0.0, place.Rating)
	assert.Equal(t, 0, place.RatingCount)
}

func TestPlaceFromRequestUpdateKeepsRatingAggregate(t *testing.T) {
	ac := &AdminPlaceController{}

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	existing := samplePlaceRequest()
	stored, err := ac.placeFromRequest(existing, nil)
	require.NoError(t, err)
	stored.ID = 7
	stored.CreatedAt = created
	stored.Rating = 4.3
	stored.RatingCount = 12

	// An admin edit must not zero out the review-derived numbers
	edit := samplePlaceRequest()
	edit.Description = "Felújított terasz"

	place, err := ac.placeFromRequest(edit, stored)

	require.NoError(t, err)
	assert.Equal(t, uint(7), place.ID)
	assert.Equal(t, created, place.CreatedAt)
	assert.Equal(t, 4.3, place.Rating)
	assert.Equal(t, 12, place.RatingCount)
	assert.Equal(t, "Felújított terasz", place.Description)
}

func TestPlaceFromRequestBadEventDate(t *testing.T) {
	ac := &AdminPlaceController{}

	req := samplePlaceRequest()
	bad := "nem-datum"
	req.EventDate = &bad

	_, err := ac.placeFromRequest(req, nil)
	assert.Error(t, err)
}

func TestPlaceFromRequestEventDateFormats(t *testing.T) {
	ac := &AdminPlaceController{}

	withTime := samplePlaceRequest()
	value := "2025-06-01T19:30"
	withTime.EventDate = &value

	place, err := ac.placeFromRequest(withTime, nil)
	require.NoError(t, err)
	require.NotNil(t, place.EventDate)
	assert.Equal(t, 19, place.EventDate.Hour())

	dateOnly := samplePlaceRequest()
	day := "2025-06-01"
	dateOnly.EventDate = &day

	place, err = ac.placeFromRequest(dateOnly, nil)
	require.NoError(t, err)
	require.NotNil(t, place.EventDate)
	assert.Equal(t, 0, place.EventDate.Hour())
}
