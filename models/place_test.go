// File: /models/place_test.go
package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestHeroImage(t *testing.T) {
	empty := Place{}
	assert.Equal(t, "", empty.HeroImage())

	place := Place{Images: pq.StringArray{"hero.jpg", "gallery-1.jpg"}}
	assert.Equal(t, "hero.jpg", place.HeroImage())
}

func TestToResult(t *testing.T) {
	place := Place{
		ID:     3,
		Name:   "Halászbástya Étterem",
		Images: pq.StringArray{"hero.jpg", "gallery-1.jpg"},
		Category: Category{
			Name: "Éttermek",
			Slug: "ettermek",
		},
		Filters: []Filter{{ID: 4}, {ID: 9}},
	}

	result := place.ToResult()

	assert.Equal(t, "Éttermek", result.CategoryName)
	assert.Equal(t, "ettermek", result.CategorySlug)
	assert.Equal(t, []uint{4, 9}, result.FilterIDs)
	assert.Equal(t, "hero.jpg", result.HeroImage)
	assert.Equal(t, 0.0, result.DistanceKm, "distance is annotated later")
}
