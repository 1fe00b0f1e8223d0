// File: /utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Halászbástya Étterem", "halaszbastya-etterem"},
		{"Gulyás & Bor", "gulyas-bor"},
		{"  Szép   Kilátó  ", "szep-kilato"},
		{"ŐRSÉGI ŰRHAJÓ", "orsegi-urhajo"},
		{"Hotel***Budapest", "hotel-budapest"},
		{"2025 Nyári Fesztivál", "2025-nyari-fesztival"},
		{"---", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Slugify(tc.name), "input: %q", tc.name)
	}
}

func TestUniqueSlugNoCollision(t *testing.T) {
	slug := UniqueSlug("Kis Kávézó", func(string) bool { return false })
	assert.Equal(t, "kis-kavezo", slug)
}

func TestUniqueSlugSuffixesOnCollision(t *testing.T) {
	taken := map[string]bool{
		"kis-kavezo":   true,
		"kis-kavezo-2": true,
	}

	slug := UniqueSlug("Kis Kávézó", func(s string) bool { return taken[s] })
	assert.Equal(t, "kis-kavezo-3", slug)
}

func TestUniqueSlugEmptyNameFallsBack(t *testing.T) {
	slug := UniqueSlug("***", func(string) bool { return false })
	assert.Equal(t, "hely", slug)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("valaki@example.com"))
	assert.False(t, IsValidEmail("nem-email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidCoordinates(t *testing.T) {
	assert.True(t, IsValidLatitude(47.4979))
	assert.False(t, IsValidLatitude(91))
	assert.True(t, IsValidLongitude(19.0402))
	assert.False(t, IsValidLongitude(-181))
}

func TestIsValidPriceLevel(t *testing.T) {
	assert.False(t, IsValidPriceLevel(0))
	assert.True(t, IsValidPriceLevel(1))
	assert.True(t, IsValidPriceLevel(4))
	assert.False(t, IsValidPriceLevel(5))
}
