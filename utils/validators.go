// File: /utils/validators.go
package utils

import (
	"regexp"
	"unicode"
)

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var (
		hasUpper  = false
		hasLower  = false
		hasNumber = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	// At least 2 of 3 character types required
	count := 0
	if hasUpper {
		count++
	}
	if hasLower {
		count++
	}
	if hasNumber {
		count++
	}

	return count >= 2
}

// IsValidLatitude checks if latitude is valid
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude checks if longitude is valid
func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// IsValidPriceLevel checks the 1-4 price scale
func IsValidPriceLevel(level int) bool {
	return level >= 1 && level <= 4
}
