// File: /utils/slug.go
package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// Hungarian accented letters folded to their ASCII base
var accentFold = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ö': 'o', 'ő': 'o',
	'ú': 'u', 'ü': 'u', 'ű': 'u',
	'Á': 'a', 'É': 'e', 'Í': 'i', 'Ó': 'o', 'Ö': 'o', 'Ő': 'o',
	'Ú': 'u', 'Ü': 'u', 'Ű': 'u',
}

// Slugify converts a display name into a URL-safe slug: accents folded,
// lowercased, non-alphanumeric runs collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range name {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		r = unicode.ToLower(r)

		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}

		if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// UniqueSlug resolves collisions by suffixing -2, -3, ... until taken
// reports the candidate as free.
func UniqueSlug(name string, taken func(slug string) bool) string {
	base := Slugify(name)
	if base == "" {
		base = "hely"
	}

	if !taken(base) {
		return base
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
