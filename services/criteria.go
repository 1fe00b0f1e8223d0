// File: /services/criteria.go
package services

import (
	"strings"
	"time"

	"programlaz-api/models"
)

// Criteria is the closed set of predicates a visitor can combine. Every
// field is optional; the zero value imposes no constraint. Predicates are
// AND-composed across kinds.
type Criteria struct {
	// Case-insensitive substring against name, description and address
	Search string
	// Case-insensitive substring against the address only
	Locality string
	// Exact match on the owning category slug
	CategorySlug string
	// Exact match on the 1-4 price scale; nil = any
	PriceLevel *int
	// Keep places within this many km of the reference center.
	// Zero means no constraint.
	MaxDistanceKm float64
	// Keep only currently open places
	OpenNow bool
	// Inclusive event-date window at day granularity. A place without an
	// event date is excluded while the window is active.
	EventFrom *time.Time
	EventTo   *time.Time
	// Flattened union of selected tag ids across all filter groups. A place
	// matches when its own tag set intersects this union; the per-group
	// breakdown in the UI is a display convenience, not a per-group AND.
	FilterIDs []uint
}

// IsZero reports whether no predicate is active
func (cr Criteria) IsZero() bool {
	return strings.TrimSpace(cr.Search) == "" &&
		strings.TrimSpace(cr.Locality) == "" &&
		cr.CategorySlug == "" &&
		cr.PriceLevel == nil &&
		cr.MaxDistanceKm <= 0 &&
		!cr.OpenNow &&
		cr.EventFrom == nil && cr.EventTo == nil &&
		len(cr.FilterIDs) == 0
}

// Matches evaluates all active predicates against an annotated place.
// The distance annotation must already be filled in.
func (cr Criteria) Matches(r models.PlaceResult) bool {
	if search := strings.TrimSpace(cr.Search); search != "" {
		q := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) &&
			!strings.Contains(strings.ToLower(r.Address), q) {
			return false
		}
	}

	if locality := strings.TrimSpace(cr.Locality); locality != "" {
		if !strings.Contains(strings.ToLower(r.Address), strings.ToLower(locality)) {
			return false
		}
	}

	if cr.CategorySlug != "" && r.CategorySlug != cr.CategorySlug {
		return false
	}

	if cr.PriceLevel != nil && r.PriceLevel != *cr.PriceLevel {
		return false
	}

	if cr.MaxDistanceKm > 0 && r.DistanceKm > cr.MaxDistanceKm {
		return false
	}

	if cr.OpenNow && !r.IsOpen {
		return false
	}

	if cr.EventFrom != nil || cr.EventTo != nil {
		if !cr.eventDateInWindow(r.EventDate) {
			return false
		}
	}

	if len(cr.FilterIDs) > 0 && !intersects(r.FilterIDs, cr.FilterIDs) {
		return false
	}

	return true
}

// eventDateInWindow checks the inclusive [from 00:00:00, to 23:59:59]
// day-granularity window
func (cr Criteria) eventDateInWindow(eventDate *time.Time) bool {
	if eventDate == nil {
		return false
	}

	if cr.EventFrom != nil {
		from := startOfDay(*cr.EventFrom)
		if eventDate.Before(from) {
			return false
		}
	}

	if cr.EventTo != nil {
		to := endOfDay(*cr.EventTo)
		if eventDate.After(to) {
			return false
		}
	}

	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func intersects(placeTags, selected []uint) bool {
	if len(placeTags) == 0 {
		return false
	}

	set := make(map[uint]struct{}, len(selected))
	for _, id := range selected {
		set[id] = struct{}{}
	}

	for _, id := range placeTags {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
