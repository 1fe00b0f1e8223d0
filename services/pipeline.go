// File: /services/pipeline.go
package services

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"programlaz-api/models"
)

// SortBy selects the ranking key for pipeline output
type SortBy string

const (
	SortByDistance SortBy = "distance"
	SortByRating   SortBy = "rating"
	SortByName     SortBy = "name"
)

// How many of the top results get the routed distance refinement. Bounds
// request volume against the external routing API.
const refineLimit = 10

// Pipeline composes the filtering, annotation and ranking stages into the
// ordered list the map and category views display. Safe for concurrent use:
// each call works on its own slice, and the shared collator, which keeps
// iterator state between compares, is serialized by a mutex.
type Pipeline struct {
	refiner    *RouteRefiner
	collator   *collate.Collator
	collateMu  sync.Mutex
	generation atomic.Uint64
}

func NewPipeline(refiner *RouteRefiner) *Pipeline {
	return &Pipeline{
		refiner:  refiner,
		collator: collate.New(language.Hungarian),
	}
}

// ComputeResults runs the synchronous stages: category scope, predicate
// filter, distance/time annotation, stable ranking. Pure apart from the
// generation bump; the returned generation ties a later refinement back to
// this computation so a stale refinement cannot clobber a newer one.
func (p *Pipeline) ComputeResults(places []models.Place, criteria Criteria, center GeoPoint, sortBy SortBy) ([]models.PlaceResult, uint64) {
	gen := p.generation.Add(1)

	results := make([]models.PlaceResult, 0, len(places))
	for _, place := range places {
		r := place.ToResult()
		r.DistanceKm = Distance(center.Latitude, center.Longitude, place.Latitude, place.Longitude)
		r.TravelTimeMinutes = TravelTimeMinutes(r.DistanceKm)

		if criteria.Matches(r) {
			results = append(results, r)
		}
	}

	p.rank(results, sortBy)

	return results, gen
}

// rank orders results by the selected key. Sorts are stable so re-renders
// stay visually consistent when upstream ordering shifts slightly.
func (p *Pipeline) rank(results []models.PlaceResult, sortBy SortBy) {
	switch sortBy {
	case SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case SortByName:
		p.collateMu.Lock()
		sort.SliceStable(results, func(i, j int) bool {
			return p.collator.CompareString(results[i].Name, results[j].Name) < 0
		})
		p.collateMu.Unlock()
	default: // distance
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceKm < results[j].DistanceKm
		})
	}
}

// RefineTop replaces the haversine estimate of the first few results with a
// routed distance and travel time. Best effort: any routing failure leaves
// the estimate in place, and a computation newer than gen discards the
// whole refinement. Only the displayed numbers change, never the order.
// Returns false when the refinement was skipped or superseded.
func (p *Pipeline) RefineTop(ctx context.Context, gen uint64, center GeoPoint, results []models.PlaceResult) bool {
	if p.refiner == nil || !p.refiner.Enabled() || len(results) == 0 {
		return false
	}

	n := len(results)
	if n > refineLimit {
		n = refineLimit
	}

	type routed struct {
		index   int
		km      float64
		minutes int
	}

	refined := make([]routed, 0, n)
	for i := 0; i < n; i++ {
		km, minutes, err := p.refiner.Route(ctx, center, GeoPoint{
			Latitude:  results[i].Latitude,
			Longitude: results[i].Longitude,
		})
		if err != nil {
			// fall back to the haversine estimate for this entry
			continue
		}
		refined = append(refined, routed{index: i, km: km, minutes: minutes})
	}

	// A newer computation superseded this one; its results are already on
	// screen, so drop the stale refinement instead of overwriting.
	if p.generation.Load() != gen {
		return false
	}

	for _, r := range refined {
		results[r.index].DistanceKm = r.km
		results[r.index].TravelTimeMinutes = r.minutes
		results[r.index].RoutedDistance = true
	}

	return true
}
