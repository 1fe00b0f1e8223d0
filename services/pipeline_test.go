// File: /services/pipeline_test.go
package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"programlaz-api/models"
)

var budapest = GeoPoint{Latitude: 47.4979, Longitude: 19.0402}

func testPlace(id uint, name string, categorySlug string, lat, lng float64) models.Place {
	return models.Place{
		ID:         id,
		Name:       name,
		Slug:       name,
		Latitude:   lat,
		Longitude:  lng,
		PriceLevel: 1,
		IsActive:   true,
		Category: models.Category{
			Name: categorySlug,
			Slug: categorySlug,
		},
	}
}

func restaurantFixture() []models.Place {
	// Three restaurants with price levels 1, 2, 3
	p1 := testPlace(1, "Olcsó Falatozó", "ettermek", 47.50, 19.05)
	p1.PriceLevel = 1
	p2 := testPlace(2, "Városi Bisztró", "ettermek", 47.51, 19.06)
	p2.PriceLevel = 2
	p3 := testPlace(3, "Elegáns Étterem", "ettermek", 47.52, 19.07)
	p3.PriceLevel = 3
	return []models.Place{p1, p2, p3}
}

func TestPriceLevelFilter(t *testing.T) {
	pipeline := NewPipeline(nil)
	level := 2

	results, _ := pipeline.ComputeResults(restaurantFixture(), Criteria{PriceLevel: &level}, budapest, SortByDistance)

	require.Len(t, results, 1)
	assert.Equal(t, "Városi Bisztró", results[0].Name)
}

func TestMaxDistanceFilter(t *testing.T) {
	pipeline := NewPipeline(nil)

	// Roughly 5 km and 15 km north of the center
	near := testPlace(1, "Közeli", "latnivalok", budapest.Latitude+0.045, budapest.Longitude)
	far := testPlace(2, "Távoli", "latnivalok", budapest.Latitude+0.135, budapest.Longitude)

	results, _ := pipeline.ComputeResults([]models.Place{near, far}, Criteria{MaxDistanceKm: 10}, budapest, SortByDistance)

	require.Len(t, results, 1)
	assert.Equal(t, "Közeli", results[0].Name)
	assert.LessOrEqual(t, results[0].DistanceKm, 10.0)
}

func TestMaxDistanceZeroMeansNoConstraint(t *testing.T) {
	pipeline := NewPipeline(nil)

	far := testPlace(1, "Távoli", "latnivalok", budapest.Latitude+0.5, budapest.Longitude)

	results, _ := pipeline.ComputeResults([]models.Place{far}, Criteria{MaxDistanceKm: 0}, budapest, SortByDistance)
	assert.Len(t, results, 1)
}

func TestEventDateInclusiveBoundary(t *testing.T) {
	pipeline := NewPipeline(nil)

	lateEvening := time.Date(2025, 6, 1, 23, 0, 0, 0, time.Local)
	event := testPlace(1, "Esti Koncert", "esemenyek", 47.5, 19.0)
	event.EventDate = &lateEvening

	endOfWindow := time.Date(2025, 6, 2, 23, 30, 0, 0, time.Local)
	lastDay := testPlace(2, "Záró Est", "esemenyek", 47.5, 19.0)
	lastDay.EventDate = &endOfWindow

	after := time.Date(2025, 6, 3, 10, 0, 0, 0, time.Local)
	tooLate := testPlace(3, "Késői", "esemenyek", 47.5, 19.0)
	tooLate.EventDate = &after

	noDate := testPlace(4, "Dátum Nélkül", "esemenyek", 47.5, 19.0)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	results, _ := pipeline.ComputeResults(
		[]models.Place{event, lastDay, tooLate, noDate},
		Criteria{EventFrom: &from, EventTo: &to},
		budapest, SortByName)

	require.Len(t, results, 2)
	names := []string{results[0].Name, results[1].Name}
	assert.Contains(t, names, "Esti Koncert")
	assert.Contains(t, names, "Záró Est")
}

func TestSearchMatchesAnyTextField(t *testing.T) {
	pipeline := NewPipeline(nil)

	byName := testPlace(1, "Gulyás Csárda", "ettermek", 47.5, 19.0)
	byAddress := testPlace(2, "Modern Bisztró", "ettermek", 47.5, 19.0)
	byAddress.Address = "Szeged, Gulyás utca 12"
	noMatch := testPlace(3, "Pizza Ház", "ettermek", 47.5, 19.0)

	results, _ := pipeline.ComputeResults(
		[]models.Place{byName, byAddress, noMatch},
		Criteria{Search: "gulyás"},
		budapest, SortByDistance)

	assert.Len(t, results, 2)
}

func TestWhitespaceSearchImposesNoConstraint(t *testing.T) {
	pipeline := NewPipeline(nil)

	results, _ := pipeline.ComputeResults(restaurantFixture(), Criteria{Search: "   "}, budapest, SortByDistance)
	assert.Len(t, results, 3)
}

func TestTagFilterFlattenedUnion(t *testing.T) {
	pipeline := NewPipeline(nil)

	// Tag 1 and 2 belong to one group, tag 10 to another. A place holding
	// only tag 10 matches a selection spanning both groups because the
	// selection is flattened into one union before matching.
	tagged := testPlace(1, "Teraszos Hely", "ettermek", 47.5, 19.0)
	tagged.Filters = []models.Filter{{ID: 10}}

	untagged := testPlace(2, "Sima Hely", "ettermek", 47.5, 19.0)

	results, _ := pipeline.ComputeResults(
		[]models.Place{tagged, untagged},
		Criteria{FilterIDs: []uint{1, 2, 10}},
		budapest, SortByDistance)

	require.Len(t, results, 1)
	assert.Equal(t, "Teraszos Hely", results[0].Name)
}

func TestFilteredOutputIsSubsetOfInput(t *testing.T) {
	pipeline := NewPipeline(nil)
	input := restaurantFixture()

	criteriaSet := []Criteria{
		{},
		{Search: "étterem"},
		{OpenNow: true},
		{MaxDistanceKm: 3},
		{FilterIDs: []uint{99}},
	}

	inputIDs := make(map[uint]bool)
	for _, p := range input {
		inputIDs[p.ID] = true
	}

	for _, criteria := range criteriaSet {
		results, _ := pipeline.ComputeResults(input, criteria, budapest, SortByDistance)
		assert.LessOrEqual(t, len(results), len(input))
		for _, r := range results {
			assert.True(t, inputIDs[r.ID], "filter stage must not introduce elements")
		}
	}
}

func TestSameCriteriaIsDeterministic(t *testing.T) {
	pipeline := NewPipeline(nil)
	criteria := Criteria{Search: "é", MaxDistanceKm: 50}

	first, _ := pipeline.ComputeResults(restaurantFixture(), criteria, budapest, SortByRating)
	second, _ := pipeline.ComputeResults(restaurantFixture(), criteria, budapest, SortByRating)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestSortKeyChangesOrderNotSet(t *testing.T) {
	pipeline := NewPipeline(nil)
	input := restaurantFixture()

	collect := func(sortBy SortBy) map[uint]bool {
		results, _ := pipeline.ComputeResults(input, Criteria{}, budapest, sortBy)
		ids := make(map[uint]bool)
		for _, r := range results {
			ids[r.ID] = true
		}
		return ids
	}

	byDistance := collect(SortByDistance)
	byRating := collect(SortByRating)
	byName := collect(SortByName)

	assert.Equal(t, byDistance, byRating)
	assert.Equal(t, byDistance, byName)
}

func TestRatingSortDescendingAndStable(t *testing.T) {
	pipeline := NewPipeline(nil)

	a := testPlace(1, "Első", "ettermek", 47.5, 19.0)
	a.Rating = 4.0
	b := testPlace(2, "Második", "ettermek", 47.5, 19.0)
	b.Rating = 4.5
	c := testPlace(3, "Harmadik", "ettermek", 47.5, 19.0)
	c.Rating = 4.0

	results, _ := pipeline.ComputeResults([]models.Place{a, b, c}, Criteria{}, budapest, SortByRating)

	require.Len(t, results, 3)
	assert.Equal(t, uint(2), results[0].ID)
	// Equal ratings keep their input order
	assert.Equal(t, uint(1), results[1].ID)
	assert.Equal(t, uint(3), results[2].ID)
}

func TestNameSortUsesHungarianCollation(t *testing.T) {
	pipeline := NewPipeline(nil)

	places := []models.Place{
		testPlace(1, "Zebra", "latnivalok", 47.5, 19.0),
		testPlace(2, "Écska", "latnivalok", 47.5, 19.0),
		testPlace(3, "Alma", "latnivalok", 47.5, 19.0),
	}

	results, _ := pipeline.ComputeResults(places, Criteria{}, budapest, SortByName)

	require.Len(t, results, 3)
	// É collates with E, not after Z
	assert.Equal(t, "Alma", results[0].Name)
	assert.Equal(t, "Écska", results[1].Name)
	assert.Equal(t, "Zebra", results[2].Name)
}

func TestDistanceSortAscending(t *testing.T) {
	pipeline := NewPipeline(nil)

	far := testPlace(1, "Távoli", "latnivalok", budapest.Latitude+0.2, budapest.Longitude)
	near := testPlace(2, "Közeli", "latnivalok", budapest.Latitude+0.01, budapest.Longitude)

	results, _ := pipeline.ComputeResults([]models.Place{far, near}, Criteria{}, budapest, SortByDistance)

	require.Len(t, results, 2)
	assert.Equal(t, "Közeli", results[0].Name)
	assert.LessOrEqual(t, results[0].DistanceKm, results[1].DistanceKm)
}

func TestConcurrentNameSortsShareOnePipeline(t *testing.T) {
	pipeline := NewPipeline(nil)

	places := []models.Place{
		testPlace(1, "Zebra", "latnivalok", 47.5, 19.0),
		testPlace(2, "Écska", "latnivalok", 47.5, 19.0),
		testPlace(3, "Alma", "latnivalok", 47.5, 19.0),
		testPlace(4, "Őrség", "latnivalok", 47.5, 19.0),
		testPlace(5, "Buda", "latnivalok", 47.5, 19.0),
	}
	expected := []string{"Alma", "Buda", "Écska", "Őrség", "Zebra"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				results, _ := pipeline.ComputeResults(places, Criteria{}, budapest, SortByName)
				for j, name := range expected {
					assert.Equal(t, name, results[j].Name)
				}
			}
		}()
	}
	wg.Wait()
}

func TestCriteriaIsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.True(t, Criteria{Search: "  "}.IsZero())
	assert.False(t, Criteria{OpenNow: true}.IsZero())
	assert.False(t, Criteria{FilterIDs: []uint{1}}.IsZero())
}
