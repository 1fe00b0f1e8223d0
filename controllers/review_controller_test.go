// File: /controllers/review_controller_test.go
package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"programlaz-api/models"
)

type fakeReviewStore struct {
	byPlace map[uint][]models.Review
}

func (f *fakeReviewStore) ListForPlace(placeID uint) ([]models.Review, error) {
	return f.byPlace[placeID], nil
}

func (f *fakeReviewStore) ListPage(page, pageSize int) ([]models.Review, int64, error) {
	return nil, 0, nil
}

func (f *fakeReviewStore) GetByID(id uint) (*models.Review, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewStore) GetByUserAndPlace(userID string, placeID uint) (*models.Review, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewStore) Save(review *models.Review) error   { return nil }
func (f *fakeReviewStore) Create(review *models.Review) error { return nil }
func (f *fakeReviewStore) Delete(review *models.Review) error { return nil }

type fakeReviewPlaceStore struct {
	bySlug map[string]*models.Place
}

func (f *fakeReviewPlaceStore) GetBySlug(slug string) (*models.Place, error) {
	if place, ok := f.bySlug[slug]; ok {
		return place, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewPlaceStore) GetByID(id uint) (*models.Place, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewPlaceStore) RecalculateRating(placeID uint) error { return nil }

// reviewTestRouter registers the handler under the public catalog route
func reviewTestRouter(rc *ReviewController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/places/:slug/reviews", rc.GetReviews)
	return r
}

func TestGetReviewsBySlug(t *testing.T) {
	place := &models.Place{ID: 5, Slug: "halaszbastya-etterem"}

	rc := &ReviewController{
		reviews: &fakeReviewStore{byPlace: map[uint][]models.Review{
			5: {
				{ID: 1, PlaceID: 5, Rating: 5, Comment: "Nagyon finom", User: models.User{Name: "Kata"}},
				{ID: 2, PlaceID: 5, Rating: 4, Comment: "Szép kilátás", User: models.User{Name: "Bence"}},
			},
		}},
		places: &fakeReviewPlaceStore{bySlug: map[string]*models.Place{place.Slug: place}},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/halaszbastya-etterem/reviews", nil)
	reviewTestRouter(rc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var body struct {
		Reviews []models.ReviewResponse `json:"reviews"`
		Count   int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "Kata", body.Reviews[0].UserName)
}

func TestGetReviewsUnknownSlug(t *testing.T) {
	rc := &ReviewController{
		reviews: &fakeReviewStore{},
		places:  &fakeReviewPlaceStore{},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/nincs-ilyen/reviews", nil)
	reviewTestRouter(rc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReviewsPlaceWithoutReviews(t *testing.T) {
	place := &models.Place{ID: 9, Slug: "uj-hely"}

	rc := &ReviewController{
		reviews: &fakeReviewStore{},
		places:  &fakeReviewPlaceStore{bySlug: map[string]*models.Place{place.Slug: place}},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/uj-hely/reviews", nil)
	reviewTestRouter(rc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}
