// File: /controllers/place_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"programlaz-api/config"
	"programlaz-api/repositories"
	"programlaz-api/services"
	"programlaz-api/utils"
)

type PlaceController struct {
	placeRepo *repositories.PlaceRepository
	pipeline  *services.Pipeline
	config    *config.Config
}

func NewPlaceController(placeRepo *repositories.PlaceRepository, pipeline *services.Pipeline, cfg *config.Config) *PlaceController {
	return &PlaceController{
		placeRepo: placeRepo,
		pipeline:  pipeline,
		config:    cfg,
	}
}

type PlaceListQuery struct {
	Search      string  `form:"search"`
	Locality    string  `form:"locality"`
	Category    string  `form:"category"`
	PriceLevel  int     `form:"priceLevel" binding:"omitempty,min=1,max=4"`
	MaxDistance float64 `form:"maxDistance"`
	OpenNow     bool    `form:"openNow"`
	EventFrom   string  `form:"eventFrom"` // 2006-01-02
	EventTo     string  `form:"eventTo"`
	Filters     []uint  `form:"filters"` // selected tag ids across all groups
	Latitude    float64 `form:"latitude"`
	Longitude   float64 `form:"longitude"`
	SortBy      string  `form:"sortBy" binding:"omitempty,oneof=distance rating name"`
	Refine      bool    `form:"refine"`
}

// GetPlaces runs the filtering and ranking pipeline over all active places
// and returns the ordered, annotated list for the map and category views
func (pc *PlaceController) GetPlaces(c *gin.Context) {
	var query PlaceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	criteria, err := pc.buildCriteria(query)
	if err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	// Visitor location when granted, fixed default center otherwise
	center := services.GeoPoint{
		Latitude:  pc.config.DefaultCenterLat,
		Longitude: pc.config.DefaultCenterLng,
	}
	if query.Latitude != 0 && query.Longitude != 0 {
		center = services.GeoPoint{Latitude: query.Latitude, Longitude: query.Longitude}
	}

	sortBy := services.SortByDistance
	if query.SortBy != "" {
		sortBy = services.SortBy(query.SortBy)
	}

	places, err := pc.placeRepo.ListActive()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching places")
		return
	}

	results, gen := pc.pipeline.ComputeResults(places, criteria, center, sortBy)

	refined := false
	if query.Refine {
		// Best effort: a slow or failing routing API leaves the estimates
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		refined = pc.pipeline.RefineTop(ctx, gen, center, results)
	}

	c.JSON(http.StatusOK, gin.H{
		"places":  results,
		"count":   len(results),
		"center":  center,
		"sort_by": sortBy,
		"refined": refined,
	})
}

func (pc *PlaceController) buildCriteria(query PlaceListQuery) (services.Criteria, error) {
	criteria := services.Criteria{
		Search:        query.Search,
		Locality:      query.Locality,
		CategorySlug:  query.Category,
		MaxDistanceKm: query.MaxDistance,
		OpenNow:       query.OpenNow,
		FilterIDs:     query.Filters,
	}

	if query.PriceLevel != 0 {
		level := query.PriceLevel
		criteria.PriceLevel = &level
	}

	if query.EventFrom != "" {
		from, err := time.Parse("2006-01-02", query.EventFrom)
		if err != nil {
			return criteria, err
		}
		criteria.EventFrom = &from
	}

	if query.EventTo != "" {
		to, err := time.Parse("2006-01-02", query.EventTo)
		if err != nil {
			return criteria, err
		}
		criteria.EventTo = &to
	}

	return criteria, nil
}

// GetPlace returns one active place by slug for the detail page
func (pc *PlaceController) GetPlace(c *gin.Context) {
	slug := c.Param("slug")

	place, err := pc.placeRepo.GetBySlug(slug)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	c.JSON(http.StatusOK, place.ToResult())
}

// GetFeatured returns the promoted homepage places in featured order
func (pc *PlaceController) GetFeatured(c *gin.Context) {
	places, err := pc.placeRepo.ListFeatured()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching featured places")
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places, "count": len(places)})
}
