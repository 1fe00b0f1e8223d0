// File: /controllers/admin_place_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"programlaz-api/models"
	"programlaz-api/repositories"
	"programlaz-api/services"
	"programlaz-api/utils"
)

type AdminPlaceController struct {
	placeRepo    *repositories.PlaceRepository
	placeService *services.PlaceService
}

func NewAdminPlaceController(placeRepo *repositories.PlaceRepository, placeService *services.PlaceService) *AdminPlaceController {
	return &AdminPlaceController{
		placeRepo:    placeRepo,
		placeService: placeService,
	}
}

type PlaceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
	PriceLevel  int     `json:"price_level" binding:"required,min=1,max=4"`
	IsOpen      bool    `json:"is_open"`
	IsPremium   bool    `json:"is_premium"`
	IsActive    *bool   `json:"is_active"`

	Images []string `json:"images"`

	Website   *string `json:"website"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Youtube   *string `json:"youtube"`
	Tiktok    *string `json:"tiktok"`
	Email     *string `json:"email"`
	MenuURL   *string `json:"menu_url"`

	FeaturedOrder *int    `json:"featured_order"`
	EventDate     *string `json:"event_date"` // 2006-01-02T15:04 local or 2006-01-02

	OpeningHours models.OpeningHours `json:"opening_hours"`

	FilterIDs []uint `json:"filter_ids"`
}

// ListPlaces returns every place, inactive ones included, for the back-office
func (ac *AdminPlaceController) ListPlaces(c *gin.Context) {
	places, err := ac.placeRepo.ListAll()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching places")
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places, "count": len(places)})
}

func (ac *AdminPlaceController) CreatePlace(c *gin.Context) {
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	place, err := ac.placeFromRequest(req, nil)
	if err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if err := ac.placeService.CreatePlace(place, req.FilterIDs); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendCreated(c, "Place created", place)
}

func (ac *AdminPlaceController) UpdatePlace(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid place id")
		return
	}

	existing, err := ac.placeRepo.GetByID(uint(id))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	place, err := ac.placeFromRequest(req, existing)
	if err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if err := ac.placeService.UpdatePlace(place, req.FilterIDs); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendSuccess(c, "Place updated", place)
}

func (ac *AdminPlaceController) DeletePlace(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid place id")
		return
	}

	if _, err := ac.placeRepo.GetByID(uint(id)); err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	if err := ac.placeService.DeletePlace(uint(id)); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete place")
		return
	}

	utils.SendSuccess(c, "Place deleted", nil)
}

// ExportCSV streams all places as a CSV download
func (ac *AdminPlaceController) ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="helyek.csv"`)

	if err := ac.placeService.ExportCSV(c.Writer); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to export places")
		return
	}
}

// placeFromRequest rebuilds the place from the request body. On updates the
// identity fields and the review-derived rating aggregate are copied from the
// stored row, since the repository's Save writes every column.
func (ac *AdminPlaceController) placeFromRequest(req PlaceRequest, existing *models.Place) (*models.Place, error) {
	place := &models.Place{
		Name:          req.Name,
		Description:   req.Description,
		Address:       req.Address,
		CategoryID:    req.CategoryID,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		PriceLevel:    req.PriceLevel,
		IsOpen:        req.IsOpen,
		IsPremium:     req.IsPremium,
		IsActive:      true,
		Images:        req.Images,
		Website:       req.Website,
		Instagram:     req.Instagram,
		Facebook:      req.Facebook,
		Youtube:       req.Youtube,
		Tiktok:        req.Tiktok,
		Email:         req.Email,
		MenuURL:       req.MenuURL,
		FeaturedOrder: req.FeaturedOrder,
		OpeningHours:  req.OpeningHours,
	}

	if req.IsActive != nil {
		place.IsActive = *req.IsActive
	}

	if req.EventDate != nil && *req.EventDate != "" {
		eventDate, err := parseEventDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		place.EventDate = &eventDate
	}

	if existing != nil {
		place.ID = existing.ID
		place.CreatedAt = existing.CreatedAt
		place.Rating = existing.Rating
		place.RatingCount = existing.RatingCount
	}

	return place, nil
}

func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
