// File: /controllers/favorite_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"programlaz-api/models"
	"programlaz-api/utils"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

// GetFavorites lists the caller's saved places
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	userID := c.GetString("user_id")

	var favorites []models.Favorite
	if err := fc.db.Preload("Place.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites, "count": len(favorites)})
}

// AddFavorite saves a place; saving twice is a no-op conflict
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	userID := c.GetString("user_id")

	placeID, err := strconv.ParseUint(c.Param("placeId"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid place id")
		return
	}

	var place models.Place
	if err := fc.db.Where("id = ? AND is_active = ?", placeID, true).First(&place).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	var existing models.Favorite
	if err := fc.db.Where("user_id = ? AND place_id = ?", userID, placeID).First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "Place already in favorites")
		return
	}

	favorite := models.Favorite{
		UserID:  userID,
		PlaceID: uint(placeID),
	}

	if err := fc.db.Create(&favorite).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to save favorite")
		return
	}

	utils.SendCreated(c, "Place added to favorites", favorite)
}

// RemoveFavorite unsaves a place
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID := c.GetString("user_id")

	placeID, err := strconv.ParseUint(c.Param("placeId"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid place id")
		return
	}

	result := fc.db.Where("user_id = ? AND place_id = ?", userID, placeID).Delete(&models.Favorite{})
	if result.Error != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	if result.RowsAffected == 0 {
		utils.SendError(c, http.StatusNotFound, "Favorite not found")
		return
	}

	utils.SendSuccess(c, "Place removed from favorites", nil)
}
