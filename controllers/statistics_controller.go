// File: /controllers/statistics_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"programlaz-api/models"
	"programlaz-api/repositories"
	"programlaz-api/utils"
)

type StatisticsController struct {
	db            *gorm.DB
	messagingRepo *repositories.MessagingRepository
}

func NewStatisticsController(db *gorm.DB, messagingRepo *repositories.MessagingRepository) *StatisticsController {
	return &StatisticsController{
		db:            db,
		messagingRepo: messagingRepo,
	}
}

// Track increments today's page view counter; called by the frontend on
// every page load
func (sc *StatisticsController) Track(c *gin.Context) {
	day := time.Now().Format("2006-01-02")

	if err := sc.messagingRepo.IncrementPageViews(day); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to track page view")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSummary returns the admin dashboard numbers: content counts and the
// recent daily page view series
func (sc *StatisticsController) GetSummary(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}

	var placeCount, activePlaceCount, categoryCount, reviewCount, favoriteCount int64
	var subscriberCount, pushSubscriptionCount int64

	sc.db.Model(&models.Place{}).Count(&placeCount)
	sc.db.Model(&models.Place{}).Where("is_active = ?", true).Count(&activePlaceCount)
	sc.db.Model(&models.Category{}).Count(&categoryCount)
	sc.db.Model(&models.Review{}).Count(&reviewCount)
	sc.db.Model(&models.Favorite{}).Count(&favoriteCount)
	sc.db.Model(&models.NewsletterSubscriber{}).Where("is_active = ?", true).Count(&subscriberCount)
	sc.db.Model(&models.PushSubscription{}).Count(&pushSubscriptionCount)

	// Places per category for the dashboard chart
	var perCategory []struct {
		CategoryName string `json:"category_name"`
		Count        int64  `json:"count"`
	}
	sc.db.Table("places").
		Select("categories.name as category_name, COUNT(places.id) as count").
		Joins("JOIN categories ON categories.id = places.category_id").
		Where("places.is_active = ?", true).
		Group("categories.name").
		Order("count DESC").
		Scan(&perCategory)

	stats, err := sc.messagingRepo.ListStatistics(days)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"places":             placeCount,
		"active_places":      activePlaceCount,
		"categories":         categoryCount,
		"reviews":            reviewCount,
		"favorites":          favoriteCount,
		"subscribers":        subscriberCount,
		"push_subscriptions": pushSubscriptionCount,
		"places_by_category": perCategory,
		"daily_page_views":   stats,
	})
}
