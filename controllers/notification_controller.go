// File: /controllers/notification_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"programlaz-api/models"
	"programlaz-api/repositories"
	"programlaz-api/services"
	"programlaz-api/utils"
)

type NotificationController struct {
	messagingRepo *repositories.MessagingRepository
	pushService   *services.PushService
}

func NewNotificationController(messagingRepo *repositories.MessagingRepository, pushService *services.PushService) *NotificationController {
	return &NotificationController{
		messagingRepo: messagingRepo,
		pushService:   pushService,
	}
}

type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// Subscribe stores a browser push subscription; re-subscribing the same
// endpoint refreshes its keys
func (nc *NotificationController) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	sub := models.PushSubscription{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}

	// Attach the user when the request carries a valid session
	if userID := c.GetString("user_id"); userID != "" {
		sub.UserID = &userID
	}

	if err := nc.messagingRepo.SaveSubscription(&sub); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to save subscription")
		return
	}

	utils.SendCreated(c, "Subscribed to notifications", nil)
}

type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

func (nc *NotificationController) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if err := nc.messagingRepo.DeleteSubscriptionByEndpoint(req.Endpoint); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to remove subscription")
		return
	}

	utils.SendSuccess(c, "Unsubscribed from notifications", nil)
}

type BroadcastRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
	URL   string `json:"url"`
}

// Broadcast sends a push notification to every subscription (admin only).
// Partial failure is reported in the aggregate counts, not as an error.
func (nc *NotificationController) Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	result, err := nc.pushService.Broadcast(req.Title, req.Body, req.URL)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to broadcast notification")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHistory lists past broadcasts with their aggregate outcomes (admin)
func (nc *NotificationController) GetHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	notifications, err := nc.messagingRepo.ListNotifications(limit)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching notification history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "count": len(notifications)})
}
