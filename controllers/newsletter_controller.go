// File: /controllers/newsletter_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"programlaz-api/repositories"
	"programlaz-api/services"
	"programlaz-api/utils"
)

type NewsletterController struct {
	messagingRepo *repositories.MessagingRepository
	emailService  *services.EmailService
}

func NewNewsletterController(messagingRepo *repositories.MessagingRepository, emailService *services.EmailService) *NewsletterController {
	return &NewsletterController{
		messagingRepo: messagingRepo,
		emailService:  emailService,
	}
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req NewsletterSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidEmail(req.Email) {
		utils.SendValidationError(c, "Invalid email address")
		return
	}

	if err := nc.messagingRepo.Subscribe(req.Email); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	// Confirmation failure should not undo the subscription
	if err := nc.emailService.SendSubscribeConfirmation(req.Email); err != nil {
		fmt.Printf("Failed to send subscribe confirmation to %s: %v\n", req.Email, err)
	}

	utils.SendCreated(c, "Subscribed to newsletter", nil)
}

func (nc *NewsletterController) Unsubscribe(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		var req NewsletterSubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.SendValidationError(c, "Email is required")
			return
		}
		email = req.Email
	}

	if err := nc.messagingRepo.Unsubscribe(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Email is not subscribed")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to unsubscribe")
		return
	}

	utils.SendSuccess(c, "Unsubscribed from newsletter", nil)
}

type NewsletterBroadcastRequest struct {
	Subject     string `json:"subject" binding:"required"`
	HTMLContent string `json:"html_content" binding:"required"`
	TextContent string `json:"text_content" binding:"required"`
}

// Broadcast sends the newsletter to every active subscriber (admin only)
func (nc *NewsletterController) Broadcast(c *gin.Context) {
	var req NewsletterBroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	subscribers, err := nc.messagingRepo.ListActiveSubscribers()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching subscribers")
		return
	}

	result := nc.emailService.SendNewsletter(req.Subject, req.HTMLContent, req.TextContent, subscribers)
	c.JSON(http.StatusOK, result)
}
