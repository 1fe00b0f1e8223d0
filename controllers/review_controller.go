// File: /controllers/review_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"programlaz-api/models"
	"programlaz-api/repositories"
	"programlaz-api/utils"
)

// reviewStore is the slice of the review repository the handlers need
type reviewStore interface {
	ListForPlace(placeID uint) ([]models.Review, error)
	ListPage(page, pageSize int) ([]models.Review, int64, error)
	GetByID(id uint) (*models.Review, error)
	GetByUserAndPlace(userID string, placeID uint) (*models.Review, error)
	Save(review *models.Review) error
	Create(review *models.Review) error
	Delete(review *models.Review) error
}

// reviewPlaceStore resolves places and keeps their rating aggregate fresh
type reviewPlaceStore interface {
	GetByID(id uint) (*models.Place, error)
	GetBySlug(slug string) (*models.Place, error)
	RecalculateRating(placeID uint) error
}

type ReviewController struct {
	reviews reviewStore
	places  reviewPlaceStore
}

func NewReviewController(reviewRepo *repositories.ReviewRepository, placeRepo *repositories.PlaceRepository) *ReviewController {
	return &ReviewController{
		reviews: reviewRepo,
		places:  placeRepo,
	}
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// GetReviews lists a place's reviews, newest first. The place is addressed
// by slug like the rest of the public catalog.
func (rc *ReviewController) GetReviews(c *gin.Context) {
	place, err := rc.places.GetBySlug(c.Param("slug"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	reviews, err := rc.reviews.ListForPlace(place.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching reviews")
		return
	}

	responses := make([]models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, review.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"reviews": responses, "count": len(responses)})
}

// CreateReview adds or replaces the caller's review of a place and
// refreshes the place's denormalized rating
func (rc *ReviewController) CreateReview(c *gin.Context) {
	userID := c.GetString("user_id")

	placeID, err := strconv.ParseUint(c.Param("placeId"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid place id")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if _, err := rc.places.GetByID(uint(placeID)); err != nil {
		utils.SendError(c, http.StatusNotFound, "Place not found")
		return
	}

	// One review per user per place; a second submission updates it
	review, err := rc.reviews.GetByUserAndPlace(userID, uint(placeID))
	if err == nil {
		review.Rating = req.Rating
		review.Comment = req.Comment
		err = rc.reviews.Save(review)
	} else {
		review = &models.Review{
			PlaceID: uint(placeID),
			UserID:  userID,
			Rating:  req.Rating,
			Comment: req.Comment,
		}
		err = rc.reviews.Create(review)
	}

	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to save review")
		return
	}

	if err := rc.places.RecalculateRating(uint(placeID)); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update place rating")
		return
	}

	utils.SendCreated(c, "Review saved", review)
}

// ListAllReviews pages through every review for the moderation view
func (rc *ReviewController) ListAllReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize := 50

	reviews, total, err := rc.reviews.ListPage(page, pageSize)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching reviews")
		return
	}

	responses := make([]models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, review.ToResponse())
	}

	utils.SendPaginated(c, responses, page, pageSize, total)
}

// ModerateDeleteReview removes any review regardless of owner
func (rc *ReviewController) ModerateDeleteReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid review id")
		return
	}

	review, err := rc.reviews.GetByID(uint(reviewID))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Review not found")
		return
	}

	if err := rc.reviews.Delete(review); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	if err := rc.places.RecalculateRating(review.PlaceID); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update place rating")
		return
	}

	utils.SendSuccess(c, "Review deleted", nil)
}

// DeleteReview removes the caller's own review
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	userID := c.GetString("user_id")

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid review id")
		return
	}

	review, err := rc.reviews.GetByID(uint(reviewID))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Review not found")
		return
	}

	if review.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "Not your review")
		return
	}

	if err := rc.reviews.Delete(review); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	if err := rc.places.RecalculateRating(review.PlaceID); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update place rating")
		return
	}

	utils.SendSuccess(c, "Review deleted", nil)
}
