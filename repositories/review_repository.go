// File: /repositories/review_repository.go
package repositories

import (
	"gorm.io/gorm"

	"programlaz-api/models"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListForPlace returns a place's reviews, newest first
func (r *ReviewRepository) ListForPlace(placeID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").
		Where("place_id = ?", placeID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ListPage pages through all reviews for the moderation view
func (r *ReviewRepository) ListPage(page, pageSize int) ([]models.Review, int64, error) {
	var total int64
	if err := r.db.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := r.db.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) GetByUserAndPlace(userID string, placeID uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("place_id = ? AND user_id = ?", placeID, userID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Save(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *ReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) Delete(review *models.Review) error {
	return r.db.Delete(review).Error
}
