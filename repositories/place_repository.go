// File: /repositories/place_repository.go
package repositories

import (
	"gorm.io/gorm"

	"programlaz-api/models"
)

type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// ListActive returns every active place with its category and filter tags
// preloaded, ready for the filtering pipeline
func (r *PlaceRepository) ListActive() ([]models.Place, error) {
	var places []models.Place
	err := r.db.Preload("Category").Preload("Filters").
		Where("is_active = ?", true).
		Find(&places).Error
	return places, err
}

// ListAll returns every place including inactive ones, for the admin views
func (r *PlaceRepository) ListAll() ([]models.Place, error) {
	var places []models.Place
	err := r.db.Preload("Category").Preload("Filters").
		Order("created_at DESC").
		Find(&places).Error
	return places, err
}

// ListFeatured returns active featured places ordered by featured rank
func (r *PlaceRepository) ListFeatured() ([]models.Place, error) {
	var places []models.Place
	err := r.db.Preload("Category").
		Where("is_active = ? AND featured_order IS NOT NULL", true).
		Order("featured_order ASC").
		Find(&places).Error
	return places, err
}

func (r *PlaceRepository) GetByID(id uint) (*models.Place, error) {
	var place models.Place
	err := r.db.Preload("Category").Preload("Filters").First(&place, id).Error
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepository) GetBySlug(slug string) (*models.Place, error) {
	var place models.Place
	err := r.db.Preload("Category").Preload("Filters").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&place).Error
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// SlugTaken checks slug uniqueness against every place, inactive ones
// included. excludeID skips the place being updated; pass 0 on create.
func (r *PlaceRepository) SlugTaken(slug string, excludeID uint) bool {
	var count int64
	query := r.db.Model(&models.Place{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	query.Count(&count)
	return count > 0
}

func (r *PlaceRepository) Create(place *models.Place) error {
	return r.db.Create(place).Error
}

func (r *PlaceRepository) Update(place *models.Place) error {
	return r.db.Save(place).Error
}

// Delete hard-deletes a place together with its dependent favorites,
// reviews and tag links in one transaction
func (r *PlaceRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("place_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("place_id = ?", id).Delete(&models.PlaceFilter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Place{}, id).Error
	})
}

// SetFilters replaces the place's attached filter tags
func (r *PlaceRepository) SetFilters(placeID uint, filterIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", placeID).Delete(&models.PlaceFilter{}).Error; err != nil {
			return err
		}
		for _, filterID := range filterIDs {
			link := models.PlaceFilter{PlaceID: placeID, FilterID: filterID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RecalculateRating refreshes the denormalized rating fields from reviews
func (r *PlaceRepository) RecalculateRating(placeID uint) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Review{}).
		Where("place_id = ?", placeID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return r.db.Model(&models.Place{}).Where("id = ?", placeID).
		Updates(map[string]interface{}{
			"rating":       stats.Avg,
			"rating_count": stats.Count,
		}).Error
}
