// File: /repositories/category_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"programlaz-api/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListOrdered() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("display_order ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) ListHeader() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("show_in_header = ?", true).
		Order("display_order ASC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("FilterGroups.Filters").First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("FilterGroups.Filters").
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) SlugTaken(slug string, excludeID uint) bool {
	var count int64
	query := r.db.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	query.Count(&count)
	return count > 0
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&models.Place{}).Where("category_id = ?", id).Count(&count)
		if count > 0 {
			return errors.New("category still has places")
		}

		if err := tx.Where("category_id = ?", id).Delete(&models.CategoryFilterGroup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}

// SwapOrder exchanges display positions of two categories in one transaction
func (r *CategoryRepository) SwapOrder(a, b *models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Category{}).Where("id = ?", a.ID).
			Update("display_order", b.Order).Error; err != nil {
			return err
		}
		return tx.Model(&models.Category{}).Where("id = ?", b.ID).
			Update("display_order", a.Order).Error
	})
}

// Neighbor returns the category adjacent to the given display order, either
// the closest above (up=true) or below. Returns gorm.ErrRecordNotFound at
// the edge of the list.
func (r *CategoryRepository) Neighbor(order int, up bool) (*models.Category, error) {
	var neighbor models.Category
	query := r.db.Model(&models.Category{})
	if up {
		query = query.Where("display_order < ?", order).Order("display_order DESC")
	} else {
		query = query.Where("display_order > ?", order).Order("display_order ASC")
	}
	err := query.First(&neighbor).Error
	if err != nil {
		return nil, err
	}
	return &neighbor, nil
}

// SetFilterGroups replaces the filter groups applicable to a category
func (r *CategoryRepository) SetFilterGroups(categoryID uint, groupIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", categoryID).Delete(&models.CategoryFilterGroup{}).Error; err != nil {
			return err
		}
		for _, groupID := range groupIDs {
			link := models.CategoryFilterGroup{CategoryID: categoryID, FilterGroupID: groupID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
