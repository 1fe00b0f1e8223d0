// File: /repositories/filter_repository.go
package repositories

import (
	"gorm.io/gorm"

	"programlaz-api/models"
)

type FilterRepository struct {
	db *gorm.DB
}

func NewFilterRepository(db *gorm.DB) *FilterRepository {
	return &FilterRepository{db: db}
}

func (r *FilterRepository) ListGroups() ([]models.FilterGroup, error) {
	var groups []models.FilterGroup
	err := r.db.Preload("Filters", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).Order("display_order ASC").Find(&groups).Error
	return groups, err
}

// GroupsForCategory returns the filter groups declared applicable to a
// category, so the UI only exposes relevant facets
func (r *FilterRepository) GroupsForCategory(categoryID uint) ([]models.FilterGroup, error) {
	var groups []models.FilterGroup
	err := r.db.Preload("Filters", func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("display_order ASC")
	}).
		Joins("JOIN category_filter_groups ON category_filter_groups.filter_group_id = filter_groups.id").
		Where("category_filter_groups.category_id = ?", categoryID).
		Order("filter_groups.display_order ASC").
		Find(&groups).Error
	return groups, err
}

func (r *FilterRepository) GetGroupByID(id uint) (*models.FilterGroup, error) {
	var group models.FilterGroup
	err := r.db.Preload("Filters").First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *FilterRepository) CreateGroup(group *models.FilterGroup) error {
	return r.db.Create(group).Error
}

func (r *FilterRepository) UpdateGroup(group *models.FilterGroup) error {
	return r.db.Save(group).Error
}

func (r *FilterRepository) DeleteGroup(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var filterIDs []uint
		if err := tx.Model(&models.Filter{}).Where("filter_group_id = ?", id).
			Pluck("id", &filterIDs).Error; err != nil {
			return err
		}
		if len(filterIDs) > 0 {
			if err := tx.Where("filter_id IN ?", filterIDs).Delete(&models.PlaceFilter{}).Error; err != nil {
				return err
			}
			if err := tx.Where("filter_group_id = ?", id).Delete(&models.Filter{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("filter_group_id = ?", id).Delete(&models.CategoryFilterGroup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FilterGroup{}, id).Error
	})
}

func (r *FilterRepository) GetFilterByID(id uint) (*models.Filter, error) {
	var filter models.Filter
	err := r.db.First(&filter, id).Error
	if err != nil {
		return nil, err
	}
	return &filter, nil
}

func (r *FilterRepository) CreateFilter(filter *models.Filter) error {
	return r.db.Create(filter).Error
}

func (r *FilterRepository) UpdateFilter(filter *models.Filter) error {
	return r.db.Save(filter).Error
}

func (r *FilterRepository) DeleteFilter(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("filter_id = ?", id).Delete(&models.PlaceFilter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Filter{}, id).Error
	})
}
