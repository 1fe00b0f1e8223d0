// File: /services/category_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"programlaz-api/models"
	"programlaz-api/repositories"
	"programlaz-api/utils"
)

type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
}

func NewCategoryService(categoryRepo *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryService) CreateCategory(category *models.Category, filterGroupIDs []uint) error {
	if strings.TrimSpace(category.Name) == "" {
		return errors.New("name is required")
	}

	category.Slug = utils.UniqueSlug(category.Name, func(slug string) bool {
		return s.categoryRepo.SlugTaken(slug, 0)
	})

	// Append at the end of the display order
	existing, err := s.categoryRepo.ListOrdered()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		category.Order = existing[len(existing)-1].Order + 1
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	if len(filterGroupIDs) > 0 {
		if err := s.categoryRepo.SetFilterGroups(category.ID, filterGroupIDs); err != nil {
			return fmt.Errorf("failed to link filter groups: %w", err)
		}
	}

	return nil
}

func (s *CategoryService) UpdateCategory(category *models.Category, filterGroupIDs []uint) error {
	if strings.TrimSpace(category.Name) == "" {
		return errors.New("name is required")
	}

	category.Slug = utils.UniqueSlug(category.Name, func(slug string) bool {
		return s.categoryRepo.SlugTaken(slug, category.ID)
	})

	if err := s.categoryRepo.Update(category); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	if filterGroupIDs != nil {
		if err := s.categoryRepo.SetFilterGroups(category.ID, filterGroupIDs); err != nil {
			return fmt.Errorf("failed to update filter groups: %w", err)
		}
	}

	return nil
}

func (s *CategoryService) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}

// MoveUp swaps the category's display position with its closest neighbor
// above it. At the top of the list the call is a no-op.
func (s *CategoryService) MoveUp(id uint) error {
	return s.move(id, true)
}

// MoveDown swaps with the closest neighbor below; no-op at the bottom
func (s *CategoryService) MoveDown(id uint) error {
	return s.move(id, false)
}

func (s *CategoryService) move(id uint, up bool) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}

	neighbor, err := s.categoryRepo.Neighbor(category.Order, up)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // already at the edge
		}
		return err
	}

	return s.categoryRepo.SwapOrder(category, neighbor)
}
