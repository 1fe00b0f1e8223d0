// File: /controllers/category_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"programlaz-api/models"
	"programlaz-api/repositories"
	"programlaz-api/utils"
)

type CategoryController struct {
	categoryRepo *repositories.CategoryRepository
	filterRepo   *repositories.FilterRepository
}

func NewCategoryController(categoryRepo *repositories.CategoryRepository, filterRepo *repositories.FilterRepository) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		filterRepo:   filterRepo,
	}
}

// GetCategories lists all categories in display order
func (cc *CategoryController) GetCategories(c *gin.Context) {
	var (
		categories []models.Category
		err        error
	)

	if c.Query("header") == "true" {
		categories, err = cc.categoryRepo.ListHeader()
	} else {
		categories, err = cc.categoryRepo.ListOrdered()
	}

	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories, "count": len(categories)})
}

// GetCategory returns one category with the filter groups its UI exposes
func (cc *CategoryController) GetCategory(c *gin.Context) {
	slug := c.Param("slug")

	category, err := cc.categoryRepo.GetBySlug(slug)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Category not found")
		return
	}

	groups, err := cc.filterRepo.GroupsForCategory(category.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching filter groups")
		return
	}

	groupResponses := make([]models.FilterGroupResponse, 0, len(groups))
	for _, group := range groups {
		groupResponses = append(groupResponses, group.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"category":      category,
		"page_title":    category.PageTitle(),
		"filter_groups": groupResponses,
	})
}
