// File: /controllers/admin_category_controller.go
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

type AdminCategoryController struct {
	categoryRepo    *repositories.CategoryRepository
	categoryService *services.CategoryService
}

func NewAdminCategoryController(categoryRepo *repositories.CategoryRepository, categoryService *services.CategoryService) *AdminCategoryController {
	return &AdminCategoryController{
		categoryRepo:    categoryRepo,
		categoryService: categoryService,
	}
}

type CategoryRequest struct {
	Name            string  `json:"name" binding:"required"`
	ShowInHeader    *bool   `json:"show_in_header"`
	Image           *string `json:"image"`
	Icon            *string `json:"icon"`
	DetailPageTitle *string `json:"detail_page_title"`
	FeaturedOrder   *int    `json:"featured_order"`
	FilterGroupIDs  []uint  `json:"filter_group_ids"`
}

func (ac *AdminCategoryController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	category := &models.Category{
		Name:            req.Name,
		ShowInHeader:    true,
		Image:           req.Image,
		Icon:            req.Icon,
		DetailPageTitle: req.DetailPageTitle,
		FeaturedOrder:   req.FeaturedOrder,
	}
	if req.ShowInHeader != nil {
		category.ShowInHeader = *req.ShowInHeader
	}

	if err := ac.categoryService.CreateCategory(category, req.FilterGroupIDs); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendCreated(c, "Category created", category)
}

func (ac *AdminCategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid category id")
		return
	}

	category, err := ac.categoryRepo.GetByID(uint(id))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	category.Name = req.Name
	category.Image = req.Image
	category.Icon = req.Icon
	category.DetailPageTitle = req.DetailPageTitle
	category.FeaturedOrder = req.FeaturedOrder
	if req.ShowInHeader != nil {
		category.ShowInHeader = *req.ShowInHeader
	}

	if err := ac.categoryService.UpdateCategory(category, req.FilterGroupIDs); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendSuccess(c, "Category updated", category)
}

func (ac *AdminCategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid category id")
		return
	}

	if err := ac.categoryService.DeleteCategory(uint(id)); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendSuccess(c, "Category deleted", nil)
}

// MoveUp swaps the category with the one displayed above it
func (ac *AdminCategoryController) MoveUp(c *gin.Context) {
	ac.move(c, true)
}

// MoveDown swaps the category with the one displayed below it
func (ac *AdminCategoryController) MoveDown(c *gin.Context) {
	ac.move(c, false)
}

func (ac *AdminCategoryController) move(c *gin.Context, up bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid category id")
		return
	}

	if up {
		err = ac.categoryService.MoveUp(uint(id))
	} else {
		err = ac.categoryService.MoveDown(uint(id))
	}

	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendSuccess(c, "Category order updated", nil)
}
