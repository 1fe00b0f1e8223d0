// File: /controllers/admin_filter_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"programlaz-api/models"
	"programlaz-api/repositories"
	"programlaz-api/utils"
)

type AdminFilterController struct {
	filterRepo *repositories.FilterRepository
}

func NewAdminFilterController(filterRepo *repositories.FilterRepository) *AdminFilterController {
	return &AdminFilterController{filterRepo: filterRepo}
}

// ListGroups returns every filter group with its tags for the back-office
func (ac *AdminFilterController) ListGroups(c *gin.Context) {
	groups, err := ac.filterRepo.ListGroups()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error fetching filter groups")
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups, "count": len(groups)})
}

type FilterGroupRequest struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

func (ac *AdminFilterController) CreateGroup(c *gin.Context) {
	var req FilterGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	group := &models.FilterGroup{
		Name:  req.Name,
		Slug:  utils.Slugify(req.Name),
		Order: req.Order,
	}

	if err := ac.filterRepo.CreateGroup(group); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create filter group")
		return
	}

	utils.SendCreated(c, "Filter group created", group)
}

func (ac *AdminFilterController) UpdateGroup(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid group id")
		return
	}

	group, err := ac.filterRepo.GetGroupByID(uint(id))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Filter group not found")
		return
	}

	var req FilterGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	group.Name = req.Name
	group.Slug = utils.Slugify(req.Name)
	group.Order = req.Order

	if err := ac.filterRepo.UpdateGroup(group); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update filter group")
		return
	}

	utils.SendSuccess(c, "Filter group updated", group)
}

func (ac *AdminFilterController) DeleteGroup(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid group id")
		return
	}

	if err := ac.filterRepo.DeleteGroup(uint(id)); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete filter group")
		return
	}

	utils.SendSuccess(c, "Filter group deleted", nil)
}

type FilterRequest struct {
	FilterGroupID uint   `json:"filter_group_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Order         int    `json:"order"`
	IsActive      *bool  `json:"is_active"`
}

func (ac *AdminFilterController) CreateFilter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if _, err := ac.filterRepo.GetGroupByID(req.FilterGroupID); err != nil {
		utils.SendError(c, http.StatusNotFound, "Filter group not found")
		return
	}

	filter := &models.Filter{
		FilterGroupID: req.FilterGroupID,
		Name:          req.Name,
		Slug:          utils.Slugify(req.Name),
		Order:         req.Order,
		IsActive:      true,
	}
	if req.IsActive != nil {
		filter.IsActive = *req.IsActive
	}

	if err := ac.filterRepo.CreateFilter(filter); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create filter")
		return
	}

	utils.SendCreated(c, "Filter created", filter)
}

func (ac *AdminFilterController) UpdateFilter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid filter id")
		return
	}

	filter, err := ac.filterRepo.GetFilterByID(uint(id))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Filter not found")
		return
	}

	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	filter.FilterGroupID = req.FilterGroupID
	filter.Name = req.Name
	filter.Slug = utils.Slugify(req.Name)
	filter.Order = req.Order
	if req.IsActive != nil {
		filter.IsActive = *req.IsActive
	}

	if err := ac.filterRepo.UpdateFilter(filter); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update filter")
		return
	}

	utils.SendSuccess(c, "Filter updated", filter)
}

func (ac *AdminFilterController) DeleteFilter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid filter id")
		return
	}

	if err := ac.filterRepo.DeleteFilter(uint(id)); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete filter")
		return
	}

	utils.SendSuccess(c, "Filter deleted", nil)
}
