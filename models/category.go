// File: /models/category.go
package models

import (
	"time"
)

type Category struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Slug         string  `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	Name         string  `json:"name" gorm:"not null;size:255"`
	Order        int     `json:"order" gorm:"column:display_order;default:0"`
	ShowInHeader bool    `json:"show_in_header" gorm:"default:true"`
	Image        *string `json:"image" gorm:"size:500"`
	Icon         *string `json:"icon" gorm:"size:255"`

	// Overrides the category name as the detail page title when set
	DetailPageTitle *string `json:"detail_page_title" gorm:"size:255"`

	// nil = not featured on the homepage
	FeaturedOrder *int `json:"featured_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Places       []Place       `json:"places,omitempty" gorm:"foreignKey:CategoryID"`
	FilterGroups []FilterGroup `json:"filter_groups,omitempty" gorm:"many2many:category_filter_groups;constraint:OnDelete:CASCADE"`
}

// CategoryFilterGroup links a category to the filter groups its UI exposes
type CategoryFilterGroup struct {
	CategoryID    uint      `json:"category_id" gorm:"primaryKey"`
	FilterGroupID uint      `json:"filter_group_id" gorm:"primaryKey"`
	CreatedAt     time.Time `json:"created_at"`
}

// PageTitle returns the detail page title override or the category name
func (c Category) PageTitle() string {
	if c.DetailPageTitle != nil && *c.DetailPageTitle != "" {
		return *c.DetailPageTitle
	}
	return c.Name
}
