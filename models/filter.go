// File: /models/filter.go
package models

import (
	"time"
)

// FilterGroup is a named facet group such as "Season" or "Amenities"
type FilterGroup struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Filters []Filter `json:"filters,omitempty" gorm:"foreignKey:FilterGroupID"`
}

// Filter is a single tag within a filter group, attachable to places
type Filter struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FilterGroupID uint      `json:"filter_group_id" gorm:"not null;index"`
	Slug          string    `json:"slug" gorm:"not null;size:255;index"`
	Name          string    `json:"name" gorm:"not null;size:255"`
	Order         int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	FilterGroup FilterGroup `json:"filter_group,omitempty" gorm:"foreignKey:FilterGroupID"`
}

// FilterGroupResponse is a group with its active tags for the category UI
type FilterGroupResponse struct {
	ID      uint     `json:"id"`
	Slug    string   `json:"slug"`
	Name    string   `json:"name"`
	Order   int      `json:"order"`
	Filters []Filter `json:"filters"`
}

func (g FilterGroup) ToResponse() FilterGroupResponse {
	active := make([]Filter, 0, len(g.Filters))
	for _, f := range g.Filters {
		if f.IsActive {
			active = append(active, f)
		}
	}

	return FilterGroupResponse{
		ID:      g.ID,
		Slug:    g.Slug,
		Name:    g.Name,
		Order:   g.Order,
		Filters: active,
	}
}
