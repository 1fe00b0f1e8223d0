// File: /models/statistic.go
package models

import (
	"time"
)

// SiteStatistic holds one day's aggregated page view counter
type SiteStatistic struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Day       string    `json:"day" gorm:"uniqueIndex;not null;size:10"` // "2006-01-02"
	PageViews int64     `json:"page_views" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
