// File: /models/place.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type Place struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	Name        string `json:"name" gorm:"not null;size:255"`
	Description string `json:"description" gorm:"type:text"`
	Address     string `json:"address" gorm:"size:500"`

	CategoryID uint `json:"category_id" gorm:"not null;index"`

	Latitude  float64 `json:"latitude" gorm:"not null"`
	Longitude float64 `json:"longitude" gorm:"not null"`

	PriceLevel  int     `json:"price_level" gorm:"default:1"` // 1-4
	Rating      float64 `json:"rating" gorm:"default:0"`
	RatingCount int     `json:"rating_count" gorm:"default:0"`
	IsOpen      bool    `json:"is_open" gorm:"default:false"`
	IsPremium   bool    `json:"is_premium" gorm:"default:false"`
	IsActive    bool    `json:"is_active" gorm:"default:true;index"`

	// First image is the hero image, the rest are gallery photos
	Images pq.StringArray `json:"images" gorm:"type:text[]"`

	Website   *string `json:"website" gorm:"size:500"`
	Instagram *string `json:"instagram" gorm:"size:500"`
	Facebook  *string `json:"facebook" gorm:"size:500"`
	Youtube   *string `json:"youtube" gorm:"size:500"`
	Tiktok    *string `json:"tiktok" gorm:"size:500"`
	Email     *string `json:"email" gorm:"size:255"`
	MenuURL   *string `json:"menu_url" gorm:"size:500"`

	// nil = not featured; positive = display rank on the homepage
	FeaturedOrder *int `json:"featured_order"`

	// Only meaningful for places in the events category
	EventDate *time.Time `json:"event_date"`

	OpeningHours OpeningHours `json:"opening_hours" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Category Category `json:"category" gorm:"foreignKey:CategoryID"`
	Filters  []Filter `json:"filters" gorm:"many2many:place_filters;constraint:OnDelete:CASCADE"`
}

// PlaceFilter is the join row between places and filter tags
type PlaceFilter struct {
	PlaceID   uint      `json:"place_id" gorm:"primaryKey"`
	FilterID  uint      `json:"filter_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// PlaceResult is a place annotated for display by the filtering pipeline.
// Distance and travel time are computed per query, never persisted.
type PlaceResult struct {
	Place
	CategoryName      string  `json:"category_name"`
	CategorySlug      string  `json:"category_slug"`
	FilterIDs         []uint  `json:"filter_ids"`
	HeroImage         string  `json:"hero_image"`
	DistanceKm        float64 `json:"distance_km"`
	TravelTimeMinutes int     `json:"travel_time_minutes"`
	// True once the routing refinement replaced the haversine estimate
	RoutedDistance bool `json:"routed_distance"`
}

// ToResult projects a place into its annotated display form. Distance
// fields are filled in by the pipeline afterwards.
func (p Place) ToResult() PlaceResult {
	filterIDs := make([]uint, 0, len(p.Filters))
	for _, f := range p.Filters {
		filterIDs = append(filterIDs, f.ID)
	}

	return PlaceResult{
		Place:        p,
		CategoryName: p.Category.Name,
		CategorySlug: p.Category.Slug,
		FilterIDs:    filterIDs,
		HeroImage:    p.HeroImage(),
	}
}

// HeroImage returns the first image URL or empty string
func (p Place) HeroImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
