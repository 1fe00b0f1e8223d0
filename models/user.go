// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Name          string    `json:"name" gorm:"not null;size:255"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password      string    `json:"-" gorm:"not null;size:255"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	IsAdmin       bool      `json:"is_admin" gorm:"default:false"`
	Avatar        *string   `json:"avatar" gorm:"size:500"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Favorites []Favorite `json:"favorites,omitempty" gorm:"foreignKey:UserID"`
	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
}

// Favorite marks a place saved by a user
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_favorites_user_place"`
	PlaceID   uint      `json:"place_id" gorm:"not null;uniqueIndex:uk_favorites_user_place"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Place Place `json:"place" gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
}
