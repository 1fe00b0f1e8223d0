// File: /models/review.go
package models

import (
	"time"
)

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PlaceID   uint      `json:"place_id" gorm:"not null;index"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	Rating    int       `json:"rating" gorm:"not null"` // 1-5
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `json:"user" gorm:"foreignKey:UserID"`
	Place Place `json:"-" gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	PlaceID   uint      `json:"place_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (r Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		PlaceID:   r.PlaceID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		UserName:  r.User.Name,
		CreatedAt: r.CreatedAt,
	}
}
