// File: /models/messaging.go
package models

import (
	"time"
)

// PushSubscription is a browser-registered Web Push endpoint
type PushSubscription struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Endpoint  string    `json:"endpoint" gorm:"uniqueIndex;not null;size:1000"`
	P256dh    string    `json:"p256dh" gorm:"not null;size:255"`
	Auth      string    `json:"auth" gorm:"not null;size:255"`
	UserID    *string   `json:"user_id" gorm:"size:191;index"` // nil for anonymous visitors
	CreatedAt time.Time `json:"created_at"`
}

type NewsletterSubscriber struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SentNotification records one admin broadcast with its aggregate outcome
type SentNotification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Body        string    `json:"body" gorm:"type:text"`
	URL         string    `json:"url" gorm:"size:500"`
	SentCount   int       `json:"sent_count" gorm:"default:0"`
	FailedCount int       `json:"failed_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

// BroadcastResult is the aggregate summary of a bulk send.
// Success is true only when every recipient succeeded.
type BroadcastResult struct {
	Sent    int  `json:"sent"`
	Failed  int  `json:"failed"`
	Success bool `json:"success"`
}
