// File: /repositories/messaging_repository.go
package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"programlaz-api/models"
)

type MessagingRepository struct {
	db *gorm.DB
}

func NewMessagingRepository(db *gorm.DB) *MessagingRepository {
	return &MessagingRepository{db: db}
}

// Push subscriptions

func (r *MessagingRepository) ListSubscriptions() ([]models.PushSubscription, error) {
	var subs []models.PushSubscription
	err := r.db.Find(&subs).Error
	return subs, err
}

// SaveSubscription upserts by endpoint; re-subscribing refreshes the keys
func (r *MessagingRepository) SaveSubscription(sub *models.PushSubscription) error {
	var existing models.PushSubscription
	err := r.db.Where("endpoint = ?", sub.Endpoint).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(sub).Error
		}
		return err
	}

	return r.db.Model(&existing).Updates(map[string]interface{}{
		"p256dh":  sub.P256dh,
		"auth":    sub.Auth,
		"user_id": sub.UserID,
	}).Error
}

func (r *MessagingRepository) DeleteSubscriptionByEndpoint(endpoint string) error {
	return r.db.Where("endpoint = ?", endpoint).Delete(&models.PushSubscription{}).Error
}

// Newsletter subscribers

func (r *MessagingRepository) ListActiveSubscribers() ([]models.NewsletterSubscriber, error) {
	var subscribers []models.NewsletterSubscriber
	err := r.db.Where("is_active = ?", true).Find(&subscribers).Error
	return subscribers, err
}

// Subscribe creates or reactivates a newsletter subscription
func (r *MessagingRepository) Subscribe(email string) error {
	var existing models.NewsletterSubscriber
	err := r.db.Where("email = ?", email).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(&models.NewsletterSubscriber{Email: email, IsActive: true}).Error
		}
		return err
	}

	return r.db.Model(&existing).Updates(map[string]interface{}{
		"is_active":       true,
		"unsubscribed_at": nil,
	}).Error
}

func (r *MessagingRepository) Unsubscribe(email string) error {
	now := time.Now()
	result := r.db.Model(&models.NewsletterSubscriber{}).
		Where("email = ? AND is_active = ?", email, true).
		Updates(map[string]interface{}{
			"is_active":       false,
			"unsubscribed_at": &now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Sent notification log

func (r *MessagingRepository) RecordNotification(n *models.SentNotification) error {
	return r.db.Create(n).Error
}

func (r *MessagingRepository) ListNotifications(limit int) ([]models.SentNotification, error) {
	var notifications []models.SentNotification
	err := r.db.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

// Site statistics

// pageViewConflict resolves the unique day index in one statement, so two
// concurrent first hits of a new day cannot race on read-then-create
func pageViewConflict() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"page_views": gorm.Expr("site_statistics.page_views + 1"),
		}),
	}
}

// IncrementPageViews bumps today's counter, creating the row when missing
func (r *MessagingRepository) IncrementPageViews(day string) error {
	return r.db.Clauses(pageViewConflict()).
		Create(&models.SiteStatistic{Day: day, PageViews: 1}).Error
}

func (r *MessagingRepository) ListStatistics(days int) ([]models.SiteStatistic, error) {
	var stats []models.SiteStatistic
	err := r.db.Order("day DESC").Limit(days).Find(&stats).Error
	return stats, err
}
