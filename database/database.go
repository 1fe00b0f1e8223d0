// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"programlaz-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.FilterGroup{},
		&models.Filter{},
		&models.Place{},
		&models.PlaceFilter{},
		&models.CategoryFilterGroup{},
		&models.Review{},
		&models.Favorite{},
		&models.PushSubscription{},
		&models.NewsletterSubscriber{},
		&models.SentNotification{},
		&models.SiteStatistic{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better query performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Public listing scans filter on category and activity together
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_places_category_active ON places(category_id, is_active)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for places: %v\n", err)
	}

	// Homepage featured section
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_places_featured ON places(featured_order) WHERE featured_order IS NOT NULL").Error; err != nil {
		fmt.Printf("Warning: Could not create index for featured places: %v\n", err)
	}

	// Event date range queries
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_places_event_date ON places(event_date) WHERE event_date IS NOT NULL").Error; err != nil {
		fmt.Printf("Warning: Could not create index for event dates: %v\n", err)
	}

	// Review listings per place
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_reviews_place_created ON reviews(place_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for reviews: %v\n", err)
	}

	return nil
}
