// File: /database/seed.go
package database

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"programlaz-api/models"
	"programlaz-api/utils"
)

// SeedData loads a minimal Hungarian catalog for development. Skipped when
// categories already exist.
func SeedData(db *gorm.DB) error {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Éttermek", Slug: "ettermek", Order: 1, ShowInHeader: true},
		{Name: "Szállások", Slug: "szallasok", Order: 2, ShowInHeader: true},
		{Name: "Látnivalók", Slug: "latnivalok", Order: 3, ShowInHeader: true},
		{Name: "Események", Slug: "esemenyek", Order: 4, ShowInHeader: true},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	seasonGroup := models.FilterGroup{Name: "Évszak", Slug: "evszak", Order: 1}
	amenityGroup := models.FilterGroup{Name: "Szolgáltatások", Slug: "szolgaltatasok", Order: 2}
	if err := db.Create(&seasonGroup).Error; err != nil {
		return err
	}
	if err := db.Create(&amenityGroup).Error; err != nil {
		return err
	}

	filters := []models.Filter{
		{FilterGroupID: seasonGroup.ID, Name: "Nyár", Slug: "nyar", Order: 1, IsActive: true},
		{FilterGroupID: seasonGroup.ID, Name: "Tél", Slug: "tel", Order: 2, IsActive: true},
		{FilterGroupID: amenityGroup.ID, Name: "Kutyabarát", Slug: "kutyabarat", Order: 1, IsActive: true},
		{FilterGroupID: amenityGroup.ID, Name: "Terasz", Slug: "terasz", Order: 2, IsActive: true},
	}
	if err := db.Create(&filters).Error; err != nil {
		return fmt.Errorf("failed to seed filters: %w", err)
	}

	// All four groups apply to restaurants, seasons to events
	links := []models.CategoryFilterGroup{
		{CategoryID: categories[0].ID, FilterGroupID: seasonGroup.ID},
		{CategoryID: categories[0].ID, FilterGroupID: amenityGroup.ID},
		{CategoryID: categories[3].ID, FilterGroupID: seasonGroup.ID},
	}
	if err := db.Create(&links).Error; err != nil {
		return err
	}

	eventDate := time.Date(time.Now().Year(), 8, 20, 19, 0, 0, 0, time.Local)
	featured := 1

	places := []models.Place{
		{
			Name:        "Halászbástya Étterem",
			Slug:        utils.Slugify("Halászbástya Étterem"),
			Description: "Panorámás étterem a Budai Várban.",
			Address:     "Budapest, Szentháromság tér 5, 1014",
			CategoryID:  categories[0].ID,
			Latitude:    47.5022,
			Longitude:   19.0344,
			PriceLevel:  4,
			Rating:      4.7,
			RatingCount: 1250,
			IsOpen:      true,
			IsPremium:   true,
			IsActive:    true,
			Images:      pq.StringArray{"https://images.programlaz.hu/halaszbastya-1.jpg"},

			FeaturedOrder: &featured,
		},
		{
			Name:        "Balatoni Nyári Fesztivál",
			Slug:        utils.Slugify("Balatoni Nyári Fesztivál"),
			Description: "Egész napos zenei fesztivál a tóparton.",
			Address:     "Siófok, Petőfi sétány 3, 8600",
			CategoryID:  categories[3].ID,
			Latitude:    46.9048,
			Longitude:   18.0567,
			PriceLevel:  2,
			IsOpen:      true,
			IsActive:    true,
			EventDate:   &eventDate,
		},
	}
	if err := db.Create(&places).Error; err != nil {
		return fmt.Errorf("failed to seed places: %w", err)
	}

	return nil
}
