// File: /services/place_service.go
package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"programlaz-api/models"
	"programlaz-api/repositories"
	"programlaz-api/utils"
)

type PlaceService struct {
	placeRepo *repositories.PlaceRepository
}

func NewPlaceService(placeRepo *repositories.PlaceRepository) *PlaceService {
	return &PlaceService{
		placeRepo: placeRepo,
	}
}

// CreatePlace assigns a unique slug from the name and stores the place with
// its filter tags. Slug uniqueness is checked against all existing places,
// inactive ones included.
func (s *PlaceService) CreatePlace(place *models.Place, filterIDs []uint) error {
	if err := s.validate(place); err != nil {
		return err
	}

	place.Slug = utils.UniqueSlug(place.Name, func(slug string) bool {
		return s.placeRepo.SlugTaken(slug, 0)
	})

	if err := s.placeRepo.Create(place); err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}

	if len(filterIDs) > 0 {
		if err := s.placeRepo.SetFilters(place.ID, filterIDs); err != nil {
			return fmt.Errorf("failed to attach filters: %w", err)
		}
	}

	return nil
}

// UpdatePlace recomputes the slug from the (possibly renamed) place,
// excluding the place itself from the uniqueness check
func (s *PlaceService) UpdatePlace(place *models.Place, filterIDs []uint) error {
	if err := s.validate(place); err != nil {
		return err
	}

	place.Slug = utils.UniqueSlug(place.Name, func(slug string) bool {
		return s.placeRepo.SlugTaken(slug, place.ID)
	})

	if err := s.placeRepo.Update(place); err != nil {
		return fmt.Errorf("failed to update place: %w", err)
	}

	if filterIDs != nil {
		if err := s.placeRepo.SetFilters(place.ID, filterIDs); err != nil {
			return fmt.Errorf("failed to update filters: %w", err)
		}
	}

	return nil
}

// DeletePlace hard-deletes the place; favorites, reviews and tag links go
// with it
func (s *PlaceService) DeletePlace(id uint) error {
	return s.placeRepo.Delete(id)
}

func (s *PlaceService) validate(place *models.Place) error {
	if strings.TrimSpace(place.Name) == "" {
		return errors.New("name is required")
	}
	if !utils.IsValidLatitude(place.Latitude) || !utils.IsValidLongitude(place.Longitude) {
		return errors.New("invalid coordinates")
	}
	if !utils.IsValidPriceLevel(place.PriceLevel) {
		return errors.New("price level must be between 1 and 4")
	}
	if place.Rating < 0 || place.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}

// ExportCSV writes all places (active and inactive) as a CSV document for
// the admin back-office
func (s *PlaceService) ExportCSV(w io.Writer) error {
	places, err := s.placeRepo.ListAll()
	if err != nil {
		return fmt.Errorf("failed to load places: %w", err)
	}

	writer := csv.NewWriter(w)

	header := []string{"id", "slug", "name", "category", "address", "latitude", "longitude",
		"price_level", "rating", "rating_count", "is_open", "is_premium", "is_active", "event_date"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, p := range places {
		eventDate := ""
		if p.EventDate != nil {
			eventDate = p.EventDate.Format("2006-01-02")
		}

		row := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Slug,
			p.Name,
			p.Category.Name,
			p.Address,
			strconv.FormatFloat(p.Latitude, 'f', 6, 64),
			strconv.FormatFloat(p.Longitude, 'f', 6, 64),
			strconv.Itoa(p.PriceLevel),
			strconv.FormatFloat(p.Rating, 'f', 1, 64),
			strconv.Itoa(p.RatingCount),
			strconv.FormatBool(p.IsOpen),
			strconv.FormatBool(p.IsPremium),
			strconv.FormatBool(p.IsActive),
			eventDate,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
