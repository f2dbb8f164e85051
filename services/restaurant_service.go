package services

import (
	"context"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RestaurantService struct{ db *gorm.DB }

func NewRestaurantService(db *gorm.DB) *RestaurantService { return &RestaurantService{db: db} }

type RestaurantInput struct {
	Name         string                 `json:"name" binding:"required"`
	URL          string                 `json:"url"`
	Longitude    float64                `json:"longitude"`
	Latitude     float64                `json:"latitude"`
	Telephone    string                 `json:"telephone"`
	Street       string                 `json:"street"`
	Locality     string                 `json:"locality"`
	Region       string                 `json:"region"`
	PostalCode   string                 `json:"postalCode"`
	Country      string                 `json:"country"`
	OpeningHours map[string]interface{} `json:"openingHours"`
}

func (s *RestaurantService) Create(ctx context.Context, in RestaurantInput) (*models.Restaurant, error) {
	r := &models.Restaurant{
		Name:         in.Name,
		URL:          in.URL,
		Longitude:    in.Longitude,
		Latitude:     in.Latitude,
		Telephone:    in.Telephone,
		Street:       in.Street,
		Locality:     in.Locality,
		Region:       in.Region,
		PostalCode:   in.PostalCode,
		Country:      in.Country,
		OpeningHours: datatypes.JSONMap(in.OpeningHours),
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("Menu", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&r, id).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RestaurantService) Update(ctx context.Context, id uint, in RestaurantInput) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, err
	}
	r.Name = in.Name
	r.URL = in.URL
	r.Longitude = in.Longitude
	r.Latitude = in.Latitude
	r.Telephone = in.Telephone
	r.Street = in.Street
	r.Locality = in.Locality
	r.Region = in.Region
	r.PostalCode = in.PostalCode
	r.Country = in.Country
	if in.OpeningHours != nil {
		r.OpeningHours = datatypes.JSONMap(in.OpeningHours)
	}
	if err := s.db.WithContext(ctx).Save(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RestaurantService) SetHeroURL(ctx context.Context, id uint, url string) error {
	return s.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("id = ?", id).
		Update("hero_url", url).Error
}

func (s *RestaurantService) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", id).
		Delete(&models.FoodItem{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Restaurant{}, id).Error
}
