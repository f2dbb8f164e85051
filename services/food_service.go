package services

import (
	"context"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type FoodInput struct {
	Name      string                 `json:"name" binding:"required"`
	ItemType  string                 `json:"itemType"`
	Price     float64                `json:"price"`
	Nutrition map[string]interface{} `json:"nutritionalInformation"`
}

// Create appends the food to the end of the restaurant's menu.
func (s *FoodService) Create(ctx context.Context, restaurantID uint, in FoodInput) (*models.FoodItem, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, restaurantID).Error; err != nil {
		return nil, err
	}

	var maxPos int
	s.db.WithContext(ctx).
		Model(&models.FoodItem{}).
		Where("restaurant_id = ?", restaurantID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPos)

	food := &models.FoodItem{
		RestaurantID: restaurantID,
		Position:     maxPos + 1,
		Name:         in.Name,
		ItemType:     in.ItemType,
		Price:        in.Price,
		Nutrition:    datatypes.JSONMap(in.Nutrition),
	}
	if err := s.db.WithContext(ctx).Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Get(ctx context.Context, foodID uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.WithContext(ctx).First(&food, foodID).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// Update edits catalog fields only. Existing EatenFoodRecord snapshots keep
// the nutrition the food had when it was logged.
func (s *FoodService) Update(ctx context.Context, foodID uint, in FoodInput) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.WithContext(ctx).First(&food, foodID).Error; err != nil {
		return nil, err
	}
	food.Name = in.Name
	food.ItemType = in.ItemType
	food.Price = in.Price
	if in.Nutrition != nil {
		food.Nutrition = datatypes.JSONMap(in.Nutrition)
	}
	if err := s.db.WithContext(ctx).Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Delete(ctx context.Context, foodID uint) error {
	if err := s.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Delete(&models.Review{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.FoodItem{}, foodID).Error
}
