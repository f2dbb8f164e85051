package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`
	FoodID uint `gorm:"index;not null"`

	// nil means the reviewer skipped that rating; excluded from averages.
	HealthRating *float64
	TasteRating  *float64

	Comment string `gorm:"type:text"`

	VotesCalories int
	VotesCarbs    int
	VotesProtein  int
}
