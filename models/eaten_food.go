package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SourceAI         = "AI"
	SourceRestaurant = "Restaurant"
)

// EatenFoodRecord is an immutable log entry of a meal a user consumed.
// Nutrition is a snapshot captured at logging time; aggregation always uses
// the snapshot, never a live join, so later edits to the referenced food do
// not rewrite history. Records are created once and only ever deleted.
type EatenFoodRecord struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	FoodID    *uint     `gorm:"index"` // nil for free-form AI-described meals
	DateEaten time.Time `gorm:"index"`
	Portion   float64
	Nutrition datatypes.JSONMap
	Source    string `gorm:"size:16"` // SourceAI | SourceRestaurant
}
