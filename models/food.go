package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FoodItem is one menu entry owned by a restaurant.
type FoodItem struct {
	gorm.Model
	RestaurantID uint   `gorm:"index;not null"`
	Position     int    // order within the owning restaurant's menu
	Name         string `gorm:"not null"`
	ItemType     string `gorm:"index;size:32"`
	Price        float64

	// Sparse: any nutrient key may be absent. Keys like caloriesKcal,
	// proteinGr, sodiumMg, sugarGr.
	Nutrition datatypes.JSONMap

	Summary ReviewSummary `gorm:"embedded;embeddedPrefix:summary_"`
}

// VotesSummary sums the per-review nutrition votes.
type VotesSummary struct {
	Calories int `json:"calories"`
	Carbs    int `json:"carbs"`
	Protein  int `json:"protein"`
}

// ReviewSummary is the denormalized aggregate over all currently-existing
// reviews for one food. It is recomputed in full after every review
// mutation and is only as fresh as the last successful recompute.
type ReviewSummary struct {
	AverageHealthRating float64      `json:"averageHealthRating"`
	AverageTasteRating  float64      `json:"averageTasteRating"`
	TotalReviews        int          `json:"totalReviews"`
	TotalComments       int          `json:"totalComments"`
	Votes               VotesSummary `gorm:"embedded;embeddedPrefix:votes_" json:"votesSummary"`
}
