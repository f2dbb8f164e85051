package repositories

import (
	"context"
	"time"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the GORM-backed implementation of the read/write contracts the
// domain services declare (IntakeStore, DiscoveryStore, ReviewStore).
type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) FetchEatenFoodsForUser(ctx context.Context, userID uint, from, to *time.Time) ([]models.EatenFoodRecord, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil && to != nil {
		q = q.Where("date_eaten >= ? AND date_eaten < ?", *from, *to)
	}
	var recs []models.EatenFoodRecord
	err := q.Order("date_eaten DESC").Find(&recs).Error
	return recs, err
}

// maxNearbyCandidates bounds the candidate window of a radius query.
// Everything downstream (menu filtering, pagination, totals) only ever sees
// this window; see DiscoveryService.SearchNearbyFoods.
const maxNearbyCandidates = 100

// Great-circle distance in meters between the query point and each
// restaurant row. The acos argument is clamped so floating-point drift near
// identical points cannot produce NaN.
const haversineMeters = "(6371000 * acos(least(1.0, greatest(-1.0, " +
	"cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) + " +
	"sin(radians(?)) * sin(radians(latitude))))))"

func (s *Store) FetchRestaurantsNear(ctx context.Context, lon, lat, maxMeters float64, allowIDs []uint) ([]models.Restaurant, error) {
	q := s.db.WithContext(ctx).
		Preload("Menu", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where(haversineMeters+" <= ?", lat, lon, lat, maxMeters)
	if len(allowIDs) > 0 {
		q = q.Where("id IN ?", allowIDs)
	}
	var out []models.Restaurant
	err := q.Clauses(clause.OrderBy{
		Expression: clause.Expr{SQL: haversineMeters + " ASC", Vars: []interface{}{lat, lon, lat}},
	}).
		Limit(maxNearbyCandidates).
		Find(&out).Error
	return out, err
}

func (s *Store) FetchReviewsForFood(ctx context.Context, foodID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Order("created_at ASC").
		Find(&reviews).Error
	return reviews, err
}

// WriteFoodReviewSummary replaces the embedded summary wholesale. Column
// updates go through a map so zero values (a food whose last review was
// deleted) are written out rather than skipped.
func (s *Store) WriteFoodReviewSummary(ctx context.Context, foodID uint, sum models.ReviewSummary) error {
	return s.db.WithContext(ctx).
		Model(&models.FoodItem{}).
		Where("id = ?", foodID).
		Updates(map[string]interface{}{
			"summary_average_health_rating": sum.AverageHealthRating,
			"summary_average_taste_rating":  sum.AverageTasteRating,
			"summary_total_reviews":         sum.TotalReviews,
			"summary_total_comments":        sum.TotalComments,
			"summary_votes_calories":        sum.Votes.Calories,
			"summary_votes_carbs":           sum.Votes.Carbs,
			"summary_votes_protein":         sum.Votes.Protein,
		}).Error
}
