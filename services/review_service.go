package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"

	"gorm.io/gorm"
)

type ReviewStore interface {
	FetchReviewsForFood(ctx context.Context, foodID uint) ([]models.Review, error)
	WriteFoodReviewSummary(ctx context.Context, foodID uint, sum models.ReviewSummary) error
}

type ReviewService struct {
	db    *gorm.DB
	store ReviewStore

	mu        sync.Mutex
	foodLocks map[uint]*sync.Mutex
}

func NewReviewService(db *gorm.DB, store ReviewStore) *ReviewService {
	return &ReviewService{db: db, store: store, foodLocks: make(map[uint]*sync.Mutex)}
}

type ReviewInput struct {
	HealthRating  *float64 `json:"healthRating" binding:"omitempty,min=0,max=5"`
	TasteRating   *float64 `json:"tasteRating" binding:"omitempty,min=0,max=5"`
	Comment       string   `json:"comment"`
	VotesCalories int      `json:"votesCalories"`
	VotesCarbs    int      `json:"votesCarbs"`
	VotesProtein  int      `json:"votesProtein"`
}

// ---------- Review mutations (each triggers a recompute) ----------

func (s *ReviewService) CreateReview(ctx context.Context, userID, foodID uint, in ReviewInput) (*models.Review, error) {
	var food models.FoodItem
	if err := s.db.WithContext(ctx).First(&food, foodID).Error; err != nil {
		return nil, err
	}
	review := &models.Review{
		UserID:        userID,
		FoodID:        foodID,
		HealthRating:  in.HealthRating,
		TasteRating:   in.TasteRating,
		Comment:       in.Comment,
		VotesCalories: in.VotesCalories,
		VotesCarbs:    in.VotesCarbs,
		VotesProtein:  in.VotesProtein,
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	// The review is committed at this point; a recompute failure leaves the
	// summary stale but never rolls the review back.
	if err := s.RecomputeReviewSummary(ctx, foodID); err != nil {
		return review, err
	}
	return review, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, userID, reviewID uint, in ReviewInput) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", reviewID, userID).
		First(&review).Error; err != nil {
		return nil, err
	}
	review.HealthRating = in.HealthRating
	review.TasteRating = in.TasteRating
	review.Comment = in.Comment
	review.VotesCalories = in.VotesCalories
	review.VotesCarbs = in.VotesCarbs
	review.VotesProtein = in.VotesProtein
	if err := s.db.WithContext(ctx).Save(&review).Error; err != nil {
		return nil, err
	}
	if err := s.RecomputeReviewSummary(ctx, review.FoodID); err != nil {
		return &review, err
	}
	return &review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uint) error {
	var review models.Review
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", reviewID, userID).
		First(&review).Error; err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&review).Error; err != nil {
		return err
	}
	return s.RecomputeReviewSummary(ctx, review.FoodID)
}

func (s *ReviewService) ListReviewsForFood(ctx context.Context, foodID uint) ([]models.Review, error) {
	return s.store.FetchReviewsForFood(ctx, foodID)
}

// ---------- Summary recompute ----------

// RecomputeReviewSummary rebuilds the denormalized summary for one food from
// the full review set and replaces it wholesale. Recomputes for the same
// food id are serialized through a per-food mutex so a summary built from a
// stale read can never land after a newer one. The write is not atomic with
// the review mutation that triggered it: on failure the summary stays stale
// until the next successful recompute for that food.
func (s *ReviewService) RecomputeReviewSummary(ctx context.Context, foodID uint) error {
	lock := s.foodLock(foodID)
	lock.Lock()
	defer lock.Unlock()

	reviews, err := s.store.FetchReviewsForFood(ctx, foodID)
	if err != nil {
		return fmt.Errorf("fetch reviews for food %d: %w", foodID, err)
	}
	sum := SummarizeReviews(reviews)
	if err := s.store.WriteFoodReviewSummary(ctx, foodID, sum); err != nil {
		return fmt.Errorf("write review summary for food %d: %w", foodID, err)
	}
	return nil
}

func (s *ReviewService) foodLock(foodID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock := s.foodLocks[foodID]
	if lock == nil {
		lock = &sync.Mutex{}
		s.foodLocks[foodID] = lock
	}
	return lock
}

// SummarizeReviews computes the aggregate a food's summary must equal at
// rest. Absent ratings are excluded from both numerator and denominator;
// an empty review set yields all zeros, never NaN.
func SummarizeReviews(reviews []models.Review) models.ReviewSummary {
	var out models.ReviewSummary
	out.TotalReviews = len(reviews)

	var healthSum, tasteSum float64
	var healthN, tasteN int
	for _, r := range reviews {
		if r.HealthRating != nil {
			healthSum += *r.HealthRating
			healthN++
		}
		if r.TasteRating != nil {
			tasteSum += *r.TasteRating
			tasteN++
		}
		if strings.TrimSpace(r.Comment) != "" {
			out.TotalComments++
		}
		out.Votes.Calories += r.VotesCalories
		out.Votes.Carbs += r.VotesCarbs
		out.Votes.Protein += r.VotesProtein
	}
	if healthN > 0 {
		out.AverageHealthRating = healthSum / float64(healthN)
	}
	if tasteN > 0 {
		out.AverageTasteRating = tasteSum / float64(tasteN)
	}
	return out
}

// FoodWithSummary loads one food with its current denormalized summary.
func (s *ReviewService) FoodWithSummary(ctx context.Context, foodID uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.WithContext(ctx).First(&food, foodID).Error; err != nil {
		return nil, err // may be gorm.ErrRecordNotFound
	}
	return &food, nil
}
