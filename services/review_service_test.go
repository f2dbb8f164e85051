package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewStore struct {
	mu       sync.Mutex
	reviews  map[uint][]models.Review
	written  map[uint]models.ReviewSummary
	fetchErr error
	writeErr error
	writes   int
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{
		reviews: map[uint][]models.Review{},
		written: map[uint]models.ReviewSummary{},
	}
}

func (f *fakeReviewStore) FetchReviewsForFood(_ context.Context, foodID uint) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.reviews[foodID], nil
}

func (f *fakeReviewStore) WriteFoodReviewSummary(_ context.Context, foodID uint, sum models.ReviewSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written[foodID] = sum
	f.writes++
	return nil
}

func TestSummarizeReviewsEmpty(t *testing.T) {
	sum := SummarizeReviews(nil)

	assert.Equal(t, 0, sum.TotalReviews)
	assert.Equal(t, 0, sum.TotalComments)
	assert.Equal(t, 0.0, sum.AverageHealthRating)
	assert.Equal(t, 0.0, sum.AverageTasteRating)
	assert.Equal(t, models.VotesSummary{}, sum.Votes)
}

func TestSummarizeReviewsAverages(t *testing.T) {
	reviews := []models.Review{
		{HealthRating: fptr(4), TasteRating: fptr(5), Comment: "great"},
		{HealthRating: fptr(2), TasteRating: nil, Comment: "  "}, // blank comment not counted
		{HealthRating: nil, TasteRating: fptr(3)},
	}

	sum := SummarizeReviews(reviews)

	assert.Equal(t, 3, sum.TotalReviews)
	assert.Equal(t, 1, sum.TotalComments)
	// nil ratings leave both numerator and denominator.
	assert.InDelta(t, 3.0, sum.AverageHealthRating, 1e-9)
	assert.InDelta(t, 4.0, sum.AverageTasteRating, 1e-9)
}

func TestSummarizeReviewsVoteSums(t *testing.T) {
	reviews := []models.Review{
		{VotesCalories: 1, VotesCarbs: -1, VotesProtein: 2},
		{VotesCalories: 3, VotesCarbs: 1, VotesProtein: -1},
	}

	sum := SummarizeReviews(reviews)

	assert.Equal(t, models.VotesSummary{Calories: 4, Carbs: 0, Protein: 1}, sum.Votes)
}

func TestRecomputeReviewSummaryReplacesWholesale(t *testing.T) {
	store := newFakeReviewStore()
	store.reviews[7] = []models.Review{
		{FoodID: 7, HealthRating: fptr(4), TasteRating: fptr(5), Comment: "tasty"},
	}
	svc := NewReviewService(nil, store)

	require.NoError(t, svc.RecomputeReviewSummary(context.Background(), 7))

	sum := store.written[7]
	assert.Equal(t, 1, sum.TotalReviews)
	assert.Equal(t, 1, sum.TotalComments)
	assert.Equal(t, 4.0, sum.AverageHealthRating)
	assert.Equal(t, 5.0, sum.AverageTasteRating)

	// Deleting the only review drives everything back to zero.
	store.reviews[7] = nil
	require.NoError(t, svc.RecomputeReviewSummary(context.Background(), 7))
	assert.Equal(t, models.ReviewSummary{}, store.written[7])
}

func TestRecomputeReviewSummaryIdempotent(t *testing.T) {
	store := newFakeReviewStore()
	store.reviews[3] = []models.Review{{FoodID: 3, HealthRating: fptr(2)}}
	svc := NewReviewService(nil, store)

	require.NoError(t, svc.RecomputeReviewSummary(context.Background(), 3))
	first := store.written[3]
	require.NoError(t, svc.RecomputeReviewSummary(context.Background(), 3))

	assert.Equal(t, first, store.written[3])
	assert.Equal(t, 2, store.writes)
}

func TestRecomputeReviewSummaryErrors(t *testing.T) {
	store := newFakeReviewStore()
	store.fetchErr = errors.New("db down")
	svc := NewReviewService(nil, store)

	err := svc.RecomputeReviewSummary(context.Background(), 1)
	require.Error(t, err)
	assert.Zero(t, store.writes)

	store.fetchErr = nil
	store.writeErr = errors.New("write failed")
	err = svc.RecomputeReviewSummary(context.Background(), 1)
	require.Error(t, err)
}

func TestRecomputeReviewSummaryConcurrentSameFood(t *testing.T) {
	store := newFakeReviewStore()
	store.reviews[9] = []models.Review{{FoodID: 9, TasteRating: fptr(4)}}
	svc := NewReviewService(nil, store)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.RecomputeReviewSummary(context.Background(), 9)
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, store.writes)
	assert.Equal(t, 1, store.written[9].TotalReviews)
}
