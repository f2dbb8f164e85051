package services

import (
	"context"
	"errors"
	"testing"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fakeDiscoveryStore struct {
	restaurants []models.Restaurant
	err         error

	gotLon, gotLat, gotMax float64
	gotAllowIDs            []uint
}

func (f *fakeDiscoveryStore) FetchRestaurantsNear(_ context.Context, lon, lat, maxMeters float64, allowIDs []uint) ([]models.Restaurant, error) {
	f.gotLon, f.gotLat, f.gotMax = lon, lat, maxMeters
	f.gotAllowIDs = allowIDs
	return f.restaurants, f.err
}

func fptr(v float64) *float64 { return &v }

func nearbyFixture() []models.Restaurant {
	return []models.Restaurant{
		{
			Model: gorm.Model{ID: 1},
			Name:  "Green Bowl", Longitude: -73.99, Latitude: 40.73,
			Menu: []models.FoodItem{
				{
					Model: gorm.Model{ID: 11}, RestaurantID: 1, Position: 0,
					Name: "Kale Salad", ItemType: "salad",
					Nutrition: datatypes.JSONMap{"caloriesKcal": 320.0},
					Summary:   models.ReviewSummary{AverageHealthRating: 4.5, AverageTasteRating: 3.5, TotalReviews: 10},
				},
				{
					Model: gorm.Model{ID: 12}, RestaurantID: 1, Position: 1,
					Name: "Double Burger", ItemType: "burger",
					Nutrition: datatypes.JSONMap{"caloriesKcal": 950.0},
					Summary:   models.ReviewSummary{AverageHealthRating: 2.0, AverageTasteRating: 4.8, TotalReviews: 25},
				},
			},
		},
		{
			Model: gorm.Model{ID: 2},
			Name:  "Corner Deli", Longitude: -73.98, Latitude: 40.74,
			Menu: []models.FoodItem{
				{
					Model: gorm.Model{ID: 21}, RestaurantID: 2, Position: 0,
					Name: "Turkey Sandwich", ItemType: "sandwich",
					Nutrition: datatypes.JSONMap{"caloriesKcal": 540.0},
					// No reviews yet: the food has no rating at all.
				},
			},
		},
	}
}

func TestSearchNearbyFoodsFlattensInOrder(t *testing.T) {
	store := &fakeDiscoveryStore{restaurants: nearbyFixture()}
	svc := NewDiscoveryService(store)

	out, err := svc.SearchNearbyFoods(context.Background(), [2]float64{-73.99, 40.73}, 2000, Pagination{}, SearchFilters{})

	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalItems)
	require.Len(t, out.Items, 3)
	// Proximity order first, then menu position within each restaurant.
	assert.Equal(t, uint(11), out.Items[0].ID)
	assert.Equal(t, uint(12), out.Items[1].ID)
	assert.Equal(t, uint(21), out.Items[2].ID)
	assert.Equal(t, "Green Bowl", out.Items[0].Restaurant.Name)
	assert.Equal(t, [2]float64{-73.99, 40.73}, out.Items[0].Restaurant.Location.Coordinates)

	assert.Equal(t, -73.99, store.gotLon)
	assert.Equal(t, 40.73, store.gotLat)
	assert.Equal(t, 2000.0, store.gotMax)
}

func TestSearchNearbyFoodsRestaurantAllowList(t *testing.T) {
	store := &fakeDiscoveryStore{restaurants: nearbyFixture()[:1]}
	svc := NewDiscoveryService(store)

	out, err := svc.SearchNearbyFoods(context.Background(), [2]float64{0, 0}, 1000, Pagination{},
		SearchFilters{RestaurantIDs: []uint{1}})

	require.NoError(t, err)
	assert.Equal(t, []uint{1}, store.gotAllowIDs)
	assert.Equal(t, 2, out.TotalItems)
}

func TestSearchNearbyFoodsEmptyIsIndistinguishable(t *testing.T) {
	// No restaurants in range and restaurants-with-no-matches produce the
	// same shape.
	noRestaurants := &fakeDiscoveryStore{}
	svcA := NewDiscoveryService(noRestaurants)
	outA, err := svcA.SearchNearbyFoods(context.Background(), [2]float64{0, 0}, 100, Pagination{}, SearchFilters{})
	require.NoError(t, err)

	nothingMatches := &fakeDiscoveryStore{restaurants: nearbyFixture()}
	svcB := NewDiscoveryService(nothingMatches)
	outB, err := svcB.SearchNearbyFoods(context.Background(), [2]float64{0, 0}, 100, Pagination{},
		SearchFilters{Name: "no such dish"})
	require.NoError(t, err)

	assert.Equal(t, outA, outB)
	assert.NotNil(t, outA.Items)
	assert.Empty(t, outA.Items)
	assert.Equal(t, 0, outA.TotalItems)
	assert.False(t, outA.HasMore)
}

func TestMatchesFiltersRanges(t *testing.T) {
	foods := nearbyFixture()
	salad := foods[0].Menu[0]
	burger := foods[0].Menu[1]
	unrated := foods[1].Menu[0]

	assert.True(t, matchesFilters(salad, SearchFilters{MinHealthRating: fptr(4.0)}))
	assert.False(t, matchesFilters(burger, SearchFilters{MinHealthRating: fptr(4.0)}))

	// Bounds are inclusive.
	assert.True(t, matchesFilters(salad, SearchFilters{MinHealthRating: fptr(4.5), MaxHealthRating: fptr(4.5)}))

	// A food with no reviews has no rating and fails any rating range.
	assert.False(t, matchesFilters(unrated, SearchFilters{MinHealthRating: fptr(0.0)}))
	assert.True(t, matchesFilters(unrated, SearchFilters{}))

	assert.True(t, matchesFilters(salad, SearchFilters{MaxCalories: fptr(400.0)}))
	assert.False(t, matchesFilters(burger, SearchFilters{MaxCalories: fptr(400.0)}))
}

func TestMatchesFiltersNameAndType(t *testing.T) {
	salad := nearbyFixture()[0].Menu[0]

	assert.True(t, matchesFilters(salad, SearchFilters{Name: "kale"}))
	assert.True(t, matchesFilters(salad, SearchFilters{Name: "SALAD"}))
	assert.False(t, matchesFilters(salad, SearchFilters{Name: "burger"}))

	assert.True(t, matchesFilters(salad, SearchFilters{ItemType: "salad"}))
	assert.False(t, matchesFilters(salad, SearchFilters{ItemType: "Salad"})) // exact match
}

func TestMatchesFiltersExtra(t *testing.T) {
	salad := nearbyFixture()[0].Menu[0]

	// Numeric JSON values match their query-string rendering.
	assert.True(t, matchesFilters(salad, SearchFilters{Extra: map[string]interface{}{"caloriesKcal": "320"}}))
	assert.False(t, matchesFilters(salad, SearchFilters{Extra: map[string]interface{}{"caloriesKcal": "321"}}))
	// Unknown keys fail the food.
	assert.False(t, matchesFilters(salad, SearchFilters{Extra: map[string]interface{}{"spiciness": "3"}}))
}

func TestPaginateFoods(t *testing.T) {
	flat := make([]FoodWithRestaurant, 3)
	for i := range flat {
		flat[i].ID = uint(i + 1)
	}

	out := paginateFoods(flat, Pagination{Page: 1, Limit: 1})
	assert.Equal(t, []uint{1}, itemIDs(out.Items))
	assert.True(t, out.HasMore)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 3, out.TotalPages)

	out = paginateFoods(flat, Pagination{Page: 3, Limit: 1})
	assert.Equal(t, []uint{3}, itemIDs(out.Items))
	assert.False(t, out.HasMore)

	// Skip overrides the page calculation.
	skip := 2
	out = paginateFoods(flat, Pagination{Page: 1, Limit: 1, Skip: &skip})
	assert.Equal(t, []uint{3}, itemIDs(out.Items))
	assert.False(t, out.HasMore)
	assert.Equal(t, 3, out.CurrentPage)

	// Past the end: empty page, never a panic.
	out = paginateFoods(flat, Pagination{Page: 9, Limit: 2})
	assert.Empty(t, out.Items)
	assert.False(t, out.HasMore)
}

func TestSearchNearbyFoodsStoreError(t *testing.T) {
	store := &fakeDiscoveryStore{err: errors.New("db down")}
	svc := NewDiscoveryService(store)

	out, err := svc.SearchNearbyFoods(context.Background(), [2]float64{0, 0}, 100, Pagination{}, SearchFilters{})

	assert.Nil(t, out)
	assert.Error(t, err)
}

func itemIDs(items []FoodWithRestaurant) []uint {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
