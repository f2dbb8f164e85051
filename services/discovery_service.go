package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"
)

type DiscoveryStore interface {
	// Nearest-first within maxMeters, intersected with allowIDs when given,
	// capped at 100 candidates, menus preloaded in position order.
	FetchRestaurantsNear(ctx context.Context, lon, lat, maxMeters float64, allowIDs []uint) ([]models.Restaurant, error)
}

type DiscoveryService struct{ store DiscoveryStore }

func NewDiscoveryService(store DiscoveryStore) *DiscoveryService {
	return &DiscoveryService{store: store}
}

// RestaurantSummary is the fixed restaurant object attached to every
// flattened food result.
type RestaurantSummary struct {
	ID          uint            `json:"_id"`
	Name        string          `json:"name"`
	URL         string          `json:"url"`
	Location    models.GeoPoint `json:"location"`
	HeroURL     string          `json:"heroUrl"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"reviewCount"`
	Telephone   string          `json:"telephone"`
	Street      string          `json:"street"`
	Locality    string          `json:"locality"`
	Region      string          `json:"region"`
	PostalCode  string          `json:"postalCode"`
	Country     string          `json:"country"`
}

type FoodWithRestaurant struct {
	ID         uint                   `json:"_id"`
	Name       string                 `json:"name"`
	ItemType   string                 `json:"itemType"`
	Price      float64                `json:"price"`
	Nutrition  map[string]interface{} `json:"nutritionalInformation"`
	Summary    models.ReviewSummary   `json:"reviewSummary"`
	Restaurant RestaurantSummary      `json:"restaurant"`
}

type PaginatedFoodResult struct {
	Items       []FoodWithRestaurant `json:"items"`
	TotalItems  int                  `json:"totalItems"`
	HasMore     bool                 `json:"hasMore"`
	CurrentPage int                  `json:"currentPage"`
	TotalPages  int                  `json:"totalPages"`
}

type Pagination struct {
	Page  int
	Limit int
	Skip  *int // explicit start index; overrides (Page-1)*Limit
}

// SearchFilters is the in-memory menu predicate. All set range filters must
// hold and a missing value fails its range filter. Name matches by
// case-insensitive substring, ItemType exactly, and every Extra entry is an
// exact match against the food.
type SearchFilters struct {
	Name     string
	ItemType string

	MinHealthRating *float64
	MaxHealthRating *float64
	MinTasteRating  *float64
	MaxTasteRating  *float64
	MinCalories     *float64
	MaxCalories     *float64

	RestaurantIDs []uint
	Extra         map[string]interface{}
}

// SearchNearbyFoods joins nearby restaurants with their menus, filters the
// menus in memory, flattens to (restaurant, food) pairs in proximity-then-
// menu order and paginates the flattened list.
//
// Two documented limitations are kept from the original behavior:
//   - the store query caps candidates at 100 restaurants, so TotalItems and
//     TotalPages describe that window, not the whole dataset;
//   - "no restaurants nearby" and "restaurants nearby but nothing matched"
//     both return the same empty result.
func (s *DiscoveryService) SearchNearbyFoods(
	ctx context.Context, coords [2]float64, maxDistanceMeters float64, pag Pagination, filters SearchFilters,
) (*PaginatedFoodResult, error) {
	restaurants, err := s.store.FetchRestaurantsNear(ctx, coords[0], coords[1], maxDistanceMeters, filters.RestaurantIDs)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return paginateFoods(nil, pag), nil
	}

	var flat []FoodWithRestaurant
	for _, r := range restaurants {
		summary := summarizeRestaurant(r)
		for _, f := range r.Menu {
			if matchesFilters(f, filters) {
				flat = append(flat, FoodWithRestaurant{
					ID:         f.ID,
					Name:       f.Name,
					ItemType:   f.ItemType,
					Price:      f.Price,
					Nutrition:  f.Nutrition,
					Summary:    f.Summary,
					Restaurant: summary,
				})
			}
		}
	}
	return paginateFoods(flat, pag), nil
}

func summarizeRestaurant(r models.Restaurant) RestaurantSummary {
	return RestaurantSummary{
		ID:          r.ID,
		Name:        r.Name,
		URL:         r.URL,
		Location:    r.Location(),
		HeroURL:     r.HeroURL,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		Telephone:   r.Telephone,
		Street:      r.Street,
		Locality:    r.Locality,
		Region:      r.Region,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
	}
}

func matchesFilters(f models.FoodItem, fl SearchFilters) bool {
	if fl.Name != "" && !strings.Contains(strings.ToLower(f.Name), strings.ToLower(fl.Name)) {
		return false
	}
	if fl.ItemType != "" && f.ItemType != fl.ItemType {
		return false
	}
	if !inRange(ratingValue(f.Summary.AverageHealthRating, f.Summary.TotalReviews), fl.MinHealthRating, fl.MaxHealthRating) {
		return false
	}
	if !inRange(ratingValue(f.Summary.AverageTasteRating, f.Summary.TotalReviews), fl.MinTasteRating, fl.MaxTasteRating) {
		return false
	}
	if !inRange(caloriesValue(f), fl.MinCalories, fl.MaxCalories) {
		return false
	}
	for key, want := range fl.Extra {
		got, ok := foodFieldValue(f, key)
		if !ok || !looselyEqual(got, want) {
			return false
		}
	}
	return true
}

// inRange is an inclusive min/max check. A food missing the value fails any
// range filter that was actually set.
func inRange(v *float64, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if v == nil {
		return false
	}
	if min != nil && *v < *min {
		return false
	}
	if max != nil && *v > *max {
		return false
	}
	return true
}

// ratingValue treats a food with no reviews as having no rating at all.
func ratingValue(avg float64, totalReviews int) *float64 {
	if totalReviews == 0 {
		return nil
	}
	return &avg
}

func caloriesValue(f models.FoodItem) *float64 {
	if f.Nutrition == nil {
		return nil
	}
	raw, ok := f.Nutrition["caloriesKcal"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		return &v
	case int:
		fv := float64(v)
		return &fv
	case json.Number:
		fv, err := v.Float64()
		if err != nil {
			return nil
		}
		return &fv
	default:
		return nil
	}
}

func foodFieldValue(f models.FoodItem, key string) (interface{}, bool) {
	switch key {
	case "name":
		return f.Name, true
	case "itemType":
		return f.ItemType, true
	case "price":
		return f.Price, true
	default:
		if f.Nutrition == nil {
			return nil, false
		}
		v, ok := f.Nutrition[key]
		return v, ok
	}
}

// looselyEqual compares through string rendering so numeric JSON values
// match query-string filters regardless of their decoded Go type.
func looselyEqual(a, b interface{}) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func paginateFoods(flat []FoodWithRestaurant, p Pagination) *PaginatedFoodResult {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	page := p.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if p.Skip != nil {
		start = *p.Skip
	}
	end := start + limit
	total := len(flat)

	items := []FoodWithRestaurant{}
	if start >= 0 && start < total {
		stop := end
		if stop > total {
			stop = total
		}
		items = flat[start:stop]
	}

	totalPages := (total + limit - 1) / limit
	return &PaginatedFoodResult{
		Items:       items,
		TotalItems:  total,
		HasMore:     end < total,
		CurrentPage: start/limit + 1,
		TotalPages:  totalPages,
	}
}
