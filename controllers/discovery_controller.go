package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/services"

	"github.com/gin-gonic/gin"
)

type DiscoveryController struct {
	Svc *services.DiscoveryService
}

func NewDiscoveryController(svc *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{Svc: svc}
}

// Query params the handler consumes itself; anything else becomes an
// exact-match extra filter.
var reservedDiscoveryParams = map[string]struct{}{
	"lng": {}, "lat": {}, "maxDistance": {},
	"page": {}, "limit": {}, "skip": {},
	"name": {}, "itemType": {}, "restaurantIds": {},
	"minHealthRating": {}, "maxHealthRating": {},
	"minTasteRating": {}, "maxTasteRating": {},
	"minCalories": {}, "maxCalories": {},
}

// GET /discovery/nearby?lng=...&lat=...&maxDistance=2000&page=1&limit=20&...
func (h *DiscoveryController) SearchNearby(c *gin.Context) {
	lng, err1 := strconv.ParseFloat(c.Query("lng"), 64)
	lat, err2 := strconv.ParseFloat(c.Query("lat"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng and lat are required"})
		return
	}
	maxDistance, err := strconv.ParseFloat(c.DefaultQuery("maxDistance", "2000"), 64)
	if err != nil || maxDistance <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxDistance"})
		return
	}

	pag := services.Pagination{
		Page:  intQuery(c, "page", 1),
		Limit: intQuery(c, "limit", 20),
	}
	if raw := c.Query("skip"); raw != "" {
		if skip, err := strconv.Atoi(raw); err == nil && skip >= 0 {
			pag.Skip = &skip
		}
	}

	filters := services.SearchFilters{
		Name:            c.Query("name"),
		ItemType:        c.Query("itemType"),
		MinHealthRating: floatQuery(c, "minHealthRating"),
		MaxHealthRating: floatQuery(c, "maxHealthRating"),
		MinTasteRating:  floatQuery(c, "minTasteRating"),
		MaxTasteRating:  floatQuery(c, "maxTasteRating"),
		MinCalories:     floatQuery(c, "minCalories"),
		MaxCalories:     floatQuery(c, "maxCalories"),
	}
	if raw := c.Query("restaurantIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64); err == nil {
				filters.RestaurantIDs = append(filters.RestaurantIDs, uint(id))
			}
		}
	}
	for key, vals := range c.Request.URL.Query() {
		if _, reserved := reservedDiscoveryParams[key]; reserved || len(vals) == 0 {
			continue
		}
		if filters.Extra == nil {
			filters.Extra = map[string]interface{}{}
		}
		filters.Extra[key] = vals[0]
	}

	out, err := h.Svc.SearchNearbyFoods(c.Request.Context(), [2]float64{lng, lat}, maxDistance, pag, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// --- helpers ---

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func floatQuery(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
