package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EatenFoodController struct {
	Svc *services.EatenFoodService
}

func NewEatenFoodController(svc *services.EatenFoodService) *EatenFoodController {
	return &EatenFoodController{Svc: svc}
}

type logEatenFoodReq struct {
	FoodID      *uint                  `json:"food_id"`
	Description string                 `json:"description"`
	Nutrition   map[string]interface{} `json:"nutritionalInformation"`
	Portion     float64                `json:"portion"`
	AteAt       time.Time              `json:"ate_at"`
}

// POST /log — either {food_id} for a catalog food or
// {description, nutritionalInformation} for a free-form AI meal.
func (h *EatenFoodController) LogEatenFood(c *gin.Context) {
	uid := c.GetUint("userID")

	var req logEatenFoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AteAt.IsZero() {
		req.AteAt = time.Now()
	}

	if req.FoodID != nil {
		rec, err := h.Svc.LogFromCatalog(c.Request.Context(), uid, *req.FoodID, req.Portion, req.AteAt)
		if err != nil {
			c.JSON(lookupStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, rec)
		return
	}

	if len(req.Nutrition) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_id or nutritionalInformation required"})
		return
	}
	rec, err := h.Svc.LogFreeForm(c.Request.Context(), uid, req.Description, req.Nutrition, req.Portion, req.AteAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// POST /log/photo  { "image_base64": "data:image/...", "portion": 1 }
func (h *EatenFoodController) LogEatenFoodPhoto(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		ImageBase64 string    `json:"image_base64" binding:"required"`
		Portion     float64   `json:"portion"`
		AteAt       time.Time `json:"ate_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.AteAt.IsZero() {
		req.AteAt = time.Now()
	}

	rec, err := h.Svc.LogFromPhoto(c.Request.Context(), uid, req.ImageBase64, req.Portion, req.AteAt)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GET /log?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *EatenFoodController) ListEatenFoods(c *gin.Context) {
	uid := c.GetUint("userID")

	var from, to *time.Time
	if f, t := c.Query("from"), c.Query("to"); f != "" && t != "" {
		ft, err1 := time.Parse("2006-01-02", f)
		tt, err2 := time.Parse("2006-01-02", t)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
			return
		}
		tt = tt.AddDate(0, 0, 1)
		from, to = &ft, &tt
	}

	recs, err := h.Svc.ListForUser(c.Request.Context(), uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// DELETE /log/:id
func (h *EatenFoodController) DeleteEatenFood(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), uid, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

// lookupStatus maps a store lookup failure, wrapped or not, to a response
// code.
func lookupStatus(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
