package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/services"

	"github.com/gin-gonic/gin"
)

type IntakeController struct {
	Svc *services.IntakeService
}

func NewIntakeController(svc *services.IntakeService) *IntakeController {
	return &IntakeController{Svc: svc}
}

// defaultNutrients covers the dashboard's standard cards when the client
// doesn't ask for specific keys.
var defaultNutrients = []string{"caloriesKcal", "proteinGr", "carbsGr", "fatGr", "sodiumMg", "sugarGr"}

// GET /intake/summary?nutrients=caloriesKcal,proteinGr&offset=%2B05:30&from=...&to=...
func (h *IntakeController) GetIntakeSummary(c *gin.Context) {
	uid := c.GetUint("userID")

	keys := defaultNutrients
	if raw := c.Query("nutrients"); raw != "" {
		keys = nil
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}
	offset := c.DefaultQuery("offset", "00:00")

	var from, to *time.Time
	if f, t := c.Query("from"), c.Query("to"); f != "" && t != "" {
		ft, err1 := time.Parse("2006-01-02", f)
		tt, err2 := time.Parse("2006-01-02", t)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
			return
		}
		tt = tt.AddDate(0, 0, 1) // exclusive upper bound at end of day
		from, to = &ft, &tt
	}

	out, err := h.Svc.IntakeSummary(c.Request.Context(), uid, keys, offset, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
