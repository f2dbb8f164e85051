package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists an intake alert and fans it out over websocket and
// push. Safe to call from anywhere; a no-op before InitAlertDeps.
func EmitAlert(userID uint, severity, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Severity: severity, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Intake alert", message, map[string]string{
			"severity": severity, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if _alert.db == nil {
		return nil, errors.New("alert bus not initialized")
	}
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
