package models

import "time"

// Alert is an intake-guard finding surfaced to the user.
type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Severity  string `gorm:"size:20"` // "info" | "caution" | "high"
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
