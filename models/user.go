package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID   string `gorm:"type:varchar(64);uniqueIndex"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	FirstName      string
	LastName       string
	Birthday       time.Time
	Sex            string
	Height         float64 // cm
	Weight         float64 // kg
	DietaryGoals   string
	ProfilePicture string

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
	Onboarded     bool
	Disabled      bool
}
