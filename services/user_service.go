package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/config"
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/utils"
)

type ProfileInput struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Birthday       string  `json:"birthday"` // YYYY-MM-DD
	Sex            string  `json:"sex"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	DietaryGoals   string  `json:"dietary_goals"`
	ProfilePicture string  `json:"profile_picture"` // base64 data URI
	Onboarded      bool    `json:"onboarded"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	out := map[string]interface{}{
		"id":              user.ID,
		"user_id":         user.UserID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"sex":             user.Sex,
		"height":          user.Height,
		"weight":          user.Weight,
		"dietary_goals":   user.DietaryGoals,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"onboarded":       user.Onboarded,
	}
	if !user.Birthday.IsZero() {
		out["birthday"] = user.Birthday.Format("2006-01-02")
	}
	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	return out, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Sex != "" {
		user.Sex = input.Sex
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.DietaryGoals != "" {
		user.DietaryGoals = input.DietaryGoals
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profiles/"+user.UserID)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfilePicture = url
	}
	user.Onboarded = input.Onboarded

	return config.DB.Save(&user).Error
}

func DisableUser(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
