package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"
	"github.com/LimeLiteSRL/my-fullstack-app-sub001/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EatenFoodService struct {
	db  *gorm.DB
	rek *RekognitionService // nil disables the photo path
}

func NewEatenFoodService(db *gorm.DB, rek *RekognitionService) *EatenFoodService {
	return &EatenFoodService{db: db, rek: rek}
}

// LogFromCatalog snapshots a catalog food's nutrition (scaled by portion)
// into a new record. The snapshot is frozen at this moment: later edits to
// the catalog food never touch existing records.
func (s *EatenFoodService) LogFromCatalog(
	ctx context.Context, userID, foodID uint, portion float64, ateAt time.Time,
) (*models.EatenFoodRecord, error) {
	if portion <= 0 {
		portion = 1
	}
	var food models.FoodItem
	if err := s.db.WithContext(ctx).First(&food, foodID).Error; err != nil {
		return nil, err
	}
	rec := &models.EatenFoodRecord{
		UserID:    userID,
		FoodID:    &foodID,
		DateEaten: ateAt,
		Portion:   portion,
		Nutrition: scaleNutrition(food.Nutrition, portion),
		Source:    models.SourceRestaurant,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	s.assessAndAlert(userID, food.Name, rec.Nutrition)
	return rec, nil
}

// LogFreeForm records an AI-described meal: no catalog reference, the
// caller supplies the estimated nutrient map directly.
func (s *EatenFoodService) LogFreeForm(
	ctx context.Context, userID uint, description string, nutrition map[string]interface{}, portion float64, ateAt time.Time,
) (*models.EatenFoodRecord, error) {
	if portion <= 0 {
		portion = 1
	}
	rec := &models.EatenFoodRecord{
		UserID:    userID,
		DateEaten: ateAt,
		Portion:   portion,
		Nutrition: datatypes.JSONMap(nutrition),
		Source:    models.SourceAI,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	s.assessAndAlert(userID, description, rec.Nutrition)
	return rec, nil
}

// LogFromPhoto recognizes the meal in a base64 image and logs the first
// catalog food whose name matches a detected label.
func (s *EatenFoodService) LogFromPhoto(
	ctx context.Context, userID uint, base64Img string, portion float64, ateAt time.Time,
) (*models.EatenFoodRecord, error) {
	if s.rek == nil {
		return nil, errors.New("photo recognition not configured")
	}
	labels, err := s.rek.RecognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}
	for _, label := range labels {
		var food models.FoodItem
		err := s.db.WithContext(ctx).
			Where("name ILIKE ?", "%"+label+"%").
			First(&food).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		return s.LogFromCatalog(ctx, userID, food.ID, portion, ateAt)
	}
	return nil, fmt.Errorf("no catalog food matched the photo (labels: %v)", labels)
}

func (s *EatenFoodService) ListForUser(ctx context.Context, userID uint, from, to *time.Time) ([]models.EatenFoodRecord, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil && to != nil {
		q = q.Where("date_eaten >= ? AND date_eaten < ?", *from, *to)
	}
	var recs []models.EatenFoodRecord
	err := q.Order("date_eaten DESC").Find(&recs).Error
	return recs, err
}

// Delete removes one record. Records are immutable, so delete is the only
// mutation a user can apply after logging.
func (s *EatenFoodService) Delete(ctx context.Context, userID, recordID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", recordID, userID).
		Delete(&models.EatenFoodRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// assessAndAlert runs the intake guard over the snapshot and fans any
// findings out through the alert bus. Alerting is best effort and never
// fails the logging call.
func (s *EatenFoodService) assessAndAlert(userID uint, label string, nutrition datatypes.JSONMap) {
	amounts := make(map[string]float64, len(nutrition))
	for key := range nutrition {
		amounts[key] = nutrientAmount(nutrition, key)
	}
	for _, w := range utils.AssessIntake(label, amounts) {
		EmitAlert(userID, string(w.Severity), w.Message)
	}
}

func scaleNutrition(n datatypes.JSONMap, portion float64) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(n))
	for key := range n {
		out[key] = nutrientAmount(n, key) * portion
	}
	return out
}
