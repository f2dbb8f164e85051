package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeIntakeStore struct {
	records []models.EatenFoodRecord
	err     error

	gotUserID uint
	gotFrom   *time.Time
	gotTo     *time.Time
}

func (f *fakeIntakeStore) FetchEatenFoodsForUser(_ context.Context, userID uint, from, to *time.Time) ([]models.EatenFoodRecord, error) {
	f.gotUserID = userID
	f.gotFrom, f.gotTo = from, to
	return f.records, f.err
}

func TestParseUTCOffset(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"00:00", 0},
		{"+05:30", 330},
		{"-05:30", -330},
		{"+02:00", 120},
		{"-08:00", -480},
		{"garbage", 0},
		// Zero-hour offsets drop their minutes because the sign rides on the
		// hour part. Pinned until product decides otherwise.
		{"-00:30", 0},
		{"+00:45", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseUTCOffset(tc.in), "offset %q", tc.in)
	}
}

func TestComputeNutritionIntakeEmpty(t *testing.T) {
	out := ComputeNutritionIntake(nil, []string{"caloriesKcal"}, "", time.Now())

	assert.Empty(t, out.Today)
	assert.Empty(t, out.LastSevenDays)
	assert.Empty(t, out.LastTwelveMonths)
	// Maps must be present, not nil, so they serialize as {}.
	assert.NotNil(t, out.Today)
	assert.NotNil(t, out.LastSevenDays)
	assert.NotNil(t, out.LastTwelveMonths)
}

func TestComputeNutritionIntakeTodayBucket(t *testing.T) {
	now := time.Now()
	records := []models.EatenFoodRecord{
		{UserID: 1, DateEaten: now, Nutrition: datatypes.JSONMap{"caloriesKcal": 300.0, "proteinGr": 20.0}},
		{UserID: 1, DateEaten: now, Nutrition: datatypes.JSONMap{"caloriesKcal": 200.0}},
	}

	out := ComputeNutritionIntake(records, []string{"caloriesKcal", "proteinGr"}, "", now)

	assert.Equal(t, 500.0, out.Today["caloriesKcal"])
	assert.Equal(t, 20.0, out.Today["proteinGr"])

	day := out.LastSevenDays[now.Weekday().String()]
	require.NotNil(t, day)
	assert.Equal(t, 500.0, day["caloriesKcal"])

	month := out.LastTwelveMonths[now.Month().String()]
	require.NotNil(t, month)
	assert.Equal(t, 500.0, month["caloriesKcal"])
}

func TestComputeNutritionIntakeOldRecordLeavesWeekWindow(t *testing.T) {
	old := time.Now().AddDate(0, 0, -8)
	records := []models.EatenFoodRecord{
		{UserID: 1, DateEaten: old, Nutrition: datatypes.JSONMap{"caloriesKcal": 400.0}},
	}

	out := ComputeNutritionIntake(records, []string{"caloriesKcal"}, "", time.Now())

	assert.Empty(t, out.Today)
	assert.Empty(t, out.LastSevenDays)
	month := out.LastTwelveMonths[old.Month().String()]
	require.NotNil(t, month)
	assert.Equal(t, 400.0, month["caloriesKcal"])
}

func TestComputeNutritionIntakeMissingNutrientIsZero(t *testing.T) {
	now := time.Now()
	records := []models.EatenFoodRecord{
		{UserID: 1, DateEaten: now, Nutrition: datatypes.JSONMap{"proteinGr": 15.0}},
		{UserID: 1, DateEaten: now, Nutrition: nil},
	}

	out := ComputeNutritionIntake(records, []string{"caloriesKcal", "proteinGr"}, "", now)

	assert.Equal(t, 0.0, out.Today["caloriesKcal"])
	assert.Equal(t, 15.0, out.Today["proteinGr"])
}

func TestComputeNutritionIntakeSkipsZeroTimestamp(t *testing.T) {
	records := []models.EatenFoodRecord{
		{UserID: 1, Nutrition: datatypes.JSONMap{"caloriesKcal": 999.0}}, // zero DateEaten
		{UserID: 1, DateEaten: time.Now(), Nutrition: datatypes.JSONMap{"caloriesKcal": 100.0}},
	}

	out := ComputeNutritionIntake(records, []string{"caloriesKcal"}, "", time.Now())

	assert.Equal(t, 100.0, out.Today["caloriesKcal"])
}

func TestComputeNutritionIntakeNonNumericValues(t *testing.T) {
	now := time.Now()
	records := []models.EatenFoodRecord{
		{UserID: 1, DateEaten: now, Nutrition: datatypes.JSONMap{"caloriesKcal": "lots"}},
		{UserID: 1, DateEaten: now, Nutrition: datatypes.JSONMap{"caloriesKcal": 50}},
	}

	out := ComputeNutritionIntake(records, []string{"caloriesKcal"}, "", time.Now())

	assert.Equal(t, 50.0, out.Today["caloriesKcal"])
}

func TestComputeNutritionIntakeMonthWindowFromMonthEnd(t *testing.T) {
	// Anchored on the 31st, naive month subtraction would normalize through
	// nonexistent dates (Mar 31 - 1 month = "Feb 31" -> Mar 3) and lose
	// whole months from the window. All twelve must bucket.
	anchor := time.Date(2026, 3, 31, 12, 0, 0, 0, time.Local)

	var records []models.EatenFoodRecord
	for i := 0; i < 12; i++ {
		d := time.Date(anchor.Year(), anchor.Month()-time.Month(i), 15, 10, 0, 0, 0, time.Local)
		records = append(records, models.EatenFoodRecord{
			UserID: 1, DateEaten: d, Nutrition: datatypes.JSONMap{"caloriesKcal": 100.0},
		})
	}

	out := ComputeNutritionIntake(records, []string{"caloriesKcal"}, "", anchor)

	require.Len(t, out.LastTwelveMonths, 12)
	for i := 0; i < 12; i++ {
		name := time.Date(anchor.Year(), anchor.Month()-time.Month(i), 1, 0, 0, 0, 0, time.Local).Month().String()
		bucket := out.LastTwelveMonths[name]
		require.NotNil(t, bucket, "month %s missing from the window", name)
		assert.Equal(t, 100.0, bucket["caloriesKcal"], "month %s", name)
	}
}

func TestComputeNutritionIntakeThirteenMonthsOldLeavesWindow(t *testing.T) {
	anchor := time.Date(2026, 1, 31, 12, 0, 0, 0, time.Local)
	records := []models.EatenFoodRecord{
		{UserID: 1, DateEaten: time.Date(2025, 1, 15, 10, 0, 0, 0, time.Local),
			Nutrition: datatypes.JSONMap{"caloriesKcal": 400.0}},
	}

	out := ComputeNutritionIntake(records, []string{"caloriesKcal"}, "", anchor)

	// January 2025 is 12 months before the anchor, one past the window.
	assert.Empty(t, out.LastTwelveMonths)
}

func TestIntakeSummaryUsesInjectedClock(t *testing.T) {
	anchor := time.Date(2026, 5, 31, 9, 0, 0, 0, time.Local)
	store := &fakeIntakeStore{records: []models.EatenFoodRecord{
		{UserID: 7, DateEaten: time.Date(2026, 2, 10, 13, 0, 0, 0, time.Local),
			Nutrition: datatypes.JSONMap{"caloriesKcal": 250.0}},
	}}
	svc := NewIntakeService(store)
	svc.now = func() time.Time { return anchor }

	out, err := svc.IntakeSummary(context.Background(), 7, []string{"caloriesKcal"}, "", nil, nil)

	require.NoError(t, err)
	feb := out.LastTwelveMonths[time.February.String()]
	require.NotNil(t, feb)
	assert.Equal(t, 250.0, feb["caloriesKcal"])
}

func TestIntakeSummaryPassesWindowThrough(t *testing.T) {
	store := &fakeIntakeStore{}
	svc := NewIntakeService(store)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	out, err := svc.IntakeSummary(context.Background(), 42, []string{"caloriesKcal"}, "", &from, &to)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, uint(42), store.gotUserID)
	require.NotNil(t, store.gotFrom)
	assert.True(t, store.gotFrom.Equal(from))
	require.NotNil(t, store.gotTo)
	assert.True(t, store.gotTo.Equal(to))
}

func TestIntakeSummaryStoreError(t *testing.T) {
	store := &fakeIntakeStore{err: errors.New("db down")}
	svc := NewIntakeService(store)

	out, err := svc.IntakeSummary(context.Background(), 1, []string{"caloriesKcal"}, "", nil, nil)

	assert.Nil(t, out)
	assert.Error(t, err)
}
