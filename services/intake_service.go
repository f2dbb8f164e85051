package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/models"

	"gorm.io/datatypes"
)

// NutritionBuckets groups a user's intake into the three client-facing
// windows. Day buckets are keyed by weekday name and month buckets by month
// name; a bucket only appears once a record has contributed to it — there is
// no zero pre-seeding.
type NutritionBuckets struct {
	Today            map[string]float64            `json:"today"`
	LastSevenDays    map[string]map[string]float64 `json:"lastSevenDays"`
	LastTwelveMonths map[string]map[string]float64 `json:"lastTwelveMonths"`
}

type IntakeStore interface {
	FetchEatenFoodsForUser(ctx context.Context, userID uint, from, to *time.Time) ([]models.EatenFoodRecord, error)
}

type IntakeService struct {
	store IntakeStore
	now   func() time.Time // injectable clock
}

func NewIntakeService(store IntakeStore) *IntakeService {
	return &IntakeService{store: store, now: time.Now}
}

func (s *IntakeService) IntakeSummary(
	ctx context.Context, userID uint, nutrientKeys []string, tzOffset string, from, to *time.Time,
) (*NutritionBuckets, error) {
	recs, err := s.store.FetchEatenFoodsForUser(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	out := ComputeNutritionIntake(recs, nutrientKeys, tzOffset, s.now())
	return &out, nil
}

// ParseUTCOffset converts "+HH:MM"/"-HH:MM" into signed total minutes
// (empty input means "00:00"). The sign is carried by the hour part:
// total = hours*60 + signum(hours)*minutes, so a zero-hour offset drops its
// minutes — "-00:30" parses to 0, not -30.
// TODO: decide with product whether zero-hour offsets should keep their
// minutes; until then the rounding is pinned by a characterization test.
func ParseUTCOffset(offset string) int {
	if offset == "" {
		offset = "00:00"
	}
	offset = strings.TrimPrefix(offset, "+")
	parts := strings.SplitN(offset, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes := 0
	if len(parts) == 2 {
		minutes, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	sign := 0
	switch {
	case hours > 0:
		sign = 1
	case hours < 0:
		sign = -1
	}
	return hours*60 + sign*minutes
}

// ComputeNutritionIntake buckets the records into today / last-seven-days /
// last-twelve-months sums for the requested nutrient keys, with all three
// windows anchored at now. It never fails: a record without a usable
// DateEaten is skipped, and an absent nutrient contributes 0.
//
// Window anchors come from the server's clock while record instants are
// shifted by the caller-supplied offset, so the two notions of "now" can
// disagree near day boundaries for non-UTC callers. That mismatch is
// long-standing observed behavior and is kept.
func ComputeNutritionIntake(records []models.EatenFoodRecord, nutrientKeys []string, tzOffset string, now time.Time) NutritionBuckets {
	out := NutritionBuckets{
		Today:            map[string]float64{},
		LastSevenDays:    map[string]map[string]float64{},
		LastTwelveMonths: map[string]map[string]float64{},
	}
	if len(records) == 0 || len(nutrientKeys) == 0 {
		return out
	}

	offset := time.Duration(ParseUTCOffset(tzOffset)) * time.Minute

	type window struct{ key, name string }
	days := make([]window, 7)
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, -i)
		days[i] = window{key: d.Format("2006-01-02"), name: d.Weekday().String()}
	}
	months := make([]window, 12)
	for i := 0; i < 12; i++ {
		// Anchor at day 1 of the month: subtracting months from a late
		// day-of-month would normalize through nonexistent dates (Mar 31
		// minus one month lands in March again) and drop whole months.
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		months[i] = window{key: m.Format("2006-01"), name: m.Month().String()}
	}

	for _, rec := range records {
		if rec.DateEaten.IsZero() {
			continue // unusable timestamp: skip the record, never fail the aggregate
		}
		adjusted := rec.DateEaten.Add(offset).In(time.Local)
		day := adjusted.Format("2006-01-02")
		month := adjusted.Format("2006-01")

		for _, key := range nutrientKeys {
			v := nutrientAmount(rec.Nutrition, key)

			if sameCalendarDay(adjusted, now) {
				out.Today[key] += v
			}
			for _, w := range days {
				if day == w.key {
					bucket := out.LastSevenDays[w.name]
					if bucket == nil {
						bucket = map[string]float64{}
						out.LastSevenDays[w.name] = bucket
					}
					bucket[key] += v
					break
				}
			}
			for _, w := range months {
				if month == w.key {
					bucket := out.LastTwelveMonths[w.name]
					if bucket == nil {
						bucket = map[string]float64{}
						out.LastTwelveMonths[w.name] = bucket
					}
					bucket[key] += v
					break
				}
			}
		}
	}
	return out
}

// nutrientAmount reads one nutrient out of a sparse snapshot. Absent or
// non-numeric values count as 0.
func nutrientAmount(n datatypes.JSONMap, key string) float64 {
	if n == nil {
		return 0
	}
	switch v := n[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
