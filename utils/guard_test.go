package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessIntakeWithinLimits(t *testing.T) {
	warnings := AssessIntake("Kale Salad", map[string]float64{
		"caloriesKcal": 320,
		"sodiumMg":     400,
		"sugarGr":      5,
	})
	assert.Empty(t, warnings)
}

func TestAssessIntakeHighSodium(t *testing.T) {
	warnings := AssessIntake("Loaded Fries", map[string]float64{
		"sodiumMg": 2100,
	})

	require.Len(t, warnings, 1)
	w := warnings[0]
	assert.Equal(t, "SODIUM_HIGH", w.Code)
	assert.Equal(t, High, w.Severity)
	assert.Equal(t, "sodiumMg", w.Metric)
	assert.Equal(t, 2100.0, w.Value)
	assert.Equal(t, 1500.0, w.Limit)
	assert.InDelta(t, 140.0, w.PercentOfLimit, 1e-9)
	assert.Contains(t, w.Message, "Loaded Fries")
}

func TestAssessIntakeMultipleFindings(t *testing.T) {
	warnings := AssessIntake("Mega Burger", map[string]float64{
		"caloriesKcal":   1500,
		"sodiumMg":       1800,
		"sugarGr":        40,
		"saturatedFatGr": 20,
	})
	assert.Len(t, warnings, 4)
}

func TestAssessIntakeAbsentNutrientsSkipped(t *testing.T) {
	// Nothing to assess means nothing fires, even for an empty map.
	assert.Empty(t, AssessIntake("Mystery Meal", map[string]float64{}))
	assert.Empty(t, AssessIntake("Mystery Meal", nil))
}

func TestAssessIntakeAtLimitDoesNotFire(t *testing.T) {
	warnings := AssessIntake("Edge Meal", map[string]float64{
		"caloriesKcal": 1200,
		"sodiumMg":     1500,
	})
	assert.Empty(t, warnings)
}
