package utils

import "fmt"

// WarningSeverity categorizes how serious an intake finding is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding surfaced through the alert bus.
type Warning struct {
	Code           string          `json:"code"`
	Severity       WarningSeverity `json:"severity"`
	Message        string          `json:"message"`
	Metric         string          `json:"metric,omitempty"`
	Value          float64         `json:"value,omitempty"`
	Limit          float64         `json:"limit,omitempty"`
	PercentOfLimit float64         `json:"percent_of_limit,omitempty"`
}

// Per-meal ceilings derived from daily reference values (2000 kcal diet,
// sodium 2300mg/day, added sugar 50g/day, saturated fat 20g/day), scaled to
// a generous single-meal share.
var mealLimits = []struct {
	key      string
	code     string
	label    string
	unit     string
	limit    float64
	severity WarningSeverity
}{
	{"caloriesKcal", "CAL_HIGH", "calories", "kcal", 1200, Caution},
	{"sodiumMg", "SODIUM_HIGH", "sodium", "mg", 1500, High},
	{"sugarGr", "SUGAR_HIGH", "sugar", "g", 36, Caution},
	{"saturatedFatGr", "SATFAT_HIGH", "saturated fat", "g", 13, Caution},
}

// AssessIntake checks a logged nutrition snapshot against the per-meal
// ceilings. Absent nutrients are not assessed.
func AssessIntake(foodName string, nutrients map[string]float64) []Warning {
	var warnings []Warning
	for _, lim := range mealLimits {
		v, ok := nutrients[lim.key]
		if !ok || v <= lim.limit {
			continue
		}
		warnings = append(warnings, Warning{
			Code:           lim.code,
			Severity:       lim.severity,
			Message:        fmt.Sprintf("%s is high in %s: %.0f%s (meal ceiling %.0f%s)", foodName, lim.label, v, lim.unit, lim.limit, lim.unit),
			Metric:         lim.key,
			Value:          v,
			Limit:          lim.limit,
			PercentOfLimit: v / lim.limit * 100,
		})
	}
	return warnings
}
