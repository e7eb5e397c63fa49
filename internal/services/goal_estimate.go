package services

import (
	"math"
	"time"

	"github.com/terraincognita07/fitlog/internal/models"
)

const WeeklyRateKg = 0.5

// maxEstimateDays bounds projections far past any calendar a user will see.
const maxEstimateDays = 10_000_000

// EstimateDaysRemaining projects a linear WeeklyRateKg change towards the
// target. A goal already met gives zero or a negative number of days.
func EstimateDaysRemaining(currentWeight float64, targetWeight float64, goalType string) float64 {
	return RemainingKg(currentWeight, targetWeight, goalType) / WeeklyRateKg * 7
}

// RemainingKg is the weight still to change in the goal's direction.
func RemainingKg(currentWeight float64, targetWeight float64, goalType string) float64 {
	if goalType == models.GoalGain {
		return targetWeight - currentWeight
	}
	return currentWeight - targetWeight
}

// EstimateCompletionDate adds whole days on the calendar and only the
// fractional remainder as a Duration, which overflows past about 292 years.
func EstimateCompletionDate(today time.Time, currentWeight float64, targetWeight float64, goalType string) time.Time {
	days := EstimateDaysRemaining(currentWeight, targetWeight, goalType)
	if math.IsNaN(days) {
		return today
	}
	days = math.Max(-maxEstimateDays, math.Min(maxEstimateDays, days))

	whole, fraction := math.Modf(days)
	return today.AddDate(0, 0, int(whole)).Add(time.Duration(fraction * float64(24*time.Hour)))
}
