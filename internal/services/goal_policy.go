package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/terraincognita07/fitlog/internal/models"
)

func ParseGoalType(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gain", "weight gain":
		return models.GoalGain, nil
	case "loss", "lose", "weight loss":
		return models.GoalLoss, nil
	default:
		return "", ErrInvalidGoalType
	}
}

func ParseWeight(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !IsValidWeight(value) {
		return 0, ErrInvalidWeight
	}
	return value, nil
}

func IsValidWeight(value float64) bool {
	return value > 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}

func ValidateGoal(goalType string, currentWeight float64, targetWeight float64) error {
	if !models.IsValidGoalType(goalType) {
		return ErrInvalidGoalType
	}
	if !IsValidWeight(currentWeight) || !IsValidWeight(targetWeight) {
		return ErrInvalidWeight
	}
	if goalType == models.GoalGain && targetWeight <= currentWeight {
		return ErrGoalMustIncrease
	}
	if goalType == models.GoalLoss && targetWeight >= currentWeight {
		return ErrGoalMustDecrease
	}
	return nil
}
