package models

import (
	"strconv"
	"strings"
	"time"
)

const (
	GoalGain = "Weight Gain"
	GoalLoss = "Weight Loss"
)

// WeightEntry is both a goal record and a weight check-in. Check-ins copy the
// goal type and target of the goal that was active when they were logged.
type WeightEntry struct {
	ID             uint      `gorm:"primaryKey"`
	Username       string    `gorm:"not null;index"`
	Date           time.Time `gorm:"type:date;not null"`
	WeightKg       float64   `gorm:"column:weight_kg;not null"`
	GoalType       string    `gorm:"not null"`
	TargetWeightKg float64   `gorm:"column:target_weight_kg;not null"`
	Active         bool      `gorm:"not null"`
}

func (WeightEntry) TableName() string {
	return "weight"
}

func (entry WeightEntry) RowKey() string {
	return strings.Join([]string{
		entry.Username,
		formatDay(entry.Date),
		formatFloat(entry.WeightKg),
		entry.GoalType,
		formatFloat(entry.TargetWeightKg),
		strconv.FormatBool(entry.Active),
	}, rowKeySeparator)
}

func (entry WeightEntry) Owner() string {
	return entry.Username
}

func IsValidGoalType(goalType string) bool {
	return goalType == GoalGain || goalType == GoalLoss
}
