package models

import (
	"strconv"
	"strings"
	"time"
)

const RestDay = "Rest"

type WorkoutLog struct {
	ID              uint      `gorm:"primaryKey"`
	Username        string    `gorm:"not null;index"`
	Date            time.Time `gorm:"type:date;not null"`
	MuscleGroup     string    `gorm:"not null"`
	Exercise        string    `gorm:"not null"`
	Sets            int       `gorm:"not null"`
	Reps            int       `gorm:"not null"`
	DurationMinutes int       `gorm:"column:duration_minutes;not null"`
	Completed       bool      `gorm:"not null"`
}

func (WorkoutLog) TableName() string {
	return "workout"
}

func (entry WorkoutLog) RowKey() string {
	return strings.Join([]string{
		entry.Username,
		formatDay(entry.Date),
		entry.MuscleGroup,
		entry.Exercise,
		strconv.Itoa(entry.Sets),
		strconv.Itoa(entry.Reps),
		strconv.Itoa(entry.DurationMinutes),
		strconv.FormatBool(entry.Completed),
	}, rowKeySeparator)
}

func (entry WorkoutLog) Owner() string {
	return entry.Username
}
