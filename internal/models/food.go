package models

import (
	"strconv"
	"strings"
	"time"
)

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnacks    = "Snacks"
)

// MealSlots lists the four meal types in the order they are logged.
var MealSlots = []string{MealBreakfast, MealLunch, MealDinner, MealSnacks}

type FoodLog struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"not null;index"`
	Date         time.Time `gorm:"type:date;not null"`
	MealType     string    `gorm:"not null"`
	FoodItem     string    `gorm:"not null"`
	Calories     int       `gorm:"not null"`
	ProteinGrams float64   `gorm:"column:protein_grams;not null"`
	Vegetarian   bool      `gorm:"not null"`
}

func (FoodLog) TableName() string {
	return "food"
}

func (entry FoodLog) RowKey() string {
	return strings.Join([]string{
		entry.Username,
		formatDay(entry.Date),
		entry.MealType,
		entry.FoodItem,
		strconv.Itoa(entry.Calories),
		formatFloat(entry.ProteinGrams),
		strconv.FormatBool(entry.Vegetarian),
	}, rowKeySeparator)
}

func (entry FoodLog) Owner() string {
	return entry.Username
}
