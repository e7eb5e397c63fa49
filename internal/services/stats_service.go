package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/fitlog/internal/models"
)

type WeightReader interface {
	ReadOwnedBy(username string) []models.WeightEntry
}

type FoodReader interface {
	ReadOwnedBy(username string) []models.FoodLog
}

type WorkoutReader interface {
	ReadOwnedBy(username string) []models.WorkoutLog
}

type WeightPoint struct {
	Date     time.Time
	WeightKg float64
}

type WeightProgress struct {
	Points []WeightPoint
	GoalKg float64
}

func (progress WeightProgress) HasData() bool {
	return len(progress.Points) > 0
}

type NutritionPoint struct {
	Date         time.Time
	Calories     int
	ProteinGrams float64
}

type WorkoutCount struct {
	Date        time.Time
	MuscleGroup string
	Exercises   int
}

// StatsService builds the read-only projections behind the progress reports.
// Reads are lenient, so a missing collection yields an empty view.
type StatsService struct {
	weights  WeightReader
	foods    FoodReader
	workouts WorkoutReader
}

func NewStatsService(weights WeightReader, foods FoodReader, workouts WorkoutReader) *StatsService {
	return &StatsService{
		weights:  weights,
		foods:    foods,
		workouts: workouts,
	}
}

// WeightProgress sorts check-ins by date, keeping insertion order for equal
// dates. The goal line is the target of the earliest point.
func (service *StatsService) WeightProgress(username string) WeightProgress {
	entries := service.weights.ReadOwnedBy(username)
	if len(entries) == 0 {
		return WeightProgress{}
	}

	sorted := append([]models.WeightEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]WeightPoint, 0, len(sorted))
	for _, entry := range sorted {
		points = append(points, WeightPoint{Date: TruncateDay(entry.Date), WeightKg: entry.WeightKg})
	}
	return WeightProgress{Points: points, GoalKg: sorted[0].TargetWeightKg}
}

func (service *StatsService) DailyNutrition(username string) []NutritionPoint {
	logs := service.foods.ReadOwnedBy(username)
	totals := make(map[time.Time]*NutritionPoint)
	for _, entry := range logs {
		day := TruncateDay(entry.Date)
		point, ok := totals[day]
		if !ok {
			point = &NutritionPoint{Date: day}
			totals[day] = point
		}
		point.Calories += entry.Calories
		point.ProteinGrams += entry.ProteinGrams
	}

	result := make([]NutritionPoint, 0, len(totals))
	for _, point := range totals {
		result = append(result, *point)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

func (service *StatsService) WorkoutFrequency(username string) []WorkoutCount {
	type groupKey struct {
		day         time.Time
		muscleGroup string
	}

	logs := service.workouts.ReadOwnedBy(username)
	counts := make(map[groupKey]int)
	for _, entry := range logs {
		counts[groupKey{day: TruncateDay(entry.Date), muscleGroup: entry.MuscleGroup}]++
	}

	result := make([]WorkoutCount, 0, len(counts))
	for key, count := range counts {
		result = append(result, WorkoutCount{Date: key.day, MuscleGroup: key.muscleGroup, Exercises: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].MuscleGroup < result[j].MuscleGroup
	})
	return result
}
