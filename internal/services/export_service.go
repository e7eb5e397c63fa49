package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ExportWeight  = "weight"
	ExportFood    = "food"
	ExportWorkout = "workout"
)

var ExportCollections = []string{ExportWeight, ExportFood, ExportWorkout}

var (
	WeightCSVHeaders  = []string{"Username", "Date", "Weight (kg)", "Goal Type", "Current Goal (kg)", "Active"}
	FoodCSVHeaders    = []string{"Username", "Date", "Meal Type", "Food Item", "Calories", "Protein (g)", "Vegetarian"}
	WorkoutCSVHeaders = []string{"Username", "Date", "Muscle Group", "Exercise", "Sets", "Reps", "Duration (min)", "Completed"}
)

type ExportService struct {
	weights  WeightReader
	foods    FoodReader
	workouts WorkoutReader
}

func NewExportService(weights WeightReader, foods FoodReader, workouts WorkoutReader) *ExportService {
	return &ExportService{
		weights:  weights,
		foods:    foods,
		workouts: workouts,
	}
}

func ExportFileName(collection string) string {
	return strings.ToLower(collection) + ".csv"
}

// WriteCSV writes the user's rows of one collection in insertion order.
func (service *ExportService) WriteCSV(output io.Writer, username string, collection string) (int, error) {
	var (
		headers []string
		rows    [][]string
	)

	switch strings.ToLower(strings.TrimSpace(collection)) {
	case ExportWeight:
		headers = WeightCSVHeaders
		for _, entry := range service.weights.ReadOwnedBy(username) {
			rows = append(rows, []string{
				entry.Username,
				FormatCalendarDay(entry.Date),
				formatExportFloat(entry.WeightKg),
				entry.GoalType,
				formatExportFloat(entry.TargetWeightKg),
				formatExportBool(entry.Active),
			})
		}
	case ExportFood:
		headers = FoodCSVHeaders
		for _, entry := range service.foods.ReadOwnedBy(username) {
			rows = append(rows, []string{
				entry.Username,
				FormatCalendarDay(entry.Date),
				entry.MealType,
				entry.FoodItem,
				strconv.Itoa(entry.Calories),
				formatExportFloat(entry.ProteinGrams),
				formatExportBool(entry.Vegetarian),
			})
		}
	case ExportWorkout:
		headers = WorkoutCSVHeaders
		for _, entry := range service.workouts.ReadOwnedBy(username) {
			rows = append(rows, []string{
				entry.Username,
				FormatCalendarDay(entry.Date),
				entry.MuscleGroup,
				entry.Exercise,
				strconv.Itoa(entry.Sets),
				strconv.Itoa(entry.Reps),
				strconv.Itoa(entry.DurationMinutes),
				formatExportBool(entry.Completed),
			})
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	writer := csv.NewWriter(output)
	if err := writer.Write(headers); err != nil {
		return 0, err
	}
	if err := writer.WriteAll(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func formatExportFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatExportBool(value bool) string {
	if value {
		return "True"
	}
	return "False"
}
