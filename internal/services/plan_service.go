package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/fitlog/internal/models"
)

const (
	DefaultSets           = 3
	DefaultReps           = 10
	CardioDurationMinutes = 30
)

type ExerciseSpec struct {
	Name            string
	Sets            int
	Reps            int
	DurationMinutes int
}

type MealSpec struct {
	MealType     string
	Item         string
	Calories     int
	ProteinGrams float64
}

type DayPlan struct {
	Weekday     time.Weekday
	MuscleGroup string
	Exercises   []ExerciseSpec
	Meals       []MealSpec
}

func (plan DayPlan) IsRestDay() bool {
	return plan.MuscleGroup == models.RestDay
}

type PlanService struct {
	catalog models.PlanCatalog
}

func NewPlanService(catalog models.PlanCatalog) *PlanService {
	return &PlanService{catalog: catalog}
}

func (service *PlanService) ResolvePlanForDate(date time.Time, goalType string, vegetarian bool) (DayPlan, error) {
	return service.ResolvePlan(TruncateDay(date).Weekday(), goalType, vegetarian)
}

// ResolvePlan looks up the weekday schedule and the meal template for the goal
// and diet. Meals come back in MealSlots order.
func (service *PlanService) ResolvePlan(weekday time.Weekday, goalType string, vegetarian bool) (DayPlan, error) {
	if !models.IsValidGoalType(goalType) {
		return DayPlan{}, ErrInvalidGoalType
	}

	template, ok := service.catalog.Meals[goalType][vegetarian]
	if !ok {
		return DayPlan{}, ErrMealTemplateIncomplete
	}
	meals := make([]MealSpec, 0, len(models.MealSlots))
	for _, slot := range models.MealSlots {
		item, ok := template[slot]
		if !ok {
			return DayPlan{}, ErrMealTemplateIncomplete
		}
		meals = append(meals, MealSpec{
			MealType:     slot,
			Item:         item.Item,
			Calories:     item.Calories,
			ProteinGrams: item.ProteinGrams,
		})
	}

	day, ok := service.catalog.Schedule[weekday]
	if !ok {
		day = models.MuscleDay{MuscleGroup: models.RestDay}
	}
	return DayPlan{
		Weekday:     weekday,
		MuscleGroup: day.MuscleGroup,
		Exercises:   buildExerciseSpecs(day),
		Meals:       meals,
	}, nil
}

func buildExerciseSpecs(day models.MuscleDay) []ExerciseSpec {
	duration := 0
	if strings.Contains(day.MuscleGroup, "Cardio") {
		duration = CardioDurationMinutes
	}

	specs := make([]ExerciseSpec, 0, len(day.Exercises))
	for _, name := range day.Exercises {
		specs = append(specs, ExerciseSpec{
			Name:            name,
			Sets:            DefaultSets,
			Reps:            DefaultReps,
			DurationMinutes: duration,
		})
	}
	return specs
}
