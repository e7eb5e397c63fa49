package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/fitlog/internal/models"
	"go.uber.org/zap"
)

type FoodRepository interface {
	Append(rows []models.FoodLog) (int, error)
}

type WorkoutRepository interface {
	Append(rows []models.WorkoutLog) (int, error)
}

type ConfirmResult struct {
	FoodRows    int
	WorkoutRows int
}

type RecordService struct {
	foods    FoodRepository
	workouts WorkoutRepository
	logger   *zap.Logger
}

func NewRecordService(foods FoodRepository, workouts WorkoutRepository, logger *zap.Logger) *RecordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{
		foods:    foods,
		workouts: workouts,
		logger:   logger,
	}
}

// ConfirmDayPlan logs the plan's meals and, unless it is a rest day, its
// exercises. Food and workout rows are two separate appends: when the second
// one fails the food rows stay committed.
func (service *RecordService) ConfirmDayPlan(username string, date time.Time, plan DayPlan, vegetarian bool) (ConfirmResult, error) {
	day := TruncateDay(date)

	foodLogs := BuildFoodLogs(username, day, plan.Meals, vegetarian)
	if _, err := service.foods.Append(foodLogs); err != nil {
		service.logger.Error("append food logs failed", zap.String("username", username), zap.Error(err))
		return ConfirmResult{}, fmt.Errorf("%w: %w", ErrFoodSaveFailed, err)
	}
	result := ConfirmResult{FoodRows: len(foodLogs)}

	if !plan.IsRestDay() {
		workoutLogs := BuildWorkoutLogs(username, day, plan.MuscleGroup, plan.Exercises)
		if len(workoutLogs) > 0 {
			if _, err := service.workouts.Append(workoutLogs); err != nil {
				service.logger.Error("append workout logs failed",
					zap.String("username", username),
					zap.Int("food_rows", result.FoodRows),
					zap.Error(err),
				)
				return result, fmt.Errorf("%w: %w", ErrWorkoutSaveFailed, err)
			}
		}
		result.WorkoutRows = len(workoutLogs)
	}

	service.logger.Info("day plan confirmed",
		zap.String("username", username),
		zap.String("date", FormatCalendarDay(day)),
		zap.Int("food_rows", result.FoodRows),
		zap.Int("workout_rows", result.WorkoutRows),
	)
	return result, nil
}

func BuildFoodLogs(username string, day time.Time, meals []MealSpec, vegetarian bool) []models.FoodLog {
	logs := make([]models.FoodLog, 0, len(meals))
	for _, meal := range meals {
		logs = append(logs, models.FoodLog{
			Username:     username,
			Date:         day,
			MealType:     meal.MealType,
			FoodItem:     meal.Item,
			Calories:     meal.Calories,
			ProteinGrams: meal.ProteinGrams,
			Vegetarian:   vegetarian,
		})
	}
	return logs
}

func BuildWorkoutLogs(username string, day time.Time, muscleGroup string, exercises []ExerciseSpec) []models.WorkoutLog {
	logs := make([]models.WorkoutLog, 0, len(exercises))
	for _, exercise := range exercises {
		logs = append(logs, models.WorkoutLog{
			Username:        username,
			Date:            day,
			MuscleGroup:     muscleGroup,
			Exercise:        exercise.Name,
			Sets:            exercise.Sets,
			Reps:            exercise.Reps,
			DurationMinutes: exercise.DurationMinutes,
			Completed:       true,
		})
	}
	return logs
}
