package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/fitlog/internal/models"
	"go.uber.org/zap"
)

type WeightRepository interface {
	ReadOwnedBy(username string) []models.WeightEntry
	Append(rows []models.WeightEntry) (int, error)
	Rewrite(mutate func(rows []models.WeightEntry) []models.WeightEntry) error
}

type GoalService struct {
	weights  WeightRepository
	location *time.Location
	logger   *zap.Logger
}

type GoalStatus struct {
	Goal                models.WeightEntry
	EstimatedCompletion time.Time
	DaysRemaining       float64
	RemainingKg         float64
}

func NewGoalService(weights WeightRepository, location *time.Location, logger *zap.Logger) *GoalService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoalService{
		weights:  weights,
		location: location,
		logger:   logger,
	}
}

// GetActiveGoal returns the last inserted active row for username. Dates are
// not consulted, so a later check-in with an earlier date still wins.
func (service *GoalService) GetActiveGoal(username string) (models.WeightEntry, bool) {
	entries := service.weights.ReadOwnedBy(username)
	for index := len(entries) - 1; index >= 0; index-- {
		if entries[index].Active {
			return entries[index], true
		}
	}
	return models.WeightEntry{}, false
}

func (service *GoalService) Status(username string, now time.Time) (GoalStatus, bool) {
	goal, found := service.GetActiveGoal(username)
	if !found {
		return GoalStatus{}, false
	}

	today := CalendarDay(now, service.location)
	return GoalStatus{
		Goal:                goal,
		EstimatedCompletion: EstimateCompletionDate(today, goal.WeightKg, goal.TargetWeightKg, goal.GoalType),
		DaysRemaining:       EstimateDaysRemaining(goal.WeightKg, goal.TargetWeightKg, goal.GoalType),
		RemainingKg:         RemainingKg(goal.WeightKg, goal.TargetWeightKg, goal.GoalType),
	}, true
}

// SetGoal deactivates every earlier row of username and appends the new goal.
// The two writes are separate; a crash in between leaves no active goal.
func (service *GoalService) SetGoal(username string, goalType string, currentWeight float64, targetWeight float64, now time.Time) (models.WeightEntry, error) {
	if err := ValidateGoal(goalType, currentWeight, targetWeight); err != nil {
		return models.WeightEntry{}, err
	}

	deactivated := 0
	err := service.weights.Rewrite(func(rows []models.WeightEntry) []models.WeightEntry {
		for index := range rows {
			if rows[index].Username != username {
				continue
			}
			if rows[index].Active {
				deactivated++
			}
			rows[index].Active = false
		}
		return rows
	})
	if err != nil {
		service.logger.Error("deactivate goals failed", zap.String("username", username), zap.Error(err))
		return models.WeightEntry{}, fmt.Errorf("%w: %w", ErrGoalSaveFailed, err)
	}

	goal := models.WeightEntry{
		Username:       username,
		Date:           CalendarDay(now, service.location),
		WeightKg:       currentWeight,
		GoalType:       goalType,
		TargetWeightKg: targetWeight,
		Active:         true,
	}
	if _, err := service.weights.Append([]models.WeightEntry{goal}); err != nil {
		service.logger.Error("append goal failed", zap.String("username", username), zap.Error(err))
		return models.WeightEntry{}, fmt.Errorf("%w: %w", ErrGoalSaveFailed, err)
	}

	service.logger.Info("goal set",
		zap.String("username", username),
		zap.String("goal_type", goalType),
		zap.Float64("current_kg", currentWeight),
		zap.Float64("target_kg", targetWeight),
		zap.Int("deactivated", deactivated),
	)
	return goal, nil
}

// CompleteGoal deactivates every active row of username and reports how many
// rows it changed.
func (service *GoalService) CompleteGoal(username string) (int, error) {
	completed := 0
	err := service.weights.Rewrite(func(rows []models.WeightEntry) []models.WeightEntry {
		for index := range rows {
			if rows[index].Username == username && rows[index].Active {
				rows[index].Active = false
				completed++
			}
		}
		return rows
	})
	if err != nil {
		service.logger.Error("complete goal failed", zap.String("username", username), zap.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrGoalSaveFailed, err)
	}

	service.logger.Info("goal completed", zap.String("username", username), zap.Int("rows", completed))
	return completed, nil
}

// LogWeight appends a check-in carrying the active goal's type and target.
func (service *GoalService) LogWeight(username string, date time.Time, weight float64) (models.WeightEntry, error) {
	if !IsValidWeight(weight) {
		return models.WeightEntry{}, ErrInvalidWeight
	}

	goal, found := service.GetActiveGoal(username)
	if !found {
		return models.WeightEntry{}, ErrNoActiveGoal
	}

	entry := models.WeightEntry{
		Username:       username,
		Date:           TruncateDay(date),
		WeightKg:       weight,
		GoalType:       goal.GoalType,
		TargetWeightKg: goal.TargetWeightKg,
		Active:         true,
	}
	if _, err := service.weights.Append([]models.WeightEntry{entry}); err != nil {
		service.logger.Error("log weight failed", zap.String("username", username), zap.Error(err))
		return models.WeightEntry{}, fmt.Errorf("%w: %w", ErrWeightSaveFailed, err)
	}

	service.logger.Info("weight logged",
		zap.String("username", username),
		zap.String("date", FormatCalendarDay(entry.Date)),
		zap.Float64("weight_kg", weight),
	)
	return entry, nil
}
