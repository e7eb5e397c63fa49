package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/fitlog/internal/models"
)

func countActive(entries []models.WeightEntry) int {
	active := 0
	for _, entry := range entries {
		if entry.Active {
			active++
		}
	}
	return active
}

func TestSetGoalScenarioSupersedesPreviousGoal(t *testing.T) {
	t.Parallel()

	repositories := openServiceTestRepositories(t)
	service := NewGoalService(repositories.Weights, time.UTC, nil)
	day := time.Date(2026, time.March, 2, 18, 45, 0, 0, time.UTC)

	goal, err := service.SetGoal("alice", models.GoalLoss, 80, 70, day)
	if err != nil {
		t.Fatalf("SetGoal(LOSS) unexpected error: %v", err)
	}
	if !goal.Date.Equal(serviceTestDay(2026, time.March, 2)) {
		t.Fatalf("expected goal dated 2026-03-02, got %s", goal.Date)
	}

	completion := EstimateCompletionDate(goal.Date, goal.WeightKg, goal.TargetWeightKg, goal.GoalType)
	if want := serviceTestDay(2026, time.July, 20); !completion.Equal(want) {
		t.Fatalf("expected completion %s, got %s", want, completion)
	}

	if _, err := service.SetGoal("alice", models.GoalGain, 70, 75, day.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("SetGoal(GAIN) unexpected error: %v", err)
	}

	entries := repositories.Weights.ReadOwnedBy("alice")
	if len(entries) != 2 {
		t.Fatalf("expected two weight rows, got %d", len(entries))
	}
	if active := countActive(entries); active != 1 {
		t.Fatalf("expected exactly one active row, got %d", active)
	}
	for _, entry := range entries {
		if entry.Active && entry.GoalType != models.GoalGain {
			t.Fatalf("expected the active row to be the gain goal, got %#v", entry)
		}
	}

	active, found := service.GetActiveGoal("alice")
	if !found {
		t.Fatalf("expected an active goal")
	}
	if active.GoalType != models.GoalGain || active.WeightKg != 70 || active.TargetWeightKg != 75 {
		t.Fatalf("unexpected active goal: %#v", active)
	}
}

func TestSetGoalThenGetActiveGoalReturnsInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goalType string
		current  float64
		target   float64
	}{
		{goalType: models.GoalGain, current: 60, target: 60.5},
		{goalType: models.GoalGain, current: 55.2, target: 70},
		{goalType: models.GoalLoss, current: 95, target: 80},
		{goalType: models.GoalLoss, current: 70.1, target: 70},
	}

	for _, testCase := range tests {
		weights := &memoryCollection[models.WeightEntry]{}
		service := NewGoalService(weights, time.UTC, nil)
		if _, err := service.SetGoal("alice", testCase.goalType, testCase.current, testCase.target, time.Now()); err != nil {
			t.Fatalf("SetGoal(%v) unexpected error: %v", testCase, err)
		}

		goal, found := service.GetActiveGoal("alice")
		if !found {
			t.Fatalf("SetGoal(%v): expected active goal", testCase)
		}
		if goal.GoalType != testCase.goalType || goal.WeightKg != testCase.current || goal.TargetWeightKg != testCase.target {
			t.Fatalf("SetGoal(%v): unexpected goal %#v", testCase, goal)
		}
		if active := countActive(weights.rows); active != 1 {
			t.Fatalf("SetGoal(%v): expected one active row, got %d", testCase, active)
		}
	}
}

func TestSetGoalRejectsContradictingDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		goalType string
		current  float64
		target   float64
		want     error
	}{
		{name: "gain to lower", goalType: models.GoalGain, current: 70, target: 65, want: ErrGoalMustIncrease},
		{name: "gain to same", goalType: models.GoalGain, current: 70, target: 70, want: ErrGoalMustIncrease},
		{name: "loss to higher", goalType: models.GoalLoss, current: 70, target: 75, want: ErrGoalMustDecrease},
		{name: "loss to same", goalType: models.GoalLoss, current: 70, target: 70, want: ErrGoalMustDecrease},
		{name: "zero weight", goalType: models.GoalLoss, current: 0, target: -1, want: ErrInvalidWeight},
		{name: "unknown type", goalType: "Maintain", current: 70, target: 70, want: ErrInvalidGoalType},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			weights := &memoryCollection[models.WeightEntry]{
				rows: []models.WeightEntry{{Username: "alice", GoalType: models.GoalLoss, WeightKg: 90, TargetWeightKg: 80, Active: true}},
			}
			service := NewGoalService(weights, time.UTC, nil)

			_, err := service.SetGoal("alice", testCase.goalType, testCase.current, testCase.target, time.Now())
			if !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
			if len(weights.rows) != 1 || !weights.rows[0].Active {
				t.Fatalf("expected stored rows untouched, got %#v", weights.rows)
			}
		})
	}
}

func TestSetGoalLeavesOtherUsersGoalsActive(t *testing.T) {
	t.Parallel()

	weights := &memoryCollection[models.WeightEntry]{
		rows: []models.WeightEntry{{Username: "bob", GoalType: models.GoalGain, WeightKg: 60, TargetWeightKg: 65, Active: true}},
	}
	service := NewGoalService(weights, time.UTC, nil)
	if _, err := service.SetGoal("alice", models.GoalLoss, 80, 70, time.Now()); err != nil {
		t.Fatalf("SetGoal() unexpected error: %v", err)
	}

	if _, found := service.GetActiveGoal("bob"); !found {
		t.Fatalf("expected bob's goal to stay active")
	}
}

func TestSetGoalReportsDeactivationFailureWithoutAppending(t *testing.T) {
	t.Parallel()

	weights := &memoryCollection[models.WeightEntry]{rewriteErr: errors.New("read failed")}
	service := NewGoalService(weights, time.UTC, nil)

	_, err := service.SetGoal("alice", models.GoalLoss, 80, 70, time.Now())
	if !errors.Is(err, ErrGoalSaveFailed) {
		t.Fatalf("expected ErrGoalSaveFailed, got %v", err)
	}
	if weights.appends != 0 {
		t.Fatalf("expected no append after failed deactivation, got %d", weights.appends)
	}
}

func TestGetActiveGoalPrefersLastInsertedRow(t *testing.T) {
	t.Parallel()

	weights := &memoryCollection[models.WeightEntry]{
		rows: []models.WeightEntry{
			{Username: "alice", Date: serviceTestDay(2026, time.May, 1), GoalType: models.GoalLoss, WeightKg: 80, TargetWeightKg: 70, Active: true},
			{Username: "alice", Date: serviceTestDay(2026, time.January, 1), GoalType: models.GoalGain, WeightKg: 60, TargetWeightKg: 65, Active: true},
			{Username: "alice", Date: serviceTestDay(2026, time.June, 1), GoalType: models.GoalLoss, WeightKg: 82, TargetWeightKg: 75, Active: false},
		},
	}
	service := NewGoalService(weights, time.UTC, nil)

	goal, found := service.GetActiveGoal("alice")
	if !found {
		t.Fatalf("expected an active goal")
	}
	if goal.GoalType != models.GoalGain {
		t.Fatalf("expected last inserted active row, got %#v", goal)
	}

	if _, found := service.GetActiveGoal("nobody"); found {
		t.Fatalf("expected no active goal for unknown user")
	}
}

func TestCompleteGoalDeactivatesAllActiveRows(t *testing.T) {
	t.Parallel()

	weights := &memoryCollection[models.WeightEntry]{
		rows: []models.WeightEntry{
			{Username: "alice", GoalType: models.GoalLoss, WeightKg: 80, TargetWeightKg: 70, Active: true},
			{Username: "alice", GoalType: models.GoalLoss, WeightKg: 78, TargetWeightKg: 70, Active: true},
			{Username: "bob", GoalType: models.GoalGain, WeightKg: 60, TargetWeightKg: 65, Active: true},
		},
	}
	service := NewGoalService(weights, time.UTC, nil)

	completed, err := service.CompleteGoal("alice")
	if err != nil {
		t.Fatalf("CompleteGoal() unexpected error: %v", err)
	}
	if completed != 2 {
		t.Fatalf("expected 2 rows completed, got %d", completed)
	}
	if len(weights.rows) != 3 {
		t.Fatalf("expected no rows to be added or removed, got %d", len(weights.rows))
	}
	if _, found := service.GetActiveGoal("alice"); found {
		t.Fatalf("expected alice to have no active goal")
	}
	if _, found := service.GetActiveGoal("bob"); !found {
		t.Fatalf("expected bob's goal untouched")
	}
}

func TestLogWeightCarriesActiveGoal(t *testing.T) {
	t.Parallel()

	repositories := openServiceTestRepositories(t)
	service := NewGoalService(repositories.Weights, time.UTC, nil)

	if _, err := service.LogWeight("alice", serviceTestDay(2026, time.March, 3), 79); !errors.Is(err, ErrNoActiveGoal) {
		t.Fatalf("expected ErrNoActiveGoal, got %v", err)
	}

	if _, err := service.SetGoal("alice", models.GoalLoss, 80, 70, serviceTestDay(2026, time.March, 2)); err != nil {
		t.Fatalf("SetGoal() unexpected error: %v", err)
	}
	entry, err := service.LogWeight("alice", time.Date(2026, time.March, 9, 7, 0, 0, 0, time.UTC), 79.4)
	if err != nil {
		t.Fatalf("LogWeight() unexpected error: %v", err)
	}
	if !entry.Active || entry.GoalType != models.GoalLoss || entry.TargetWeightKg != 70 {
		t.Fatalf("unexpected check-in row: %#v", entry)
	}
	if !entry.Date.Equal(serviceTestDay(2026, time.March, 9)) {
		t.Fatalf("expected check-in dated 2026-03-09, got %s", entry.Date)
	}

	if _, err := service.LogWeight("alice", serviceTestDay(2026, time.March, 10), -3); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}

	goal, found := service.GetActiveGoal("alice")
	if !found || goal.WeightKg != 79.4 {
		t.Fatalf("expected latest check-in to be the active row, got %#v", goal)
	}
	if rows := repositories.Weights.ReadOwnedBy("alice"); len(rows) != 2 {
		t.Fatalf("expected goal row plus one check-in, got %d", len(rows))
	}
}

func TestStatusProjectsCompletion(t *testing.T) {
	t.Parallel()

	location := time.FixedZone("UTC+5", 5*60*60)
	weights := &memoryCollection[models.WeightEntry]{
		rows: []models.WeightEntry{{Username: "alice", GoalType: models.GoalGain, WeightKg: 60, TargetWeightKg: 61, Active: true}},
	}
	service := NewGoalService(weights, location, nil)

	now := time.Date(2026, time.March, 1, 21, 0, 0, 0, time.UTC)
	status, found := service.Status("alice", now)
	if !found {
		t.Fatalf("expected status for active goal")
	}
	if status.RemainingKg != 1 || status.DaysRemaining != 14 {
		t.Fatalf("unexpected remaining values: %#v", status)
	}
	if want := serviceTestDay(2026, time.March, 16); !status.EstimatedCompletion.Equal(want) {
		t.Fatalf("expected completion %s, got %s", want, status.EstimatedCompletion)
	}

	if _, found := service.Status("bob", now); found {
		t.Fatalf("expected no status without an active goal")
	}
}
