package services

import "errors"

var (
	ErrCredentialsRequired    = errors.New("username and password required")
	ErrPasswordMismatch       = errors.New("passwords don't match")
	ErrPasswordTooLong        = errors.New("password too long")
	ErrInvalidWeight          = errors.New("invalid weight")
	ErrInvalidGoalType        = errors.New("invalid goal type")
	ErrGoalMustIncrease       = errors.New("goal must be greater than current weight")
	ErrGoalMustDecrease       = errors.New("goal must be less than current weight")
	ErrInvalidDate            = errors.New("invalid date")
	ErrMealTemplateIncomplete = errors.New("meal template incomplete")
)

var (
	ErrUsernameTaken          = errors.New("username already exists")
	ErrAuthCredentialsInvalid = errors.New("invalid username or password")
	ErrNoActiveGoal           = errors.New("no active goal")
	ErrUnknownCollection      = errors.New("unknown collection")
)

var (
	ErrUserSaveFailed    = errors.New("save user failed")
	ErrGoalSaveFailed    = errors.New("save goal failed")
	ErrWeightSaveFailed  = errors.New("save weight failed")
	ErrFoodSaveFailed    = errors.New("save food log failed")
	ErrWorkoutSaveFailed = errors.New("save workout log failed")
)

var validationErrors = []error{
	ErrCredentialsRequired,
	ErrPasswordMismatch,
	ErrPasswordTooLong,
	ErrInvalidWeight,
	ErrInvalidGoalType,
	ErrGoalMustIncrease,
	ErrGoalMustDecrease,
	ErrInvalidDate,
}

// IsValidationError reports whether err rejects user input without touching
// stored data.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsPersistenceError reports whether err comes from a failed write.
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrUserSaveFailed) ||
		errors.Is(err, ErrGoalSaveFailed) ||
		errors.Is(err, ErrWeightSaveFailed) ||
		errors.Is(err, ErrFoodSaveFailed) ||
		errors.Is(err, ErrWorkoutSaveFailed)
}
