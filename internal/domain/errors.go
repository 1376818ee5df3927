package domain

import "errors"

// Common errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidID    = errors.New("invalid id")
	ErrCacheMiss    = errors.New("cache miss")
	ErrUnauthorized = errors.New("unauthorized")
)

// Input validation errors raised by the planners and the scorer.
// They are detected before any computation and never touch stored state.
var (
	ErrInvalidGoal             = errors.New("invalid goal: expected bulking or cutting")
	ErrInvalidBiometric        = errors.New("invalid biometric: weight and height must be positive")
	ErrUnsupportedAvailability = errors.New("unsupported weekly availability: expected 2 to 6 days")
	ErrUnknownFood             = errors.New("unknown food")
	ErrInvalidSet              = errors.New("invalid set: weight, reps and rir must not be negative")
	ErrInvalidDate             = errors.New("invalid date: expected YYYY-MM-DD")
	ErrProfileIncomplete       = errors.New("profile incomplete: complete onboarding first")
	ErrTrainingPlanNotFound    = errors.New("training plan not found")
	ErrTrainingPlanDayNotFound = errors.New("training plan day not found")
	ErrStatsConflict           = errors.New("stats were modified concurrently")
	ErrExportUnavailable       = errors.New("progress export is not configured")
)

// IsValidationError reports whether err is caused by bad caller input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidGoal,
		ErrInvalidBiometric,
		ErrUnsupportedAvailability,
		ErrUnknownFood,
		ErrInvalidSet,
		ErrInvalidDate,
		ErrProfileIncomplete,
		ErrInvalidID,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
