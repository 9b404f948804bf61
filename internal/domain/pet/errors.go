package pet

import "errors"

var (
	ErrPetNotFound         = errors.New("pet not found")
	ErrDietNotFound        = errors.New("diet not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrPetScheduleNotFound = errors.New("pet schedule not found")
	ErrInvalidTarget       = errors.New("pet schedule must target exactly one diet or activity")
	ErrInvalidInput        = errors.New("invalid pet input")
	// ErrCorruptSchedule marks a stored schedule row whose target columns
	// are both set or both empty.
	ErrCorruptSchedule     = errors.New("stored pet schedule has no single target")
)
