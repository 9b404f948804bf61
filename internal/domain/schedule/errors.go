package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidInput     = errors.New("invalid schedule input")
)
