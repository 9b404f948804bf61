package catalog

import "errors"

var (
	ErrServiceTypeNotFound = errors.New("service type not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrTimeSlotNotFound    = errors.New("time slot not found")
	ErrInvalidInput        = errors.New("invalid catalog input")
)
