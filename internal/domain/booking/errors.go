package booking

import "errors"

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrServiceReportNotFound = errors.New("service report not found")
	ErrServiceReviewNotFound = errors.New("service review not found")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrSlotTaken             = errors.New("time slot already booked for that date")
	ErrBookingClosed         = errors.New("booking is cancelled or completed")
	ErrInvalidInput          = errors.New("invalid booking input")
)
