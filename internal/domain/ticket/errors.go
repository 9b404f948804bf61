package ticket

import "errors"

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrInvalidStatus     = errors.New("invalid ticket status")
	ErrInvalidTransition = errors.New("invalid ticket status transition")
	ErrTicketLocked      = errors.New("ticket already assigned")
	ErrTicketConflict    = errors.New("ticket changed concurrently")
	ErrInvalidInput      = errors.New("invalid ticket input")
)
