package handler

import (
	"errors"
	"net/http"

	"github.com/samber/lo"

	bookingdomain "petcare-go/internal/domain/booking"
	catalogdomain "petcare-go/internal/domain/catalog"
	notificationdomain "petcare-go/internal/domain/notification"
	petdomain "petcare-go/internal/domain/pet"
	scheduledomain "petcare-go/internal/domain/schedule"
	ticketdomain "petcare-go/internal/domain/ticket"
	userdomain "petcare-go/internal/domain/user"
	"petcare-go/internal/sqlerr"
)

var notFoundErrors = []error{
	userdomain.ErrUserNotFound,
	userdomain.ErrManagerNotFound,
	userdomain.ErrPetOwnerNotFound,
	userdomain.ErrServiceProviderNotFound,
	ticketdomain.ErrTicketNotFound,
	petdomain.ErrPetNotFound,
	petdomain.ErrDietNotFound,
	petdomain.ErrActivityNotFound,
	petdomain.ErrPetScheduleNotFound,
	catalogdomain.ErrServiceTypeNotFound,
	catalogdomain.ErrServiceNotFound,
	catalogdomain.ErrTimeSlotNotFound,
	bookingdomain.ErrBookingNotFound,
	bookingdomain.ErrServiceReportNotFound,
	bookingdomain.ErrServiceReviewNotFound,
	notificationdomain.ErrNotificationNotFound,
	scheduledomain.ErrScheduleNotFound,
}

var invalidInputErrors = []error{
	userdomain.ErrInvalidRole,
	userdomain.ErrInvalidInput,
	ticketdomain.ErrInvalidStatus,
	ticketdomain.ErrInvalidInput,
	petdomain.ErrInvalidTarget,
	petdomain.ErrInvalidInput,
	catalogdomain.ErrInvalidInput,
	bookingdomain.ErrInvalidRating,
	bookingdomain.ErrInvalidInput,
	notificationdomain.ErrInvalidInput,
	scheduledomain.ErrInvalidInput,
}

var conflictErrors = []error{
	ticketdomain.ErrInvalidTransition,
	ticketdomain.ErrTicketLocked,
	ticketdomain.ErrTicketConflict,
	bookingdomain.ErrSlotTaken,
	bookingdomain.ErrBookingClosed,
}

func matchesAny(err error, targets []error) bool {
	return lo.ContainsBy(targets, func(target error) bool {
		return errors.Is(err, target)
	})
}

// fail maps a service error onto an HTTP status and logs it. Caller
// mistakes are logged at warn, everything else at error.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, code, message := classify(err)
	if status >= http.StatusInternalServerError {
		h.log.InternalError(op, err, "method", r.Method, "path", r.URL.Path)
	} else {
		h.log.BusinessError(op, err, "method", r.Method, "path", r.URL.Path)
	}
	writeError(w, status, code, message)
}

func classify(err error) (status int, code, message string) {
	switch {
	case matchesAny(err, notFoundErrors):
		return http.StatusNotFound, "not_found", err.Error()
	case matchesAny(err, invalidInputErrors):
		return http.StatusBadRequest, "invalid_request", err.Error()
	case matchesAny(err, conflictErrors):
		return http.StatusConflict, "conflict", err.Error()
	case errors.Is(err, sqlerr.ErrConstraint):
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			return http.StatusConflict, "already_exists", "resource already exists"
		}
		return http.StatusBadRequest, "constraint_violation", "request violates a data constraint"
	case errors.Is(err, sqlerr.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable", "database unavailable"
	default:
		return http.StatusInternalServerError, "internal_error", "internal error"
	}
}
