package booking

import (
	"context"
	"time"

	"petcare-go/internal/domain/civil"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	CreateBooking(ctx context.Context, booking *Booking) error
	GetBookingByID(ctx context.Context, bookID int64) (*Booking, error)
	ListBookingsByPetOwner(ctx context.Context, petOwnerID int64) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, bookID int64, status string) (bool, error)
	DeleteBooking(ctx context.Context, bookID int64) (bool, error)
	// CountActiveBookings counts bookings of a service slot on a date that
	// are not cancelled.
	CountActiveBookings(ctx context.Context, serviceID int64, slot civil.TimeOfDay, serveDate time.Time) (int64, error)

	CreateBookingPet(ctx context.Context, bookingPet *BookingPet) error
	ListBookingPets(ctx context.Context, bookID int64) ([]BookingPet, error)

	CreateServiceReport(ctx context.Context, report *ServiceReport) error
	GetServiceReport(ctx context.Context, bookID int64) (*ServiceReport, error)

	CreateServiceReview(ctx context.Context, review *ServiceReview) error
	GetServiceReview(ctx context.Context, bookID int64) (*ServiceReview, error)

	CreateServiceUpdate(ctx context.Context, update *ServiceUpdate) error
	ListServiceUpdatesByBookID(ctx context.Context, bookID int64) ([]ServiceUpdate, error)
	LastServiceUpdateNumber(ctx context.Context, bookID int64) (int, error)
}
