package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	bookingdomain "petcare-go/internal/domain/booking"
	"petcare-go/internal/domain/civil"
	"petcare-go/internal/sqlerr"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(bookingdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

// Bookings

// activeSlotIndex is the partial unique index over live bookings of a slot.
const activeSlotIndex = "booking_active_slot_key"

// CreateBooking reports ErrSlotTaken when a concurrent insert won the slot.
// The serial key cannot collide, so any unique violation without a named
// constraint is the slot index too.
func (r *PostgresRepository) CreateBooking(ctx context.Context, booking *bookingdomain.Booking) error {
	err := sqlerr.Classify(r.db.WithContext(ctx).Create(booking).Error)
	var sqlErr *sqlerr.Error
	if errors.As(err, &sqlErr) && sqlErr.Code == sqlerr.UniqueViolation &&
		(sqlErr.Constraint == "" || sqlErr.Constraint == activeSlotIndex) {
		return fmt.Errorf("%w: %w", bookingdomain.ErrSlotTaken, err)
	}
	return err
}

func (r *PostgresRepository) GetBookingByID(ctx context.Context, bookID int64) (*bookingdomain.Booking, error) {
	var booking bookingdomain.Booking
	if err := r.db.WithContext(ctx).Where("bookid = ?", bookID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingdomain.ErrBookingNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	booking.ServeDate = booking.ServeDate.UTC()
	return &booking, nil
}

func (r *PostgresRepository) ListBookingsByPetOwner(ctx context.Context, petOwnerID int64) ([]bookingdomain.Booking, error) {
	bookings := make([]bookingdomain.Booking, 0)
	if err := r.db.WithContext(ctx).Where("poid = ?", petOwnerID).Order("bookid").Find(&bookings).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	for i := range bookings {
		bookings[i].ServeDate = bookings[i].ServeDate.UTC()
	}
	return bookings, nil
}

func (r *PostgresRepository) UpdateBookingStatus(ctx context.Context, bookID int64, status string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&bookingdomain.Booking{}).
		Where("bookid = ?", bookID).
		Update("status", status)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteBooking(ctx context.Context, bookID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&bookingdomain.Booking{}, "bookid = ?", bookID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) CountActiveBookings(ctx context.Context, serviceID int64, slot civil.TimeOfDay, serveDate time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&bookingdomain.Booking{}).
		Where("svid = ? AND slot = ? AND servedate = ? AND status <> ?", serviceID, slot, serveDate, bookingdomain.StatusCancelled).
		Count(&count).Error
	return count, sqlerr.Classify(err)
}

// Booked pets

func (r *PostgresRepository) CreateBookingPet(ctx context.Context, bookingPet *bookingdomain.BookingPet) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(bookingPet).Error)
}

func (r *PostgresRepository) ListBookingPets(ctx context.Context, bookID int64) ([]bookingdomain.BookingPet, error) {
	pets := make([]bookingdomain.BookingPet, 0)
	if err := r.db.WithContext(ctx).Where("bookid = ?", bookID).Order("petid").Find(&pets).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return pets, nil
}

// Reports

func (r *PostgresRepository) CreateServiceReport(ctx context.Context, report *bookingdomain.ServiceReport) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(report).Error)
}

func (r *PostgresRepository) GetServiceReport(ctx context.Context, bookID int64) (*bookingdomain.ServiceReport, error) {
	var report bookingdomain.ServiceReport
	if err := r.db.WithContext(ctx).Where("bookid = ?", bookID).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingdomain.ErrServiceReportNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &report, nil
}

// Reviews

func (r *PostgresRepository) CreateServiceReview(ctx context.Context, review *bookingdomain.ServiceReview) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(review).Error)
}

func (r *PostgresRepository) GetServiceReview(ctx context.Context, bookID int64) (*bookingdomain.ServiceReview, error) {
	var review bookingdomain.ServiceReview
	if err := r.db.WithContext(ctx).Where("bookid = ?", bookID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingdomain.ErrServiceReviewNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &review, nil
}

// Updates

func (r *PostgresRepository) CreateServiceUpdate(ctx context.Context, update *bookingdomain.ServiceUpdate) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(update).Error)
}

func (r *PostgresRepository) ListServiceUpdatesByBookID(ctx context.Context, bookID int64) ([]bookingdomain.ServiceUpdate, error) {
	updates := make([]bookingdomain.ServiceUpdate, 0)
	if err := r.db.WithContext(ctx).Where("bookid = ?", bookID).Order("no_update").Find(&updates).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return updates, nil
}

func (r *PostgresRepository) LastServiceUpdateNumber(ctx context.Context, bookID int64) (int, error) {
	var last int
	err := r.db.WithContext(ctx).
		Model(&bookingdomain.ServiceUpdate{}).
		Where("bookid = ?", bookID).
		Select("COALESCE(MAX(no_update), 0)").
		Scan(&last).Error
	return last, sqlerr.Classify(err)
}
