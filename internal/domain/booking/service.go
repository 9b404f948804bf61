package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"petcare-go/internal/domain/civil"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// AddBooking reserves a service slot on a date and links the listed pets,
// all in one transaction. A slot can hold one booking per date unless the
// earlier one was cancelled.
func (s *Service) AddBooking(ctx context.Context, input BookingInput) (*Booking, error) {
	if input.PetOwnerID <= 0 || input.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: pet owner and service are required", ErrInvalidInput)
	}
	if !input.Slot.Valid() {
		return nil, fmt.Errorf("%w: invalid slot %s", ErrInvalidInput, input.Slot)
	}
	if input.ServeDate.IsZero() {
		return nil, fmt.Errorf("%w: serve date is required", ErrInvalidInput)
	}

	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status == "" {
		status = StatusPending
	}
	if !lo.Contains(statuses, status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	booking := Booking{
		PetOwnerID:    input.PetOwnerID,
		ServiceID:     input.ServiceID,
		Slot:          input.Slot,
		BookTimestamp: s.now(),
		ServeDate:     civil.DateOf(input.ServeDate),
		PaymentMethod: strings.TrimSpace(input.PaymentMethod),
		Status:        status,
	}
	petIDs := lo.Uniq(input.PetIDs)

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		taken, err := tx.CountActiveBookings(ctx, booking.ServiceID, booking.Slot, booking.ServeDate)
		if err != nil {
			return err
		}
		if taken > 0 {
			return ErrSlotTaken
		}

		if err := tx.CreateBooking(ctx, &booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}
		for _, petID := range petIDs {
			if err := tx.CreateBookingPet(ctx, &BookingPet{BookID: booking.ID, PetID: petID}); err != nil {
				return fmt.Errorf("link pet %d: %w", petID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (s *Service) AddBookingPet(ctx context.Context, bookID, petID int64) (*BookingPet, error) {
	bookingPet := &BookingPet{BookID: bookID, PetID: petID}
	if err := s.repo.CreateBookingPet(ctx, bookingPet); err != nil {
		return nil, err
	}
	return bookingPet, nil
}

func (s *Service) ListBookingPets(ctx context.Context, bookID int64) ([]BookingPet, error) {
	return s.repo.ListBookingPets(ctx, bookID)
}

func (s *Service) GetBookingByID(ctx context.Context, bookID int64) (*Booking, error) {
	return s.repo.GetBookingByID(ctx, bookID)
}

func (s *Service) ListBookingsByPetOwner(ctx context.Context, petOwnerID int64) ([]Booking, error) {
	return s.repo.ListBookingsByPetOwner(ctx, petOwnerID)
}

// UpdateBookingStatus changes the status of an open booking. Cancelled and
// completed bookings are final.
func (s *Service) UpdateBookingStatus(ctx context.Context, bookID int64, status string) (*Booking, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !lo.Contains(statuses, status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	var booking *Booking
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		current, err := tx.GetBookingByID(ctx, bookID)
		if err != nil {
			return err
		}
		if current.Status == StatusCancelled || current.Status == StatusCompleted {
			return fmt.Errorf("%w: %s", ErrBookingClosed, current.Status)
		}

		updated, err := tx.UpdateBookingStatus(ctx, bookID, status)
		if err != nil {
			return err
		}
		if !updated {
			return ErrBookingNotFound
		}
		current.Status = status
		booking = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) DeleteBooking(ctx context.Context, bookID int64) error {
	deleted, err := s.repo.DeleteBooking(ctx, bookID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	return nil
}

// Reports

func (s *Service) AddServiceReport(ctx context.Context, bookID int64, text string, image []byte) (*ServiceReport, error) {
	report := &ServiceReport{BookID: bookID, Text: text, Image: image}
	if err := s.repo.CreateServiceReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Service) GetServiceReport(ctx context.Context, bookID int64) (*ServiceReport, error) {
	return s.repo.GetServiceReport(ctx, bookID)
}

// Reviews

func (s *Service) AddServiceReview(ctx context.Context, bookID int64, rating int, comment string) (*ServiceReview, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}

	review := &ServiceReview{BookID: bookID, Rating: rating, Comment: strings.TrimSpace(comment)}
	if err := s.repo.CreateServiceReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Service) GetServiceReview(ctx context.Context, bookID int64) (*ServiceReview, error) {
	return s.repo.GetServiceReview(ctx, bookID)
}

// Updates

// AddServiceUpdate stores a progress note. A non-positive number means
// "next": one past the highest number already stored for the booking.
func (s *Service) AddServiceUpdate(ctx context.Context, update ServiceUpdate) (*ServiceUpdate, error) {
	if update.NoUpdate > 0 {
		if err := s.repo.CreateServiceUpdate(ctx, &update); err != nil {
			return nil, err
		}
		return &update, nil
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		last, err := tx.LastServiceUpdateNumber(ctx, update.BookID)
		if err != nil {
			return err
		}
		update.NoUpdate = last + 1
		return tx.CreateServiceUpdate(ctx, &update)
	})
	if err != nil {
		return nil, err
	}
	return &update, nil
}

func (s *Service) ListServiceUpdatesByBookID(ctx context.Context, bookID int64) ([]ServiceUpdate, error) {
	return s.repo.ListServiceUpdatesByBookID(ctx, bookID)
}
