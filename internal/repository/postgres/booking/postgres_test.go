package booking

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	bookingdomain "petcare-go/internal/domain/booking"
	"petcare-go/internal/domain/civil"
	"petcare-go/internal/repository/repotest"
	"petcare-go/internal/sqlerr"
)

var serveDate = time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	return repotest.Open(t,
		&bookingdomain.Booking{},
		&bookingdomain.BookingPet{},
		&bookingdomain.ServiceReport{},
		&bookingdomain.ServiceReview{},
		&bookingdomain.ServiceUpdate{},
	)
}

func addBooking(t *testing.T, service *bookingdomain.Service, petIDs ...int64) *bookingdomain.Booking {
	t.Helper()
	booking, err := service.AddBooking(context.Background(), bookingdomain.BookingInput{
		PetOwnerID:    7,
		ServiceID:     3,
		Slot:          civil.MustTimeOfDay(10, 0, 0),
		ServeDate:     serveDate,
		PaymentMethod: "card",
		PetIDs:        petIDs,
	})
	require.NoError(t, err)
	return booking
}

func TestAddBookingWithPets(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))
	service := bookingdomain.NewService(repo)

	booking := addBooking(t, service, 2, 1, 2)
	require.NotZero(t, booking.ID)
	require.Equal(t, bookingdomain.StatusPending, booking.Status)

	stored, err := repo.GetBookingByID(ctx, booking.ID)
	require.NoError(t, err)
	require.Equal(t, civil.MustTimeOfDay(10, 0, 0), stored.Slot)
	require.True(t, serveDate.Equal(stored.ServeDate))
	require.False(t, stored.BookTimestamp.IsZero())
	require.Equal(t, "card", stored.PaymentMethod)

	pets, err := repo.ListBookingPets(ctx, booking.ID)
	require.NoError(t, err)
	require.Equal(t, []bookingdomain.BookingPet{{BookID: booking.ID, PetID: 1}, {BookID: booking.ID, PetID: 2}}, pets)

	byOwner, err := repo.ListBookingsByPetOwner(ctx, 7)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
}

func TestAddBookingRejectsTakenSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))
	service := bookingdomain.NewService(repo)

	first := addBooking(t, service)

	_, err := service.AddBooking(ctx, bookingdomain.BookingInput{
		PetOwnerID: 8, ServiceID: 3, Slot: civil.MustTimeOfDay(10, 0, 0), ServeDate: serveDate,
	})
	require.ErrorIs(t, err, bookingdomain.ErrSlotTaken)

	_, err = service.UpdateBookingStatus(ctx, first.ID, "cancelled")
	require.NoError(t, err)

	_, err = service.AddBooking(ctx, bookingdomain.BookingInput{
		PetOwnerID: 8, ServiceID: 3, Slot: civil.MustTimeOfDay(10, 0, 0), ServeDate: serveDate,
	})
	require.NoError(t, err)
}

func TestActiveSlotIndexReportsSlotTaken(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "0002_booking_active_slot.sql"))
	require.NoError(t, err)
	require.NoError(t, db.Exec(string(ddl)).Error)
	repo := NewPostgres(db)

	newBooking := func(owner int64, status string) *bookingdomain.Booking {
		return &bookingdomain.Booking{
			PetOwnerID: owner, ServiceID: 3, Slot: civil.MustTimeOfDay(10, 0, 0),
			BookTimestamp: time.Now().UTC(), ServeDate: serveDate, Status: status,
		}
	}

	// Two writers that both passed the count check.
	require.NoError(t, repo.CreateBooking(ctx, newBooking(7, bookingdomain.StatusPending)))
	err = repo.CreateBooking(ctx, newBooking(8, bookingdomain.StatusPending))
	require.ErrorIs(t, err, bookingdomain.ErrSlotTaken)

	require.NoError(t, repo.CreateBooking(ctx, newBooking(9, bookingdomain.StatusCancelled)))

	var count int64
	require.NoError(t, db.Model(&bookingdomain.Booking{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestAddBookingRollsBackWhenPetLinkFails(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	service := bookingdomain.NewService(NewPostgres(db))

	require.NoError(t, db.Migrator().DropTable(&bookingdomain.BookingPet{}))

	_, err := service.AddBooking(ctx, bookingdomain.BookingInput{
		PetOwnerID: 7, ServiceID: 3, Slot: civil.MustTimeOfDay(10, 0, 0), ServeDate: serveDate, PetIDs: []int64{1},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&bookingdomain.Booking{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateBookingStatusIsFinalOnceClosed(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))
	service := bookingdomain.NewService(repo)

	booking := addBooking(t, service)

	updated, err := service.UpdateBookingStatus(ctx, booking.ID, " Completed ")
	require.NoError(t, err)
	require.Equal(t, bookingdomain.StatusCompleted, updated.Status)

	_, err = service.UpdateBookingStatus(ctx, booking.ID, "pending")
	require.ErrorIs(t, err, bookingdomain.ErrBookingClosed)

	_, err = service.UpdateBookingStatus(ctx, 404, "confirmed")
	require.ErrorIs(t, err, bookingdomain.ErrBookingNotFound)
}

func TestServiceUpdatesOrderedByNumber(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))
	service := bookingdomain.NewService(repo)

	first := addBooking(t, service)
	second, err := service.AddBooking(ctx, bookingdomain.BookingInput{
		PetOwnerID: 7, ServiceID: 4, Slot: civil.MustTimeOfDay(11, 0, 0), ServeDate: serveDate,
	})
	require.NoError(t, err)

	inserts := []bookingdomain.ServiceUpdate{
		{BookID: first.ID, NoUpdate: 3, Text: "drying"},
		{BookID: second.ID, NoUpdate: 1, Text: "other"},
		{BookID: first.ID, NoUpdate: 1, Text: "arrived"},
		{BookID: first.ID, NoUpdate: 2, Text: "bathing", Image: []byte{0x01, 0x02}},
	}
	for _, update := range inserts {
		_, err := service.AddServiceUpdate(ctx, update)
		require.NoError(t, err)
	}

	updates, err := repo.ListServiceUpdatesByBookID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, updates, 3)
	for i, update := range updates {
		require.Equal(t, i+1, update.NoUpdate)
	}
	require.Equal(t, []byte{0x01, 0x02}, updates[1].Image)

	next, err := service.AddServiceUpdate(ctx, bookingdomain.ServiceUpdate{BookID: first.ID, Text: "done"})
	require.NoError(t, err)
	require.Equal(t, 4, next.NoUpdate)

	_, err = service.AddServiceUpdate(ctx, bookingdomain.ServiceUpdate{BookID: first.ID, NoUpdate: 2, Text: "dup"})
	require.ErrorIs(t, err, sqlerr.ErrConstraint)

	fresh, err := service.AddServiceUpdate(ctx, bookingdomain.ServiceUpdate{BookID: 999, Text: "first"})
	require.NoError(t, err)
	require.Equal(t, 1, fresh.NoUpdate)
}

func TestReportsAndReviews(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))
	service := bookingdomain.NewService(repo)

	booking := addBooking(t, service)

	_, err := repo.GetServiceReport(ctx, booking.ID)
	require.ErrorIs(t, err, bookingdomain.ErrServiceReportNotFound)
	_, err = repo.GetServiceReview(ctx, booking.ID)
	require.ErrorIs(t, err, bookingdomain.ErrServiceReviewNotFound)

	_, err = service.AddServiceReport(ctx, booking.ID, "all good", []byte{0xca, 0xfe})
	require.NoError(t, err)
	report, err := repo.GetServiceReport(ctx, booking.ID)
	require.NoError(t, err)
	require.Equal(t, "all good", report.Text)
	require.Equal(t, []byte{0xca, 0xfe}, report.Image)

	_, err = service.AddServiceReview(ctx, booking.ID, 6, "too good")
	require.ErrorIs(t, err, bookingdomain.ErrInvalidRating)

	_, err = service.AddServiceReview(ctx, booking.ID, 5, "great")
	require.NoError(t, err)
	review, err := repo.GetServiceReview(ctx, booking.ID)
	require.NoError(t, err)
	require.Equal(t, 5, review.Rating)

	_, err = service.AddServiceReview(ctx, booking.ID, 4, "again")
	require.ErrorIs(t, err, sqlerr.ErrConstraint)
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))
	service := bookingdomain.NewService(repo)

	booking := addBooking(t, service)
	require.NoError(t, service.DeleteBooking(ctx, booking.ID))
	require.ErrorIs(t, service.DeleteBooking(ctx, booking.ID), bookingdomain.ErrBookingNotFound)

	empty, err := repo.ListBookingPets(ctx, booking.ID)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestModelsMatchMigrations(t *testing.T) {
	repotest.RequireMigrationCovers(t,
		&bookingdomain.Booking{},
		&bookingdomain.BookingPet{},
		&bookingdomain.ServiceReport{},
		&bookingdomain.ServiceReview{},
		&bookingdomain.ServiceUpdate{},
	)
}
