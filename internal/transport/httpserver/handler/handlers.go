package handler

import (
	"context"

	"github.com/go-playground/validator/v10"

	bookingdomain "petcare-go/internal/domain/booking"
	catalogdomain "petcare-go/internal/domain/catalog"
	notificationdomain "petcare-go/internal/domain/notification"
	petdomain "petcare-go/internal/domain/pet"
	scheduledomain "petcare-go/internal/domain/schedule"
	ticketdomain "petcare-go/internal/domain/ticket"
	userdomain "petcare-go/internal/domain/user"
	"petcare-go/pkg/logger"
)

// Pinger reports whether the database answers.
type Pinger func(ctx context.Context) error

type Services struct {
	Users         *userdomain.Service
	Tickets       *ticketdomain.Service
	Pets          *petdomain.Service
	Catalog       *catalogdomain.Service
	Bookings      *bookingdomain.Service
	Notifications *notificationdomain.Service
	Schedules     *scheduledomain.Service
}

type Handlers struct {
	Services

	ping     Pinger
	validate *validator.Validate
	log      logger.Logger
}

func New(services Services, ping Pinger, log logger.Logger) *Handlers {
	return &Handlers{
		Services: services,
		ping:     ping,
		validate: newValidator(),
		log:      log,
	}
}
