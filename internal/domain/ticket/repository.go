package ticket

import (
	"context"
	"time"
)

type Repository interface {
	CreateTicket(ctx context.Context, ticket *Ticket) error
	GetTicketByID(ctx context.Context, ticketID int64) (*Ticket, error)
	ListTickets(ctx context.Context) ([]Ticket, error)
	ListTicketsByUserID(ctx context.Context, userID int64) ([]Ticket, error)
	ListTicketsByManagerID(ctx context.Context, managerID int64) ([]Ticket, error)

	// The status-changing updates only apply while the row still has the
	// expected status, and report false otherwise.
	AssignTicket(ctx context.Context, ticketID int64, expected Status, managerID int64, assignedAt time.Time) (bool, error)
	UpdateTicketResponse(ctx context.Context, ticketID int64, expected Status, response []byte, status Status) (bool, error)

	// UpdateUnassignedTicket rewrites subject, description and attachment of
	// a ticket with no manager.
	UpdateUnassignedTicket(ctx context.Context, ticket *Ticket) (bool, error)
	DeleteTicket(ctx context.Context, ticketID int64) (bool, error)
}
