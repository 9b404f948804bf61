package ticket

import (
	"context"
	"fmt"
	"strings"
	"time"
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

func (s *Service) CreateTicket(ctx context.Context, input CreateTicketInput) (*Ticket, error) {
	if input.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	ticket := Ticket{
		Subject:     strings.TrimSpace(input.Subject),
		Description: input.Description,
		Attachment:  input.Attachment,
		Status:      StatusPending,
		UserID:      input.UserID,
		CreateTime:  s.now(),
	}
	if err := s.repo.CreateTicket(ctx, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *Service) GetTicketByID(ctx context.Context, ticketID int64) (*Ticket, error) {
	return s.repo.GetTicketByID(ctx, ticketID)
}

func (s *Service) ListTickets(ctx context.Context) ([]Ticket, error) {
	return s.repo.ListTickets(ctx)
}

func (s *Service) ListTicketsByUserID(ctx context.Context, userID int64) ([]Ticket, error) {
	return s.repo.ListTicketsByUserID(ctx, userID)
}

func (s *Service) ListTicketsByManagerID(ctx context.Context, managerID int64) ([]Ticket, error) {
	return s.repo.ListTicketsByManagerID(ctx, managerID)
}

// AssignTicket hands the ticket to a manager and moves it to solving.
// Reassigning a ticket that is already being solved replaces the manager.
func (s *Service) AssignTicket(ctx context.Context, ticketID, managerID int64) (*Ticket, error) {
	current, err := s.repo.GetTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(StatusSolving) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, StatusSolving)
	}

	assignedAt := s.now()
	updated, err := s.repo.AssignTicket(ctx, ticketID, current.Status, managerID, assignedAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrTicketConflict
	}

	current.ManagerID = &managerID
	current.AssignTime = &assignedAt
	current.Status = StatusSolving
	return current, nil
}

func (s *Service) UpdateTicketResponse(ctx context.Context, input RespondInput) (*Ticket, error) {
	status, err := ParseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetTicketByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	updated, err := s.repo.UpdateTicketResponse(ctx, input.ID, current.Status, input.Response, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrTicketConflict
	}

	current.Response = input.Response
	current.Status = status
	return current, nil
}

// UpdateTicket edits the ticket body. Once a manager picks the ticket up it
// is locked.
func (s *Service) UpdateTicket(ctx context.Context, input UpdateTicketInput) (*Ticket, error) {
	ticket := Ticket{
		ID:          input.ID,
		Subject:     strings.TrimSpace(input.Subject),
		Description: input.Description,
		Attachment:  input.Attachment,
	}

	updated, err := s.repo.UpdateUnassignedTicket(ctx, &ticket)
	if err != nil {
		return nil, err
	}
	if !updated {
		if _, err := s.repo.GetTicketByID(ctx, input.ID); err != nil {
			return nil, err
		}
		return nil, ErrTicketLocked
	}

	return s.repo.GetTicketByID(ctx, input.ID)
}

func (s *Service) DeleteTicket(ctx context.Context, ticketID int64) error {
	deleted, err := s.repo.DeleteTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTicketNotFound
	}
	return nil
}
