package ticket

import (
	"context"
	"errors"
	"time"

	ticketdomain "petcare-go/internal/domain/ticket"
	"petcare-go/internal/sqlerr"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateTicket(ctx context.Context, ticket *ticketdomain.Ticket) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(ticket).Error)
}

func (r *PostgresRepository) GetTicketByID(ctx context.Context, ticketID int64) (*ticketdomain.Ticket, error) {
	var ticket ticketdomain.Ticket
	if err := r.db.WithContext(ctx).Where("ticketid = ?", ticketID).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticketdomain.ErrTicketNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &ticket, nil
}

func (r *PostgresRepository) ListTickets(ctx context.Context) ([]ticketdomain.Ticket, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *PostgresRepository) ListTicketsByUserID(ctx context.Context, userID int64) ([]ticketdomain.Ticket, error) {
	return r.list(r.db.WithContext(ctx).Where("userid = ?", userID))
}

func (r *PostgresRepository) ListTicketsByManagerID(ctx context.Context, managerID int64) ([]ticketdomain.Ticket, error) {
	return r.list(r.db.WithContext(ctx).Where("managerid = ?", managerID))
}

func (r *PostgresRepository) list(query *gorm.DB) ([]ticketdomain.Ticket, error) {
	tickets := make([]ticketdomain.Ticket, 0)
	if err := query.Order("ticketid").Find(&tickets).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return tickets, nil
}

func (r *PostgresRepository) AssignTicket(ctx context.Context, ticketID int64, expected ticketdomain.Status, managerID int64, assignedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&ticketdomain.Ticket{}).
		Where("ticketid = ? AND status = ?", ticketID, expected).
		Updates(map[string]interface{}{
			"managerid":  managerID,
			"assigntime": assignedAt,
			"status":     ticketdomain.StatusSolving,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) UpdateTicketResponse(ctx context.Context, ticketID int64, expected ticketdomain.Status, response []byte, status ticketdomain.Status) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&ticketdomain.Ticket{}).
		Where("ticketid = ? AND status = ?", ticketID, expected).
		Updates(map[string]interface{}{
			"respone": response,
			"status":  status,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) UpdateUnassignedTicket(ctx context.Context, ticket *ticketdomain.Ticket) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&ticketdomain.Ticket{}).
		Where("ticketid = ? AND managerid IS NULL", ticket.ID).
		Updates(map[string]interface{}{
			"subject":     ticket.Subject,
			"description": ticket.Description,
			"attachment":  ticket.Attachment,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteTicket(ctx context.Context, ticketID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&ticketdomain.Ticket{}, "ticketid = ?", ticketID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}
