package handler

import (
	"net/http"
	"time"

	"github.com/samber/lo"

	ticketdomain "petcare-go/internal/domain/ticket"
)

type createTicketRequest struct {
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
	Subject     string `json:"subject" validate:"required,max=255"`
	Description string `json:"description"`
	Attachment  []byte `json:"attachment"`
}

type updateTicketRequest struct {
	Subject     string `json:"subject" validate:"required,max=255"`
	Description string `json:"description"`
	Attachment  []byte `json:"attachment"`
}

type assignTicketRequest struct {
	ManagerID int64 `json:"manager_id" validate:"required,gt=0"`
}

type respondTicketRequest struct {
	Response []byte `json:"response"`
	Status   string `json:"status" validate:"required"`
}

type ticketResponse struct {
	ID          int64      `json:"id"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Attachment  []byte     `json:"attachment"`
	Response    []byte     `json:"response"`
	Status      string     `json:"status"`
	UserID      int64      `json:"user_id"`
	CreateTime  time.Time  `json:"create_time"`
	ManagerID   *int64     `json:"manager_id"`
	AssignTime  *time.Time `json:"assign_time"`
}

func (h *Handlers) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req createTicketRequest
	if !h.bind(w, r, &req) {
		return
	}

	created, err := h.Tickets.CreateTicket(r.Context(), ticketdomain.CreateTicketInput{
		UserID:      req.UserID,
		Subject:     req.Subject,
		Description: req.Description,
		Attachment:  req.Attachment,
	})
	if err != nil {
		h.fail(w, r, "tickets.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toTicketResponse(*created))
}

func (h *Handlers) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Tickets.GetTicketByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "tickets.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketResponse(*found))
}

func (h *Handlers) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Tickets.ListTickets(r.Context())
	if err != nil {
		h.fail(w, r, "tickets.list", err)
		return
	}
	writeTickets(w, tickets)
}

func (h *Handlers) ListUserTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tickets, err := h.Tickets.ListTicketsByUserID(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "tickets.list_by_user", err)
		return
	}
	writeTickets(w, tickets)
}

func (h *Handlers) ListManagerTickets(w http.ResponseWriter, r *http.Request) {
	managerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tickets, err := h.Tickets.ListTicketsByManagerID(r.Context(), managerID)
	if err != nil {
		h.fail(w, r, "tickets.list_by_manager", err)
		return
	}
	writeTickets(w, tickets)
}

func (h *Handlers) AssignTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req assignTicketRequest
	if !h.bind(w, r, &req) {
		return
	}

	assigned, err := h.Tickets.AssignTicket(r.Context(), id, req.ManagerID)
	if err != nil {
		h.fail(w, r, "tickets.assign", err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketResponse(*assigned))
}

func (h *Handlers) RespondTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req respondTicketRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Tickets.UpdateTicketResponse(r.Context(), ticketdomain.RespondInput{
		ID:       id,
		Response: req.Response,
		Status:   req.Status,
	})
	if err != nil {
		h.fail(w, r, "tickets.respond", err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketResponse(*updated))
}

func (h *Handlers) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateTicketRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Tickets.UpdateTicket(r.Context(), ticketdomain.UpdateTicketInput{
		ID:          id,
		Subject:     req.Subject,
		Description: req.Description,
		Attachment:  req.Attachment,
	})
	if err != nil {
		h.fail(w, r, "tickets.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketResponse(*updated))
}

func (h *Handlers) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Tickets.DeleteTicket(r.Context(), id); err != nil {
		h.fail(w, r, "tickets.delete", err)
		return
	}
	writeNoContent(w)
}

func writeTickets(w http.ResponseWriter, tickets []ticketdomain.Ticket) {
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(tickets, func(t ticketdomain.Ticket, _ int) ticketResponse {
		return toTicketResponse(t)
	})))
}

func toTicketResponse(t ticketdomain.Ticket) ticketResponse {
	return ticketResponse{
		ID:          t.ID,
		Subject:     t.Subject,
		Description: t.Description,
		Attachment:  t.Attachment,
		Response:    t.Response,
		Status:      string(t.Status),
		UserID:      t.UserID,
		CreateTime:  t.CreateTime,
		ManagerID:   t.ManagerID,
		AssignTime:  t.AssignTime,
	}
}
