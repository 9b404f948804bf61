package handler

import (
	"net/http"
	"time"

	"github.com/samber/lo"

	bookingdomain "petcare-go/internal/domain/booking"
	"petcare-go/internal/domain/civil"
)

type createBookingRequest struct {
	PetOwnerID    int64            `json:"pet_owner_id" validate:"required,gt=0"`
	ServiceID     int64            `json:"service_id" validate:"required,gt=0"`
	Slot          *civil.TimeOfDay `json:"slot" validate:"required"`
	ServeDate     string           `json:"serve_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string           `json:"payment_method" validate:"max=64"`
	Status        string           `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PetIDs        []int64          `json:"pet_ids" validate:"dive,gt=0"`
}

type bookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type bookingPetRequest struct {
	PetID int64 `json:"pet_id" validate:"required,gt=0"`
}

type serviceReportRequest struct {
	Text  string `json:"text"`
	Image []byte `json:"image"`
}

type serviceReviewRequest struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment"`
}

type serviceUpdateRequest struct {
	NoUpdate int    `json:"no_update" validate:"min=0"`
	Text     string `json:"text"`
	Image    []byte `json:"image"`
}

type bookingResponse struct {
	ID            int64           `json:"id"`
	PetOwnerID    int64           `json:"pet_owner_id"`
	ServiceID     int64           `json:"service_id"`
	Slot          civil.TimeOfDay `json:"slot"`
	BookTimestamp time.Time       `json:"book_timestamp"`
	ServeDate     string          `json:"serve_date"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
}

type bookingPetResponse struct {
	BookID int64 `json:"book_id"`
	PetID  int64 `json:"pet_id"`
}

type serviceReportResponse struct {
	BookID int64  `json:"book_id"`
	Text   string `json:"text"`
	Image  []byte `json:"image"`
}

type serviceReviewResponse struct {
	BookID  int64  `json:"book_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type serviceUpdateResponse struct {
	BookID   int64  `json:"book_id"`
	NoUpdate int    `json:"no_update"`
	Text     string `json:"text"`
	Image    []byte `json:"image"`
}

func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if !h.bind(w, r, &req) {
		return
	}
	serveDate, err := parseDateRequired(req.ServeDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid serve_date")
		return
	}

	created, err := h.Bookings.AddBooking(r.Context(), bookingdomain.BookingInput{
		PetOwnerID:    req.PetOwnerID,
		ServiceID:     req.ServiceID,
		Slot:          *req.Slot,
		ServeDate:     serveDate,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		PetIDs:        req.PetIDs,
	})
	if err != nil {
		h.fail(w, r, "bookings.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingResponse(*created))
}

func (h *Handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Bookings.GetBookingByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "bookings.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(*found))
}

func (h *Handlers) ListOwnerBookings(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	bookings, err := h.Bookings.ListBookingsByPetOwner(r.Context(), ownerID)
	if err != nil {
		h.fail(w, r, "bookings.list_by_owner", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(bookings, func(b bookingdomain.Booking, _ int) bookingResponse {
		return toBookingResponse(b)
	})))
}

func (h *Handlers) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req bookingStatusRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Bookings.UpdateBookingStatus(r.Context(), id, req.Status)
	if err != nil {
		h.fail(w, r, "bookings.update_status", err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(*updated))
}

func (h *Handlers) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Bookings.DeleteBooking(r.Context(), id); err != nil {
		h.fail(w, r, "bookings.delete", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) AddBookingPet(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req bookingPetRequest
	if !h.bind(w, r, &req) {
		return
	}

	linked, err := h.Bookings.AddBookingPet(r.Context(), bookID, req.PetID)
	if err != nil {
		h.fail(w, r, "bookings.add_pet", err)
		return
	}
	writeJSON(w, http.StatusCreated, bookingPetResponse{BookID: linked.BookID, PetID: linked.PetID})
}

func (h *Handlers) ListBookingPets(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	pets, err := h.Bookings.ListBookingPets(r.Context(), bookID)
	if err != nil {
		h.fail(w, r, "bookings.list_pets", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(pets, func(p bookingdomain.BookingPet, _ int) bookingPetResponse {
		return bookingPetResponse{BookID: p.BookID, PetID: p.PetID}
	})))
}

func (h *Handlers) CreateServiceReport(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req serviceReportRequest
	if !h.bind(w, r, &req) {
		return
	}

	report, err := h.Bookings.AddServiceReport(r.Context(), bookID, req.Text, req.Image)
	if err != nil {
		h.fail(w, r, "bookings.add_report", err)
		return
	}
	writeJSON(w, http.StatusCreated, serviceReportResponse{BookID: report.BookID, Text: report.Text, Image: report.Image})
}

func (h *Handlers) GetServiceReport(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	report, err := h.Bookings.GetServiceReport(r.Context(), bookID)
	if err != nil {
		h.fail(w, r, "bookings.get_report", err)
		return
	}
	writeJSON(w, http.StatusOK, serviceReportResponse{BookID: report.BookID, Text: report.Text, Image: report.Image})
}

func (h *Handlers) CreateServiceReview(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req serviceReviewRequest
	if !h.bind(w, r, &req) {
		return
	}

	review, err := h.Bookings.AddServiceReview(r.Context(), bookID, req.Rating, req.Comment)
	if err != nil {
		h.fail(w, r, "bookings.add_review", err)
		return
	}
	writeJSON(w, http.StatusCreated, serviceReviewResponse{BookID: review.BookID, Rating: review.Rating, Comment: review.Comment})
}

func (h *Handlers) GetServiceReview(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	review, err := h.Bookings.GetServiceReview(r.Context(), bookID)
	if err != nil {
		h.fail(w, r, "bookings.get_review", err)
		return
	}
	writeJSON(w, http.StatusOK, serviceReviewResponse{BookID: review.BookID, Rating: review.Rating, Comment: review.Comment})
}

func (h *Handlers) CreateServiceUpdate(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req serviceUpdateRequest
	if !h.bind(w, r, &req) {
		return
	}

	update, err := h.Bookings.AddServiceUpdate(r.Context(), bookingdomain.ServiceUpdate{
		BookID:   bookID,
		NoUpdate: req.NoUpdate,
		Text:     req.Text,
		Image:    req.Image,
	})
	if err != nil {
		h.fail(w, r, "bookings.add_update", err)
		return
	}
	writeJSON(w, http.StatusCreated, toServiceUpdateResponse(*update))
}

func (h *Handlers) ListServiceUpdates(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	updates, err := h.Bookings.ListServiceUpdatesByBookID(r.Context(), bookID)
	if err != nil {
		h.fail(w, r, "bookings.list_updates", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(updates, func(u bookingdomain.ServiceUpdate, _ int) serviceUpdateResponse {
		return toServiceUpdateResponse(u)
	})))
}

func toBookingResponse(b bookingdomain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		PetOwnerID:    b.PetOwnerID,
		ServiceID:     b.ServiceID,
		Slot:          b.Slot,
		BookTimestamp: b.BookTimestamp,
		ServeDate:     formatDate(b.ServeDate),
		PaymentMethod: b.PaymentMethod,
		Status:        b.Status,
	}
}

func toServiceUpdateResponse(u bookingdomain.ServiceUpdate) serviceUpdateResponse {
	return serviceUpdateResponse{
		BookID:   u.BookID,
		NoUpdate: u.NoUpdate,
		Text:     u.Text,
		Image:    u.Image,
	}
}
