package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	catalogdomain "petcare-go/internal/domain/catalog"
	"petcare-go/internal/domain/civil"
)

type serviceTypeRequest struct {
	Type string `json:"type" validate:"required,max=255"`
}

type serviceRequest struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Price       int              `json:"price" validate:"min=0"`
	Description string           `json:"description"`
	Duration    *civil.TimeOfDay `json:"duration"`
	License     []byte           `json:"license"`
	TypeID      int64            `json:"type_id" validate:"required,gt=0"`
	ProviderID  int64            `json:"provider_id" validate:"required,gt=0"`
}

type timeSlotRequest struct {
	Slot *civil.TimeOfDay `json:"slot" validate:"required"`
}

type serviceTypeResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type serviceResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Price       int              `json:"price"`
	Description string           `json:"description"`
	Duration    *civil.TimeOfDay `json:"duration"`
	License     []byte           `json:"license"`
	TypeID      int64            `json:"type_id"`
	ProviderID  int64            `json:"provider_id"`
}

type timeSlotResponse struct {
	ServiceID int64           `json:"service_id"`
	Slot      civil.TimeOfDay `json:"slot"`
}

func (h *Handlers) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	var req serviceTypeRequest
	if !h.bind(w, r, &req) {
		return
	}

	created, err := h.Catalog.AddServiceType(r.Context(), req.Type)
	if err != nil {
		h.fail(w, r, "service_types.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, serviceTypeResponse{ID: created.ID, Type: created.Type})
}

func (h *Handlers) GetServiceType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Catalog.GetServiceTypeByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "service_types.get", err)
		return
	}
	writeJSON(w, http.StatusOK, serviceTypeResponse{ID: found.ID, Type: found.Type})
}

func (h *Handlers) ListServiceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Catalog.ListServiceTypes(r.Context())
	if err != nil {
		h.fail(w, r, "service_types.list", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(types, func(t catalogdomain.ServiceType, _ int) serviceTypeResponse {
		return serviceTypeResponse{ID: t.ID, Type: t.Type}
	})))
}

func (h *Handlers) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req serviceTypeRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Catalog.UpdateServiceType(r.Context(), id, req.Type)
	if err != nil {
		h.fail(w, r, "service_types.update", err)
		return
	}
	writeJSON(w, http.StatusOK, serviceTypeResponse{ID: updated.ID, Type: updated.Type})
}

func (h *Handlers) DeleteServiceType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteServiceType(r.Context(), id); err != nil {
		h.fail(w, r, "service_types.delete", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) CreateService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if !h.bind(w, r, &req) {
		return
	}

	created, err := h.Catalog.AddService(r.Context(), req.input())
	if err != nil {
		h.fail(w, r, "services.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toServiceResponse(*created))
}

func (h *Handlers) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Catalog.GetServiceByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "services.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toServiceResponse(*found))
}

func (h *Handlers) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Catalog.ListServices(r.Context())
	if err != nil {
		h.fail(w, r, "services.list", err)
		return
	}
	writeServices(w, services)
}

func (h *Handlers) ListProviderServices(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	services, err := h.Catalog.ListServicesByProviderID(r.Context(), providerID)
	if err != nil {
		h.fail(w, r, "services.list_by_provider", err)
		return
	}
	writeServices(w, services)
}

func (h *Handlers) ListTypeServices(w http.ResponseWriter, r *http.Request) {
	typeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	services, err := h.Catalog.ListServicesByTypeID(r.Context(), typeID)
	if err != nil {
		h.fail(w, r, "services.list_by_type", err)
		return
	}
	writeServices(w, services)
}

func (h *Handlers) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req serviceRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Catalog.UpdateService(r.Context(), id, req.input())
	if err != nil {
		h.fail(w, r, "services.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toServiceResponse(*updated))
}

func (h *Handlers) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteService(r.Context(), id); err != nil {
		h.fail(w, r, "services.delete", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) CreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req timeSlotRequest
	if !h.bind(w, r, &req) {
		return
	}

	created, err := h.Catalog.AddTimeSlot(r.Context(), serviceID, *req.Slot)
	if err != nil {
		h.fail(w, r, "time_slots.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, timeSlotResponse{ServiceID: created.ServiceID, Slot: created.Slot})
}

func (h *Handlers) ListServiceTimeSlots(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	slots, err := h.Catalog.ListTimeSlotsByServiceID(r.Context(), serviceID)
	if err != nil {
		h.fail(w, r, "time_slots.list_by_service", err)
		return
	}
	writeTimeSlots(w, slots)
}

func (h *Handlers) ListTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.Catalog.ListTimeSlots(r.Context())
	if err != nil {
		h.fail(w, r, "time_slots.list", err)
		return
	}
	writeTimeSlots(w, slots)
}

func (h *Handlers) DeleteTimeSlot(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	slot, err := civil.ParseTimeOfDay(chi.URLParam(r, "slot"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid slot")
		return
	}

	if err := h.Catalog.DeleteTimeSlot(r.Context(), serviceID, slot); err != nil {
		h.fail(w, r, "time_slots.delete", err)
		return
	}
	writeNoContent(w)
}

func (req serviceRequest) input() catalogdomain.OfferingInput {
	return catalogdomain.OfferingInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Duration:    req.Duration,
		License:     req.License,
		TypeID:      req.TypeID,
		ProviderID:  req.ProviderID,
	}
}

func writeServices(w http.ResponseWriter, services []catalogdomain.Offering) {
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(services, func(s catalogdomain.Offering, _ int) serviceResponse {
		return toServiceResponse(s)
	})))
}

func writeTimeSlots(w http.ResponseWriter, slots []catalogdomain.TimeSlot) {
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(slots, func(s catalogdomain.TimeSlot, _ int) timeSlotResponse {
		return timeSlotResponse{ServiceID: s.ServiceID, Slot: s.Slot}
	})))
}

func toServiceResponse(s catalogdomain.Offering) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Description: s.Description,
		Duration:    s.Duration,
		License:     s.License,
		TypeID:      s.TypeID,
		ProviderID:  s.ProviderID,
	}
}
