package handler

import (
	"net/http"
	"time"

	"github.com/samber/lo"

	scheduledomain "petcare-go/internal/domain/schedule"
)

type scheduleRequest struct {
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
	Title         string    `json:"title" validate:"required,max=255"`
	Detail        string    `json:"detail"`
	UserID        int64     `json:"user_id" validate:"required,gt=0"`
}

type scheduleResponse struct {
	ID            int64     `json:"id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Title         string    `json:"title"`
	Detail        string    `json:"detail"`
	UserID        int64     `json:"user_id"`
}

func (h *Handlers) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !h.bind(w, r, &req) {
		return
	}

	created, err := h.Schedules.AddSchedule(r.Context(), req.input())
	if err != nil {
		h.fail(w, r, "schedules.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toScheduleResponse(*created))
}

func (h *Handlers) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.Schedules.GetScheduleByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "schedules.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(*found))
}

func (h *Handlers) ListUserSchedules(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	schedules, err := h.Schedules.ListSchedulesByUserID(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "schedules.list_by_user", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(schedules, func(s scheduledomain.Schedule, _ int) scheduleResponse {
		return toScheduleResponse(s)
	})))
}

func (h *Handlers) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req scheduleRequest
	if !h.bind(w, r, &req) {
		return
	}

	updated, err := h.Schedules.UpdateSchedule(r.Context(), id, req.input())
	if err != nil {
		h.fail(w, r, "schedules.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(*updated))
}

func (h *Handlers) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Schedules.DeleteSchedule(r.Context(), id); err != nil {
		h.fail(w, r, "schedules.delete", err)
		return
	}
	writeNoContent(w)
}

func (req scheduleRequest) input() scheduledomain.ScheduleInput {
	return scheduledomain.ScheduleInput{
		ScheduledTime: req.ScheduledTime,
		Title:         req.Title,
		Detail:        req.Detail,
		UserID:        req.UserID,
	}
}

func toScheduleResponse(s scheduledomain.Schedule) scheduleResponse {
	return scheduleResponse{
		ID:            s.ID,
		ScheduledTime: s.ScheduledTime,
		Title:         s.Title,
		Detail:        s.Detail,
		UserID:        s.UserID,
	}
}
