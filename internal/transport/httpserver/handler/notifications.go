package handler

import (
	"net/http"

	"github.com/samber/lo"

	notificationdomain "petcare-go/internal/domain/notification"
)

type createNotificationRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Text   string `json:"text" validate:"required"`
}

type updateNotificationRequest struct {
	Text string `json:"text" validate:"required"`
}

type notificationResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *Handlers) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if !h.bind(w, r, &req) {
		return
	}

	created, err := h.Notifications.AddNotification(r.Context(), req.UserID, req.Text)
	if err != nil {
		h.fail(w, r, "notifications.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toNotificationResponse(*created))
}

func (h *Handlers) GetNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	notification, err := h.Notifications.GetNotificationByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, "notifications.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(*notification))
}

func (h *Handlers) ListUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	notifications, err := h.Notifications.ListNotificationsByUserID(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "notifications.list_by_user", err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(lo.Map(notifications, func(n notificationdomain.Notification, _ int) notificationResponse {
		return toNotificationResponse(n)
	})))
}

func (h *Handlers) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateNotificationRequest
	if !h.bind(w, r, &req) {
		return
	}

	if err := h.Notifications.UpdateNotification(r.Context(), id, req.Text); err != nil {
		h.fail(w, r, "notifications.update", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Notifications.DeleteNotification(r.Context(), id); err != nil {
		h.fail(w, r, "notifications.delete", err)
		return
	}
	writeNoContent(w)
}

func (h *Handlers) DeleteUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.Notifications.DeleteNotificationsByUserID(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "notifications.delete_by_user", err)
		return
	}
	writeJSON(w, http.StatusOK, deletedResponse{Deleted: deleted})
}

func toNotificationResponse(n notificationdomain.Notification) notificationResponse {
	return notificationResponse{ID: n.ID, UserID: n.UserID, Text: n.Text}
}
