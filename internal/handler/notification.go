package handler

import (
	"net/http"

	"github.com/dangerclosesec/tounesna/internal/middleware"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type NotificationsResponse struct {
	BaseResponse
	Notifications []*model.Notification `json:"notifications"`
}

type CountResponse struct {
	BaseResponse
	Count int `json:"count"`
}

// List returns the caller's notifications, newest first. ?unread=true
// limits the list to unread ones.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	var (
		notifications []*model.Notification
		err           error
	)
	if r.URL.Query().Get("unread") == "true" {
		notifications, err = h.notificationService.Unread(ctx, userID)
	} else {
		notifications, err = h.notificationService.ForUser(ctx, userID)
	}
	if err != nil {
		handleError(w, r, err, "Notification listing error")
		return
	}
	respondWithJSON(w, http.StatusOK, NotificationsResponse{BaseResponse{Ok: true}, notifications})
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notificationService.UnreadCount(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		handleError(w, r, err, "Unread count error")
		return
	}
	respondWithJSON(w, http.StatusOK, CountResponse{BaseResponse{Ok: true}, count})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	err := h.notificationService.MarkAsRead(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err, "Mark read error")
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	count, err := h.notificationService.MarkAllAsRead(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		handleError(w, r, err, "Mark all read error")
		return
	}
	respondWithJSON(w, http.StatusOK, CountResponse{BaseResponse{Ok: true}, count})
}
