package notification

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clothesshop/client-api/internal/auth"
	"github.com/clothesshop/client-api/internal/dispatch"
	"github.com/clothesshop/client-api/internal/httputil"
	"github.com/clothesshop/client-api/internal/logging"
)

// Handler exposes the notification endpoints. It only talks to the
// dispatcher; handler objects behind it own the data access.
type Handler struct {
	dispatcher *dispatch.Dispatcher
}

func NewHandler(dispatcher *dispatch.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

// List handles listing the caller's notifications
// @Summary      Get all user's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Notification
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /client/notifications [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}

	notifications, err := dispatch.Execute[GetUserNotificationsQuery, []Notification](
		r.Context(), h.dispatcher, GetUserNotificationsQuery{UserID: identity.ID},
	)
	if err != nil {
		logger.Error("failed to list notifications", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list notifications", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, notifications, http.StatusOK)
}

// MarkAsRead handles marking a single notification as read
// @Summary      Marking notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      200 {object} Notification
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "Not found"
// @Router       /client/notifications/read/{id} [patch]
func (h *Handler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}

	notificationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "notification not found", httputil.CodeNotFound, http.StatusNotFound)
		return
	}

	updated, err := dispatch.Execute[MarkNotificationAsReadCommand, *Notification](
		r.Context(), h.dispatcher, MarkNotificationAsReadCommand{
			NotificationID: notificationID,
			UserID:         identity.ID,
		},
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "notification not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to mark notification as read", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to mark notification as read", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, updated, http.StatusOK)
}
