package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	dto "bidtrack/internal/adapter/http/dto/response"
	"bidtrack/internal/adapter/http/middleware"
	"bidtrack/internal/usecase"
	"bidtrack/pkg"
	"bidtrack/pkg/pagination"
	"bidtrack/pkg/response"
)

// NotificationHandler handles HTTP requests for the actor's notification feed.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// GetNotifications handles GET /notifications (optional ?unread=true, ?limit=).
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	unreadOnly := strings.EqualFold(c.Query("unread"), "true")
	params := pagination.Parse(c)

	notifications, err := h.usecase.ListForActor(c.Request.Context(), middleware.ActorFrom(c), unreadOnly, params.Limit)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.FromNotifications(notifications)))
}

// UpdateNotifications handles PUT /notifications: with ?id= it marks one
// notification read, without it every notification of the acting user.
func (h *NotificationHandler) UpdateNotifications(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	if id := strings.TrimSpace(c.Query("id")); id != "" {
		n, err := h.usecase.MarkRead(c.Request.Context(), actor, id)
		if err != nil {
			appErr := mapNotificationError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.Success(dto.FromNotification(n)))
		return
	}

	updated, err := h.usecase.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(dto.MarkAllReadResponse{Updated: updated}, "All notifications marked as read"))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotRecipient):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "This notification is not addressed to you", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
