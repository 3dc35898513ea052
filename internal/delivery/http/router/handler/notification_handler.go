package handler

import (
	"log/slog"
	"net/http"

	"ideaforge/internal/delivery/http/response"
	"ideaforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification-related handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateNotification handles direct notification creation. Creating one for
// another user requires the admin capability.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var input *usecase.CreateNotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid notification input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	notification, err := h.uc.CreateNotification(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, notification, "Notification created successfully")
}

// ListUserNotifications handles listing the caller's notifications.
func (h *NotificationHandler) ListUserNotifications(c echo.Context) error {
	callerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid user ID")
	}

	notifications, err := h.uc.ListUserNotifications(c.Request().Context(), callerID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead handles flipping the caller's notifications to read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	callerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var input *usecase.MarkReadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid mark-read input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	notifications, err := h.uc.MarkRead(c.Request().Context(), callerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications marked as read")
}
