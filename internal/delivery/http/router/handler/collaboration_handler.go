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

// CollaborationHandler holds dependencies for collaboration-request handlers.
type CollaborationHandler struct {
	uc     usecase.CollaborationUsecase
	logger *slog.Logger
}

// NewCollaborationHandler is the constructor for CollaborationHandler, injected by Fx.
func NewCollaborationHandler(uc usecase.CollaborationUsecase, logger *slog.Logger) *CollaborationHandler {
	return &CollaborationHandler{
		uc:     uc,
		logger: logger,
	}
}

// RequestCollaboration handles creating a pending collaboration request.
func (h *CollaborationHandler) RequestCollaboration(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var input *usecase.CollaborationRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid collaboration request input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.RequestCollaboration(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Collaboration request sent successfully")
}

// RespondToRequest handles the project owner's accept/decline decision.
func (h *CollaborationHandler) RespondToRequest(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var input *usecase.CollaborationResponseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid collaboration response input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.RespondToRequest(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Collaboration request updated successfully")
}

// ListUserCollaborations handles listing the caller's sent and received requests.
func (h *CollaborationHandler) ListUserCollaborations(c echo.Context) error {
	callerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid user ID")
	}

	collaborations, err := h.uc.ListUserCollaborations(c.Request().Context(), callerID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, collaborations, "Collaboration requests retrieved successfully")
}
