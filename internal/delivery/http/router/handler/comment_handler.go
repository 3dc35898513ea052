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

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateComment handles posting a comment on a project.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var input *usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.CreateComment(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment created successfully")
}

// ListProjectComments handles listing a project's comments, honoring the
// project's visibility. Runs behind optional authentication.
func (h *CommentHandler) ListProjectComments(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid project ID")
	}

	var viewerID *uuid.UUID
	if userID, ok := c.Get("userID").(uuid.UUID); ok {
		viewerID = &userID
	}

	comments, err := h.uc.ListProjectComments(c.Request().Context(), projectID, viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "Comments retrieved successfully")
}
