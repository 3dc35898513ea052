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

// ProjectHandler holds dependencies for project-related handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProject handles posting a new project idea.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var input *usecase.CreateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid project input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.CreateProject(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created successfully")
}

// ListPublicProjects handles the public marketplace listing.
func (h *ProjectHandler) ListPublicProjects(c echo.Context) error {
	projects, err := h.uc.ListPublicProjects(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// GetProject handles retrieving a single project, honoring its visibility.
// Runs behind optional authentication so owners can read their private rows.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid project ID")
	}

	var viewerID *uuid.UUID
	if userID, ok := c.Get("userID").(uuid.UUID); ok {
		viewerID = &userID
	}

	project, err := h.uc.GetProject(c.Request().Context(), projectID, viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "Project retrieved successfully")
}

// ListUserProjects handles listing a user's projects. Non-owners only see
// public rows.
func (h *ProjectHandler) ListUserProjects(c echo.Context) error {
	callerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	ownerID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid user ID")
	}

	projects, err := h.uc.ListUserProjects(c.Request().Context(), ownerID, callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}
