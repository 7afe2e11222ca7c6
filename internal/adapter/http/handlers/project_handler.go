package handlers

import (
	"errors"
	request "projectdesk/internal/adapter/http/dto/request"
	response "projectdesk/internal/adapter/http/dto/response"
	"projectdesk/internal/adapter/http/middleware"
	"projectdesk/internal/usecase"
	"projectdesk/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), middleware.CurrentUser(c), payload.ToInput())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.FromProject(project)))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromProjects(projects)))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.Get(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromProject(project)))
}

// PatchProject applies a partial update. A status change also records a
// workflow transition in the same write.
func (h *ProjectHandler) PatchProject(c *gin.Context) {
	var payload request.ProjectPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Patch(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromProject(project)))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProjectName),
		errors.Is(err, usecase.ErrInvalidProjectStatus),
		errors.Is(err, usecase.ErrEmptyProjectPatch):
		return pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
