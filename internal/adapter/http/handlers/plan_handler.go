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
	errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid project plan payload", http.StatusBadRequest)
)

// PlanHandler handles HTTP requests for project plans.
type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

// CreatePlan creates the project's plan. The workflow gate must be open:
// at least one budget item of the project approved.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.Create(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.FromPlan(plan)))
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.usecase.Get(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromPlan(plan)))
}

func mapPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrGateNotSatisfied):
		return pkg.NewDomainErrorSimple("GATE_NOT_SATISFIED", usecase.ErrGateNotSatisfied.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanAlreadyExists):
		return pkg.NewDomainErrorSimple("PLAN_ALREADY_EXISTS", "project plan already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "project plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
