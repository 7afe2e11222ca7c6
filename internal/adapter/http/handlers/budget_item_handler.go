package handlers

import (
	"context"
	"errors"
	request "projectdesk/internal/adapter/http/dto/request"
	response "projectdesk/internal/adapter/http/dto/response"
	"projectdesk/internal/adapter/http/middleware"
	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase"
	"projectdesk/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetItemPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_ITEM_INPUT", "Invalid budget item payload", http.StatusBadRequest)
)

// BudgetItemHandler handles HTTP requests for the budget ledger.
type BudgetItemHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetItemHandler(uc usecase.IBudgetUseCase) *BudgetItemHandler {
	return &BudgetItemHandler{usecase: uc}
}

// CreateBudgetItem creates a budget item under the project in the path.
//
// Derived fields (variance, forecast_remaining) are computed server side; the
// payload never carries them.
func (h *BudgetItemHandler) CreateBudgetItem(c *gin.Context) {
	var payload request.BudgetItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetItemPayload.HTTPStatus, errInvalidBudgetItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.FromBudgetItem(item)))
}

// ListBudgetItems returns the project's budget items, newest first.
func (h *BudgetItemHandler) ListBudgetItems(c *gin.Context) {
	items, err := h.usecase.ListByProject(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromBudgetItems(items)))
}

func (h *BudgetItemHandler) GetBudgetItem(c *gin.Context) {
	item, err := h.usecase.Get(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromBudgetItem(item)))
}

// PatchBudgetItem applies a partial update and recomputes derived fields when
// any cost input changed.
func (h *BudgetItemHandler) PatchBudgetItem(c *gin.Context) {
	var payload request.BudgetItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetItemPayload.HTTPStatus, errInvalidBudgetItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Patch(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromBudgetItem(item)))
}

func (h *BudgetItemHandler) ApproveBudgetItem(c *gin.Context) {
	h.setApprovalStatus(c, h.usecase.Approve)
}

func (h *BudgetItemHandler) RejectBudgetItem(c *gin.Context) {
	h.setApprovalStatus(c, h.usecase.Reject)
}

func (h *BudgetItemHandler) setApprovalStatus(
	c *gin.Context,
	transition func(ctx context.Context, actor *entities.User, id string) (entities.BudgetItem, error),
) {
	item, err := transition(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromBudgetItem(item)))
}

func (h *BudgetItemHandler) DeleteBudgetItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBudgetItemNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_ITEM_NOT_FOUND", "budget item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBudgetItem), errors.Is(err, usecase.ErrEmptyBudgetItemPatch):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_ITEM_INPUT", "Invalid budget item payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
