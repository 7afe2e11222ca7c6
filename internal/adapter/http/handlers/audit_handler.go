package handlers

import (
	"errors"
	response "projectdesk/internal/adapter/http/dto/response"
	"projectdesk/internal/adapter/http/middleware"
	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase"
	"projectdesk/pkg"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuditQuery = pkg.NewDomainErrorSimple("INVALID_AUDIT_QUERY", "Invalid audit log query", http.StatusBadRequest)
)

// AuditHandler exposes the read-only audit trail.
type AuditHandler struct {
	usecase usecase.IAuditUseCase
}

func NewAuditHandler(uc usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

// ListAuditLogs lists audit entries newest first. Supported query params:
// entity_type, entity_id, user_id, from, to (RFC 3339), limit, offset.
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	filter, err := auditFilterFromQuery(c)
	if err != nil {
		c.JSON(errInvalidAuditQuery.HTTPStatus, errInvalidAuditQuery.ToHTTPError())
		return
	}

	logs, err := h.usecase.List(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		appErr := mapAuditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromAuditLogs(logs)))
}

func auditFilterFromQuery(c *gin.Context) (entities.AuditLogFilter, error) {
	filter := entities.AuditLogFilter{
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
		UserID:     c.Query("user_id"),
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.AuditLogFilter{}, err
		}
		filter.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entities.AuditLogFilter{}, err
		}
		filter.To = to
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return entities.AuditLogFilter{}, err
		}
		filter.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return entities.AuditLogFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}

func mapAuditError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "unauthorized", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
