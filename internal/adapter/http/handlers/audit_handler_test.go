package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"projectdesk/internal/adapter/http/handlers/mocks"
	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuditHandler_ListAuditLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid from timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditUseCase(ctrl)
		h := NewAuditHandler(uc)

		r := gin.New()
		r.GET("/v1/audit-logs", h.ListAuditLogs)

		req := httptest.NewRequest(http.MethodGet, "/v1/audit-logs?from=yesterday", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditUseCase(ctrl)
		h := NewAuditHandler(uc)

		r := gin.New()
		r.GET("/v1/audit-logs", h.ListAuditLogs)

		req := httptest.NewRequest(http.MethodGet, "/v1/audit-logs?limit=ten", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("denied below project manager", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditUseCase(ctrl)
		h := NewAuditHandler(uc)

		r := gin.New()
		r.GET("/v1/audit-logs", h.ListAuditLogs)

		uc.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, usecase.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodGet, "/v1/audit-logs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("filters forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditUseCase(ctrl)
		h := NewAuditHandler(uc)

		r := gin.New()
		r.GET("/v1/audit-logs", h.ListAuditLogs)

		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		want := entities.AuditLogFilter{
			EntityType: entities.EntityTypeBudgetItem,
			EntityID:   "bi-1",
			From:       from,
			Limit:      25,
		}
		uc.EXPECT().List(gomock.Any(), gomock.Any(), want).Return([]entities.AuditLog{{ID: "log-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/audit-logs?entity_type=budget_item&entity_id=bi-1&from=2025-03-01T00:00:00Z&limit=25", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
