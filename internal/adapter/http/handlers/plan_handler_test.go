package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"projectdesk/internal/adapter/http/handlers/mocks"
	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPlanHandler_CreatePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gate not satisfied carries hint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/plan", h.CreatePlan)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "p-1", gomock.Any()).Return(entities.ProjectPlan{}, usecase.ErrGateNotSatisfied)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/plan", bytes.NewBufferString(`{"methodology":"agile"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["success"] != false {
			t.Fatalf("expected success=false, got %v", body["success"])
		}
		if body["error"] != "approve at least one budget item first" {
			t.Fatalf("expected gate hint, got %v", body["error"])
		}
	})

	t.Run("plan already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/plan", h.CreatePlan)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "p-1", gomock.Any()).Return(entities.ProjectPlan{}, usecase.ErrPlanAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/plan", bytes.NewBufferString(`{"methodology":"agile"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created once gate is open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/plan", h.CreatePlan)

		plan := entities.ProjectPlan{ID: "plan-1", ProjectID: "p-1", Methodology: "agile", CreatedBy: "u-1"}
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "p-1", usecase.PlanInput{Methodology: "agile", Baseline: "v1"}).Return(plan, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/plan", bytes.NewBufferString(`{"methodology":"agile","baseline":"v1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body struct {
			Success bool           `json:"success"`
			Data    map[string]any `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !body.Success || body.Data["id"] != "plan-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPlanHandler_GetPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id/plan", h.GetPlan)

		uc.EXPECT().Get(gomock.Any(), gomock.Any(), "p-1").Return(entities.ProjectPlan{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/plan", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id/plan", h.GetPlan)

		uc.EXPECT().Get(gomock.Any(), gomock.Any(), "p-1").Return(entities.ProjectPlan{ID: "plan-1", ProjectID: "p-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/plan", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
