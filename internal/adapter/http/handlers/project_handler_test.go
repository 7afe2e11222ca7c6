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

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stakeholder cannot create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Project{}, usecase.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Atlas"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		project := entities.Project{ID: "p-1", Name: "Atlas", Status: entities.ProjectStatusPlanning, OwnerID: "u-1"}
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), usecase.ProjectInput{Name: "Atlas"}).Return(project, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Atlas"}`))
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
		if !body.Success || body.Data["status"] != "planning" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_PatchProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id", h.PatchProject)

		uc.EXPECT().Patch(gomock.Any(), gomock.Any(), "p-1", gomock.Any()).Return(entities.Project{}, usecase.ErrInvalidProjectStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1", bytes.NewBufferString(`{"status":"galloping"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status transition applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id", h.PatchProject)

		updated := entities.Project{ID: "p-1", Name: "Atlas", Status: entities.ProjectStatusInProgress}
		uc.EXPECT().Patch(gomock.Any(), gomock.Any(), "p-1", gomock.Any()).Return(updated, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().Get(gomock.Any(), gomock.Any(), "missing").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.DELETE("/v1/projects/:id", h.DeleteProject)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "p-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/projects/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
