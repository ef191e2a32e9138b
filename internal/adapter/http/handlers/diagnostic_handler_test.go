package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"retifica_xpto/internal/adapter/http/handlers/mocks"
	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase"
	ifacemocks "retifica_xpto/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func diagnosticChecklist() entities.Checklist {
	return entities.Checklist{
		ID:           "cl-bloco",
		ComponentKey: "bloco",
		Items: []entities.ChecklistItem{
			{ID: "i1", Name: "Trinca no bloco", ItemType: entities.ItemTypeCheckbox, IsRequired: true,
				TriggersService: []entities.ServiceTemplate{{Code: "SOLDA_BLOCO", Description: "Solda do bloco"}}},
			{ID: "i2", Name: "Diâmetro do cilindro", ItemType: entities.ItemTypeMeasurement,
				ExpectedRange: &entities.ExpectedRange{Min: 80, Max: 82}},
		},
	}
}

func TestDiagnosticHandler_ValidateDiagnostic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := ifacemocks.NewMockIChecklistProvider(ctrl)
		uc := mocks.NewMockIDiagnosticSubmitUseCase(ctrl)
		h := NewDiagnosticHandler(provider, uc)

		r := gin.New()
		r.POST("/v1/diagnostics/validate", h.ValidateDiagnostic)

		req := httptest.NewRequest(http.MethodPost, "/v1/diagnostics/validate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required item reported without blocking the route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := ifacemocks.NewMockIChecklistProvider(ctrl)
		uc := mocks.NewMockIDiagnosticSubmitUseCase(ctrl)
		h := NewDiagnosticHandler(provider, uc)

		r := gin.New()
		r.POST("/v1/diagnostics/validate", h.ValidateDiagnostic)

		provider.EXPECT().GetByComponent(gomock.Any(), "org-1", "bloco").Return(diagnosticChecklist(), nil)

		body := `{"order_id":"os-1","org_id":"org-1","components":[{"component_key":"bloco","responses":{"i2":{"value":90}}}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/diagnostics/validate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var parsed struct {
			IsValid  bool     `json:"is_valid"`
			Errors   []string `json:"errors"`
			Warnings []string `json:"warnings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if parsed.IsValid {
			t.Fatalf("expected invalid summary, got %s", w.Body.String())
		}
		if len(parsed.Errors) != 1 || parsed.Errors[0] != "Trinca no bloco: Obrigatório" {
			t.Fatalf("unexpected errors: %v", parsed.Errors)
		}
		if len(parsed.Warnings) != 1 || parsed.Warnings[0] != "Diâmetro do cilindro: Fora do padrão" {
			t.Fatalf("unexpected warnings: %v", parsed.Warnings)
		}
	})
}

func TestDiagnosticHandler_SubmitDiagnostic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := ifacemocks.NewMockIChecklistProvider(ctrl)
		uc := mocks.NewMockIDiagnosticSubmitUseCase(ctrl)
		h := NewDiagnosticHandler(provider, uc)

		r := gin.New()
		r.POST("/v1/diagnostics", h.SubmitDiagnostic)

		req := httptest.NewRequest(http.MethodPost, "/v1/diagnostics", bytes.NewBufferString(`{"order_id":"   ","components":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure maps to 422 with summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := ifacemocks.NewMockIChecklistProvider(ctrl)
		uc := mocks.NewMockIDiagnosticSubmitUseCase(ctrl)
		h := NewDiagnosticHandler(provider, uc)

		r := gin.New()
		r.POST("/v1/diagnostics", h.SubmitDiagnostic)

		provider.EXPECT().GetByComponent(gomock.Any(), "org-1", "bloco").Return(diagnosticChecklist(), nil)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ConsolidatedDiagnostic{}, &usecase.ValidationFailedError{
			Summary: usecase.ValidationSummary{Errors: []string{"Trinca no bloco: Obrigatório"}},
		})

		body := `{"order_id":"os-1","org_id":"org-1","components":[{"component_key":"bloco","responses":{"i2":{"value":81}}}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/diagnostics", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var parsed map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
		if parsed["code"] != "CHECKLIST_VALIDATION_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no diagnostic data maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := ifacemocks.NewMockIChecklistProvider(ctrl)
		uc := mocks.NewMockIDiagnosticSubmitUseCase(ctrl)
		h := NewDiagnosticHandler(provider, uc)

		r := gin.New()
		r.POST("/v1/diagnostics", h.SubmitDiagnostic)

		provider.EXPECT().GetByComponent(gomock.Any(), "", "bloco").Return(entities.Checklist{}, nil)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ConsolidatedDiagnostic{}, usecase.ErrNoDiagnosticData)

		body := `{"order_id":"os-1","components":[{"component_key":"bloco"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/diagnostics", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := ifacemocks.NewMockIChecklistProvider(ctrl)
		uc := mocks.NewMockIDiagnosticSubmitUseCase(ctrl)
		h := NewDiagnosticHandler(provider, uc)

		r := gin.New()
		r.POST("/v1/diagnostics", h.SubmitDiagnostic)

		provider.EXPECT().GetByComponent(gomock.Any(), "org-1", "bloco").Return(diagnosticChecklist(), nil)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ConsolidatedDiagnostic{
			OrderID: "os-1",
			Results: []entities.DiagnosticResult{{ID: "res-1", OrderID: "os-1", ComponentKey: "bloco"}},
			Services: []entities.Service{
				{ID: "res-1#SOLDA_BLOCO", Description: "Solda do bloco", Quantity: 1, UnitPrice: 50, Total: 50},
			},
		}, nil)

		body := `{"order_id":"os-1","org_id":"org-1","components":[{"component_key":"bloco","responses":{"i1":{"value":true},"i2":{"value":81}}}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/diagnostics", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var parsed map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
		if parsed["order_id"] != "os-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
