package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retifica_xpto/internal/adapter/http/handlers/mocks"
	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBudgetPaymentHandler_CreatePaymentByBudgetID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
		h := NewBudgetPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:budget_id", h.CreatePaymentByBudgetID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "bud-1", gomock.Any()).
			Return(entities.BudgetPayment{ID: "pay-1", BudgetID: "bud-1", Status: entities.PaymentStatusAprovado, Date: time.Now().UTC()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/bud-1", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var parsed map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
		if parsed["payment_id"] != "pay-1" || parsed["budget_id"] != "bud-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("budget not approved maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
		h := NewBudgetPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:budget_id", h.CreatePaymentByBudgetID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "bud-1", gomock.Any()).
			Return(entities.BudgetPayment{}, usecase.ErrBudgetNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/bud-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid body json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
		h := NewBudgetPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:budget_id", h.CreatePaymentByBudgetID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/bud-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetPaymentHandler_GetPaymentByBudgetID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
		h := NewBudgetPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:budget_id", h.GetPaymentByBudgetID)

		older := time.Now().UTC().Add(-time.Hour)
		newer := time.Now().UTC()
		uc.EXPECT().ListByBudgetID(gomock.Any(), "bud-1").Return([]entities.BudgetPayment{
			{ID: "pay-1", BudgetID: "bud-1", Date: older},
			{ID: "pay-2", BudgetID: "bud-1", Date: newer},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/bud-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var parsed map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
		if parsed["payment_id"] != "pay-2" {
			t.Fatalf("expected latest payment, got %s", w.Body.String())
		}
	})

	t.Run("no payments maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetPaymentUseCase(ctrl)
		h := NewBudgetPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:budget_id", h.GetPaymentByBudgetID)

		uc.EXPECT().ListByBudgetID(gomock.Any(), "bud-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/bud-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapBudgetPaymentError(t *testing.T) {
	if got := mapBudgetPaymentError(usecase.ErrInvalidPaymentBudgetID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBudgetPaymentError(usecase.ErrInvalidMPPayload); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBudgetPaymentError(usecase.ErrPaymentGatewayUnauthorized); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapBudgetPaymentError(usecase.ErrBudgetNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBudgetPaymentError(usecase.ErrBudgetNotApproved); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBudgetPaymentError(usecase.ErrBudgetPaymentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBudgetPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
