package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"retifica_xpto/internal/domain/entities"
	mock_interfaces "retifica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBudgetPaymentUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"cliente@example.com"}}`)

	t.Run("invalid budget id", func(t *testing.T) {
		uc := NewBudgetPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "  ", payload)
		if !errors.Is(err, ErrInvalidPaymentBudgetID) {
			t.Fatalf("expected ErrInvalidPaymentBudgetID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewBudgetPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBudgetPaymentUseCase(repo, budgetRepo, gateway)

		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "b-1", payload)
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("budget not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBudgetPaymentUseCase(repo, budgetRepo, gateway)

		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(
			entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "b-1", payload)
		if !errors.Is(err, ErrBudgetNotApproved) {
			t.Fatalf("expected ErrBudgetNotApproved, got %v", err)
		}
	})

	t.Run("success enriches payload with budget amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBudgetPaymentUseCase(repo, budgetRepo, gateway)

		budget := entities.Budget{ID: "b-1", Number: "ORC-11223344", Status: entities.BudgetStatusAprovado, TotalAmount: 130}
		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raw json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(raw, &m); err != nil {
					t.Fatalf("enriched payload not json: %v", err)
				}
				if m["transaction_amount"] != 130.0 {
					t.Fatalf("amount must come from the stored budget: %v", m["transaction_amount"])
				}
				if m["external_reference"] != "ORC-11223344" {
					t.Fatalf("expected external_reference: %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BudgetPayment{})).DoAndReturn(
			func(_ context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
				if p.ID != "mp-1" || p.BudgetID != "b-1" || p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), "b-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "mp-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway unauthorized mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBudgetPaymentUseCase(repo, budgetRepo, gateway)

		budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(
			entities.Budget{ID: "b-1", Status: entities.BudgetStatusAprovado, TotalAmount: 10}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(
			"", "", nil, errors.New(`mercadopago: {"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndApprove(context.Background(), "b-1", payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestBudgetPaymentUseCase_ListByBudgetID(t *testing.T) {
	t.Run("invalid budget id", func(t *testing.T) {
		uc := NewBudgetPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByBudgetID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentBudgetID) {
			t.Fatalf("expected ErrInvalidPaymentBudgetID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
		uc := NewBudgetPaymentUseCase(repo, nil, nil)

		expected := []entities.BudgetPayment{{ID: "p-1", BudgetID: "b-1"}}
		repo.EXPECT().ListByBudgetID(gomock.Any(), "b-1").Return(expected, nil)

		res, err := uc.ListByBudgetID(context.Background(), " b-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "p-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBudgetPaymentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
		uc := NewBudgetPaymentUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.BudgetPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrBudgetPaymentNotFound) {
			t.Fatalf("expected ErrBudgetPaymentNotFound, got %v", err)
		}
	})
}
