package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase/interfaces"
)

var (
	ErrBudgetPaymentNotFound      = errors.New("budget payment not found")
	ErrInvalidPaymentBudgetID     = errors.New("invalid budget_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrBudgetNotApproved          = errors.New("budget not approved")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IBudgetPaymentUseCase encapsulates the "create and process payment"
// behavior for approved budgets.

type IBudgetPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BudgetPayment, error)
	GetByID(ctx context.Context, id string) (entities.BudgetPayment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error)
}

type BudgetPaymentUseCase struct {
	repo       interfaces.IBudgetPaymentRepository
	budgetRepo interfaces.IBudgetRepository
	gateway    interfaces.IPaymentGateway
}

var _ IBudgetPaymentUseCase = (*BudgetPaymentUseCase)(nil)

func NewBudgetPaymentUseCase(repo interfaces.IBudgetPaymentRepository, budgetRepo interfaces.IBudgetRepository, gateway interfaces.IPaymentGateway) *BudgetPaymentUseCase {
	return &BudgetPaymentUseCase{repo: repo, budgetRepo: budgetRepo, gateway: gateway}
}

// CreateAndApprove charges the budget total through the payment gateway and
// persists the approved payment. In mock mode (PAYMENT_GATEWAY_MOCK) the
// gateway call is skipped and a synthetic approved response is stored, which
// keeps local environments independent of Mercado Pago credentials.
func (u *BudgetPaymentUseCase) CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BudgetPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_budget_id=%q payload_len=%d", budgetID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()

	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.BudgetPayment{}, ErrInvalidPaymentBudgetID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload budget_id=%s", budgetID)
			return entities.BudgetPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.BudgetPayment{}, errors.New("payment gateway not configured")
	}
	if u.budgetRepo == nil {
		return entities.BudgetPayment{}, errors.New("budget repository not configured")
	}

	b, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading budget budget_id=%s err=%v", budgetID, err)
		return entities.BudgetPayment{}, err
	}
	if b.ID == "" {
		return entities.BudgetPayment{}, ErrBudgetNotFound
	}
	if !mockMode && b.Status != entities.BudgetStatusAprovado {
		log.Printf("[payment][usecase] budget not approved budget_id=%s status=%s", budgetID, b.Status)
		return entities.BudgetPayment{}, ErrBudgetNotApproved
	}

	// Link the charge to the budget and let the budget in DB be the source
	// of truth for the amount. external_reference helps Mercado Pago event
	// reconciliation.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = b.Number
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Orçamento %s", b.Number)
		}
		reqMap["transaction_amount"] = b.TotalAmount
		if enriched, err := json.Marshal(reqMap); err == nil {
			mpPayload = enriched
		}
	}

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID, providerResp, err = mockProviderResponse(mpPayload, b)
		if err != nil {
			return entities.BudgetPayment{}, err
		}
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed budget_id=%s err=%v", budgetID, err)
			return entities.BudgetPayment{}, classifyGatewayError(err)
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed budget_id=%s err=%v", budgetID, err)
	}

	p := entities.BudgetPayment{
		ID:           providerPaymentID,
		BudgetID:     budgetID,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed budget_id=%s payment_id=%s err=%v", budgetID, p.ID, err)
		return entities.BudgetPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success budget_id=%s payment_id=%s", budgetID, created.ID)
	return created, nil
}

func (u *BudgetPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BudgetPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if p.ID == "" {
		return entities.BudgetPayment{}, ErrBudgetPaymentNotFound
	}
	return p, nil
}

func (u *BudgetPaymentUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidPaymentBudgetID
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}

func mockProviderResponse(mpPayload json.RawMessage, b entities.Budget) (string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := map[string]any{}
	if len(mpPayload) > 0 && json.Valid(mpPayload) {
		_ = json.Unmarshal(mpPayload, &resp)
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = b.TotalAmount
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	return id, raw, nil
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
