package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrInvalidComponentKey   = errors.New("invalid component key")
	ErrInvalidBudgetID       = errors.New("invalid budget id")
	ErrEmptyServiceSelection = errors.New("no services selected for budget")
)

// Policy constants applied to every new budget.
const (
	defaultEstimatedDeliveryDays = 7
	defaultWarrantyMonths        = 3
)

// DuplicateBudgetError signals that a non-cancelled budget already exists for
// the order+component pair. It carries the existing budget's number and
// status so the caller can show them to the user.
type DuplicateBudgetError struct {
	Number string
	Status entities.BudgetStatus
}

func (e *DuplicateBudgetError) Error() string {
	return fmt.Sprintf("budget %s already exists with status %s", e.Number, e.Status)
}

// BudgetComputation holds the priced totals derived from a selection of
// services and parts. Discount and tax are explicit zeros today; both fields
// are reserved for future business rules and stay in the payload.
type BudgetComputation struct {
	LaborHours    float64 `json:"labor_hours"`
	LaborRate     float64 `json:"labor_rate"`
	LaborTotal    float64 `json:"labor_total"`
	PartsTotal    float64 `json:"parts_total"`
	Discount      float64 `json:"discount"`
	TaxPercentage float64 `json:"tax_percentage"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`

	ServicesDetail string `json:"services_detail"`
	PartsDetail    string `json:"parts_detail"`
}

// CalculateBudget computes labor and parts totals from the selected line
// items. At least one service must be selected; parts alone do not make a
// budget.
func CalculateBudget(selectedServices []entities.Service, selectedParts []entities.Part) (BudgetComputation, error) {
	if len(selectedServices) == 0 {
		return BudgetComputation{}, ErrEmptyServiceSelection
	}

	var comp BudgetComputation
	for _, s := range selectedServices {
		comp.LaborTotal += s.Quantity * s.UnitPrice
		comp.LaborHours += s.Quantity
	}
	if comp.LaborHours > 0 {
		comp.LaborRate = comp.LaborTotal / comp.LaborHours
	}
	for _, p := range selectedParts {
		comp.PartsTotal += p.Quantity * p.UnitPrice
	}

	subtotal := comp.LaborTotal + comp.PartsTotal
	comp.TotalAmount = subtotal - comp.Discount + comp.TaxAmount

	servicesDetail, err := json.Marshal(selectedServices)
	if err != nil {
		return BudgetComputation{}, err
	}
	partsDetail, err := json.Marshal(selectedParts)
	if err != nil {
		return BudgetComputation{}, err
	}
	comp.ServicesDetail = string(servicesDetail)
	comp.PartsDetail = string(partsDetail)

	return comp, nil
}

// IBudgetUseCase exposes budget operations.
//
//   - CreateBudget prices a selection and persists it, guarding against a
//     second live budget for the same order+component
//   - Approve/Reject/Cancel drive the budget lifecycle; only Cancel re-opens
//     creation for the pair

type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, orderID, componentKey string, services []entities.Service, parts []entities.Part) (entities.Budget, error)
	ApproveByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error)
	RejectByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error)
	CancelByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetActiveByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo}
}

// CreateBudget runs the duplicate guard and persists a new pending budget.
//
// The guard is a lookup followed by a conditional insert; it is not atomic
// across concurrent submissions for the same pair. Accepted limitation of
// the current storage model.
func (u *BudgetUseCase) CreateBudget(ctx context.Context, orderID, componentKey string, services []entities.Service, parts []entities.Part) (entities.Budget, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Budget{}, ErrInvalidOrderID
	}
	componentKey = strings.TrimSpace(componentKey)
	if componentKey == "" {
		return entities.Budget{}, ErrInvalidComponentKey
	}

	comp, err := CalculateBudget(services, parts)
	if err != nil {
		return entities.Budget{}, err
	}

	// Enforce: 1 live budget per order+component.
	existing, err := u.repo.GetActiveByOrderComponent(ctx, orderID, componentKey)
	if err != nil {
		return entities.Budget{}, err
	}
	if existing.ID != "" {
		return entities.Budget{}, &DuplicateBudgetError{Number: existing.Number, Status: existing.Status}
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:           uuid.NewString(),
		Number:       newBudgetNumber(),
		OrderID:      orderID,
		ComponentKey: componentKey,

		LaborHours:    comp.LaborHours,
		LaborRate:     comp.LaborRate,
		LaborTotal:    comp.LaborTotal,
		PartsTotal:    comp.PartsTotal,
		Discount:      comp.Discount,
		TaxPercentage: comp.TaxPercentage,
		TaxAmount:     comp.TaxAmount,
		TotalAmount:   comp.TotalAmount,

		Status:                entities.BudgetStatusPendente,
		EstimatedDeliveryDays: defaultEstimatedDeliveryDays,
		WarrantyMonths:        defaultWarrantyMonths,

		ServicesDetail: comp.ServicesDetail,
		PartsDetail:    comp.PartsDetail,

		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) ApproveByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error) {
	return u.updateStatus(ctx, orderID, componentKey, entities.BudgetStatusAprovado)
}

func (u *BudgetUseCase) RejectByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error) {
	return u.updateStatus(ctx, orderID, componentKey, entities.BudgetStatusRejeitado)
}

func (u *BudgetUseCase) CancelByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error) {
	return u.updateStatus(ctx, orderID, componentKey, entities.BudgetStatusCancelado)
}

func (u *BudgetUseCase) updateStatus(ctx context.Context, orderID, componentKey string, status entities.BudgetStatus) (entities.Budget, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Budget{}, ErrInvalidOrderID
	}
	componentKey = strings.TrimSpace(componentKey)
	if componentKey == "" {
		return entities.Budget{}, ErrInvalidComponentKey
	}

	updated, err := u.repo.UpdateStatusByOrderComponent(ctx, orderID, componentKey, status)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) GetActiveByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Budget{}, ErrInvalidOrderID
	}
	componentKey = strings.TrimSpace(componentKey)
	if componentKey == "" {
		return entities.Budget{}, ErrInvalidComponentKey
	}

	b, err := u.repo.GetActiveByOrderComponent(ctx, orderID, componentKey)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func newBudgetNumber() string {
	return "ORC-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
