package interfaces

import (
	"context"
	"retifica_xpto/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// The budget use case must be able to:
//   - look up the active (non-cancelled) budget of an order+component pair
//     before creating a new one
//   - create a budget
//   - update budget status by order+component (approve/reject/cancel)
//
// GetActiveByOrderComponent ignores cancelled budgets: cancellation is what
// re-opens budget creation for the pair.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetActiveByOrderComponent(ctx context.Context, orderID, componentKey string) (entities.Budget, error)
	UpdateStatusByOrderComponent(ctx context.Context, orderID, componentKey string, status entities.BudgetStatus) (entities.Budget, error)
}
