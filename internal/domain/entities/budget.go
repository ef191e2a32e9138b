package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - The service is the source of truth for budget state.
//   - Only cancellation re-opens budget creation for the same
//     order+component pair.

type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "pendente"
	BudgetStatusAprovado  BudgetStatus = "aprovado"
	BudgetStatusRejeitado BudgetStatus = "rejeitado"
	BudgetStatusCancelado BudgetStatus = "cancelado"
)

// Budget is the priced proposal persisted for one order+component pair.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_component-index): order_component = "<order_id>#<component_key>"
//
// Monetary representation:
//   - Discount and tax are explicit zero-valued fields today; both are
//     reserved for future business rules and must not be dropped.
type Budget struct {
	ID           string       `json:"id"`
	Number       string       `json:"number"`
	OrderID      string       `json:"order_id"`
	ComponentKey string       `json:"component_key"`

	LaborHours    float64 `json:"labor_hours"`
	LaborRate     float64 `json:"labor_rate"`
	LaborTotal    float64 `json:"labor_total"`
	PartsTotal    float64 `json:"parts_total"`
	Discount      float64 `json:"discount"`
	TaxPercentage float64 `json:"tax_percentage"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`

	Status                BudgetStatus `json:"status"`
	EstimatedDeliveryDays int          `json:"estimated_delivery_days"`
	WarrantyMonths        int          `json:"warranty_months"`

	// JSON snapshots of the services/parts the budget was computed from.
	ServicesDetail string `json:"services_detail,omitempty"`
	PartsDetail    string `json:"parts_detail,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderComponent returns the composite key used by the duplicate guard.
func (b Budget) OrderComponent() string {
	return b.OrderID + "#" + b.ComponentKey
}
