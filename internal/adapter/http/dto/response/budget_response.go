package response

import (
	"time"

	"retifica_xpto/internal/domain/entities"
)

type BudgetResponse struct {
	BudgetID     string `json:"budget_id"`
	ID           string `json:"id"`
	Number       string `json:"number"`
	OrderID      string `json:"order_id"`
	ComponentKey string `json:"component_key"`

	LaborHours    float64 `json:"labor_hours"`
	LaborRate     float64 `json:"labor_rate"`
	LaborTotal    float64 `json:"labor_total"`
	PartsTotal    float64 `json:"parts_total"`
	Discount      float64 `json:"discount"`
	TaxPercentage float64 `json:"tax_percentage"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`

	Status                string `json:"status"`
	EstimatedDeliveryDays int    `json:"estimated_delivery_days"`
	WarrantyMonths        int    `json:"warranty_months"`

	ServicesDetail string `json:"services_detail,omitempty"`
	PartsDetail    string `json:"parts_detail,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:     b.ID,
		ID:           b.ID,
		Number:       b.Number,
		OrderID:      b.OrderID,
		ComponentKey: b.ComponentKey,

		LaborHours:    b.LaborHours,
		LaborRate:     b.LaborRate,
		LaborTotal:    b.LaborTotal,
		PartsTotal:    b.PartsTotal,
		Discount:      b.Discount,
		TaxPercentage: b.TaxPercentage,
		TaxAmount:     b.TaxAmount,
		TotalAmount:   b.TotalAmount,

		Status:                string(b.Status),
		EstimatedDeliveryDays: b.EstimatedDeliveryDays,
		WarrantyMonths:        b.WarrantyMonths,

		ServicesDetail: b.ServicesDetail,
		PartsDetail:    b.PartsDetail,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
