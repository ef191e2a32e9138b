package request

import (
	"strings"

	"retifica_xpto/internal/domain/entities"
)

// BudgetCreateRequest selects the diagnostic line items that make up a new
// budget for one order+component pair. At least one service is required; the
// use case rejects a parts-only selection.
type BudgetCreateRequest struct {
	OrderID      string               `json:"order_id" binding:"required"`
	ComponentKey string               `json:"component_key" binding:"required"`
	Services     []ServiceItemRequest `json:"services"`
	Parts        []PartRequest        `json:"parts"`
}

func (r BudgetCreateRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

func (r BudgetCreateRequest) ResolveComponentKey() string {
	return strings.TrimSpace(r.ComponentKey)
}

func (r BudgetCreateRequest) ToServices() []entities.Service {
	out := make([]entities.Service, 0, len(r.Services))
	for _, s := range r.Services {
		svc := entities.Service{
			ID:          s.ID,
			Description: s.Description,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
		}
		svc.Recalculate()
		out = append(out, svc)
	}
	return out
}

func (r BudgetCreateRequest) ToParts() []entities.Part {
	out := make([]entities.Part, 0, len(r.Parts))
	for _, p := range r.Parts {
		part := entities.Part{
			ID:        p.ID,
			Code:      p.Code,
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
		}
		part.Recalculate()
		out = append(out, part)
	}
	return out
}

// BudgetStatusRequest identifies a budget by its order+component pair on the
// lifecycle routes (approve, reject, cancel).
type BudgetStatusRequest struct {
	OrderID      string `json:"order_id" binding:"required"`
	ComponentKey string `json:"component_key" binding:"required"`
}

func (r BudgetStatusRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

func (r BudgetStatusRequest) ResolveComponentKey() string {
	return strings.TrimSpace(r.ComponentKey)
}
