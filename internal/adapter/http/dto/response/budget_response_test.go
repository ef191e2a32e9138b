package response

import (
	"testing"
	"time"

	"retifica_xpto/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Budget{
		ID:           "bud-1",
		Number:       "ORC-A1B2C3D4",
		OrderID:      "os-1",
		ComponentKey: "bloco",

		LaborHours:  3,
		LaborRate:   60,
		LaborTotal:  180,
		PartsTotal:  120,
		TotalAmount: 300,

		Status:                entities.BudgetStatusPendente,
		EstimatedDeliveryDays: 7,
		WarrantyMonths:        3,

		CreatedAt: now,
		UpdatedAt: now,
	}

	got := FromBudget(b)
	if got.BudgetID != "bud-1" || got.ID != "bud-1" {
		t.Fatalf("expected both id aliases set, got %+v", got)
	}
	if got.Number != "ORC-A1B2C3D4" || got.OrderID != "os-1" || got.ComponentKey != "bloco" {
		t.Fatalf("unexpected identifiers: %+v", got)
	}
	if got.TotalAmount != 300 || got.Status != "pendente" {
		t.Fatalf("unexpected totals/status: %+v", got)
	}
	if got.EstimatedDeliveryDays != 7 || got.WarrantyMonths != 3 {
		t.Fatalf("unexpected policy fields: %+v", got)
	}
}
