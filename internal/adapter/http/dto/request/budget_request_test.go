package request

import "testing"

func TestBudgetCreateRequest_ToServices(t *testing.T) {
	req := BudgetCreateRequest{
		OrderID:      " os-1 ",
		ComponentKey: " bloco ",
		Services: []ServiceItemRequest{
			{ID: "svc-1", Description: "Brunimento", Quantity: 2, UnitPrice: 50},
		},
	}

	if req.ResolveOrderID() != "os-1" || req.ResolveComponentKey() != "bloco" {
		t.Fatalf("expected trimmed identifiers")
	}

	services := req.ToServices()
	if len(services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(services))
	}
	if services[0].Total != 100 {
		t.Fatalf("expected recalculated total 100, got %v", services[0].Total)
	}
}

func TestBudgetCreateRequest_ToParts(t *testing.T) {
	req := BudgetCreateRequest{
		Parts: []PartRequest{
			{Code: "JNT-01", Name: "Junta do cabeçote", Quantity: 1, UnitPrice: 85.5},
		},
	}

	parts := req.ToParts()
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	if parts[0].Total != 85.5 {
		t.Fatalf("expected recalculated total 85.5, got %v", parts[0].Total)
	}
}
