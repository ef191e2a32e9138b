package response

import (
	"testing"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase"
)

func TestFromValidationSummary(t *testing.T) {
	got := FromValidationSummary(usecase.ValidationSummary{IsValid: true})
	if !got.IsValid {
		t.Fatalf("expected valid")
	}
	if got.Errors == nil || got.Warnings == nil {
		t.Fatalf("expected non-nil slices for json output, got %+v", got)
	}

	got = FromValidationSummary(usecase.ValidationSummary{
		IsValid:  false,
		Errors:   []string{"Folga axial: Obrigatório"},
		Warnings: []string{"Diâmetro do cilindro: Fora do padrão"},
	})
	if got.IsValid || len(got.Errors) != 1 || len(got.Warnings) != 1 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestFromConsolidatedDiagnostic(t *testing.T) {
	d := entities.ConsolidatedDiagnostic{
		OrderID: "os-1",
		Results: []entities.DiagnosticResult{
			{
				ID:           "res-1",
				OrderID:      "os-1",
				ComponentKey: "bloco",
				DiagnosedBy:  "tech-1",
				GeneratedServices: []entities.GeneratedService{
					{Code: "SOLDA_BLOCO"},
				},
				FinalOpinion: "Recuperável",
			},
		},
		Services: []entities.Service{{ID: "svc-1", Description: "Solda do bloco"}},
	}

	got := FromConsolidatedDiagnostic(d)
	if got.OrderID != "os-1" || len(got.Results) != 1 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Results[0].GeneratedServices != 1 || got.Results[0].FinalOpinion != "Recuperável" {
		t.Fatalf("unexpected result summary: %+v", got.Results[0])
	}
	if got.Parts == nil {
		t.Fatalf("expected non-nil parts slice")
	}
	if len(got.Services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(got.Services))
	}
}
