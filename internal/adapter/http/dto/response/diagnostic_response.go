package response

import (
	"time"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase"
)

// ValidationSummaryResponse reports the outcome of a checklist validation
// pass. Errors block submission; warnings do not.
type ValidationSummaryResponse struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func FromValidationSummary(s usecase.ValidationSummary) ValidationSummaryResponse {
	out := ValidationSummaryResponse{
		IsValid:  s.IsValid,
		Errors:   s.Errors,
		Warnings: s.Warnings,
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}
	return out
}

type DiagnosticResultResponse struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	ChecklistID       string    `json:"checklist_id,omitempty"`
	ComponentKey      string    `json:"component_key"`
	DiagnosedBy       string    `json:"diagnosed_by"`
	GeneratedServices int       `json:"generated_services"`
	AdditionalParts   int       `json:"additional_parts"`
	AdditionalService int       `json:"additional_services"`
	CreatedAt         time.Time `json:"created_at"`

	TechnicalObservations string `json:"technical_observations,omitempty"`
	ExtraServices         string `json:"extra_services,omitempty"`
	FinalOpinion          string `json:"final_opinion,omitempty"`
}

func FromDiagnosticResult(r entities.DiagnosticResult) DiagnosticResultResponse {
	return DiagnosticResultResponse{
		ID:                r.ID,
		OrderID:           r.OrderID,
		ChecklistID:       r.ChecklistID,
		ComponentKey:      r.ComponentKey,
		DiagnosedBy:       r.DiagnosedBy,
		GeneratedServices: len(r.GeneratedServices),
		AdditionalParts:   len(r.AdditionalParts),
		AdditionalService: len(r.AdditionalServices),
		CreatedAt:         r.CreatedAt,

		TechnicalObservations: r.TechnicalObservations,
		ExtraServices:         r.ExtraServices,
		FinalOpinion:          r.FinalOpinion,
	}
}

// ConsolidatedDiagnosticResponse is the submission result: every persisted
// record plus the full list of parts and services available for budgeting.
type ConsolidatedDiagnosticResponse struct {
	OrderID  string                     `json:"order_id"`
	Results  []DiagnosticResultResponse `json:"results"`
	Parts    []entities.Part            `json:"parts"`
	Services []entities.Service         `json:"services"`

	TechnicalObservations string `json:"technical_observations,omitempty"`
	ExtraServices         string `json:"extra_services,omitempty"`
	FinalOpinion          string `json:"final_opinion,omitempty"`
}

func FromConsolidatedDiagnostic(d entities.ConsolidatedDiagnostic) ConsolidatedDiagnosticResponse {
	results := make([]DiagnosticResultResponse, 0, len(d.Results))
	for _, r := range d.Results {
		results = append(results, FromDiagnosticResult(r))
	}

	out := ConsolidatedDiagnosticResponse{
		OrderID:  d.OrderID,
		Results:  results,
		Parts:    d.Parts,
		Services: d.Services,

		TechnicalObservations: d.TechnicalObservations,
		ExtraServices:         d.ExtraServices,
		FinalOpinion:          d.FinalOpinion,
	}
	if out.Parts == nil {
		out.Parts = []entities.Part{}
	}
	if out.Services == nil {
		out.Services = []entities.Service{}
	}
	return out
}
