package interfaces

import (
	"context"
	"retifica_xpto/internal/domain/entities"
)

// IDiagnosticRepository abstracts DynamoDB persistence for DiagnosticResult.
//
// The submission pipeline needs to:
//   - persist a full checklist-backed record per component with responses
//   - persist a lightweight parts/services-only record for components that
//     only carry manual additions
//   - re-read the parts/services of a saved record to normalize IDs when
//     assembling the consolidated diagnostic

type IDiagnosticRepository interface {
	SaveChecklistResponse(ctx context.Context, result entities.DiagnosticResult) (entities.DiagnosticResult, error)
	SaveAdditionalPartsAndServices(ctx context.Context, result entities.DiagnosticResult) (entities.DiagnosticResult, error)
	FetchPartsAndServicesFor(ctx context.Context, resultID string) ([]entities.Part, []entities.Service, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.DiagnosticResult, error)
}
