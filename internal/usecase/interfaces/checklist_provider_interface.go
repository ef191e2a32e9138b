package interfaces

import (
	"context"
	"retifica_xpto/internal/domain/entities"
)

// IChecklistProvider abstracts the checklist schema source.
//
// Checklists are defined per organization and per inspected macro-component;
// a component without a checklist yields a zero-valued Checklist, not an
// error.

type IChecklistProvider interface {
	GetByComponent(ctx context.Context, orgID, componentKey string) (entities.Checklist, error)
}
