package usecase

import (
	"context"
	"strings"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase/interfaces"
)

// ComponentInput is the caller-provided accumulation for one component.
type ComponentInput struct {
	ComponentKey string
	Responses    map[string]entities.ChecklistResponse
	Parts        []entities.Part
	Services     []entities.Service
}

// SessionInput is everything a caller hands over when materializing a
// diagnostic session. Component order is the display order and is preserved.
type SessionInput struct {
	OrderID string
	OrgID   string

	Components []ComponentInput

	TechnicalObservations string
	ExtraServices         string
	FinalOpinion          string
}

// LoadSession materializes a DiagnosticSession from caller input, resolving
// each component's checklist through the schema provider. Components without
// a checklist stay in the session carrying parts/services only.
func LoadSession(ctx context.Context, provider interfaces.IChecklistProvider, in SessionInput) (*DiagnosticSession, error) {
	if strings.TrimSpace(in.OrderID) == "" {
		return nil, ErrInvalidOrderID
	}

	keys := make([]string, 0, len(in.Components))
	for _, c := range in.Components {
		keys = append(keys, c.ComponentKey)
	}

	session := NewDiagnosticSession(in.OrderID, in.OrgID, keys)
	session.SetSessionFields(in.TechnicalObservations, in.ExtraServices, in.FinalOpinion)

	for _, c := range in.Components {
		if provider != nil {
			cl, err := provider.GetByComponent(ctx, in.OrgID, c.ComponentKey)
			if err != nil {
				return nil, err
			}
			if !cl.IsZero() {
				session.AttachChecklist(c.ComponentKey, cl)
			}
		}

		for itemID, r := range c.Responses {
			session.RecordValue(c.ComponentKey, itemID, r.Value)
			if r.Notes != "" {
				session.RecordNotes(c.ComponentKey, itemID, r.Notes)
			}
			for _, photo := range r.Photos {
				session.AddPhoto(c.ComponentKey, itemID, photo)
			}
		}
		for _, p := range c.Parts {
			session.AddPart(c.ComponentKey, p)
		}
		for _, sv := range c.Services {
			session.AddService(c.ComponentKey, sv)
		}
	}

	return session, nil
}
