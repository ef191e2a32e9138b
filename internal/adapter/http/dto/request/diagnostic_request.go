package request

import (
	"strings"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase"
)

type PhotoRefRequest struct {
	Key string `json:"key" binding:"required"`
	URL string `json:"url"`
}

// ItemResponseRequest is the recorded answer for one checklist item. Value is
// kept loose on purpose: bool for checkboxes, number for measurements, string
// for text and selects.
type ItemResponseRequest struct {
	Value  interface{}       `json:"value"`
	Notes  string            `json:"notes"`
	Photos []PhotoRefRequest `json:"photos"`
}

type PartRequest struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
}

type ServiceItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

// ComponentRequest carries everything the technician filled in for one engine
// component: checklist answers keyed by item id plus manually added parts and
// services.
type ComponentRequest struct {
	ComponentKey string                         `json:"component_key" binding:"required"`
	Responses    map[string]ItemResponseRequest `json:"responses"`
	Parts        []PartRequest                  `json:"parts"`
	Services     []ServiceItemRequest           `json:"services"`
}

// DiagnosticSubmitRequest is the payload for diagnostic validation and
// submission. Component order is preserved end to end.
type DiagnosticSubmitRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	OrgID   string `json:"org_id"`

	Components []ComponentRequest `json:"components" binding:"required"`

	TechnicalObservations string `json:"technical_observations"`
	ExtraServices         string `json:"extra_services"`
	FinalOpinion          string `json:"final_opinion"`
}

func (r DiagnosticSubmitRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

// ToSessionInput converts the HTTP payload into the input consumed by the
// session loader.
func (r DiagnosticSubmitRequest) ToSessionInput() usecase.SessionInput {
	in := usecase.SessionInput{
		OrderID:               r.ResolveOrderID(),
		OrgID:                 strings.TrimSpace(r.OrgID),
		TechnicalObservations: r.TechnicalObservations,
		ExtraServices:         r.ExtraServices,
		FinalOpinion:          r.FinalOpinion,
	}

	for _, c := range r.Components {
		comp := usecase.ComponentInput{
			ComponentKey: strings.TrimSpace(c.ComponentKey),
		}
		if len(c.Responses) > 0 {
			comp.Responses = make(map[string]entities.ChecklistResponse, len(c.Responses))
			for itemID, ir := range c.Responses {
				comp.Responses[itemID] = entities.ChecklistResponse{
					Value:  ir.Value,
					Notes:  ir.Notes,
					Photos: toPhotoRefs(ir.Photos),
				}
			}
		}
		for _, p := range c.Parts {
			comp.Parts = append(comp.Parts, entities.Part{
				ID:        p.ID,
				Code:      p.Code,
				Name:      p.Name,
				Quantity:  p.Quantity,
				UnitPrice: p.UnitPrice,
			})
		}
		for _, s := range c.Services {
			comp.Services = append(comp.Services, entities.Service{
				ID:          s.ID,
				Description: s.Description,
				Quantity:    s.Quantity,
				UnitPrice:   s.UnitPrice,
			})
		}
		in.Components = append(in.Components, comp)
	}

	return in
}

func toPhotoRefs(in []PhotoRefRequest) []entities.PhotoRef {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.PhotoRef, 0, len(in))
	for _, p := range in {
		out = append(out, entities.PhotoRef{Key: p.Key, URL: p.URL})
	}
	return out
}
