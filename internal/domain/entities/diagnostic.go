package entities

import "time"

// PhotoRef points at an uploaded inspection photo. Upload storage is owned by
// an external collaborator; the pipeline only carries the reference around.
type PhotoRef struct {
	Key string `json:"key"`
	URL string `json:"url,omitempty"`
}

// ChecklistResponse is the recorded answer for one checklist item.
//
// Value holds a bool, float64 or string depending on the item type. Responses
// materialize on first write and are only ever overwritten, never deleted.
type ChecklistResponse struct {
	Value  interface{} `json:"value"`
	Photos []PhotoRef  `json:"photos"`
	Notes  string      `json:"notes,omitempty"`
}

// Part is a part line item attached to a component during diagnosis.
//
// Total is derived state: it is recomputed from Quantity and UnitPrice on
// every mutation and never set independently.
type Part struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Recalculate sets Total from the current Quantity and UnitPrice.
func (p *Part) Recalculate() {
	p.Total = p.Quantity * p.UnitPrice
}

// Service is a service line item, either manually added, derived from a
// checklist trigger, or recorded as an additional service.
type Service struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	TriggeredBy string  `json:"triggered_by,omitempty"`
}

// Recalculate sets Total from the current Quantity and UnitPrice.
func (s *Service) Recalculate() {
	s.Total = s.Quantity * s.UnitPrice
}

// ServiceCandidate is an unpriced service derived by the trigger engine.
// It becomes a billable Service only after the pricing collaborator resolves
// labor hours and rate.
type ServiceCandidate struct {
	Template    ServiceTemplate `json:"template"`
	ItemID      string          `json:"item_id"`
	TriggeredBy string          `json:"triggered_by"`
}

// GeneratedService is a priced service derived from a checklist trigger.
type GeneratedService struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	ItemID      string  `json:"item_id"`
	TriggeredBy string  `json:"triggered_by"`
	LaborHours  float64 `json:"labor_hours"`
	LaborRate   float64 `json:"labor_rate"`
	LaborTotal  float64 `json:"labor_total"`
}

// ComponentDiagnosticState is the in-session accumulation for one inspected
// component: its checklist (when one exists), the recorded responses keyed by
// item id, and the manually attached parts and services.
type ComponentDiagnosticState struct {
	ComponentKey string                       `json:"component_key"`
	Checklist    Checklist                    `json:"checklist"`
	Responses    map[string]ChecklistResponse `json:"responses"`
	Parts        []Part                       `json:"parts"`
	Services     []Service                    `json:"services"`
}

// HasChecklistResponses reports whether the component has a checklist and at
// least one recorded response.
func (s *ComponentDiagnosticState) HasChecklistResponses() bool {
	return !s.Checklist.IsZero() && len(s.Responses) > 0
}

// HasPartsOrServices reports whether the component carries manually added
// parts or services.
func (s *ComponentDiagnosticState) HasPartsOrServices() bool {
	return len(s.Parts) > 0 || len(s.Services) > 0
}

// DiagnosticResult is one persisted component pass. Records are immutable
// once written.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Session-level fields (TechnicalObservations, ExtraServices, FinalOpinion)
// are present only on the record of the last component processed in the
// submission.
type DiagnosticResult struct {
	ID                string                       `json:"id"`
	OrderID           string                       `json:"order_id"`
	ChecklistID       string                       `json:"checklist_id,omitempty"`
	ComponentKey      string                       `json:"component_key"`
	Responses         map[string]ChecklistResponse `json:"responses,omitempty"`
	Photos            []PhotoRef                   `json:"photos,omitempty"`
	GeneratedServices []GeneratedService           `json:"generated_services,omitempty"`
	DiagnosedBy       string                       `json:"diagnosed_by"`
	AdditionalParts   []Part                       `json:"additional_parts,omitempty"`
	AdditionalServices []Service                   `json:"additional_services,omitempty"`

	TechnicalObservations string `json:"technical_observations,omitempty"`
	ExtraServices         string `json:"extra_services,omitempty"`
	FinalOpinion          string `json:"final_opinion,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ConsolidatedDiagnostic combines every record persisted in one submission,
// with all parts and services re-read from storage, for consumption by the
// budget calculator.
type ConsolidatedDiagnostic struct {
	OrderID               string             `json:"order_id"`
	Results               []DiagnosticResult `json:"results"`
	Parts                 []Part             `json:"parts"`
	Services              []Service          `json:"services"`
	TechnicalObservations string             `json:"technical_observations,omitempty"`
	ExtraServices         string             `json:"extra_services,omitempty"`
	FinalOpinion          string             `json:"final_opinion,omitempty"`
}
