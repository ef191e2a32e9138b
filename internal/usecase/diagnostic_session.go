package usecase

import (
	"fmt"
	"strings"

	"retifica_xpto/internal/domain/entities"

	"github.com/google/uuid"
)

// DiagnosticSession holds the in-memory state of one diagnostic pass across
// all active components of an order. It is owned by a single interactive
// session: all mutations are discrete user actions that run to completion
// before the next one, so no locking is done here.
//
// Component iteration order is the display order of the active components and
// is fixed at session start; the submission pipeline relies on it to decide
// which component receives the session-level fields.

type DiagnosticSession struct {
	OrderID string
	OrgID   string

	components []string
	states     map[string]*entities.ComponentDiagnosticState

	TechnicalObservations string
	ExtraServices         string
	FinalOpinion          string
}

// ValidationSummary is the whole-session validation outcome. Warnings are
// advisory and never block submission.
type ValidationSummary struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func NewDiagnosticSession(orderID, orgID string, activeComponents []string) *DiagnosticSession {
	s := &DiagnosticSession{
		OrderID:    strings.TrimSpace(orderID),
		OrgID:      strings.TrimSpace(orgID),
		components: append([]string(nil), activeComponents...),
		states:     make(map[string]*entities.ComponentDiagnosticState, len(activeComponents)),
	}
	for _, c := range activeComponents {
		s.states[c] = &entities.ComponentDiagnosticState{
			ComponentKey: c,
			Responses:    map[string]entities.ChecklistResponse{},
		}
	}
	return s
}

// Components returns the fixed iteration order of the active components.
func (s *DiagnosticSession) Components() []string {
	return s.components
}

// State returns the per-component accumulation, creating it on first access
// for components added after session start.
func (s *DiagnosticSession) State(component string) *entities.ComponentDiagnosticState {
	st, ok := s.states[component]
	if !ok {
		st = &entities.ComponentDiagnosticState{
			ComponentKey: component,
			Responses:    map[string]entities.ChecklistResponse{},
		}
		s.states[component] = st
		s.components = append(s.components, component)
	}
	return st
}

// AttachChecklist binds the loaded checklist to a component. Responses are
// materialized lazily on first write, so a loaded-but-untouched checklist
// still counts as "no responses" at submission time.
func (s *DiagnosticSession) AttachChecklist(component string, cl entities.Checklist) {
	s.State(component).Checklist = cl
}

// RecordValue overwrites the answer of one item, creating the response with
// empty defaults on first write.
func (s *DiagnosticSession) RecordValue(component, itemID string, value interface{}) {
	st := s.State(component)
	r := s.response(st, itemID)
	r.Value = value
	st.Responses[itemID] = r
}

// RecordNotes overwrites the free-text notes of one item's response.
func (s *DiagnosticSession) RecordNotes(component, itemID, notes string) {
	st := s.State(component)
	r := s.response(st, itemID)
	r.Notes = notes
	st.Responses[itemID] = r
}

// AddPhoto appends a photo reference to one item's response.
func (s *DiagnosticSession) AddPhoto(component, itemID string, photo entities.PhotoRef) {
	st := s.State(component)
	r := s.response(st, itemID)
	r.Photos = append(r.Photos, photo)
	st.Responses[itemID] = r
}

// RemovePhoto drops the photo at index from one item's response. Out-of-range
// indexes are ignored.
func (s *DiagnosticSession) RemovePhoto(component, itemID string, index int) {
	st := s.State(component)
	r := s.response(st, itemID)
	if index < 0 || index >= len(r.Photos) {
		return
	}
	r.Photos = append(r.Photos[:index], r.Photos[index+1:]...)
	st.Responses[itemID] = r
}

// AddPart attaches a manually added part to a component. Total is always
// recomputed from quantity and unit price.
func (s *DiagnosticSession) AddPart(component string, p entities.Part) entities.Part {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Recalculate()
	st := s.State(component)
	st.Parts = append(st.Parts, p)
	return p
}

// UpdatePart changes quantity and unit price of an attached part, recomputing
// its total. Unknown part ids are ignored.
func (s *DiagnosticSession) UpdatePart(component, partID string, quantity, unitPrice float64) {
	st := s.State(component)
	for i := range st.Parts {
		if st.Parts[i].ID == partID {
			st.Parts[i].Quantity = quantity
			st.Parts[i].UnitPrice = unitPrice
			st.Parts[i].Recalculate()
			return
		}
	}
}

// RemovePart detaches a part from a component.
func (s *DiagnosticSession) RemovePart(component, partID string) {
	st := s.State(component)
	for i := range st.Parts {
		if st.Parts[i].ID == partID {
			st.Parts = append(st.Parts[:i], st.Parts[i+1:]...)
			return
		}
	}
}

// AddService attaches a manually added service to a component.
func (s *DiagnosticSession) AddService(component string, sv entities.Service) entities.Service {
	if sv.ID == "" {
		sv.ID = uuid.NewString()
	}
	sv.Recalculate()
	st := s.State(component)
	st.Services = append(st.Services, sv)
	return sv
}

// UpdateService changes quantity and unit price of an attached service,
// recomputing its total. Unknown service ids are ignored.
func (s *DiagnosticSession) UpdateService(component, serviceID string, quantity, unitPrice float64) {
	st := s.State(component)
	for i := range st.Services {
		if st.Services[i].ID == serviceID {
			st.Services[i].Quantity = quantity
			st.Services[i].UnitPrice = unitPrice
			st.Services[i].Recalculate()
			return
		}
	}
}

// RemoveService detaches a service from a component.
func (s *DiagnosticSession) RemoveService(component, serviceID string) {
	st := s.State(component)
	for i := range st.Services {
		if st.Services[i].ID == serviceID {
			st.Services = append(st.Services[:i], st.Services[i+1:]...)
			return
		}
	}
}

// SetSessionFields records the session-level closing fields. They are
// attached to the last processed component at submission time.
func (s *DiagnosticSession) SetSessionFields(technicalObservations, extraServices, finalOpinion string) {
	s.TechnicalObservations = technicalObservations
	s.ExtraServices = extraServices
	s.FinalOpinion = finalOpinion
}

// HasSessionFields reports whether any closing field was filled in.
func (s *DiagnosticSession) HasSessionFields() bool {
	return s.TechnicalObservations != "" || s.ExtraServices != "" || s.FinalOpinion != ""
}

// ValidateAll runs the item validator over every item of every active
// component's checklist. Required failures become blocking errors; range
// deviations become advisory warnings. Messages are prefixed with the item
// name for display.
func (s *DiagnosticSession) ValidateAll() ValidationSummary {
	out := ValidationSummary{Errors: []string{}, Warnings: []string{}}
	for _, component := range s.components {
		st := s.states[component]
		if st.Checklist.IsZero() {
			continue
		}
		for _, item := range st.Checklist.Items {
			res := ValidateItem(item, st.Responses[item.ID])
			if !res.IsValid {
				out.Errors = append(out.Errors, fmt.Sprintf("%s: %s", item.Name, res.Message))
			}
			if res.Warning != "" {
				out.Warnings = append(out.Warnings, fmt.Sprintf("%s: %s", item.Name, res.Warning))
			}
		}
	}
	out.IsValid = len(out.Errors) == 0
	return out
}

func (s *DiagnosticSession) response(st *entities.ComponentDiagnosticState, itemID string) entities.ChecklistResponse {
	if r, ok := st.Responses[itemID]; ok {
		return r
	}
	return emptyResponse(s.itemType(st, itemID))
}

func (s *DiagnosticSession) itemType(st *entities.ComponentDiagnosticState, itemID string) entities.ItemType {
	for _, item := range st.Checklist.Items {
		if item.ID == itemID {
			return item.ItemType
		}
	}
	return entities.ItemTypeText
}

func emptyResponse(t entities.ItemType) entities.ChecklistResponse {
	r := entities.ChecklistResponse{Photos: []entities.PhotoRef{}}
	switch t {
	case entities.ItemTypeCheckbox:
		r.Value = false
	case entities.ItemTypeMeasurement:
		r.Value = 0.0
	default:
		r.Value = ""
	}
	return r
}
