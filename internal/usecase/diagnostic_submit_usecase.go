package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrNoDiagnosticData = errors.New("no diagnostic data to persist")
)

// ValidationFailedError blocks submission while required items are missing.
// It carries the full summary so the caller can present every message at
// once; warnings ride along but never cause this error by themselves.
type ValidationFailedError struct {
	Summary ValidationSummary
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("checklist validation failed: %s", strings.Join(e.Summary.Errors, "; "))
}

// IDiagnosticSubmitUseCase runs the submission pipeline for one session.
//
// Behavior per component, in display order:
//   - checklist + responses present  => full checklist-backed record
//   - only manual parts/services    => lightweight record
//   - neither                       => skipped
//
// The last iterated component receives the session-level closing fields on
// whichever record shape applies to it.

type IDiagnosticSubmitUseCase interface {
	Submit(ctx context.Context, session *DiagnosticSession) (entities.ConsolidatedDiagnostic, error)
}

type DiagnosticSubmitUseCase struct {
	repo     interfaces.IDiagnosticRepository
	pricing  interfaces.IPricingResolver
	identity interfaces.IIdentityProvider
}

var _ IDiagnosticSubmitUseCase = (*DiagnosticSubmitUseCase)(nil)

func NewDiagnosticSubmitUseCase(
	repo interfaces.IDiagnosticRepository,
	pricing interfaces.IPricingResolver,
	identity interfaces.IIdentityProvider,
) *DiagnosticSubmitUseCase {
	return &DiagnosticSubmitUseCase{repo: repo, pricing: pricing, identity: identity}
}

// Submit persists the session and assembles the consolidated diagnostic used
// to seed a budget.
//
// Persistence is sequential and non-transactional: a storage failure aborts
// the remaining components but records already written stay written
// (at-least-once semantics, known limitation).
func (u *DiagnosticSubmitUseCase) Submit(ctx context.Context, session *DiagnosticSession) (entities.ConsolidatedDiagnostic, error) {
	if session == nil || session.OrderID == "" {
		return entities.ConsolidatedDiagnostic{}, ErrInvalidOrderID
	}

	summary := session.ValidateAll()
	if !summary.IsValid {
		log.Printf("[diagnostic][usecase] validation blocked submission order_id=%s errors=%d warnings=%d",
			session.OrderID, len(summary.Errors), len(summary.Warnings))
		return entities.ConsolidatedDiagnostic{}, &ValidationFailedError{Summary: summary}
	}

	diagnosedBy := "unknown"
	if u.identity != nil {
		if id := strings.TrimSpace(u.identity.CurrentUserID(ctx)); id != "" {
			diagnosedBy = id
		}
	}

	components := session.Components()
	var saved []entities.DiagnosticResult

	for i, component := range components {
		st := session.State(component)
		isLast := i == len(components)-1

		switch {
		case st.HasChecklistResponses():
			record, err := u.buildFullRecord(ctx, session, st, diagnosedBy, isLast)
			if err != nil {
				return entities.ConsolidatedDiagnostic{}, err
			}
			out, err := u.repo.SaveChecklistResponse(ctx, record)
			if err != nil {
				log.Printf("[diagnostic][usecase] full record save failed order_id=%s component=%s err=%v",
					session.OrderID, component, err)
				return entities.ConsolidatedDiagnostic{}, err
			}
			saved = append(saved, out)

		case st.HasPartsOrServices():
			record := buildLightweightRecord(session, st, diagnosedBy, isLast)
			out, err := u.repo.SaveAdditionalPartsAndServices(ctx, record)
			if err != nil {
				log.Printf("[diagnostic][usecase] lightweight record save failed order_id=%s component=%s err=%v",
					session.OrderID, component, err)
				return entities.ConsolidatedDiagnostic{}, err
			}
			if out.ID != "" {
				saved = append(saved, out)
			}

		default:
			// Nothing to persist for this component. When it is also the
			// last one, the session-level fields are lost with it; kept
			// as-is to match the current submission behavior.
			if isLast && session.HasSessionFields() {
				log.Printf("[diagnostic][usecase] session fields dropped: last component has no data order_id=%s component=%s",
					session.OrderID, component)
			}
		}
	}

	if len(saved) == 0 {
		return entities.ConsolidatedDiagnostic{}, ErrNoDiagnosticData
	}

	return u.consolidate(ctx, session, saved)
}

func (u *DiagnosticSubmitUseCase) buildFullRecord(
	ctx context.Context,
	session *DiagnosticSession,
	st *entities.ComponentDiagnosticState,
	diagnosedBy string,
	isLast bool,
) (entities.DiagnosticResult, error) {
	candidates := GenerateServices(st.Checklist, st.Responses)
	generated := make([]entities.GeneratedService, 0, len(candidates))
	for _, cand := range candidates {
		hours, rate := interfaces.DefaultLaborHours, interfaces.DefaultLaborRate
		if u.pricing != nil {
			var err error
			hours, rate, err = u.pricing.Resolve(ctx, cand)
			if err != nil {
				log.Printf("[diagnostic][usecase] pricing resolution failed order_id=%s code=%s err=%v",
					session.OrderID, cand.Template.Code, err)
				return entities.DiagnosticResult{}, err
			}
		}
		generated = append(generated, entities.GeneratedService{
			Code:        cand.Template.Code,
			Description: cand.Template.Description,
			ItemID:      cand.ItemID,
			TriggeredBy: cand.TriggeredBy,
			LaborHours:  hours,
			LaborRate:   rate,
			LaborTotal:  hours * rate,
		})
	}

	record := entities.DiagnosticResult{
		OrderID:            session.OrderID,
		ChecklistID:        st.Checklist.ID,
		ComponentKey:       st.ComponentKey,
		Responses:          st.Responses,
		Photos:             flattenPhotos(st.Checklist, st.Responses),
		GeneratedServices:  generated,
		DiagnosedBy:        diagnosedBy,
		AdditionalParts:    st.Parts,
		AdditionalServices: st.Services,
		CreatedAt:          time.Now().UTC(),
	}
	if isLast {
		attachSessionFields(&record, session)
	}
	return record, nil
}

func buildLightweightRecord(
	session *DiagnosticSession,
	st *entities.ComponentDiagnosticState,
	diagnosedBy string,
	isLast bool,
) entities.DiagnosticResult {
	record := entities.DiagnosticResult{
		OrderID:            session.OrderID,
		ComponentKey:       st.ComponentKey,
		DiagnosedBy:        diagnosedBy,
		AdditionalParts:    st.Parts,
		AdditionalServices: st.Services,
		CreatedAt:          time.Now().UTC(),
	}
	if isLast {
		attachSessionFields(&record, session)
	}
	return record
}

func attachSessionFields(record *entities.DiagnosticResult, session *DiagnosticSession) {
	record.TechnicalObservations = session.TechnicalObservations
	record.ExtraServices = session.ExtraServices
	record.FinalOpinion = session.FinalOpinion
}

// consolidate re-reads each saved record's parts and services so the budget
// step works with storage-normalized IDs.
func (u *DiagnosticSubmitUseCase) consolidate(
	ctx context.Context,
	session *DiagnosticSession,
	saved []entities.DiagnosticResult,
) (entities.ConsolidatedDiagnostic, error) {
	out := entities.ConsolidatedDiagnostic{
		OrderID:               session.OrderID,
		Results:               saved,
		Parts:                 []entities.Part{},
		Services:              []entities.Service{},
		TechnicalObservations: session.TechnicalObservations,
		ExtraServices:         session.ExtraServices,
		FinalOpinion:          session.FinalOpinion,
	}

	for _, record := range saved {
		parts, services, err := u.repo.FetchPartsAndServicesFor(ctx, record.ID)
		if err != nil {
			log.Printf("[diagnostic][usecase] parts/services re-read failed order_id=%s result_id=%s err=%v",
				session.OrderID, record.ID, err)
			return entities.ConsolidatedDiagnostic{}, err
		}
		out.Parts = append(out.Parts, parts...)
		out.Services = append(out.Services, services...)
	}

	log.Printf("[diagnostic][usecase] submission consolidated order_id=%s records=%d parts=%d services=%d",
		session.OrderID, len(saved), len(out.Parts), len(out.Services))
	return out, nil
}

func flattenPhotos(checklist entities.Checklist, responses map[string]entities.ChecklistResponse) []entities.PhotoRef {
	var photos []entities.PhotoRef
	for _, item := range checklist.Items {
		photos = append(photos, responses[item.ID].Photos...)
	}
	return photos
}
