package handlers

import (
	"errors"
	"log"
	"net/http"

	request "retifica_xpto/internal/adapter/http/dto/request"
	response "retifica_xpto/internal/adapter/http/dto/response"
	"retifica_xpto/internal/usecase"
	"retifica_xpto/internal/usecase/interfaces"
	"retifica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDiagnosticPayload = pkg.NewDomainErrorSimple("INVALID_DIAGNOSTIC_INPUT", "Invalid diagnostic payload", http.StatusBadRequest)
)

// DiagnosticHandler handles HTTP requests for the diagnostic pipeline:
// checklist validation and diagnostic submission.

type DiagnosticHandler struct {
	checklists interfaces.IChecklistProvider
	usecase    usecase.IDiagnosticSubmitUseCase
}

func NewDiagnosticHandler(checklists interfaces.IChecklistProvider, uc usecase.IDiagnosticSubmitUseCase) *DiagnosticHandler {
	return &DiagnosticHandler{checklists: checklists, usecase: uc}
}

// ValidateDiagnostic runs checklist validation without persisting anything.
// The summary is always 200; the client decides how to surface errors and
// warnings.
func (h *DiagnosticHandler) ValidateDiagnostic(c *gin.Context) {
	session, appErr := h.loadSession(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromValidationSummary(session.ValidateAll()))
}

// SubmitDiagnostic validates and persists the diagnostic session, returning
// the consolidated result used to build a budget.
func (h *DiagnosticHandler) SubmitDiagnostic(c *gin.Context) {
	session, appErr := h.loadSession(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[diagnostic][handler] submit start order_id=%s components=%d", session.OrderID, len(session.Components()))

	consolidated, err := h.usecase.Submit(c.Request.Context(), session)
	if err != nil {
		var vErr *usecase.ValidationFailedError
		if errors.As(err, &vErr) {
			log.Printf("[diagnostic][handler] submit blocked by validation order_id=%s errors=%d", session.OrderID, len(vErr.Summary.Errors))
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":    "CHECKLIST_VALIDATION_FAILED",
				"message": "Checklist validation failed",
				"summary": response.FromValidationSummary(vErr.Summary),
			})
			return
		}

		appErr := mapDiagnosticError(err)
		log.Printf("[diagnostic][handler] submit failed order_id=%s err=%v", session.OrderID, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[diagnostic][handler] submit success order_id=%s records=%d", session.OrderID, len(consolidated.Results))

	c.JSON(http.StatusCreated, response.FromConsolidatedDiagnostic(consolidated))
}

func (h *DiagnosticHandler) loadSession(c *gin.Context) (*usecase.DiagnosticSession, *pkg.AppError) {
	var payload request.DiagnosticSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, errInvalidDiagnosticPayload
	}
	if payload.ResolveOrderID() == "" {
		return nil, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	}

	session, err := usecase.LoadSession(c.Request.Context(), h.checklists, payload.ToSessionInput())
	if err != nil {
		return nil, mapDiagnosticError(err)
	}
	return session, nil
}

func mapDiagnosticError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoDiagnosticData):
		return pkg.NewDomainErrorSimple("NO_DIAGNOSTIC_DATA", "No diagnostic data to persist", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
