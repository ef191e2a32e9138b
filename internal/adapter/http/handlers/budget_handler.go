package handlers

import (
	"context"
	"errors"
	"net/http"

	request "retifica_xpto/internal/adapter/http/dto/request"
	response "retifica_xpto/internal/adapter/http/dto/response"
	"retifica_xpto/internal/domain/entities"
	"retifica_xpto/internal/usecase"
	"retifica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budgets.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget prices the selected services and parts and persists a pending
// budget for the order+component pair.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.CreateBudget(
		c.Request.Context(),
		payload.ResolveOrderID(),
		payload.ResolveComponentKey(),
		payload.ToServices(),
		payload.ToParts(),
	)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.patchBudgetStatusByRequest(c, h.usecase.ApproveByOrderComponent)
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.patchBudgetStatusByRequest(c, h.usecase.RejectByOrderComponent)
}

func (h *BudgetHandler) CancelBudget(c *gin.Context) {
	h.patchBudgetStatusByRequest(c, h.usecase.CancelByOrderComponent)
}

// GetBudgetByID returns a budget by its id.
func (h *BudgetHandler) GetBudgetByID(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// GetActiveBudget returns the live (non-cancelled) budget for an
// order+component pair, read from query parameters.
func (h *BudgetHandler) GetActiveBudget(c *gin.Context) {
	budget, err := h.usecase.GetActiveByOrderComponent(c.Request.Context(), c.Query("order_id"), c.Query("component_key"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) patchBudgetStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, orderID, componentKey string) (entities.Budget, error),
) {
	var payload request.BudgetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := updater(c.Request.Context(), payload.ResolveOrderID(), payload.ResolveComponentKey())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func mapBudgetError(err error) *pkg.AppError {
	var dup *usecase.DuplicateBudgetError
	switch {
	case errors.As(err, &dup):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_EXISTS", "A budget already exists for this order and component", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidComponentKey), errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyServiceSelection):
		return pkg.NewDomainErrorSimple("EMPTY_SERVICE_SELECTION", "At least one service must be selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
