package routes

import (
	"retifica_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDiagnostics = "/diagnostics"
	PathBudgets     = "/budgets"
	PathPayments    = "/payments"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	diagnosticHandler *handlers.DiagnosticHandler,
	budgetHandler *handlers.BudgetHandler,
	paymentHandler *handlers.BudgetPaymentHandler,
) {
	diagnostics := rg.Group(PathDiagnostics)
	{
		diagnostics.POST("", diagnosticHandler.SubmitDiagnostic)
		diagnostics.POST("/validate", diagnosticHandler.ValidateDiagnostic)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("/active", budgetHandler.GetActiveBudget)
		budgets.GET("/:budget_id", budgetHandler.GetBudgetByID)
		budgets.PATCH("/approve", budgetHandler.ApproveBudget)
		budgets.PATCH("/reject", budgetHandler.RejectBudget)
		budgets.PATCH("/cancel", budgetHandler.CancelBudget)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:budget_id", paymentHandler.CreatePaymentByBudgetID)
		payments.GET("/:budget_id", paymentHandler.GetPaymentByBudgetID)
	}
}
