package routes

import (
	"log"
	"os"
	"strconv"

	_ "retifica_xpto/docs" // This will be auto-generated
	"retifica_xpto/internal/adapter/http/handlers"
	"retifica_xpto/internal/adapter/persistence/repository"
	"retifica_xpto/internal/infrastructure/database"
	"retifica_xpto/internal/infrastructure/identity"
	"retifica_xpto/internal/infrastructure/payments"
	"retifica_xpto/internal/infrastructure/pricing"
	"retifica_xpto/internal/usecase"
	"retifica_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	checklistRepo := repository.NewChecklistDynamoRepository(ddb)
	diagnosticRepo := repository.NewDiagnosticDynamoRepository(ddb)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	paymentRepo := repository.NewBudgetPaymentDynamoRepository(ddb)

	priceTable := pricing.NewDynamoDBPriceTable(ddb)
	identityProvider := identity.NewContextIdentityProvider()

	submitUseCase := usecase.NewDiagnosticSubmitUseCase(diagnosticRepo, priceTable, identityProvider)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewBudgetPaymentUseCase(paymentRepo, budgetRepo, paymentGateway)

	diagnosticHandler := handlers.NewDiagnosticHandler(checklistRepo, submitUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	budgetPaymentHandler := handlers.NewBudgetPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, diagnosticHandler, budgetHandler, budgetPaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(identityMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// identityMiddleware copies the technician id from the X-User-ID header into
// the request context so use cases can stamp diagnosed_by.
func identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Request = c.Request.WithContext(identity.WithUserID(c.Request.Context(), userID))
		}
		c.Next()
	}
}
