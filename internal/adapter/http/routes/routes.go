package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "beavers_choice/docs" // This will be auto-generated
	"beavers_choice/internal/adapter/http/handlers"
	repository2 "beavers_choice/internal/adapter/persistence/repository"
	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/infrastructure/database"
	"beavers_choice/internal/infrastructure/supplier"
	"beavers_choice/internal/usecase"
	"beavers_choice/internal/usecase/interfaces"

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
	catalog := entities.DefaultCatalog()

	var (
		inventoryRepo interfaces.IInventoryRepository
		ledger        interfaces.ITransactionLedger
	)
	backend := getenvDefault("PERSISTENCE_BACKEND", "memory")
	switch backend {
	case "dynamodb":
		ddb := database.ConnectDynamoDB()
		inventoryRepo = repository2.NewInventoryDynamoRepository(ddb)
		ledger = repository2.NewTransactionDynamoLedger(ddb)
	default:
		inventoryRepo = repository2.NewInventoryMemoryRepository()
		ledger = repository2.NewTransactionMemoryLedger()
	}
	log.Printf("[routes] persistence backend: %s", backend)

	estimator := supplier.NewLeadTimeEstimator(catalog)

	pricer, err := usecase.NewQuoteUseCase(catalog, entities.DefaultPricingPolicy())
	if err != nil {
		log.Fatalf("Invalid pricing policy: %v", err)
	}

	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo, catalog)
	if err := inventoryUseCase.SeedCatalog(context.Background()); err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}

	fulfillmentUseCase := usecase.NewFulfillmentUseCase(inventoryRepo, ledger, estimator, pricer, catalog)
	reportingUseCase := usecase.NewReportingUseCase(ledger, inventoryRepo, catalog)

	quoteHandler := handlers.NewQuoteHandler(fulfillmentUseCase)
	reportingHandler := handlers.NewReportingHandler(reportingUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, quoteHandler, reportingHandler, inventoryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
