package routes

import (
	"log"
	"strconv"

	_ "splitpay/docs" // generated by swag init
	"splitpay/internal/adapter/http/handlers"
	"splitpay/internal/adapter/persistence/repository"
	"splitpay/internal/infrastructure/alerting"
	"splitpay/internal/infrastructure/config"
	"splitpay/internal/infrastructure/database"
	"splitpay/internal/infrastructure/payments"
	"splitpay/internal/usecase"
	"splitpay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ledger, balances := newStores(cfg)

	gateways, err := payments.NewRegistry(cfg, balances)
	if err != nil {
		log.Fatalf("payment gateways not configured: %v", err)
	}

	var alerts interfaces.IAlertPublisher = alerting.LogPublisher{}
	if cfg.AlertsQueueURL != "" {
		alerts = alerting.NewSQSPublisher(database.ConnectSQS(), cfg.AlertsQueueURL)
	}

	splitPaymentUseCase := usecase.NewSplitPaymentUseCase(ledger, gateways, alerts, nil, nil)
	splitPaymentHandler := handlers.NewSplitPaymentHandler(splitPaymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, splitPaymentHandler)
}

// newStores picks the ledger backend. Stored-value balances live in DynamoDB
// only, so store credit and gift cards are disabled on the SQL backends.
func newStores(cfg config.Config) (interfaces.ILedgerRepository, interfaces.IBalanceRepository) {
	switch cfg.LedgerBackend {
	case config.LedgerBackendPostgres, config.LedgerBackendSQLite:
		db, err := database.ConnectSQL(cfg.LedgerBackend, cfg.LedgerDSN, &repository.TransactionRow{})
		if err != nil {
			log.Fatalf("failed to open %s ledger: %v", cfg.LedgerBackend, err)
		}
		return repository.NewTransactionGormRepository(db), nil
	case config.LedgerBackendDynamoDB:
		ddb := database.ConnectDynamoDB()
		return repository.NewTransactionDynamoRepository(ddb, cfg.TransactionsTable),
			repository.NewBalanceDynamoRepository(ddb, cfg.BalancesTable)
	default:
		log.Fatalf("unsupported LEDGER_BACKEND %q", cfg.LedgerBackend)
		return nil, nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
