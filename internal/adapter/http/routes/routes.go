package routes

import (
	_ "bransfer_gateway/docs"
	"bransfer_gateway/internal/adapter/http/handlers"
	"bransfer_gateway/internal/adapter/persistence/postgres"
	"bransfer_gateway/internal/adapter/persistence/repository"
	"bransfer_gateway/internal/config"
	"bransfer_gateway/internal/infrastructure/database"
	"bransfer_gateway/internal/infrastructure/logging"
	"bransfer_gateway/internal/infrastructure/mailer"
	"bransfer_gateway/internal/infrastructure/payments"
	"bransfer_gateway/internal/usecase"
	"bransfer_gateway/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	orders, carts, closeStores, err := newStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect order store", "store", cfg.OrderStore, "err", err)
	}
	defer closeStores()

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg, orders, carts, logger)

	logger.Infow("Starting Bransfer gateway", "addr", cfg.HTTPAddr, "store", cfg.OrderStore, "available", cfg.Gateway.IsAvailable())
	if err := router.Run(cfg.HTTPAddr); err != nil {
		logger.Fatalw("Failed to startup the application", "err", err)
	}
}

func newStores(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) (interfaces.IOrderStore, interfaces.ICartStore, func(), error) {
	switch cfg.OrderStore {
	case config.StorePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxIdleTime)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		logger.Infow("Using postgres order store")
		return postgres.NewOrderStore(pool), postgres.NewCartStore(pool), pool.Close, nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettingsFromEnv())
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Infow("Using dynamodb order store", "orders_table", cfg.OrdersTable, "carts_table", cfg.CartsTable)
		return repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable), repository.NewCartDynamoRepository(ddb, cfg.CartsTable), func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported order store %q", cfg.OrderStore)
	}
}

func getRoutes(router *gin.Engine, cfg config.Config, orders interfaces.IOrderStore, carts interfaces.ICartStore, logger *zap.SugaredLogger) {
	notifier := mailer.NewNotifier(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
		To:       cfg.AdminEmail,
		Enabled:  cfg.IPNNotification,
	}, logger)

	var paymentGateway interfaces.IPaymentGateway
	bransferGateway, err := payments.NewBransferGateway(cfg.APIURL, cfg.Gateway.APIToken, cfg.HTTPTimeout, logger, payments.WithMockMode(cfg.PaymentMock))
	if err != nil {
		logger.Warnw("Bransfer gateway not configured", "err", err)
	} else {
		paymentGateway = bransferGateway
	}
	if cfg.Gateway.NeedsSetup() {
		logger.Warnw("Bransfer gateway needs setup: application id or api token is empty")
	}

	orderUseCase := usecase.NewOrderUseCase(orders, cfg.Gateway)
	initiatorUseCase := usecase.NewPaymentInitiatorUseCase(orders, paymentGateway, cfg.Gateway, logger)
	ipnUseCase := usecase.NewIPNUseCase(orders, carts, notifier, cfg.Gateway, logger)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(initiatorUseCase, logger)
	gatewayHandler := handlers.NewGatewayHandler(cfg.Gateway)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGatewayRoutes(v1, gatewayHandler)
	addOrderRoutes(v1, orderHandler, checkoutHandler)

	// The enabled flag only hides the gateway at checkout; notifications for
	// payments already started must still be accepted.
	if !cfg.Gateway.IsValidForUse() {
		logger.Warnw("Store currency not supported by Bransfer; IPN listener not registered", "currency", cfg.Gateway.StoreCurrency)
		return
	}
	if cfg.WebhookSecret == "" {
		logger.Warnw("BRANSFER_WEBHOOK_SECRET is empty; IPN notifications are accepted without signature")
	}
	addIPNRoutes(router, handlers.NewIPNHandler(ipnUseCase, cfg.WebhookSecret, logger))
}

func setMiddlewares(router *gin.Engine, logger *zap.SugaredLogger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorw("Recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatus(500)
	}))
}
