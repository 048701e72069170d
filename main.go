package main

import (
	"context"
	"os"
	"os/signal"
	"shop-backoffice/src/config"
	"shop-backoffice/src/controllers"
	"shop-backoffice/src/infrastructure"
	"shop-backoffice/src/infrastructure/courier"
	"shop-backoffice/src/infrastructure/log"
	"shop-backoffice/src/infrastructure/mongo"
	"shop-backoffice/src/infrastructure/rabbitmq"
	"shop-backoffice/src/services/catalog"
	courierHandlers "shop-backoffice/src/services/courier/handlers"
	"shop-backoffice/src/services/events"
	"shop-backoffice/src/services/order/domain"
	"shop-backoffice/src/services/order/domain/persistence"
	"shop-backoffice/src/services/order/invoice"
	"shop-backoffice/src/services/supplier"
	"syscall"
	"time"

	_ "shop-backoffice/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title        Shop Backoffice API
// @version      1.0
// @description  Inventory and order management back-office service
func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.NewLogger()

	configs, err := config.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "Failed to load configuration", err)
	}
	logger.Info(ctx, "Configuration loaded successfully")

	// Initialize MongoDB connection with health check
	client, err := mongo.GetMongoClient(configs)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal(ctx, "MongoDB ping failed", err)
	}
	logger.Info(ctx, "MongoDB connection successful")

	db := client.Database(configs.MongoDBDatabaseName)

	// Initialize repositories
	productRepository := catalog.NewProductRepository(db)
	supplierRepository := supplier.NewSupplierRepository(db)
	orderRepository := persistence.NewOrderRepository(db)

	// Initialize RabbitMQ service with health check
	rabbitmqService, err := rabbitmq.NewRabbitMQService(configs.RabbitMQHostName, configs.RabbitMQExchange,
		[]string{events.CourierBookingRequested})
	if err != nil {
		logger.Fatal(ctx, "Failed to create RabbitMQ service", err)
	}
	defer rabbitmqService.Close()

	if !rabbitmqService.IsHealthy() {
		logger.Fatal(ctx, "RabbitMQ connection is not healthy", nil)
	}
	logger.Info(ctx, "RabbitMQ connection successful")

	// Courier portal client keeps the API credentials server-side
	courierClient := courier.NewClient(configs.CourierBaseURL, configs.CourierAPIKey, configs.CourierSecretKey)

	// Create business services
	catalogService := catalog.NewCatalogService(logger, productRepository)
	supplierService := supplier.NewSupplierService(logger, supplierRepository)
	orderService := domain.NewOrderService(logger, rabbitmqService, orderRepository)
	invoiceRenderer := invoice.NewRenderer(invoice.DefaultCompanyInfo())

	// Courier booking worker and DLQ drain
	bookingHandler := courierHandlers.NewBookingRequestedEventHandler(courierClient, orderRepository, rabbitmqService, logger)
	bookingDLQHandler := courierHandlers.NewBookingDLQHandler(orderRepository, logger)

	eventListener := infrastructure.NewEventListener(rabbitmqService, logger)
	eventListener.RegisterHandler(events.CourierBookingRequested, bookingHandler)
	eventListener.RegisterHandler(events.CourierBookingRequestedDLQ, bookingDLQHandler)

	go func() {
		if err := eventListener.StartListening(ctx); err != nil {
			logger.Fatal(ctx, "Failed to start event listeners", err)
		}
	}()
	logger.Info(ctx, "Event listeners started successfully")

	// Create controllers
	orderController := controllers.NewOrderController(orderService, catalogService, invoiceRenderer)
	catalogController := controllers.NewCatalogController(catalogService)
	supplierController := controllers.NewSupplierController(supplierService)
	courierController := controllers.NewCourierController(courierClient)

	app := fiber.New(fiber.Config{
		ServerHeader: "Shop-Backoffice",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.Exception(c.UserContext(), "HTTP request error", err)
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Add middleware
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(_ string) bool { return true },
	}))
	app.Use(recover.New())
	app.Use(controllers.RequestLogger(logger))

	// Add routes
	app.Get("/api/swagger/*", fiberSwagger.WrapHandler)
	app.Get("/api/healthCheck", func(c *fiber.Ctx) error {
		if err := client.Ping(c.UserContext(), nil); err != nil {
			logger.Exception(c.UserContext(), "Health check: MongoDB ping failed", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  "database connection failed",
			})
		}

		if !rabbitmqService.IsHealthy() {
			logger.Warn(c.UserContext(), "Health check: RabbitMQ connection is unhealthy")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  "message queue connection failed",
			})
		}

		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})

	orderController.Route(app)
	catalogController.Route(app)
	supplierController.Route(app)
	courierController.Route(app)

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	serverShutdown := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Starting server on port "+configs.ServerPort)
		if err := app.Listen(":" + configs.ServerPort); err != nil {
			serverShutdown <- err
		}
	}()

	select {
	case <-c:
		logger.Info(ctx, "Shutdown signal received, shutting down gracefully...")
	case err := <-serverShutdown:
		logger.Exception(ctx, "Server error occurred", err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Exception(ctx, "Server shutdown error", err)
	}

	logger.Info(ctx, "Server shutdown complete")
}
