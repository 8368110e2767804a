package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"whatstock/internal/handlers"
	"whatstock/internal/middleware"
	"whatstock/internal/models"
	"whatstock/internal/repositories"
	"whatstock/internal/services"
	"whatstock/pkg/rabbitmq"

	"github.com/spf13/viper"
	amqp "github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// eventConsumer abstracts the queue client so the consumer loop can be
// exercised without a live broker.
type eventConsumer interface {
	ConsumeItemEvents(messageHandler func(msg amqp.Delivery) error) error
}

// startEventConsumer drains the inventory event queue in a goroutine and
// logs each delivery. A consumer that fails to register is reported and
// the app runs on without one.
func startEventConsumer(client eventConsumer) {
	go func() {
		log.Println("Starting RabbitMQ consumer for inventory events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received inventory event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if err := client.ConsumeItemEvents(messageHandler); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}()
}

// NewApp wires configuration, storage, services and routes into a Fiber
// app. The item store backend is selected with DATABASE_DRIVER: "memory"
// (the default), "sqlite" or "postgres". Event publishing is enabled only
// when RABBITMQ_URL is set.
func NewApp() (*fiber.App, error) {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "memory")
	viper.SetDefault("DATABASE_DSN", "whatstock.db")
	viper.SetDefault("JWT_SECRET", "whatstock_dev_secret")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables

	// --- Initialize Repositories ---
	var itemRepo repositories.ItemRepository
	var userRepo repositories.UserRepository

	driver := viper.GetString("DATABASE_DRIVER")
	switch driver {
	case "memory":
		itemRepo = repositories.NewMemoryItemRepository()
		userRepo = repositories.NewMemoryUserRepository()
	case "sqlite", "postgres":
		dsn := viper.GetString("DATABASE_DSN")
		var dialector gorm.Dialector
		if driver == "sqlite" {
			dialector = sqlite.Open(dsn)
		} else {
			dialector = postgres.Open(dsn)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&models.InventoryItem{}, &models.User{}); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		itemRepo = repositories.NewGORMItemRepository(db)
		userRepo = repositories.NewGORMUserRepository(db)
	default:
		return nil, fmt.Errorf("unknown DATABASE_DRIVER %q", driver)
	}

	// Shipping progress is ephemeral by design and always lives in memory.
	progressRepo := repositories.NewMemoryProgressRepository()

	// --- Initialize RabbitMQ Client (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			// Event publishing is best-effort notification; the app runs
			// without it.
			log.Printf("Warning: failed to initialize RabbitMQ client: %v", err)
		} else {
			mqClient = client
			events = client
			startEventConsumer(client)
		}
	}

	// --- Initialize Services ---
	inventoryService := services.NewInventoryService(itemRepo, progressRepo, events)
	reportService := services.NewReportService(itemRepo, progressRepo)
	exportService := services.NewExportService(itemRepo)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))

	// --- Initialize Handlers ---
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(exportService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	inventoryHandler.RegisterRoutes(apiV1)
	reportHandler.RegisterRoutes(apiV1)
	exportHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1)
	apiV1.Get("/auth/me", middleware.AuthRequired(authService), authHandler.HandleMe)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"driver": driver,
		})
	})

	if mqClient != nil {
		app.Hooks().OnShutdown(func() error {
			return mqClient.Close()
		})
	}

	return app, nil
}

func main() {
	app, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
