package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"
)

// fallbackDatabaseName is used when DATABASE_NAME is not configured.
const fallbackDatabaseName = "ecommerce"

var errNoDatabaseURL = errors.New("DATABASE_URL is not set")

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Connect to MongoDB ---
	// The store is an optional collaborator: when it is unreachable the
	// service still starts and read endpoints answer empty results.
	client, db, err := connectDatabase(cfg)
	if err != nil {
		log.Printf("Running without database: %v", err)
	} else {
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("Running without event publishing: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	// --- Initialize Repositories ---
	var productRepo repositories.ProductRepository
	if db != nil {
		productRepo = repositories.NewMongoProductRepository(db)
	}

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo, publisher)
	diagnosticsService := services.NewDiagnosticsService(db, cfg)

	// --- Seed sample data (on first run) ---
	// Seeding is best effort: failures are logged and never retried.
	if productRepo != nil {
		seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := productService.SeedIfEmpty(seedCtx); err != nil {
			log.Printf("Skipping catalog seeding: %v", err)
		}
		cancel()
	}

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	healthHandler := handlers.NewHealthHandler(diagnosticsService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	// Any origin, all methods and headers, credentials allowed. The origin
	// func form is required for credentialed wildcard origins.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	// --- API Routes ---
	healthHandler.RegisterRoutes(app)
	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	// --- Start HTTP Server ---
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// connectDatabase establishes the MongoDB connection and verifies it with a
// ping. It returns an error when DATABASE_URL is missing or the store does
// not answer, in which case the service runs in degraded mode.
func connectDatabase(cfg config.Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, errNoDatabaseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	name := cfg.DatabaseName
	if name == "" {
		name = fallbackDatabaseName
	}
	return client, client.Database(name), nil
}
