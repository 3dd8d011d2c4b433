package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"gamestore/internal/database"
	"gamestore/internal/handlers"
	"gamestore/internal/middleware"
	"gamestore/internal/repositories"
	"gamestore/internal/services"
	"gamestore/pkg/rabbitmq"
)

// repoSet bundles one repository per entity type.
type repoSet struct {
	users     repositories.UserRepository
	games     repositories.GameRepository
	tags      repositories.TagRepository
	wishlists repositories.WishlistRepository
	purchases repositories.PurchaseRepository
	reviews   repositories.ReviewRepository
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	databaseURL := viper.GetString("DATABASE_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize RabbitMQ Client ---
	// Optional: without a broker URL, purchase events are simply skipped.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, purchase events disabled")
	}

	// --- Initialize Repositories ---
	// Postgres when DATABASE_URL is set, the in-memory store otherwise.
	var repos repoSet
	if databaseURL != "" {
		db, err := database.Connect(databaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		repos = repoSet{
			users:     repositories.NewGORMUserRepository(db),
			games:     repositories.NewGORMGameRepository(db),
			tags:      repositories.NewGORMTagRepository(db),
			wishlists: repositories.NewGORMWishlistRepository(db),
			purchases: repositories.NewGORMPurchaseRepository(db),
			reviews:   repositories.NewGORMReviewRepository(db),
		}
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage")
		store := repositories.NewMemoryStore()
		repos = repoSet{
			users:     repositories.NewMockUserRepository(store),
			games:     repositories.NewMockGameRepository(store),
			tags:      repositories.NewMockTagRepository(store),
			wishlists: repositories.NewMockWishlistRepository(store),
			purchases: repositories.NewMockPurchaseRepository(store),
			reviews:   repositories.NewMockReviewRepository(store),
		}
	}

	// --- Initialize Services ---
	locker := services.NewUserLocker()
	gameService := services.NewGameService(repos.games, repos.tags, repos.purchases, repos.reviews)
	tagService := services.NewTagService(repos.tags)
	userService := services.NewUserService(repos.users, repos.games, locker)
	wishlistService := services.NewWishlistService(repos.wishlists, repos.users, repos.games)
	purchaseService := services.NewPurchaseService(repos.purchases, repos.users, repos.games, repos.wishlists, locker, mqClient)
	reviewService := services.NewReviewService(repos.reviews, repos.users, repos.games)
	authService := services.NewAuthService(userService, jwtSecret)

	// --- Initialize Handlers ---
	gameHandler := handlers.NewGameHandler(gameService)
	tagHandler := handlers.NewTagHandler(tagService)
	userHandler := handlers.NewUserHandler(userService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Initialize Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Authentication routes (public)
	authHandler.RegisterRoutes(apiV1)

	// Protected routes (require JWT authentication)
	protected := apiV1.Group("", middleware.AuthRequired(authService))
	gameHandler.RegisterRoutes(protected)
	tagHandler.RegisterRoutes(protected)
	userHandler.RegisterRoutes(protected)
	wishlistHandler.RegisterRoutes(protected)
	purchaseHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(protected)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for purchase events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received Purchase Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				// Downstream processing (receipts, library sync) would
				// hang off this handler.
				return nil
			}
			if consumerErr := mqClient.ConsumePurchaseEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
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
