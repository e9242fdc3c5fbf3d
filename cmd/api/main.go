package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"

	"kakeibo-dashboard/internal/config"
	"kakeibo-dashboard/internal/handler"
	"kakeibo-dashboard/internal/middleware"
	"kakeibo-dashboard/internal/repository"
	"kakeibo-dashboard/internal/service"
	"kakeibo-dashboard/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	var minioClient *minio.Client
	minioClient, err = config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (receipt upload will not work)", err)
	}

	if cfg.DemoMode {
		log.Println("Demo mode enabled: notifications will not be persisted")
	}

	repos := repository.NewRepositories(db, cfg.DemoMode)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/logout", h.Auth.Logout)

	protected := v1.Group("", middleware.AuthRequired(authService))

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Post("/", h.Notification.Create)
	notifications.Delete("/", h.Notification.ClearAll)
	notifications.Get("/:id", h.Notification.Get)
	notifications.Put("/:id/read", h.Notification.MarkAsRead)
	notifications.Delete("/:id", h.Notification.Delete)

	transactions := protected.Group("/transactions")
	transactions.Post("/", h.Transaction.Create)
	transactions.Get("/", h.Transaction.List)
	transactions.Get("/:id", h.Transaction.Get)
	transactions.Put("/:id", h.Transaction.Update)
	transactions.Delete("/:id", h.Transaction.Delete)
	transactions.Post("/:id/receipts", h.Receipt.Upload)
	transactions.Get("/:id/receipts", h.Receipt.ListByTransaction)

	receipts := protected.Group("/receipts")
	receipts.Delete("/:id", h.Receipt.Delete)

	debts := protected.Group("/debts")
	debts.Post("/", h.Debt.Create)
	debts.Get("/", h.Debt.List)
	debts.Get("/plan", h.Debt.Plan)
	debts.Put("/:id", h.Debt.Update)
	debts.Delete("/:id", h.Debt.Delete)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/summary", h.Dashboard.Summary)
}
