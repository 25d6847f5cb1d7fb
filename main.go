package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"frecha-bot/bot"
	"frecha-bot/config"
	"frecha-bot/handlers"
	"frecha-bot/middleware"
	"frecha-bot/models"
	"frecha-bot/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := services.InitMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer db.Disconnect(ctx)

	// Initialize services
	services.InitServices(db, cfg.DatabaseName)

	// Seed the dashboard admin account on first start
	if err := services.EnsureAdminUser(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("Failed to seed admin user", "error", err)
		// Continue anyway - chat serving does not depend on the dashboard
	}

	// Wire the conversational engine
	notifier := services.NewNotifier(cfg.MailAPIURL, cfg.MailAPIKey, cfg.AdminEmail)
	catalog := bot.NewCatalog()
	responder := bot.NewResponder(catalog)
	leadCapture := bot.NewLeadCapture(catalog, services.LeadStore{}, notifier)
	handlers.InitBot(responder, leadCapture)

	// Start background workers
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	services.StartSessionCleanup(workerCtx)
	services.StartChatSessionCleanup(workerCtx)
	services.StartDailyReportScheduler(workerCtx, notifier, cfg.ReportHour)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Public routes: chat widget and conversational endpoints
	app.Get("/", handlers.Home)
	app.Post("/chat", handlers.Chat)
	app.Post("/lead", handlers.CaptureLead)

	// Auth routes
	auth := app.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Post("/logout", handlers.Logout)
	auth.Get("/me", middleware.RequireAuth, handlers.GetCurrentUser)

	// Admin dashboard routes (protected)
	admin := app.Group("/admin", middleware.RequireAuth)
	admin.Get("/leads", handlers.GetLeads)
	admin.Put("/leads/:leadID/status", middleware.RequireRole(models.RoleAgent), handlers.UpdateLeadStatus)
	admin.Get("/conversations", handlers.GetConversations)
	admin.Get("/conversations/:sessionID", handlers.GetSessionConversation)
	admin.Get("/stats", handlers.GetStats)

	// Live conversation feed
	admin.Get("/ws", handlers.WebSocketUpgrade, websocket.New(handlers.HandleWebSocket))

	// Health check
	app.Get("/health", handlers.Health)

	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
