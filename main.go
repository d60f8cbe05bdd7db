package main

import (
	"log"
	"time"

	"github.com/wallasazevedo60-ux/canta-liga/config"
	"github.com/wallasazevedo60-ux/canta-liga/database"
	"github.com/wallasazevedo60-ux/canta-liga/handlers"
	"github.com/wallasazevedo60-ux/canta-liga/middleware"
	"github.com/wallasazevedo60-ux/canta-liga/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	db, err := database.Init(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Seed bootstrap data outside production
	if !cfg.IsProduction() {
		if err := database.Seed(db); err != nil {
			log.Printf("Warning: seeding failed: %v", err)
		}
	}

	// Services
	authService := services.NewAuthService(db)
	sessionService := services.NewSessionService(db, cfg.Session.TTL)
	birdService := services.NewBirdService(db)
	tournamentService := services.NewTournamentService(db)

	sessionService.StartCleanup(time.Hour)
	defer sessionService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(cfg),
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
	app.Use(middleware.RateLimit())

	// API routes
	api := handlers.API{
		Auth: handlers.NewAuthHandler(authService, sessionService,
			cfg.Session.CookieName, cfg.IsProduction(), cfg.Session.TTL),
		Birds:       handlers.NewBirdHandler(birdService),
		Tournaments: handlers.NewTournamentHandler(tournamentService, birdService),
		Sessions:    sessionService,
		CookieName:  cfg.Session.CookieName,
	}
	api.Register(app)

	// Static client bundle
	app.Static("/", cfg.Server.StaticDir)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	log.Printf("Canta Liga server starting on port %s", cfg.Server.Port)
	log.Printf("Environment: %s", cfg.Env)

	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		// Don't expose internal errors in production
		if cfg.IsProduction() && code == fiber.StatusInternalServerError {
			message = "An error occurred. Please try again later."
		}

		return c.Status(code).JSON(fiber.Map{"message": message})
	}
}
