package routes

import (
	"time"

	"permitdesk/internal/adapters/http/handlers"
	"permitdesk/internal/adapters/http/middleware"
	"permitdesk/internal/adapters/persistence/repositories"
	"permitdesk/internal/config"
	"permitdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers, and registers every
// route. All dependencies are constructed here and passed down
// explicitly; nothing reaches for package-level state.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	workerRepo := repositories.NewWorkerRepository(db)
	areaRepo := repositories.NewAreaRepository(db)
	requestRepo := repositories.NewLeaveRequestRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)

	// Services
	authService := services.NewAuthService(workerRepo, refreshTokenRepo, cfg)
	workerService := services.NewWorkerService(workerRepo, areaRepo, requestRepo, cfg)
	areaService := services.NewAreaService(areaRepo)
	notifyService := services.NewNotificationService(cfg)
	requestService := services.NewRequestService(requestRepo, workerRepo, notifyService)
	receiptService := services.NewReceiptService(requestRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	authHandler := handlers.NewAuthHandler(authService)
	workerHandler := handlers.NewWorkerHandler(workerService)
	areaHandler := handlers.NewAreaHandler(areaService)
	requestHandler := handlers.NewRequestHandler(requestService, receiptService)
	optionsHandler := handlers.NewOptionsHandler()

	// Health check & root
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api/v1")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", middleware.AuthMiddleware(cfg), authHandler.Logout)
	auth.Post("/logout-all", middleware.AuthMiddleware(cfg), authHandler.LogoutAll)
	auth.Get("/profile", middleware.AuthMiddleware(cfg), authHandler.Profile)

	// Everything below requires a verified identity
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	// Fixed catalogs
	protected.Get("/options/reasons", middleware.CatalogCache(), optionsHandler.Reasons)

	// Areas
	protected.Get("/areas", areaHandler.List)

	// Worker management (admin only)
	workers := protected.Group("/workers", middleware.AdminOnly())
	workers.Get("/", workerHandler.List)
	workers.Post("/", workerHandler.Create)
	workers.Put("/:id", workerHandler.Update)
	workers.Delete("/:id", workerHandler.Delete)

	// Leave requests
	requests := protected.Group("/requests")
	requests.Post("/", requestHandler.Create)
	requests.Get("/mine", middleware.PrivateCacheHeaders(30*time.Second), requestHandler.ListMine)
	requests.Get("/area", middleware.CoordinatorOrAdmin(), requestHandler.ListArea)
	requests.Put("/:id/status", middleware.AdminOnly(), requestHandler.Decide)
	requests.Get("/:id/receipt", middleware.CoordinatorOrAdmin(), middleware.NoCacheHeaders(), requestHandler.Receipt)
}
