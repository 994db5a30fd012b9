// Package routes handles the setup and configuration of API routes
package routes

import (
	"database/sql"

	_ "salonbook/docs" // Import swagger docs
	"salonbook/internal/api/handlers"
	"salonbook/internal/api/middleware"
	"salonbook/internal/auth"
	"salonbook/internal/config"
	"salonbook/internal/repository/postgres"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, db *sql.DB) *gin.Engine {
	// Create router
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	// Apply compression middleware globally
	r.Use(middleware.Compression(middleware.DefaultCompressionConfig()))

	// Initialize health handler for basic routes
	healthHandler := handlers.NewHealthHandler(db)

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Apply rate limiting to all other routes
	r.Use(middleware.NewRateLimiter(cfg).Middleware())

	// Initialize repositories
	salonRepo := postgres.NewSalonRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	availabilityRepo := postgres.NewAvailabilityRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)

	// Initialize services
	authService := auth.NewService(cfg)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, salonRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(salonRepo, availabilityRepo, authService, cfg)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	salonHandler := handlers.NewSalonHandler(salonRepo)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityRepo, salonRepo)
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		availabilityRepo,
		salonRepo,
		customerRepo,
		subscriptionRepo,
		cfg,
	)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Health check (no authentication required)
		v1.GET("/health", healthHandler.Health)

		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/register", authHandler.Register)
		}

		// Salon settings routes (requires owner authentication)
		salons := v1.Group("/salons")
		salons.Use(authMiddleware.OwnerRequired())
		{
			salons.PATCH("/timezone", salonHandler.UpdateTimezone)
		}

		// Customer routes (requires owner authentication)
		customers := v1.Group("/customers")
		customers.Use(authMiddleware.OwnerRequired())
		{
			customers.POST("", customerHandler.Create)
		}

		// Availability routes
		availability := v1.Group("/availability")
		{
			availability.GET("/:salonId", availabilityHandler.Get)
			availability.POST("", authMiddleware.OwnerRequired(), availabilityHandler.Replace)
			availability.PATCH("/:id", authMiddleware.OwnerRequired(), availabilityHandler.UpdateRule)
		}

		// Appointment routes
		appointments := v1.Group("/appointments")
		{
			appointments.GET("/available-slots", appointmentHandler.AvailableSlots)
			appointments.GET("/customer/:customerId", appointmentHandler.ListCustomer)
			appointments.GET("/owner", authMiddleware.OwnerRequired(), appointmentHandler.ListOwner)
			appointments.POST("", appointmentHandler.Create)
			appointments.PATCH("/:id/confirm", authMiddleware.OwnerRequired(), appointmentHandler.Confirm)
			appointments.PATCH("/:id/propose", authMiddleware.OwnerRequired(), appointmentHandler.Propose)
			appointments.PATCH("/:id/accept-proposal", appointmentHandler.AcceptProposal)
			appointments.PATCH("/:id/cancel", appointmentHandler.Cancel)
		}
	}

	return r
}
