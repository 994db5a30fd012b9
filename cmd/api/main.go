// Package main provides the entry point for the SalonBook API server
// @title SalonBook API
// @version 1.0
// @description Appointment booking and availability API for salons.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication
// @Security BearerAuth
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"salonbook/internal/api/routes"
	"salonbook/internal/config"
	"salonbook/internal/database"
	"salonbook/internal/email"
	"salonbook/internal/reminder"
	"salonbook/internal/repository/postgres"
	"salonbook/internal/validation"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	// Structured logging to stdout
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	// Load environment file
	if err := godotenv.Load(*envFile); err != nil && *envFile == ".env" {
		log.Warn().Err(err).Msg("no env file loaded")
	}

	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize validators
	validation.Initialize()

	// Setup routes
	router := routes.SetupRoutes(cfg, db)

	// Reminder sweep runs until shutdown
	reminderCtx, cancelReminder := context.WithCancel(context.Background())
	defer cancelReminder()

	emailService := email.NewService(cfg.Email)
	defer emailService.Close()

	reminderManager := reminder.NewManager(
		cfg.Reminder,
		postgres.NewAppointmentRepository(db),
		postgres.NewSalonRepository(db),
		emailService,
	)
	go func() {
		if err := reminderManager.Start(reminderCtx); err != nil {
			log.Error().Err(err).Msg("reminder scheduler stopped")
		}
	}()

	// Convert port string to int
	port, err := strconv.Atoi(cfg.API.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid port number")
	}

	// Create server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")
	cancelReminder()

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
