// Package server provides the HTTP server implementation for the LexAid API.
// It handles routing, middleware configuration, and server lifecycle management.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/lexaidhq/lexaid-backend/internal/auth"
	"github.com/lexaidhq/lexaid-backend/internal/config"
	"github.com/lexaidhq/lexaid-backend/internal/constants"
	"github.com/lexaidhq/lexaid-backend/internal/database"
	"github.com/lexaidhq/lexaid-backend/internal/handlers"
	"github.com/lexaidhq/lexaid-backend/internal/repository"
	"github.com/lexaidhq/lexaid-backend/internal/service"
	"github.com/lexaidhq/lexaid-backend/migrations"
	"github.com/lexaidhq/lexaid-backend/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// AuthHandler manages authentication-related endpoints
	AuthHandler *handlers.AuthHandler

	// UserHandler manages user profile and account endpoints
	UserHandler *handlers.UserHandler
}

// Server represents the API server for the LexAid application. It encapsulates
// all server components and handles lifecycle management, including
// initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// router handles HTTP routing
	router chi.Router

	// jwtService issues and validates tokens
	jwtService *auth.JWTService

	// userRepo provides access to user data
	userRepo repository.UserRepository

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// Initialization follows dependency order: database, auth providers,
// repositories, services, handlers, routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	s.jwtService = auth.NewJWTService(&cfg.JWT)
	s.userRepo = repository.NewUserRepository(s.Db)

	authService := service.NewAuthService(s.userRepo, s.jwtService)
	userService := service.NewUserService(s.userRepo)

	s.Handlers = &Handlers{
		AuthHandler: handlers.NewAuthHandler(authService),
		UserHandler: handlers.NewUserHandler(userService),
	}

	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase initializes the database connection and runs migrations.
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if s.Config.App.IsDevelopment() {
		seeder := scripts.NewSeeder(db)
		if err := seeder.SeedDatabase(context.Background()); err != nil {
			// Seeding failures are not fatal; the demo account is a convenience.
			log.Warn().Err(err).Msg("Database seeding failed")
		}
	}

	return nil
}

// Start starts the HTTP server and blocks until a shutdown signal or a server
// error. On SIGINT or SIGTERM it shuts down gracefully, waiting for in-flight
// requests up to the configured timeout.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, completing in-flight requests and
// closing the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}
