// Package server provides HTTP server implementation for the HideMe auth screens.
// It handles routing, middleware configuration, and server lifecycle management.
//
// The server wires the reset orchestrator to the logging function client,
// renders the sign-in and reset screens, and mounts the password-reset
// logging function next to them. It handles graceful shutdown and periodic
// GDPR log maintenance.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/functions"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/handlers"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/middleware"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/service"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils/gdprlog"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/views"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// PageHandler serves the sign-in and reset screens
	PageHandler *handlers.PageHandler

	// PasswordHandler serves the strength and reset JSON endpoints
	PasswordHandler *handlers.PasswordHandler

	// LogPasswordReset is the password-reset logging function
	LogPasswordReset *functions.LogPasswordResetHandler
}

// Server represents the HTTP server for the HideMe auth screens.
// It encapsulates all server components and handles server lifecycle management,
// including initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// resetService orchestrates reset submissions
	resetService *service.PasswordResetService

	// httpServer is the underlying HTTP server
	httpServer *http.Server

	// gdprLogger handles GDPR-compliant logging
	gdprLogger *gdprlog.GDPRLogger
}

// NewServer creates a new server instance with all required components.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - A fully initialized Server instance ready to start
//   - An error if initialization of any component fails
//
// Components are built in dependency order: services, handlers, routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	s.setupServices()

	if err := s.setupHandlers(); err != nil {
		return nil, fmt.Errorf("failed to set up handlers: %w", err)
	}

	// Initialize GDPR logger if not already initialized by utils.InitLogger
	if err := s.setupGDPRLogging(); err != nil {
		log.Warn().Err(err).Msg("Failed to set up GDPR logging, falling back to standard logging")
	}

	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s, nil
}

// setupGDPRLogging reuses the logger created by utils.InitLogger, or creates one.
func (s *Server) setupGDPRLogging() error {
	if existing := utils.GetGDPRLogger(); existing != nil {
		s.gdprLogger = existing
		return nil
	}

	gdprLogger, err := gdprlog.NewGDPRLogger(&s.Config.GDPRLogging)
	if err != nil {
		return fmt.Errorf("failed to create GDPR logger: %w", err)
	}

	s.gdprLogger = gdprLogger
	utils.SetGDPRLogger(gdprLogger)

	log.Info().Msg("GDPR logging configured successfully")
	return nil
}

// setupServices builds the reset orchestrator over the logging function client.
func (s *Server) setupServices() {
	clientInfo := fmt.Sprintf("%s/%s", s.Config.App.Name, s.Config.App.Version)
	logClient := service.NewHTTPLogFunctionClient(&s.Config.LogFunction, clientInfo)

	s.resetService = service.NewPasswordResetService(logClient, &s.Config.Reset)
}

// setupHandlers initializes all HTTP request handlers.
//
// Returns:
//   - An error if the page templates fail to parse
func (s *Server) setupHandlers() error {
	renderer, err := views.NewRenderer(s.Config.App.Name)
	if err != nil {
		return err
	}

	s.Handlers = &Handlers{
		PageHandler:      handlers.NewPageHandler(renderer, s.resetService),
		PasswordHandler:  handlers.NewPasswordHandler(s.resetService),
		LogPasswordReset: functions.NewLogPasswordResetHandler(),
	}

	return nil
}

// Start starts the HTTP server and sets up signal handling for graceful shutdown.
// It blocks until the server fails or a shutdown signal is received.
//
// Returns:
//   - An error if the server fails to start or cannot stop gracefully
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
	defer signal.Stop(shutdown)

	maintenanceCtx, stopMaintenance := context.WithCancel(context.Background())
	defer stopMaintenance()
	s.SetupMaintenanceTasks(maintenanceCtx)

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
			// Shutdown the server immediately if graceful shutdown fails
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests.
//
// Parameters:
//   - ctx: Context with timeout for the shutdown operation
//
// Returns:
//   - An error if shutdown fails within the context timeout
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	if s.gdprLogger != nil {
		if err := s.gdprLogger.CleanupLogs(); err != nil {
			log.Warn().Err(err).Msg("Failed to clean up GDPR logs during shutdown")
		}
	}

	return nil
}

// SetupMaintenanceTasks starts the periodic log maintenance worker.
// It runs every constants.LogMaintenanceInterval until ctx is done.
func (s *Server) SetupMaintenanceTasks(ctx context.Context) {
	ticker := time.NewTicker(constants.LogMaintenanceInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runMaintenance(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// runMaintenance performs one maintenance pass.
func (s *Server) runMaintenance(ctx context.Context) {
	if s.gdprLogger == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, constants.LogMaintenanceTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.gdprLogger.CleanupLogs()
	}()

	select {
	case err := <-done:
		middleware.LogAndContinueOnError(err, "Failed to clean up expired GDPR logs")
	case <-ctx.Done():
		middleware.LogAndContinueOnError(ctx.Err(), "GDPR log cleanup did not finish in time")
	}
}
