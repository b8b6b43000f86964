// Package main runs the password-reset logging function on its own, the way
// it is deployed as a hosted function. It serves a single route.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/functions"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/middleware"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found or couldn't be loaded")
	}
}

func main() {
	var (
		configPath string
		port       int
	)

	flag.StringVar(&configPath, "config", "./configs/config.yaml", "Path to configuration file")
	flag.IntVar(&port, "port", constants.DefaultFunctionPort, "Port to listen on")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	utils.InitLogger(ctx, cfg)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Handle(constants.LogPasswordResetPath, functions.NewLogPasswordResetHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		middleware.LogAndContinueOnError(srv.Shutdown(shutdownCtx), "Failed to stop function server")
	}()

	log.Info().
		Str("address", srv.Addr).
		Str("function", constants.LogPasswordResetFunction).
		Msg("Serving logging function")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Function server error")
		stop()
		os.Exit(1)
	}
	<-stopped
}
