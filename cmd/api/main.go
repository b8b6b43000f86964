// Package main is the entry point for the HideMe auth screens server. It serves
// the sign-in and password-reset screens, their JSON endpoints, and the
// password-reset logging function.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/server"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
)

// Version information is set during build time through linker flags.
var (
	// version represents the release version of the application.
	version = "dev"

	// commit is the git commit hash from which the application was built.
	commit = "none"

	// buildDate is the timestamp when the application was built.
	buildDate = "unknown"
)

// init loads environment variables from a .env file if present.
func init() {
	// Not finding a .env file is a non-fatal condition, as configuration
	// might be provided by other means.
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found or couldn't be loaded")
	}
}

func main() {
	var (
		configPath  string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "./configs/config.yaml", "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("HideMe Auth Server\nVersion: %s\nCommit: %s\nBuild Date: %s\n", version, commit, buildDate)
		os.Exit(0)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Override version from build if available (not in dev mode)
	if version != "dev" {
		cfg.App.Version = version
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	utils.InitLogger(ctx, cfg)

	log.Info().
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Msg("Starting HideMe Auth Server")

	utils.InitValidator()

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	// Blocks until a shutdown signal is received
	if err := srv.Start(); err != nil {
		log.Error().Err(err).Msg("Server error")
		cancel()
		os.Exit(1)
	}
}
