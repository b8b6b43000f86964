package server

import (
	"context"

	"github.com/go-chi/chi/v5"
)

// ServerTestInterface defines methods required for server testing.
// It abstracts route setup, router access, lifecycle management and
// maintenance so tests can drive a server without binding a port.
type ServerTestInterface interface {
	// SetupRoutes configures the HTTP routes for the server
	SetupRoutes()

	// GetRouter returns the configured router for request handling
	GetRouter() chi.Router

	// Start begins listening for HTTP requests
	Start() error

	// Shutdown gracefully stops the server
	Shutdown(ctx context.Context) error

	// SetupMaintenanceTasks starts background maintenance until ctx is done
	SetupMaintenanceTasks(ctx context.Context)
}

var _ ServerTestInterface = (*Server)(nil)
