package constants

import "time"

// Server Timeouts
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
)

// Reset Flow Timing
const (
	// DefaultSimulatedDelay stands in for the provider-side password update.
	DefaultSimulatedDelay = 500 * time.Millisecond

	// DefaultRedirectDelay is how long the success panel stays before redirecting.
	DefaultRedirectDelay = 3 * time.Second

	// DefaultLogFunctionTimeout bounds one invocation of the logging function.
	DefaultLogFunctionTimeout = 10 * time.Second
)

// Maintenance
const (
	LogMaintenanceInterval = 1 * time.Hour
	LogMaintenanceTimeout  = 5 * time.Minute
	LogRotationInterval    = 24 * time.Hour
)

// Operation Durations
const (
	CACHEControlMaxAge = 300 // in seconds
)
