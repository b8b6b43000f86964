// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines general-purpose constants related to routing,
// form fields and request context. These constants keep the page routes, the JSON
// API and the logging function consistent with each other and with the templates
// that link between them.
package constants

// Base Routes define the root URL paths for different parts of the service.
const (
	// RootPath is the landing path; it redirects to the sign-in view.
	RootPath = "/"

	// APIBasePath is the root path prefix for all JSON API endpoints.
	APIBasePath = "/api"

	// HealthPath is the endpoint for health checks and system status.
	HealthPath = "/health"

	// VersionPath reports the running version and environment.
	VersionPath = "/version"

	// MetricsPath exposes Prometheus metrics.
	MetricsPath = "/metrics"

	// RoutesPath describes the available routes.
	RoutesPath = "/api/routes"

	// StaticPath serves the embedded stylesheet and script.
	StaticPath = "/static"
)

// Page Routes define the server-rendered authentication screens.
const (
	// LoginPath is the sign-in view.
	LoginPath = "/auth/login"

	// ResetPasswordPath is the password-reset view.
	ResetPasswordPath = "/auth/reset-password"
)

// API Routes define the JSON endpoints backing the screens.
const (
	// PasswordStrengthPath evaluates a candidate password.
	PasswordStrengthPath = "/api/password/strength"

	// PasswordResetPath submits a reset through the orchestrator.
	PasswordResetPath = "/api/password/reset"
)

// Function Routes define the hosted-function style endpoints.
const (
	// FunctionsBasePath is the prefix under which functions are mounted.
	FunctionsBasePath = "/functions/v1"

	// LogPasswordResetFunction is the name of the password-reset logging function.
	LogPasswordResetFunction = "log-password-reset"

	// LogPasswordResetPath is the full path of the password-reset logging function.
	LogPasswordResetPath = FunctionsBasePath + "/" + LogPasswordResetFunction
)

// Form Field Names define the input names shared by templates, decoders and
// validation error details.
const (
	// FieldEmail is the sign-in email input.
	FieldEmail = "email"

	// FieldPassword is the password input on both screens.
	FieldPassword = "password"

	// FieldConfirmPassword is the confirmation input on the reset screen.
	FieldConfirmPassword = "confirmPassword"
)

// Context Keys define the names used for request-scoped values in logs.
const (
	// RequestIDContextKey is the log field and context key for request IDs.
	RequestIDContextKey = "request_id"

	// EventIDContextKey is the log field for logged reset events.
	EventIDContextKey = "event_id"
)

// Form State Phases are the discriminators of the reset form state variant.
const (
	PhaseIdle    = "idle"
	PhaseLoading = "loading"
	PhaseSuccess = "success"
	PhaseError   = "error"
)

// Submission Outcomes label reset submissions in metrics.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
)

// Function Results label logging-function invocations in metrics.
const (
	ResultLogged    = "logged"
	ResultFailed    = "failed"
	ResultPreflight = "preflight"
)

// View Names identify the rendered pages.
const (
	ViewLogin         = "login"
	ViewResetPassword = "reset_password"
)
