// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the application.
// These constants provide sensible defaults for configuration settings and establish
// boundaries for resource usage. Changes to these values change what the screens
// show and how long the reset flow takes.
package constants

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultAppName is the application name attached to every log line.
	DefaultAppName = "hideme-auth"

	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultFunctionPort is the default port of the standalone logging function.
	DefaultFunctionPort = 54321

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultSanitizationLevel is the default masking level for personal data in the standard log.
	DefaultSanitizationLevel = "medium"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Request Limits
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB in bytes
)

// Password Strength define the thresholds of the strength evaluator.
const (
	// MinPasswordLength is the character count that satisfies the length requirement.
	MinPasswordLength = 8

	// StrengthRequirementCount is the number of requirements a password is scored against.
	StrengthRequirementCount = 4
)

// Reset Flow Defaults define what the password-reset view does after a valid submission.
const (
	// DefaultPlaceholderEmail is sent to the logging function in place of a session email.
	DefaultPlaceholderEmail = "user@example.com"

	// DefaultRedirectTarget is where the success panel sends the browser.
	DefaultRedirectTarget = LoginPath

	// DefaultErrorMessage is shown when a failed call carries no message of its own.
	DefaultErrorMessage = "An error occurred"
)

// Default GDPR Retention Periods define how long different categories of logs are kept.
const (
	// StandardLogRetentionDays is the number of days to retain standard logs.
	StandardLogRetentionDays = 90

	// PersonalDataRetentionDays is the number of days to retain logs with personal data.
	PersonalDataRetentionDays = 30

	// DefaultStandardLogPath is where standard logs are written.
	DefaultStandardLogPath = "./logs/standard"

	// DefaultPersonalLogPath is where logs containing personal data are written.
	DefaultPersonalLogPath = "./logs/personal"
)
