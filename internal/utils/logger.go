package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils/gdprlog"
)

// Global GDPR logger instance
var gdprLogger *gdprlog.GDPRLogger

// InitLogger initializes the application logger with the given configuration.
// Log rotation runs until ctx is done.
func InitLogger(ctx context.Context, cfg *config.AppConfig) {
	// Set global log level, defaulting to info if invalid
	if err := SetLogLevel(cfg.Logging.Level); err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Initialize GDPR Logger first
	var gdprLogErr error
	gdprLogger, gdprLogErr = gdprlog.NewGDPRLogger(&cfg.GDPRLogging)
	if gdprLogErr != nil {
		// Fall back to standard logging if GDPR logger fails
		fmt.Fprintf(os.Stderr, "Failed to initialize GDPR logger: %v\n", gdprLogErr)
		setupStandardLogger(cfg)
		log.Info().Str("level", GetLogLevel()).Msg("Logger initialized")
		return
	}

	// Set up log rotation for GDPR logs
	gdprLogger.SetupLogRotation(ctx)

	// Override the global logger to maintain compatibility
	log.Logger = createGDPRCompatibleLogger(cfg)

	retention := gdprLogger.GetLogRetentionConfig()
	log.Info().
		Str("level", GetLogLevel()).
		Int("standard_retention_days", retention.StandardLogRetentionDays).
		Int("personal_retention_days", retention.PersonalDataRetentionDays).
		Msg("Logger initialized")
}

// GetGDPRLogger returns the global GDPR logger instance
func GetGDPRLogger() *gdprlog.GDPRLogger {
	return gdprLogger
}

// SetGDPRLogger sets the global GDPR logger instance
func SetGDPRLogger(logger *gdprlog.GDPRLogger) {
	gdprLogger = logger
}

// setupStandardLogger configures the standard zerolog logger (fallback)
func setupStandardLogger(cfg *config.AppConfig) {
	// Configure logger output format
	var output io.Writer = os.Stdout
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
			NoColor:    false, // Enable colors for development
		}
	}

	// Set global logger
	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Logger()
}

// createGDPRCompatibleLogger creates a zerolog.Logger that forwards to GDPR logger
func createGDPRCompatibleLogger(cfg *config.AppConfig) zerolog.Logger {
	return zerolog.New(gdprLogHook{}).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Logger()
}

// gdprLogHook is a writer that forwards logs to GDPR logger
type gdprLogHook struct{}

// Write implements io.Writer to handle log entries
func (h gdprLogHook) Write(p []byte) (n int, err error) {
	// Parse the JSON log entry
	var logEntry map[string]interface{}
	err = json.Unmarshal(p, &logEntry)
	if err != nil {
		// If we can't parse the JSON, just log the error and let logging continue
		if gdprLogger != nil {
			gdprLogger.Error("Failed to parse log entry", err, nil)
		}
		return len(p), nil // Don't return error to prevent breaking the logger
	}

	// Extract level and message
	level, _ := logEntry["level"].(string)
	message, _ := logEntry["message"].(string)
	delete(logEntry, "level")
	delete(logEntry, "message")

	// Extract time if present
	if _, ok := logEntry["time"].(string); ok {
		delete(logEntry, "time")
	}

	// Forward to appropriate GDPR logger method based on level
	switch level {
	case "debug":
		gdprLogger.Debug(message, logEntry)
	case "info":
		gdprLogger.Info(message, logEntry)
	case "warn":
		gdprLogger.Warn(message, logEntry)
	case "error":
		var logErr error
		if errMsg, ok := logEntry["error"].(string); ok {
			logErr = errors.New(errMsg)
			delete(logEntry, "error")
		}
		gdprLogger.Error(message, logErr, logEntry)
	case "fatal", "panic":
		gdprLogger.Log(zerolog.FatalLevel, message, logEntry)
	}

	return len(p), nil
}

// LogHTTPRequest logs an HTTP request with request details
func LogHTTPRequest(requestID, method, path, remoteAddr, userAgent string, statusCode int, latency time.Duration) {
	// Create fields for GDPR logger
	fields := map[string]interface{}{
		constants.RequestIDContextKey: requestID,
		"method":                      method,
		"path":                        path,
		"remote_addr":                 remoteAddr,
		"user_agent":                  userAgent,
		"status":                      statusCode,
		"latency":                     latency,
	}

	// Only log some paths at debug level to reduce noise
	if path == constants.HealthPath || path == constants.MetricsPath || strings.HasPrefix(path, constants.StaticPath+"/") {
		if zerolog.GlobalLevel() != zerolog.DebugLevel {
			return // Skip logging entirely for high-volume endpoints in non-debug mode
		}
		if gdprLogger != nil {
			gdprLogger.Debug("HTTP Request", fields)
			return
		}
	}

	// Determine log level and log either with GDPR logger or zerolog
	if gdprLogger != nil {
		// Elevate error responses to warning/error level
		if statusCode >= 400 && statusCode < 500 {
			gdprLogger.Warn("HTTP Request", fields)
		} else if statusCode >= 500 {
			gdprLogger.Error("HTTP Request", nil, fields)
		} else if strings.HasPrefix(path, constants.APIBasePath) {
			// Log API requests at info level
			gdprLogger.Info("HTTP Request", fields)
		} else {
			gdprLogger.Debug("HTTP Request", fields)
		}
	} else {
		// Original zerolog implementation
		event := log.Debug()

		// Elevate error responses to warning/error level
		if statusCode >= 400 && statusCode < 500 {
			event = log.Warn()
		} else if statusCode >= 500 {
			event = log.Error()
		} else if strings.HasPrefix(path, constants.APIBasePath) {
			// Log API requests at info level
			event = log.Info()
		}

		// Include request details
		event.
			Str(constants.RequestIDContextKey, requestID).
			Str("method", method).
			Str("path", path).
			Str("remote_addr", remoteAddr).
			Str("user_agent", userAgent).
			Int("status", statusCode).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

// LogError logs an error under message with extra context fields.
func LogError(err error, message string, fields map[string]interface{}) {
	if gdprLogger != nil {
		gdprLogger.Error(message, err, fields)
		return
	}

	withFields(log.Error().Err(err), fields).Msg(message)
}

// LogPanic logs a recovered panic value and its stack trace.
// Fields carry request context such as the request ID and path.
func LogPanic(message string, recovered interface{}, stack string, fields map[string]interface{}) {
	if gdprLogger != nil {
		panicFields := make(map[string]interface{}, len(fields)+2)
		for key, value := range fields {
			panicFields[key] = value
		}
		panicFields["panic"] = fmt.Sprintf("%v", recovered)
		panicFields["stack"] = stack
		gdprLogger.Error(message, nil, panicFields)
		return
	}

	withFields(log.Error(), fields).
		Interface("panic", recovered).
		Str("stack", stack).
		Msg(message)
}

// withFields adds context fields to a zerolog event with their natural types.
func withFields(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for key, value := range fields {
		switch v := value.(type) {
		case string:
			event = event.Str(key, v)
		case int:
			event = event.Int(key, v)
		case int64:
			event = event.Int64(key, v)
		case float64:
			event = event.Float64(key, v)
		case bool:
			event = event.Bool(key, v)
		default:
			event = event.Interface(key, v)
		}
	}
	return event
}

// LogPasswordReset records one password-reset event.
// The email is personal data and is routed to the personal log by the GDPR logger.
func LogPasswordReset(ctx context.Context, eventID, email, resetTime string, timestamp time.Time) {
	fields := map[string]interface{}{
		constants.EventIDContextKey: eventID,
		"category":                  constants.LogCategoryReset,
		"email":                     email,
		"resetTime":                 resetTime,
		"timestamp":                 timestamp.UTC().Format(time.RFC3339Nano),
	}

	if gdprLogger != nil {
		gdprLogger.WithContext(ctx).Info(constants.LogEventResetLogged, fields)
		return
	}

	log.Info().
		Str(constants.EventIDContextKey, eventID).
		Str("category", constants.LogCategoryReset).
		Str("email", email).
		Str("resetTime", resetTime).
		Time("timestamp", timestamp).
		Msg(constants.LogEventResetLogged)
}

// LogPasswordResetFailure records a request the logging function could not handle.
func LogPasswordResetFailure(ctx context.Context, eventID string, err error) {
	fields := map[string]interface{}{
		constants.EventIDContextKey: eventID,
		"category":                  constants.LogCategoryReset,
	}

	if gdprLogger != nil {
		gdprLogger.WithContext(ctx).Error(constants.LogEventResetLogFailed, err, fields)
		return
	}

	log.Error().
		Err(err).
		Str(constants.EventIDContextKey, eventID).
		Str("category", constants.LogCategoryReset).
		Msg(constants.LogEventResetLogFailed)
}

// GetLogLevel returns the current global log level as a string
func GetLogLevel() string {
	return zerolog.GlobalLevel().String()
}

// SetLogLevel updates the global log level
func SetLogLevel(level string) error {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}

	zerolog.SetGlobalLevel(parsedLevel)
	return nil
}
