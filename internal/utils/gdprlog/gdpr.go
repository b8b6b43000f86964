package gdprlog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

// LogCategory represents the GDPR classification of a log
type LogCategory int

const (
	// StandardLog contains no personal data
	StandardLog LogCategory = iota
	// PersonalLog contains personal data (like the email of a reset request)
	PersonalLog
)

const (
	standardLogFile = "standard.log"
	personalLogFile = "personal.log"
)

// GDPRLogger wraps zerolog loggers with GDPR compliance features.
//
// Records without personal data go to the standard stream. Records with
// personal data are written in full to the restricted personal stream and a
// masked copy goes to the standard stream. Secrets (passwords, keys, tokens)
// are redacted from both streams and are never written anywhere in clear.
type GDPRLogger struct {
	standardLogger zerolog.Logger
	personalLogger zerolog.Logger
	config         *config.GDPRLoggingSettings
	// split is false when both streams share one writer; personal records
	// are then written once, in full.
	split bool
}

// NewGDPRLogger creates a new GDPR-compliant logger.
// With file output enabled each stream gets its own file under the configured
// directory; otherwise everything goes to stdout.
func NewGDPRLogger(cfg *config.GDPRLoggingSettings) (*GDPRLogger, error) {
	if !cfg.FileOutput {
		return NewGDPRLoggerWithWriters(cfg, os.Stdout, nil), nil
	}

	// Ensure log directories exist
	for _, dir := range []string{cfg.StandardLogPath, cfg.PersonalLogPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	// Standard logger - both console and file
	standardWriter, err := createLogWriter(filepath.Join(cfg.StandardLogPath, standardLogFile), 0644)
	if err != nil {
		return nil, err
	}

	// Personal logger - file only with restricted permissions
	personalWriter, err := createLogWriter(filepath.Join(cfg.PersonalLogPath, personalLogFile), 0600)
	if err != nil {
		return nil, err
	}

	// Standard logger gets console output outside production
	var standardOutput io.Writer = standardWriter
	if os.Getenv("APP_ENV") != constants.EnvProduction {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
		standardOutput = zerolog.MultiLevelWriter(consoleWriter, standardWriter)
	}

	return NewGDPRLoggerWithWriters(cfg, standardOutput, personalWriter), nil
}

// NewGDPRLoggerWithWriters creates a logger over the given writers.
// A nil personal writer makes personal records share the standard writer.
func NewGDPRLoggerWithWriters(cfg *config.GDPRLoggingSettings, standard, personal io.Writer) *GDPRLogger {
	split := personal != nil
	if !split {
		personal = standard
	}

	return &GDPRLogger{
		standardLogger: zerolog.New(standard).With().Timestamp().Logger(),
		personalLogger: zerolog.New(personal).With().Timestamp().Logger(),
		config:         cfg,
		split:          split,
	}
}

// createLogWriter creates a file writer for logs with proper permissions
func createLogWriter(path string, perm os.FileMode) (io.Writer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, perm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file, nil
}

// DetermineLogCategory analyzes log data to determine its GDPR category
func (gl *GDPRLogger) DetermineLogCategory(fields map[string]interface{}) LogCategory {
	for key, value := range fields {
		if IsPersonalField(key, value) {
			return PersonalLog
		}
	}
	return StandardLog
}

// redactSecrets replaces secret values and returns a copy of fields.
func redactSecrets(fields map[string]interface{}) map[string]interface{} {
	redacted := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if IsSensitiveField(k, v) {
			redacted[k] = constants.LogRedactedValue
			continue
		}
		redacted[k] = v
	}
	return redacted
}

// SanitizeLogFields removes or masks personal data based on configuration.
// Secrets are always redacted regardless of the level.
func (gl *GDPRLogger) SanitizeLogFields(fields map[string]interface{}) map[string]interface{} {
	sanitizedFields := redactSecrets(fields)

	sanitizationLevel := strings.ToLower(gl.config.LogSanitizationLevel)
	if sanitizationLevel == "none" {
		return sanitizedFields
	}

	for k, v := range sanitizedFields {
		if v == constants.LogRedactedValue || !IsPersonalField(k, v) {
			continue
		}
		switch sanitizationLevel {
		case "low":
			// Minimal sanitization - only mask email values
			if IsEmailField(k, v) {
				sanitizedFields[k] = MaskEmail(fmt.Sprintf("%v", v))
			}
		case "high":
			sanitizedFields[k] = "[PERSONAL_DATA]"
		default:
			sanitizedFields[k] = MaskPersonalData(k, v)
		}
	}

	return sanitizedFields
}

// MaskPersonalData applies appropriate masking based on the field type and name
func MaskPersonalData(fieldName string, value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if IsEmailField(fieldName, value) {
			return MaskEmail(v)
		}
		runes := []rune(v)
		if len(runes) > 2 {
			// Show first and last character, mask the rest
			return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
		}
		return "**"
	case bool:
		return v
	case time.Time:
		// For timestamps, show only the date part
		return v.Format("2006-01-02")
	}

	// Default handling for other types - avoid leaking type information
	return "***"
}

// MaskEmail masks an email address, showing only the first 2 and last 2 characters of the local part
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		return "***@***"
	}

	username := []rune(parts[0])
	domain := parts[1]

	if len(username) <= 4 {
		// For short usernames, show only first character
		return string(username[0]) + "***@" + domain
	}

	// Show first 2 and last 2 characters of username
	return string(username[:2]) + strings.Repeat("*", len(username)-4) + string(username[len(username)-2:]) + "@" + domain
}

// Log creates a log event with GDPR compliance
func (gl *GDPRLogger) Log(level zerolog.Level, msg string, fields map[string]interface{}) {
	// Skip if below global log level
	if level < zerolog.GlobalLevel() {
		return
	}

	if gl.DetermineLogCategory(fields) == StandardLog {
		write(gl.standardLogger.WithLevel(level), redactSecrets(fields), msg)
		return
	}

	// Store full info (minus secrets) in the personal log
	write(gl.personalLogger.WithLevel(level), redactSecrets(fields), msg)

	// Log sanitized version to standard log
	if gl.split {
		write(gl.standardLogger.WithLevel(level), gl.SanitizeLogFields(fields), msg)
	}
}

// write adds every field to the event and sends it.
func write(event *zerolog.Event, fields map[string]interface{}, msg string) {
	for k, v := range fields {
		event = addField(event, k, v)
	}
	event.Msg(msg)
}

// addField adds a field to a zerolog event with the appropriate type
func addField(event *zerolog.Event, key string, value interface{}) *zerolog.Event {
	switch v := value.(type) {
	case string:
		return event.Str(key, v)
	case int:
		return event.Int(key, v)
	case int64:
		return event.Int64(key, v)
	case float64:
		return event.Float64(key, v)
	case bool:
		return event.Bool(key, v)
	case time.Time:
		return event.Time(key, v)
	case time.Duration:
		return event.Dur(key, v)
	case []string:
		return event.Strs(key, v)
	case error:
		return event.AnErr(key, v)
	default:
		return event.Interface(key, v)
	}
}

// Debug logs at debug level with GDPR compliance
func (gl *GDPRLogger) Debug(msg string, fields map[string]interface{}) {
	gl.Log(zerolog.DebugLevel, msg, fields)
}

// Info logs at info level with GDPR compliance
func (gl *GDPRLogger) Info(msg string, fields map[string]interface{}) {
	gl.Log(zerolog.InfoLevel, msg, fields)
}

// Warn logs at warn level with GDPR compliance
func (gl *GDPRLogger) Warn(msg string, fields map[string]interface{}) {
	gl.Log(zerolog.WarnLevel, msg, fields)
}

// Error logs at error level with GDPR compliance
func (gl *GDPRLogger) Error(msg string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}

	// Add error to fields if provided
	if err != nil {
		fields["error"] = err.Error()
	}

	gl.Log(zerolog.ErrorLevel, msg, fields)
}

// WithContext returns a new GDPRLogger carrying the request ID of ctx, if any.
func (gl *GDPRLogger) WithContext(ctx context.Context) *GDPRLogger {
	requestID := middleware.GetReqID(ctx)
	if requestID == "" {
		return gl
	}

	return &GDPRLogger{
		standardLogger: gl.standardLogger.With().Str(constants.RequestIDContextKey, requestID).Logger(),
		personalLogger: gl.personalLogger.With().Str(constants.RequestIDContextKey, requestID).Logger(),
		config:         gl.config,
		split:          gl.split,
	}
}
