package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

// AppConfig represents the entire application configuration
type AppConfig struct {
	App         AppSettings         `yaml:"app"`
	Server      ServerSettings      `yaml:"server"`
	Logging     LoggingSettings     `yaml:"logging"`
	CORS        CORSSettings        `yaml:"cors"`
	GDPRLogging GDPRLoggingSettings `yaml:"gdpr_logging"`
	Reset       ResetSettings       `yaml:"reset"`
	LogFunction LogFunctionSettings `yaml:"log_function"`
}

// GDPRLoggingSettings contains GDPR-compliant logging configuration
type GDPRLoggingSettings struct {
	PersonalDataRetentionDays int    `yaml:"personal_data_retention_days" env:"GDPR_PERSONAL_RETENTION_DAYS"`
	StandardLogRetentionDays  int    `yaml:"standard_log_retention_days" env:"GDPR_STANDARD_RETENTION_DAYS"`
	PersonalLogPath           string `yaml:"personal_log_path" env:"GDPR_PERSONAL_LOG_PATH"`
	StandardLogPath           string `yaml:"standard_log_path" env:"GDPR_STANDARD_LOG_PATH"`
	LogSanitizationLevel      string `yaml:"log_sanitization_level" env:"GDPR_SANITIZATION_LEVEL"`
	FileOutput                bool   `yaml:"file_output" env:"GDPR_FILE_OUTPUT"`
}

// AppSettings contains general application settings
type AppSettings struct {
	Environment string `yaml:"environment" env:"APP_ENV"`
	Name        string `yaml:"name" env:"APP_NAME"`
	Version     string `yaml:"version" env:"APP_VERSION"`
}

// ServerSettings contains HTTP server settings
type ServerSettings struct {
	Host            string        `yaml:"host" env:"SERVER_HOST"`
	Port            int           `yaml:"port" env:"SERVER_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
}

// LoggingSettings contains logging configuration
type LoggingSettings struct {
	Level      string `yaml:"level" env:"LOG_LEVEL"`
	Format     string `yaml:"format" env:"LOG_FORMAT"`
	RequestLog bool   `yaml:"request_log" env:"LOG_REQUESTS"`
}

// CORSSettings contains CORS configuration for the pages and the JSON API
type CORSSettings struct {
	AllowedOrigins   []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	AllowCredentials bool     `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
}

// ResetSettings controls the password-reset submission flow.
//
// SimulatedDelay is the pause before the logging function is called,
// RedirectTo and RedirectDelay drive the success panel, and PlaceholderEmail
// is what gets logged while no signed-in user is known. EnforceStrength adds
// the four strength requirements to submit-time validation.
type ResetSettings struct {
	SimulatedDelay   time.Duration `yaml:"simulated_delay" env:"RESET_SIMULATED_DELAY"`
	RedirectTo       string        `yaml:"redirect_to" env:"RESET_REDIRECT_TO"`
	RedirectDelay    time.Duration `yaml:"redirect_delay" env:"RESET_REDIRECT_DELAY"`
	PlaceholderEmail string        `yaml:"placeholder_email" env:"RESET_PLACEHOLDER_EMAIL"`
	EnforceStrength  bool          `yaml:"enforce_strength" env:"RESET_ENFORCE_STRENGTH"`
}

// LogFunctionSettings locates the password-reset logging function.
// An empty URL means the function mounted on this server is used.
type LogFunctionSettings struct {
	URL     string        `yaml:"url" env:"LOG_FUNCTION_URL"`
	AnonKey string        `yaml:"anon_key" env:"LOG_FUNCTION_ANON_KEY"`
	Timeout time.Duration `yaml:"timeout" env:"LOG_FUNCTION_TIMEOUT"`
}

// ServerAddress returns the complete server address
func (ss *ServerSettings) ServerAddress() string {
	return fmt.Sprintf("%s:%d", ss.Host, ss.Port)
}

// BaseURL returns the URL clients on the same host use to reach this server.
func (ss *ServerSettings) BaseURL() string {
	host := ss.Host
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s:%d", host, ss.Port)
}

// IsProduction checks if the application is running in production mode
func (as *AppSettings) IsProduction() bool {
	return strings.ToLower(as.Environment) == constants.EnvProduction
}

var (
	// cfg holds the current application configuration
	cfg *AppConfig
)

// Load loads the configuration from a config file and environment variables
func Load(configPath string) (*AppConfig, error) {
	config := &AppConfig{}

	// Load configuration from file if it exists
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		err = yaml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// Override with environment variables
	if err := LoadEnv(config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	// Set defaults for missing values
	setDefaults(config)

	// Validate the configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Save the configuration globally
	cfg = config

	// Log the configuration (but hide sensitive values)
	logConfig(config)

	return config, nil
}

// Get returns the current application configuration
func Get() *AppConfig {
	if cfg == nil {
		log.Fatal().Msg("configuration not loaded")
	}
	return cfg
}

// setDefaults sets default values for any missing configuration
func setDefaults(config *AppConfig) {
	// App defaults
	if config.App.Environment == "" {
		config.App.Environment = constants.EnvDevelopment
	}
	if config.App.Name == "" {
		config.App.Name = constants.DefaultAppName
	}
	if config.App.Version == "" {
		config.App.Version = "1.0.0"
	}

	// Server defaults
	if config.Server.Port == 0 {
		config.Server.Port = constants.DefaultServerPort
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = constants.DefaultReadTimeout
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = constants.DefaultWriteTimeout
	}
	if config.Server.ShutdownTimeout == 0 {
		config.Server.ShutdownTimeout = constants.DefaultShutdownTimeout
	}
	if config.Server.IdleTimeout == 0 {
		config.Server.IdleTimeout = constants.DefaultIdleTimeout
	}

	// Logging defaults
	if config.Logging.Level == "" {
		config.Logging.Level = constants.DefaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = constants.DefaultLogFormat
	}

	// CORS defaults
	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = []string{"*"}
	}

	// GDPR logging defaults
	if config.GDPRLogging.StandardLogRetentionDays == 0 {
		config.GDPRLogging.StandardLogRetentionDays = constants.StandardLogRetentionDays
	}
	if config.GDPRLogging.PersonalDataRetentionDays == 0 {
		config.GDPRLogging.PersonalDataRetentionDays = constants.PersonalDataRetentionDays
	}
	if config.GDPRLogging.StandardLogPath == "" {
		config.GDPRLogging.StandardLogPath = constants.DefaultStandardLogPath
	}
	if config.GDPRLogging.PersonalLogPath == "" {
		config.GDPRLogging.PersonalLogPath = constants.DefaultPersonalLogPath
	}
	if config.GDPRLogging.LogSanitizationLevel == "" {
		config.GDPRLogging.LogSanitizationLevel = constants.DefaultSanitizationLevel
	}

	// Reset flow defaults
	if config.Reset.SimulatedDelay == 0 {
		config.Reset.SimulatedDelay = constants.DefaultSimulatedDelay
	}
	if config.Reset.RedirectTo == "" {
		config.Reset.RedirectTo = constants.DefaultRedirectTarget
	}
	if config.Reset.RedirectDelay == 0 {
		config.Reset.RedirectDelay = constants.DefaultRedirectDelay
	}
	if config.Reset.PlaceholderEmail == "" {
		config.Reset.PlaceholderEmail = constants.DefaultPlaceholderEmail
	}

	// Logging function defaults
	if config.LogFunction.URL == "" {
		config.LogFunction.URL = config.Server.BaseURL() + constants.LogPasswordResetPath
	}
	if config.LogFunction.Timeout == 0 {
		config.LogFunction.Timeout = constants.DefaultLogFunctionTimeout
	}
}

// validateConfig validates that the configuration has all required values
func validateConfig(config *AppConfig) error {
	// Validate environment
	env := strings.ToLower(config.App.Environment)
	if env != constants.EnvDevelopment && env != constants.EnvTesting && env != constants.EnvProduction {
		// Instead of failing, use a default and warn
		log.Warn().
			Str("environment", config.App.Environment).
			Msg("Invalid environment, defaulting to development")
		config.App.Environment = constants.EnvDevelopment
	}

	// Validate log level
	logLevel := strings.ToLower(config.Logging.Level)
	validLevels := []string{"debug", "info", "warn", "error", "fatal", "panic"}
	validLevel := false
	for _, level := range validLevels {
		if logLevel == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	// The redirect target must be a path on this site
	if !strings.HasPrefix(config.Reset.RedirectTo, "/") {
		return fmt.Errorf("reset redirect target must be a local path: %s", config.Reset.RedirectTo)
	}

	if config.Reset.SimulatedDelay < 0 || config.Reset.RedirectDelay < 0 {
		return fmt.Errorf("reset delays must not be negative")
	}

	if !strings.HasPrefix(config.LogFunction.URL, "http://") && !strings.HasPrefix(config.LogFunction.URL, "https://") {
		return fmt.Errorf("invalid log function URL: %s", config.LogFunction.URL)
	}

	return nil
}

// logConfig logs the current configuration, masking sensitive values
func logConfig(config *AppConfig) {
	// Create a copy of the config to mask sensitive values
	logCfg := *config

	// Mask sensitive information
	if logCfg.LogFunction.AnonKey != "" {
		logCfg.LogFunction.AnonKey = constants.LogRedactedValue
	}

	log.Info().
		Str("environment", logCfg.App.Environment).
		Str("version", logCfg.App.Version).
		Str("server", logCfg.Server.ServerAddress()).
		Str("log_level", logCfg.Logging.Level).
		Str("log_function_url", logCfg.LogFunction.URL).
		Str("log_function_key", logCfg.LogFunction.AnonKey).
		Dur("reset_simulated_delay", logCfg.Reset.SimulatedDelay).
		Str("reset_redirect_to", logCfg.Reset.RedirectTo).
		Bool("reset_enforce_strength", logCfg.Reset.EnforceStrength).
		Msg("Configuration loaded")
}
