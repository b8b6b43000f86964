package utils_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils/gdprlog"
)

// captureOutput captures log output for testing
func captureOutput(fn func()) string {
	original := log.Logger
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).With().Timestamp().Logger()

	fn()

	log.Logger = original
	return buf.String()
}

// useGDPRLogger installs a GDPR logger over buffers for the duration of the test.
func useGDPRLogger(t *testing.T) (standard, personal *bytes.Buffer) {
	t.Helper()
	standard, personal = &bytes.Buffer{}, &bytes.Buffer{}

	original := utils.GetGDPRLogger()
	t.Cleanup(func() { utils.SetGDPRLogger(original) })

	utils.SetGDPRLogger(gdprlog.NewGDPRLoggerWithWriters(&config.GDPRLoggingSettings{
		LogSanitizationLevel: "medium",
	}, standard, personal))

	return standard, personal
}

// createTestConfig creates a config for testing
func createTestConfig(t *testing.T) *config.AppConfig {
	tempDir := t.TempDir()

	return &config.AppConfig{
		App: config.AppSettings{
			Name:        "test-app",
			Version:     "1.0.0",
			Environment: "testing",
		},
		Logging: config.LoggingSettings{
			Level:  "debug",
			Format: "json",
		},
		GDPRLogging: config.GDPRLoggingSettings{
			PersonalLogPath:           filepath.Join(tempDir, "personal"),
			StandardLogPath:           filepath.Join(tempDir, "standard"),
			LogSanitizationLevel:      "medium",
			PersonalDataRetentionDays: 30,
			StandardLogRetentionDays:  7,
			FileOutput:                true,
		},
	}
}

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	originalGDPR := utils.GetGDPRLogger()
	defer func() {
		log.Logger = originalLogger
		utils.SetGDPRLogger(originalGDPR)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}()

	testCases := []struct {
		name      string
		configMod func(*config.AppConfig)
		wantLevel zerolog.Level
	}{
		{
			name:      "File output",
			configMod: func(cfg *config.AppConfig) {},
			wantLevel: zerolog.DebugLevel,
		},
		{
			name: "Console only",
			configMod: func(cfg *config.AppConfig) {
				cfg.GDPRLogging.FileOutput = false
				cfg.Logging.Level = "warn"
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name: "Invalid log level",
			configMod: func(cfg *config.AppConfig) {
				cfg.Logging.Level = "invalid_level"
			},
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := createTestConfig(t)
			tc.configMod(cfg)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			utils.InitLogger(ctx, cfg)

			if utils.GetGDPRLogger() == nil {
				t.Error("Expected a GDPR logger after InitLogger")
			}
			if zerolog.GlobalLevel() != tc.wantLevel {
				t.Errorf("GlobalLevel = %v, want %v", zerolog.GlobalLevel(), tc.wantLevel)
			}
		})
	}
}

func TestLogHTTPRequest(t *testing.T) {
	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	defer zerolog.SetGlobalLevel(previous)

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{"API success", "/api/password/strength", 200, "info"},
		{"Client error", "/auth/reset-password", 400, "warn"},
		{"Upstream error", "/api/password/reset", 502, "error"},
		{"Page below info", "/auth/login", 200, ""},
		{"Health skipped", "/health", 200, ""},
		{"Static skipped", "/static/auth.css", 200, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			standard, personal := useGDPRLogger(t)

			utils.LogHTTPRequest("req-1", "GET", tt.path, "10.0.0.1:5000", "curl/8.0", tt.status, 5*time.Millisecond)

			if tt.wantLevel == "" {
				if standard.Len() != 0 || personal.Len() != 0 {
					t.Errorf("Expected no output, got %s", standard.String())
				}
				return
			}

			var entry map[string]interface{}
			if err := json.Unmarshal(standard.Bytes(), &entry); err != nil {
				t.Fatalf("Failed to parse standard log: %v (%s)", err, standard.String())
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry["level"], tt.wantLevel)
			}
			if entry["remote_addr"] == "10.0.0.1:5000" {
				t.Error("Client address must be masked in the standard log")
			}
			if !strings.Contains(personal.String(), "10.0.0.1:5000") {
				t.Error("Client address should be kept in the personal log")
			}
		})
	}
}

func TestLogPasswordReset(t *testing.T) {
	standard, personal := useGDPRLogger(t)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-9")
	utils.LogPasswordReset(ctx, "evt-1", "jane.doe@example.com", "2026-10-19T10:00:00.000Z", time.Date(2026, 10, 19, 10, 0, 1, 0, time.UTC))

	var entry map[string]interface{}
	if err := json.Unmarshal(personal.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse personal log: %v", err)
	}

	if entry["message"] != "Password reset logged" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["email"] != "jane.doe@example.com" {
		t.Errorf("email = %v", entry["email"])
	}
	if entry["resetTime"] != "2026-10-19T10:00:00.000Z" {
		t.Errorf("resetTime = %v", entry["resetTime"])
	}
	if entry["timestamp"] != "2026-10-19T10:00:01Z" {
		t.Errorf("timestamp = %v", entry["timestamp"])
	}
	if entry["event_id"] != "evt-1" || entry["request_id"] != "req-9" {
		t.Errorf("ids = %v / %v", entry["event_id"], entry["request_id"])
	}

	if strings.Contains(standard.String(), "jane.doe@example.com") {
		t.Error("Standard log must not contain the email in clear")
	}
}

func TestLogPasswordReset_WithoutGDPRLogger(t *testing.T) {
	original := utils.GetGDPRLogger()
	defer utils.SetGDPRLogger(original)
	utils.SetGDPRLogger(nil)

	output := captureOutput(func() {
		utils.LogPasswordReset(context.Background(), "evt-2", "user@example.com", "2026-10-19T10:00:00.000Z", time.Now())
		utils.LogPasswordResetFailure(context.Background(), "evt-3", errors.New("unexpected EOF"))
	})

	if !strings.Contains(output, "Password reset logged") || !strings.Contains(output, "user@example.com") {
		t.Errorf("Unexpected output %s", output)
	}
	if !strings.Contains(output, "Error logging password reset") || !strings.Contains(output, "unexpected EOF") {
		t.Errorf("Unexpected output %s", output)
	}
}

func TestLogError(t *testing.T) {
	standard, _ := useGDPRLogger(t)

	utils.LogError(errors.New("boom"), "Failed to render page", map[string]interface{}{"view": "login"})

	for _, want := range []string{"Failed to render page", "boom", `"view":"login"`} {
		if !strings.Contains(standard.String(), want) {
			t.Errorf("Expected %s in output %s", want, standard.String())
		}
	}
}

func TestLogError_WithoutGDPRLogger(t *testing.T) {
	original := utils.GetGDPRLogger()
	defer utils.SetGDPRLogger(original)
	utils.SetGDPRLogger(nil)

	output := captureOutput(func() {
		utils.LogError(errors.New("boom"), "Cleanup failed", map[string]interface{}{"attempt": 2, "final": true})
	})

	for _, want := range []string{`"level":"error"`, `"error":"boom"`, `"message":"Cleanup failed"`, `"attempt":2`, `"final":true`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %s in output %s", want, output)
		}
	}
}

func TestLogPanic(t *testing.T) {
	standard, _ := useGDPRLogger(t)

	utils.LogPanic("Panic recovered", "nil map", "goroutine 1", map[string]interface{}{"path": "/auth/login"})

	for _, want := range []string{"Panic recovered", "nil map", "goroutine 1", "/auth/login"} {
		if !strings.Contains(standard.String(), want) {
			t.Errorf("Expected %s in output %s", want, standard.String())
		}
	}
}

func TestLogPanic_WithoutGDPRLogger(t *testing.T) {
	original := utils.GetGDPRLogger()
	defer utils.SetGDPRLogger(original)
	utils.SetGDPRLogger(nil)

	output := captureOutput(func() {
		utils.LogPanic("Panic recovered", "nil map", "goroutine 1", map[string]interface{}{"request_id": "req-1"})
	})

	for _, want := range []string{`"panic":"nil map"`, `"stack":"goroutine 1"`, `"request_id":"req-1"`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %s in output %s", want, output)
		}
	}
}

func TestGetSetLogLevel(t *testing.T) {
	previous := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(previous)

	if err := utils.SetLogLevel("WARN"); err != nil {
		t.Fatalf("SetLogLevel() error = %v", err)
	}
	if utils.GetLogLevel() != "warn" {
		t.Errorf("GetLogLevel() = %s, want warn", utils.GetLogLevel())
	}
	if err := utils.SetLogLevel("loud"); err == nil {
		t.Error("SetLogLevel() should reject an unknown level")
	}
}
