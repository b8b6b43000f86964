package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/middleware"
)

func TestRequestLogging(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		handler       http.HandlerFunc
		expectLog     bool
		expectedLevel string
		expectedCode  float64
	}{
		{
			name:          "API request logged at info",
			path:          constants.PasswordStrengthPath,
			handler:       func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
			expectLog:     true,
			expectedLevel: "info",
			expectedCode:  http.StatusOK,
		},
		{
			name:          "Implicit status defaults to 200",
			path:          constants.LoginPath,
			handler:       func(w http.ResponseWriter, r *http.Request) {},
			expectLog:     true,
			expectedLevel: "debug",
			expectedCode:  http.StatusOK,
		},
		{
			name:          "Client error logged at warn",
			path:          constants.PasswordResetPath,
			handler:       func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadRequest) },
			expectLog:     true,
			expectedLevel: "warn",
			expectedCode:  http.StatusBadRequest,
		},
		{
			name:          "Upstream failure logged at error",
			path:          constants.ResetPasswordPath,
			handler:       func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			expectLog:     true,
			expectedLevel: "error",
			expectedCode:  http.StatusBadGateway,
		},
		{
			name:      "Health checks skipped",
			path:      constants.HealthPath,
			handler:   func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			originalLogger := log.Logger
			originalLevel := zerolog.GlobalLevel()
			log.Logger = zerolog.New(&logBuf)
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if tt.expectedLevel == "debug" {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			defer func() {
				log.Logger = originalLogger
				zerolog.SetGlobalLevel(originalLevel)
			}()

			handler := middleware.RequestLogging()(tt.handler)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-request-id"))
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if !tt.expectLog {
				if logBuf.Len() != 0 {
					t.Errorf("Unexpected log output: %s", logBuf.String())
				}
				return
			}

			var entry map[string]interface{}
			if err := json.Unmarshal(logBuf.Bytes(), &entry); err != nil {
				t.Fatalf("Failed to decode log entry %q: %v", logBuf.String(), err)
			}
			if entry["level"] != tt.expectedLevel {
				t.Errorf("level = %v, want %v", entry["level"], tt.expectedLevel)
			}
			if entry["status"] != tt.expectedCode {
				t.Errorf("status = %v, want %v", entry["status"], tt.expectedCode)
			}
			if entry["path"] != tt.path {
				t.Errorf("path = %v, want %v", entry["path"], tt.path)
			}
			if entry[constants.RequestIDContextKey] != "test-request-id" {
				t.Errorf("request_id = %v, want test-request-id", entry[constants.RequestIDContextKey])
			}
		})
	}
}
