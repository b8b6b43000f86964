package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := createTestConfig()
	useTestGDPRLogger(t, cfg, io.Discard, nil)
	return newTestServer(t, cfg).GetRouter()
}

func TestRoutes(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		contentType    string
		expectedStatus int
		expectedBody   string
	}{
		{"health", http.MethodGet, constants.HealthPath, "", "", http.StatusOK, `"status":"healthy"`},
		{"version", http.MethodGet, constants.VersionPath, "", "", http.StatusOK, `"version":"1.0.0-test"`},
		{"route list", http.MethodGet, constants.RoutesPath, "", "", http.StatusOK, constants.LogPasswordResetPath},
		{"metrics", http.MethodGet, constants.MetricsPath, "", "", http.StatusOK, "hideme_auth_"},
		{"stylesheet", http.MethodGet, constants.StaticPath + "/auth.css", "", "", http.StatusOK, ".w-100"},
		{"script", http.MethodGet, constants.StaticPath + "/auth.js", "", "", http.StatusOK, "data-auth-form"},
		{"root redirects", http.MethodGet, constants.RootPath, "", "", http.StatusSeeOther, ""},
		{"login page", http.MethodGet, constants.LoginPath, "", "", http.StatusOK, "Sign in to your account"},
		{"login submit", http.MethodPost, constants.LoginPath, "email=a%40b.c&password=x", constants.ContentTypeForm, http.StatusSeeOther, ""},
		{"reset page", http.MethodGet, constants.ResetPasswordPath, "", "", http.StatusOK, "Reset Password"},
		{"reset mismatch", http.MethodPost, constants.ResetPasswordPath, "password=abc&confirmPassword=abd", constants.ContentTypeForm, http.StatusBadRequest, "Passwords do not match"},
		{"strength", http.MethodPost, constants.PasswordStrengthPath, `{"password":"Abcdefg1!"}`, constants.ContentTypeJSON, http.StatusOK, `"label":"Strong password"`},
		{"reset api mismatch", http.MethodPost, constants.PasswordResetPath, `{"password":"abc","confirmPassword":"abd"}`, constants.ContentTypeJSON, http.StatusBadRequest, constants.CodeValidationError},
		{"function preflight", http.MethodOptions, constants.LogPasswordResetPath, "", "", http.StatusOK, "ok"},
		{"function bad body", http.MethodPost, constants.LogPasswordResetPath, "{", constants.ContentTypeJSON, http.StatusInternalServerError, "Failed to log password reset"},
		{"unknown route", http.MethodGet, "/nowhere", "", "", http.StatusNotFound, constants.CodeNotFound},
		{"wrong method", http.MethodDelete, constants.LoginPath, "", "", http.StatusMethodNotAllowed, constants.CodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set(constants.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestRoutes_SecurityHeaders(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constants.ResetPasswordPath, nil))

	assert.Equal(t, constants.FrameOptionsDeny, rec.Header().Get(constants.HeaderXFrameOptions))
	assert.Equal(t, constants.CSPDefaultSrc, rec.Header().Get(constants.HeaderContentSecurityPolicy))
	assert.NotEmpty(t, rec.Header().Get(constants.HeaderCacheControl))
}

func TestRoutes_CORS(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name          string
		method        string
		path          string
		origin        string
		expectedCode  int
		expectedAllow string
		expectedCreds string
	}{
		{"allowed preflight", http.MethodOptions, constants.PasswordResetPath, "http://localhost:5173", http.StatusNoContent, "http://localhost:5173", "true"},
		{"allowed request", http.MethodGet, constants.LoginPath, "http://localhost:5173", http.StatusOK, "http://localhost:5173", "true"},
		{"disallowed origin", http.MethodGet, constants.LoginPath, "https://evil.example", http.StatusOK, "", ""},
		{"function keeps its own headers", http.MethodOptions, constants.LogPasswordResetPath, "http://localhost:5173", http.StatusOK, constants.FunctionAllowOrigin, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get(constants.HeaderAccessControlAllowOrigin))
			assert.Equal(t, tt.expectedCreds, rec.Header().Get(constants.HeaderAccessControlAllowCredentials))
		})
	}
}

func TestOriginAllowed(t *testing.T) {
	assert.True(t, originAllowed([]string{"*"}, "https://any.example"))
	assert.True(t, originAllowed([]string{"https://a.example", "https://b.example"}, "https://b.example"))
	assert.False(t, originAllowed([]string{"https://a.example"}, "https://b.example"))
	assert.False(t, originAllowed(nil, "https://a.example"))
}

func TestGetAPIRoutes(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constants.RoutesPath, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                              `json:"success"`
		Data    map[string]map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	for _, group := range []string{"screens", "password", "functions", "system"} {
		assert.Contains(t, resp.Data, group)
	}
	assert.Contains(t, resp.Data["password"], "POST "+constants.PasswordResetPath)
	assert.Contains(t, resp.Data["functions"], "POST "+constants.LogPasswordResetPath)
}
