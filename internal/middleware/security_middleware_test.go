package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/middleware"
)

func TestSecurityHeaders(t *testing.T) {
	called := false
	handler := middleware.SecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constants.LoginPath, nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	expected := map[string]string{
		constants.HeaderXContentTypeOptions:   constants.ContentTypeOptionsNoSniff,
		constants.HeaderXFrameOptions:         constants.FrameOptionsDeny,
		constants.HeaderXXSSProtection:        constants.XSSProtectionModeBlock,
		constants.HeaderReferrerPolicy:        constants.ReferrerPolicyStrictOrigin,
		constants.HeaderContentSecurityPolicy: constants.CSPDefaultSrc,
	}
	for header, value := range expected {
		assert.Equal(t, value, rec.Header().Get(header), header)
	}
}

func TestSecurityHeaders_ForbidInlineScripts(t *testing.T) {
	handler := middleware.SecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constants.ResetPasswordPath, nil))

	csp := rec.Header().Get(constants.HeaderContentSecurityPolicy)
	assert.Contains(t, csp, "default-src 'self'")
	assert.NotContains(t, csp, "unsafe-inline")
}
