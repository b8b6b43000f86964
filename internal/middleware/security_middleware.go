// Package middleware provides HTTP middleware components.
package middleware

import (
	"net/http"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

// SecurityHeaders adds security-related HTTP headers to responses.
// The content security policy forbids inline scripts and styles, so pages
// load their assets from the static path only.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constants.HeaderXContentTypeOptions, constants.ContentTypeOptionsNoSniff)
			w.Header().Set(constants.HeaderXFrameOptions, constants.FrameOptionsDeny)
			w.Header().Set(constants.HeaderXXSSProtection, constants.XSSProtectionModeBlock)
			w.Header().Set(constants.HeaderReferrerPolicy, constants.ReferrerPolicyStrictOrigin)
			w.Header().Set(constants.HeaderContentSecurityPolicy, constants.CSPDefaultSrc)

			next.ServeHTTP(w, r)
		})
	}
}
