package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/config"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/metrics"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/middleware"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/utils"
	"github.com/yasinhessnawi1/Hideme_Auth/internal/views"
)

// SetupRoutes configures the routes for the application.
//
// The configured routes include:
// - Health check, version, metrics and static assets
// - The sign-in and password-reset screens
// - The JSON endpoints behind the reset screen
// - The password-reset logging function
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	// Base middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(corsMiddleware(&s.Config.CORS))
	r.Use(middleware.SecurityHeaders())
	if s.Config.Logging.RequestLog {
		r.Use(middleware.RequestLogging())
	}
	r.Use(middleware.Metrics())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.NotFound(w, constants.MsgResourceNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.MethodNotAllowed(w)
	})

	// Operational routes
	r.Group(func(r chi.Router) {
		r.Get(constants.HealthPath, s.Health)
		r.Get(constants.VersionPath, s.Version)
		r.Get(constants.RoutesPath, s.GetAPIRoutes)
		r.Handle(constants.MetricsPath, metrics.Handler())
		r.Handle(constants.StaticPath+"/*", http.StripPrefix(constants.StaticPath, views.StaticHandler()))
	})

	// Screens
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.NoCache)

		r.Get(constants.RootPath, s.Handlers.PageHandler.Root)
		r.Get(constants.LoginPath, s.Handlers.PageHandler.LoginPage)
		r.Post(constants.LoginPath, s.Handlers.PageHandler.Login)
		r.Get(constants.ResetPasswordPath, s.Handlers.PageHandler.ResetPasswordPage)
		r.Post(constants.ResetPasswordPath, s.Handlers.PageHandler.ResetPassword)
	})

	// JSON API
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.NoCache)

		r.Post(constants.PasswordStrengthPath, s.Handlers.PasswordHandler.Strength)
		r.Post(constants.PasswordResetPath, s.Handlers.PasswordHandler.Reset)
	})

	// The function answers every method itself, OPTIONS included
	r.Handle(constants.LogPasswordResetPath, s.Handlers.LogPasswordReset)

	s.router = r
}

// GetRouter returns the configured router.
func (s *Server) GetRouter() chi.Router {
	return s.router
}

// Health reports that the server is up.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": s.Config.App.Version,
	})
}

// Version reports the running version and environment.
func (s *Server) Version(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"name":        s.Config.App.Name,
		"version":     s.Config.App.Version,
		"environment": s.Config.App.Environment,
	})
}

// corsMiddleware creates a CORS middleware for the screens and the JSON API.
//
// Parameters:
//   - cfg: The allowed origins and whether credentials may be sent
//
// Returns:
//   - A middleware function that adds CORS headers to responses
//
// Requests from an allowed origin get the origin echoed back, and OPTIONS
// preflights are answered directly. Function routes are passed through
// untouched because the function sets its own CORS headers.
func corsMiddleware(cfg *config.CORSSettings) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || strings.HasPrefix(r.URL.Path, constants.FunctionsBasePath+"/") || !originAllowed(cfg.AllowedOrigins, origin) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(constants.HeaderAccessControlAllowOrigin, origin)
			w.Header().Add(constants.HeaderVary, "Origin")
			if cfg.AllowCredentials {
				w.Header().Set(constants.HeaderAccessControlAllowCredentials, "true")
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			// Handle OPTIONS preflight requests
			w.Header().Set(constants.HeaderAccessControlAllowMethods, constants.CORSAllowMethods)
			w.Header().Set(constants.HeaderAccessControlAllowHeaders, constants.CORSAllowHeaders)
			w.Header().Set(constants.HeaderAccessControlMaxAge, strconv.Itoa(constants.CACHEControlMaxAge))
			utils.NoContent(w)
		})
	}
}

// originAllowed reports whether origin matches the allow list; "*" matches any origin.
func originAllowed(allowedOrigins []string, origin string) bool {
	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// GetAPIRoutes returns documentation about all routes.
// Each entry names the method, a description, and the request and response shapes.
func (s *Server) GetAPIRoutes(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{}

	routes["screens"] = map[string]interface{}{
		"GET " + constants.RootPath: map[string]interface{}{
			"description": "Redirects to the sign-in screen",
			"response":    "303 See Other to " + constants.LoginPath,
		},
		"GET " + constants.LoginPath: map[string]interface{}{
			"description": "Sign-in screen with a link to the reset screen",
			"response":    "text/html",
		},
		"POST " + constants.LoginPath: map[string]interface{}{
			"description": "Sign-in submission; not connected to an identity provider",
			"response":    "303 See Other to " + constants.LoginPath,
		},
		"GET " + constants.ResetPasswordPath: map[string]interface{}{
			"description": "Password-reset screen",
			"response":    "text/html",
		},
		"POST " + constants.ResetPasswordPath: map[string]interface{}{
			"description": "Submits the reset form",
			"headers": map[string]string{
				"Content-Type": constants.ContentTypeForm,
			},
			"body": map[string]interface{}{
				"password":        "string - New password",
				"confirmPassword": "string - Must match password",
			},
			"response": map[string]interface{}{
				"200": "Success panel with a Refresh header to " + s.Config.Reset.RedirectTo,
				"400": "Form with inline field errors",
				"502": "Form with an error banner",
			},
		},
	}

	routes["password"] = map[string]interface{}{
		"POST " + constants.PasswordStrengthPath: map[string]interface{}{
			"description": "Evaluates a password for the strength meter",
			"headers": map[string]string{
				"Content-Type": constants.ContentTypeJSON,
			},
			"body": map[string]interface{}{
				"password": "string - Candidate password",
			},
			"response": map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"requirements": []map[string]interface{}{
						{"met": true, "text": "At least 8 characters"},
					},
					"score":       4,
					"tier":        "Strong",
					"label":       "Strong password",
					"meter_class": "bg-emerald-500",
					"percent":     100,
				},
			},
		},
		"POST " + constants.PasswordResetPath: map[string]interface{}{
			"description": "Submits a password reset",
			"headers": map[string]string{
				"Content-Type": constants.ContentTypeJSON,
			},
			"body": map[string]interface{}{
				"password":        "string - New password",
				"confirmPassword": "string - Must match password",
			},
			"response": map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"state":             "success",
					"redirect_to":       s.Config.Reset.RedirectTo,
					"redirect_after_ms": s.Config.Reset.RedirectDelay.Milliseconds(),
				},
			},
		},
	}

	routes["functions"] = map[string]interface{}{
		"POST " + constants.LogPasswordResetPath: map[string]interface{}{
			"description": "Logs a password-reset event",
			"headers": map[string]string{
				"Content-Type":  constants.ContentTypeJSON,
				"Authorization": "Bearer <anon key>",
			},
			"body": map[string]interface{}{
				"email":     "string - Account email",
				"resetTime": "string - ISO-8601 time of the reset",
			},
			"response": map[string]interface{}{
				"status": "logged",
			},
		},
	}

	routes["system"] = map[string]interface{}{
		"GET " + constants.HealthPath:  "Health check",
		"GET " + constants.VersionPath: "Version and environment",
		"GET " + constants.RoutesPath:  "This route list",
		"GET " + constants.MetricsPath: "Prometheus metrics",
	}

	utils.JSON(w, http.StatusOK, routes)
}
