// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package api

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
)

// ChiMiddleware provides Chi-compatible middleware factories built from
// the security configuration.
type ChiMiddleware struct {
	cors              func(http.Handler) http.Handler
	rateLimitRequests int
	rateLimitWindow   time.Duration
	rateLimitDisabled bool
}

// NewChiMiddleware creates the middleware factory from security config.
// CORS origins default to empty, requiring explicit configuration.
func NewChiMiddleware(cfg *config.SecurityConfig) *ChiMiddleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	requests := cfg.RateLimitReqs
	if requests <= 0 {
		requests = 100
	}
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}

	return &ChiMiddleware{
		cors:              corsHandler,
		rateLimitRequests: requests,
		rateLimitWindow:   window,
		rateLimitDisabled: cfg.RateLimitDisabled,
	}
}

// CORS returns the go-chi/cors middleware. Must be global so OPTIONS
// preflight requests are answered on every route.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimitConfig defines rate limit parameters for specific endpoints.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Endpoint-specific rate limit configurations.
var (
	// rateLimitLogin is very strict for login attempts.
	rateLimitLogin = RateLimitConfig{Requests: 5, Window: 5 * time.Minute}

	// rateLimitHealth allows frequent checks from monitoring tools.
	rateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}

	// rateLimitUpload is moderate limiting for CSV and image uploads.
	rateLimitUpload = RateLimitConfig{Requests: 10, Window: time.Minute}
)

// RateLimitCustom returns an IP-keyed rate limiter with the given config.
func (m *ChiMiddleware) RateLimitCustom(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if m.rateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.LimitByIP(cfg.Requests, cfg.Window)
}

// RateLimit returns the default API rate limiter from security config.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitConfig{
		Requests: m.rateLimitRequests,
		Window:   m.rateLimitWindow,
	})
}

// RateLimitLogin returns the strict limiter for the login endpoint.
func (m *ChiMiddleware) RateLimitLogin() func(http.Handler) http.Handler {
	return m.RateLimitCustom(rateLimitLogin)
}

// RateLimitHealth returns the permissive limiter for health endpoints.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(rateLimitHealth)
}

// RateLimitUpload returns the limiter for upload endpoints.
func (m *ChiMiddleware) RateLimitUpload() func(http.Handler) http.Handler {
	return m.RateLimitCustom(rateLimitUpload)
}

// APISecurityHeaders returns middleware that adds security headers to
// API responses.
//
// Headers added:
//   - X-Content-Type-Options: nosniff (prevents MIME type sniffing)
//   - X-Frame-Options: DENY (prevents clickjacking)
//   - Referrer-Policy: strict-origin-when-cross-origin
//
// HSTS is added conditionally when the request is over HTTPS or behind a
// TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDWithLogging returns middleware that adds an X-Request-ID
// header and puts the request ID into the logging context, enabling
// request-scoped structured logging.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		chiRequestID := chimiddleware.RequestID(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = logging.GenerateRequestID()
				r.Header.Set("X-Request-ID", requestID)
			}
			w.Header().Set("X-Request-ID", requestID)

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			chiRequestID.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
