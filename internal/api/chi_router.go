// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/auth"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so PrometheusMetrics works with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router wires handlers, auth, and middleware into the HTTP route tree.
type Router struct {
	handler       *Handler
	authService   *auth.Service
	chiMiddleware *ChiMiddleware
}

// NewRouter creates the router from its wired components.
func NewRouter(handler *Handler, authService *auth.Service, mw *ChiMiddleware) *Router {
	return &Router{
		handler:       handler,
		authService:   authService,
		chiMiddleware: mw,
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is handled everywhere

	// Health endpoints: permissive rate limiting for monitoring tools.
	r.Route("/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Authentication: strict rate limiting against brute force.
	r.Route("/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
	})

	// Public API endpoints.
	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Route("/crop-data", func(r chi.Router) {
			r.Get("/", router.handler.CropData)
			r.Get("/statistics", router.handler.CropDataStatistics)
			r.Get("/yield-analysis", router.handler.YieldAnalysis)
		})

		r.Route("/predict", func(r chi.Router) {
			r.Post("/yield", router.handler.PredictYield)
			r.Post("/simple-yield", router.handler.PredictSimpleYield)
			r.Post("/crop-recommendation", router.handler.CropRecommendation)
			r.Get("/model-info", router.handler.ModelInfo)
		})

		r.Route("/weather", func(r chi.Router) {
			r.Get("/{location}", router.handler.Weather)
			r.Get("/{location}/history", router.handler.WeatherHistory)
		})

		r.Post("/chat/advice", router.handler.ChatAdvice)

		// Upload endpoints require authentication.
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitUpload())
			r.Use(router.authService.RequireAuth())

			r.Post("/upload/csv", router.handler.UploadCSV)
			r.Post("/ai/detect-disease", router.handler.DetectDisease)
		})

		// Batch status polling is authenticated but not upload rate limited.
		r.With(router.authService.RequireAuth()).
			Get("/upload/batches/{batchID}", router.handler.UploadBatchStatus)

		// Field profiles belong to the authenticated farmer.
		r.Route("/field-profiles", func(r chi.Router) {
			r.Use(router.authService.RequireAuth())
			r.Get("/", router.handler.ListFieldProfiles)
			r.Post("/", router.handler.CreateFieldProfile)
		})
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
