// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

// Package metrics provides Prometheus instrumentation for the crop
// advisory backend: API latency and throughput, Mongo query performance,
// inference path usage, CSV ingestion, and outbound service health.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_query_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_query_errors_total",
			Help: "Total number of MongoDB operation errors",
		},
		[]string{"operation", "collection"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Inference Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of yield predictions by model path",
		},
		[]string{"model"}, // "ml", "rule_based", "emergency"
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prediction_duration_seconds",
			Help:    "Duration of yield prediction computation in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crop_recommendations_total",
			Help: "Total number of crop recommendations by path",
		},
		[]string{"path"}, // "ml", "similarity"
	)

	UnknownLabelEncodings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unknown_label_encodings_total",
			Help: "Total number of unseen labels encoded to the default index",
		},
		[]string{"vocabulary"}, // "area", "crop"
	)

	// CSV Ingestion Metrics
	CSVRowsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csv_rows_ingested_total",
			Help: "Total number of CSV rows processed by outcome",
		},
		[]string{"outcome"}, // "valid", "invalid"
	)

	CSVUploadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "csv_upload_duration_seconds",
			Help:    "Duration of CSV upload processing in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Outbound Service Metrics
	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duration of OpenRouter chat completion calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"result"}, // "success", "failure"
	)

	ChatResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_responses_total",
			Help: "Total number of chatbot responses by answering path",
		},
		[]string{"service"}, // "openrouter", "template", "redirect"
	)

	WeatherFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "weather_mock_fallbacks_total",
			Help: "Total number of weather requests served from mock data",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a MongoDB operation metric.
func RecordDBQuery(operation, collection string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, collection).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPrediction records a yield prediction by model path.
func RecordPrediction(model string, duration time.Duration) {
	PredictionsTotal.WithLabelValues(model).Inc()
	PredictionDuration.Observe(duration.Seconds())
}

// RecordCSVIngestion records processed CSV rows.
func RecordCSVIngestion(valid, invalid int, duration time.Duration) {
	CSVRowsIngested.WithLabelValues("valid").Add(float64(valid))
	CSVRowsIngested.WithLabelValues("invalid").Add(float64(invalid))
	CSVUploadDuration.Observe(duration.Seconds())
}

// RecordLLMRequest records an OpenRouter call outcome.
func RecordLLMRequest(duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	LLMRequestDuration.WithLabelValues(result).Observe(duration.Seconds())
}
