// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

// Package api provides the HTTP handlers and Chi routing for the crop
// advisory backend.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/auth"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/database"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// Version is the application version reported by the health endpoint.
// Overridden at build time via -ldflags.
var Version = "dev"

// CropStore is the Mongo surface the data endpoints depend on.
// *database.Database satisfies it; tests substitute fakes.
type CropStore interface {
	ListCropRecords(ctx context.Context, filter database.CropDataFilter, limit, offset int64) ([]models.CropRecord, error)
	CountCropRecords(ctx context.Context, filter database.CropDataFilter) (int64, error)
	ComprehensiveStatistics(ctx context.Context) (*models.CropStatistics, error)
	YieldAnalysis(ctx context.Context, state, cropType string) ([]models.YieldAnalysisGroup, error)
	SaveFieldProfile(ctx context.Context, doc *models.FieldProfileDocument) error
	ListFieldProfiles(ctx context.Context, farmerID string) ([]models.FieldProfileDocument, error)
	GetUploadBatch(ctx context.Context, batchID string) (*models.UploadBatch, error)
	GetFarmerByEmail(ctx context.Context, email string) (*models.Farmer, error)
	UpsertFarmer(ctx context.Context, farmer *models.Farmer) error
	Ping(ctx context.Context) error
}

// Predictor is the inference surface the prediction endpoints depend on.
type Predictor interface {
	PredictYield(req *models.YieldPredictionRequest) *models.YieldPredictionResponse
	PredictSimpleYield(req *models.SimpleYieldRequest) *models.YieldPredictionResponse
	RecommendCrop(req *models.CropRecommendationRequest) *models.CropRecommendationResponse
	DetectDisease(image []byte) *models.DiseaseDetectionResponse
	ModelInfo() *models.ModelInfo
	Status() string
}

// Uploader is the CSV ingestion surface for the upload endpoint.
type Uploader interface {
	ProcessCSV(ctx context.Context, r io.Reader, filename, uploadedBy string) (*models.CSVUploadResponse, error)
}

// Advisor is the chatbot surface for the chat endpoint.
type Advisor interface {
	Advise(ctx context.Context, req *models.ChatRequest) *models.ChatResponse
}

// WeatherReporter is the weather surface for the weather endpoints.
type WeatherReporter interface {
	Current(ctx context.Context, location string) *models.WeatherData
	History(location string, days int) *models.WeatherHistory
}

// Handler holds the services behind the HTTP endpoints. A nil store means
// Mongo was unreachable at startup; data endpoints then return 503 while
// prediction, weather, and chat endpoints keep working.
type Handler struct {
	cfg       *config.Config
	store     CropStore
	auth      *auth.Service
	predictor Predictor
	uploader  Uploader
	advisor   Advisor
	weather   WeatherReporter
}

// NewHandler creates the API handler with its service dependencies.
func NewHandler(
	cfg *config.Config,
	store CropStore,
	authService *auth.Service,
	predictor Predictor,
	uploader Uploader,
	advisor Advisor,
	weather WeatherReporter,
) *Handler {
	return &Handler{
		cfg:       cfg,
		store:     store,
		auth:      authService,
		predictor: predictor,
		uploader:  uploader,
		advisor:   advisor,
		weather:   weather,
	}
}

// Health reports overall service health including dependency status.
// Returns 200 with status "healthy" when Mongo answers a ping, and 200
// with status "degraded" otherwise: the server still serves predictions
// and weather without the database.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "disconnected"
	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err == nil {
			dbStatus = "connected"
		}
	}

	status := "healthy"
	if dbStatus != "connected" {
		status = "degraded"
	}

	resp := &models.HealthResponse{
		Status:          status,
		Timestamp:       time.Now(),
		DatabaseStatus:  dbStatus,
		MLServiceStatus: h.predictor.Status(),
		Version:         Version,
	}
	respondSuccess(w, http.StatusOK, resp, time.Now())
}

// HealthLive is the liveness probe. Always 200 while the process runs.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady is the readiness probe. Returns 503 until Mongo answers.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database not connected", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database not reachable", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"}, time.Now())
}

// Login authenticates a farmer and issues a JWT.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.AuthRequest
	if apiErr := decodeJSONBody(r, &req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	resp, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token", err)
		return
	}

	if h.store != nil {
		h.recordFarmerLogin(r.Context(), resp)
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", resp.UserID).
		Msg("Farmer logged in")
	respondSuccess(w, http.StatusOK, resp, started)
}

// recordFarmerLogin keeps the farmers collection in sync with logins:
// first login inserts the farmer record, later logins refresh it.
// Failures are logged and never affect the login response.
func (h *Handler) recordFarmerLogin(ctx context.Context, resp *models.AuthResponse) {
	farmer, err := h.store.GetFarmerByEmail(ctx, resp.Email)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to look up farmer record on login")
		return
	}
	if farmer == nil {
		farmer = &models.Farmer{
			Email:     resp.Email,
			CreatedAt: time.Now(),
		}
	}
	farmer.FarmerID = resp.UserID

	if err := h.store.UpsertFarmer(ctx, farmer); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to record farmer login")
	}
}
