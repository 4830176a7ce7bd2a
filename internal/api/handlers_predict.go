// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package api

import (
	"net/http"
	"time"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// PredictYield runs the structured yield prediction. The inference
// service never errors; degraded model state shows up in the response's
// model_version field instead.
func (h *Handler) PredictYield(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.YieldPredictionRequest
	if apiErr := decodeJSONBody(r, &req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	resp := h.predictor.PredictYield(&req)

	logging.Ctx(r.Context()).Info().
		Str("crop_type", sanitizeLogValue(req.CropType)).
		Str("state", sanitizeLogValue(req.State)).
		Float64("predicted_yield", resp.PredictedYield).
		Str("model", resp.ModelVersion).
		Msg("Yield prediction served")
	respondSuccess(w, http.StatusOK, resp, started)
}

// PredictSimpleYield runs the simplified quick-form prediction.
func (h *Handler) PredictSimpleYield(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.SimpleYieldRequest
	if apiErr := decodeJSONBody(r, &req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	resp := h.predictor.PredictSimpleYield(&req)
	respondSuccess(w, http.StatusOK, resp, started)
}

// CropRecommendation ranks crops for the given soil and climate values.
func (h *Handler) CropRecommendation(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.CropRecommendationRequest
	if apiErr := decodeJSONBody(r, &req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	respondSuccess(w, http.StatusOK, h.predictor.RecommendCrop(&req), started)
}

// ModelInfo describes the loaded inference artifacts.
func (h *Handler) ModelInfo(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, h.predictor.ModelInfo(), time.Now())
}
