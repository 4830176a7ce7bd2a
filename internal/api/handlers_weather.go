// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// defaultHistoryDays is the historical window when the days query
// parameter is omitted.
const defaultHistoryDays = 30

// Weather returns current conditions, forecast, and agricultural advice
// for a location. Never errors: upstream failures serve mock data.
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	location := chi.URLParam(r, "location")
	if location == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Location is required", nil)
		return
	}

	respondSuccess(w, http.StatusOK, h.weather.Current(r.Context(), location), started)
}

// WeatherHistory returns a historical weather summary for agricultural
// period analysis.
func (h *Handler) WeatherHistory(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req := WeatherHistoryRequest{
		Location: chi.URLParam(r, "location"),
		Days:     getIntParam(r, "days", defaultHistoryDays),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	respondSuccess(w, http.StatusOK, h.weather.History(req.Location, req.Days), started)
}

// ChatAdvice answers one advisory chat question.
func (h *Handler) ChatAdvice(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.ChatRequest
	if apiErr := decodeJSONBody(r, &req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	respondSuccess(w, http.StatusOK, h.advisor.Advise(r.Context(), &req), started)
}
