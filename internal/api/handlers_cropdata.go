// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package api

import (
	"net/http"
	"time"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/database"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// cropDataPage is the response payload for GET /api/crop-data.
type cropDataPage struct {
	Records    []models.CropRecord   `json:"records"`
	Pagination models.PaginationInfo `json:"pagination"`
}

// CropData lists crop records with optional filters and offset pagination.
// Filters crop_type, state, and district are case-insensitive exact matches.
func (h *Handler) CropData(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database not available", nil)
		return
	}

	req := CropDataRequest{
		Limit:    getIntParam(r, "limit", h.cfg.API.DefaultPageSize),
		Offset:   getIntParam(r, "offset", 0),
		CropType: r.URL.Query().Get("crop_type"),
		State:    r.URL.Query().Get("state"),
		District: r.URL.Query().Get("district"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if req.Limit > h.cfg.API.MaxPageSize {
		req.Limit = h.cfg.API.MaxPageSize
	}

	filter := database.CropDataFilter{
		CropType: req.CropType,
		State:    req.State,
		District: req.District,
	}

	records, err := h.store.ListCropRecords(r.Context(), filter, int64(req.Limit), int64(req.Offset))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list crop records", err)
		return
	}

	total, err := h.store.CountCropRecords(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count crop records", err)
		return
	}

	respondSuccess(w, http.StatusOK, &cropDataPage{
		Records: records,
		Pagination: models.PaginationInfo{
			Limit:      req.Limit,
			Offset:     req.Offset,
			TotalCount: total,
			HasMore:    int64(req.Offset+req.Limit) < total,
		},
	}, started)
}

// CropDataStatistics returns the comprehensive dataset summary computed
// by a single aggregation pass over the crop_data collection.
func (h *Handler) CropDataStatistics(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database not available", nil)
		return
	}

	stats, err := h.store.ComprehensiveStatistics(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute statistics", err)
		return
	}

	respondSuccess(w, http.StatusOK, stats, started)
}

// YieldAnalysis returns per state and crop aggregation buckets, optionally
// narrowed by the state and crop_type query parameters.
func (h *Handler) YieldAnalysis(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database not available", nil)
		return
	}

	req := YieldAnalysisRequest{
		State:    r.URL.Query().Get("state"),
		CropType: r.URL.Query().Get("crop_type"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	groups, err := h.store.YieldAnalysis(r.Context(), req.State, req.CropType)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to run yield analysis", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"groups": groups,
		"count":  len(groups),
	}, started)
}
