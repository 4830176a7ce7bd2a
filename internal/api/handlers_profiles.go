// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package api

import (
	"net/http"
	"time"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/auth"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// CreateFieldProfile stores a field profile for the authenticated farmer.
// The farmer id is always taken from the JWT claims so a client cannot
// write profiles under another farmer's id.
func (h *Handler) CreateFieldProfile(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database not available", nil)
		return
	}

	var req FieldProfileCreateRequest
	if apiErr := decodeJSONBody(r, &req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	doc := &models.FieldProfileDocument{
		FarmerID:     claims.UserID,
		FieldProfile: req.FieldProfile,
	}
	if err := h.store.SaveFieldProfile(r.Context(), doc); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save field profile", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("farmer_id", claims.UserID).
		Str("field_name", sanitizeLogValue(req.FieldProfile.FieldName)).
		Msg("Field profile created")
	respondSuccess(w, http.StatusCreated, doc, started)
}

// ListFieldProfiles returns the authenticated farmer's field profiles.
func (h *Handler) ListFieldProfiles(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database not available", nil)
		return
	}

	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	profiles, err := h.store.ListFieldProfiles(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list field profiles", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"count":    len(profiles),
	}, started)
}
