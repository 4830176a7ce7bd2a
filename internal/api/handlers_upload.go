// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package api

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/auth"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
)

// Upload size limits. CSV files larger than this are rejected before
// parsing; disease images are bounded the same way.
const (
	maxCSVUploadBytes   = 25 << 20 // 25 MiB
	maxImageUploadBytes = 10 << 20 // 10 MiB
)

// UploadCSV ingests a multipart CSV of crop records. Requires auth.
// The file is validated row by row; invalid rows are counted and reported
// but never abort the batch.
func (h *Handler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.uploader == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Upload service not available", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCSVUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Multipart field 'file' is required", err)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "File must be a CSV", nil)
		return
	}

	uploadedBy := ""
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		uploadedBy = claims.UserID
	}

	resp, err := h.uploader.ProcessCSV(r.Context(), file, header.Filename, uploadedBy)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to process CSV upload", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("filename", sanitizeLogValue(header.Filename)).
		Str("batch_id", resp.UploadBatchID).
		Int("valid_rows", resp.ValidRows).
		Int("invalid_rows", resp.InvalidRows).
		Msg("CSV upload processed")
	respondSuccess(w, http.StatusOK, resp, started)
}

// UploadBatchStatus returns the ingestion summary for one batch. Requires auth.
func (h *Handler) UploadBatchStatus(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database not available", nil)
		return
	}

	batchID := chi.URLParam(r, "batchID")
	batch, err := h.store.GetUploadBatch(r.Context(), batchID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to look up upload batch", err)
		return
	}
	if batch == nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Upload batch not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, batch, started)
}

// DetectDisease analyzes an uploaded plant image. Requires auth.
// The multipart field is "image", with "file" accepted as a fallback.
func (h *Handler) DetectDisease(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes)
	file, _, err := r.FormFile("image")
	if err != nil {
		file, _, err = r.FormFile("file")
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Multipart field 'image' is required", err)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read uploaded image", err)
		return
	}
	if len(image) == 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Uploaded image is empty", nil)
		return
	}

	respondSuccess(w, http.StatusOK, h.predictor.DetectDisease(image), started)
}
