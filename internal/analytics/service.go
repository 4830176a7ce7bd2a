// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

// Package analytics ingests crop data CSV uploads and delegates dataset
// analytics to the database layer.
package analytics

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/metrics"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// maxReportedErrors caps how many row errors an upload response carries.
const maxReportedErrors = 10

// Store is the persistence surface the ingestion path needs.
type Store interface {
	InsertCropRecords(ctx context.Context, records []models.CropRecord) error
	InsertUploadBatch(ctx context.Context, batch *models.UploadBatch) error
}

// Service processes CSV uploads into crop records.
type Service struct {
	store Store
}

// NewService creates the analytics service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ProcessCSV validates and ingests one uploaded CSV file. Valid rows are
// bulk-inserted under a fresh batch ID; the batch summary is recorded
// even when every row is invalid. At most the first ten row errors are
// returned.
func (s *Service) ProcessCSV(ctx context.Context, r io.Reader, filename, uploadedBy string) (*models.CSVUploadResponse, error) {
	start := time.Now()
	batchID := uuid.NewString()

	result, err := parseCropCSV(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	now := time.Now()
	for i := range result.Valid {
		result.Valid[i].UploadBatchID = batchID
		result.Valid[i].CreatedAt = now
	}

	if len(result.Valid) > 0 {
		if err := s.store.InsertCropRecords(ctx, result.Valid); err != nil {
			return nil, fmt.Errorf("failed to insert crop records: %w", err)
		}
	}

	elapsed := time.Since(start)
	batch := &models.UploadBatch{
		BatchID:        batchID,
		Filename:       filename,
		TotalRows:      result.TotalRows,
		ValidRows:      len(result.Valid),
		InvalidRows:    result.TotalRows - len(result.Valid),
		ProcessingSecs: roundSeconds(elapsed),
		UploadedBy:     uploadedBy,
		CreatedAt:      now,
	}
	if err := s.store.InsertUploadBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to record upload batch: %w", err)
	}

	metrics.RecordCSVIngestion(batch.ValidRows, batch.InvalidRows, elapsed)
	logging.Info().
		Str("batch_id", batchID).
		Str("filename", filename).
		Int("total_rows", batch.TotalRows).
		Int("valid_rows", batch.ValidRows).
		Int("invalid_rows", batch.InvalidRows).
		Msg("Processed CSV upload")

	errs := result.Errors
	if len(errs) > maxReportedErrors {
		errs = errs[:maxReportedErrors]
	}

	return &models.CSVUploadResponse{
		Success:        true,
		UploadBatchID:  batchID,
		TotalRows:      batch.TotalRows,
		ValidRows:      batch.ValidRows,
		InvalidRows:    batch.InvalidRows,
		ProcessingTime: batch.ProcessingSecs,
		Errors:         errs,
	}, nil
}

// roundSeconds reports a duration as seconds with millisecond precision.
func roundSeconds(d time.Duration) float64 {
	return float64(d.Round(time.Millisecond)) / float64(time.Second)
}
