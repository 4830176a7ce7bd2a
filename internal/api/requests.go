// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package api

import (
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// CropDataRequest holds validated query parameters for GET /api/crop-data.
type CropDataRequest struct {
	Limit    int    `validate:"gte=1"`
	Offset   int    `validate:"gte=0"`
	CropType string `validate:"omitempty,max=100"`
	State    string `validate:"omitempty,max=100"`
	District string `validate:"omitempty,max=100"`
}

// YieldAnalysisRequest holds validated query parameters for
// GET /api/crop-data/yield-analysis.
type YieldAnalysisRequest struct {
	State    string `validate:"omitempty,max=100"`
	CropType string `validate:"omitempty,max=100"`
}

// FieldProfileCreateRequest is the body for POST /api/field-profiles.
// Ownership comes from the JWT claims, not the body.
type FieldProfileCreateRequest struct {
	FieldProfile models.FieldProfile `json:"field_profile" validate:"required"`
}

// WeatherHistoryRequest holds validated query parameters for
// GET /api/weather/{location}/history.
type WeatherHistoryRequest struct {
	Location string `validate:"required,max=200"`
	Days     int    `validate:"gte=1,lte=90"`
}
