// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package models

// CropRanking is a crop aggregated by average yield.
type CropRanking struct {
	CropType    string  `json:"crop_type" bson:"_id"`
	AvgYield    float64 `json:"avg_yield" bson:"avg_yield"`
	RecordCount int64   `json:"record_count" bson:"record_count"`
}

// StateRanking is a state aggregated by total cultivated area.
type StateRanking struct {
	State       string  `json:"state" bson:"_id"`
	TotalArea   float64 `json:"total_area" bson:"total_area"`
	RecordCount int64   `json:"record_count" bson:"record_count"`
}

// CropStatistics is the comprehensive dataset summary for
// GET /api/crop-data/statistics.
type CropStatistics struct {
	TotalRecords       int64          `json:"total_records"`
	UniqueCrops        int64          `json:"unique_crops"`
	UniqueStates       int64          `json:"unique_states"`
	UniqueDistricts    int64          `json:"unique_districts"`
	AvgYield           float64        `json:"avg_yield"`
	MinYield           float64        `json:"min_yield"`
	MaxYield           float64        `json:"max_yield"`
	TotalAreaHectares  float64        `json:"total_area_hectares"`
	TopCrops           []CropRanking  `json:"top_crops"`
	TopStates          []StateRanking `json:"top_states"`
}

// YieldAnalysisGroup is one state+crop aggregation bucket for
// GET /api/crop-data/yield-analysis.
type YieldAnalysisGroup struct {
	CropType    string  `json:"crop_type" bson:"crop_type"`
	State       string  `json:"state" bson:"state"`
	AvgYield    float64 `json:"avg_yield" bson:"avg_yield"`
	MinYield    float64 `json:"min_yield" bson:"min_yield"`
	MaxYield    float64 `json:"max_yield" bson:"max_yield"`
	RecordCount int64   `json:"record_count" bson:"record_count"`
	TotalArea   float64 `json:"total_area" bson:"total_area"`
}
