// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package models

// YieldPredictionRequest is the structured yield prediction input.
// Soil and weather parameter ranges mirror the documented training data
// ranges; values outside them are still accepted by the wider validation
// bounds here and logged by the inference service.
type YieldPredictionRequest struct {
	CropType          string  `json:"crop_type" validate:"required"`
	FieldSizeHectares float64 `json:"field_size_hectares" validate:"required,gt=0"`
	State             string  `json:"state" validate:"required"`
	District          string  `json:"district" validate:"required"`
	Season            Season  `json:"season" validate:"required,oneof=Rabi Kharif Zaid Perennial"`

	// Soil parameters
	N  float64 `json:"N" validate:"gte=0,lte=200"`
	P  float64 `json:"P" validate:"gte=0,lte=200"`
	K  float64 `json:"K" validate:"gte=0,lte=300"`
	PH float64 `json:"ph" validate:"gte=3,lte=11"`

	// Weather parameters
	Temperature float64 `json:"temperature" validate:"gte=-10,lte=60"`
	Humidity    float64 `json:"humidity" validate:"gte=0,lte=100"`
	Rainfall    float64 `json:"rainfall" validate:"gte=0,lte=2000"`
}

// SimpleYieldRequest is the simplified prediction input used by the
// frontend quick form. Year and pesticides default when omitted.
type SimpleYieldRequest struct {
	CropType          string  `json:"crop_type" validate:"required"`
	State             string  `json:"state" validate:"required"`
	FieldSizeHectares float64 `json:"field_size_hectares" validate:"required,gt=0"`
	Rainfall          float64 `json:"rainfall" validate:"gte=0,lte=2000"`
	Temperature       float64 `json:"temperature" validate:"gte=-10,lte=60"`
	Year              int     `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	PesticidesTonnes  float64 `json:"pesticides_tonnes" validate:"gte=0"`
}

// YieldPredictionResponse is the yield prediction output.
//
// PredictedYield is in quintals per hectare. TotalProduction is
// PredictedYield multiplied by field size, rounded to two decimals.
// ModelVersion identifies which path produced the number:
// "Random Forest ML Model", "Rule-based Fallback", or "Emergency Default".
type YieldPredictionResponse struct {
	PredictedYield    float64                `json:"predicted_yield"`
	ConfidenceScore   float64                `json:"confidence_score"`
	FieldSizeHectares float64                `json:"field_size_hectares"`
	TotalProduction   float64                `json:"total_predicted_production"`
	ModelVersion      string                 `json:"model_version"`
	PredictionFactors map[string]interface{} `json:"prediction_factors"`
	Recommendations   []string               `json:"recommendations"`
}

// CropRecommendationRequest carries the seven soil and climate scalars
// used for crop recommendation.
type CropRecommendationRequest struct {
	N           float64 `json:"N" validate:"gte=0,lte=200"`
	P           float64 `json:"P" validate:"gte=0,lte=200"`
	K           float64 `json:"K" validate:"gte=0,lte=300"`
	Temperature float64 `json:"temperature" validate:"gte=-10,lte=60"`
	Humidity    float64 `json:"humidity" validate:"gte=0,lte=100"`
	PH          float64 `json:"ph" validate:"gte=3,lte=11"`
	Rainfall    float64 `json:"rainfall" validate:"gte=0,lte=2000"`
}

// RecommendedCrop is a single ranked crop suggestion.
type RecommendedCrop struct {
	Crop        string  `json:"crop"`
	Suitability float64 `json:"suitability"`
	Rank        int     `json:"rank"`
}

// CropRecommendationResponse is the crop recommendation output.
type CropRecommendationResponse struct {
	RecommendedCrops   []RecommendedCrop      `json:"recommended_crops"`
	SoilAnalysis       map[string]interface{} `json:"soil_analysis"`
	WeatherSuitability map[string]interface{} `json:"weather_suitability"`
	ConfidenceScores   map[string]float64     `json:"confidence_scores"`
}

// DetectedDisease is one candidate plant disease with its confidence.
type DetectedDisease struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Severity   string  `json:"severity"`
}

// DiseaseDetectionResponse is the plant disease detection output.
type DiseaseDetectionResponse struct {
	DetectedDiseases  []DetectedDisease  `json:"detected_diseases"`
	ConfidenceScores  map[string]float64 `json:"confidence_scores"`
	PlantHealthStatus string             `json:"plant_health_status"`
	Recommendations   []string           `json:"recommendations"`
}

// ModelInfo describes the loaded inference artifacts for GET /api/predict/model-info.
type ModelInfo struct {
	YieldModelLoaded bool     `json:"yield_model_loaded"`
	CropModelLoaded  bool     `json:"crop_model_loaded"`
	ModelVersion     string   `json:"model_version"`
	YieldFeatures    []string `json:"yield_features"`
	CropFeatures     []string `json:"crop_features"`
	SupportedCrops   []string `json:"supported_crops"`
	SupportedStates  []string `json:"supported_states"`
}
