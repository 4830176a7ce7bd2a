// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package inference

import (
	"testing"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

func ruleBasedService(t *testing.T) *Service {
	t.Helper()
	return NewService(&config.MLConfig{
		ModelDir:       t.TempDir(),
		YieldModelFile: "yield_model.json",
		CropModelFile:  "crop_model.json",
	})
}

func TestRecommendCropReturnsTopThree(t *testing.T) {
	svc := ruleBasedService(t)
	resp := svc.RecommendCrop(&models.CropRecommendationRequest{
		N: 80, P: 40, K: 40,
		Temperature: 27, Humidity: 80, PH: 6.5, Rainfall: 1200,
	})

	if len(resp.RecommendedCrops) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(resp.RecommendedCrops))
	}

	seen := map[string]bool{}
	for i, rec := range resp.RecommendedCrops {
		if rec.Rank != i+1 {
			t.Errorf("rank at position %d is %d", i, rec.Rank)
		}
		if seen[rec.Crop] {
			t.Errorf("duplicate crop %q", rec.Crop)
		}
		seen[rec.Crop] = true
		if i > 0 && rec.Suitability > resp.RecommendedCrops[i-1].Suitability {
			t.Error("recommendations not sorted by suitability descending")
		}
	}
}

func TestRecommendCropFavorsRiceInRiceConditions(t *testing.T) {
	svc := ruleBasedService(t)
	// Rice requirements: high N, warm, humid, heavy rainfall.
	resp := svc.RecommendCrop(&models.CropRecommendationRequest{
		N: 80, P: 40, K: 40,
		Temperature: 28, Humidity: 85, PH: 6.2, Rainfall: 1500,
	})

	if resp.RecommendedCrops[0].Crop != "Rice" {
		t.Errorf("top crop = %q, want Rice", resp.RecommendedCrops[0].Crop)
	}
}

func TestRecommendCropConfidenceScoresMatchRanking(t *testing.T) {
	svc := ruleBasedService(t)
	resp := svc.RecommendCrop(&models.CropRecommendationRequest{
		N: 50, P: 30, K: 30,
		Temperature: 20, Humidity: 55, PH: 6.8, Rainfall: 450,
	})

	if len(resp.ConfidenceScores) != len(resp.RecommendedCrops) {
		t.Fatalf("confidence scores for %d crops, want %d", len(resp.ConfidenceScores), len(resp.RecommendedCrops))
	}
	for _, rec := range resp.RecommendedCrops {
		if resp.ConfidenceScores[rec.Crop] != rec.Suitability {
			t.Errorf("confidence for %q = %v, want %v", rec.Crop, resp.ConfidenceScores[rec.Crop], rec.Suitability)
		}
	}
}

func TestRecommendCropOutOfRangeInputsAccepted(t *testing.T) {
	svc := ruleBasedService(t)
	// All values outside documented training ranges; must not panic or
	// come back empty.
	resp := svc.RecommendCrop(&models.CropRecommendationRequest{
		N: 200, P: 1, K: 300,
		Temperature: 55, Humidity: 5, PH: 3, Rainfall: 2000,
	})
	if len(resp.RecommendedCrops) != 3 {
		t.Errorf("got %d recommendations, want 3", len(resp.RecommendedCrops))
	}
}

func TestClassifierPathRanksClassesByProbability(t *testing.T) {
	cropJSON := `{
		"schema_version": 1,
		"features": ["N", "P", "K", "temperature", "humidity", "ph", "rainfall"],
		"classes": ["Rice", "Wheat", "Maize", "Cotton"],
		"trees": [{
			"children_left": [-1],
			"children_right": [-1],
			"feature": [-1],
			"threshold": [0],
			"value": [[0.1, 0.6, 0.2, 0.1]]
		}]
	}`
	cfg := writeModelDir(t, "", cropJSON)
	svc := NewService(cfg)

	resp := svc.RecommendCrop(&models.CropRecommendationRequest{
		N: 50, P: 30, K: 30, Temperature: 20, Humidity: 55, PH: 6.8, Rainfall: 450,
	})

	if resp.RecommendedCrops[0].Crop != "Wheat" {
		t.Errorf("top crop = %q, want Wheat", resp.RecommendedCrops[0].Crop)
	}
	if resp.RecommendedCrops[0].Suitability != 0.6 {
		t.Errorf("top suitability = %v, want 0.6", resp.RecommendedCrops[0].Suitability)
	}
	if resp.RecommendedCrops[1].Crop != "Maize" {
		t.Errorf("second crop = %q, want Maize", resp.RecommendedCrops[1].Crop)
	}
}

func TestSoilAnalysisLevels(t *testing.T) {
	cases := []struct {
		req  models.CropRecommendationRequest
		key  string
		want string
	}{
		{models.CropRecommendationRequest{N: 120}, "nitrogen_level", "High"},
		{models.CropRecommendationRequest{N: 75}, "nitrogen_level", "Medium"},
		{models.CropRecommendationRequest{N: 30}, "nitrogen_level", "Low"},
		{models.CropRecommendationRequest{P: 60}, "phosphorus_level", "High"},
		{models.CropRecommendationRequest{K: 80}, "potassium_level", "Medium"},
		{models.CropRecommendationRequest{PH: 5.5}, "ph_status", "Acidic"},
		{models.CropRecommendationRequest{PH: 7.0}, "ph_status", "Neutral"},
		{models.CropRecommendationRequest{PH: 8.2}, "ph_status", "Alkaline"},
	}
	for _, c := range cases {
		analysis := soilAnalysis(&c.req)
		if got := analysis[c.key]; got != c.want {
			t.Errorf("soilAnalysis(%+v)[%q] = %v, want %q", c.req, c.key, got, c.want)
		}
	}
}

func TestWeatherSuitability(t *testing.T) {
	w := weatherSuitability(&models.CropRecommendationRequest{
		Temperature: 25, Humidity: 70, Rainfall: 800,
	})
	if w["temperature_status"] != "Optimal" || w["humidity_status"] != "Good" || w["rainfall_status"] != "Adequate" {
		t.Errorf("unexpected suitability %v", w)
	}

	w = weatherSuitability(&models.CropRecommendationRequest{
		Temperature: 40, Humidity: 30, Rainfall: 100,
	})
	if w["temperature_status"] != "Sub-optimal" || w["humidity_status"] != "Low" || w["rainfall_status"] != "Low" {
		t.Errorf("unexpected suitability %v", w)
	}
}

func TestRangeMatch(t *testing.T) {
	bounds := [2]float64{6.0, 7.0}
	if got := rangeMatch(6.5, bounds, 2); got != 1.0 {
		t.Errorf("inside range = %v, want 1.0", got)
	}
	if got := rangeMatch(5.0, bounds, 2); got != 0.5 {
		t.Errorf("one unit below = %v, want 0.5", got)
	}
	if got := rangeMatch(20, bounds, 2); got != 0 {
		t.Errorf("far outside = %v, want 0", got)
	}
}

func TestMinimumMatch(t *testing.T) {
	if got := minimumMatch(80, 60); got != 1.0 {
		t.Errorf("above minimum = %v, want 1.0", got)
	}
	if got := minimumMatch(30, 60); got != 0.5 {
		t.Errorf("half of minimum = %v, want 0.5", got)
	}
}
