// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package inference

import (
	"math"
	"testing"
)

func TestTemperatureFactor(t *testing.T) {
	cases := []struct {
		temp float64
		want float64
	}{
		{25, 1.0},
		{20, 1.0},
		{30, 1.0},
		{10, 0.5},
		{45, 0.5},
		{14.9, 0.5},
		{40.1, 0.5},
		{17, 0.7},
		{37, 0.7},
		{32, 0.85},
		{35, 0.85},
	}
	for _, c := range cases {
		if got := temperatureFactor(c.temp); got != c.want {
			t.Errorf("temperatureFactor(%v) = %v, want %v", c.temp, got, c.want)
		}
	}
}

func TestRainfallFactor(t *testing.T) {
	cases := []struct {
		rainfall float64
		want     float64
	}{
		{100, 1.0},
		{75, 1.0},
		{200, 1.0},
		{20, 0.4},
		{450, 0.4},
		{40, 0.6},
		{350, 0.6},
		{60, 0.8},
		{250, 0.8},
	}
	for _, c := range cases {
		if got := rainfallFactor(c.rainfall); got != c.want {
			t.Errorf("rainfallFactor(%v) = %v, want %v", c.rainfall, got, c.want)
		}
	}
}

func TestCropFactor(t *testing.T) {
	cases := []struct {
		crop     string
		temp     float64
		rainfall float64
		want     float64
	}{
		{"Rice", 25, 200, 1.2},
		{"Basmati Rice", 25, 200, 1.2},
		{"Rice", 25, 100, 0.9},
		{"Wheat", 20, 100, 1.1},
		{"Wheat", 30, 100, 0.8},
		{"Maize", 25, 150, 1.15},
		{"Sweet Corn", 25, 150, 1.15},
		{"Maize", 25, 50, 0.85},
		{"Maize", 35, 150, 0.85},
		{"Cotton", 25, 100, 1.0},
	}
	for _, c := range cases {
		if got := cropFactor(c.crop, c.temp, c.rainfall); got != c.want {
			t.Errorf("cropFactor(%q, %v, %v) = %v, want %v", c.crop, c.temp, c.rainfall, got, c.want)
		}
	}
}

func TestFallbackPredictionOptimalConditions(t *testing.T) {
	result := fallbackPrediction(yieldInput{
		Crop:         "Cotton",
		Temperature:  25,
		Rainfall:     100,
		AreaHectares: 2,
	})

	if result.ModelTag != ModelTagRuleBased {
		t.Errorf("ModelTag = %q, want %q", result.ModelTag, ModelTagRuleBased)
	}
	if result.YieldPerHectare != 30.0 {
		t.Errorf("YieldPerHectare = %v, want 30.0", result.YieldPerHectare)
	}
	if result.TotalProduction != 60.0 {
		t.Errorf("TotalProduction = %v, want 60.0", result.TotalProduction)
	}
}

func TestFallbackPredictionTotalMatchesYieldTimesArea(t *testing.T) {
	inputs := []yieldInput{
		{Crop: "Rice", Temperature: 28, Rainfall: 180, AreaHectares: 3.7},
		{Crop: "Wheat", Temperature: 12, Rainfall: 20, AreaHectares: 0.5},
		{Crop: "Maize", Temperature: 22, Rainfall: 120, AreaHectares: 11.25},
	}
	for _, input := range inputs {
		result := fallbackPrediction(input)
		want := roundTo(result.YieldPerHectare*input.AreaHectares, 2)
		if result.TotalProduction != want {
			t.Errorf("%s: TotalProduction = %v, want %v", input.Crop, result.TotalProduction, want)
		}
	}
}

func TestFallbackPredictionReportsFactors(t *testing.T) {
	result := fallbackPrediction(yieldInput{
		Crop:         "Rice",
		Temperature:  10,
		Rainfall:     20,
		AreaHectares: 1,
	})

	for _, key := range []string{"temperature_factor", "rainfall_factor", "crop_factor"} {
		if _, ok := result.Factors[key]; !ok {
			t.Errorf("missing factor %q", key)
		}
	}
	if result.Factors["temperature_factor"] != 0.5 {
		t.Errorf("temperature_factor = %v, want 0.5", result.Factors["temperature_factor"])
	}
	if result.Factors["rainfall_factor"] != 0.4 {
		t.Errorf("rainfall_factor = %v, want 0.4", result.Factors["rainfall_factor"])
	}
}

func TestFallbackPredictionEmergencyOnNonFiniteInput(t *testing.T) {
	result := fallbackPrediction(yieldInput{
		Crop:         "Rice",
		Temperature:  math.NaN(),
		Rainfall:     100,
		AreaHectares: 1,
	})

	if result.ModelTag != ModelTagEmergency {
		t.Errorf("ModelTag = %q, want %q", result.ModelTag, ModelTagEmergency)
	}
	if result.YieldPerHectare != 25.0 || result.TotalProduction != 25.0 {
		t.Errorf("unexpected emergency values: %v / %v", result.YieldPerHectare, result.TotalProduction)
	}
}

func TestFallbackPredictionBoundedForExtremes(t *testing.T) {
	extremes := []yieldInput{
		{Crop: "Rice", Temperature: -100, Rainfall: 0, AreaHectares: 1},
		{Crop: "Wheat", Temperature: 1000, Rainfall: 1e6, AreaHectares: 1},
	}
	for _, input := range extremes {
		result := fallbackPrediction(input)
		if result.YieldPerHectare < 0 || result.YieldPerHectare > baseYieldQuintalHa*1.2 {
			t.Errorf("unbounded yield %v for %+v", result.YieldPerHectare, input)
		}
	}
}
