// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package inference

import (
	"math"
	"strings"
)

// Rule-based prediction constants.
const (
	baseYieldQuintalHa = 30.0
	emergencyYield     = 25.0
)

// fallbackPrediction estimates yield without a model by scaling a base
// yield with temperature, rainfall, and crop adjustment factors. Bounded
// output for any input; non-finite inputs produce the emergency default.
func fallbackPrediction(input yieldInput) predictionResult {
	if !isFinite(input.Temperature) || !isFinite(input.Rainfall) || !isFinite(input.AreaHectares) {
		return emergencyPrediction()
	}

	tempFactor := temperatureFactor(input.Temperature)
	rainFactor := rainfallFactor(input.Rainfall)
	cropF := cropFactor(input.Crop, input.Temperature, input.Rainfall)

	predicted := roundTo(baseYieldQuintalHa*tempFactor*rainFactor*cropF, 2)
	total := roundTo(predicted*input.AreaHectares, 2)

	return predictionResult{
		YieldPerHectare: predicted,
		TotalProduction: total,
		ModelTag:        ModelTagRuleBased,
		Factors: map[string]interface{}{
			"temperature_factor": tempFactor,
			"rainfall_factor":    rainFactor,
			"crop_factor":        cropF,
		},
	}
}

// emergencyPrediction is the last-resort constant estimate.
func emergencyPrediction() predictionResult {
	return predictionResult{
		YieldPerHectare: emergencyYield,
		TotalProduction: emergencyYield,
		ModelTag:        ModelTagEmergency,
		Factors:         map[string]interface{}{},
	}
}

// temperatureFactor scales yield by distance from the 20-30°C optimum.
// The extreme band is checked before the moderate band so temperatures
// below 15 or above 40 always take the 0.5 factor.
func temperatureFactor(temp float64) float64 {
	switch {
	case temp >= 20 && temp <= 30:
		return 1.0
	case temp < 15 || temp > 40:
		return 0.5
	case temp < 20 || temp > 35:
		return 0.7
	default:
		return 0.85
	}
}

// rainfallFactor scales yield by distance from the 75-200mm optimum.
func rainfallFactor(rainfall float64) float64 {
	switch {
	case rainfall >= 75 && rainfall <= 200:
		return 1.0
	case rainfall < 30 || rainfall > 400:
		return 0.4
	case rainfall < 50 || rainfall > 300:
		return 0.6
	default:
		return 0.8
	}
}

// cropFactor applies crop-specific climate preferences. Matching is by
// substring so variants like "Basmati Rice" hit the rice rule.
func cropFactor(crop string, temp, rainfall float64) float64 {
	name := strings.ToLower(crop)
	switch {
	case strings.Contains(name, "rice"):
		if rainfall > 150 {
			return 1.2
		}
		return 0.9
	case strings.Contains(name, "wheat"):
		if temp >= 15 && temp <= 25 {
			return 1.1
		}
		return 0.8
	case strings.Contains(name, "maize") || strings.Contains(name, "corn"):
		if temp >= 20 && temp <= 30 && rainfall > 100 {
			return 1.15
		}
		return 0.85
	default:
		return 1.0
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
