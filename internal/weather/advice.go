// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package weather

import "strings"

// adviceFor derives agricultural advice from current conditions.
func adviceFor(temp, humidity, rainfall float64, condition string) []string {
	var advice []string

	switch {
	case temp > 35:
		advice = append(advice,
			"High temperature alert: Increase irrigation frequency and provide shade for sensitive crops")
	case temp < 15:
		advice = append(advice,
			"Cold weather warning: Protect crops from frost, consider covering young plants")
	case temp >= 20 && temp <= 30:
		advice = append(advice,
			"Optimal temperature range for most crops: Good conditions for field activities")
	}

	switch {
	case humidity > 80:
		advice = append(advice,
			"High humidity detected: Monitor crops for fungal diseases, ensure good air circulation")
	case humidity < 40:
		advice = append(advice,
			"Low humidity levels: Increase irrigation to prevent water stress")
	default:
		advice = append(advice,
			"Humidity levels are favorable for crop growth")
	}

	switch {
	case rainfall > 25:
		advice = append(advice,
			"Heavy rainfall expected: Ensure proper drainage, postpone pesticide spraying")
	case rainfall > 10:
		advice = append(advice,
			"Moderate rainfall: Good for crop growth, monitor soil moisture")
	case rainfall < 2:
		advice = append(advice,
			"Dry conditions: Plan irrigation schedule, check soil moisture levels")
	}

	switch {
	case strings.Contains(condition, "Clear") || strings.Contains(condition, "Sunny"):
		advice = append(advice,
			"Clear weather: Ideal for harvesting, spraying, and other field operations")
	case strings.Contains(condition, "Light Rain"):
		advice = append(advice,
			"Light rain conditions: Delay chemical applications, good for transplanting")
	case strings.Contains(condition, "Cloudy"):
		advice = append(advice,
			"Cloudy conditions: Reduced evaporation, adjust irrigation accordingly")
	}

	advice = append(advice,
		"Check your regional seasonal crop calendar for sowing and harvesting windows",
		"Monitor soil moisture regularly to fine-tune irrigation decisions")

	return advice
}

// historicalSummary condenses a historical period into advisory notes.
func historicalSummary(avgTemp, avgHumidity, totalRainfall float64) []string {
	var summary []string

	switch {
	case avgTemp > 30:
		summary = append(summary,
			"Above-average temperatures recorded: Watch for heat stress in standing crops")
	case avgTemp < 20:
		summary = append(summary,
			"Below-average temperatures recorded: Expect slower crop growth and maturation")
	default:
		summary = append(summary,
			"Temperatures were favorable for crop development during this period")
	}

	switch {
	case totalRainfall > 500:
		summary = append(summary,
			"Heavy cumulative rainfall: Check fields for waterlogging and root damage")
	case totalRainfall < 100:
		summary = append(summary,
			"Low cumulative rainfall: Dry period, supplemental irrigation was likely needed")
	default:
		summary = append(summary,
			"Moderate rainfall levels supported normal crop water requirements")
	}

	switch {
	case avgHumidity > 70:
		summary = append(summary,
			"Sustained high humidity: Elevated disease pressure, inspect crops closely")
	case avgHumidity < 50:
		summary = append(summary,
			"Sustained low humidity: Crops may have experienced water stress")
	}

	return summary
}
