// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package weather

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

var mockConditions = []string{"Clear", "Partly Cloudy", "Cloudy", "Light Rain", "Sunny"}

// mockWeather generates plausible current conditions for demo use.
// Values stay in agriculturally meaningful ranges: 20-40°C, 40-90%
// humidity, 0-50mm rain.
func mockWeather(location string) *models.WeatherData {
	temp := roundTo1(20 + rand.Float64()*20)

	forecast := make([]models.ForecastDay, forecastDays)
	for i := range forecast {
		forecast[i] = models.ForecastDay{
			Date:         fmt.Sprintf("day+%d", i+1),
			MaxTempC:     roundTo1(temp + rand.Float64()*10 - 5),
			MinTempC:     roundTo1(temp - 5 - rand.Float64()*10),
			AvgHumidity:  roundTo1(40 + rand.Float64()*50),
			TotalRainMM:  roundTo1(rand.Float64() * 30),
			Condition:    mockConditions[rand.Intn(len(mockConditions))],
			ChanceOfRain: rand.Intn(101),
		}
	}

	return &models.WeatherData{
		Location:         location,
		Temperature:      temp,
		Humidity:         roundTo1(40 + rand.Float64()*50),
		Rainfall:         roundTo1(rand.Float64() * 50),
		WindSpeed:        roundTo1(5 + rand.Float64()*15),
		WeatherCondition: mockConditions[rand.Intn(len(mockConditions))],
		Forecast:         forecast,
		Source:           "mock",
	}
}

// mockHistory generates a historical period summary.
func mockHistory(location string, days int) *models.WeatherHistory {
	daily := make([]models.ForecastDay, days)
	var sumTemp, sumHumidity, totalRain float64
	for i := range daily {
		maxTemp := roundTo1(25 + rand.Float64()*25 - 10)
		humidity := roundTo1(50 + rand.Float64()*50 - 20)
		rain := roundTo1(rand.Float64() * 40)

		daily[i] = models.ForecastDay{
			Date:        fmt.Sprintf("day-%d", days-i),
			MaxTempC:    maxTemp,
			MinTempC:    roundTo1(maxTemp - 5 - rand.Float64()*10),
			AvgHumidity: humidity,
			TotalRainMM: rain,
			Condition:   mockConditions[rand.Intn(len(mockConditions))],
		}
		sumTemp += maxTemp
		sumHumidity += humidity
		totalRain += rain
	}

	history := &models.WeatherHistory{
		Location:      location,
		Days:          days,
		Daily:         daily,
		TotalRainfall: roundTo1(totalRain),
		Source:        "mock",
	}
	if days > 0 {
		history.AvgTemperature = roundTo1(sumTemp / float64(days))
		history.AvgHumidity = roundTo1(sumHumidity / float64(days))
	}
	history.Summary = historicalSummary(history.AvgTemperature, history.AvgHumidity, history.TotalRainfall)
	return history
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
