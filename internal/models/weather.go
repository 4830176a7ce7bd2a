// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package models

import "time"

// ForecastDay is one day of weather forecast.
type ForecastDay struct {
	Date         string  `json:"date"`
	MaxTempC     float64 `json:"max_temp_c"`
	MinTempC     float64 `json:"min_temp_c"`
	AvgHumidity  float64 `json:"avg_humidity"`
	TotalRainMM  float64 `json:"total_rain_mm"`
	Condition    string  `json:"condition"`
	ChanceOfRain int     `json:"chance_of_rain"`
}

// WeatherData is the current weather report for a location, augmented
// with agricultural advice derived from the conditions.
type WeatherData struct {
	Location           string        `json:"location"`
	Temperature        float64       `json:"temperature"`
	Humidity           float64       `json:"humidity"`
	Rainfall           float64       `json:"rainfall"`
	WindSpeed          float64       `json:"wind_speed"`
	WeatherCondition   string        `json:"weather_condition"`
	AgriculturalAdvice []string      `json:"agricultural_advice"`
	Forecast           []ForecastDay `json:"forecast,omitempty"`
	Source             string        `json:"source"` // "weatherapi" or "mock"
}

// WeatherHistory is a summarized historical view for a location.
type WeatherHistory struct {
	Location       string        `json:"location"`
	Days           int           `json:"days"`
	AvgTemperature float64       `json:"avg_temperature"`
	AvgHumidity    float64       `json:"avg_humidity"`
	TotalRainfall  float64       `json:"total_rainfall"`
	Daily          []ForecastDay `json:"daily"`
	Summary        []string      `json:"agricultural_summary"`
	Source         string        `json:"source"`
}

// ChatRequest is the advisory chatbot input.
type ChatRequest struct {
	Question string `json:"question" validate:"required,min=1,max=2000"`
	Location string `json:"location,omitempty"`
	Language string `json:"language,omitempty"`
}

// ChatResponse is the advisory chatbot output.
//
// AIService names the answering path: "OpenRouter (<model>)" when the
// LLM responded, "Agricultural Knowledge Base" for template answers,
// and "Agricultural Assistant" for non-agricultural redirects.
type ChatResponse struct {
	Response         string    `json:"response"`
	AIService        string    `json:"ai_service"`
	Confidence       string    `json:"confidence"`
	QuestionCategory string    `json:"question_category"`
	Timestamp        time.Time `json:"timestamp"`
}
