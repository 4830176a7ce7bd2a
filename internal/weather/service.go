// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

// Package weather serves agricultural weather reports. Real data comes
// from WeatherAPI.com; when no API key is configured or the upstream
// call fails, a mock generator keeps the endpoint usable.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/metrics"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// forecastDays is how many days of forecast each report carries.
const forecastDays = 7

// Service fetches and augments weather data.
type Service struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewService creates the weather service. An empty API key is allowed;
// all reports are then generated from mock data.
func NewService(cfg *config.WeatherConfig) *Service {
	if cfg.APIKey == "" {
		logging.Warn().Msg("Weather API key not configured, serving mock weather data")
	}
	return &Service{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Current returns the current weather with forecast and agricultural
// advice for a location. Upstream failures fall back to mock data
// rather than erroring.
func (s *Service) Current(ctx context.Context, location string) *models.WeatherData {
	if s.apiKey != "" {
		data, err := s.fetchCurrent(ctx, location)
		if err == nil {
			data.AgriculturalAdvice = adviceFor(data.Temperature, data.Humidity, data.Rainfall, data.WeatherCondition)
			return data
		}
		logging.Warn().
			Str("location", location).
			Err(err).
			Msg("Weather API failed, falling back to mock data")
	}

	metrics.WeatherFallbacksTotal.Inc()
	data := mockWeather(location)
	data.AgriculturalAdvice = adviceFor(data.Temperature, data.Humidity, data.Rainfall, data.WeatherCondition)
	return data
}

// History returns a mock historical summary for agricultural analysis.
// WeatherAPI.com history requires a paid plan, so this endpoint is
// always generated.
func (s *Service) History(location string, days int) *models.WeatherHistory {
	return mockHistory(location, days)
}

// weatherAPIResponse mirrors the WeatherAPI.com forecast payload,
// reduced to the fields the service consumes.
type weatherAPIResponse struct {
	Location struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  float64 `json:"humidity"`
		PrecipMM  float64 `json:"precip_mm"`
		WindKPH   float64 `json:"wind_kph"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC      float64 `json:"maxtemp_c"`
				MinTempC      float64 `json:"mintemp_c"`
				AvgHumidity   float64 `json:"avghumidity"`
				TotalPrecipMM float64 `json:"totalprecip_mm"`
				ChanceOfRain  int     `json:"daily_chance_of_rain"`
				Condition     struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// fetchCurrent calls the WeatherAPI.com forecast endpoint, which also
// carries current conditions.
func (s *Service) fetchCurrent(ctx context.Context, location string) (*models.WeatherData, error) {
	endpoint := fmt.Sprintf("%s/forecast.json?key=%s&q=%s&days=%d&aqi=no&alerts=no",
		s.baseURL, url.QueryEscape(s.apiKey), url.QueryEscape(location), forecastDays)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	req.Header.Set("User-Agent", "CropPrediction/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload weatherAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	forecast := make([]models.ForecastDay, 0, len(payload.Forecast.ForecastDay))
	for _, day := range payload.Forecast.ForecastDay {
		forecast = append(forecast, models.ForecastDay{
			Date:         day.Date,
			MaxTempC:     day.Day.MaxTempC,
			MinTempC:     day.Day.MinTempC,
			AvgHumidity:  day.Day.AvgHumidity,
			TotalRainMM:  day.Day.TotalPrecipMM,
			Condition:    day.Day.Condition.Text,
			ChanceOfRain: day.Day.ChanceOfRain,
		})
	}

	resolved := location
	if payload.Location.Name != "" {
		resolved = fmt.Sprintf("%s, %s, %s",
			payload.Location.Name, payload.Location.Region, payload.Location.Country)
	}

	return &models.WeatherData{
		Location:         resolved,
		Temperature:      payload.Current.TempC,
		Humidity:         payload.Current.Humidity,
		Rainfall:         payload.Current.PrecipMM,
		WindSpeed:        payload.Current.WindKPH,
		WeatherCondition: payload.Current.Condition.Text,
		Forecast:         forecast,
		Source:           "weatherapi",
	}, nil
}
