// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package inference

import (
	"sort"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/metrics"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// cropProfile holds the growing requirements one candidate crop is
// scored against on the similarity path.
type cropProfile struct {
	Name        string
	NReq        float64
	PReq        float64
	KReq        float64
	PHRange     [2]float64
	TempRange   [2]float64
	HumidityMin float64
	RainfallMin float64
}

// candidateCrops are the crops scored when no classifier is loaded.
var candidateCrops = []cropProfile{
	{Name: "Rice", NReq: 80, PReq: 40, KReq: 40, PHRange: [2]float64{5.5, 7.0}, TempRange: [2]float64{20, 35}, HumidityMin: 75, RainfallMin: 1000},
	{Name: "Wheat", NReq: 50, PReq: 30, KReq: 30, PHRange: [2]float64{6.0, 7.5}, TempRange: [2]float64{15, 25}, HumidityMin: 50, RainfallMin: 400},
	{Name: "Maize", NReq: 70, PReq: 35, KReq: 35, PHRange: [2]float64{5.8, 7.0}, TempRange: [2]float64{21, 30}, HumidityMin: 60, RainfallMin: 500},
	{Name: "Cotton", NReq: 60, PReq: 25, KReq: 50, PHRange: [2]float64{5.8, 8.0}, TempRange: [2]float64{21, 32}, HumidityMin: 50, RainfallMin: 400},
	{Name: "Soybean", NReq: 20, PReq: 30, KReq: 100, PHRange: [2]float64{6.0, 7.0}, TempRange: [2]float64{20, 30}, HumidityMin: 70, RainfallMin: 450},
}

func defaultCropNames() []string {
	names := make([]string, len(candidateCrops))
	for i, c := range candidateCrops {
		names[i] = c.Name
	}
	return names
}

// trainingRanges documents the value ranges the classifier was trained
// on. Inputs outside them are logged but never rejected.
var trainingRanges = []struct {
	name string
	min  float64
	max  float64
}{
	{"N", 0, 140},
	{"P", 5, 145},
	{"K", 5, 205},
	{"temperature", 8, 50},
	{"humidity", 14, 100},
	{"ph", 3.5, 10},
	{"rainfall", 20, 300},
}

// RecommendCrop suggests the top three crops for the given soil and
// climate conditions. The classifier path is used when the crop forest
// is loaded; otherwise crops are scored by normalized closeness across
// the seven input dimensions.
func (s *Service) RecommendCrop(req *models.CropRecommendationRequest) *models.CropRecommendationResponse {
	warnOutOfRange(req)

	var ranked []models.RecommendedCrop
	if s.cropModel != nil {
		ranked = s.recommendML(req)
		metrics.RecommendationsTotal.WithLabelValues("ml").Inc()
	} else {
		ranked = recommendBySimilarity(req)
		metrics.RecommendationsTotal.WithLabelValues("similarity").Inc()
	}

	confidence := make(map[string]float64, len(ranked))
	for _, rec := range ranked {
		confidence[rec.Crop] = rec.Suitability
	}

	return &models.CropRecommendationResponse{
		RecommendedCrops:   ranked,
		SoilAnalysis:       soilAnalysis(req),
		WeatherSuitability: weatherSuitability(req),
		ConfidenceScores:   confidence,
	}
}

// warnOutOfRange logs inputs outside the training data ranges.
func warnOutOfRange(req *models.CropRecommendationRequest) {
	values := []float64{req.N, req.P, req.K, req.Temperature, req.Humidity, req.PH, req.Rainfall}
	for i, r := range trainingRanges {
		if values[i] < r.min || values[i] > r.max {
			logging.Warn().
				Str("parameter", r.name).
				Float64("value", values[i]).
				Float64("min", r.min).
				Float64("max", r.max).
				Msg("Recommendation input outside training range")
		}
	}
}

// recommendML ranks classes by ensemble class probability.
func (s *Service) recommendML(req *models.CropRecommendationRequest) []models.RecommendedCrop {
	x := []float64{req.N, req.P, req.K, req.Temperature, req.Humidity, req.PH, req.Rainfall}
	probs := s.cropModel.predictProbabilities(x)

	ranked := make([]models.RecommendedCrop, len(probs))
	for i, p := range probs {
		ranked[i] = models.RecommendedCrop{
			Crop:        s.cropModel.Classes[i],
			Suitability: roundTo(p, 3),
		}
	}
	return topThree(ranked)
}

// recommendBySimilarity scores each candidate crop by the average of
// seven per-dimension closeness measures.
func recommendBySimilarity(req *models.CropRecommendationRequest) []models.RecommendedCrop {
	ranked := make([]models.RecommendedCrop, len(candidateCrops))
	for i, crop := range candidateCrops {
		nMatch := nutrientMatch(req.N, crop.NReq)
		pMatch := nutrientMatch(req.P, crop.PReq)
		kMatch := nutrientMatch(req.K, crop.KReq)
		phMatch := rangeMatch(req.PH, crop.PHRange, 2)
		tempMatch := rangeMatch(req.Temperature, crop.TempRange, 15)
		humidityMatch := minimumMatch(req.Humidity, crop.HumidityMin)
		rainfallMatch := minimumMatch(req.Rainfall, crop.RainfallMin)

		score := (nMatch + pMatch + kMatch + phMatch + tempMatch + humidityMatch + rainfallMatch) / 7

		ranked[i] = models.RecommendedCrop{
			Crop:        crop.Name,
			Suitability: roundTo(score, 3),
		}
	}
	return topThree(ranked)
}

// nutrientMatch measures closeness of an available nutrient to a
// requirement, normalized by the larger of the two.
func nutrientMatch(value, required float64) float64 {
	denom := value
	if required > denom {
		denom = required
	}
	if denom < 1 {
		denom = 1
	}
	diff := value - required
	if diff < 0 {
		diff = -diff
	}
	return 1 - diff/denom
}

// rangeMatch returns 1.0 inside [lo,hi] and decays linearly with
// distance outside, hitting zero at the given falloff.
func rangeMatch(value float64, bounds [2]float64, falloff float64) float64 {
	if value >= bounds[0] && value <= bounds[1] {
		return 1.0
	}
	distLo := value - bounds[0]
	if distLo < 0 {
		distLo = -distLo
	}
	distHi := value - bounds[1]
	if distHi < 0 {
		distHi = -distHi
	}
	dist := distLo
	if distHi < dist {
		dist = distHi
	}
	match := 1 - dist/falloff
	if match < 0 {
		return 0
	}
	return match
}

// minimumMatch returns 1.0 when the value meets the minimum and the
// fraction of the minimum otherwise.
func minimumMatch(value, minimum float64) float64 {
	if value >= minimum {
		return 1.0
	}
	return value / minimum
}

// topThree sorts by suitability descending, deduplicates crop names,
// keeps three, and assigns ranks.
func topThree(ranked []models.RecommendedCrop) []models.RecommendedCrop {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Suitability > ranked[j].Suitability
	})

	seen := make(map[string]bool, 3)
	top := make([]models.RecommendedCrop, 0, 3)
	for _, rec := range ranked {
		if seen[rec.Crop] {
			continue
		}
		seen[rec.Crop] = true
		rec.Rank = len(top) + 1
		top = append(top, rec)
		if len(top) == 3 {
			break
		}
	}
	return top
}

// soilAnalysis classifies nutrient levels and pH status.
func soilAnalysis(req *models.CropRecommendationRequest) map[string]interface{} {
	return map[string]interface{}{
		"nitrogen_level":   levelOf(req.N, 100, 50),
		"phosphorus_level": levelOf(req.P, 50, 25),
		"potassium_level":  levelOf(req.K, 150, 75),
		"ph_status":        phStatus(req.PH),
	}
}

func levelOf(value, high, medium float64) string {
	switch {
	case value > high:
		return "High"
	case value > medium:
		return "Medium"
	default:
		return "Low"
	}
}

func phStatus(ph float64) string {
	switch {
	case ph < 6.5:
		return "Acidic"
	case ph < 7.5:
		return "Neutral"
	default:
		return "Alkaline"
	}
}

// weatherSuitability classifies the climate inputs.
func weatherSuitability(req *models.CropRecommendationRequest) map[string]interface{} {
	temp := "Sub-optimal"
	if req.Temperature >= 20 && req.Temperature <= 30 {
		temp = "Optimal"
	}
	humidity := "Low"
	if req.Humidity > 60 {
		humidity = "Good"
	}
	rainfall := "Low"
	if req.Rainfall > 500 {
		rainfall = "Adequate"
	}
	return map[string]interface{}{
		"temperature_status": temp,
		"humidity_status":    humidity,
		"rainfall_status":    rainfall,
	}
}
