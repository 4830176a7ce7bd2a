// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package inference

import (
	"math"
	"path/filepath"
	"time"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/metrics"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// Model path tags reported in prediction responses.
const (
	ModelTagML        = "Random Forest ML Model"
	ModelTagRuleBased = "Rule-based Fallback"
	ModelTagEmergency = "Emergency Default"
)

// yieldFeatures is the feature order the yield forest was trained with.
var yieldFeatures = []string{"Year", "rainfall_mm", "pesticides_tonnes", "avg_temp", "Area", "Item"}

// cropFeatures is the feature order the crop classifier was trained with.
var cropFeatures = []string{"N", "P", "K", "temperature", "humidity", "ph", "rainfall"}

// Service performs all model inference. Artifacts are loaded once at
// construction; any load failure moves the service permanently to the
// rule-based path for the process lifetime.
type Service struct {
	yieldModel *yieldArtifact
	cropModel  *cropArtifact
}

// NewService loads model artifacts from the configured directory.
// It never fails: a missing or corrupt artifact downgrades the
// corresponding prediction path instead.
func NewService(cfg *config.MLConfig) *Service {
	s := &Service{}

	yieldPath := filepath.Join(cfg.ModelDir, cfg.YieldModelFile)
	yieldModel, err := loadYieldArtifact(yieldPath)
	if err != nil {
		logging.Warn().
			Str("path", yieldPath).
			Err(err).
			Msg("Yield model unavailable, using rule-based predictions")
	} else {
		s.yieldModel = yieldModel
		logging.Info().
			Str("path", yieldPath).
			Int("trees", len(yieldModel.Trees)).
			Int("area_classes", len(yieldModel.AreaClasses)).
			Int("crop_classes", len(yieldModel.CropClasses)).
			Msg("Yield model loaded")
	}

	cropPath := filepath.Join(cfg.ModelDir, cfg.CropModelFile)
	cropModel, err := loadCropArtifact(cropPath)
	if err != nil {
		logging.Warn().
			Str("path", cropPath).
			Err(err).
			Msg("Crop model unavailable, using similarity-based recommendations")
	} else {
		s.cropModel = cropModel
		logging.Info().
			Str("path", cropPath).
			Int("trees", len(cropModel.Trees)).
			Int("classes", len(cropModel.Classes)).
			Msg("Crop recommendation model loaded")
	}

	return s
}

// Status returns "ml" when the yield forest is loaded, "rule_based" otherwise.
func (s *Service) Status() string {
	if s.yieldModel != nil {
		return "ml"
	}
	return "rule_based"
}

// encodeLabel maps a label to its index in a training vocabulary.
// Unseen labels encode to index 0 with a warning; they are never errors
// so that new states or crops keep working against old artifacts.
func encodeLabel(label string, classes []string, vocabulary string) int {
	for i, class := range classes {
		if class == label {
			return i
		}
	}
	substitute := ""
	if len(classes) > 0 {
		substitute = classes[0]
	}
	logging.Warn().
		Str("label", label).
		Str("vocabulary", vocabulary).
		Str("substitute", substitute).
		Msg("Label not in training vocabulary, using default index")
	metrics.UnknownLabelEncodings.WithLabelValues(vocabulary).Inc()
	return 0
}

// yieldInput collects the values both prediction entry points reduce to.
type yieldInput struct {
	Crop             string
	State            string
	Year             int
	Rainfall         float64
	Temperature      float64
	PesticidesTonnes float64
	AreaHectares     float64
}

// PredictYield predicts yield from the structured request.
func (s *Service) PredictYield(req *models.YieldPredictionRequest) *models.YieldPredictionResponse {
	return s.predict(yieldInput{
		Crop:         req.CropType,
		State:        req.State,
		Year:         time.Now().Year(),
		Rainfall:     req.Rainfall,
		Temperature:  req.Temperature,
		AreaHectares: req.FieldSizeHectares,
	}, req)
}

// PredictSimpleYield predicts yield from the simplified quick-form request.
func (s *Service) PredictSimpleYield(req *models.SimpleYieldRequest) *models.YieldPredictionResponse {
	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}
	return s.predict(yieldInput{
		Crop:             req.CropType,
		State:            req.State,
		Year:             year,
		Rainfall:         req.Rainfall,
		Temperature:      req.Temperature,
		PesticidesTonnes: req.PesticidesTonnes,
		AreaHectares:     req.FieldSizeHectares,
	}, nil)
}

// predict runs the forest when loaded, otherwise the rule-based path.
// structured carries the full request when available so soil parameters
// can feed the recommendation text.
func (s *Service) predict(input yieldInput, structured *models.YieldPredictionRequest) *models.YieldPredictionResponse {
	start := time.Now()

	var result predictionResult
	if s.yieldModel != nil {
		result = s.predictML(input)
	} else {
		result = fallbackPrediction(input)
	}

	switch result.ModelTag {
	case ModelTagML:
		metrics.RecordPrediction("ml", time.Since(start))
	case ModelTagRuleBased:
		metrics.RecordPrediction("rule_based", time.Since(start))
	default:
		metrics.RecordPrediction("emergency", time.Since(start))
	}

	confidence := 0.65
	if s.yieldModel != nil {
		confidence = 0.85
	}

	return &models.YieldPredictionResponse{
		PredictedYield:    result.YieldPerHectare,
		ConfidenceScore:   confidence,
		FieldSizeHectares: input.AreaHectares,
		TotalProduction:   result.TotalProduction,
		ModelVersion:      result.ModelTag,
		PredictionFactors: result.Factors,
		Recommendations:   buildRecommendations(input, structured, result),
	}
}

// predictionResult is the internal outcome of one prediction path.
type predictionResult struct {
	YieldPerHectare float64
	TotalProduction float64
	ModelTag        string
	Factors         map[string]interface{}
}

// predictML runs the exported yield forest. The forest output is in
// hectograms per hectare and is converted to quintals per hectare here,
// exactly once.
func (s *Service) predictML(input yieldInput) predictionResult {
	areaIdx := encodeLabel(input.State, s.yieldModel.AreaClasses, "area")
	cropIdx := encodeLabel(input.Crop, s.yieldModel.CropClasses, "crop")

	x := []float64{
		float64(input.Year),
		input.Rainfall,
		input.PesticidesTonnes,
		input.Temperature,
		float64(areaIdx),
		float64(cropIdx),
	}

	yieldHgHa := s.yieldModel.predictForest(x)
	yieldQuintalHa := roundTo(yieldHgHa/10, 2)
	total := roundTo(yieldQuintalHa*input.AreaHectares, 2)

	return predictionResult{
		YieldPerHectare: yieldQuintalHa,
		TotalProduction: total,
		ModelTag:        ModelTagML,
		Factors: map[string]interface{}{
			"year":              input.Year,
			"rainfall_mm":       input.Rainfall,
			"pesticides_tonnes": input.PesticidesTonnes,
			"avg_temp":          input.Temperature,
			"state":             input.State,
			"crop":              input.Crop,
		},
	}
}

// buildRecommendations derives actionable advice from the prediction
// outcome and input conditions. At most five entries.
func buildRecommendations(input yieldInput, structured *models.YieldPredictionRequest, result predictionResult) []string {
	recs := []string{}

	if result.YieldPerHectare < 20 {
		recs = append(recs, "Low yield predicted: consider improving soil conditions and weather protection")
	} else if result.YieldPerHectare > 50 {
		recs = append(recs, "High yield potential: maintain current practices for optimal results")
	}

	if factor, ok := result.Factors["temperature_factor"].(float64); ok && factor < 0.8 {
		recs = append(recs, "Temperature stress detected: consider shade nets or adjusted sowing dates")
	}
	if factor, ok := result.Factors["rainfall_factor"].(float64); ok && factor < 0.8 {
		recs = append(recs, "Water stress likely: implement efficient irrigation systems")
	}
	if factor, ok := result.Factors["crop_factor"].(float64); ok && factor < 0.9 {
		recs = append(recs, "Consider crop-specific optimization: soil amendments and fertilizer timing")
	}

	if structured != nil {
		if structured.N < 50 {
			recs = append(recs, "Increase nitrogen fertilizer for better growth")
		}
		if structured.PH < 6.0 {
			recs = append(recs, "Apply lime to increase soil pH for optimal nutrient uptake")
		} else if structured.PH > 8.0 {
			recs = append(recs, "Apply organic matter to reduce soil pH")
		}
	}

	if input.Rainfall < 300 {
		recs = append(recs, "Low rainfall expected: plan for supplemental irrigation")
	} else if input.Rainfall > 2000 {
		recs = append(recs, "High rainfall expected: ensure proper drainage to prevent waterlogging")
	}

	if len(recs) == 0 {
		recs = append(recs, "Current conditions are favorable for good yield: maintain best practices")
	}
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

// ModelInfo reports which artifacts are loaded and their vocabularies.
func (s *Service) ModelInfo() *models.ModelInfo {
	info := &models.ModelInfo{
		YieldModelLoaded: s.yieldModel != nil,
		CropModelLoaded:  s.cropModel != nil,
		ModelVersion:     ModelTagRuleBased,
		YieldFeatures:    yieldFeatures,
		CropFeatures:     cropFeatures,
		SupportedCrops:   defaultCropNames(),
		SupportedStates:  []string{"Punjab", "Haryana", "Uttar Pradesh"},
	}
	if s.yieldModel != nil {
		info.ModelVersion = ModelTagML
		info.SupportedCrops = s.yieldModel.CropClasses
		info.SupportedStates = s.yieldModel.AreaClasses
	}
	return info
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
