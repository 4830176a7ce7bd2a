// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package inference

import (
	"fmt"
	"hash/fnv"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// diseaseCandidates is the fixed list the detection stub selects from.
// A real vision model is out of scope; the pick is keyed off the image
// bytes so the same upload always yields the same answer.
var diseaseCandidates = []models.DetectedDisease{
	{Name: "Leaf Blight", Confidence: 0.85, Severity: "Medium"},
	{Name: "Healthy", Confidence: 0.92, Severity: "None"},
	{Name: "Rust", Confidence: 0.67, Severity: "Low"},
	{Name: "Mosaic Virus", Confidence: 0.45, Severity: "High"},
}

// DetectDisease analyzes an uploaded plant image. Deterministic stub:
// the candidate is chosen by hashing the image bytes.
func (s *Service) DetectDisease(image []byte) *models.DiseaseDetectionResponse {
	h := fnv.New32a()
	_, _ = h.Write(image)
	detected := diseaseCandidates[h.Sum32()%uint32(len(diseaseCandidates))]

	healthy := detected.Name == "Healthy"
	status := "Needs Attention"
	recommendations := []string{
		fmt.Sprintf("Apply appropriate fungicide for %s", detected.Name),
		"Improve field drainage",
		"Monitor plant regularly",
		"Consider resistant varieties for next season",
	}
	if healthy {
		status = "Healthy"
		recommendations = []string{
			"Plant appears healthy",
			"Continue current care practices",
			"Monitor for any changes",
		}
	}

	return &models.DiseaseDetectionResponse{
		DetectedDiseases:  []models.DetectedDisease{detected},
		ConfidenceScores:  map[string]float64{detected.Name: detected.Confidence},
		PlantHealthStatus: status,
		Recommendations:   recommendations,
	}
}
