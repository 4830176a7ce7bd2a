// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package inference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// singleLeafYieldArtifact returns an artifact whose forest always
// predicts the given value in hectograms per hectare.
func singleLeafYieldArtifact(valueHgHa string) string {
	return `{
		"schema_version": 1,
		"features": ["Year", "rainfall_mm", "pesticides_tonnes", "avg_temp", "Area", "Item"],
		"area_classes": ["Punjab", "Haryana"],
		"crop_classes": ["Rice", "Wheat"],
		"trees": [{
			"children_left": [-1],
			"children_right": [-1],
			"feature": [-1],
			"threshold": [0],
			"value": [` + valueHgHa + `]
		}]
	}`
}

func writeModelDir(t *testing.T, yieldJSON, cropJSON string) *config.MLConfig {
	t.Helper()
	dir := t.TempDir()
	if yieldJSON != "" {
		if err := os.WriteFile(filepath.Join(dir, "yield_model.json"), []byte(yieldJSON), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if cropJSON != "" {
		if err := os.WriteFile(filepath.Join(dir, "crop_model.json"), []byte(cropJSON), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return &config.MLConfig{
		ModelDir:       dir,
		YieldModelFile: "yield_model.json",
		CropModelFile:  "crop_model.json",
	}
}

func TestMissingArtifactsDegradeToRuleBased(t *testing.T) {
	svc := NewService(&config.MLConfig{
		ModelDir:       t.TempDir(),
		YieldModelFile: "yield_model.json",
		CropModelFile:  "crop_model.json",
	})

	if svc.Status() != "rule_based" {
		t.Errorf("Status = %q, want rule_based", svc.Status())
	}

	resp := svc.PredictYield(&models.YieldPredictionRequest{
		CropType:          "Rice",
		State:             "Punjab",
		District:          "Ludhiana",
		FieldSizeHectares: 2,
		Temperature:       25,
		Rainfall:          180,
	})
	if resp.ModelVersion != ModelTagRuleBased {
		t.Errorf("ModelVersion = %q, want %q", resp.ModelVersion, ModelTagRuleBased)
	}
	if resp.ConfidenceScore != 0.65 {
		t.Errorf("ConfidenceScore = %v, want 0.65", resp.ConfidenceScore)
	}
}

func TestCorruptArtifactDegradesToRuleBased(t *testing.T) {
	cfg := writeModelDir(t, "{not json", "")
	svc := NewService(cfg)

	if svc.Status() != "rule_based" {
		t.Errorf("Status = %q, want rule_based", svc.Status())
	}
}

func TestWrongSchemaVersionDegradesToRuleBased(t *testing.T) {
	bad := `{"schema_version": 99, "features": ["a"], "area_classes": ["x"], "crop_classes": ["y"],
		"trees": [{"children_left": [-1], "children_right": [-1], "feature": [-1], "threshold": [0], "value": [1]}]}`
	cfg := writeModelDir(t, bad, "")
	svc := NewService(cfg)

	if svc.Status() != "rule_based" {
		t.Errorf("Status = %q, want rule_based", svc.Status())
	}
}

func TestFeatureCountMismatchDegradesToRuleBased(t *testing.T) {
	// A tree splitting on a seventh feature is internally consistent
	// with the artifact's own declarations but incompatible with the
	// six-element input vector built at prediction time. Loading must
	// reject it rather than let the walk index past the vector.
	sevenFeature := `{
		"schema_version": 1,
		"features": ["Year", "rainfall_mm", "pesticides_tonnes", "avg_temp", "Area", "Item", "extra"],
		"area_classes": ["Punjab"],
		"crop_classes": ["Rice"],
		"trees": [{
			"children_left": [1, -1, -1],
			"children_right": [2, -1, -1],
			"feature": [6, -1, -1],
			"threshold": [0.5, 0, 0],
			"value": [0, 100, 300]
		}]
	}`
	cfg := writeModelDir(t, sevenFeature, "")
	svc := NewService(cfg)

	if svc.Status() != "rule_based" {
		t.Fatalf("Status = %q, want rule_based", svc.Status())
	}

	resp := svc.PredictYield(&models.YieldPredictionRequest{
		CropType:          "Rice",
		State:             "Punjab",
		District:          "Ludhiana",
		FieldSizeHectares: 2,
		Temperature:       25,
		Rainfall:          180,
	})
	if resp.ModelVersion != ModelTagRuleBased {
		t.Errorf("ModelVersion = %q, want %q", resp.ModelVersion, ModelTagRuleBased)
	}
}

func TestCropModelFeatureCountMismatchRejected(t *testing.T) {
	sixFeature := `{
		"schema_version": 1,
		"features": ["N", "P", "K", "temperature", "humidity", "ph"],
		"classes": ["Rice", "Wheat"],
		"trees": [{
			"children_left": [-1],
			"children_right": [-1],
			"feature": [-1],
			"threshold": [0],
			"value": [[0.5, 0.5]]
		}]
	}`
	cfg := writeModelDir(t, "", sixFeature)
	svc := NewService(cfg)

	// The similarity fallback serves recommendations instead.
	resp := svc.RecommendCrop(&models.CropRecommendationRequest{
		N: 80, P: 40, K: 40,
		Temperature: 27, Humidity: 80, PH: 6.5, Rainfall: 1200,
	})
	if len(resp.RecommendedCrops) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(resp.RecommendedCrops))
	}
	if svc.ModelInfo().CropModelLoaded {
		t.Error("crop model with wrong feature count must not load")
	}
}

func TestMLPredictionConvertsHectogramsToQuintals(t *testing.T) {
	cfg := writeModelDir(t, singleLeafYieldArtifact("347"), "")
	svc := NewService(cfg)

	if svc.Status() != "ml" {
		t.Fatalf("Status = %q, want ml", svc.Status())
	}

	resp := svc.PredictYield(&models.YieldPredictionRequest{
		CropType:          "Rice",
		State:             "Punjab",
		District:          "Ludhiana",
		FieldSizeHectares: 3,
		Temperature:       25,
		Rainfall:          180,
	})

	// 347 hg/ha converts to 34.7 q/ha, once.
	if resp.PredictedYield != 34.7 {
		t.Errorf("PredictedYield = %v, want 34.7", resp.PredictedYield)
	}
	if resp.TotalProduction != 104.1 {
		t.Errorf("TotalProduction = %v, want 104.1", resp.TotalProduction)
	}
	if resp.ModelVersion != ModelTagML {
		t.Errorf("ModelVersion = %q, want %q", resp.ModelVersion, ModelTagML)
	}
	if resp.ConfidenceScore != 0.85 {
		t.Errorf("ConfidenceScore = %v, want 0.85", resp.ConfidenceScore)
	}
}

func TestUnseenLabelsEncodeToDefaultIndex(t *testing.T) {
	cfg := writeModelDir(t, singleLeafYieldArtifact("250"), "")
	svc := NewService(cfg)

	// Neither the state nor the crop is in the training vocabulary;
	// prediction must still succeed.
	resp := svc.PredictYield(&models.YieldPredictionRequest{
		CropType:          "Dragonfruit",
		State:             "Atlantis",
		District:          "Nowhere",
		FieldSizeHectares: 1,
		Temperature:       25,
		Rainfall:          100,
	})

	if resp.ModelVersion != ModelTagML {
		t.Errorf("ModelVersion = %q, want %q", resp.ModelVersion, ModelTagML)
	}
	if resp.PredictedYield != 25.0 {
		t.Errorf("PredictedYield = %v, want 25.0", resp.PredictedYield)
	}
}

func TestEncodeLabel(t *testing.T) {
	classes := []string{"Punjab", "Haryana", "Kerala"}
	if got := encodeLabel("Kerala", classes, "area"); got != 2 {
		t.Errorf("encodeLabel known = %d, want 2", got)
	}
	if got := encodeLabel("Atlantis", classes, "area"); got != 0 {
		t.Errorf("encodeLabel unseen = %d, want 0", got)
	}
	if got := encodeLabel("anything", nil, "area"); got != 0 {
		t.Errorf("encodeLabel with empty vocabulary = %d, want 0", got)
	}
}

func TestSimpleYieldDefaultsYear(t *testing.T) {
	// A tree splitting on Year: <= 1950 predicts 100, else 300. With no
	// year given the current year is used, taking the right branch.
	artifact := `{
		"schema_version": 1,
		"features": ["Year", "rainfall_mm", "pesticides_tonnes", "avg_temp", "Area", "Item"],
		"area_classes": ["Punjab"],
		"crop_classes": ["Rice"],
		"trees": [{
			"children_left": [1, -1, -1],
			"children_right": [2, -1, -1],
			"feature": [0, -1, -1],
			"threshold": [1950, 0, 0],
			"value": [0, 100, 300]
		}]
	}`
	cfg := writeModelDir(t, artifact, "")
	svc := NewService(cfg)

	resp := svc.PredictSimpleYield(&models.SimpleYieldRequest{
		CropType:          "Rice",
		State:             "Punjab",
		FieldSizeHectares: 1,
		Temperature:       25,
		Rainfall:          100,
	})
	if resp.PredictedYield != 30.0 {
		t.Errorf("PredictedYield = %v, want 30.0", resp.PredictedYield)
	}
}

func TestModelInfoReflectsLoadState(t *testing.T) {
	svc := NewService(&config.MLConfig{
		ModelDir:       t.TempDir(),
		YieldModelFile: "yield_model.json",
		CropModelFile:  "crop_model.json",
	})
	info := svc.ModelInfo()
	if info.YieldModelLoaded || info.CropModelLoaded {
		t.Error("expected no models loaded")
	}
	if info.ModelVersion != ModelTagRuleBased {
		t.Errorf("ModelVersion = %q, want %q", info.ModelVersion, ModelTagRuleBased)
	}
	if len(info.SupportedCrops) != 5 {
		t.Errorf("SupportedCrops = %v, want 5 defaults", info.SupportedCrops)
	}

	cfg := writeModelDir(t, singleLeafYieldArtifact("250"), "")
	svc = NewService(cfg)
	info = svc.ModelInfo()
	if !info.YieldModelLoaded {
		t.Error("expected yield model loaded")
	}
	if info.ModelVersion != ModelTagML {
		t.Errorf("ModelVersion = %q, want %q", info.ModelVersion, ModelTagML)
	}
	if len(info.SupportedStates) != 2 {
		t.Errorf("SupportedStates = %v, want vocabulary from artifact", info.SupportedStates)
	}
}

func TestDetectDiseaseDeterministic(t *testing.T) {
	svc := NewService(&config.MLConfig{
		ModelDir:       t.TempDir(),
		YieldModelFile: "yield_model.json",
		CropModelFile:  "crop_model.json",
	})

	image := []byte("fake jpeg bytes")
	first := svc.DetectDisease(image)
	second := svc.DetectDisease(image)

	if first.DetectedDiseases[0].Name != second.DetectedDiseases[0].Name {
		t.Error("detection not deterministic for identical input")
	}
	if len(first.Recommendations) == 0 {
		t.Error("expected recommendations")
	}
	if first.PlantHealthStatus != "Healthy" && first.PlantHealthStatus != "Needs Attention" {
		t.Errorf("unexpected health status %q", first.PlantHealthStatus)
	}
}
