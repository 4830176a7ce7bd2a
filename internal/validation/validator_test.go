// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package validation

import (
	"strings"
	"testing"
)

type predictionInput struct {
	CropType    string  `validate:"required"`
	Temperature float64 `validate:"gte=-10,lte=60"`
	Humidity    float64 `validate:"gte=0,lte=100"`
	Email       string  `validate:"omitempty,email"`
}

func TestValidateStructPasses(t *testing.T) {
	in := predictionInput{CropType: "rice", Temperature: 25, Humidity: 70}
	if err := ValidateStruct(&in); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStructRequired(t *testing.T) {
	in := predictionInput{Temperature: 25, Humidity: 70}
	err := ValidateStruct(&in)
	if err == nil {
		t.Fatal("expected validation error for missing CropType")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR code, got %q", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "CropType is required") {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "CropType" {
		t.Errorf("expected field detail CropType, got %v", apiErr.Details["field"])
	}
}

func TestValidateStructRangeMessages(t *testing.T) {
	in := predictionInput{CropType: "rice", Temperature: 99, Humidity: 70}
	err := ValidateStruct(&in)
	if err == nil {
		t.Fatal("expected validation error for out-of-range temperature")
	}

	if !strings.Contains(err.Error(), "Temperature must be less than or equal to 60") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	in := predictionInput{Temperature: 99, Humidity: 200, Email: "not-an-email"}
	err := ValidateStruct(&in)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(err.Errors()) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(err.Errors()), err)
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("expected fields detail, got %T", apiErr.Details["fields"])
	}
	if len(fields) != 4 {
		t.Errorf("expected 4 field details, got %d", len(fields))
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator must return the same instance")
	}
}
