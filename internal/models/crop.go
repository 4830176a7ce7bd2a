// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package models

import (
	"time"
)

// Season is an Indian cultivation season.
type Season string

const (
	SeasonRabi      Season = "Rabi"
	SeasonKharif    Season = "Kharif"
	SeasonZaid      Season = "Zaid"
	SeasonPerennial Season = "Perennial"
)

// CropRecord is one field-level cultivation record in the crop_data collection.
type CropRecord struct {
	ID                string    `json:"id,omitempty" bson:"_id,omitempty"`
	FieldName         string    `json:"field_name" bson:"field_name"`
	State             string    `json:"state" bson:"state"`
	District          string    `json:"district" bson:"district"`
	CropType          string    `json:"crop_type" bson:"crop_type"`
	YieldPerHectare   float64   `json:"yield_per_hectare" bson:"yield_per_hectare"`
	FieldSizeHectares float64   `json:"field_size_hectares" bson:"field_size_hectares"`
	Season            Season    `json:"season,omitempty" bson:"season,omitempty"`
	CultivationYear   int       `json:"cultivation_year,omitempty" bson:"cultivation_year,omitempty"`
	DataSource        string    `json:"data_source" bson:"data_source"`
	UploadBatchID     string    `json:"upload_batch_id" bson:"upload_batch_id"`
	CreatedAt         time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// UploadBatch records one CSV ingestion run in the upload_batches collection.
type UploadBatch struct {
	BatchID        string    `json:"batch_id" bson:"batch_id"`
	Filename       string    `json:"filename" bson:"filename"`
	TotalRows      int       `json:"total_rows" bson:"total_rows"`
	ValidRows      int       `json:"valid_rows" bson:"valid_rows"`
	InvalidRows    int       `json:"invalid_rows" bson:"invalid_rows"`
	ProcessingSecs float64   `json:"processing_time" bson:"processing_time"`
	UploadedBy     string    `json:"uploaded_by,omitempty" bson:"uploaded_by,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// Farmer is a registered user in the farmers collection.
type Farmer struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	FarmerID     string    `json:"farmer_id" bson:"farmer_id"`
	FarmerName   string    `json:"farmer_name" bson:"farmer_name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	State        string    `json:"state,omitempty" bson:"state,omitempty"`
	District     string    `json:"district,omitempty" bson:"district,omitempty"`
	CurrentCity  string    `json:"current_city,omitempty" bson:"current_city,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// LocationData is a field location with optional administrative names.
type LocationData struct {
	Latitude  float64 `json:"latitude" bson:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" bson:"longitude" validate:"gte=-180,lte=180"`
	Name      string  `json:"name,omitempty" bson:"name,omitempty"`
	District  string  `json:"district,omitempty" bson:"district,omitempty"`
	State     string  `json:"state,omitempty" bson:"state,omitempty"`
}

// IrrigationInfo describes a field's irrigation setup.
type IrrigationInfo struct {
	Method       string `json:"method" bson:"method" validate:"required"`
	Availability string `json:"availability" bson:"availability" validate:"oneof=None Low Medium High"`
}

// SoilTestResults carries N-P-K and pH lab results for a field.
type SoilTestResults struct {
	N  float64 `json:"N" bson:"n"`
	P  float64 `json:"P" bson:"p"`
	K  float64 `json:"K" bson:"k"`
	PH float64 `json:"pH" bson:"ph"`
}

// CropInfo is a single cultivation entry within a field profile.
type CropInfo struct {
	CropType        string           `json:"crop_type" bson:"crop_type" validate:"required"`
	PlantingDate    string           `json:"planting_date" bson:"planting_date"`
	Season          Season           `json:"season" bson:"season"`
	CultivationYear int              `json:"cultivation_year" bson:"cultivation_year"`
	ExpectedYield   *float64         `json:"expected_yield,omitempty" bson:"expected_yield,omitempty"`
	ActualYield     *float64         `json:"actual_yield,omitempty" bson:"actual_yield,omitempty"`
	FertilizersUsed []string         `json:"fertilizers_used,omitempty" bson:"fertilizers_used,omitempty"`
	PesticidesUsed  []string         `json:"pesticides_used,omitempty" bson:"pesticides_used,omitempty"`
	PreviousCrop    string           `json:"previous_crop,omitempty" bson:"previous_crop,omitempty"`
	SoilTestResults *SoilTestResults `json:"soil_test_results,omitempty" bson:"soil_test_results,omitempty"`
}

// FieldProfile describes one farmer field in the field_profiles collection.
type FieldProfile struct {
	FieldName         string         `json:"field_name" bson:"field_name" validate:"required"`
	FieldSizeHectares float64        `json:"field_size_hectares" bson:"field_size_hectares" validate:"gt=0"`
	SoilType          string         `json:"soil_type" bson:"soil_type"`
	Location          LocationData   `json:"location" bson:"location"`
	Irrigation        IrrigationInfo `json:"irrigation" bson:"irrigation"`
	Crops             []CropInfo     `json:"crops" bson:"crops"`
}

// FieldProfileDocument wraps a FieldProfile with ownership and timestamps.
type FieldProfileDocument struct {
	ID           string       `json:"id,omitempty" bson:"_id,omitempty"`
	FarmerID     string       `json:"farmer_id" bson:"farmer_id"`
	FieldProfile FieldProfile `json:"field_profile" bson:"field_profile"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updated_at"`
}

// CSVUploadResponse summarizes one CSV ingestion for the upload endpoint.
type CSVUploadResponse struct {
	Success        bool     `json:"success"`
	UploadBatchID  string   `json:"upload_batch_id"`
	TotalRows      int      `json:"total_rows"`
	ValidRows      int      `json:"valid_rows"`
	InvalidRows    int      `json:"invalid_rows"`
	ProcessingTime float64  `json:"processing_time"`
	Errors         []string `json:"errors"`
}
