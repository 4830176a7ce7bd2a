// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package analytics

import (
	"context"
	"strings"
	"testing"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

const validCSV = `field_name,state,district,crop_type,yield_per_hectare,field_size_hectares
North Field,Punjab,Ludhiana,Rice,42.5,3.2
South Field,Haryana,Karnal,Wheat,38.0,2.0
`

func TestParseCropCSVValidRows(t *testing.T) {
	result, err := parseCropCSV(strings.NewReader(validCSV))
	if err != nil {
		t.Fatalf("parseCropCSV failed: %v", err)
	}

	if result.TotalRows != 2 || len(result.Valid) != 2 || len(result.Errors) != 0 {
		t.Fatalf("total=%d valid=%d errors=%v", result.TotalRows, len(result.Valid), result.Errors)
	}

	first := result.Valid[0]
	if first.FieldName != "North Field" || first.State != "Punjab" ||
		first.CropType != "Rice" || first.YieldPerHectare != 42.5 {
		t.Errorf("unexpected first record %+v", first)
	}
	if first.DataSource != "csv_upload" {
		t.Errorf("DataSource = %q, want csv_upload", first.DataSource)
	}
}

func TestParseCropCSVMissingColumns(t *testing.T) {
	csv := "field_name,state\nNorth Field,Punjab\nSouth Field,Haryana\n"
	result, err := parseCropCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseCropCSV failed: %v", err)
	}

	if len(result.Valid) != 0 {
		t.Errorf("expected no valid rows, got %d", len(result.Valid))
	}
	if result.TotalRows != 2 {
		t.Errorf("TotalRows = %d, want 2", result.TotalRows)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Missing required columns") {
		t.Errorf("unexpected errors %v", result.Errors)
	}
	for _, col := range []string{"district", "crop_type", "yield_per_hectare", "field_size_hectares"} {
		if !strings.Contains(result.Errors[0], col) {
			t.Errorf("error does not name missing column %q: %s", col, result.Errors[0])
		}
	}
}

func TestParseCropCSVRowClassification(t *testing.T) {
	csv := `field_name,state,district,crop_type,yield_per_hectare,field_size_hectares
Good Field,Punjab,Ludhiana,Rice,40,2
,Punjab,Ludhiana,Rice,40,2
Bad Yield,Punjab,Ludhiana,Rice,-5,2
Bad Size,Punjab,Ludhiana,Rice,40,0
Not A Number,Punjab,Ludhiana,Rice,abc,2
`
	result, err := parseCropCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseCropCSV failed: %v", err)
	}

	if result.TotalRows != 5 {
		t.Errorf("TotalRows = %d, want 5", result.TotalRows)
	}
	if len(result.Valid) != 1 {
		t.Fatalf("valid rows = %d, want 1", len(result.Valid))
	}
	if result.Valid[0].FieldName != "Good Field" {
		t.Errorf("wrong row survived: %+v", result.Valid[0])
	}

	wantErrors := []string{
		"Row 2: Missing required fields",
		"Row 3: Invalid yield value",
		"Row 4: Invalid field size",
		"Row 5: Invalid yield value",
	}
	if len(result.Errors) != len(wantErrors) {
		t.Fatalf("errors = %v", result.Errors)
	}
	for i, want := range wantErrors {
		if result.Errors[i] != want {
			t.Errorf("error[%d] = %q, want %q", i, result.Errors[i], want)
		}
	}
}

func TestParseCropCSVOptionalColumns(t *testing.T) {
	csv := `field_name,state,district,crop_type,yield_per_hectare,field_size_hectares,season,cultivation_year
Field A,Punjab,Ludhiana,Rice,40,2,Kharif,2024
`
	result, err := parseCropCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseCropCSV failed: %v", err)
	}
	if len(result.Valid) != 1 {
		t.Fatalf("valid rows = %d, want 1", len(result.Valid))
	}
	if result.Valid[0].Season != models.SeasonKharif {
		t.Errorf("Season = %q, want Kharif", result.Valid[0].Season)
	}
	if result.Valid[0].CultivationYear != 2024 {
		t.Errorf("CultivationYear = %d, want 2024", result.Valid[0].CultivationYear)
	}
}

func TestParseCropCSVEmptyFile(t *testing.T) {
	if _, err := parseCropCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty file")
	}
}

// fakeStore records what the service persists.
type fakeStore struct {
	records []models.CropRecord
	batch   *models.UploadBatch
}

func (f *fakeStore) InsertCropRecords(_ context.Context, records []models.CropRecord) error {
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeStore) InsertUploadBatch(_ context.Context, batch *models.UploadBatch) error {
	f.batch = batch
	return nil
}

func TestProcessCSVInsertsAndRecordsBatch(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	resp, err := svc.ProcessCSV(t.Context(), strings.NewReader(validCSV), "upload.csv", "demo-farmer-001")
	if err != nil {
		t.Fatalf("ProcessCSV failed: %v", err)
	}

	if !resp.Success || resp.ValidRows != 2 || resp.InvalidRows != 0 {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.UploadBatchID == "" {
		t.Error("missing batch id")
	}

	if len(store.records) != 2 {
		t.Fatalf("stored %d records, want 2", len(store.records))
	}
	for _, rec := range store.records {
		if rec.UploadBatchID != resp.UploadBatchID {
			t.Errorf("record batch id %q does not match response %q", rec.UploadBatchID, resp.UploadBatchID)
		}
		if rec.CreatedAt.IsZero() {
			t.Error("record missing created_at")
		}
	}

	if store.batch == nil {
		t.Fatal("batch not recorded")
	}
	if store.batch.BatchID != resp.UploadBatchID || store.batch.UploadedBy != "demo-farmer-001" {
		t.Errorf("unexpected batch %+v", store.batch)
	}
}

func TestProcessCSVAllRowsInvalidStillRecordsBatch(t *testing.T) {
	csv := "field_name,state,district,crop_type,yield_per_hectare,field_size_hectares\n,,,Rice,0,0\n"
	store := &fakeStore{}
	svc := NewService(store)

	resp, err := svc.ProcessCSV(t.Context(), strings.NewReader(csv), "bad.csv", "demo-farmer-001")
	if err != nil {
		t.Fatalf("ProcessCSV failed: %v", err)
	}

	if resp.ValidRows != 0 || resp.InvalidRows != 1 {
		t.Errorf("unexpected response %+v", resp)
	}
	if len(store.records) != 0 {
		t.Errorf("no records should be stored, got %d", len(store.records))
	}
	if store.batch == nil {
		t.Fatal("batch must be recorded even with zero valid rows")
	}
}

func TestProcessCSVCapsReportedErrors(t *testing.T) {
	var b strings.Builder
	b.WriteString("field_name,state,district,crop_type,yield_per_hectare,field_size_hectares\n")
	for i := 0; i < 25; i++ {
		b.WriteString(",Punjab,Ludhiana,Rice,40,2\n")
	}

	svc := NewService(&fakeStore{})
	resp, err := svc.ProcessCSV(t.Context(), strings.NewReader(b.String()), "many.csv", "u")
	if err != nil {
		t.Fatalf("ProcessCSV failed: %v", err)
	}

	if resp.InvalidRows != 25 {
		t.Errorf("InvalidRows = %d, want 25", resp.InvalidRows)
	}
	if len(resp.Errors) != maxReportedErrors {
		t.Errorf("reported %d errors, want %d", len(resp.Errors), maxReportedErrors)
	}
}
