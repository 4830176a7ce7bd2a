// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// requiredColumns must all be present in the CSV header.
var requiredColumns = []string{
	"field_name", "state", "district", "crop_type",
	"yield_per_hectare", "field_size_hectares",
}

// parseResult carries the outcome of CSV parsing and validation.
type parseResult struct {
	Valid     []models.CropRecord
	TotalRows int
	Errors    []string
}

// parseCropCSV reads and validates crop records. A malformed header or
// unreadable stream is an error; individual bad rows are collected in
// the result instead. Row numbers in error messages are 1-based data
// rows, excluding the header.
func parseCropCSV(r io.Reader) (*parseResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows with missing trailing fields are handled per-row.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	result := &parseResult{}

	missing := []string{}
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")))
		// Count remaining rows so the totals are still meaningful.
		for {
			if _, err := reader.Read(); err == io.EOF {
				break
			} else if err != nil {
				return nil, err
			}
			result.TotalRows++
		}
		return result, nil
	}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rowNum++
		result.TotalRows++

		record, rowErr := validateRow(row, columns, rowNum)
		if rowErr != "" {
			result.Errors = append(result.Errors, rowErr)
			continue
		}
		result.Valid = append(result.Valid, record)
	}

	return result, nil
}

// validateRow converts one CSV row into a crop record. Returns a
// non-empty error string when the row is invalid.
func validateRow(row []string, columns map[string]int, rowNum int) (models.CropRecord, string) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	fieldName := field("field_name")
	state := field("state")
	cropType := field("crop_type")
	if fieldName == "" || state == "" || cropType == "" {
		return models.CropRecord{}, fmt.Sprintf("Row %d: Missing required fields", rowNum)
	}

	yield, err := strconv.ParseFloat(field("yield_per_hectare"), 64)
	if err != nil || yield <= 0 {
		return models.CropRecord{}, fmt.Sprintf("Row %d: Invalid yield value", rowNum)
	}

	size, err := strconv.ParseFloat(field("field_size_hectares"), 64)
	if err != nil || size <= 0 {
		return models.CropRecord{}, fmt.Sprintf("Row %d: Invalid field size", rowNum)
	}

	record := models.CropRecord{
		FieldName:         fieldName,
		State:             state,
		District:          field("district"),
		CropType:          cropType,
		YieldPerHectare:   yield,
		FieldSizeHectares: size,
		DataSource:        "csv_upload",
	}

	// Optional columns.
	if season := field("season"); season != "" {
		record.Season = models.Season(season)
	}
	if yearStr := field("cultivation_year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			record.CultivationYear = year
		}
	}

	return record, ""
}
