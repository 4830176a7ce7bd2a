// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/metrics"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// UpsertFarmer inserts a farmer or updates the existing record with the
// same farmer_id.
func (d *Database) UpsertFarmer(ctx context.Context, farmer *models.Farmer) error {
	start := time.Now()
	_, err := d.collection(CollFarmers).UpdateOne(ctx,
		bson.M{"farmer_id": farmer.FarmerID},
		bson.M{"$set": farmer},
		options.Update().SetUpsert(true),
	)
	metrics.RecordDBQuery("upsert", CollFarmers, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to upsert farmer: %w", err)
	}
	return nil
}

// GetFarmerByEmail looks up a farmer by email. Returns nil when no
// farmer with that email exists.
func (d *Database) GetFarmerByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	start := time.Now()
	var farmer models.Farmer
	err := d.collection(CollFarmers).FindOne(ctx, bson.M{"email": email}).Decode(&farmer)
	metrics.RecordDBQuery("find_one", CollFarmers, time.Since(start), err)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get farmer: %w", err)
	}
	return &farmer, nil
}

// SaveFieldProfile stores a field profile for a farmer.
func (d *Database) SaveFieldProfile(ctx context.Context, doc *models.FieldProfileDocument) error {
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	start := time.Now()
	_, err := d.collection(CollFieldProfiles).InsertOne(ctx, doc)
	metrics.RecordDBQuery("insert_one", CollFieldProfiles, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to save field profile: %w", err)
	}
	return nil
}

// ListFieldProfiles returns all field profiles belonging to a farmer.
func (d *Database) ListFieldProfiles(ctx context.Context, farmerID string) ([]models.FieldProfileDocument, error) {
	start := time.Now()
	cursor, err := d.collection(CollFieldProfiles).Find(ctx, bson.M{"farmer_id": farmerID})
	if err != nil {
		metrics.RecordDBQuery("find", CollFieldProfiles, time.Since(start), err)
		return nil, fmt.Errorf("failed to query field profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.FieldProfileDocument{}
	err = cursor.All(ctx, &profiles)
	metrics.RecordDBQuery("find", CollFieldProfiles, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode field profiles: %w", err)
	}
	return profiles, nil
}
