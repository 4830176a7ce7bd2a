// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

// Package database wraps the MongoDB connection and all collection
// access for the crop advisory backend. Every exported query method
// takes a context and records query metrics.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/metrics"
)

// Collection names.
const (
	CollCropData      = "crop_data"
	CollUploadBatches = "upload_batches"
	CollFarmers       = "farmers"
	CollFieldProfiles = "field_profiles"
)

// Database wraps the Mongo client and the application database handle.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB using the provided configuration and verifies
// the connection with a ping. The caller owns the returned handle and
// must Close it on shutdown.
func New(ctx context.Context, cfg *config.MongoConfig) (*Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ServerSelectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logging.Info().
		Str("database", cfg.Database).
		Uint64("max_pool_size", cfg.MaxPoolSize).
		Msg("Connected to MongoDB")

	return &Database{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Ping checks connectivity to the server. Used by readiness probes.
func (d *Database) Ping(ctx context.Context) error {
	start := time.Now()
	err := d.client.Ping(ctx, nil)
	metrics.RecordDBQuery("ping", "", time.Since(start), err)
	return err
}

// Close disconnects the underlying client.
func (d *Database) Close(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	logging.Info().Msg("Disconnected from MongoDB")
	return nil
}

// collection returns a handle to a named collection.
func (d *Database) collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// EnsureIndexes creates the indexes the query paths depend on. Index
// creation is idempotent; Mongo ignores requests for indexes that
// already exist with the same spec.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	specs := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{
			collection: CollCropData,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "state", Value: 1}, {Key: "crop_type", Value: 1}}},
				{Keys: bson.D{{Key: "upload_batch_id", Value: 1}}},
			},
		},
		{
			collection: CollUploadBatches,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "batch_id", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
			},
		},
		{
			collection: CollFarmers,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
				{
					Keys:    bson.D{{Key: "farmer_id", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
			},
		},
		{
			collection: CollFieldProfiles,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "farmer_id", Value: 1}}},
			},
		},
	}

	for _, spec := range specs {
		if _, err := d.collection(spec.collection).Indexes().CreateMany(ctx, spec.models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", spec.collection, err)
		}
	}

	logging.Info().Msg("MongoDB indexes ensured")
	return nil
}
