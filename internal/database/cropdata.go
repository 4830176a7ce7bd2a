// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package database

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/metrics"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/models"
)

// CropDataFilter narrows crop record queries. Empty fields are ignored;
// string matches are case-insensitive exact matches.
type CropDataFilter struct {
	CropType string
	State    string
	District string
}

// buildCropDataFilter converts a CropDataFilter into a bson document.
// Values are regex-escaped so user input cannot inject patterns.
func buildCropDataFilter(f CropDataFilter) bson.M {
	filter := bson.M{}
	if f.CropType != "" {
		filter["crop_type"] = caseInsensitiveMatch(f.CropType)
	}
	if f.State != "" {
		filter["state"] = caseInsensitiveMatch(f.State)
	}
	if f.District != "" {
		filter["district"] = caseInsensitiveMatch(f.District)
	}
	return filter
}

func caseInsensitiveMatch(value string) primitive.Regex {
	return primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(value) + "$",
		Options: "i",
	}
}

// ListCropRecords returns crop records matching the filter, newest first.
func (d *Database) ListCropRecords(ctx context.Context, filter CropDataFilter, limit, offset int64) ([]models.CropRecord, error) {
	start := time.Now()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := d.collection(CollCropData).Find(ctx, buildCropDataFilter(filter), opts)
	if err != nil {
		metrics.RecordDBQuery("find", CollCropData, time.Since(start), err)
		return nil, fmt.Errorf("failed to query crop records: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]models.CropRecord, 0, limit)
	err = cursor.All(ctx, &records)
	metrics.RecordDBQuery("find", CollCropData, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode crop records: %w", err)
	}
	return records, nil
}

// CountCropRecords counts crop records matching the filter.
func (d *Database) CountCropRecords(ctx context.Context, filter CropDataFilter) (int64, error) {
	start := time.Now()
	count, err := d.collection(CollCropData).CountDocuments(ctx, buildCropDataFilter(filter))
	metrics.RecordDBQuery("count", CollCropData, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count crop records: %w", err)
	}
	return count, nil
}

// InsertCropRecords bulk-inserts validated crop records.
func (d *Database) InsertCropRecords(ctx context.Context, records []models.CropRecord) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i := range records {
		docs[i] = records[i]
	}

	start := time.Now()
	_, err := d.collection(CollCropData).InsertMany(ctx, docs)
	metrics.RecordDBQuery("insert_many", CollCropData, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert crop records: %w", err)
	}
	return nil
}

// InsertUploadBatch stores a CSV ingestion summary.
func (d *Database) InsertUploadBatch(ctx context.Context, batch *models.UploadBatch) error {
	start := time.Now()
	_, err := d.collection(CollUploadBatches).InsertOne(ctx, batch)
	metrics.RecordDBQuery("insert_one", CollUploadBatches, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert upload batch: %w", err)
	}
	return nil
}

// GetUploadBatch looks up an ingestion summary by its batch ID.
func (d *Database) GetUploadBatch(ctx context.Context, batchID string) (*models.UploadBatch, error) {
	start := time.Now()
	var batch models.UploadBatch
	err := d.collection(CollUploadBatches).FindOne(ctx, bson.M{"batch_id": batchID}).Decode(&batch)
	metrics.RecordDBQuery("find_one", CollUploadBatches, time.Since(start), err)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get upload batch: %w", err)
	}
	return &batch, nil
}

// statsAccumulator is the decode target for the scalar statistics pipeline.
type statsAccumulator struct {
	TotalRecords int64    `bson:"total_records"`
	AvgYield     float64  `bson:"avg_yield"`
	MinYield     float64  `bson:"min_yield"`
	MaxYield     float64  `bson:"max_yield"`
	TotalArea    float64  `bson:"total_area"`
	Crops        []string `bson:"crops"`
	States       []string `bson:"states"`
	Districts    []string `bson:"districts"`
}

// ComprehensiveStatistics computes the dataset-wide summary served by
// the statistics endpoint. Returns zero-valued statistics when the
// collection is empty.
func (d *Database) ComprehensiveStatistics(ctx context.Context) (*models.CropStatistics, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"total_records": bson.M{"$sum": 1},
			"avg_yield":     bson.M{"$avg": "$yield_per_hectare"},
			"min_yield":     bson.M{"$min": "$yield_per_hectare"},
			"max_yield":     bson.M{"$max": "$yield_per_hectare"},
			"total_area":    bson.M{"$sum": "$field_size_hectares"},
			"crops":         bson.M{"$addToSet": "$crop_type"},
			"states":        bson.M{"$addToSet": "$state"},
			"districts":     bson.M{"$addToSet": "$district"},
		}}},
	}

	start := time.Now()
	cursor, err := d.collection(CollCropData).Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordDBQuery("aggregate", CollCropData, time.Since(start), err)
		return nil, fmt.Errorf("failed to aggregate statistics: %w", err)
	}
	defer cursor.Close(ctx)

	var results []statsAccumulator
	err = cursor.All(ctx, &results)
	metrics.RecordDBQuery("aggregate", CollCropData, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode statistics: %w", err)
	}

	stats := &models.CropStatistics{
		TopCrops:  []models.CropRanking{},
		TopStates: []models.StateRanking{},
	}
	if len(results) > 0 {
		acc := results[0]
		stats.TotalRecords = acc.TotalRecords
		stats.AvgYield = roundTo(acc.AvgYield, 2)
		stats.MinYield = acc.MinYield
		stats.MaxYield = acc.MaxYield
		stats.TotalAreaHectares = roundTo(acc.TotalArea, 2)
		stats.UniqueCrops = int64(len(acc.Crops))
		stats.UniqueStates = int64(len(acc.States))
		stats.UniqueDistricts = int64(len(acc.Districts))
	}

	if stats.TotalRecords > 0 {
		topCrops, err := d.TopCropsByYield(ctx, 5)
		if err != nil {
			return nil, err
		}
		topStates, err := d.TopStatesByArea(ctx, 5)
		if err != nil {
			return nil, err
		}
		stats.TopCrops = topCrops
		stats.TopStates = topStates
	}

	return stats, nil
}

// TopCropsByYield returns the crops with the highest average yield.
func (d *Database) TopCropsByYield(ctx context.Context, limit int) ([]models.CropRanking, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          "$crop_type",
			"avg_yield":    bson.M{"$avg": "$yield_per_hectare"},
			"record_count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "avg_yield", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	start := time.Now()
	cursor, err := d.collection(CollCropData).Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordDBQuery("aggregate", CollCropData, time.Since(start), err)
		return nil, fmt.Errorf("failed to aggregate top crops: %w", err)
	}
	defer cursor.Close(ctx)

	rankings := make([]models.CropRanking, 0, limit)
	err = cursor.All(ctx, &rankings)
	metrics.RecordDBQuery("aggregate", CollCropData, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode top crops: %w", err)
	}
	for i := range rankings {
		rankings[i].AvgYield = roundTo(rankings[i].AvgYield, 2)
	}
	return rankings, nil
}

// TopStatesByArea returns the states with the most cultivated area.
func (d *Database) TopStatesByArea(ctx context.Context, limit int) ([]models.StateRanking, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          "$state",
			"total_area":   bson.M{"$sum": "$field_size_hectares"},
			"record_count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_area", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	start := time.Now()
	cursor, err := d.collection(CollCropData).Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordDBQuery("aggregate", CollCropData, time.Since(start), err)
		return nil, fmt.Errorf("failed to aggregate top states: %w", err)
	}
	defer cursor.Close(ctx)

	rankings := make([]models.StateRanking, 0, limit)
	err = cursor.All(ctx, &rankings)
	metrics.RecordDBQuery("aggregate", CollCropData, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode top states: %w", err)
	}
	for i := range rankings {
		rankings[i].TotalArea = roundTo(rankings[i].TotalArea, 2)
	}
	return rankings, nil
}

// YieldAnalysis groups yield statistics by state and crop, optionally
// filtered to a single state or crop. Groups are ordered by average
// yield descending.
func (d *Database) YieldAnalysis(ctx context.Context, state, cropType string) ([]models.YieldAnalysisGroup, error) {
	match := bson.M{}
	if state != "" {
		match["state"] = caseInsensitiveMatch(state)
	}
	if cropType != "" {
		match["crop_type"] = caseInsensitiveMatch(cropType)
	}

	pipeline := mongo.Pipeline{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"state":     "$state",
				"crop_type": "$crop_type",
			},
			"avg_yield":    bson.M{"$avg": "$yield_per_hectare"},
			"min_yield":    bson.M{"$min": "$yield_per_hectare"},
			"max_yield":    bson.M{"$max": "$yield_per_hectare"},
			"record_count": bson.M{"$sum": 1},
			"total_area":   bson.M{"$sum": "$field_size_hectares"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":          0,
			"state":        "$_id.state",
			"crop_type":    "$_id.crop_type",
			"avg_yield":    1,
			"min_yield":    1,
			"max_yield":    1,
			"record_count": 1,
			"total_area":   1,
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "avg_yield", Value: -1}}}},
	)

	start := time.Now()
	cursor, err := d.collection(CollCropData).Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordDBQuery("aggregate", CollCropData, time.Since(start), err)
		return nil, fmt.Errorf("failed to aggregate yield analysis: %w", err)
	}
	defer cursor.Close(ctx)

	groups := []models.YieldAnalysisGroup{}
	err = cursor.All(ctx, &groups)
	metrics.RecordDBQuery("aggregate", CollCropData, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode yield analysis: %w", err)
	}
	for i := range groups {
		groups[i].AvgYield = roundTo(groups[i].AvgYield, 2)
		groups[i].TotalArea = roundTo(groups[i].TotalArea, 2)
	}
	return groups, nil
}
