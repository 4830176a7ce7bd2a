// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

// Package inference provides yield prediction, crop recommendation, and
// disease detection. Predictions prefer exported random-forest artifacts
// and degrade to rule-based heuristics when artifacts are unavailable.
package inference

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// artifactSchemaVersion is the only artifact schema this build reads.
const artifactSchemaVersion = 1

// treeNodes is one decision tree in flattened array form. Node i is a
// leaf when Feature[i] < 0; otherwise samples with
// x[Feature[i]] <= Threshold[i] descend to ChildrenLeft[i].
type treeNodes struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

// classifierTreeNodes is a classification tree. Leaf values are class
// probability distributions instead of scalars.
type classifierTreeNodes struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// yieldArtifact is the exported yield regression forest plus the label
// vocabularies captured at training time.
type yieldArtifact struct {
	SchemaVersion int         `json:"schema_version"`
	Features      []string    `json:"features"`
	AreaClasses   []string    `json:"area_classes"`
	CropClasses   []string    `json:"crop_classes"`
	Trees         []treeNodes `json:"trees"`
}

// cropArtifact is the exported crop recommendation classifier forest.
type cropArtifact struct {
	SchemaVersion int                   `json:"schema_version"`
	Features      []string              `json:"features"`
	Classes       []string              `json:"classes"`
	Trees         []classifierTreeNodes `json:"trees"`
}

func loadYieldArtifact(path string) (*yieldArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read yield artifact: %w", err)
	}

	var artifact yieldArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse yield artifact: %w", err)
	}
	if err := artifact.validate(); err != nil {
		return nil, fmt.Errorf("invalid yield artifact: %w", err)
	}
	return &artifact, nil
}

func loadCropArtifact(path string) (*cropArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read crop artifact: %w", err)
	}

	var artifact cropArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse crop artifact: %w", err)
	}
	if err := artifact.validate(); err != nil {
		return nil, fmt.Errorf("invalid crop artifact: %w", err)
	}
	return &artifact, nil
}

func (a *yieldArtifact) validate() error {
	if a.SchemaVersion != artifactSchemaVersion {
		return fmt.Errorf("unsupported schema version %d", a.SchemaVersion)
	}
	// The service always builds a fixed-length input vector, so the
	// artifact must have been trained with exactly that feature set.
	if len(a.Features) != len(yieldFeatures) {
		return fmt.Errorf("artifact declares %d features, want %d", len(a.Features), len(yieldFeatures))
	}
	if len(a.AreaClasses) == 0 || len(a.CropClasses) == 0 {
		return fmt.Errorf("empty label vocabulary")
	}
	if len(a.Trees) == 0 {
		return fmt.Errorf("no trees")
	}
	for i := range a.Trees {
		if err := validateTreeShape(
			a.Trees[i].ChildrenLeft, a.Trees[i].ChildrenRight,
			a.Trees[i].Feature, a.Trees[i].Threshold,
			len(a.Trees[i].Value), len(a.Features),
		); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}

func (a *cropArtifact) validate() error {
	if a.SchemaVersion != artifactSchemaVersion {
		return fmt.Errorf("unsupported schema version %d", a.SchemaVersion)
	}
	if len(a.Features) != len(cropFeatures) {
		return fmt.Errorf("artifact declares %d features, want %d", len(a.Features), len(cropFeatures))
	}
	if len(a.Classes) == 0 {
		return fmt.Errorf("no classes declared")
	}
	if len(a.Trees) == 0 {
		return fmt.Errorf("no trees")
	}
	for i := range a.Trees {
		tree := &a.Trees[i]
		if err := validateTreeShape(
			tree.ChildrenLeft, tree.ChildrenRight,
			tree.Feature, tree.Threshold,
			len(tree.Value), len(a.Features),
		); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
		for node, dist := range tree.Value {
			if tree.Feature[node] < 0 && len(dist) != len(a.Classes) {
				return fmt.Errorf("tree %d node %d: distribution length %d, want %d",
					i, node, len(dist), len(a.Classes))
			}
		}
	}
	return nil
}

// validateTreeShape checks that all node arrays agree in length, child
// pointers stay in range, and split features reference declared features.
func validateTreeShape(left, right, feature []int, threshold []float64, valueLen, featureCount int) error {
	n := len(left)
	if n == 0 {
		return fmt.Errorf("empty tree")
	}
	if len(right) != n || len(feature) != n || len(threshold) != n || valueLen != n {
		return fmt.Errorf("inconsistent node array lengths")
	}
	for i := 0; i < n; i++ {
		if feature[i] >= featureCount {
			return fmt.Errorf("node %d references feature %d of %d", i, feature[i], featureCount)
		}
		if feature[i] >= 0 {
			if left[i] < 0 || left[i] >= n || right[i] < 0 || right[i] >= n {
				return fmt.Errorf("node %d has out-of-range children", i)
			}
		}
	}
	return nil
}

// predict walks a regression tree to its leaf value.
func (t *treeNodes) predict(x []float64) float64 {
	node := 0
	for t.Feature[node] >= 0 {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// predict walks a classification tree to its leaf distribution.
func (t *classifierTreeNodes) predict(x []float64) []float64 {
	node := 0
	for t.Feature[node] >= 0 {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// predictForest averages tree outputs for an ensemble regression.
func (a *yieldArtifact) predictForest(x []float64) float64 {
	var sum float64
	for i := range a.Trees {
		sum += a.Trees[i].predict(x)
	}
	return sum / float64(len(a.Trees))
}

// predictProbabilities averages leaf distributions across the ensemble.
func (a *cropArtifact) predictProbabilities(x []float64) []float64 {
	probs := make([]float64, len(a.Classes))
	for i := range a.Trees {
		dist := a.Trees[i].predict(x)
		for c := range probs {
			probs[c] += dist[c]
		}
	}
	for c := range probs {
		probs[c] /= float64(len(a.Trees))
	}
	return probs
}
