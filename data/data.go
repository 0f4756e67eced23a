// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides the public API for loading the Parkinson's
// voice-measurement datasets.
//
// # Overview
//
// Load reads the UCI parkinsons.data (classification, 22 features, binary
// status) and parkinsons_updrs.data (regression, 16 features, motor-UPDRS
// score scaled to [0, 1]) files, min-max normalizes every feature and
// returns the parallel sample pairs the train package consumes.
//
// Download the datasets from:
//   - https://archive.ics.uci.edu/dataset/174/parkinsons
//   - https://archive.ics.uci.edu/dataset/189/parkinsons+telemonitoring
package data

import (
	"github.com/neura-ml/neura/internal/data"
)

// Dataset holds the parallel sample pairs for both tasks.
type Dataset = data.Dataset

// Stats summarizes dataset dimensions.
type Stats = data.Stats

// Feature widths of the two tasks.
const (
	ClassificationFeatures = data.ClassificationFeatures
	RegressionFeatures     = data.RegressionFeatures
)

// Load reads both dataset files from dir and returns a normalized dataset.
func Load(dir string) (*Dataset, error) {
	return data.Load(dir)
}
