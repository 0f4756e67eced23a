// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the epoch/batch training loop, learning-rate
// schedules, gradient clipping and the alternating multi-task scheduler.
//
// # Overview
//
// One parameterized Trainer replaces the historical fast/balanced/optimal
// loop variants; the presets differ only in their Schedule, clip norm and
// loss weighting:
//   - FastConfig: Aggressive schedule, no clipping, plain MSE
//   - BalancedConfig: Conservative schedule, clip 2.0, recall-weighted loss
//   - OptimalConfig: Optimal schedule, clip 2.5, plain MSE
//
// Schedules are pluggable strategy values; all decay monotonically and clamp
// to a floor. Early stopping triggers once the epochs without improvement
// exceed the schedule's patience threshold.
//
// TrainAlternating trains one shared network on a classification and a
// regression sample set with progress-staged emphasis.
//
// # Basic Usage
//
//	metrics := train.New(train.Config{
//	    Epochs:    200,
//	    BatchSize: 16,
//	    Schedule:  train.Conservative,
//	    ClipNorm:  2.0,
//	    Balanced:  true,
//	}).Train(net, inputs, targets)
package train
