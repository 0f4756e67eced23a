// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for building and differentiating small
// feed-forward networks over tabular data.
//
// # Overview
//
// This package contains:
//   - Network: an ordered sequence of affine layers built with AddLayer
//   - Layer: one weight matrix + bias vector + activation
//   - Activation: the closed set {Linear, ReLU, Sigmoid, Tanh, Softmax}
//   - TrainingMetrics: the append-only record of one training run
//
// Gradients are derived analytically per layer; there is no autograd tape.
// Backward consumes the cache produced by ForwardWithCache and returns
// per-layer weight/bias gradients in forward order, ready for the optim and
// train packages.
//
// # Basic Usage
//
//	import (
//	    "github.com/neura-ml/neura/nn"
//	    "github.com/neura-ml/neura/train"
//	)
//
//	func main() {
//	    net := nn.New(0.015)
//	    net.AddLayer(22, 64, nn.ReLU).
//	        AddLayer(64, 32, nn.ReLU).
//	        AddLayer(32, 1, nn.Sigmoid)
//
//	    metrics := train.TrainBalanced(net, inputs, targets, 200, 16)
//	    fmt.Printf("best loss: %.6f\n", metrics.BestLoss)
//	}
package nn
