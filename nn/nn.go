// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/neura-ml/neura/internal/nn"
)

// Type aliases for the public API.

// Activation identifies one of the supported activation functions.
type Activation = nn.Activation

// Activation constants.
const (
	Linear  Activation = nn.Linear
	ReLU    Activation = nn.ReLU
	Sigmoid Activation = nn.Sigmoid
	Tanh    Activation = nn.Tanh
	Softmax Activation = nn.Softmax
)

// Layer is one affine transform followed by an activation.
type Layer = nn.Layer

// Network is an ordered, append-only sequence of layers.
type Network = nn.Network

// Cache holds one layer's forward-pass intermediates for backpropagation.
type Cache = nn.Cache

// LayerGrads holds one layer's parameter gradients.
type LayerGrads = nn.LayerGrads

// TrainingMetrics is the append-only log of one training run.
type TrainingMetrics = nn.TrainingMetrics

// New creates a network with a time-seeded private random source.
func New(learningRate float64) *Network {
	return nn.New(learningRate)
}

// NewWithRand creates a network whose layer initialization draws from the
// given generator, for reproducible construction.
func NewWithRand(learningRate float64, rng *rand.Rand) *Network {
	return nn.NewWithRand(learningRate, rng)
}

// NewLayer creates a standalone He-initialized layer.
func NewLayer(inputSize, outputSize int, activation Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(inputSize, outputSize, activation, rng)
}

// NewTrainingMetrics creates empty metrics with BestLoss at +Inf.
func NewTrainingMetrics() *TrainingMetrics {
	return nn.NewTrainingMetrics()
}
