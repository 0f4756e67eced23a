// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"gonum.org/v1/gonum/mat"

	"github.com/neura-ml/neura/internal/nn"
	"github.com/neura-ml/neura/internal/train"
)

// Type aliases for the public API.

// Schedule is a pluggable learning-rate decay policy with a patience
// threshold.
type Schedule = train.Schedule

// Config parameterizes one training run.
type Config = train.Config

// Trainer drives one task's training to convergence or early stop.
type Trainer = train.Trainer

// Strategy is the per-epoch task split of the alternating scheduler.
type Strategy = train.Strategy

// AlternatingConfig parameterizes an alternating run.
type AlternatingConfig = train.AlternatingConfig

// AlternatingMetrics records one alternating run.
type AlternatingMetrics = train.AlternatingMetrics

// Built-in learning-rate schedules.
var (
	Aggressive   = train.Aggressive
	Conservative = train.Conservative
	Optimal      = train.Optimal
)

// New creates a trainer, filling unset config fields with defaults.
func New(config Config) *Trainer {
	return train.New(config)
}

// FastConfig is the aggressive preset: fast decay, no clipping, plain MSE.
func FastConfig(epochs, batchSize int) Config {
	return train.FastConfig(epochs, batchSize)
}

// BalancedConfig is the class-imbalance preset: slow decay, clipping at 2.0,
// recall-weighted loss and gradients.
func BalancedConfig(epochs, batchSize int) Config {
	return train.BalancedConfig(epochs, batchSize)
}

// OptimalConfig is the staged preset: staged decay with clipping at 2.5.
func OptimalConfig(epochs, batchSize int) Config {
	return train.OptimalConfig(epochs, batchSize)
}

// TrainFast trains with the aggressive preset.
func TrainFast(net *nn.Network, inputs, targets []*mat.VecDense, epochs, batchSize int) *nn.TrainingMetrics {
	return train.TrainFast(net, inputs, targets, epochs, batchSize)
}

// TrainBalanced trains with the class-imbalance preset.
func TrainBalanced(net *nn.Network, inputs, targets []*mat.VecDense, epochs, batchSize int) *nn.TrainingMetrics {
	return train.TrainBalanced(net, inputs, targets, epochs, batchSize)
}

// TrainOptimal trains with the staged preset.
func TrainOptimal(net *nn.Network, inputs, targets []*mat.VecDense, epochs, batchSize int) *nn.TrainingMetrics {
	return train.TrainOptimal(net, inputs, targets, epochs, batchSize)
}

// TrainAlternating trains one shared network on two sample sets with
// time-varying emphasis.
func TrainAlternating(net *nn.Network,
	classificationInputs, classificationTargets,
	regressionInputs, regressionTargets []*mat.VecDense,
	config AlternatingConfig) *AlternatingMetrics {
	return train.TrainAlternating(net,
		classificationInputs, classificationTargets,
		regressionInputs, regressionTargets, config)
}

// StrategyFor returns the alternation strategy for an epoch given the total
// epoch budget.
func StrategyFor(epoch, totalEpochs int) Strategy {
	return train.StrategyFor(epoch, totalEpochs)
}

// GradientNorm returns the combined L2 norm across all layer gradients.
func GradientNorm(grads []nn.LayerGrads) float64 {
	return train.GradientNorm(grads)
}

// ClipGradients rescales gradients whose combined L2 norm exceeds maxNorm
// and returns the pre-clip norm.
func ClipGradients(grads []nn.LayerGrads, maxNorm float64) float64 {
	return train.ClipGradients(grads, maxNorm)
}
