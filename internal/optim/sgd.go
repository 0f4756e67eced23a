// Package optim implements the parameter update rules used during training.
package optim

import (
	"gonum.org/v1/gonum/mat"
)

// SGD implements plain stochastic gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// The optimizer holds only the mutable learning rate as state; the training
// loop's schedule adjusts it between epochs via SetLR, never the optimizer
// itself.
type SGD struct {
	lr float64
}

// Config holds configuration for the SGD optimizer.
type Config struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config Config) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// UpdateWeights returns weights − lr·gradients as a new matrix. Neither
// argument is mutated.
func (s *SGD) UpdateWeights(weights, gradients *mat.Dense) *mat.Dense {
	var scaled mat.Dense
	scaled.Scale(s.lr, gradients)

	updated := new(mat.Dense)
	updated.Sub(weights, &scaled)
	return updated
}

// UpdateBiases returns biases − lr·gradients as a new vector. Neither
// argument is mutated.
func (s *SGD) UpdateBiases(biases, gradients *mat.VecDense) *mat.VecDense {
	var scaled mat.VecDense
	scaled.ScaleVec(s.lr, gradients)

	updated := new(mat.VecDense)
	updated.SubVec(biases, &scaled)
	return updated
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Used by the learning-rate schedules
// between epochs.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
