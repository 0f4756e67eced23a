// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/neura-ml/neura/optim"
)

func TestNewSGD(t *testing.T) {
	sgd := optim.NewSGD(optim.Config{LR: 0.1})
	assert.Equal(t, 0.1, sgd.GetLR())

	defaulted := optim.NewSGD(optim.Config{})
	assert.Equal(t, 0.01, defaulted.GetLR())
}

func TestSGD_Update(t *testing.T) {
	sgd := optim.NewSGD(optim.Config{LR: 0.1})

	weights := sgd.UpdateWeights(
		mat.NewDense(1, 2, []float64{2, -1}),
		mat.NewDense(1, 2, []float64{1, 0.5}),
	)
	assert.InDelta(t, 1.9, weights.At(0, 0), 1e-12)
	assert.InDelta(t, -1.05, weights.At(0, 1), 1e-12)

	biases := sgd.UpdateBiases(
		mat.NewVecDense(1, []float64{0.5}),
		mat.NewVecDense(1, []float64{1}),
	)
	assert.InDelta(t, 0.4, biases.AtVec(0), 1e-12)
}
