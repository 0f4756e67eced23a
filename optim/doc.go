// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter update rules used during training.
//
// # Overview
//
// This package contains:
//   - SGD: plain stochastic gradient descent, param = param - lr * gradient
//
// The optimizer is a pure function of parameters and gradients plus its
// mutable learning rate; the learning-rate schedules in the train package
// adjust the rate between epochs via SetLR.
//
// # Basic Usage
//
//	optimizer := optim.NewSGD(optim.Config{LR: 0.01})
//	layer.SetWeights(optimizer.UpdateWeights(layer.Weights(), grads.Weights))
//	layer.SetBiases(optimizer.UpdateBiases(layer.Biases(), grads.Biases))
package optim
