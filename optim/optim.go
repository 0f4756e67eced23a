// Copyright 2025 Neura ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/neura-ml/neura/internal/optim"
)

// SGD implements plain stochastic gradient descent.
type SGD = optim.SGD

// Config holds configuration for the SGD optimizer.
type Config = optim.Config

// NewSGD creates a new SGD optimizer.
func NewSGD(config Config) *SGD {
	return optim.NewSGD(config)
}
