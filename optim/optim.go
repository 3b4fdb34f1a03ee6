// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for training graph arc
// weights with gradient-descent optimizers.
package optim

import (
	"github.com/born-ml/gtn/gtn"
	"github.com/born-ml/gtn/internal/optim"
)

// Optimizer is the common interface implemented by all optimizers.
type Optimizer = optim.Optimizer

// Config is the base configuration shared by all optimizers.
type Config = optim.Config

// SGD (Stochastic Gradient Descent)

// SGD implements Stochastic Gradient Descent with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over params.
//
// Example:
//
//	weights := gtn.NewItem(0.5)
//	optimizer := optim.NewSGD([]gtn.Graph{weights}, optim.SGDConfig{LR: 0.01, Momentum: 0.9})
func NewSGD(params []gtn.Graph, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer over params.
func NewAdam(params []gtn.Graph, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
