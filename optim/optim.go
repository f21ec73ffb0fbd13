// Copyright 2025 Strata ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/strata-ml/strata/internal/nn"
	"github.com/strata-ml/strata/internal/optim"
)

// Rule interface defines the common interface for all update rules.
type Rule = optim.Rule

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD update rule with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD rule.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD rule.
//
// Example:
//
//	rule := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam update rule.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam rule.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam rule with bias correction.
//
// Example:
//
//	rule := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Trainer

// Trainer drives an update rule over a network.
type Trainer = optim.Trainer

// NewTrainer creates a trainer for the network. A nil rule defaults to
// SGD with its default learning rate.
//
// Example:
//
//	trainer := optim.NewTrainer(net, optim.NewAdam(optim.AdamConfig{}))
//	history, err := trainer.Fit(inputs, targets, 1000)
func NewTrainer(net *nn.Network, rule Rule) *Trainer {
	return optim.NewTrainer(net, rule)
}
