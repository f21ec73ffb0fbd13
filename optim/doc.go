// Copyright 2025 Strata ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Trainer: the update loop driving a Rule over a network
//   - Rule interface for custom update rules
//
// # Basic Usage
//
//	import (
//	    "github.com/strata-ml/strata/nn"
//	    "github.com/strata-ml/strata/optim"
//	)
//
//	func main() {
//	    net, _ := nn.New(
//	        []int{2, 4, 1},
//	        []nn.Activation{nn.Tanh{}, nn.Sigmoid{}},
//	        nn.Config{Seed: 42},
//	    )
//
//	    trainer := optim.NewTrainer(net, optim.NewSGD(optim.SGDConfig{
//	        LR:       0.5,
//	        Momentum: 0.9,
//	    }))
//
//	    history, err := trainer.Fit(inputs, targets, 1000)
//	}
//
// # Update Rules
//
// SGD (Stochastic Gradient Descent):
//
//	rule := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
// With zero momentum SGD reproduces nn.Network.TrainStep exactly.
//
// Adam (Adaptive Moment Estimation):
//
//	rule := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
//
// # Training Loop Pattern
//
//	trainer := optim.NewTrainer(net, rule)
//	for epoch := 0; epoch < numEpochs; epoch++ {
//	    for i := range inputs {
//	        loss, err := trainer.Step(inputs[i], targets[i])
//	        if err != nil {
//	            return err
//	        }
//	    }
//	}
//
// Fit wraps this loop and reports the mean loss per epoch.
package optim
