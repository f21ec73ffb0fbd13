// Package optim implements update rules and a training loop for
// feedforward networks.
//
// This package provides:
//   - Rule interface: how parameters move given one backward pass
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//   - Trainer: forward/backward sweeps driving any Rule
//
// Rules consume the per-layer gradients produced by
// nn.Layer.ComputeGradients. SGD with zero momentum applies exactly the
// same update as the fused nn.Network.TrainStep, so the two training
// paths are interchangeable; the configurable rules add state (velocity
// or moment buffers) on top of the same gradients.
//
// Example usage:
//
//	net, _ := nn.New([]int{2, 4, 1}, []nn.Activation{nn.Tanh{}, nn.Sigmoid{}}, nn.Config{Seed: 1})
//	trainer := optim.NewTrainer(net, optim.NewSGD(optim.SGDConfig{
//	    LR:       0.5,
//	    Momentum: 0.9,
//	}))
//
//	history, err := trainer.Fit(inputs, targets, 1000)
package optim

import (
	"github.com/strata-ml/strata/internal/nn"
)

// Rule applies one parameter update to a layer from the gradients of a
// single backward pass.
//
// Implementations may keep per-layer state (velocity or moment buffers)
// keyed on the layer pointer; grads stay owned by the caller and must
// not be retained after Apply returns.
type Rule interface {
	// Apply moves the layer's parameters using the given gradients.
	//
	// The gradients come from the layer's own ComputeGradients call, so
	// their lengths always match the layer.
	Apply(l *nn.Layer, grads *nn.Grads)
}
