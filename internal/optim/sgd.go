package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/strata-ml/strata/internal/nn"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum accelerates descent along persistent gradient directions and
// dampens oscillations. With Momentum 0 the update is bit-identical to
// the fused nn.Network.TrainStep.
//
// Example:
//
//	rule := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
type SGD struct {
	lr         float64
	momentum   float64
	velocities map[*nn.Layer]*velocity
}

// velocity holds one layer's momentum buffers, shaped like its
// parameters.
type velocity struct {
	weights []float64
	bias    []float64
}

// SGDConfig holds configuration for the SGD rule.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD rule, filling in the default learning rate
// of 0.01 when none is given.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Layer]*velocity),
	}
}

// Apply performs one SGD update on the layer.
//
// Velocity buffers are created lazily per layer on the first momentum
// update and start at zero, so the first step with momentum equals a
// plain gradient step.
func (s *SGD) Apply(l *nn.Layer, grads *nn.Grads) {
	if s.momentum == 0 {
		l.ApplyGrads(grads, s.lr)
		return
	}

	v, ok := s.velocities[l]
	if !ok {
		v = &velocity{
			weights: make([]float64, len(grads.Weights)),
			bias:    make([]float64, len(grads.Bias)),
		}
		s.velocities[l] = v
	}

	// velocity = momentum * velocity + gradient
	floats.Scale(s.momentum, v.weights)
	floats.Add(v.weights, grads.Weights)
	floats.Scale(s.momentum, v.bias)
	floats.Add(v.bias, grads.Bias)

	// param -= lr * velocity
	l.ApplyGrads(&nn.Grads{Weights: v.weights, Bias: v.bias}, s.lr)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
