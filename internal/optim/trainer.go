package optim

import (
	"fmt"

	"github.com/strata-ml/strata/internal/nn"
)

// Trainer drives training sweeps over a network with a pluggable update
// rule.
//
// A Trainer runs the same per-sample forward/loss/backward sweep as the
// network's fused TrainStep, but hands each layer's gradients to its
// Rule instead of descending directly. It shares the network's
// single-threaded constraints.
type Trainer struct {
	net  *nn.Network
	rule Rule
}

// NewTrainer creates a trainer for net. A nil rule means plain SGD with
// the default learning rate.
func NewTrainer(net *nn.Network, rule Rule) *Trainer {
	if rule == nil {
		rule = NewSGD(SGDConfig{})
	}
	return &Trainer{net: net, rule: rule}
}

// Network returns the network being trained.
func (t *Trainer) Network() *nn.Network {
	return t.net
}

// Step runs one training step on a single sample: forward pass, loss,
// then a backward sweep applying the rule to every layer.
//
// Like nn.Network.TrainStep, the returned loss is measured before the
// update, and dimension errors surface before any parameter changes.
func (t *Trainer) Step(input, target []float64) (float64, error) {
	output, err := t.net.Forward(input)
	if err != nil {
		return 0, err
	}
	lossVal, grad, err := t.net.Loss(output, target)
	if err != nil {
		return 0, err
	}
	for k := t.net.Len() - 1; k >= 0; k-- {
		layer := t.net.Layer(k)
		inputGrad, grads, err := layer.ComputeGradients(grad)
		if err != nil {
			return 0, err
		}
		t.rule.Apply(layer, grads)
		grad = inputGrad
	}
	return lossVal, nil
}

// Fit runs epochs full passes over the samples in order, one Step per
// sample, and returns the mean loss of each epoch.
//
// Samples are visited in the given order on every pass; shuffle them
// beforehand if order effects matter.
func (t *Trainer) Fit(inputs, targets [][]float64, epochs int) ([]float64, error) {
	if len(inputs) != len(targets) {
		return nil, fmt.Errorf("%w: %d inputs but %d targets", nn.ErrDimensionMismatch, len(inputs), len(targets))
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no samples", nn.ErrDimensionMismatch)
	}
	if epochs <= 0 {
		return nil, fmt.Errorf("epochs must be positive, got %d", epochs)
	}

	history := make([]float64, 0, epochs)
	for e := 0; e < epochs; e++ {
		var sum float64
		for i := range inputs {
			lossVal, err := t.Step(inputs[i], targets[i])
			if err != nil {
				return nil, err
			}
			sum += lossVal
		}
		history = append(history, sum/float64(len(inputs)))
	}
	return history, nil
}
