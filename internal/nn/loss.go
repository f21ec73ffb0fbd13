package nn

import (
	"fmt"
	"math"
)

// Loss scores a network output against a target and produces the
// gradient that seeds backpropagation.
type Loss interface {
	// Name returns the stable identifier used when exporting and
	// restoring network state, e.g. "mse".
	Name() string

	// Loss returns the scalar loss together with d(loss)/d(output), one
	// entry per output unit.
	//
	// Returns ErrDimensionMismatch when output and target lengths differ
	// or are zero.
	Loss(output, target []float64) (float64, []float64, error)
}

// checkPair validates an output/target pair before scoring.
func checkPair(output, target []float64) error {
	if len(output) == 0 {
		return fmt.Errorf("%w: empty output", ErrDimensionMismatch)
	}
	if len(output) != len(target) {
		return fmt.Errorf("%w: output has %d values, target has %d", ErrDimensionMismatch, len(output), len(target))
	}
	return nil
}

// MSE is mean squared error, the default loss for new networks.
//
//	loss   = (1/M) Σ (output_j - target_j)²
//	grad_j = (2/M) (output_j - target_j)
//
// where M is the output width. MSE suits regression targets and pairs
// with any activation.
type MSE struct{}

// Name returns "mse".
func (MSE) Name() string { return "mse" }

// Loss computes the mean squared error and its gradient.
func (MSE) Loss(output, target []float64) (float64, []float64, error) {
	if err := checkPair(output, target); err != nil {
		return 0, nil, err
	}
	m := float64(len(output))
	grad := make([]float64, len(output))
	var sum float64
	for j, o := range output {
		d := o - target[j]
		sum += d * d
		grad[j] = 2.0 * d / m
	}
	return sum / m, grad, nil
}

// bceEpsilon keeps log arguments away from zero when a sigmoid output
// saturates.
const bceEpsilon = 1e-15

// BinaryCrossEntropy scores outputs that represent independent
// probabilities in (0, 1), such as sigmoid outputs:
//
//	loss = -(1/M) Σ [t_j*ln(p_j) + (1-t_j)*ln(1-p_j)]
//
// Predictions are clamped to [eps, 1-eps] before the logarithms so a
// saturated output cannot produce Inf or NaN.
type BinaryCrossEntropy struct{}

// Name returns "bce".
func (BinaryCrossEntropy) Name() string { return "bce" }

// Loss computes the binary cross-entropy and its gradient.
func (BinaryCrossEntropy) Loss(output, target []float64) (float64, []float64, error) {
	if err := checkPair(output, target); err != nil {
		return 0, nil, err
	}
	m := float64(len(output))
	grad := make([]float64, len(output))
	var sum float64
	for j, p := range output {
		p = math.Min(math.Max(p, bceEpsilon), 1-bceEpsilon)
		t := target[j]
		sum -= t*math.Log(p) + (1-t)*math.Log(1-p)
		grad[j] = (p - t) / (p * (1 - p) * m)
	}
	return sum / m, grad, nil
}

// LossByName resolves a loss function from the identifier returned by
// its Name method. The empty string resolves to MSE, matching the
// construction default.
//
// Recognized names: "mse", "bce".
func LossByName(name string) (Loss, error) {
	switch name {
	case "mse", "":
		return MSE{}, nil
	case "bce":
		return BinaryCrossEntropy{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown loss %q", ErrInvalidTopology, name)
	}
}
