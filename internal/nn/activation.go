package nn

import (
	"fmt"
	"math"
)

// Activation is an element-wise activation function applied to a layer's
// pre-activation sums.
//
// Derivative takes the activation output rather than the pre-activation
// input: for y = f(x), Derivative(y) must return f'(x). This lets the
// backward pass reuse the cached outputs instead of recomputing f, and
// every activation here admits that form (sigmoid: y*(1-y), tanh: 1-y²,
// relu: 1 if y > 0).
type Activation interface {
	// Name returns the stable identifier used when exporting and
	// restoring network state, e.g. "sigmoid".
	Name() string

	// Activate computes f(x).
	Activate(x float64) float64

	// Derivative computes f'(x) given y = f(x).
	Derivative(y float64) float64
}

// Linear is the identity activation: f(x) = x.
//
// A layer with Linear activation is a plain affine map, the usual choice
// for regression outputs.
type Linear struct{}

// Name returns "linear".
func (Linear) Name() string { return "linear" }

// Activate returns x unchanged.
func (Linear) Activate(x float64) float64 { return x }

// Derivative returns 1 for every output.
func (Linear) Derivative(_ float64) float64 { return 1 }

// Sigmoid is the logistic activation: f(x) = 1 / (1 + exp(-x)).
//
// Outputs lie in (0, 1). Extreme inputs saturate cleanly to the 0 and 1
// asymptotes because math.Exp overflows to +Inf and underflows to 0.
type Sigmoid struct{}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Activate computes 1 / (1 + exp(-x)).
func (Sigmoid) Activate(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Derivative computes y * (1 - y).
func (Sigmoid) Derivative(y float64) float64 { return y * (1 - y) }

// Tanh is the hyperbolic tangent activation with outputs in (-1, 1).
type Tanh struct{}

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// Activate computes tanh(x).
func (Tanh) Activate(x float64) float64 { return math.Tanh(x) }

// Derivative computes 1 - y².
func (Tanh) Derivative(y float64) float64 { return 1 - y*y }

// ReLU is the rectified linear activation: f(x) = max(0, x).
type ReLU struct{}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Activate returns x for positive inputs and 0 otherwise.
func (ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 where the unit was active (y > 0) and 0
// elsewhere. The kink at zero takes the 0 branch.
func (ReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return 0
}

// LeakyReLU is a rectifier that keeps a small slope for negative inputs:
// f(x) = x for x >= 0, alpha*x otherwise.
type LeakyReLU struct {
	// Alpha is the negative-input slope; the zero value uses 0.1.
	Alpha float64
}

func (l LeakyReLU) slope() float64 {
	if l.Alpha == 0 {
		return 0.1
	}
	return l.Alpha
}

// Name returns "leaky_relu".
func (LeakyReLU) Name() string { return "leaky_relu" }

// Activate returns x for non-negative inputs and alpha*x otherwise.
func (l LeakyReLU) Activate(x float64) float64 {
	if x >= 0 {
		return x
	}
	return l.slope() * x
}

// Derivative returns 1 where the output is non-negative and alpha where
// it is negative. The output has the same sign as the input, so the
// cached output is enough to pick the branch.
func (l LeakyReLU) Derivative(y float64) float64 {
	if y >= 0 {
		return 1
	}
	return l.slope()
}

// Softplus is the smooth rectifier f(x) = ln(1 + exp(x)).
type Softplus struct{}

// Name returns "softplus".
func (Softplus) Name() string { return "softplus" }

// Activate computes ln(1 + exp(x)), arranged so large positive inputs
// cannot overflow exp.
func (Softplus) Activate(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// Derivative recovers sigmoid(x) from the output: f'(x) = 1 - exp(-y).
func (Softplus) Derivative(y float64) float64 { return 1 - math.Exp(-y) }

// ActivationByName resolves an activation from the identifier returned
// by its Name method. The empty string resolves to Linear, so state
// snapshots that omit the field load as plain affine layers.
//
// Recognized names: "linear", "sigmoid", "tanh", "relu", "leaky_relu",
// "softplus".
func ActivationByName(name string) (Activation, error) {
	switch name {
	case "linear", "":
		return Linear{}, nil
	case "sigmoid":
		return Sigmoid{}, nil
	case "tanh":
		return Tanh{}, nil
	case "relu":
		return ReLU{}, nil
	case "leaky_relu":
		return LeakyReLU{}, nil
	case "softplus":
		return Softplus{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown activation %q", ErrInvalidTopology, name)
	}
}
