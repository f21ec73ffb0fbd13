package nn

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Layer is a fully connected layer computing act(W*x + b).
//
// The weight matrix W has one row per output unit and one column per
// input unit. A flat row-major slice backs both the gonum matrix used in
// the forward pass and the in-place updates of the backward pass, so the
// two views never drift apart.
//
// Forward caches its input and output until Backward (or
// ComputeGradients) consumes them; the cache is what makes the fused
// backward pass possible without re-running the forward computation.
//
// A Layer is not safe for concurrent use.
type Layer struct {
	in  int
	out int
	act Activation

	weights *mat.Dense    // [out x in], backed by wData
	bias    *mat.VecDense // [out], backed by bData
	wData   []float64
	bData   []float64

	lastInput  []float64 // copy of the pending forward input, nil when none
	lastOutput []float64 // activations of the pending forward pass
}

// Grads holds the parameter gradients from one backward pass through a
// layer. Weights is flat row-major with the same [out x in] layout as
// the layer's weight matrix.
type Grads struct {
	Weights []float64
	Bias    []float64
}

// newLayer allocates a layer with zeroed parameters.
func newLayer(in, out int, act Activation) (*Layer, error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("%w: layer widths must be positive, got %dx%d", ErrInvalidTopology, out, in)
	}
	if act == nil {
		act = Linear{}
	}
	l := &Layer{
		in:    in,
		out:   out,
		act:   act,
		wData: make([]float64, out*in),
		bData: make([]float64, out),
	}
	l.weights = mat.NewDense(out, in, l.wData)
	l.bias = mat.NewVecDense(out, l.bData)
	return l, nil
}

// NewLayer creates a fully connected layer with in inputs and out
// outputs.
//
// Weights are drawn with Xavier/Glorot uniform initialization from a
// time-seeded source; biases start at zero. Build networks through New
// for seeded, reproducible initialization, or install caller-supplied
// parameters with SetWeights and SetBias. A nil activation means Linear.
//
// Returns ErrInvalidTopology when either width is not positive.
func NewLayer(in, out int, act Activation) (*Layer, error) {
	l, err := newLayer(in, out, act)
	if err != nil {
		return nil, err
	}
	l.initialize(XavierUniform, newRand(0))
	return l, nil
}

// initialize redraws every weight from init. Biases stay at zero.
func (l *Layer) initialize(init Initializer, r *rand.Rand) {
	for i := range l.wData {
		l.wData[i] = init(r, l.in, l.out)
	}
}

// Forward runs the layer on input and returns the activated output.
//
// The input and output are cached as copies for a later backward pass;
// calling Forward again before then simply replaces the cache.
//
// Returns ErrDimensionMismatch, leaving the cache untouched, when the
// input length differs from the layer's input width.
func (l *Layer) Forward(input []float64) ([]float64, error) {
	if len(input) != l.in {
		return nil, fmt.Errorf("%w: layer expects %d inputs, got %d", ErrDimensionMismatch, l.in, len(input))
	}

	// z = W*x + b
	var z mat.VecDense
	z.MulVec(l.weights, mat.NewVecDense(l.in, input))
	z.AddVec(&z, l.bias)

	output := make([]float64, l.out)
	for j := range output {
		output[j] = l.act.Activate(z.AtVec(j))
	}

	l.lastInput = append([]float64(nil), input...)
	l.lastOutput = append([]float64(nil), output...)
	return output, nil
}

// ComputeGradients consumes the cached forward pass and returns the
// gradient of the loss with respect to the layer input alongside the
// parameter gradients. Parameters are not modified, so the result can be
// handed to any update rule; Backward fuses the vanilla descent update
// instead.
//
// outputGrad holds d(loss)/d(output), one entry per output unit. The
// input gradient is computed against the current (pre-update) weights.
//
// Returns ErrInvalidState when no forward pass is pending and
// ErrDimensionMismatch when outputGrad has the wrong length; either way
// the cache is left untouched.
func (l *Layer) ComputeGradients(outputGrad []float64) ([]float64, *Grads, error) {
	if l.lastInput == nil {
		return nil, nil, fmt.Errorf("%w: backward requested with no pending forward pass", ErrInvalidState)
	}
	if len(outputGrad) != l.out {
		return nil, nil, fmt.Errorf("%w: gradient has %d entries, layer has %d outputs", ErrDimensionMismatch, len(outputGrad), l.out)
	}

	// delta_j = outputGrad_j * f'(output_j), from cached activations
	delta := make([]float64, l.out)
	for j := range delta {
		delta[j] = outputGrad[j] * l.act.Derivative(l.lastOutput[j])
	}
	deltaVec := mat.NewVecDense(l.out, delta)

	// dW[j][i] = delta_j * input_i, dB_j = delta_j
	grads := &Grads{
		Weights: make([]float64, l.out*l.in),
		Bias:    delta,
	}
	dW := mat.NewDense(l.out, l.in, grads.Weights)
	dW.Outer(1, deltaVec, mat.NewVecDense(l.in, l.lastInput))

	// inputGrad = W^T * delta
	var inputGrad mat.VecDense
	inputGrad.MulVec(l.weights.T(), deltaVec)

	l.lastInput, l.lastOutput = nil, nil
	return inputGrad.RawVector().Data, grads, nil
}

// Backward consumes the cached forward pass, descends the parameters by
// lr along their gradients, and returns the gradient with respect to the
// layer input for the preceding layer.
//
// The input gradient is computed with the weights as they were before
// the update. Validation errors (ErrInvalidState, ErrDimensionMismatch)
// leave both parameters and cache untouched.
func (l *Layer) Backward(outputGrad []float64, lr float64) ([]float64, error) {
	inputGrad, grads, err := l.ComputeGradients(outputGrad)
	if err != nil {
		return nil, err
	}
	l.ApplyGrads(grads, lr)
	return inputGrad, nil
}

// ApplyGrads performs one step of vanilla gradient descent in place:
// param -= lr * grad. Grads must come from this layer's
// ComputeGradients, so the lengths always line up.
func (l *Layer) ApplyGrads(grads *Grads, lr float64) {
	floats.AddScaled(l.wData, -lr, grads.Weights)
	floats.AddScaled(l.bData, -lr, grads.Bias)
}

// InputSize returns the number of inputs the layer accepts.
func (l *Layer) InputSize() int { return l.in }

// OutputSize returns the number of outputs the layer produces.
func (l *Layer) OutputSize() int { return l.out }

// Activation returns the layer's activation function.
func (l *Layer) Activation() Activation { return l.act }

// Weights returns a copy of the weight matrix in flat row-major order,
// out rows of in columns each.
func (l *Layer) Weights() []float64 {
	return append([]float64(nil), l.wData...)
}

// Bias returns a copy of the bias vector.
func (l *Layer) Bias() []float64 {
	return append([]float64(nil), l.bData...)
}

// SetWeights replaces the weight matrix with w, given in the same flat
// row-major order as Weights. Installing parameters drops any pending
// forward cache.
//
// Returns ErrDimensionMismatch when the length is wrong.
func (l *Layer) SetWeights(w []float64) error {
	if len(w) != l.out*l.in {
		return fmt.Errorf("%w: weight matrix needs %d values, got %d", ErrDimensionMismatch, l.out*l.in, len(w))
	}
	copy(l.wData, w)
	l.lastInput, l.lastOutput = nil, nil
	return nil
}

// SetBias replaces the bias vector. Installing parameters drops any
// pending forward cache.
//
// Returns ErrDimensionMismatch when the length is wrong.
func (l *Layer) SetBias(b []float64) error {
	if len(b) != l.out {
		return fmt.Errorf("%w: bias vector needs %d values, got %d", ErrDimensionMismatch, l.out, len(b))
	}
	copy(l.bData, b)
	l.lastInput, l.lastOutput = nil, nil
	return nil
}
