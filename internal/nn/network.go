// Package nn implements a small feedforward neural network engine.
//
// This package provides the building blocks for dense networks trained
// with backpropagation:
//   - Layer: fully connected layer with cached forward state
//   - Activation: Linear, Sigmoid, Tanh, ReLU, LeakyReLU, Softplus
//   - Loss functions: MSE (default), BinaryCrossEntropy
//   - Initializer: XavierUniform (default), HeNormal, Uniform, Zeros
//   - Network: ordered stack of layers with a fused train step
//   - State: topology and parameter snapshots for save and load
//
// Training is per-sample (batch size 1) vanilla gradient descent. The
// optim package builds pluggable update rules and epoch loops on top of
// the same gradients.
package nn

import "fmt"

// Network is an ordered stack of fully connected layers trained with
// backpropagation and per-sample gradient descent.
//
// A Network is not safe for concurrent use: the backward pass reads
// activations cached by the forward pass, so interleaved calls from
// multiple goroutines corrupt each other.
type Network struct {
	layers []*Layer
	loss   Loss
}

// Config controls network construction. The zero value means Xavier
// uniform weights from a time-seeded source and MSE loss.
type Config struct {
	// Init draws each weight; nil means XavierUniform.
	Init Initializer

	// Seed seeds weight initialization. 0 draws a fresh seed so every
	// construction differs; set a fixed seed for reproducible networks.
	Seed int64

	// Loss scores outputs in TrainStep and Loss; nil means MSE.
	Loss Loss
}

func defaultLoss(l Loss) Loss {
	if l == nil {
		return MSE{}
	}
	return l
}

// New builds a fully connected network from layer widths.
//
// widths lists the input width followed by each layer's output width:
// []int{2, 3, 1} is a 2-input network with one hidden layer of 3 units
// and a single output. acts supplies one activation per layer
// (len(widths)-1 entries); a nil slice or a nil entry means Linear.
//
// Returns ErrInvalidTopology when fewer than two widths are given, any
// width is not positive, or the activation count does not match.
func New(widths []int, acts []Activation, cfg Config) (*Network, error) {
	if len(widths) < 2 {
		return nil, fmt.Errorf("%w: need an input width and at least one layer width, got %d widths", ErrInvalidTopology, len(widths))
	}
	for i, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("%w: widths must be positive, got %d at position %d", ErrInvalidTopology, w, i)
		}
	}
	if acts != nil && len(acts) != len(widths)-1 {
		return nil, fmt.Errorf("%w: %d layers but %d activations", ErrInvalidTopology, len(widths)-1, len(acts))
	}

	init := cfg.Init
	if init == nil {
		init = XavierUniform
	}
	r := newRand(cfg.Seed)

	layers := make([]*Layer, 0, len(widths)-1)
	for k := 1; k < len(widths); k++ {
		var act Activation
		if acts != nil {
			act = acts[k-1]
		}
		l, err := newLayer(widths[k-1], widths[k], act)
		if err != nil {
			return nil, err
		}
		l.initialize(init, r)
		layers = append(layers, l)
	}
	return &Network{layers: layers, loss: defaultLoss(cfg.Loss)}, nil
}

// FromLayers builds a network from prebuilt layers, checking that each
// layer's input width matches the previous layer's output width. A nil
// loss means MSE.
//
// The network takes ownership of the layers; training through the
// network updates them in place.
func FromLayers(loss Loss, layers ...*Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: network needs at least one layer", ErrInvalidTopology)
	}
	for i, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("%w: layer %d is nil", ErrInvalidTopology, i)
		}
		if i > 0 && l.InputSize() != layers[i-1].OutputSize() {
			return nil, fmt.Errorf("%w: layer %d expects %d inputs but layer %d produces %d",
				ErrInvalidTopology, i, l.InputSize(), i-1, layers[i-1].OutputSize())
		}
	}
	return &Network{layers: append([]*Layer(nil), layers...), loss: defaultLoss(loss)}, nil
}

// Forward runs input through every layer in order and returns the final
// output. Each layer caches its forward state, so a backward pass can
// follow.
//
// An input of the wrong length returns ErrDimensionMismatch before any
// layer state changes. Interior widths were checked at construction and
// cannot mismatch.
func (n *Network) Forward(input []float64) ([]float64, error) {
	out := input
	for _, l := range n.layers {
		var err error
		out, err = l.Forward(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Loss scores output against target with the network's loss function,
// returning the scalar loss and the gradient that seeds
// backpropagation.
func (n *Network) Loss(output, target []float64) (float64, []float64, error) {
	return n.loss.Loss(output, target)
}

// TrainStep runs one fused training step on a single sample: forward
// pass, loss, then a backward sweep that updates every layer with
// vanilla gradient descent (param -= lr * grad).
//
// The returned loss is measured before the update, so repeated calls on
// the same sample report the value the previous step descended from.
//
// Dimension errors from the input or target are returned before any
// parameter changes.
func (n *Network) TrainStep(input, target []float64, lr float64) (float64, error) {
	output, err := n.Forward(input)
	if err != nil {
		return 0, err
	}
	lossVal, grad, err := n.loss.Loss(output, target)
	if err != nil {
		return 0, err
	}
	for k := len(n.layers) - 1; k >= 0; k-- {
		grad, err = n.layers[k].Backward(grad, lr)
		if err != nil {
			return 0, err
		}
	}
	return lossVal, nil
}

// Len returns the number of layers.
func (n *Network) Len() int { return len(n.layers) }

// Layer returns the i-th layer. Like a slice index, it panics when i is
// out of range.
func (n *Network) Layer(i int) *Layer { return n.layers[i] }

// InputSize returns the input width of the first layer.
func (n *Network) InputSize() int { return n.layers[0].InputSize() }

// OutputSize returns the output width of the last layer.
func (n *Network) OutputSize() int { return n.layers[len(n.layers)-1].OutputSize() }
