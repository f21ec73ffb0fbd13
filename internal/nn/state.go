package nn

import "fmt"

// LayerState is the exported form of one layer: widths, activation name,
// and parameters in flat row-major order.
type LayerState struct {
	Inputs     int       `json:"inputs"`
	Outputs    int       `json:"outputs"`
	Activation string    `json:"activation"`
	Weights    []float64 `json:"weights"`
	Bias       []float64 `json:"bias"`
}

// State is the exported form of a whole network.
//
// The fields are plain data so the encoding stays with the caller;
// encoding/json and encoding/gob both handle it as-is.
type State struct {
	Loss   string       `json:"loss"`
	Layers []LayerState `json:"layers"`
}

// State exports a snapshot of the network's topology and parameters.
// The snapshot holds copies, so later training does not mutate it.
func (n *Network) State() *State {
	s := &State{
		Loss:   n.loss.Name(),
		Layers: make([]LayerState, len(n.layers)),
	}
	for i, l := range n.layers {
		s.Layers[i] = LayerState{
			Inputs:     l.InputSize(),
			Outputs:    l.OutputSize(),
			Activation: l.Activation().Name(),
			Weights:    l.Weights(),
			Bias:       l.Bias(),
		}
	}
	return s
}

// NewFromState rebuilds a network from an exported snapshot.
//
// Topology problems (no layers, non-positive or mismatched widths,
// unknown activation or loss names) return ErrInvalidTopology; parameter
// slices of the wrong length return ErrDimensionMismatch.
func NewFromState(s *State) (*Network, error) {
	if len(s.Layers) == 0 {
		return nil, fmt.Errorf("%w: state has no layers", ErrInvalidTopology)
	}
	loss, err := LossByName(s.Loss)
	if err != nil {
		return nil, err
	}
	layers := make([]*Layer, len(s.Layers))
	for i, ls := range s.Layers {
		act, err := ActivationByName(ls.Activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		l, err := newLayer(ls.Inputs, ls.Outputs, act)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if err := l.SetWeights(ls.Weights); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if err := l.SetBias(ls.Bias); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers[i] = l
	}
	return FromLayers(loss, layers...)
}

// LoadState replaces the parameters of an existing network with those in
// s. The snapshot must describe the same topology (layer count and
// widths); activation and loss names in s are ignored in favor of the
// network's own.
//
// The whole snapshot is validated before anything is written, so a
// failed load leaves the network unchanged.
func (n *Network) LoadState(s *State) error {
	if len(s.Layers) != len(n.layers) {
		return fmt.Errorf("%w: state has %d layers, network has %d", ErrInvalidTopology, len(s.Layers), len(n.layers))
	}
	for i, ls := range s.Layers {
		l := n.layers[i]
		if ls.Inputs != l.InputSize() || ls.Outputs != l.OutputSize() {
			return fmt.Errorf("%w: layer %d is %dx%d in state but %dx%d in network",
				ErrInvalidTopology, i, ls.Outputs, ls.Inputs, l.OutputSize(), l.InputSize())
		}
		if len(ls.Weights) != l.InputSize()*l.OutputSize() {
			return fmt.Errorf("%w: layer %d weight matrix needs %d values, got %d",
				ErrDimensionMismatch, i, l.InputSize()*l.OutputSize(), len(ls.Weights))
		}
		if len(ls.Bias) != l.OutputSize() {
			return fmt.Errorf("%w: layer %d bias vector needs %d values, got %d",
				ErrDimensionMismatch, i, l.OutputSize(), len(ls.Bias))
		}
	}
	for i, ls := range s.Layers {
		// Validated above, cannot fail.
		_ = n.layers[i].SetWeights(ls.Weights)
		_ = n.layers[i].SetBias(ls.Bias)
	}
	return nil
}
