// Copyright 2025 Strata ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/strata-ml/strata/internal/nn"
)

// Errors

// Sentinel errors returned (wrapped) by every operation in this package.
// Match them with errors.Is.
var (
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrInvalidState      = nn.ErrInvalidState
	ErrInvalidTopology   = nn.ErrInvalidTopology
)

// Layers

// Layer represents a fully connected (dense) layer.
type Layer = nn.Layer

// Grads holds the parameter gradients produced by one backward pass.
type Grads = nn.Grads

// NewLayer creates a fully connected layer with Xavier-initialized
// weights and zero biases. A nil activation means identity.
//
// Example:
//
//	layer, err := nn.NewLayer(784, 128, nn.Sigmoid{})
func NewLayer(inputs, outputs int, act Activation) (*Layer, error) {
	return nn.NewLayer(inputs, outputs, act)
}

// Networks

// Network represents a sequence of fully connected layers trained
// against a single loss function.
type Network = nn.Network

// Config controls network construction.
type Config = nn.Config

// New creates a network from layer widths, one activation per weight
// layer.
//
// Example:
//
//	net, err := nn.New(
//	    []int{2, 4, 1},
//	    []nn.Activation{nn.Tanh{}, nn.Sigmoid{}},
//	    nn.Config{Seed: 42},
//	)
func New(widths []int, acts []Activation, cfg Config) (*Network, error) {
	return nn.New(widths, acts, cfg)
}

// FromLayers assembles a network from prebuilt layers. Adjacent layers
// must agree on their shared width. A nil loss means MSE.
//
// Example:
//
//	hidden, _ := nn.NewLayer(2, 4, nn.Tanh{})
//	out, _ := nn.NewLayer(4, 1, nn.Sigmoid{})
//	net, err := nn.FromLayers(nil, hidden, out)
func FromLayers(loss Loss, layers ...*Layer) (*Network, error) {
	return nn.FromLayers(loss, layers...)
}

// Activations

// Activation is an element-wise activation function. Derivative takes
// the activation output, not the pre-activation input.
type Activation = nn.Activation

// Linear is the identity activation.
type Linear = nn.Linear

// Sigmoid is the logistic activation, 1/(1+exp(-x)).
type Sigmoid = nn.Sigmoid

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// ReLU is the rectified linear unit, max(0, x).
type ReLU = nn.ReLU

// LeakyReLU is ReLU with a small slope for negative inputs.
type LeakyReLU = nn.LeakyReLU

// Softplus is the smooth ReLU approximation, log(1+exp(x)).
type Softplus = nn.Softplus

// ActivationByName resolves an activation from its State name.
//
// Example:
//
//	act, err := nn.ActivationByName("tanh")
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Loss Functions

// Loss scores an output against a target and reports the gradient of
// the score with respect to the output.
type Loss = nn.Loss

// MSE is the mean squared error loss for regression.
type MSE = nn.MSE

// BinaryCrossEntropy is the cross-entropy loss for binary targets.
type BinaryCrossEntropy = nn.BinaryCrossEntropy

// LossByName resolves a loss function from its State name.
//
// Example:
//
//	loss, err := nn.LossByName("bce")
func LossByName(name string) (Loss, error) {
	return nn.LossByName(name)
}

// Initialization functions

// Initializer draws one weight for a connection in a fanIn x fanOut
// layer.
type Initializer = nn.Initializer

// XavierUniform draws from U(-b, b) with b = sqrt(6/(fanIn+fanOut)).
// It is the default weight initializer.
func XavierUniform(r *rand.Rand, fanIn, fanOut int) float64 {
	return nn.XavierUniform(r, fanIn, fanOut)
}

// HeNormal draws from N(0, 2/fanIn), suited to ReLU-family layers.
func HeNormal(r *rand.Rand, fanIn, fanOut int) float64 {
	return nn.HeNormal(r, fanIn, fanOut)
}

// Uniform returns an initializer drawing from U(lo, hi).
//
// Example:
//
//	net, err := nn.New(widths, acts, nn.Config{Init: nn.Uniform(-0.5, 0.5)})
func Uniform(lo, hi float64) Initializer {
	return nn.Uniform(lo, hi)
}

// Zeros initializes every weight to zero.
func Zeros(r *rand.Rand, fanIn, fanOut int) float64 {
	return nn.Zeros(r, fanIn, fanOut)
}

// Persistence

// State is a serializable snapshot of a network.
type State = nn.State

// LayerState is a serializable snapshot of a single layer.
type LayerState = nn.LayerState

// NewFromState rebuilds a network from a snapshot.
//
// Example:
//
//	var state nn.State
//	if err := json.Unmarshal(data, &state); err != nil {
//	    log.Fatal(err)
//	}
//	net, err := nn.NewFromState(&state)
func NewFromState(s *State) (*Network, error) {
	return nn.NewFromState(s)
}
