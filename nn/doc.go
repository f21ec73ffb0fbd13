// Copyright 2025 Strata ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides dense feedforward networks and their building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: fully connected Layer with cached activations for backprop
//   - Networks: sequential Network built from widths or prebuilt layers
//   - Activations: Linear, Sigmoid, Tanh, ReLU, LeakyReLU, Softplus
//   - Loss functions: MSE, BinaryCrossEntropy
//   - Initialization: XavierUniform, HeNormal, Uniform, Zeros
//   - Persistence: State snapshots, JSON friendly
//
// # Basic Usage
//
//	import "github.com/strata-ml/strata/nn"
//
//	func main() {
//	    // Build a 2-4-1 MLP
//	    net, err := nn.New(
//	        []int{2, 4, 1},
//	        []nn.Activation{nn.Tanh{}, nn.Sigmoid{}},
//	        nn.Config{Seed: 42},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // One gradient descent step
//	    loss, err := net.TrainStep([]float64{0, 1}, []float64{1}, 0.5)
//
//	    // Inference
//	    out, err := net.Forward([]float64{0, 1})
//	}
//
// # Layers
//
// Layer: fully connected layer computing act(W*x + b)
//
//	layer, err := nn.NewLayer(inputs, outputs, nn.Sigmoid{})
//
// A layer caches its last input and post-activation output on Forward;
// Backward consumes the cache, so the two must alternate.
//
// # Activations
//
// Activations are stateless values implementing the Activation interface:
//
//	nn.Linear{}
//	nn.Sigmoid{}
//	nn.Tanh{}
//	nn.ReLU{}
//	nn.LeakyReLU{Alpha: 0.1}
//	nn.Softplus{}
//
// Derivative is evaluated from the cached activation output, not the
// pre-activation input.
//
// # Loss Functions
//
// MSE: mean squared error for regression (the default)
//
//	loss, grad, err := nn.MSE{}.Loss(output, target)
//
// BinaryCrossEntropy: for binary targets, with clamped log arguments
//
//	loss, grad, err := nn.BinaryCrossEntropy{}.Loss(output, target)
//
// # Errors
//
// All failures wrap one of three sentinels, matched with errors.Is:
//
//	nn.ErrDimensionMismatch  // slice length disagrees with layer shape
//	nn.ErrInvalidState       // Backward without a cached Forward
//	nn.ErrInvalidTopology    // layer sizes that cannot be chained
//
// # Persistence
//
// State captures everything needed to rebuild a network:
//
//	state := net.State()
//	data, _ := json.Marshal(state)
//
//	var restored nn.State
//	_ = json.Unmarshal(data, &restored)
//	net2, err := nn.NewFromState(&restored)
package nn
