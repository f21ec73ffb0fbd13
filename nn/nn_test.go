// Copyright 2025 Strata ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-ml/strata/nn"
	"github.com/strata-ml/strata/optim"
)

// TestPublicSurfaceTrainsAndRestores drives the whole exported API in
// one pass: assemble layers, train through a rule, snapshot to JSON,
// and restore.
func TestPublicSurfaceTrainsAndRestores(t *testing.T) {
	l1, err := nn.NewLayer(1, 2, nn.Tanh{})
	require.NoError(t, err)
	require.NoError(t, l1.SetWeights([]float64{0.5, -0.3}))
	require.NoError(t, l1.SetBias([]float64{0, 0}))

	l2, err := nn.NewLayer(2, 1, nn.Linear{})
	require.NoError(t, err)
	require.NoError(t, l2.SetWeights([]float64{0.8, 0.4}))
	require.NoError(t, l2.SetBias([]float64{0.1}))

	net, err := nn.FromLayers(nn.MSE{}, l1, l2)
	require.NoError(t, err)

	trainer := optim.NewTrainer(net, optim.NewSGD(optim.SGDConfig{LR: 0.01}))
	history, err := trainer.Fit([][]float64{{1}}, [][]float64{{1.5}}, 200)
	require.NoError(t, err)
	require.Len(t, history, 200)
	assert.Greater(t, history[0], history[len(history)-1])
	assert.Less(t, history[len(history)-1], 0.05)

	input := []float64{1}
	want, err := net.Forward(input)
	require.NoError(t, err)

	raw, err := json.Marshal(net.State())
	require.NoError(t, err)
	var state nn.State
	require.NoError(t, json.Unmarshal(raw, &state))

	restored, err := nn.NewFromState(&state)
	require.NoError(t, err)
	got, err := restored.Forward(input)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPublicSurfaceInitializers(t *testing.T) {
	a, err := nn.New([]int{3, 4, 1}, nil, nn.Config{Seed: 7, Init: nn.HeNormal})
	require.NoError(t, err)
	b, err := nn.New([]int{3, 4, 1}, nil, nn.Config{Seed: 7, Init: nn.HeNormal})
	require.NoError(t, err)
	assert.Equal(t, a.Layer(0).Weights(), b.Layer(0).Weights())

	c, err := nn.New([]int{2, 2}, nil, nn.Config{Init: nn.Uniform(-0.5, 0.5), Seed: 3})
	require.NoError(t, err)
	for _, w := range c.Layer(0).Weights() {
		assert.GreaterOrEqual(t, w, -0.5)
		assert.Less(t, w, 0.5)
	}

	z, err := nn.New([]int{2, 2}, nil, nn.Config{Init: nn.Zeros})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Layer(0).Weights())
}

func TestPublicSurfaceLookups(t *testing.T) {
	act, err := nn.ActivationByName("leaky_relu")
	require.NoError(t, err)
	assert.Equal(t, "leaky_relu", act.Name())

	loss, err := nn.LossByName("bce")
	require.NoError(t, err)
	assert.Equal(t, "bce", loss.Name())
}

func TestPublicSurfaceErrors(t *testing.T) {
	_, err := nn.New([]int{1}, nil, nn.Config{})
	assert.ErrorIs(t, err, nn.ErrInvalidTopology)

	net, err := nn.New([]int{2, 1}, nil, nn.Config{Seed: 1})
	require.NoError(t, err)
	_, err = net.Forward([]float64{1, 2, 3})
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)

	l, err := nn.NewLayer(2, 1, nn.Sigmoid{})
	require.NoError(t, err)
	_, err = l.Backward([]float64{1}, 0.1)
	assert.ErrorIs(t, err, nn.ErrInvalidState)
}
