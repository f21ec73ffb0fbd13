package nn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	n, err := New([]int{3, 5, 2}, []Activation{Tanh{}, Sigmoid{}}, Config{Seed: 21, Loss: BinaryCrossEntropy{}})
	require.NoError(t, err)

	input := []float64{0.4, -0.9, 1.3}
	want, err := n.Forward(input)
	require.NoError(t, err)

	restored, err := NewFromState(n.State())
	require.NoError(t, err)

	assert.Equal(t, n.Len(), restored.Len())
	assert.Equal(t, "tanh", restored.Layer(0).Activation().Name())
	assert.Equal(t, "sigmoid", restored.Layer(1).Activation().Name())

	got, err := restored.Forward(input)
	require.NoError(t, err)
	assert.Equal(t, want, got, "restored network must predict identically")

	// The restored loss function matters for training, not just the
	// parameters.
	out := []float64{0.7, 0.2}
	target := []float64{1, 0}
	wantLoss, _, err := n.Loss(out, target)
	require.NoError(t, err)
	gotLoss, _, err := restored.Loss(out, target)
	require.NoError(t, err)
	assert.Equal(t, wantLoss, gotLoss)
}

func TestStateSnapshotIsDetached(t *testing.T) {
	n, err := New([]int{2, 2}, []Activation{Sigmoid{}}, Config{Seed: 4})
	require.NoError(t, err)

	snap := n.State()
	before := append([]float64(nil), snap.Layers[0].Weights...)

	_, err = n.TrainStep([]float64{1, -1}, []float64{0, 1}, 0.5)
	require.NoError(t, err)

	assert.Equal(t, before, snap.Layers[0].Weights, "training must not reach into an exported snapshot")
	assert.NotEqual(t, before, n.Layer(0).Weights(), "training must move the live parameters")
}

func TestStateJSONRoundTrip(t *testing.T) {
	n, err := New([]int{2, 3, 1}, []Activation{Tanh{}, Sigmoid{}}, Config{Seed: 8})
	require.NoError(t, err)

	input := []float64{0.25, -0.75}
	want, err := n.Forward(input)
	require.NoError(t, err)

	raw, err := json.Marshal(n.State())
	require.NoError(t, err)

	var decoded State
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored, err := NewFromState(&decoded)
	require.NoError(t, err)
	got, err := restored.Forward(input)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewFromStateValidation(t *testing.T) {
	base, err := New([]int{2, 2, 1}, []Activation{Sigmoid{}, Sigmoid{}}, Config{Seed: 6})
	require.NoError(t, err)

	t.Run("no layers", func(t *testing.T) {
		_, err := NewFromState(&State{Loss: "mse"})
		assert.ErrorIs(t, err, ErrInvalidTopology)
	})

	t.Run("unknown loss", func(t *testing.T) {
		s := base.State()
		s.Loss = "hinge"
		_, err := NewFromState(s)
		assert.ErrorIs(t, err, ErrInvalidTopology)
	})

	t.Run("unknown activation", func(t *testing.T) {
		s := base.State()
		s.Layers[1].Activation = "gelu"
		_, err := NewFromState(s)
		assert.ErrorIs(t, err, ErrInvalidTopology)
	})

	t.Run("bad widths", func(t *testing.T) {
		s := base.State()
		s.Layers[0].Outputs = 0
		_, err := NewFromState(s)
		assert.ErrorIs(t, err, ErrInvalidTopology)
	})

	t.Run("weight length mismatch", func(t *testing.T) {
		s := base.State()
		s.Layers[0].Weights = s.Layers[0].Weights[:3]
		_, err := NewFromState(s)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("adjacent width mismatch", func(t *testing.T) {
		s := base.State()
		s.Layers[1].Inputs = 3
		s.Layers[1].Weights = make([]float64, 3)
		_, err := NewFromState(s)
		assert.ErrorIs(t, err, ErrInvalidTopology)
	})
}

func TestLoadState(t *testing.T) {
	src, err := New([]int{2, 3, 1}, []Activation{Tanh{}, Sigmoid{}}, Config{Seed: 100})
	require.NoError(t, err)
	dst, err := New([]int{2, 3, 1}, []Activation{Tanh{}, Sigmoid{}}, Config{Seed: 200})
	require.NoError(t, err)

	require.NotEqual(t, src.Layer(0).Weights(), dst.Layer(0).Weights())

	require.NoError(t, dst.LoadState(src.State()))
	for i := 0; i < src.Len(); i++ {
		assert.Equal(t, src.Layer(i).Weights(), dst.Layer(i).Weights(), "layer %d weights", i)
		assert.Equal(t, src.Layer(i).Bias(), dst.Layer(i).Bias(), "layer %d bias", i)
	}
}

func TestLoadStateRejectsWrongTopology(t *testing.T) {
	n, err := New([]int{2, 3, 1}, nil, Config{Seed: 1})
	require.NoError(t, err)
	other, err := New([]int{2, 4, 1}, nil, Config{Seed: 1})
	require.NoError(t, err)

	err = n.LoadState(other.State())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTopology)

	shallow, err := New([]int{2, 1}, nil, Config{Seed: 1})
	require.NoError(t, err)
	err = n.LoadState(shallow.State())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTopology)
}

func TestLoadStateAtomic(t *testing.T) {
	n, err := New([]int{2, 3, 1}, nil, Config{Seed: 31})
	require.NoError(t, err)

	// Same topology, but the last layer's parameters are truncated, so
	// validation fails after the first layer already matched.
	s := n.State()
	for i := range s.Layers[0].Weights {
		s.Layers[0].Weights[i] = 42
	}
	s.Layers[1].Bias = s.Layers[1].Bias[:0]

	before := n.Layer(0).Weights()
	err = n.LoadState(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, before, n.Layer(0).Weights(), "failed load must not partially apply")
}
