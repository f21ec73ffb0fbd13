package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func TestActivationValues(t *testing.T) {
	tests := []struct {
		name string
		act  Activation
		in   float64
		want float64
	}{
		{"linear passes through", Linear{}, -2.5, -2.5},
		{"sigmoid at zero", Sigmoid{}, 0, 0.5},
		{"tanh at zero", Tanh{}, 0, 0},
		{"relu positive", ReLU{}, 1.5, 1.5},
		{"relu negative", ReLU{}, -1.5, 0},
		{"relu at zero", ReLU{}, 0, 0},
		{"leaky relu positive", LeakyReLU{}, 2, 2},
		{"leaky relu negative", LeakyReLU{}, -2, -0.2},
		{"leaky relu custom slope", LeakyReLU{Alpha: 0.01}, -2, -0.02},
		{"softplus at zero", Softplus{}, 0, math.Log(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.act.Activate(tt.in), 1e-12)
		})
	}
}

// TestActivationDerivativeFromOutput checks the contract that
// Derivative(f(x)) equals f'(x), comparing against a central-difference
// estimate of each activation.
func TestActivationDerivativeFromOutput(t *testing.T) {
	acts := []Activation{
		Linear{},
		Sigmoid{},
		Tanh{},
		ReLU{},
		LeakyReLU{},
		LeakyReLU{Alpha: 0.01},
		Softplus{},
	}
	points := []float64{-3, -1.2, -0.4, 0.7, 1.9, 4}

	for _, act := range acts {
		t.Run(act.Name(), func(t *testing.T) {
			for _, x := range points {
				y := act.Activate(x)
				got := act.Derivative(y)
				want := fd.Derivative(act.Activate, x, &fd.Settings{
					Formula: fd.Central,
				})
				assert.InDelta(t, want, got, 1e-6, "derivative at x=%v", x)
			}
		})
	}
}

func TestSigmoidSaturation(t *testing.T) {
	s := Sigmoid{}

	assert.Equal(t, 1.0, s.Activate(1000))
	assert.Equal(t, 0.0, s.Activate(-1000))

	// Derivatives at the asymptotes collapse to zero, not NaN.
	assert.Equal(t, 0.0, s.Derivative(s.Activate(1000)))
	assert.Equal(t, 0.0, s.Derivative(s.Activate(-1000)))
}

func TestTanhSaturation(t *testing.T) {
	a := Tanh{}

	assert.Equal(t, 1.0, a.Activate(1000))
	assert.Equal(t, -1.0, a.Activate(-1000))
	assert.Equal(t, 0.0, a.Derivative(1))
	assert.Equal(t, 0.0, a.Derivative(-1))
}

func TestSoftplusLargeInputs(t *testing.T) {
	a := Softplus{}

	// Naive ln(1+exp(x)) overflows near x=710; the rearranged form must
	// stay finite and close to the identity for large x.
	y := a.Activate(1000)
	assert.False(t, math.IsInf(y, 0))
	assert.InDelta(t, 1000, y, 1e-9)

	assert.InDelta(t, 0, a.Activate(-1000), 1e-12)
}

func TestActivationByName(t *testing.T) {
	for _, act := range []Activation{Linear{}, Sigmoid{}, Tanh{}, ReLU{}, LeakyReLU{}, Softplus{}} {
		got, err := ActivationByName(act.Name())
		require.NoError(t, err)
		assert.Equal(t, act.Name(), got.Name())
	}

	// Empty means linear so sparse state snapshots still load.
	got, err := ActivationByName("")
	require.NoError(t, err)
	assert.Equal(t, "linear", got.Name())

	_, err = ActivationByName("softmax")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTopology)
}
