package nn

import (
	"math"
	"math/rand"
	"time"
)

// Initializer draws one weight for a connection in a layer with the
// given fan-in and fan-out. Implementations take their randomness from r
// so that a seeded network construction is reproducible.
//
// Biases are not initialized through this hook; they always start at
// zero.
type Initializer func(r *rand.Rand, fanIn, fanOut int) float64

// newRand returns a deterministic source for a non-zero seed and a
// time-seeded one otherwise.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // math/rand is fine for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}

// XavierUniform is Xavier/Glorot initialization: values drawn from a
// uniform distribution
//
//	U(-sqrt(6/(fanIn + fanOut)), sqrt(6/(fanIn + fanOut)))
//
// This keeps the variance of activations roughly constant across layers
// and is the default for new networks.
func XavierUniform(r *rand.Rand, fanIn, fanOut int) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return (r.Float64()*2.0 - 1.0) * bound
}

// HeNormal is He initialization: values drawn from N(0, sqrt(2/fanIn)).
//
// Suited to ReLU-family layers, where half the units are inactive and
// Xavier's variance estimate comes out too small.
func HeNormal(r *rand.Rand, fanIn, _ int) float64 {
	return r.NormFloat64() * math.Sqrt(2.0/float64(fanIn))
}

// Uniform returns an initializer drawing values from U(lo, hi).
func Uniform(lo, hi float64) Initializer {
	return func(r *rand.Rand, _, _ int) float64 {
		return lo + r.Float64()*(hi-lo)
	}
}

// Zeros initializes every weight to zero. Mostly useful in tests, where
// a deterministic starting point matters more than symmetry breaking.
func Zeros(_ *rand.Rand, _, _ int) float64 { return 0 }
