package optim

import (
	"math"

	"github.com/strata-ml/strata/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) rule.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)   // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	rule := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
type Adam struct {
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	states map[*nn.Layer]*adamState
}

// adamState holds one layer's moment buffers and its update count for
// bias correction.
type adamState struct {
	t  int
	mW []float64
	vW []float64
	mB []float64
	vB []float64
}

// AdamConfig holds configuration for the Adam rule.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for the running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam rule with any unset hyperparameter filled
// from the defaults: LR 0.001, Betas [0.9, 0.999], Eps 1e-8.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		states: make(map[*nn.Layer]*adamState),
	}
}

// Apply performs one Adam update on the layer.
//
// Moment buffers and the bias-correction timestep are tracked per
// layer, created lazily on the first update.
func (a *Adam) Apply(l *nn.Layer, grads *nn.Grads) {
	s, ok := a.states[l]
	if !ok {
		s = &adamState{
			mW: make([]float64, len(grads.Weights)),
			vW: make([]float64, len(grads.Weights)),
			mB: make([]float64, len(grads.Bias)),
			vB: make([]float64, len(grads.Bias)),
		}
		a.states[l] = s
	}
	s.t++

	bc1 := 1.0 - math.Pow(a.beta1, float64(s.t))
	bc2 := 1.0 - math.Pow(a.beta2, float64(s.t))

	stepW := make([]float64, len(grads.Weights))
	stepB := make([]float64, len(grads.Bias))
	a.moments(s.mW, s.vW, grads.Weights, stepW, bc1, bc2)
	a.moments(s.mB, s.vB, grads.Bias, stepB, bc1, bc2)

	// The bias-corrected step goes through the same descent seam as
	// every other rule: param -= lr * step.
	l.ApplyGrads(&nn.Grads{Weights: stepW, Bias: stepB}, a.lr)
}

// moments advances the first and second moment estimates for one
// parameter slice and writes the bias-corrected step.
func (a *Adam) moments(m, v, grad, step []float64, bc1, bc2 float64) {
	for i, g := range grad {
		m[i] = a.beta1*m[i] + (1.0-a.beta1)*g
		v[i] = a.beta2*v[i] + (1.0-a.beta2)*g*g
		mHat := m[i] / bc1
		vHat := v[i] / bc2
		step[i] = mHat / (math.Sqrt(vHat) + a.eps)
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}
