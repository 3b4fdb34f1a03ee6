package optim

import (
	"math"

	"github.com/born-ml/gtn/internal/graph"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer over
// a fixed set of parameter graphs.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient^2
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	weight -= lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014).
type Adam struct {
	params []graph.Graph
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int
	m      map[graph.Graph][]float64
	v      map[graph.Graph][]float64
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for the running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates an Adam optimizer over params, filling in default
// hyperparameters for any left zero-valued in config.
func NewAdam(params []graph.Graph, config AdamConfig) *Adam {
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
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[graph.Graph][]float64),
		v:      make(map[graph.Graph][]float64),
	}
}

// Step applies one Adam update to every parameter with an accumulated
// gradient; parameters that didn't participate in the forward pass are
// left unchanged.
func (a *Adam) Step() {
	a.t++
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, param := range a.params {
		grad := gradWeights(param)
		if grad == nil {
			continue
		}

		m, ok := a.m[param]
		if !ok {
			m = make([]float64, len(grad))
			a.m[param] = m
		}
		v, ok := a.v[param]
		if !ok {
			v = make([]float64, len(grad))
			a.v[param] = v
		}

		for i, g := range grad {
			m[i] = a.beta1*m[i] + (1-a.beta1)*g
			v[i] = a.beta2*v[i] + (1-a.beta2)*g*g
			mHat := m[i] / biasCorrection1
			vHat := v[i] / biasCorrection2
			param.SetWeight(i, param.Weight(i)-a.lr*mHat/(math.Sqrt(vHat)+a.eps))
		}
	}
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() { zeroGradAll(a.params) }

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 { return a.lr }

// SetLR updates the learning rate, for learning rate scheduling.
func (a *Adam) SetLR(lr float64) { a.lr = lr }

// GetTimestep returns the current timestep, for monitoring.
func (a *Adam) GetTimestep() int { return a.t }
