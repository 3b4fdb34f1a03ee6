package optim

import "github.com/born-ml/gtn/internal/graph"

// SGD implements Stochastic Gradient Descent with optional momentum
// over a fixed set of parameter graphs.
//
// Update rule without momentum:
//
//	weight -= lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	weight -= lr * velocity
type SGD struct {
	params     []graph.Graph
	lr         float64
	momentum   float64
	velocities map[graph.Graph][]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0, range [0, 1))
}

// NewSGD creates an SGD optimizer over params.
func NewSGD(params []graph.Graph, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[graph.Graph][]float64),
	}
}

// Step applies one gradient update to every parameter. Parameters with
// no accumulated gradient (they didn't participate in the forward
// computation) are left unchanged.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := gradWeights(param)
		if grad == nil {
			continue
		}
		if s.momentum == 0 {
			s.updateParameter(param, grad)
		} else {
			s.updateParameterWithMomentum(param, grad)
		}
	}
}

func (s *SGD) updateParameter(param graph.Graph, grad []float64) {
	for a, g := range grad {
		param.SetWeight(a, param.Weight(a)-s.lr*g)
	}
}

func (s *SGD) updateParameterWithMomentum(param graph.Graph, grad []float64) {
	velocity, ok := s.velocities[param]
	if !ok {
		velocity = make([]float64, len(grad))
		s.velocities[param] = velocity
	}
	for a, g := range grad {
		velocity[a] = s.momentum*velocity[a] + g
		param.SetWeight(a, param.Weight(a)-s.lr*velocity[a])
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() { zeroGradAll(s.params) }

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 { return s.lr }

// SetLR updates the learning rate, for learning rate scheduling.
func (s *SGD) SetLR(lr float64) { s.lr = lr }
