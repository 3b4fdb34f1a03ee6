// Package optim implements optimization algorithms for training the
// arc weights of a graph.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Design inspired by PyTorch's torch.optim, adapted to the arc-weight
// gradients produced by graph.Backward instead of tensor gradients.
//
// Example usage:
//
//	optimizer := optim.NewSGD([]graph.Graph{weights}, optim.SGDConfig{LR: 0.1})
//
//	for step := range steps {
//	    loss := computeLoss(weights)
//	    graph.Backward(loss)
//
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import "github.com/born-ml/gtn/internal/graph"

// Optimizer is the base interface for all arc-weight optimization
// algorithms. Optimizers update the arc weights of the graphs they were
// constructed with, based on gradients accumulated by graph.Backward.
type Optimizer interface {
	// Step applies one gradient update to every parameter graph.
	Step()

	// ZeroGrad clears every parameter graph's gradient accumulator.
	//
	// This should be called after each Step to prevent gradient
	// accumulation across training iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration shared by all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// zeroGradAll clears the gradient accumulator on every parameter.
func zeroGradAll(params []graph.Graph) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// gradWeights reads the gradient graph's arc weights for param, or nil
// if nothing has been accumulated for it yet.
func gradWeights(param graph.Graph) []float64 {
	g, ok := param.Grad()
	if !ok {
		return nil
	}
	w := make([]float64, g.NumArcs())
	for a := range w {
		w[a] = g.Weight(a)
	}
	return w
}
