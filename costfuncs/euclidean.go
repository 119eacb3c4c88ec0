package costfuncs

import (
	"gonum.org/v1/gonum/floats"
)

type euclidean int8

// Euclidean returns the cost function given by the straight-line distance between the outputs and
// their targets: sqrt(Σ (target - output)^2). It is the default measure of error for reporting
// and for detecting divergence during training.
func Euclidean() euclidean {
	return euclidean(0)
}

func (e euclidean) TypeString() string {
	return "euclidean"
}

func (e euclidean) Cost(outs, targets []float64) float64 {
	return floats.Distance(targets, outs, 2)
}
