package costfuncs

import (
	"gonum.org/v1/gonum/floats"
)

type mse int8

// MSE returns the mean squared error cost function, which implements neuralnet.CostFunction.
func MSE() mse {
	return mse(0)
}

func (m mse) TypeString() string {
	return "mse"
}

func (m mse) Cost(outs, targets []float64) float64 {
	diffs := make([]float64, len(outs))
	floats.SubTo(diffs, targets, outs)
	floats.Mul(diffs, diffs)

	return 0.5 * floats.Sum(diffs) / float64(len(outs))
}
