package optimizers

import (
	nn "github.com/codebox/neural-net"
	"gonum.org/v1/gonum/floats"
)

type gradientdescent int8

var _ nn.Optimizer = GradientDescent()

// GradientDescent returns the Optimizer for full-batch gradient descent. Because the derivatives
// given by *neuralnet.Network.Derivatives already point toward lower error, each weight is
// updated by:
//	w = w + learningRate * d
func GradientDescent() gradientdescent {
	return gradientdescent(0)
}

func (g gradientdescent) TypeString() string {
	return "gradient-descent"
}

// Run is the implementation of neuralnet.Optimizer
func (g gradientdescent) Run(ws, ds []float64, learningRate float64) {
	floats.AddScaled(ws, learningRate, ds)
}
