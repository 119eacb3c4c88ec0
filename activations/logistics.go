package activations

import (
	"math"
)

// ****************************************
// Logistic
// ****************************************

type logistic int8

// Logistic returns the logistic (or sigmoid) function, 1 / (1 + e^-x), which implements
// neuralnet.Activation. It is the default Activation.
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

func (t logistic) Value(in float64) float64 {
	e := math.Exp(-in)
	if math.IsInf(e, 1) {
		// e^-x overflowed; the function has already saturated
		return 0
	}

	return 1 / (1 + e)
}

func (t logistic) Deriv(out float64) float64 {
	return out * (1 - out)
}

// ****************************************
// Tanh
// ****************************************

type tanh int8

// Tanh returns an Activation that applies the tanh() function.
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Value(in float64) float64 {
	return math.Tanh(in)
}

func (t tanh) Deriv(out float64) float64 {
	// it's cheaper to multiply it by itself than to use math.Pow()
	return 1 - (out * out)
}

// ****************************************
// Softsign
// ****************************************

type softsign int8

// Softsign (not to be confused with softplus) returns the Softsign activation function. It is
// similar in shape to Tanh and Logistic.
func Softsign() softsign {
	return softsign(0)
}

func (t softsign) TypeString() string {
	return "softsign"
}

func (t softsign) Value(in float64) float64 {
	return in / (math.Abs(in) + 1)
}

func (t softsign) Deriv(out float64) float64 {
	// 1 / (|in| + 1)^2, rewritten in terms of the output
	d := 1 - math.Abs(out)
	return d * d
}
