package neuralnet

// Activation is the function applied to the weighted sum of a Node's inputs to produce its
// activation, bound together with its derivative. Backpropagation never assumes a particular
// shape of function; it only ever asks the Activation for its own derivative.
type Activation interface {
	// TypeString returns the name under which the Activation is registered, for example
	// "logistic".
	TypeString() string

	// Value applies the function to the weighted input sum. Value must not panic or return NaN
	// for very large or very small inputs; it should saturate to its limiting value instead.
	Value(in float64) float64

	// Deriv returns the derivative of the function, expressed in terms of its output. For the
	// logistic function this is out * (1 - out).
	Deriv(out float64) float64
}

// Penalty regularizes the derivatives of the weights. It is applied to every weight except those
// of Axons leaving a bias Node.
type Penalty interface {
	TypeString() string

	// arguments: the batch-averaged derivative of the weight, the current weight.
	// returns the regularized derivative
	Penalize(deriv, weight float64) float64
}

// Initializer sets the starting weights of a Network.
type Initializer interface {
	// Set fills ws with initial weights. ws is given in canonical order.
	Set(ws []float64)
}

// CostFunction is a measure of how far the outputs of the Network are from their targets. It is
// used for reporting progress and for detecting divergence; it does not affect the gradients.
type CostFunction interface {
	TypeString() string

	// arguments: actual values, target values. Both will always have the same length.
	Cost(outs, targets []float64) float64
}

// Optimizer applies the derivatives from a batch to the weights.
type Optimizer interface {
	// arguments: weights (updated in place), derivatives in the same order, learning rate
	//
	// the two slices will always have the same length
	Run(ws, ds []float64, learningRate float64)
}
