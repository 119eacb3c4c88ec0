package neuralnet

// Datum is a simple wrapper used to send training samples to the Network
type Datum struct {
	// Inputs is the input of the network. It must have the same size as that of the
	// network's inputs.
	Inputs []float64

	// Outputs is the expected output of the network, given the input.
	Outputs []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the
// Network, allowing it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() && len(d.Outputs) == net.OutputSize()
}

// setInputs resets every Node and then gives the input Nodes their values. The number of values
// must already have been checked.
func (net *Network) setInputs(inputs []float64) {
	net.reset()

	for i, id := range net.inputLayer().valueNodes() {
		net.nodesByID[id].value = inputs[i]
	}
}

func (net *Network) setTargets(targets []float64) {
	for i, id := range net.outputLayer().valueNodes() {
		net.nodesByID[id].target = targets[i]
	}
}

func (net *Network) checkInputs(inputs []float64) error {
	if len(inputs) != net.InputSize() {
		return SizeMismatchError{net.InputSize(), len(inputs), "inputs"}
	}

	return nil
}

// Evaluate returns the output-layer activations for the given inputs, in order. The weights are
// not changed.
//
// If the number of inputs does not equal InputSize(), Evaluate returns a SizeMismatchError and
// the Network is left untouched.
func (net *Network) Evaluate(inputs []float64) ([]float64, error) {
	if err := net.checkInputs(inputs); err != nil {
		return nil, err
	}

	net.setInputs(inputs)
	return net.outputLayer().Activations(), nil
}

// Train runs a single example through the Network, adding exactly one gradient contribution to
// every Axon:
//	errSum += activation(source) * error(destination)
// The weights are not changed; see Weights, Derivatives, and SetWeights for applying the
// accumulated gradient at the end of a batch.
//
// If either the inputs or the targets have the wrong length, Train returns a SizeMismatchError
// and the Network is left untouched.
func (net *Network) Train(inputs, targets []float64) error {
	if err := net.checkInputs(inputs); err != nil {
		return err
	} else if len(targets) != net.OutputSize() {
		return SizeMismatchError{net.OutputSize(), len(targets), "targets"}
	}

	net.setInputs(inputs)
	net.setTargets(targets)

	net.forEachAxon(func(a *Axon) {
		a.errSum += net.nodesByID[a.from].Activation() * net.nodesByID[a.to].Error()
	})

	return nil
}

// TrainDatum calls Train with the inputs and outputs of the Datum.
func (net *Network) TrainDatum(d Datum) error {
	return net.Train(d.Inputs, d.Outputs)
}
