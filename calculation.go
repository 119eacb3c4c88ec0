package neuralnet

// biasValue is the activation of every bias Node
const biasValue float64 = 1

// Activation returns the forward value of the Node for the current example.
//
// Bias Nodes always return 1, and input Nodes return the value they were given. Hidden and output
// Nodes apply the Network's Activation to the weighted sum of their inputs, recursively
// evaluating the Nodes they receive input from. The result is cached until the next Reset.
func (n *Node) Activation() float64 {
	switch n.kind {
	case Bias:
		return biasValue
	case Input:
		return n.value
	}

	if n.haveActivation {
		return n.activation
	}

	net := n.host

	var sum float64
	for _, id := range n.inputs {
		a := net.axons[id]
		sum += a.weight * net.nodesByID[a.from].Activation()
	}

	n.activation = net.act.Value(sum)
	n.haveActivation = true
	return n.activation
}

// Error returns the backward value of the Node for the current example.
//
// For output Nodes this is the target minus the activation. For all other Nodes it is the sum,
// over outgoing Axons, of the destination's error times the weight, scaled by the derivative of
// the Activation at this Node. The result is cached until the next Reset.
//
// Error requires the target values of the output Nodes to have been set by *Network.Train.
func (n *Node) Error() float64 {
	if n.haveErr {
		return n.err
	}

	if n.kind == Output {
		n.err = n.target - n.Activation()
	} else {
		net := n.host
		deriv := net.act.Deriv(n.Activation())

		var sum float64
		for _, id := range n.outputs {
			a := net.axons[id]
			sum += net.nodesByID[a.to].Error() * a.weight * deriv
		}

		n.err = sum
	}

	n.haveErr = true
	return n.err
}

// Reset clears the cached activation and error of the Node, so that they will be recalculated
// on next access.
func (n *Node) Reset() {
	n.haveActivation = false
	n.activation = 0
	n.haveErr = false
	n.err = 0
}

// reset clears the caches of every Node in the Network. It must be called before every example.
func (net *Network) reset() {
	for _, n := range net.nodesByID {
		n.Reset()
	}
}

// forEachAxon calls f on each Axon in canonical order: layers in order, Nodes within each layer
// in order, and each Node's outgoing Axons in order.
func (net *Network) forEachAxon(f func(*Axon)) {
	for _, l := range net.layers {
		for _, id := range l.nodes {
			for _, a := range net.nodesByID[id].outputs {
				f(net.axons[a])
			}
		}
	}
}
