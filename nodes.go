package neuralnet

import (
	"fmt"
)

// String offers a universal method of gaining information about a Node without printing all of its
// fields. String returns:
//	<id: %d, %s, layer %d>
// where the second field is the Node's Kind.
// Finally, if given a Node that is nil, String will return:
//	<nil>
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("<id: %d, %s, layer %d>", n.id, n.kind, n.layer)
}

// ID returns the non-negative integer given to the Node as a member of its Network. IDs are unique
// within Networks, and are assigned in canonical order.
func (n *Node) ID() int {
	return n.id
}

// Kind returns the variant of the Node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Layer returns the Layer that the Node belongs to.
func (n *Node) Layer() *Layer {
	return n.host.layers[n.layer]
}

// NumInputs returns the number of incoming Axons. This is always zero for bias and input Nodes.
func (n *Node) NumInputs() int {
	return len(n.inputs)
}

// NumOutputs returns the number of outgoing Axons. This is always zero for output Nodes.
func (n *Node) NumOutputs() int {
	return len(n.outputs)
}

// Target returns the target value of an output Node for the most recent training example. For
// other Kinds, it returns 0.
func (n *Node) Target() float64 {
	return n.target
}

// String returns the endpoints and state of the Axon, for example:
//	<axon 3: 1 -> 4, weight: 0.25, error sum: 0>
func (a *Axon) String() string {
	return fmt.Sprintf("<axon %d: %d -> %d, weight: %v, error sum: %v>", a.id, a.from, a.to, a.weight, a.errSum)
}

// Weight returns the current weight of the Axon.
func (a *Axon) Weight() float64 {
	return a.weight
}

// ErrSum returns the sum of the gradient contributions accumulated since the weights were last
// set.
func (a *Axon) ErrSum() float64 {
	return a.errSum
}

// Ends returns the ids of the source and destination Nodes of the Axon.
func (a *Axon) Ends() (from, to int) {
	return a.from, a.to
}
