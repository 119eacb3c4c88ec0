package neuralnet

import "fmt"

// Kind is the variant of a Node, or of the Nodes of a Layer. The Kind determines which
// capabilities the Node has: receiving input through incoming Axons, and sending output through
// outgoing Axons.
type Kind int8

const (
	Bias   Kind = iota // 0
	Input  Kind = iota // 1
	Hidden Kind = iota // 2
	Output Kind = iota // 3
)

func (k Kind) String() string {
	switch k {
	case Bias:
		return "bias"
	case Input:
		return "input"
	case Hidden:
		return "hidden"
	case Output:
		return "output"
	}

	return "unknown"
}

// ReceivesInput returns whether or not Nodes of the Kind compute their activation from incoming
// Axons.
func (k Kind) ReceivesInput() bool {
	return k == Hidden || k == Output
}

// SendsOutput returns whether or not Nodes of the Kind have outgoing Axons, and so compute their
// error from the Nodes they feed into.
func (k Kind) SendsOutput() bool {
	return k != Output
}

// String returns a short description of the Layer, such as:
//	<hidden layer 1: 4 nodes>
func (l *Layer) String() string {
	return fmt.Sprintf("<%s layer %d: %d nodes>", l.kind, l.index, len(l.nodes))
}

// Index returns the position of the Layer within its Network, starting at 0 for the input layer.
func (l *Layer) Index() int {
	return l.index
}

// Kind returns the Kind of the non-bias Nodes in the Layer.
func (l *Layer) Kind() Kind {
	return l.kind
}

// HasBias returns whether or not the first Node of the Layer is a bias Node. Input and hidden
// layers have one; output layers do not.
func (l *Layer) HasBias() bool {
	return l.hasBias
}

// Size returns the number of non-bias Nodes in the Layer, as it was requested in New.
func (l *Layer) Size() int {
	if l.hasBias {
		return len(l.nodes) - 1
	}

	return len(l.nodes)
}

// NumNodes returns the number of Nodes in the Layer, including the bias Node.
func (l *Layer) NumNodes() int {
	return len(l.nodes)
}

// Nodes returns the Nodes of the Layer in construction order. The bias Node, if there is one, is
// first. The returned slice is a copy.
func (l *Layer) Nodes() []*Node {
	ns := make([]*Node, len(l.nodes))
	for i, id := range l.nodes {
		ns[i] = l.host.nodesByID[id]
	}

	return ns
}

// valueNodes returns the ids of the non-bias Nodes of the Layer. The returned slice is NOT a copy.
func (l *Layer) valueNodes() []int {
	if l.hasBias {
		return l.nodes[1:]
	}

	return l.nodes
}

// Activations returns the activations of the non-bias Nodes of the Layer, in order.
func (l *Layer) Activations() []float64 {
	ids := l.valueNodes()
	vs := make([]float64, len(ids))
	for i, id := range ids {
		vs[i] = l.host.nodesByID[id].Activation()
	}

	return vs
}
