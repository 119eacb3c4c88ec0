package neuralnet

// Network is the main structure that is used to learn to map inputs to outputs. The Network owns
// every Layer, Node, and Axon in its graph; the topology is fixed once New returns, and only the
// weights and the per-example caches of the Nodes change afterwards.
type Network struct {
	// layers in construction order: the input layer, one or more hidden layers, the output
	// layer
	layers []*Layer

	// every Node in the Network, stored such that a Node's id is its index in this slice. Nodes
	// are added layer by layer, so this is also the canonical node order.
	nodesByID []*Node

	// every Axon in the Network, stored such that an Axon's id is its index in this slice. Axons
	// are created source-node first, so this is also the canonical axon order used by Weights,
	// SetWeights, and Derivatives.
	axons []*Axon

	act Activation

	// nil if the derivatives should not be regularized
	pen Penalty
}

// Layer is an ordered group of Nodes of the same Kind, optionally preceded by a bias Node.
type Layer struct {
	host *Network

	index int
	kind  Kind

	// ids of the member Nodes, in construction order. If the Layer has a bias Node, it is
	// nodes[0].
	nodes []int

	hasBias bool
}

// Nodes are the units of the computation graph. Each Node caches its activation and its error for
// the current example; both caches are cleared by Reset.
type Node struct {
	// used for order identification of which nodes were added first
	id int

	// the index of the Layer that the Node belongs to
	layer int

	kind Kind

	host *Network

	// ids of incoming Axons. nil unless kind.ReceivesInput()
	inputs []int

	// ids of outgoing Axons. nil unless kind.SendsOutput()
	outputs []int

	// the externally supplied value, for input Nodes
	value float64

	// the expected activation, for output Nodes
	target float64

	activation     float64
	haveActivation bool

	err     float64
	haveErr bool
}

// Axon is a weighted, directed connection from one Node to a Node in the following Layer.
type Axon struct {
	id int

	// ids of the source and destination Nodes
	from, to int

	weight float64

	// the sum of the per-example gradient contributions since the weights were last set
	errSum float64
}
