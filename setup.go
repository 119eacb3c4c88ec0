package neuralnet

import (
	"sync"

	"github.com/pkg/errors"
)

// Config is the set of arguments to New.
type Config struct {
	// Sizes gives the number of (non-bias) Nodes in each layer, starting with the input layer and
	// ending with the output layer. There must be at least 3 layers, each with size >= 1.
	Sizes []int

	// Activation is used by every hidden and output Node. Required.
	Activation Activation

	// Penalty regularizes the derivatives of non-bias weights. If nil, the derivatives are left
	// as they are.
	Penalty Penalty

	// Init sets the starting weights. If nil, the default Initializer is used; see
	// SetDefaultInitializer.
	Init Initializer
}

var (
	defaultMux  sync.Mutex
	defaultInit Initializer
)

// SetDefaultInitializer sets the Initializer that New will use when none is given. Importing the
// subpackage "initializers" sets it to a uniform distribution on [-1, 1].
func SetDefaultInitializer(i Initializer) {
	defaultMux.Lock()
	defaultInit = i
	defaultMux.Unlock()
}

func getDefaultInitializer() Initializer {
	defaultMux.Lock()
	defer defaultMux.Unlock()
	return defaultInit
}

// New builds a fully connected Network: every Node in each layer is joined to every Node that
// receives input in the following layer. The first layer is made of input Nodes, the last of
// output Nodes, and all those in between of hidden Nodes. Every layer except the output layer is
// given a bias Node.
//
// If New returns an error, it will be one for which IsConfigError returns true.
func New(c Config) (*Network, error) {
	if len(c.Sizes) < 3 {
		return nil, ErrTooFewLayers
	}

	for i, size := range c.Sizes {
		if size < 1 {
			return nil, LayerSizeError{i, size}
		}
	}

	if c.Activation == nil {
		return nil, NilArgError{"Activation"}
	}

	initer := c.Init
	if initer == nil {
		if initer = getDefaultInitializer(); initer == nil {
			return nil, ErrNoInitializer
		}
	}

	net := &Network{
		act: c.Activation,
		pen: c.Penalty,
	}

	last := len(c.Sizes) - 1
	for i, size := range c.Sizes {
		kind := Hidden
		if i == 0 {
			kind = Input
		} else if i == last {
			kind = Output
		}

		net.addLayer(kind, size)
	}

	for i := 0; i < last; i++ {
		net.join(net.layers[i], net.layers[i+1])
	}

	ws := make([]float64, len(net.axons))
	initer.Set(ws)
	for i, a := range net.axons {
		a.weight = ws[i]
	}

	return net, nil
}

// MustNew calls New, but panics instead of returning an error
func MustNew(c Config) *Network {
	net, err := New(c)
	if err != nil {
		panic(errors.Wrapf(err, "Can't build network"))
	}

	return net
}

func (net *Network) addLayer(kind Kind, size int) {
	l := &Layer{
		host:    net,
		index:   len(net.layers),
		kind:    kind,
		hasBias: kind != Output,
	}

	if l.hasBias {
		net.addNode(l, Bias)
	}

	for i := 0; i < size; i++ {
		net.addNode(l, kind)
	}

	net.layers = append(net.layers, l)
}

func (net *Network) addNode(l *Layer, kind Kind) {
	n := &Node{
		id:    len(net.nodesByID),
		layer: l.index,
		kind:  kind,
		host:  net,
	}

	l.nodes = append(l.nodes, n.id)
	net.nodesByID = append(net.nodesByID, n)
}

// join connects every Node in 'from' to every Node in 'to' that can receive input. Because layers
// are joined in order, and the Nodes within them in order, the Axons are created in canonical
// order.
func (net *Network) join(from, to *Layer) {
	for _, src := range from.nodes {
		s := net.nodesByID[src]

		for _, dst := range to.nodes {
			d := net.nodesByID[dst]
			if !d.kind.ReceivesInput() {
				continue
			}

			a := &Axon{
				id:     len(net.axons),
				from:   src,
				to:     dst,
				weight: 1,
			}

			s.outputs = append(s.outputs, a.id)
			d.inputs = append(d.inputs, a.id)
			net.axons = append(net.axons, a)
		}
	}
}
