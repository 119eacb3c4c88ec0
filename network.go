package neuralnet

import (
	"github.com/pkg/errors"
)

func (net *Network) inputLayer() *Layer {
	return net.layers[0]
}

func (net *Network) outputLayer() *Layer {
	return net.layers[len(net.layers)-1]
}

// Layers returns the Layers of the Network in construction order. The slice that Layers returns
// is a copy; the Layers themselves are not.
func (net *Network) Layers() []*Layer {
	ls := make([]*Layer, len(net.layers))
	copy(ls, net.layers)
	return ls
}

// Layer returns the Layer at the given index. Index-out-of-bounds panics are allowed to go
// through.
func (net *Network) Layer(index int) *Layer {
	return net.layers[index]
}

// Nodes returns the list of all Nodes in the Network, sorted by ID such that Nodes()[n] has id=n.
// The slice that Nodes returns is a copy.
func (net *Network) Nodes() []*Node {
	ns := make([]*Node, len(net.nodesByID))
	copy(ns, net.nodesByID)
	return ns
}

// Axons returns the list of all Axons in the Network, in canonical order. The slice that Axons
// returns is a copy.
func (net *Network) Axons() []*Axon {
	as := make([]*Axon, len(net.axons))
	copy(as, net.axons)
	return as
}

// NumNodes returns the total number of Nodes in the Network, including bias Nodes.
func (net *Network) NumNodes() int {
	return len(net.nodesByID)
}

// NumAxons returns the total number of Axons in the Network, which is also the number of weights.
func (net *Network) NumAxons() int {
	return len(net.axons)
}

// InputSize returns the number of input values the Network expects.
func (net *Network) InputSize() int {
	return net.inputLayer().Size()
}

// OutputSize returns the number of output values the Network produces.
func (net *Network) OutputSize() int {
	return net.outputLayer().Size()
}

// Sizes returns the sizes of each layer, as given to New.
func (net *Network) Sizes() []int {
	sizes := make([]int, len(net.layers))
	for i, l := range net.layers {
		sizes[i] = l.Size()
	}

	return sizes
}

// Activation returns the Activation used by the hidden and output Nodes.
func (net *Network) Activation() Activation {
	return net.act
}

// Weights returns a copy of every weight in the Network, in canonical order. This order is the
// format used by SetWeights and by Save and Load.
func (net *Network) Weights() []float64 {
	ws := make([]float64, 0, len(net.axons))
	net.forEachAxon(func(a *Axon) {
		ws = append(ws, a.weight)
	})

	return ws
}

// SetWeights overwrites every weight in the Network with those given, in canonical order, and
// clears the accumulated gradients of every Axon.
//
// If the number of weights does not equal NumAxons(), SetWeights returns a SizeMismatchError and
// nothing is changed.
func (net *Network) SetWeights(ws []float64) error {
	if len(ws) != len(net.axons) {
		return SizeMismatchError{len(net.axons), len(ws), "weights"}
	}

	i := 0
	net.forEachAxon(func(a *Axon) {
		a.weight = ws[i]
		a.errSum = 0
		i++
	})

	return nil
}

// Gradients returns the gradient contributions accumulated by each Axon since the weights were
// last set, in canonical order.
func (net *Network) Gradients() []float64 {
	gs := make([]float64, 0, len(net.axons))
	net.forEachAxon(func(a *Axon) {
		gs = append(gs, a.errSum)
	})

	return gs
}

// Derivatives returns, in canonical order, the batch-averaged derivative of each weight: the
// accumulated gradient divided by the batch size m. If the Network has a Penalty, it is applied
// to every derivative except those of Axons leaving a bias Node.
//
// The derivatives point in the direction of improvement, so the weights are updated by adding
// them (scaled by the learning rate). Derivatives does not change the Network.
func (net *Network) Derivatives(m int) ([]float64, error) {
	if m < 1 {
		return nil, errors.Errorf("Can't get derivatives, batch size must be >= 1 (%d)", m)
	}

	ds := make([]float64, 0, len(net.axons))
	net.forEachAxon(func(a *Axon) {
		d := a.errSum / float64(m)
		if net.pen != nil && net.nodesByID[a.from].kind != Bias {
			d = net.pen.Penalize(d, a.weight)
		}

		ds = append(ds, d)
	})

	return ds, nil
}
