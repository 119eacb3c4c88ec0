package neuralnet

import (
	"math"
	"strings"
	"sync"
)

// CorrectRound returns whether or not every output rounds to its target, rounding at 0.5. It
// assumes len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		// rounds to 0 if a number is < 0.5, 1 if > 0.5. Tanh reduces the value to (0, 1)
		if math.Round(0.5*(1+math.Tanh(outs[i]-0.5))) != targets[i] {
			return false
		}
	}

	return true
}

// String returns a multi-line description of every Layer, Node, and Axon in the Network, along
// with the Nodes' current activations and the Axons' weights. Evaluating the activations may fill
// the caches of the Nodes.
func (net *Network) String() string {
	const indent = "    "

	var b strings.Builder
	for _, l := range net.layers {
		b.WriteString(l.String() + "\n")

		for _, id := range l.nodes {
			n := net.nodesByID[id]
			b.WriteString(indent + n.String() + " activation: " + ftoa(n.Activation()) + "\n")

			for _, a := range n.outputs {
				b.WriteString(indent + indent + net.axons[a].String() + "\n")
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

var (
	registryMux sync.Mutex
	activations = make(map[string]func() Activation)
)

// RegisterActivation makes an Activation available by name through ActivationByName. The name
// used is the TypeString of the returned Activation. The subpackage "activations" registers all
// of its types in init().
func RegisterActivation(f func() Activation) error {
	a := f()
	if a == nil {
		return ErrRegisterNilReturn
	}

	registryMux.Lock()
	defer registryMux.Unlock()

	if activations[a.TypeString()] != nil {
		return ErrRegisterWrongName
	}

	activations[a.TypeString()] = f
	return nil
}

// ActivationByName returns a new Activation of the type registered under the given name, and
// whether or not one was found.
func ActivationByName(name string) (Activation, bool) {
	registryMux.Lock()
	f := activations[name]
	registryMux.Unlock()

	if f == nil {
		return nil, false
	}

	return f(), true
}

// ActivationNames returns the names of every registered Activation, in no particular order.
func ActivationNames() []string {
	registryMux.Lock()
	defer registryMux.Unlock()

	names := make([]string, 0, len(activations))
	for name := range activations {
		names = append(names, name)
	}

	return names
}
