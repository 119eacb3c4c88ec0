package costfuncs

import (
	nn "github.com/codebox/neural-net"
)

// ByName returns the CostFunction with the given TypeString, and whether or not one exists.
func ByName(name string) (nn.CostFunction, bool) {
	list := []nn.CostFunction{
		Euclidean(),
		MSE(),
	}

	for _, cf := range list {
		if cf.TypeString() == name {
			return cf, true
		}
	}

	return nil, false
}
