package activations

import (
	nn "github.com/codebox/neural-net"
)

func init() {
	list := []func() nn.Activation{
		func() nn.Activation { return Identity() },
		func() nn.Activation { return Logistic() },
		func() nn.Activation { return Softsign() },
		func() nn.Activation { return Tanh() },
	}

	for _, f := range list {
		if err := nn.RegisterActivation(f); err != nil {
			panic(err)
		}
	}
}
