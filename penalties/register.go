package penalties

import nn "github.com/codebox/neural-net"

// the types in this package must satisfy neuralnet.Penalty
var (
	_ nn.Penalty = L1(0)
	_ nn.Penalty = L2(0)
	_ nn.Penalty = L2Legacy(0)
	_ nn.Penalty = ElasticNet(0, 0)
)

// FromLambda returns the Penalty used for a plain regularization coefficient: L2(λ), or nil if λ
// is zero.
func FromLambda(λ float64) nn.Penalty {
	if λ == 0 {
		return nil
	}

	return L2(λ)
}
