package activations

import (
	"math"
	"testing"

	nn "github.com/codebox/neural-net"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// TestLogistic_Saturates tests that large arguments give the limiting values instead of NaN.
func TestLogistic_Saturates(t *testing.T) {
	l := Logistic()

	assert.Equal(t, 0.0, l.Value(-1e6))
	assert.Equal(t, 1.0, l.Value(1e6))
	assert.Equal(t, 0.0, l.Value(math.Inf(-1)))
	assert.Equal(t, 1.0, l.Value(math.Inf(1)))
	assert.Equal(t, 0.5, l.Value(0))
}

// TestDerivs compares each derivative against a central difference.
func TestDerivs(t *testing.T) {
	central := &fd.Settings{Formula: fd.Central}

	acts := []nn.Activation{Logistic(), Tanh(), Softsign(), Identity()}
	for _, a := range acts {
		for _, x := range []float64{-2, -0.5, 0.1, 1.5} {
			numeric := fd.Derivative(a.Value, x, central)
			assert.InDelta(t, numeric, a.Deriv(a.Value(x)), 1e-6, "%s at %v", a.TypeString(), x)
		}
	}
}

// TestRegistered tests that every Activation can be found by name.
func TestRegistered(t *testing.T) {
	for _, name := range []string{"logistic", "tanh", "softsign", "identity"} {
		a, ok := nn.ActivationByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, a.TypeString())
	}

	_, ok := nn.ActivationByName("relu")
	assert.False(t, ok)
}
