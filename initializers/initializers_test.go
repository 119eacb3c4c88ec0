package initializers

import (
	"math/rand"
	"testing"

	nn "github.com/codebox/neural-net"
	"github.com/codebox/neural-net/activations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUniform_Bounds tests that every generated weight is within the default range.
func TestUniform_Bounds(t *testing.T) {
	ws := make([]float64, 1000)
	Uniform().Source(rand.New(rand.NewSource(1))).Set(ws)

	for i, w := range ws {
		assert.True(t, w >= -1 && w <= 1, "weight %d out of range: %v", i, w)
	}
}

// TestUniform_Source tests that equal seeds give equal weights.
func TestUniform_Source(t *testing.T) {
	a := make([]float64, 20)
	b := make([]float64, 20)

	Uniform().Source(rand.New(rand.NewSource(7))).Set(a)
	Uniform().Source(rand.New(rand.NewSource(7))).Set(b)

	assert.Equal(t, a, b)
}

// TestUniform_SwappedBounds tests that Bounds accepts its arguments in either order.
func TestUniform_SwappedBounds(t *testing.T) {
	u := Uniform().Bounds(3, 2).Source(rand.New(rand.NewSource(3)))
	for i := 0; i < 100; i++ {
		g := u.Gen()
		assert.True(t, g >= 2 && g <= 3, "%v", g)
	}
}

// TestConstant tests the Constant Initializer.
func TestConstant(t *testing.T) {
	ws := make([]float64, 5)
	Constant(0.25).Set(ws)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25, 0.25}, ws)
}

// TestSetDefault tests that unknown names and invalid values are refused.
func TestSetDefault(t *testing.T) {
	require.Error(t, SetDefault("uniform-middle", 0))
	require.Error(t, SetDefault("normal-sd", 1.0/zero()))

	require.NoError(t, SetDefault("normal-mean", 5))
	defer SetDefault_Lazy("normal-mean", 0)

	n := Normal().SD(0).Source(rand.New(rand.NewSource(1)))
	assert.Equal(t, 5.0, n.Gen())
}

func zero() float64 { return 0 }

// TestRandom_Normal tests that a seeded Normal distribution gives the same Network weights every
// time, and that they are not all equal.
func TestRandom_Normal(t *testing.T) {
	build := func() []float64 {
		net, err := nn.New(nn.Config{
			Sizes:      []int{2, 3, 1},
			Activation: activations.Logistic(),
			Init:       Random(Normal().SD(0.5).Source(rand.New(rand.NewSource(11)))),
		})
		require.NoError(t, err)
		return net.Weights()
	}

	a, b := build(), build()
	require.Len(t, a, 13)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0], a[1])

	want := make([]float64, 13)
	g := Normal().SD(0.5).Source(rand.New(rand.NewSource(11)))
	for i := range want {
		want[i] = g.Gen()
	}
	assert.Equal(t, want, a)
}

// TestByName tests the lookup of Initializers.
func TestByName(t *testing.T) {
	u, ok := ByName("uniform")
	require.True(t, ok)
	assert.IsType(t, &uniform{}, u)

	n, ok := ByName("normal")
	require.True(t, ok)
	assert.IsType(t, random{}, n)

	ws := make([]float64, 50)
	n.Set(ws)
	assert.NotEqual(t, ws[0], ws[1])

	_, ok = ByName("xavier")
	assert.False(t, ok)
}
