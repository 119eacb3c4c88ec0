package penalties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestL2_Shrinks tests that adding the penalized derivative moves a weight toward zero.
func TestL2_Shrinks(t *testing.T) {
	p := L2(0.5)

	assert.Equal(t, -1.0, p.Penalize(0, 2))
	assert.Equal(t, 1.0, p.Penalize(0, -2))
	assert.Equal(t, 0.25, p.Penalize(0.25, 0))
}

// TestL2Legacy tests that the legacy penalty adds λw.
func TestL2Legacy(t *testing.T) {
	assert.Equal(t, 1.5, L2Legacy(0.5).Penalize(0.5, 2))
}

// TestL1 tests that L1 ignores the magnitude of the weight.
func TestL1(t *testing.T) {
	p := Lasso(0.1)

	assert.InDelta(t, -0.1, p.Penalize(0, 7), 1e-12)
	assert.InDelta(t, 0.1, p.Penalize(0, -0.01), 1e-12)
	assert.Equal(t, 0.3, p.Penalize(0.3, 0))
}

// TestElasticNet_Extremes tests that α = 0 and α = 1 match L2 and L1.
func TestElasticNet_Extremes(t *testing.T) {
	for _, w := range []float64{-3, -0.5, 0.5, 3} {
		assert.InDelta(t, L2(0.2).Penalize(0.1, w), ElasticNet(0, 0.2).Penalize(0.1, w), 1e-12)
		assert.InDelta(t, L1(0.2).Penalize(0.1, w), ElasticNet(1, 0.2).Penalize(0.1, w), 1e-12)
	}
}

// TestFromLambda tests that a zero coefficient disables regularization.
func TestFromLambda(t *testing.T) {
	assert.Nil(t, FromLambda(0))
	assert.Equal(t, "l2-ridge", FromLambda(0.1).TypeString())
}
