package costfuncs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEuclidean tests the distance on a 3-4-5 triangle.
func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5.0, Euclidean().Cost([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.Equal(t, 0.0, Euclidean().Cost([]float64{0.5}, []float64{0.5}))
}

// TestMSE tests that MSE halves the mean of the squared differences.
func TestMSE(t *testing.T) {
	assert.InDelta(t, 0.5*(1+9)/2, MSE().Cost([]float64{1, 2}, []float64{0, 5}), 1e-12)
}

// TestByName tests the lookup of CostFunctions.
func TestByName(t *testing.T) {
	cf, ok := ByName("mse")
	require.True(t, ok)
	assert.Equal(t, "mse", cf.TypeString())

	_, ok = ByName("huber")
	assert.False(t, ok)
}
