package trainer

import (
	"context"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	nn "github.com/codebox/neural-net"
	"github.com/codebox/neural-net/dataset"
	"github.com/codebox/neural-net/initializers"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xorData = `# xor truth table
0,0:0
0,1:1
1,0:1
1,1:0
`

func quietConfig(layers ...int) Config {
	c := DefaultConfig(layers...)
	c.Logger = log.New(io.Discard, "", 0)
	return c
}

func xorSet(t *testing.T) *dataset.Set {
	set, err := dataset.Read(strings.NewReader(xorData), 0, 2, 1)
	require.NoError(t, err)
	require.Len(t, set.Train, 4)
	return set
}

func seeded(seed int64) nn.Initializer {
	return initializers.Uniform().Source(rand.New(rand.NewSource(seed)))
}

// TestRun_XOR trains a 2-2-1 network on XOR. A network this small can settle in a local minimum
// from some starting weights, so several seeds are tried; at least one must converge.
func TestRun_XOR(t *testing.T) {
	set := xorSet(t)

	for seed := int64(1); seed <= 10; seed++ {
		cfg := quietConfig(2, 2, 1)
		cfg.Iterations = 20000
		cfg.LearningRate = 2
		cfg.ReportInterval = 5000
		cfg.Init = seeded(seed)

		tr, err := New(cfg)
		require.NoError(t, err)

		net, rep, err := tr.Run(context.Background(), set)
		require.NoError(t, err)
		require.Equal(t, 20000, rep.Iterations)
		require.False(t, rep.Interrupted)

		converged := true
		for _, d := range set.Train {
			outs, err := net.Evaluate(d.Inputs)
			require.NoError(t, err)

			if diff := outs[0] - d.Outputs[0]; diff > 0.1 || diff < -0.1 {
				converged = false
			}
		}

		if converged {
			frac, err := tr.Test(net, set.Train)
			require.NoError(t, err)
			assert.Equal(t, 1.0, frac)
			return
		}
	}

	t.Fatal("XOR did not converge for any seed")
}

// TestRun_Cancelled tests that cancellation is observed after the first epoch has been committed.
func TestRun_Cancelled(t *testing.T) {
	cfg := quietConfig(2, 2, 1)
	cfg.Init = seeded(1)

	tr, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	net, rep, err := tr.Run(ctx, xorSet(t))
	require.NoError(t, err)
	require.NotNil(t, net)

	assert.True(t, rep.Interrupted)
	assert.Equal(t, 1, rep.Iterations)

	// the committed epoch changed the weights from their starting values
	start := make([]float64, net.NumAxons())
	seeded(1).Set(start)
	assert.NotEqual(t, start, net.Weights())
}

// risingCost reports a larger error every time it is called
type risingCost struct{ calls float64 }

func (c *risingCost) TypeString() string { return "rising" }

func (c *risingCost) Cost(outs, targets []float64) float64 {
	c.calls++
	return c.calls
}

// TestRun_Diverged tests that an increase in error beyond the threshold stops training.
func TestRun_Diverged(t *testing.T) {
	cfg := quietConfig(2, 2, 1)
	cfg.Init = seeded(1)
	cfg.Cost = new(risingCost)
	cfg.CheckError = true
	cfg.ErrThreshold = 0
	cfg.PersistenceID = filepath.Join(t.TempDir(), "diverged")

	tr, err := New(cfg)
	require.NoError(t, err)

	_, rep, err := tr.Run(context.Background(), xorSet(t))
	require.Error(t, err)
	assert.Equal(t, ErrDiverged, errors.Cause(err))

	// the first check only records the error; the second finds it has risen
	assert.Equal(t, 2, rep.Iterations)
	assert.False(t, nn.Exists(tr.PersistencePath()))
}

// TestRun_Persistence tests that weights are saved after training and loaded by the next run.
func TestRun_Persistence(t *testing.T) {
	id := filepath.Join(t.TempDir(), "xor")

	cfg := quietConfig(2, 2, 1)
	cfg.Iterations = 5
	cfg.Init = seeded(3)
	cfg.PersistenceID = id

	tr, err := New(cfg)
	require.NoError(t, err)

	net, rep, err := tr.Run(context.Background(), xorSet(t))
	require.NoError(t, err)
	assert.Equal(t, id+".net", rep.Saved)
	assert.True(t, nn.Exists(rep.Saved))

	cfg.Init = seeded(99)
	tr2, err := New(cfg)
	require.NoError(t, err)

	loaded, err := tr2.Network()
	require.NoError(t, err)
	assert.Equal(t, net.Weights(), loaded.Weights())
}

// TestRun_PersistenceMismatch tests that weights saved from a different topology are refused.
func TestRun_PersistenceMismatch(t *testing.T) {
	id := filepath.Join(t.TempDir(), "net")

	cfg := quietConfig(2, 2, 1)
	cfg.Iterations = 1
	cfg.PersistenceID = id

	tr, err := New(cfg)
	require.NoError(t, err)
	_, _, err = tr.Run(context.Background(), xorSet(t))
	require.NoError(t, err)

	cfg.Layers = []int{2, 3, 1}
	tr, err = New(cfg)
	require.NoError(t, err)

	_, err = tr.Network()
	require.Error(t, err)
	assert.True(t, nn.IsSizeMismatch(err))
}

// TestRun_NoData tests that training without data fails.
func TestRun_NoData(t *testing.T) {
	tr, err := New(quietConfig(2, 2, 1))
	require.NoError(t, err)

	_, _, err = tr.Run(context.Background(), &dataset.Set{})
	assert.Error(t, err)
}

// TestRunFile tests reading the data from disk and splitting off the test data.
func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(xorData+"0,abc:1\n"), 0600))

	cfg := quietConfig(2, 2, 1)
	cfg.Iterations = 3
	cfg.TestProportion = 0.25

	tr, err := New(cfg)
	require.NoError(t, err)

	_, set, rep, err := tr.RunFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Iterations)
	assert.Len(t, set.Train, 3)
	assert.Len(t, set.Test, 1)
	assert.Equal(t, []string{"0,abc:1"}, set.Rejected)
}

// TestNew_InvalidConfig tests that every invalid field is refused.
func TestNew_InvalidConfig(t *testing.T) {
	broken := []func(*Config){
		func(c *Config) { c.Layers = []int{2, 1} },
		func(c *Config) { c.Layers = []int{2, 0, 1} },
		func(c *Config) { c.Iterations = -1 },
		func(c *Config) { c.LearningRate = -0.1 },
		func(c *Config) { c.LearningRate = math.NaN() },
		func(c *Config) { c.Lambda = -1 },
		func(c *Config) { c.Lambda = math.NaN() },
		func(c *Config) { c.TestProportion = 1.1 },
		func(c *Config) { c.ReportInterval = 0 },
		func(c *Config) { c.CheckError, c.ErrThreshold = true, -1 },
		func(c *Config) { c.Activation = nil },
		func(c *Config) { c.Cost = nil },
	}

	for i, f := range broken {
		cfg := quietConfig(2, 2, 1)
		f(&cfg)

		_, err := New(cfg)
		assert.Error(t, err, "case %d", i)
	}

	_, err := New(quietConfig(2, 0, 1))
	assert.True(t, nn.IsConfigError(err))
}

// TestNew_CopiesLayers tests that the Trainer is not affected by later changes to the Config.
func TestNew_CopiesLayers(t *testing.T) {
	cfg := quietConfig(2, 2, 1)
	tr, err := New(cfg)
	require.NoError(t, err)

	cfg.Layers[1] = 7
	assert.Equal(t, []int{2, 2, 1}, tr.Config().Layers)
}

// TestMeanCost tests the average over examples.
func TestMeanCost(t *testing.T) {
	cfg := quietConfig(1, 1, 1)
	cfg.Init = initializers.Constant(0)

	tr, err := New(cfg)
	require.NoError(t, err)
	net, err := tr.Network()
	require.NoError(t, err)

	// with every weight zero, the output is always 0.5
	data := []nn.Datum{
		{Inputs: []float64{3}, Outputs: []float64{1}},
		{Inputs: []float64{-3}, Outputs: []float64{0.25}},
	}

	cost, err := MeanCost(net, data, cfg.Cost)
	require.NoError(t, err)
	assert.InDelta(t, (0.5+0.25)/2, cost, 1e-12)

	cost, err = MeanCost(net, nil, cfg.Cost)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)
}

// TestTest_WrongTargets tests that a Datum with the wrong number of targets is an error rather
// than an incorrect result.
func TestTest_WrongTargets(t *testing.T) {
	cfg := quietConfig(2, 2, 1)
	cfg.Init = seeded(1)

	tr, err := New(cfg)
	require.NoError(t, err)
	net, err := tr.Network()
	require.NoError(t, err)

	data := []nn.Datum{
		{Inputs: []float64{0, 1}, Outputs: []float64{1}},
		{Inputs: []float64{1, 1}, Outputs: []float64{0, 1}},
	}

	_, err = tr.Test(net, data)
	require.Error(t, err)
	assert.Equal(t, nn.SizeMismatchError{Expected: 1, Given: 2, Kind: "targets"}, err)

	frac, err := tr.Test(net, data[:1])
	require.NoError(t, err)
	assert.True(t, frac == 0 || frac == 1)
}

// TestNew_Lambda tests that a positive Lambda gives an L2 penalty.
func TestNew_Lambda(t *testing.T) {
	cfg := quietConfig(2, 2, 1)
	cfg.Lambda = 0.01

	tr, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "l2-ridge", tr.Config().penalty().TypeString())
}
