package trainer

import (
	"log"

	nn "github.com/codebox/neural-net"
	"github.com/codebox/neural-net/activations"
	"github.com/codebox/neural-net/costfuncs"
	"github.com/codebox/neural-net/penalties"
	"github.com/pkg/errors"
)

// Config holds every setting of a training run. It is a plain value: a Trainer keeps its own copy,
// so changing a Config after passing it to New has no effect on the Trainer.
//
// DefaultConfig gives the documented defaults.
type Config struct {
	// Layers gives the size of each layer, from input to output. At least 3 are required.
	Layers []int

	// Iterations is the maximum number of epochs. Default 1000.
	Iterations int

	// LearningRate scales the derivatives before they are added to the weights. Default 1.
	LearningRate float64

	// Lambda is the L2 regularization coefficient, which must be >= 0. Default 0 (no
	// regularization). Ignored if Penalty is set.
	Lambda float64

	// Penalty, if set, is used instead of penalties.L2(Lambda).
	Penalty nn.Penalty

	// Activation of the hidden and output Nodes. Default activations.Logistic().
	Activation nn.Activation

	// TestProportion is the fraction of the data held out for testing. Default 0.3.
	TestProportion float64

	// PersistenceID names the file ("<id>.net") that weights are loaded from before training, if
	// it exists, and saved to afterwards. Empty disables persistence. Default "".
	PersistenceID string

	// CheckError enables divergence detection: after each epoch, if the training error has risen
	// by more than ErrThreshold since the last epoch, training stops with ErrDiverged. Default
	// false.
	CheckError   bool
	ErrThreshold float64

	// ReportInterval is the number of epochs between progress reports. Default 1000.
	ReportInterval int

	// Cost measures the error for reports and divergence detection. Default
	// costfuncs.Euclidean().
	Cost nn.CostFunction

	// Init sets the starting weights. Default nil, for initializers.Uniform(): independent values
	// on [-1, 1]. initializers.ByName gives the others by name.
	Init nn.Initializer

	// Logger receives progress reports. Default nil, for log.Default().
	Logger *log.Logger
}

// Default values for Config
const (
	DefaultIterations     int     = 1000
	DefaultLearningRate   float64 = 1
	DefaultTestProportion float64 = 0.3
	DefaultReportInterval int     = 1000
)

// DefaultConfig returns a Config with the given layer sizes and every other field at its default.
func DefaultConfig(layers ...int) Config {
	return Config{
		Layers:         layers,
		Iterations:     DefaultIterations,
		LearningRate:   DefaultLearningRate,
		Activation:     activations.Logistic(),
		TestProportion: DefaultTestProportion,
		ReportInterval: DefaultReportInterval,
		Cost:           costfuncs.Euclidean(),
	}
}

// validate checks the fields that New of package neuralnet does not
func (c Config) validate() error {
	if len(c.Layers) < 3 {
		return errors.Wrapf(nn.ErrTooFewLayers, "Invalid config\n")
	} else if c.Iterations < 0 {
		return errors.Errorf("Invalid config, Iterations must be >= 0 (%d)", c.Iterations)
	} else if !(c.LearningRate >= 0) {
		return errors.Errorf("Invalid config, LearningRate must be >= 0 (%v)", c.LearningRate)
	} else if !(c.Lambda >= 0) {
		return errors.Errorf("Invalid config, Lambda must be >= 0 (%v)", c.Lambda)
	} else if !(c.TestProportion >= 0 && c.TestProportion <= 1) {
		return errors.Errorf("Invalid config, TestProportion must be in the range [0, 1] (%v)", c.TestProportion)
	} else if c.ReportInterval < 1 {
		return errors.Errorf("Invalid config, ReportInterval must be >= 1 (%d)", c.ReportInterval)
	} else if c.CheckError && c.ErrThreshold < 0 {
		return errors.Errorf("Invalid config, ErrThreshold must be >= 0 (%v)", c.ErrThreshold)
	} else if c.Activation == nil {
		return errors.Errorf("Invalid config, Activation is nil")
	} else if c.Cost == nil {
		return errors.Errorf("Invalid config, Cost is nil")
	}

	for i, size := range c.Layers {
		if size < 1 {
			return errors.Wrapf(nn.LayerSizeError{Index: i, Size: size}, "Invalid config\n")
		}
	}

	return nil
}

func (c Config) penalty() nn.Penalty {
	if c.Penalty != nil {
		return c.Penalty
	}

	return penalties.FromLambda(c.Lambda)
}
