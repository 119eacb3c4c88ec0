// Package trainer runs full-batch training of a neuralnet.Network: it builds (or loads) the
// Network, runs epochs until the iteration limit or until cancelled, reports progress, detects
// divergence, and saves the result.
package trainer

import (
	"context"
	"log"

	nn "github.com/codebox/neural-net"
	"github.com/codebox/neural-net/dataset"
	"github.com/codebox/neural-net/initializers"
	"github.com/codebox/neural-net/optimizers"
	"github.com/pkg/errors"
)

// ErrDiverged is returned by Run when error checking is enabled and the training error rises by
// more than the threshold between two epochs. This usually means the learning rate is too high.
var ErrDiverged = errors.New("Error increased beyond threshold, try reducing the learning rate")

// Trainer runs training according to a Config. A Trainer is not safe for concurrent use.
type Trainer struct {
	cfg Config
	opt nn.Optimizer
	log *log.Logger
}

// Report summarizes a call to Run.
type Report struct {
	// Iterations is the number of epochs whose weight update was committed
	Iterations int

	// Interrupted is true if the context was cancelled before the iteration limit was reached
	Interrupted bool

	// Error is the mean training error, by Config.Cost, of the final weights
	Error float64

	// Saved is the file the weights were saved to, or "" if persistence is disabled
	Saved string
}

// New returns a Trainer for the Config, or an error if the Config is invalid.
func New(cfg Config) (*Trainer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Layers = append([]int(nil), cfg.Layers...)

	t := &Trainer{
		cfg: cfg,
		opt: optimizers.GradientDescent(),
		log: cfg.Logger,
	}

	if t.log == nil {
		t.log = log.Default()
	}

	return t, nil
}

// Config returns a copy of the Trainer's Config.
func (t *Trainer) Config() Config {
	c := t.cfg
	c.Layers = append([]int(nil), c.Layers...)
	return c
}

// PersistencePath returns the file used for persistence, or "" if it is disabled.
func (t *Trainer) PersistencePath() string {
	if t.cfg.PersistenceID == "" {
		return ""
	}

	return t.cfg.PersistenceID + nn.FileExtension
}

// Network builds a new Network from the Config. If persistence is enabled and the file exists,
// its weights are loaded into the Network.
func (t *Trainer) Network() (*nn.Network, error) {
	initer := t.cfg.Init
	if initer == nil {
		initer = initializers.Uniform()
	}

	net, err := nn.New(nn.Config{
		Sizes:      t.cfg.Layers,
		Activation: t.cfg.Activation,
		Penalty:    t.cfg.penalty(),
		Init:       initer,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "Can't create network\n")
	}

	if path := t.PersistencePath(); path != "" && nn.Exists(path) {
		if err := net.Load(path); err != nil {
			return nil, err
		}

		t.log.Printf("Loaded network from %s", path)
	}

	return net, nil
}

// Epoch trains the Network on every Datum once, then updates the weights a single time with the
// batch-averaged derivatives.
func Epoch(net *nn.Network, data []nn.Datum, opt nn.Optimizer, learningRate float64) error {
	if len(data) == 0 {
		return errors.Errorf("Can't run epoch, no training data")
	}

	for i, d := range data {
		if err := net.TrainDatum(d); err != nil {
			return errors.Wrapf(err, "Failed to train on example %d\n", i)
		}
	}

	ds, err := net.Derivatives(len(data))
	if err != nil {
		return err
	}

	ws := net.Weights()
	opt.Run(ws, ds, learningRate)

	return net.SetWeights(ws)
}

// MeanCost returns the average cost of the Network's outputs over the data. It returns 0 if there
// is no data.
func MeanCost(net *nn.Network, data []nn.Datum, cf nn.CostFunction) (float64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	var total float64
	for i, d := range data {
		outs, err := net.Evaluate(d.Inputs)
		if err != nil {
			return 0, errors.Wrapf(err, "Failed to evaluate example %d\n", i)
		} else if len(d.Outputs) != len(outs) {
			return 0, nn.SizeMismatchError{Expected: len(outs), Given: len(d.Outputs), Kind: "targets"}
		}

		total += cf.Cost(outs, d.Outputs)
	}

	return total / float64(len(data)), nil
}

func (t *Trainer) report(net *nn.Network, data []nn.Datum, iter int) error {
	cost, err := MeanCost(net, data, t.cfg.Cost)
	if err != nil {
		return errors.Wrapf(err, "Failed to report on iteration %d\n", iter)
	}

	t.log.Printf("Iteration %6d = %2.10f", iter, cost)
	return nil
}

// Run trains a Network (from Network) on set.Train for up to Config.Iterations epochs.
//
// Cancellation of ctx is only observed between epochs: the epoch in progress finishes and its
// weight update is kept. Whether training finishes or is cancelled, the weights are then saved if
// persistence is enabled, and the Network is returned along with a Report.
//
// If error checking is enabled and the error rises beyond the threshold, Run returns the Network
// as it is and an error whose cause is ErrDiverged. Nothing is saved in that case.
func (t *Trainer) Run(ctx context.Context, set *dataset.Set) (*nn.Network, Report, error) {
	var rep Report

	if set == nil || len(set.Train) == 0 {
		return nil, rep, errors.Errorf("Can't train, no training data")
	}

	net, err := t.Network()
	if err != nil {
		return nil, rep, err
	}

	var lastErr float64
	var haveLastErr bool

	for iter := 0; iter < t.cfg.Iterations; iter++ {
		if iter%t.cfg.ReportInterval == 0 {
			if err := t.report(net, set.Train, iter); err != nil {
				return net, rep, err
			}
		}

		if err := Epoch(net, set.Train, t.opt, t.cfg.LearningRate); err != nil {
			return net, rep, errors.Wrapf(err, "Training failed on iteration %d\n", iter)
		}
		rep.Iterations++

		if ctx.Err() != nil {
			rep.Interrupted = true
			break
		}

		if t.cfg.CheckError {
			cur, err := MeanCost(net, set.Train, t.cfg.Cost)
			if err != nil {
				return net, rep, errors.Wrapf(err, "Failed to check error on iteration %d\n", iter)
			}

			if haveLastErr && cur-lastErr > t.cfg.ErrThreshold {
				return net, rep, errors.Wrapf(ErrDiverged, "Iteration %d: error went from %v to %v\n", iter, lastErr, cur)
			}

			lastErr, haveLastErr = cur, true
		}
	}

	if rep.Error, err = MeanCost(net, set.Train, t.cfg.Cost); err != nil {
		return net, rep, err
	}

	if path := t.PersistencePath(); path != "" {
		if err := net.Save(path); err != nil {
			return net, rep, err
		}

		rep.Saved = path
		t.log.Printf("Saved network to %s", path)
	}

	return net, rep, nil
}

// RunFile reads the data file at path, with the input and output sizes of the Config's first and
// last layers, and calls Run on it. The returned Set includes the held-out test data and any
// rejected lines.
func (t *Trainer) RunFile(ctx context.Context, path string) (*nn.Network, *dataset.Set, Report, error) {
	ins, outs := t.cfg.Layers[0], t.cfg.Layers[len(t.cfg.Layers)-1]

	set, err := dataset.ReadFile(path, t.cfg.TestProportion, ins, outs)
	if err != nil {
		return nil, nil, Report{}, err
	}

	if len(set.Rejected) != 0 {
		t.log.Printf("Rejected %d of %d lines from %s", len(set.Rejected), len(set.Rejected)+set.Accepted, path)
	}

	net, rep, err := t.Run(ctx, set)
	return net, set, rep, err
}

// Test runs the Network against each Datum, logging the target and actual outputs, and returns
// the fraction of them for which every output rounds to its target. A Datum with the wrong number
// of targets gives a SizeMismatchError.
func (t *Trainer) Test(net *nn.Network, data []nn.Datum) (float64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	t.log.Println("Running network against test values...")

	var correct int
	for i, d := range data {
		outs, err := net.Evaluate(d.Inputs)
		if err != nil {
			return 0, errors.Wrapf(err, "Failed to test example %d\n", i)
		}

		if len(d.Outputs) != len(outs) {
			return 0, nn.SizeMismatchError{Expected: len(outs), Given: len(d.Outputs), Kind: "targets"}
		}

		t.log.Printf("%v .... %v", d.Outputs, outs)

		if nn.CorrectRound(outs, d.Outputs) {
			correct++
		}
	}

	return float64(correct) / float64(len(data)), nil
}
