// Command train trains a network on a data file and reports how well it does on the held-out
// test data.
//
// Each line of the data file holds one example, as comma-separated inputs, then a ':', then
// comma-separated outputs. For example:
//	train -data xor.txt -layers 2,3,1 -iterations 20000 -persist xor
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	nn "github.com/codebox/neural-net"
	_ "github.com/codebox/neural-net/activations"
	"github.com/codebox/neural-net/costfuncs"
	"github.com/codebox/neural-net/initializers"
	"github.com/codebox/neural-net/trainer"
	"github.com/pkg/errors"
)

func parseLayers(str string) ([]int, error) {
	strs := strings.Split(str, ",")
	sizes := make([]int, len(strs))
	for i, s := range strs {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Errorf("Layer %d (%q) is not an integer", i, s)
		}

		sizes[i] = n
	}

	return sizes, nil
}

func main() {
	dataPath := flag.String("data", "", "File containing the training and test data")
	layers := flag.String("layers", "", "Comma-separated layer sizes, from input to output (at least 3)")
	iterations := flag.Int("iterations", trainer.DefaultIterations, "Maximum number of training epochs")
	rate := flag.Float64("rate", trainer.DefaultLearningRate, "Learning rate")
	lambda := flag.Float64("lambda", 0, "L2 regularization coefficient (0 = none)")
	actName := flag.String("activation", "logistic", "Activation function of the hidden and output nodes")
	initName := flag.String("init", "uniform", "Distribution of the starting weights: uniform or normal")
	costName := flag.String("cost", "euclidean", "Cost function used for reports and error checking")
	test := flag.Float64("test", trainer.DefaultTestProportion, "Fraction of the data held out for testing")
	persist := flag.String("persist", "", "Load weights from, and save them to, <persist>"+nn.FileExtension)
	threshold := flag.Float64("threshold", -1, "Stop if the error rises by more than this between epochs (< 0 = never)")
	report := flag.Int("report", trainer.DefaultReportInterval, "Number of epochs between progress reports")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.Ltime)

	if *dataPath == "" || *layers == "" {
		flag.Usage()
		os.Exit(2)
	}

	sizes, err := parseLayers(*layers)
	if err != nil {
		logger.Fatalf("Bad -layers: %v", err)
	}

	act, ok := nn.ActivationByName(*actName)
	if !ok {
		names := nn.ActivationNames()
		sort.Strings(names)
		logger.Fatalf("Unknown activation %q, must be one of %v", *actName, names)
	}

	initer, ok := initializers.ByName(*initName)
	if !ok {
		logger.Fatalf("Unknown initializer %q, must be uniform or normal", *initName)
	}

	cf, ok := costfuncs.ByName(*costName)
	if !ok {
		logger.Fatalf("Unknown cost function %q", *costName)
	}

	cfg := trainer.DefaultConfig(sizes...)
	cfg.Iterations = *iterations
	cfg.LearningRate = *rate
	cfg.Lambda = *lambda
	cfg.Activation = act
	cfg.Cost = cf
	cfg.Init = initer
	cfg.TestProportion = *test
	cfg.PersistenceID = *persist
	cfg.CheckError = *threshold >= 0
	cfg.ErrThreshold = *threshold
	cfg.ReportInterval = *report
	cfg.Logger = logger

	t, err := trainer.New(cfg)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Press Ctrl-C at any time to stop working and show results")

	net, set, rep, err := t.RunFile(ctx, *dataPath)
	if err != nil {
		if errors.Cause(err) == trainer.ErrDiverged {
			logger.Fatalf("%v", trainer.ErrDiverged)
		}

		logger.Fatalf("%+v", err)
	}

	// a second Ctrl-C exits immediately
	stop()

	if rep.Interrupted {
		logger.Printf("Interrupted after %d iterations", rep.Iterations)
	}
	logger.Printf("Training finished after %d iterations, error %v", rep.Iterations, rep.Error)

	if len(set.Test) == 0 {
		logger.Println("No test data")
		return
	}

	frac, err := t.Test(net, set.Test)
	if err != nil {
		logger.Fatalf("%+v", err)
	}

	logger.Printf("Result: %.1f%% of %d test examples correct", frac*100, len(set.Test))
}
