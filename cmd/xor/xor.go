package main

import (
	nn "github.com/codebox/neural-net"
	"github.com/codebox/neural-net/activations"
	"github.com/codebox/neural-net/costfuncs"
	"github.com/codebox/neural-net/initializers"
	"github.com/codebox/neural-net/optimizers"
	"github.com/codebox/neural-net/trainer"

	"fmt"
)

const (
	statusFrequency int = 500

	// main hyperparameters
	learningRate  float64 = 2.
	maxIterations int     = 5000

	// where to save/load the network
	path string = "xor" + nn.FileExtension
)

var dataset = []nn.Datum{
	{Inputs: []float64{0, 0}, Outputs: []float64{0}},
	{Inputs: []float64{0, 1}, Outputs: []float64{1}},
	{Inputs: []float64{1, 0}, Outputs: []float64{1}},
	{Inputs: []float64{1, 1}, Outputs: []float64{0}},
}

func setup() *nn.Network {
	fmt.Println("Setting up network...")
	net, err := nn.New(nn.Config{
		Sizes:      []int{2, 2, 1},
		Activation: activations.Logistic(),
		Init:       initializers.Uniform(),
	})
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")

	return net
}

func train(net *nn.Network) {
	opt := optimizers.GradientDescent()
	cf := costfuncs.MSE()

	fmt.Println("Starting training...")
	fmt.Println("Iteration, Cost")

	for i := 0; i <= maxIterations; i++ {
		if i%statusFrequency == 0 {
			cost, err := trainer.MeanCost(net, dataset, cf)
			if err != nil {
				panic(err.Error())
			}

			fmt.Printf("%d, %v\n", i, cost)
		}

		if i == maxIterations {
			break
		}

		if err := trainer.Epoch(net, dataset, opt, learningRate); err != nil {
			panic(err.Error())
		}
	}

	fmt.Println("Done training!")
}

func test(net *nn.Network) {
	fmt.Println("Testing...")

	var correct int
	for _, d := range dataset {
		outs, err := net.Evaluate(d.Inputs)
		if err != nil {
			panic(err.Error())
		}

		fmt.Printf("%v -> %v (want %v)\n", d.Inputs, outs, d.Outputs)
		if nn.CorrectRound(outs, d.Outputs) {
			correct++
		}
	}

	fmt.Printf("%d/%d correct\n", correct, len(dataset))
}

func save(net *nn.Network) {
	fmt.Println("Saving...")
	if err := net.Save(path); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")
}

func load() *nn.Network {
	fmt.Println("Loading...")
	net := setup()
	if err := net.Load(path); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")

	return net
}

func main() {
	net := setup()

	train(net)
	test(net)
	save(net)
	net = load()
	test(net)
}
