// Package neuralnet provides a fully connected feed-forward neural network, trained by batch
// gradient descent. Rather than being expressed as matrix operations, the Network is an explicit
// graph of Nodes joined by weighted Axons, and both propagation steps are recursive walks of that
// graph.
//
// Creating Networks
//
// A Network is built from the sizes of its layers and an Activation:
//
//		net, err := nn.New(nn.Config{
//			Sizes:      []int{2, 3, 1},
//			Activation: activations.Logistic(),
//			Penalty:    penalties.L2(0.001),
//		})
//
// For brevity, neuralnet is abbreviated 'nn'.
//
// There must be at least three layers: one of input Nodes, one or more of hidden Nodes, and one of
// output Nodes. Every layer except the last is given an extra bias Node, whose activation is
// always 1. Every Node is then joined to every Node in the following layer that receives input.
//
// Weights are set by an Initializer, which can be given in the Config or set by default with
// SetDefaultInitializer. Importing the subpackage "initializers" sets the default to independent
// uniform values on [-1, 1].
//
// Activations, Penalties, Initializers, CostFunctions, and Optimizers each have a subpackage of
// the same name, holding the provided implementations.
//
// Training and Testing
//
// Training is full-batch. For each epoch, every example is passed to Train, which adds one
// gradient contribution to every Axon. The weights are then updated once:
//
//		for _, d := range data {
//			if err := net.TrainDatum(d); err != nil {
//				return err
//			}
//		}
//
//		ws := net.Weights()
//		ds, _ := net.Derivatives(len(data))
//		optimizers.GradientDescent().Run(ws, ds, learningRate)
//		net.SetWeights(ws)
//
// SetWeights also clears the accumulated gradients, ready for the next epoch. The subpackage
// "trainer" wraps this loop with reporting, cancellation, divergence detection, and persistence.
//
// Outputs for a set of inputs are given by Evaluate, which does not change the weights.
//
// Saving and Loading
//
// Only the weights are stored, as a single line of text in canonical order: layers in order,
// Nodes within each layer in order, and each Node's outgoing Axons in order.
//
//		func (net *Network) Save(path string) error
//		func (net *Network) Load(path string) error
//
// Load requires a Network with the same topology as the one that was saved.
package neuralnet
