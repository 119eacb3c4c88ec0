package initializers

type random struct {
	RNG
}

// Random returns an Initializer that uses the provided RNG to generate the weights. There is no
// scaling beyond that of the RNG.
func Random(g RNG) random {
	return random{g}
}

// Set is the implementation of neuralnet.Initializer
func (r random) Set(ws []float64) {
	for i := 0; i < len(ws); i++ {
		ws[i] = r.Gen()
	}
}

type constant float64

// Constant returns an Initializer that sets every weight to the same value. Networks that start
// with equal weights can never break their symmetry, so this is only useful for testing.
func Constant(w float64) constant {
	return constant(w)
}

// Set is the implementation of neuralnet.Initializer
func (c constant) Set(ws []float64) {
	for i := range ws {
		ws[i] = float64(c)
	}
}
