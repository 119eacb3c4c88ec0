package initializers

import "math/rand"

// RNG needs no explanation
type RNG interface {
	Gen() float64
}

// source is shared by the RNGs so that they can draw either from the global source in math/rand
// or from one given by the caller
type source struct {
	r *rand.Rand
}

func (s source) float64() float64 {
	if s.r == nil {
		return rand.Float64()
	}

	return s.r.Float64()
}

func (s source) normFloat64() float64 {
	if s.r == nil {
		return rand.NormFloat64()
	}

	return s.r.NormFloat64()
}

type uniform struct {
	source
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread between its bounds, which can be set
// by Bounds. The default bounds, [-1, 1], can be changed with SetDefault for "uniform-lower" and
// "uniform-upper".
//
// The result of Uniform also implements neuralnet.Initializer, and is the default Initializer.
func Uniform() *uniform {
	return &uniform{lower: defaultValue["uniform-lower"], upper: defaultValue["uniform-upper"]}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Source makes the RNG draw from r instead of the global source, returning it. This allows for
// reproducible weights.
func (u *uniform) Source(r *rand.Rand) *uniform {
	u.r = r
	return u
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	return u.float64()*(u.upper-u.lower) + u.lower
}

// Set is the implementation of neuralnet.Initializer
func (u *uniform) Set(ws []float64) {
	for i := range ws {
		ws[i] = u.Gen()
	}
}

type normal struct {
	source
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution. The center
// and standard deviation can be set by Mean and SD, respectively.
//
// Default centers and standard deviations can be set by SetDefault for
// "normal-mean" and "normal-sd".
func Normal() *normal {
	return &normal{µ: defaultValue["normal-mean"], σ: defaultValue["normal-sd"]}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// Source makes the RNG draw from r instead of the global source, returning it.
func (n *normal) Source(r *rand.Rand) *normal {
	n.r = r
	return n
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	return n.normFloat64()*n.σ + n.µ
}
