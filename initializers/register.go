package initializers

import (
	"math"

	nn "github.com/codebox/neural-net"
	"github.com/pkg/errors"
)

// default values, because 'default' is a keyword
var defaultValue map[string]float64

func init() {
	defaultValue = map[string]float64{
		"uniform-lower": -1,
		"uniform-upper": 1,
		"normal-mean":   0,
		"normal-sd":     1,
	}

	nn.SetDefaultInitializer(Uniform())
}

// SetDefault sets one of the default values used by the RNGs in this package: "uniform-lower",
// "uniform-upper", "normal-mean", or "normal-sd". Only RNGs created afterwards are affected.
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}

// ByName returns a new Initializer drawing from the global source: "uniform" for Uniform(), or
// "normal" for Random(Normal()). The second return is false if the name is unknown.
func ByName(name string) (nn.Initializer, bool) {
	switch name {
	case "uniform":
		return Uniform(), true
	case "normal":
		return Random(Normal()), true
	}

	return nil, false
}
