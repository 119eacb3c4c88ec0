package neuralnet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrTooFewLayers  = Error{"Network must have at least 3 layers"}
	ErrNoInitializer = Error{"No Initializer given and no default set; import \"initializers\""}

	ErrRegisterWrongName = Error{"Name is already registered"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// LayerSizeError is returned by New when one of the requested layers has fewer than one Node.
type LayerSizeError struct {
	Index, Size int
}

func (err LayerSizeError) Error() string {
	return fmt.Sprintf("Layer %d must have size >= 1 (%d)", err.Index, err.Size)
}

// SizeMismatchError is returned when a slice of values does not have the length required by the
// Network. Kind is one of "inputs", "targets", or "weights".
type SizeMismatchError struct {
	Expected, Given int
	Kind            string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Wrong number of %s, got %d but expected %d", err.Kind, err.Given, err.Expected)
}

// IsConfigError returns whether or not the cause of err is a problem with the requested topology
// of a Network, as returned by New.
func IsConfigError(err error) bool {
	switch e := errors.Cause(err).(type) {
	case LayerSizeError, NilArgError:
		return true
	case Error:
		return e == ErrTooFewLayers || e == ErrNoInitializer
	}

	return false
}

// IsSizeMismatch returns whether or not the cause of err is a SizeMismatchError.
func IsSizeMismatch(err error) bool {
	_, ok := errors.Cause(err).(SizeMismatchError)
	return ok
}
