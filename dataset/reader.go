// Package dataset reads training data from text, one example per line, and splits it into
// training and testing data.
//
// Each line has the form:
//	in1,in2,...:out1,out2,...
// Lines beginning with '#' are comments, and blank lines are ignored. Lines that cannot be used
// are collected rather than causing the whole read to fail.
package dataset

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	nn "github.com/codebox/neural-net"
	"github.com/pkg/errors"
)

const (
	commentPrefix  string = "#"
	fieldSeparator string = ":"
	valueSeparator string = ","
)

// Set is the result of reading a source of examples.
type Set struct {
	// Train and Test hold the accepted examples, in the order they were read. Train is the first
	// round(Accepted * (1 - testProportion)) of them; Test is the rest.
	Train, Test []nn.Datum

	// Accepted is the number of examples that were read successfully
	Accepted int

	// Rejected holds every non-comment line that could not be used, trimmed of surrounding
	// whitespace
	Rejected []string
}

// ParseLine converts a single line to a Datum. It returns an error if the line does not have
// exactly one ':', if any value is not a number, or if the number of inputs or outputs is not
// what is required.
func ParseLine(line string, inputs, outputs int) (nn.Datum, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != 2 {
		return nn.Datum{}, errors.Errorf("Line must have exactly one %q (has %d)", fieldSeparator, len(parts)-1)
	}

	ins, err := parseValues(parts[0])
	if err != nil {
		return nn.Datum{}, errors.Wrapf(err, "Bad inputs\n")
	}

	outs, err := parseValues(parts[1])
	if err != nil {
		return nn.Datum{}, errors.Wrapf(err, "Bad outputs\n")
	}

	if len(ins) != inputs {
		return nn.Datum{}, nn.SizeMismatchError{Expected: inputs, Given: len(ins), Kind: "inputs"}
	} else if len(outs) != outputs {
		return nn.Datum{}, nn.SizeMismatchError{Expected: outputs, Given: len(outs), Kind: "targets"}
	}

	return nn.Datum{Inputs: ins, Outputs: outs}, nil
}

func parseValues(str string) ([]float64, error) {
	strs := strings.Split(str, valueSeparator)
	vs := make([]float64, len(strs))
	for i, s := range strs {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, errors.Errorf("Value %d (%q) is not a number", i, s)
		}

		vs[i] = v
	}

	return vs, nil
}

// Read reads every line from r. testProportion is the fraction of the accepted examples, taken
// from the end, that are held out for testing; it must be in the range [0, 1].
//
// Read only returns an error if testProportion is out of range or r fails. Unusable lines are
// listed in Set.Rejected.
func Read(r io.Reader, testProportion float64, inputs, outputs int) (*Set, error) {
	if !(testProportion >= 0 && testProportion <= 1) {
		return nil, errors.Errorf("Test proportion must be in the range [0, 1] (%v)", testProportion)
	}

	var data []nn.Datum
	set := new(Set)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		d, err := ParseLine(line, inputs, outputs)
		if err != nil {
			set.Rejected = append(set.Rejected, line)
			continue
		}

		data = append(data, d)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "Failed to read data\n")
	}

	set.Accepted = len(data)

	t := int(math.Round(float64(set.Accepted) * (1 - testProportion)))
	set.Train = data[:t:t]
	set.Test = data[t:]

	return set, nil
}

// ReadFile opens the file at path and calls Read on it.
func ReadFile(path string, testProportion float64, inputs, outputs int) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read data, couldn't open file %s\n", path)
	}
	defer f.Close()

	set, err := Read(f, testProportion, inputs, outputs)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read data from %s\n", path)
	}

	return set, nil
}
