package neuralnet

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WeightSeparator separates the weights in a saved Network
const WeightSeparator string = ","

// FileExtension is appended to a persistence id to get the name of the file the weights are
// stored in
const FileExtension string = ".net"

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteWeights writes the weights to w as text, separated by WeightSeparator. Each weight is
// written with the fewest digits that parse back to exactly the same value.
func WriteWeights(w io.Writer, ws []float64) error {
	bw := bufio.NewWriter(w)
	for i, weight := range ws {
		if i != 0 {
			if _, err := bw.WriteString(WeightSeparator); err != nil {
				return errors.Wrapf(err, "Can't write weights, failed on weight %d\n", i)
			}
		}

		if _, err := bw.WriteString(ftoa(weight)); err != nil {
			return errors.Wrapf(err, "Can't write weights, failed on weight %d\n", i)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "Can't write weights, flush failed\n")
	}

	return nil
}

// ReadWeights reads weights written by WriteWeights. Whitespace surrounding each weight is
// ignored. An empty input gives no weights.
func ReadWeights(r io.Reader) ([]float64, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read weights\n")
	}

	str := strings.TrimSpace(string(bs))
	if str == "" {
		return []float64{}, nil
	}

	strs := strings.Split(str, WeightSeparator)
	ws := make([]float64, len(strs))
	for i, s := range strs {
		if ws[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return nil, errors.Errorf("Can't read weights, weight %d (%q) is not a number", i, s)
		}
	}

	return ws, nil
}

// Save writes the weights of the Network to the file at path, creating or truncating it. Only
// the weights are stored; the topology must be recreated with New before calling Load.
func (net *Network) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't create file %s\n", path)
	}

	if err = WriteWeights(f, net.Weights()); err != nil {
		f.Close()
		return errors.Wrapf(err, "Can't save network to %s\n", path)
	}

	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't close file %s\n", path)
	}

	return nil
}

// Load replaces the weights of the Network with those stored at path by Save. The accumulated
// gradients are cleared, as with SetWeights.
//
// If the file holds a different number of weights than the Network has Axons, Load returns an
// error (for which IsSizeMismatch is true) and the Network is left unchanged.
func (net *Network) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "Can't load network, couldn't open file %s\n", path)
	}
	defer f.Close()

	ws, err := ReadWeights(f)
	if err != nil {
		return errors.Wrapf(err, "Can't load network from %s\n", path)
	}

	if err = net.SetWeights(ws); err != nil {
		return errors.Wrapf(err, "Can't load network from %s, topology does not match\n", path)
	}

	return nil
}

// Exists returns whether or not there is a file at path that could be given to Load.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
