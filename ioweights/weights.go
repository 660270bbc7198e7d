// Package ioweights saves and loads the engine's weight matrices in the
// reference's binary and text formats.
package ioweights

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// SaveBinary writes m to path as raw little-endian IEEE-754 doubles, column-
// major, with no header, matching the reference's saveWeights.
func SaveBinary(path string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioweights: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	rows, cols := m.Dims()
	buf := make([]byte, 8)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(m.At(r, c)))
			if _, err := w.Write(buf); err != nil {
				return fmt.Errorf("ioweights: writing %s: %w", path, err)
			}
		}
	}
	return w.Flush()
}

// LoadBinary reads a matrix previously written by SaveBinary with the given
// shape.
func LoadBinary(path string, rows, cols int) (*mat.Dense, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ioweights: reading %s: %w", path, err)
	}
	want := rows * cols * 8
	if len(raw) != want {
		return nil, fmt.Errorf("ioweights: %s has %d bytes, want %d for a %dx%d matrix", path, len(raw), want, rows, cols)
	}

	m := mat.NewDense(rows, cols, nil)
	idx := 0
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			bits := binary.LittleEndian.Uint64(raw[idx : idx+8])
			m.Set(r, c, math.Float64frombits(bits))
			idx += 8
		}
	}
	return m, nil
}

// SaveText writes m as whitespace-separated rows, one row per line,
// preceded by a blank line, matching the reference's plain ostream dump of
// an Eigen matrix.
func SaveText(path string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioweights: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	rows, cols := m.Dims()
	fmt.Fprintln(w)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%g", m.At(r, c))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
