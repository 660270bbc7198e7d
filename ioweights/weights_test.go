package ioweights

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSaveLoadBinaryRoundtrips(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	path := filepath.Join(t.TempDir(), "w.dat")
	require.NoError(t, SaveBinary(path, m))

	got, err := LoadBinary(path, 3, 4)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, got))
}

func TestLoadBinaryWrongSizeErrors(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	path := filepath.Join(t.TempDir(), "w.dat")
	require.NoError(t, SaveBinary(path, m))

	_, err := LoadBinary(path, 3, 3)
	assert.Error(t, err)
}

func TestSaveTextWritesReadableFile(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1.5, -2.5, 3, 4})
	path := filepath.Join(t.TempDir(), "w.txt")
	require.NoError(t, SaveText(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1.5")
	assert.Contains(t, string(data), "-2.5")
}
