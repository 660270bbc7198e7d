package network

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/simrand"
)

func TestNewRandomWeightsSignBlocks(t *testing.T) {
	m := config.DefaultModel()
	w := NewRandomWeights(simrand.NewStream(1), m)

	for ni := 0; ni < config.NBNEUR; ni++ {
		assert.Equal(t, 0.0, w.W.At(ni, ni))
	}

	for ni := 0; ni < config.NBE; ni++ {
		for nj := config.NBE; nj < config.NBNEUR; nj++ {
			assert.LessOrEqual(t, w.W.At(ni, nj), 0.0)
		}
	}
	for ni := config.NBE; ni < config.NBNEUR; ni++ {
		for nj := 0; nj < config.NBE; nj++ {
			assert.GreaterOrEqual(t, w.W.At(ni, nj), 0.0)
		}
	}
	for ni := config.NBE; ni < config.NBNEUR; ni++ {
		for nj := config.NBE; nj < config.NBNEUR; nj++ {
			if ni == nj {
				continue
			}
			assert.LessOrEqual(t, w.W.At(ni, nj), 0.0)
		}
	}
}

func TestNewRandomWeightsWFFInhibitoryRowsZero(t *testing.T) {
	m := config.DefaultModel()
	w := NewRandomWeights(simrand.NewStream(2), m)
	for ni := config.NBE; ni < config.NBNEUR; ni++ {
		for nj := 0; nj < config.FFRFSIZE; nj++ {
			assert.Equal(t, 0.0, w.WFF.At(ni, nj))
		}
	}
}

func TestNewRandomWeightsWFFBoundedByMaxW(t *testing.T) {
	m := config.DefaultModel()
	w := NewRandomWeights(simrand.NewStream(6), m)
	for ni := 0; ni < config.NBE; ni++ {
		for nj := 0; nj < config.FFRFSIZE; nj++ {
			v := w.WFF.At(ni, nj)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, config.MaxW)
		}
	}
}

func TestNoInhZeroesInhibitoryColumns(t *testing.T) {
	m := config.DefaultModel()
	m.NoInh = true
	w := NewRandomWeights(simrand.NewStream(8), m)
	for ni := 0; ni < config.NBNEUR; ni++ {
		for nj := config.NBE; nj < config.NBNEUR; nj++ {
			assert.Equal(t, 0.0, w.W.At(ni, nj))
		}
	}
}

func TestDeterministicGivenSameSeed(t *testing.T) {
	m := config.DefaultModel()
	a := NewRandomWeights(simrand.NewStream(99), m)
	b := NewRandomWeights(simrand.NewStream(99), m)
	assert.True(t, mat_equal(a.W, b.W))
	assert.True(t, mat_equal(a.WFF, b.WFF))
}

func mat_equal(a, b interface {
	At(i, j int) float64
	Dims() (int, int)
}) bool {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		return false
	}
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}
	return true
}
