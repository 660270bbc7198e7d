package simrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamDeterministic(t *testing.T) {
	a := NewStream(42)
	b := NewStream(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestStreamDiffersAcrossSeeds(t *testing.T) {
	a := NewStream(1)
	b := NewStream(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestPoissonMatrixNonNegative(t *testing.T) {
	s := NewStream(7)
	dst := make([]float64, 50)
	s.PoissonMatrix(dst, 5, 10, 1.8, 1.0, 1.0)
	for _, v := range dst {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestLateralDelayBounded(t *testing.T) {
	s := NewStream(3)
	for i := 0; i < 200; i++ {
		d := s.LateralDelay(5, 20)
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 20)
	}
}

func TestFeedforwardDelayBounded(t *testing.T) {
	s := NewStream(3)
	for i := 0; i < 200; i++ {
		d := s.FeedforwardDelay(20)
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 20)
	}
}

func TestLateralDelayConsumesExactlyOneDraw(t *testing.T) {
	a := NewStream(17)
	b := NewStream(17)

	a.LateralDelay(5, 20)
	b.Float64() // mirrors the single draw LateralDelay consumes

	assert.Equal(t, b.Float64(), a.Float64())
}

func TestFeedforwardDelayConsumesExactlyOneDraw(t *testing.T) {
	a := NewStream(17)
	b := NewStream(17)

	a.FeedforwardDelay(20)
	b.Float64() // mirrors the single draw FeedforwardDelay consumes

	assert.Equal(t, b.Float64(), a.Float64())
}

func TestALTDsShapeAndRange(t *testing.T) {
	s := NewStream(9)
	out := s.ALTDs(100, 0.00021, 0.0)
	assert.Len(t, out, 100)
	for _, v := range out {
		assert.InDelta(t, 0.00021, v, 1e-12)
	}
}

func TestBernoulliSaturates(t *testing.T) {
	s := NewStream(1)
	assert.True(t, s.Bernoulli(1.5))
	assert.False(t, s.Bernoulli(-0.1))
}
