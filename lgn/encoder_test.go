package lgn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/v1stdp/simphase"
)

func samplePatch(n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = float64(i%5) - 2
	}
	return p
}

func TestRatioRatesNormalizedAndNonNegative(t *testing.T) {
	patch := samplePatch(17 * 17)
	rates := RatioRates(patch, 1.0)
	assert.Len(t, rates, 2*17*17)
	max := 0.0
	for _, v := range rates {
		assert.GreaterOrEqual(t, v, 0.0)
		if v > max {
			max = v
		}
	}
	assert.InDelta(t, 1.0, max, 1e-9)
}

func TestRatioRatesAllZeroPatch(t *testing.T) {
	patch := make([]float64, 10)
	rates := RatioRates(patch, 1.0)
	for _, v := range rates {
		assert.Equal(t, 0.0, v)
	}
}

func TestMixWeightsThirds(t *testing.T) {
	mixvals := MixSchedule(30)
	w1, w2 := MixWeights(5, mixvals)
	assert.Greater(t, w1, 0.0)
	assert.Greater(t, w2, 0.0)

	w1, w2 = MixWeights(35, mixvals)
	assert.Equal(t, 0.0, w2)

	w1, w2 = MixWeights(65, mixvals)
	assert.Equal(t, 0.0, w1)
}

func TestGateSpontaneousAlwaysOff(t *testing.T) {
	assert.False(t, Gate(simphase.NewSpontaneous(), 0, 1000))
}

func TestGatePulseWindow(t *testing.T) {
	p := simphase.NewPulse(0, 50)
	assert.True(t, Gate(p, 10, 1000))
	assert.False(t, Gate(p, 60, 1000))
}

func TestGateRelaxationTail(t *testing.T) {
	p := simphase.NewLearning(0)
	assert.True(t, Gate(p, 0, 1000))
	assert.False(t, Gate(p, 999, 1000))
}

func TestComputeRatesOutOfRangeErrors(t *testing.T) {
	deck := Deck{Patches: [][]float64{samplePatch(17 * 17)}}
	_, err := ComputeRates(deck, simphase.NewLearning(5), 0, nil)
	require.Error(t, err)
}

func TestComputeRatesSpontaneousIsZero(t *testing.T) {
	deck := Deck{Patches: [][]float64{samplePatch(17 * 17)}}
	rates, err := ComputeRates(deck, simphase.NewSpontaneous(), 0, nil)
	require.NoError(t, err)
	for _, v := range rates {
		assert.Equal(t, 0.0, v)
	}
}
