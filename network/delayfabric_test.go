package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/simrand"
)

func TestRingBufferDelaysArrival(t *testing.T) {
	r := newRingBuffer(3)
	assert.Equal(t, 0, r.Front())
	r.Push(1)
	assert.Equal(t, 0, r.Front())
	r.Push(0)
	assert.Equal(t, 0, r.Front())
	r.Push(0)
	assert.Equal(t, 1, r.Front())
}

func TestDelayFabricDeterministic(t *testing.T) {
	m := config.DefaultModel()
	a := NewDelayFabric(simrand.NewStream(11), m)
	b := NewDelayFabric(simrand.NewStream(11), m)
	for ni := 0; ni < config.NBNEUR; ni++ {
		assert.Equal(t, a.delays[ni], b.delays[ni])
	}
}

func TestDelayFabricNoAutapseStillAllocated(t *testing.T) {
	m := config.DefaultModel()
	d := NewDelayFabric(simrand.NewStream(1), m)
	assert.Equal(t, config.NBNEUR, len(d.delays))
	for ni := 0; ni < config.NBNEUR; ni++ {
		assert.Equal(t, config.NBNEUR, len(d.delays[ni]))
	}
}

func TestPushFiringsPropagatesAfterDelay(t *testing.T) {
	m := config.DefaultModel()
	d := NewDelayFabric(simrand.NewStream(5), m)
	delay := d.delays[0][1]
	firings := make([]int, config.NBNEUR)
	firings[1] = 1
	d.PushFirings(firings) // push 1 of 1..delay total pushes
	firings[1] = 0
	for i := 1; i < delay; i++ {
		assert.Equal(t, 0, d.Front(0, 1))
		d.PushFirings(firings)
	}
	assert.Equal(t, 1, d.Front(0, 1))
}

func TestDelayFabricResetZeroesInFlightSpikes(t *testing.T) {
	m := config.DefaultModel()
	d := NewDelayFabric(simrand.NewStream(5), m)
	delay := d.delays[0][1]
	firings := make([]int, config.NBNEUR)
	firings[1] = 1
	for i := 0; i < delay; i++ {
		d.PushFirings(firings)
	}
	require.Equal(t, 1, d.Front(0, 1))

	d.Reset()
	assert.Equal(t, delay, len(d.rings[0][1].buf))
	for ni := 0; ni < config.NBNEUR; ni++ {
		for nj := 0; nj < config.NBNEUR; nj++ {
			assert.Equal(t, 0, d.Front(ni, nj))
		}
	}
}
