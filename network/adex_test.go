package network

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emer/v1stdp/config"
)

func TestStepNoInputStaysNearRest(t *testing.T) {
	s := NewNeuronState()
	s.NewResting()
	in := StepInput{I: make([]float64, config.NBNEUR)}
	for i := 0; i < 50; i++ {
		Step(s, in, false)
	}
	for _, v := range s.V {
		assert.GreaterOrEqual(t, v, config.MinV)
		assert.Less(t, v, 0.0)
	}
}

func TestStepRespectsMinV(t *testing.T) {
	s := NewNeuronState()
	s.NewResting()
	in := StepInput{I: make([]float64, config.NBNEUR)}
	for i := range in.I {
		in.I[i] = -1000
	}
	Step(s, in, false)
	for _, v := range s.V {
		assert.GreaterOrEqual(t, v, config.MinV)
	}
}

func TestStepNoSpikeNeverFires(t *testing.T) {
	s := NewNeuronState()
	s.NewResting()
	in := StepInput{I: make([]float64, config.NBNEUR)}
	for i := range in.I {
		in.I[i] = 50
	}
	for i := 0; i < 200; i++ {
		firings := Step(s, in, true)
		for _, f := range firings {
			assert.Equal(t, 0, f)
		}
	}
}

func TestStepCanFireUnderStrongDrive(t *testing.T) {
	s := NewNeuronState()
	s.NewResting()
	in := StepInput{I: make([]float64, config.NBNEUR)}
	for i := range in.I {
		in.I[i] = 40
	}
	fired := false
	for i := 0; i < 500; i++ {
		firings := Step(s, in, false)
		for _, f := range firings {
			if f == 1 {
				fired = true
			}
		}
	}
	assert.True(t, fired)
}

func TestVLongTraceStaysNonNegative(t *testing.T) {
	s := NewNeuronState()
	s.NewResting()
	in := StepInput{I: make([]float64, config.NBNEUR)}
	for i := 0; i < 100; i++ {
		Step(s, in, false)
		for _, v := range s.VLongTrace {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
}
