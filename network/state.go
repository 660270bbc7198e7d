// Package network implements the fixed 120-neuron AdEx population: its
// feedforward and recurrent weight matrices, delay-buffered spike
// propagation, the per-step AdEx integration, and the voltage-dependent
// plasticity rule that updates the weights during learning.
package network

import (
	"github.com/emer/v1stdp/config"
)

// NeuronState holds every per-neuron variable carried across simulation
// steps within a presentation: membrane dynamics, adaptation, and the
// plasticity traces. All slices are length config.NBNEUR (FF traces only
// span config.FFRFSIZE, see XPlastFF).
type NeuronState struct {
	V         []float64 // membrane potential, mV
	VThresh   []float64 // adaptive spike threshold
	Wadap     []float64 // adaptation current
	Z         []float64 // spike-triggered current
	Refractime []float64
	IsSpiking []int // counts down from NBSpikingSteps while clamped

	VNeg       []float64 // low-pass voltage trace for LTD
	VPos       []float64 // low-pass voltage trace for LTP
	VLongTrace []float64 // slow depolarization trace gating LTD magnitude

	XPlastLat []float64 // presynaptic eligibility trace, lateral synapses
	XPlastFF  []float64 // presynaptic eligibility trace, feedforward synapses
}

// NewNeuronState builds the initial state of a run: v at the resting
// potential, vthresh at VTRest, and every other variable (vneg, vpos,
// vlongtrace included) at zero. Callers seed vneg/vpos/vlongtrace with
// NewResting.
func NewNeuronState() *NeuronState {
	n := config.NBNEUR
	s := &NeuronState{
		V:          make([]float64, n),
		VThresh:    make([]float64, n),
		Wadap:      make([]float64, n),
		Z:          make([]float64, n),
		Refractime: make([]float64, n),
		IsSpiking:  make([]int, n),
		VNeg:       make([]float64, n),
		VPos:       make([]float64, n),
		VLongTrace: make([]float64, n),
		XPlastLat:  make([]float64, n),
		XPlastFF:   make([]float64, config.FFRFSIZE),
	}
	s.ResetForPresentation()
	for i := 0; i < n; i++ {
		s.VThresh[i] = config.VTRest
	}
	return s
}

// ResetForPresentation restores the variable the reference resets at the
// top of every presentation: v, to the resting potential. Nothing else is
// reset here: vthresh, wadap, z, the spiking/refractory counters,
// vneg/vpos/vlongtrace and the plasticity traces persist across
// presentations.
func (s *NeuronState) ResetForPresentation() {
	for i := range s.V {
		s.V[i] = config.RestingMembranePotential
	}
}

// NewResting seeds vneg, vpos and the derived vlongtrace at the resting
// potential, following the reference's one-time initialization (not
// repeated per presentation).
func (s *NeuronState) NewResting() {
	for i := range s.VNeg {
		s.VNeg[i] = config.RestingMembranePotential
		s.VPos[i] = config.RestingMembranePotential
		d := config.RestingMembranePotential - config.ThetaVLongTrace
		if d < 0 {
			d = 0
		}
		s.VLongTrace[i] = d
	}
}
