package network

import (
	"math"

	"github.com/emer/v1stdp/config"
)

// StepInput is the per-neuron current computed upstream (feedforward +
// lateral + frozen noise) that drives one AdEx integration step.
type StepInput struct {
	I []float64 // total input current, length NBNEUR
}

// Firings holds the 0/1 output of one integration step.
type Firings []int

// Step advances the neuron state by one dt of AdEx dynamics and returns the
// firing vector. noSpike disables the exponential spike-onset term and spike
// detection entirely (every neuron behaves as a pure leaky integrator),
// matching the reference's NOSPIKE branch.
//
// Two details are preserved verbatim from the reference rather than
// "corrected": the input current I is added outside the dt/C factor (so I
// is not scaled by the integration timestep the way the leak and adaptation
// terms are), and vprevprev is assigned from vprev as a no-op (the apparent
// intent was a two-timestep-lagged trace that the original implementation
// never actually wired up).
func Step(s *NeuronState, in StepInput, noSpike bool) Firings {
	n := len(s.V)
	vprev := make([]float64, n)
	copy(vprev, s.V)
	vprevprev := vprev // no-op alias, preserved from the reference

	for nn := 0; nn < n; nn++ {
		v := s.V[nn]
		leak := -config.Gleak * (v - config.Eleak)
		var expTerm float64
		if !noSpike {
			expTerm = config.Gleak * config.DeltaT * math.Exp((v-s.VThresh[nn])/config.DeltaT)
		}
		s.V[nn] = v + (config.Dt/config.C)*(leak+expTerm+s.Z[nn]-s.Wadap[nn]) + in.I[nn]
	}

	for nn := 0; nn < n; nn++ {
		if s.IsSpiking[nn] > 0 {
			s.V[nn] = config.VPeak - 0.001
		}
		if s.IsSpiking[nn] == 1 {
			s.V[nn] = config.VReset
		}
	}

	for nn := 0; nn < n; nn++ {
		if s.IsSpiking[nn] == 1 {
			s.Z[nn] = config.Isp
			s.VThresh[nn] = config.VTMax
			s.Wadap[nn] += config.B
		}
	}

	for nn := 0; nn < n; nn++ {
		if s.IsSpiking[nn] > 0 {
			s.IsSpiking[nn]--
		}
		if s.V[nn] < config.MinV {
			s.V[nn] = config.MinV
		}
		s.Refractime[nn] -= config.Dt
		if s.Refractime[nn] < 0 {
			s.Refractime[nn] = 0
		}
	}

	firings := make(Firings, n)
	if !noSpike {
		for nn := 0; nn < n; nn++ {
			if s.V[nn] > config.VPeak {
				firings[nn] = 1
				s.V[nn] = config.VPeak
				s.Refractime[nn] = config.RefracTime
				s.IsSpiking[nn] = config.NBSpikingSteps
			}
		}
	}

	for nn := 0; nn < n; nn++ {
		s.Wadap[nn] += (config.Dt / config.TauAdap) * (config.A*(s.V[nn]-config.Eleak) - s.Wadap[nn])
		s.Z[nn] += (config.Dt / config.TauZ) * -s.Z[nn]
		s.VThresh[nn] += (config.Dt / config.TauVThresh) * (-s.VThresh[nn] + config.VTRest)

		depol := vprevprev[nn] - config.ThetaVLongTrace
		if depol < 0 {
			depol = 0
		}
		s.VLongTrace[nn] += (config.Dt / config.TauVLongTrace) * (depol - s.VLongTrace[nn])
		if s.VLongTrace[nn] < 0 {
			s.VLongTrace[nn] = 0
		}

		s.XPlastLat[nn] += float64(firings[nn])/config.TauXPlast - (config.Dt/config.TauXPlast)*s.XPlastLat[nn]

		s.VNeg[nn] += (config.Dt / config.TauVNeg) * (vprevprev[nn] - s.VNeg[nn])
		s.VPos[nn] += (config.Dt / config.TauVPos) * (vprevprev[nn] - s.VPos[nn])
	}

	return firings
}

// StepFFTrace updates the feedforward eligibility trace from this step's
// LGN firing vector. It is separated from Step because its length
// (FFRFSIZE) differs from the per-neuron state it otherwise parallels.
func StepFFTrace(s *NeuronState, lgnFirings []float64) {
	for i, f := range lgnFirings {
		s.XPlastFF[i] += f/config.TauXPlast - (config.Dt/config.TauXPlast)*s.XPlastFF[i]
	}
}
