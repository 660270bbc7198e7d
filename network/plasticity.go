package network

import (
	"github.com/emer/v1stdp/config"
)

// PlasticityParams bundles the run-level knobs that scale the learning
// rule: the per-neuron LTD jitter (ALTDs) and the model's wpenscale /
// altpmult coefficients.
type PlasticityParams struct {
	ALTDs     []float64 // per-neuron LTD rate jitter, length NBNEUR
	WPenScale float64
	AltPMult  float64
}

// Apply runs one step of voltage-dependent STDP against the feedforward and
// lateral weight matrices, following the reference's plasticity block: a
// depression term driven by vlongtrace^2 and the depolarization of vneg
// above THETAVNEG, and a potentiation term driven by the depolarization of
// vpos and the instantaneous voltage above THETAVPOS. lgnFirings gates
// which feedforward synapses are eligible for LTD this step (the LGN source
// must have just fired); lateralSpikes[target][source] is the matrix of
// lateral spikes that arrived at each target this step (after axonal
// delay), gating the lateral LTD the same way. xplast on the presynaptic
// side supplies the eligibility for LTP.
//
// The wpenscale sign convention is preserved verbatim from the reference:
// WPenScale multiplies a (1 + w*WPenScale) factor inside an LTD term that
// is itself already negative, rather than appearing as a separate penalty
// with its own sign.
//
// Apply does not clamp w/wff itself: clamping runs unconditionally once per
// step regardless of whether plasticity fired, so the caller is responsible
// for calling Weights.Clamp after Apply.
func (p PlasticityParams) Apply(s *NeuronState, w *Weights, lgnFirings []float64, lateralSpikes [][]int) {
	n := config.NBNEUR
	ltd := make([]float64, n)
	ltp := make([]float64, n)
	for nn := 0; nn < n; nn++ {
		vnegAboveTheta := s.VNeg[nn] - config.ThetaVNeg
		if vnegAboveTheta < 0 {
			vnegAboveTheta = 0
		}
		ltd[nn] = config.Dt * (-p.ALTDs[nn] / config.VRef2) * s.VLongTrace[nn] * s.VLongTrace[nn] * vnegAboveTheta

		vposAboveTheta := s.VPos[nn] - config.ThetaVNeg
		if vposAboveTheta < 0 {
			vposAboveTheta = 0
		}
		vAboveTheta := s.V[nn] - config.ThetaVPos
		if vAboveTheta < 0 {
			vAboveTheta = 0
		}
		ltp[nn] = config.Dt * config.ALTP * p.AltPMult * vposAboveTheta * vAboveTheta
	}

	for nn := 0; nn < config.NBE; nn++ {
		for syn := 0; syn < config.FFRFSIZE; syn++ {
			w.WFF.Set(nn, syn, w.WFF.At(nn, syn)+ltp[nn]*s.XPlastFF[syn])
		}
	}
	for syn := 0; syn < config.FFRFSIZE; syn++ {
		if lgnFirings[syn] <= 1e-10 {
			continue
		}
		for nn := 0; nn < config.NBE; nn++ {
			v := w.WFF.At(nn, syn)
			w.WFF.Set(nn, syn, v+ltd[nn]*(1.0+v*p.WPenScale))
		}
	}

	for nn := 0; nn < config.NBE; nn++ {
		for syn := 0; syn < config.NBE; syn++ {
			w.W.Set(nn, syn, w.W.At(nn, syn)+ltp[nn]*s.XPlastLat[syn])
		}
	}
	for nn := 0; nn < config.NBE; nn++ {
		for syn := 0; syn < config.NBE; syn++ {
			if lateralSpikes[nn][syn] == 0 {
				continue
			}
			v := w.W.At(nn, syn)
			w.W.Set(nn, syn, v+ltd[nn]*(1.0+v*p.WPenScale))
		}
	}
}
