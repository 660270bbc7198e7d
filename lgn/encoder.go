// Package lgn turns an image patch into the rectified, log-compressed,
// L-infinity-normalized ON/OFF rate vector that drives the feedforward
// spike generator, the way the LGN relay does in the reference model.
package lgn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/simphase"
	"github.com/emer/v1stdp/simrand"
)

// Rates holds the per-dt expected-spike-count vector for one stimulus,
// already scaled by InputMult and dt: Bernoulli(Rates[i]) at each timestep
// reproduces the firing process the reference drives off lgnrates.
type Rates []float64

// RatioRates computes the rectified log-ratio encoding of one patch under
// the given gain (mod): ON channel from the positive part of the patch,
// OFF channel from the negative part, both log1p-compressed then jointly
// L-infinity-normalized, following the reference's createRatioLgnrates.
func RatioRates(patch []float64, mod float64) []float64 {
	half := len(patch)
	out := make([]float64, 2*half)
	for i, v := range patch {
		pos := mod * v
		if pos < 0 {
			pos = 0
		}
		out[i] = math.Log1p(pos)
	}
	for i, v := range patch {
		neg := mod * v
		if neg > 0 {
			neg = 0
		}
		out[half+i] = math.Log1p(-neg)
	}
	maxAbs := floats.Max(out)
	if maxAbs == 0 {
		return out
	}
	floats.Scale(1.0/maxAbs, out)
	return out
}

// Deck is the loaded image corpus: one patch per column, FFRFSIZE/2 pixels
// per patch (the reference's imageVector).
type Deck struct {
	Patches [][]float64 // each of length FFRFSIZE/2
}

// At returns the patch at index n, wrapping modulo the deck size the way
// the reference indexes with "% nbpatchesinfile".
func (d Deck) At(n int) []float64 {
	return d.Patches[n%len(d.Patches)]
}

// Len returns the number of patches in the deck.
func (d Deck) Len() int { return len(d.Patches) }

// MixSchedule returns the reference's mixvals table: n equally spaced
// coefficients i/(n-1), rising from 0 to 1. MixWeights turns them into
// per-presentation blend weights.
func MixSchedule(n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i) / float64(n-1)
	}
	return vals
}

// MixWeights returns the (w1, w2) blend weights for presentation numpres of
// a mixing run of length 3*len(mixvals), following the reference's
// mixval1/mixval2: with k = numpres % len(mixvals), w1 = mixvals[k] and
// w2 = 1 - mixvals[k]. The first block crossfades (stim1 rising from 0 to 1
// while stim2 falls from 1 to 0), the middle block holds stim2 at zero
// (stim1 alone, rising), and the last block holds stim1 at zero (stim2
// alone, falling).
func MixWeights(numpres int, mixvals []float64) (w1, w2 float64) {
	n := len(mixvals)
	idx := numpres % n
	third := numpres / n
	w1 = mixvals[idx]
	if third == 2 {
		w1 = 0
	}
	w2 = 1.0 - mixvals[idx]
	if third == 1 {
		w2 = 0
	}
	return w1, w2
}

// ComputeRates builds the scaled expected-spike-count vector for a
// presentation under the given phase, pulling patches from deck and
// scaling by config.InputMult*dt/1000, matching the reference's shared
// scaling applied after the phase-specific lgnrates computation. numpres is
// the presentation index within the mixing run, used to look up the blend
// weights in mixvals; it is ignored for every other phase kind.
func ComputeRates(deck Deck, phase simphase.Phase, numpres int, mixvals []float64) (Rates, error) {
	var raw []float64

	switch phase.Kind {
	case simphase.Mixing:
		if phase.Stim1 < 0 || phase.Stim2 < 0 || phase.Stim1 >= deck.Len() || phase.Stim2 >= deck.Len() {
			return nil, fmt.Errorf("lgn: mixing stimulus index out of range (have %d patches)", deck.Len())
		}
		r1 := RatioRates(deck.At(phase.Stim1), 1)
		r2 := RatioRates(deck.At(phase.Stim2), 1)
		w1, w2 := MixWeights(numpres, mixvals)
		raw = make([]float64, len(r1))
		for i := range raw {
			raw[i] = w1*r1[i] + w2*r2[i]
		}
	case simphase.Spontaneous:
		raw = make([]float64, config.FFRFSIZE)
	default:
		stim := phase.Stim
		if stim < 0 || stim >= deck.Len() {
			return nil, fmt.Errorf("lgn: stimulus index %d out of range (have %d patches)", stim, deck.Len())
		}
		raw = RatioRates(deck.At(stim), config.Mod)
	}

	scale := config.InputMult * (config.Dt / 1000.0)
	out := make(Rates, len(raw))
	for i, v := range raw {
		out[i] = v * scale
	}
	return out, nil
}

// Gate reports whether the feedforward input is active at simulation step
// numstepthispres of a presentation lasting nbstepsperpres steps under
// phase, following the reference's pulse-window / relaxation-tail /
// spontaneous-silence conditional.
func Gate(phase simphase.Phase, numstepthispres, nbstepsperpres int) bool {
	if phase.Kind == simphase.Spontaneous {
		return false
	}
	if phase.Kind == simphase.Pulse {
		start := config.PulseStart
		end := config.PulseStart + phase.PulseDuration
		return numstepthispres >= start && numstepthispres < end
	}
	return numstepthispres < nbstepsperpres-config.TimeZeroInput
}

// SpikesThisStep draws one Bernoulli spike vector from rates, zeroing it
// entirely when Gate reports the feedforward drive is off this step.
func SpikesThisStep(rng *simrand.Stream, rates Rates, active bool) []float64 {
	out := make([]float64, len(rates))
	if !active {
		return out
	}
	for i, r := range rates {
		out[i] = rng.ExpectedSpike(math.Abs(r), 1.0)
	}
	return out
}
