// Package simrand provides the single explicit random stream the engine
// draws from. Nothing in this codebase touches the global math/rand source:
// every draw flows through a Stream built from one seed, so that two runs
// given the same seed produce byte-identical results regardless of
// goroutine scheduling or host.
package simrand

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Stream wraps a single seeded source. It is not safe for concurrent use;
// the engine is single-threaded by design (see package doc).
type Stream struct {
	rng *rand.Rand
	src rand.Source
}

// NewStream builds a stream seeded from seed. The same seed always produces
// the same sequence of draws from every method below.
func NewStream(seed int64) *Stream {
	src := rand.NewSource(seed)
	return &Stream{rng: rand.New(src), src: src}
}

// Float64 draws a uniform sample in [0,1).
func (s *Stream) Float64() float64 { return s.rng.Float64() }

// Intn draws a uniform integer in [0,n).
func (s *Stream) Intn(n int) int { return s.rng.Intn(n) }

// Poisson draws a single Poisson(lambda) sample.
func (s *Stream) Poisson(lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}
	d := distuv.Poisson{Lambda: lambda, Src: s.src}
	return d.Rand()
}

// PoissonMatrix fills dst (rows x cols, row-major flat slice) with
// Poisson(rate*dt) draws, each multiplied by unit. It does not reproduce the
// reference's multiplicative-mask construction: each cell is a direct
// Poisson draw from the stream, in row-major order, which gives the same
// distribution but not the reference's stream consumption.
func (s *Stream) PoissonMatrix(dst []float64, rows, cols int, rate, unit, dt float64) {
	lambda := rate * dt
	for i := 0; i < rows*cols; i++ {
		dst[i] = s.Poisson(lambda) * unit
	}
}

// TruncatedGeometricDelay draws an axonal delay in integer simulation steps
// using the reference's "cut and stretch" truncated-geometric sampler
// (generateDelays in delays.cpp): draw a single uniform value, then
// repeatedly check it against crit, counting the iteration, and rescale
// ("cut and stretch") the remainder back onto [0,1) by
// val := delayParameter*(val-crit)/(delayParameter-1) when it doesn't yet
// fall below crit. Exactly one stream draw is consumed per call, matching
// the reference's single rand() call per synapse pair — every later draw
// (ALTDs, initial weights, noise, LGN sampling) depends on this count
// staying fixed.
func (s *Stream) TruncatedGeometricDelay(delayParameter int, crit float64, maxSteps int) int {
	val := s.rng.Float64()
	p := float64(delayParameter)
	delay := 1
	for ; delay <= maxSteps; delay++ {
		if val < crit {
			break
		}
		val = p * (val - crit) / (p - 1.0)
	}
	if delay > maxSteps {
		delay = 1
	}
	return delay
}

// LateralDelay draws a delay for a recurrent (lateral) synapse, following
// generateDelays: crit = 1/delayParameter.
func (s *Stream) LateralDelay(delayParameter, maxSteps int) int {
	return s.TruncatedGeometricDelay(delayParameter, 1.0/float64(delayParameter), maxSteps)
}

// FeedforwardDelay draws a delay for a feedforward synapse, following the
// reference's generateDelaysFF: a fixed crit=.2 and stretch factor 5/4,
// independent of delayParameter.
func (s *Stream) FeedforwardDelay(maxSteps int) int {
	val := s.rng.Float64()
	const crit = 0.2
	delay := 1
	for ; delay <= maxSteps; delay++ {
		if val < crit {
			break
		}
		val = 5.0 * (val - crit) / 4.0
	}
	if delay > maxSteps {
		delay = 1
	}
	return delay
}

// ALTDJitter draws one per-neuron LTD-rate jitter term,
// baseALTD + randALTD*uniform[0,1), following generateALTDs.
func (s *Stream) ALTDJitter(baseALTD, randALTD float64) float64 {
	return baseALTD + randALTD*s.rng.Float64()
}

// ALTDs fills n per-neuron LTD-rate jitter terms.
func (s *Stream) ALTDs(n int, baseALTD, randALTD float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.ALTDJitter(baseALTD, randALTD)
	}
	return out
}

// UniformRange draws a uniform sample in [lo,hi).
func (s *Stream) UniformRange(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Bernoulli returns true with probability p, treating p outside [0,1] as
// saturating rather than panicking (a rate clamp upstream can push p
// slightly past 1 due to float error).
func (s *Stream) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}

// ExpectedSpike converts a rate (Hz-equivalent expected count per dt) into a
// 0/1 spike via direct Bernoulli sampling when rate*dt is small, matching
// the reference's NBSPIKINGSTEPS=1 single-Bernoulli-trial convention.
func (s *Stream) ExpectedSpike(rate, dt float64) float64 {
	p := rate * dt
	if p >= 1 {
		p = 1
	}
	if s.Bernoulli(p) {
		return 1
	}
	return 0
}
