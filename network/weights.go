package network

import (
	"math"

	"github.com/emer/etable/v2/minmax"
	"gonum.org/v1/gonum/mat"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/simrand"
)

// Weights holds the two weight matrices the network learns on: W, the
// recurrent (lateral) NBNEUR x NBNEUR matrix, and WFF, the feedforward
// NBNEUR x FFRFSIZE matrix from the LGN relay. W(ni,nj) is the weight
// targeting neuron ni from source synapse nj (row = target, column =
// source), matching the reference's row-major convention for w*spike
// products.
type Weights struct {
	W   *mat.Dense
	WFF *mat.Dense
}

// NewRandomWeights draws the initial weight matrices exactly as the
// reference's learn setup does: W's E-I blocks are signed and magnitude-
// capped per the model's derived maxima, WFF is drawn uniform in
// [WFFInitMin, WFFInitMax] and capped at MaxW, and inhibitory neurons
// receive no feedforward drive.
func NewRandomWeights(rng *simrand.Stream, m config.Model) *Weights {
	w := mat.NewDense(config.NBNEUR, config.NBNEUR, nil)
	wff := mat.NewDense(config.NBNEUR, config.FFRFSIZE, nil)

	weiMax := m.WEIMax()
	wieMax := m.WIEMax()
	wiiMax := m.WIIMax()

	for ni := 0; ni < config.NBNEUR; ni++ {
		for nj := 0; nj < config.NBNEUR; nj++ {
			if ni == nj {
				continue
			}
			targetI := ni >= config.NBE
			sourceI := nj >= config.NBE

			switch {
			case !targetI && !sourceI:
				// E<-E: left to the plasticity rule; starts at zero.
				w.Set(ni, nj, 0)
			case !targetI && sourceI:
				// E<-I: negative, magnitude capped at WIEMax.
				w.Set(ni, nj, -math.Abs(rng.UniformRange(-1, 1))*wieMax)
			case targetI && !sourceI:
				// I<-E: positive, magnitude capped at WEIMax.
				w.Set(ni, nj, math.Abs(rng.UniformRange(-1, 1))*weiMax)
			default:
				// I<-I: negative, magnitude capped at WIIMax.
				w.Set(ni, nj, -math.Abs(rng.UniformRange(-1, 1))*wiiMax)
			}
		}
	}

	for ni := 0; ni < config.NBNEUR; ni++ {
		for nj := 0; nj < config.FFRFSIZE; nj++ {
			if ni >= config.NBE {
				wff.Set(ni, nj, 0)
				continue
			}
			v := config.WFFInitMin + (config.WFFInitMax-config.WFFInitMin)*math.Abs(rng.UniformRange(-1, 1))
			if v > config.MaxW {
				v = config.MaxW
			}
			wff.Set(ni, nj, v)
		}
	}

	if m.NoInh {
		for ni := 0; ni < config.NBNEUR; ni++ {
			for nj := config.NBE; nj < config.NBNEUR; nj++ {
				w.Set(ni, nj, 0)
			}
		}
	}

	return &Weights{W: w, WFF: wff}
}

// Clamp re-establishes the weight invariants after a plasticity update: the
// E<-E block is floored at zero and capped at MaxW, WFF's excitatory rows
// are floored at zero and capped at MaxW, and the diagonal of W stays zero.
//
// The inhibitory columns of W are not clamped at all: the reference's
// cwiseMin(0) for w.rightCols(NBI) is commented out, and no ceiling at zero
// is applied here either. PlasticityParams.Apply never writes those
// columns, so they keep the values they were initialised or loaded with.
func (w *Weights) Clamp() {
	excitatoryRange := minmax.F64{Min: 0, Max: config.MaxW}

	for ni := 0; ni < config.NBE; ni++ {
		for nj := 0; nj < config.NBE; nj++ {
			if ni == nj {
				w.W.Set(ni, nj, 0)
				continue
			}
			w.W.Set(ni, nj, excitatoryRange.ClipVal(w.W.At(ni, nj)))
		}
	}
	for ni := 0; ni < config.NBE; ni++ {
		for nj := 0; nj < config.FFRFSIZE; nj++ {
			w.WFF.Set(ni, nj, excitatoryRange.ClipVal(w.WFF.At(ni, nj)))
		}
	}
}
