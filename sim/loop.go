package sim

import (
	"fmt"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/ioweights"
	"github.com/emer/v1stdp/lgn"
	"github.com/emer/v1stdp/network"
	"github.com/emer/v1stdp/simphase"
	"github.com/emer/v1stdp/simrand"
)

// Result carries the per-run recordings a caller dumps to disk after Run
// returns: the trailing spikes/voltages ring buffer and the per-
// presentation spike-count / summed-voltage history.
type Result struct {
	// LastNSpikes, LastNV are NBNEUR x (NBLastSpikesPres*stepsPerPres),
	// column-major: one column per retained step, most recent
	// NBLastSpikesPres presentations' worth.
	LastNSpikes [][]int
	LastNV      [][]float64

	// Resps, RespsSumV are NBNEUR x NBResps.
	Resps     [][]int
	RespsSumV [][]float64

	W, WFF *mat.Dense
}

// Run drives the full presentation loop for one run mode and returns the
// final weights and the recorded diagnostics. log may be nil, in which case
// a default logger is used.
func Run(opt Options, log *logrus.Logger) (Result, error) {
	if log == nil {
		log = logrus.New()
	}
	if err := opt.Model.Validate(); err != nil {
		return Result{}, err
	}

	log.WithFields(logrus.Fields{
		"seed":      opt.Seed,
		"phase":     opt.PhaseKind.String(),
		"nbPres":    opt.NBPres,
		"prestime":  opt.PresentationTimeMs,
	}).Info("starting run")
	opt.Model.LogSettings(log)

	rng := simrand.NewStream(opt.Seed)

	weights := &network.Weights{W: opt.InitW, WFF: opt.InitWFF}
	if weights.W == nil || weights.WFF == nil {
		weights = network.NewRandomWeights(rng, opt.Model)
	}
	if opt.Model.NoInh {
		for ni := 0; ni < config.NBNEUR; ni++ {
			for nj := config.NBE; nj < config.NBNEUR; nj++ {
				weights.W.Set(ni, nj, 0)
			}
		}
	}

	delayFabric := network.NewDelayFabric(rng, opt.Model)
	altds := rng.ALTDs(config.NBNEUR, config.BaseALTD, config.RandALTD)
	plasticity := network.PlasticityParams{ALTDs: altds, WPenScale: opt.Model.WPenScale, AltPMult: opt.Model.AltPMult}

	negNoise, posNoise := buildNoise(rng, log, opt.Model.NoNoise)

	stepsPerPres := int(float64(opt.PresentationTimeMs) / config.Dt)

	neurons := network.NewNeuronState()
	neurons.NewResting()

	deck := lgn.Deck{Patches: opt.Patches}
	mixvals := lgn.MixSchedule(config.NBMixes)

	nbLastSpikesSteps := opt.NBLastSpikesPres * stepsPerPres
	if nbLastSpikesSteps < 1 {
		nbLastSpikesSteps = 1
	}
	if opt.NBResps < 1 {
		opt.NBResps = 1
	}

	result := Result{
		LastNSpikes: make([][]int, config.NBNEUR),
		LastNV:      make([][]float64, config.NBNEUR),
		Resps:       make([][]int, config.NBNEUR),
		RespsSumV:   make([][]float64, config.NBNEUR),
	}
	for i := 0; i < config.NBNEUR; i++ {
		result.LastNSpikes[i] = make([]int, nbLastSpikesSteps)
		result.LastNV[i] = make([]float64, nbLastSpikesSteps)
		result.Resps[i] = make([]int, opt.NBResps)
		result.RespsSumV[i] = make([]float64, opt.NBResps)
	}

	numstep := 0
	phaseKind := opt.PhaseKind
	start := time.Now()

	for numpres := 0; numpres < opt.NBPres; numpres++ {
		if phaseKind == simphase.Learning && opt.SaveLogInterval > 0 && numpres%opt.SaveLogInterval == 0 {
			if err := saveAllWeights(opt.SaveDirectory, numpres, weights); err != nil {
				return result, err
			}
		}

		phase := buildPhase(opt, numpres)

		rates, err := lgn.ComputeRates(deck, phase, numpres, mixvals)
		if err != nil {
			return result, err
		}

		neurons.ResetForPresentation()
		delayFabric.Reset()
		respCol := numpres % opt.NBResps
		for i := 0; i < config.NBNEUR; i++ {
			result.Resps[i][respCol] = 0
			result.RespsSumV[i][respCol] = 0
		}

		for step := 0; step < stepsPerPres; step++ {
			active := lgn.Gate(phase, step, stepsPerPres)
			lgnFirings := lgn.SpikesThisStep(rng, rates, active)

			iff := feedforwardCurrent(weights.WFF, lgnFirings)

			latInput, spikesThisStep := lateralInput(delayFabric, weights.W, opt.Model.NoElat)

			I := make([]float64, config.NBNEUR)
			noiseCol := numstep % config.NBNOISESTEPS
			for i := 0; i < config.NBNEUR; i++ {
				lat := 0.0
				if !opt.Model.NoLat {
					lat = float64(opt.Model.LatConnMult) * config.VStim * latInput[i]
				}
				I[i] = iff[i] + lat + posNoise[i][noiseCol] + negNoise[i][noiseCol]
			}

			firings := network.Step(neurons, network.StepInput{I: I}, opt.Model.NoSpike)
			network.StepFFTrace(neurons, lgnFirings)
			delayFabric.PushFirings(firings)

			if phase.Plastic() && numpres >= opt.StartLearningStimulation {
				plasticity.Apply(neurons, weights, lgnFirings, spikesThisStep)
			}
			weights.Clamp()

			for i := 0; i < config.NBNEUR; i++ {
				result.Resps[i][respCol] += firings[i]
				v := neurons.V[i]
				if v > config.VTMax {
					v = config.VTMax
				}
				result.RespsSumV[i][respCol] += v
			}
			spikeCol := numstep % nbLastSpikesSteps
			for i := 0; i < config.NBNEUR; i++ {
				result.LastNSpikes[i][spikeCol] = firings[i]
				result.LastNV[i][spikeCol] = neurons.V[i]
			}

			numstep++
		}

		if numpres%100 == 0 {
			maxRate := 0.0
			for _, r := range rates {
				if r > maxRate {
					maxRate = r
				}
			}
			spikes := 0
			for i := 0; i < config.NBNEUR; i++ {
				spikes += result.Resps[i][respCol]
			}
			log.WithFields(logrus.Fields{
				"presentation": numpres,
				"of":           opt.NBPres,
				"maxLGNRate":   maxRate,
				"elapsed":      time.Since(start),
				"spikes":       spikes,
			}).Info("presentation")
		}
		if (numpres+1)%10000 == 0 || numpres == 0 || numpres+1 == opt.NBPres {
			if phaseKind == simphase.Learning && opt.SaveDirectory != "" {
				if err := saveTextSnapshot(opt.SaveDirectory, weights); err != nil {
					return result, err
				}
				if err := ioweights.SaveBinary(opt.SaveDirectory+"/w.dat", weights.W); err != nil {
					return result, err
				}
				if err := ioweights.SaveBinary(opt.SaveDirectory+"/wff.dat", weights.WFF); err != nil {
					return result, err
				}
			}
		}
	}

	if phaseKind == simphase.Learning {
		if err := saveAllWeights(opt.SaveDirectory, opt.NBPres, weights); err != nil {
			return result, err
		}
	}

	result.W = weights.W
	result.WFF = weights.WFF
	return result, nil
}

func buildPhase(opt Options, numpres int) simphase.Phase {
	stim := numpres
	if len(opt.Patches) > 0 {
		stim = numpres % len(opt.Patches)
	}
	switch opt.PhaseKind {
	case simphase.Learning:
		return simphase.NewLearning(stim)
	case simphase.Testing:
		return simphase.NewTesting(stim)
	case simphase.Mixing:
		return simphase.NewMixing(opt.Stim1, opt.Stim2)
	case simphase.Pulse:
		return simphase.NewPulse(opt.Stim1, opt.PulseDurationMs)
	default:
		return simphase.NewSpontaneous()
	}
}

func feedforwardCurrent(wff *mat.Dense, lgnFirings []float64) []float64 {
	spikes := mat.NewVecDense(len(lgnFirings), lgnFirings)
	var out mat.VecDense
	out.MulVec(wff, spikes)
	result := make([]float64, config.NBNEUR)
	for i := 0; i < config.NBNEUR; i++ {
		result[i] = out.AtVec(i) * config.VStim
	}
	return result
}

func lateralInput(d *network.DelayFabric, w *mat.Dense, noElat bool) ([]float64, [][]int) {
	n := config.NBNEUR
	latInput := make([]float64, n)
	spikes := make([][]int, n)
	for ni := 0; ni < n; ni++ {
		spikes[ni] = make([]int, n)
		for nj := 0; nj < n; nj++ {
			if noElat && nj < config.NBE && ni < config.NBE {
				continue
			}
			if ni == nj {
				continue
			}
			spike := d.Front(ni, nj)
			if spike > 0 {
				latInput[ni] += w.At(ni, nj) * float64(spike)
				spikes[ni][nj] = 1
			}
		}
	}
	return latInput, spikes
}

func buildNoise(rng *simrand.Stream, log *logrus.Logger, noNoise bool) (neg, pos [][]float64) {
	neg = make([][]float64, config.NBNEUR)
	pos = make([][]float64, config.NBNEUR)
	for i := 0; i < config.NBNEUR; i++ {
		neg[i] = make([]float64, config.NBNOISESTEPS)
		pos[i] = make([]float64, config.NBNOISESTEPS)
	}
	if noNoise {
		return neg, pos
	}

	flat := make([]float64, config.NBNEUR*config.NBNOISESTEPS)
	rng.PoissonMatrix(flat, config.NBNEUR, config.NBNOISESTEPS, config.NegNoiseRate, -1.0, config.Dt)
	for i := 0; i < config.NBNEUR; i++ {
		neg[i] = flat[i*config.NBNOISESTEPS : (i+1)*config.NBNOISESTEPS]
	}

	flat2 := make([]float64, config.NBNEUR*config.NBNOISESTEPS)
	rng.PoissonMatrix(flat2, config.NBNEUR, config.NBNOISESTEPS, config.PosNoiseRate, 1.0, config.Dt)
	for i := 0; i < config.NBNEUR; i++ {
		pos[i] = flat2[i*config.NBNOISESTEPS : (i+1)*config.NBNOISESTEPS]
	}

	footprint := datasize.ByteSize(2 * config.NBNEUR * config.NBNOISESTEPS * 8)
	log.WithField("size", footprint.HumanReadable()).Info("frozen noise matrices allocated")
	return neg, pos
}

func saveAllWeights(dir string, index int, w *network.Weights) error {
	if dir == "" {
		return nil
	}
	if err := ioweights.SaveText(fmt.Sprintf("%s/wff_%d.txt", dir, index), w.WFF); err != nil {
		return err
	}
	if err := ioweights.SaveText(fmt.Sprintf("%s/w_%d.txt", dir, index), w.W); err != nil {
		return err
	}
	if err := ioweights.SaveBinary(fmt.Sprintf("%s/w_%d.dat", dir, index), w.W); err != nil {
		return err
	}
	if err := ioweights.SaveBinary(fmt.Sprintf("%s/wff_%d.dat", dir, index), w.WFF); err != nil {
		return err
	}
	return nil
}

func saveTextSnapshot(dir string, w *network.Weights) error {
	if dir == "" {
		return nil
	}
	if err := ioweights.SaveText(dir+"/w.txt", w.W); err != nil {
		return err
	}
	return ioweights.SaveText(dir+"/wff.txt", w.WFF)
}
