// Package config holds the fixed model sizes and tunable run parameters for
// the v1stdp engine.
package config

// Fixed sizes of the network. These are not configurable: the model the
// engine simulates is a specific 120-neuron population, not a generic
// layer/population framework.
const (
	NBE     = 100 // excitatory neurons
	NBI     = 20  // inhibitory neurons
	NBNEUR  = NBE + NBI
	PATCHSIZE = 17
	FFRFSIZE  = 2 * PATCHSIZE * PATCHSIZE // ON and OFF channels

	NBNOISESTEPS = 73333
	MAXDELAYDT   = 20

	// Dt is the integration timestep, in milliseconds. Changing it without
	// reviewing every rate constant below will break the model.
	Dt = 1.0
)

// AdEx neuron and learning-rule constants, carried over from the reference
// implementation's constant.hpp.
const (
	Mod       = 1.0 / 126.0
	BaseALTD  = 14e-5 * 1.5
	RandALTD  = 0.0
	ALTP      = 8e-5 * 0.008
	MinV      = -80.0
	TauVLongTrace = 20000.0

	LatConnMultInit = 5.0

	WFFInitMax = 0.1
	WFFInitMin = 0.0
	MaxW       = 50.0
	VStim      = 1.0

	TimeZeroInput = 100
	PulseStart    = 0

	NBMixes = 30

	// Presentation durations for the non-learning modes, in ms. Testing and
	// learning instead take timepres from the command line.
	PresentationTimeMixing = 350
	PresentationTimePulse  = 350

	NBPatternsSpontaneous       = 300
	PresentationTimeSpontaneous = 1000

	TauInhib   = 10.0
	AlphaInhib = 0.6

	NegNoiseRate = 0.0
	PosNoiseRate = 1.8

	A   = 4.0
	B   = 0.0805
	Isp = 400.0

	TauZ       = 40.0
	TauAdap    = 144.0
	TauVThresh = 50.0
	C          = 281.0
	Gleak      = 30.0
	Eleak      = -70.6

	DeltaT = 2.0

	VTMax  = -30.4
	VTRest = -50.4
	VPeak  = 20.0
	VReset = Eleak

	ThetaVLongTrace = -45.3
	ThetaVPos       = -45.3
	ThetaVNeg       = Eleak

	NBSpikingSteps = 1
	RefracTime     = 0.0

	TauXPlast = 15.0
	TauVNeg   = 10.0
	TauVPos   = 7.0

	VRef2 = 50.0

	// InputMult scales the normalised LGN rate into expected-spikes-per-dt.
	// The reference derives this as 150*2; spec.md calls it INPUTMULT=300.
	InputMult = 300.0

	// RestingMembranePotential seeds v, vneg, vpos at the start of a run. It
	// does not equal Eleak; the reference comments that -70.5 approximates
	// the resting potential of the Izhikevich/AdEx neurons used upstream.
	RestingMembranePotential = -70.5

	// StartLearningStimulationDefault is the presentation index at which
	// plasticity begins, in the unified (templated) reference path.
	StartLearningStimulationDefault = 401
)
