// Package sim orchestrates a full run: loading weights and images, driving
// the per-presentation / per-step AdEx and plasticity updates, and writing
// the periodic and final snapshots a run mode expects.
package sim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/simphase"
)

// Options bundles everything one Run call needs, independent of which CLI
// subcommand produced it.
type Options struct {
	Model config.Model

	Seed int64

	// NBPres is the number of presentations to run.
	NBPres int
	// PresentationTimeMs is the wall-clock duration of one presentation, in
	// simulation milliseconds (== integration steps, since Dt == 1).
	PresentationTimeMs int

	PhaseKind simphase.Kind
	Stim1     int
	Stim2     int
	PulseDurationMs int

	// StartLearningStimulation is the presentation index at which
	// plasticity begins; only consulted when PhaseKind == Learning.
	StartLearningStimulation int

	// NBLastSpikesPres is how many trailing presentations' worth of
	// per-step spikes/voltages to retain in the result's ring buffers.
	NBLastSpikesPres int
	// NBResps is how many presentations' worth of per-presentation spike
	// counts / summed voltages to retain.
	NBResps int

	SaveDirectory   string
	SaveLogInterval int

	// InitW, InitWFF seed the run's weights. When nil, fresh random weights
	// are drawn from Seed (the learn mode's behavior); otherwise they are
	// used as loaded (test/mix/pulse/spontaneous, which load weights from
	// disk), apart from Model.NoInh zeroing the inhibitory columns.
	InitW, InitWFF *mat.Dense

	// Patches is the image corpus presentations are drawn from. A
	// Spontaneous run never reads it.
	Patches [][]float64
}
