// Package simphase defines the run-phase tagged variant that gates noise,
// plasticity, and LGN input generation during a presentation.
package simphase

import "fmt"

// Kind distinguishes the five phases a presentation can run under.
type Kind int

const (
	// Learning presents single stimuli with plasticity enabled.
	Learning Kind = iota
	// Testing presents single stimuli with plasticity disabled.
	Testing
	// Mixing linearly blends two stimuli, with blend weights that change
	// from one presentation to the next.
	Mixing
	// Pulse holds a single stimulus on for a fixed window, then relaxes.
	Pulse
	// Spontaneous presents no stimulus at all; only noise drives the network.
	Spontaneous
)

func (k Kind) String() string {
	switch k {
	case Learning:
		return "learning"
	case Testing:
		return "testing"
	case Mixing:
		return "mixing"
	case Pulse:
		return "pulse"
	case Spontaneous:
		return "spontaneous"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Phase carries the Kind plus whatever payload that kind needs. Only the
// fields relevant to Kind are meaningful; the others are left at zero value.
type Phase struct {
	Kind Kind

	// Stim is the stimulus index for Learning, Testing, and Pulse.
	Stim int

	// Stim1, Stim2 are the two stimuli blended during Mixing.
	Stim1, Stim2 int

	// PulseDuration is the number of milliseconds the pulse stimulus stays
	// on before the relaxation tail, used only when Kind == Pulse.
	PulseDuration int
}

// NewLearning builds a Learning phase presenting stim.
func NewLearning(stim int) Phase { return Phase{Kind: Learning, Stim: stim} }

// NewTesting builds a Testing phase presenting stim.
func NewTesting(stim int) Phase { return Phase{Kind: Testing, Stim: stim} }

// NewMixing builds a Mixing phase blending stim1 and stim2.
func NewMixing(stim1, stim2 int) Phase { return Phase{Kind: Mixing, Stim1: stim1, Stim2: stim2} }

// NewPulse builds a Pulse phase presenting stim for durationMs before
// relaxing.
func NewPulse(stim, durationMs int) Phase {
	return Phase{Kind: Pulse, Stim: stim, PulseDuration: durationMs}
}

// NewSpontaneous builds a Spontaneous phase (no stimulus).
func NewSpontaneous() Phase { return Phase{Kind: Spontaneous} }

// Plastic reports whether this phase kind allows synaptic weight updates.
// Only Learning does; every other phase runs with plasticity frozen.
func (p Phase) Plastic() bool { return p.Kind == Learning }
