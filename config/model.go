package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Model holds the feature switches and tunable coefficients that are shared
// across every run mode (learn/test/mix/pulse/spontaneous). It generalizes
// the reference implementation's Model struct: a run never mutates it once
// construction starts.
type Model struct {
	NoNoise bool
	NoSpike bool
	NoInh   bool
	NoLat   bool
	NoElat  bool

	DelayParam  int
	LatConnMult int
	WPenScale   float64
	AltPMult    float64
	WIE         float64
	WEI         float64
}

// DefaultModel returns a Model with the reference implementation's shipped
// defaults.
func DefaultModel() Model {
	return Model{
		DelayParam:  5,
		LatConnMult: LatConnMultInit,
		WPenScale:   0.33,
		AltPMult:    0.75,
		WIE:         0.5,
		WEI:         20.0,
	}
}

// WEIMax is the maximum magnitude of an E->I weight (w[I,E] block, drawn
// positive). WII is yoked to WIE, following the reference's comment.
func (m Model) WEIMax() float64 { return m.WEI * 4.32 / float64(m.LatConnMult) }

// WIEMax is the maximum magnitude of an I->E weight (w[E,I] block, drawn
// negative).
func (m Model) WIEMax() float64 { return m.WIE * 4.32 / float64(m.LatConnMult) }

// WIIMax is the maximum magnitude of an I->I weight (w[I,I] block).
func (m Model) WIIMax() float64 { return m.WIE * 4.32 / float64(m.LatConnMult) }

// LogSettings writes a one-line-per-flag summary of the active feature
// switches and derived weight maxima, the way the reference's
// Model::outputLog does.
func (m Model) LogSettings(log *logrus.Logger) {
	if m.NoNoise {
		log.Info("no noise")
	}
	if m.NoSpike {
		log.Info("no spiking")
	}
	if m.NoInh {
		log.Info("no inhibition")
	}
	if m.NoLat {
		log.Info("no lateral connections (E or I)")
	}
	if m.NoElat {
		log.Info("no E-E lateral connections")
	}
	log.WithFields(logrus.Fields{
		"latConnMult": m.LatConnMult,
		"wieMax":      m.WIEMax(),
		"wie":         m.WIE,
		"delayParam":  m.DelayParam,
		"wPenScale":   m.WPenScale,
		"altPMult":    m.AltPMult,
	}).Info("model settings")
}

// Suffix builds the bit-exact filename suffix used to disambiguate output
// artefacts produced under non-default feature flags. Order matters:
// noinh, nospike, nolat, noelat, nonoise.
func (m Model) Suffix() string {
	s := ""
	if m.NoInh {
		s += "_noinh"
	}
	if m.NoSpike {
		s += "_nospike"
	}
	if m.NoLat {
		s += "_nolat"
	}
	if m.NoElat {
		s += "_noelat"
	}
	if m.NoNoise {
		s += "_nonoise"
	}
	return s
}

// Validate reports precondition violations in flag combinations that the
// CLI cannot catch by type alone.
func (m Model) Validate() error {
	if m.DelayParam <= 1 {
		return fmt.Errorf("--delayparam must be > 1, got %d", m.DelayParam)
	}
	if m.LatConnMult <= 0 {
		return fmt.Errorf("--latconnmult must be > 0, got %d", m.LatConnMult)
	}
	return nil
}
