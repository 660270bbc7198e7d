// Command v1stdp drives the spiking V1 population: learn weights from an
// image corpus, then test, mix, pulse, or spontaneously probe the result.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emer/v1stdp/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "v1stdp",
		Short: "Spiking V1 cortex simulation with voltage-dependent STDP",
	}
	root.AddCommand(newLearnCmd())
	root.AddCommand(newTestCmd())
	root.AddCommand(newMixCmd())
	root.AddCommand(newPulseCmd())
	root.AddCommand(newSpontaneousCmd())
	return root
}

// modelFlags is bound to a cobra.Command's flag set by addModelFlags and
// read back into a config.Model once flags are parsed.
type modelFlags struct {
	noNoise, noSpike, noInh, noLat, noElat bool
	delayParam, latConnMult               int
	wPenScale, altPMult, wie, wei          float64
}

func addModelFlags(cmd *cobra.Command, f *modelFlags) {
	d := config.DefaultModel()
	cmd.Flags().BoolVar(&f.noNoise, "nonoise", false, "disable frozen background noise")
	cmd.Flags().BoolVar(&f.noSpike, "nospike", false, "disable spiking (pure leaky integration)")
	cmd.Flags().BoolVar(&f.noInh, "noinh", false, "disable inhibitory connections")
	cmd.Flags().BoolVar(&f.noLat, "nolat", false, "disable all lateral connections")
	cmd.Flags().BoolVar(&f.noElat, "noelat", false, "disable excitatory lateral connections")
	cmd.Flags().IntVar(&f.delayParam, "delayparam", d.DelayParam, "axonal delay distribution parameter")
	cmd.Flags().IntVar(&f.latConnMult, "latconnmult", d.LatConnMult, "lateral connection multiplier")
	cmd.Flags().Float64Var(&f.wPenScale, "wpenscale", d.WPenScale, "weight penalty scale in the LTD term")
	cmd.Flags().Float64Var(&f.altPMult, "altpmult", d.AltPMult, "LTP rate multiplier")
	cmd.Flags().Float64Var(&f.wie, "wie", d.WIE, "weight on I-E connections")
	cmd.Flags().Float64Var(&f.wei, "wei", d.WEI, "weight on E-I connections")
}

func (f modelFlags) Model() config.Model {
	return config.Model{
		NoNoise:     f.noNoise,
		NoSpike:     f.noSpike,
		NoInh:       f.noInh,
		NoLat:       f.noLat,
		NoElat:      f.noElat,
		DelayParam:  f.delayParam,
		LatConnMult: f.latConnMult,
		WPenScale:   f.wPenScale,
		AltPMult:    f.altPMult,
		WIE:         f.wie,
		WEI:         f.wei,
	}
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
