package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/ioweights"
	"github.com/emer/v1stdp/sim"
	"github.com/emer/v1stdp/simphase"
)

func newSpontaneousCmd() *cobra.Command {
	mf := &modelFlags{}
	var (
		seed              int64
		dataDirectory     string
		inputFile         string
		saveDirectory     string
		lateralWeight     string
		feedforwardWeight string
		saveLogInterval   int
	)

	cmd := &cobra.Command{
		Use:   "spontaneous",
		Short: "Test the model without any stimulus",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			log.WithField("seed", seed).Info("RandomSeed")
			log.Info("Spontaneous activity - no stimulus!")

			w, err := ioweights.LoadBinary(lateralWeight, config.NBNEUR, config.NBNEUR)
			if err != nil {
				return err
			}
			wff, err := ioweights.LoadBinary(feedforwardWeight, config.NBNEUR, config.FFRFSIZE)
			if err != nil {
				return err
			}

			// Images are loaded for symmetry with the other modes, but the
			// spontaneous phase never reads the LGN rates derived from them.
			path := filepath.Join(dataDirectory, inputFile)
			patches, err := loadPatchesRanged(path, 0)
			if err != nil {
				return err
			}

			dir := saveDirectory
			if dir == "" {
				dir = dataDirectory
			}

			nbPres := config.NBPatternsSpontaneous

			opt := sim.Options{
				Model:              mf.Model(),
				Seed:               seed,
				NBPres:             nbPres,
				PresentationTimeMs: config.PresentationTimeSpontaneous,
				PhaseKind:          simphase.Spontaneous,
				NBLastSpikesPres:   nbPres,
				NBResps:            nbPres,
				SaveDirectory:      dir,
				SaveLogInterval:    saveLogInterval,
				Patches:            patches,
				InitW:              w,
				InitWFF:            wff,
			}

			result, err := sim.Run(opt, log)
			if err != nil {
				return err
			}
			return sim.WriteFinalReport(dir, opt, result)
		},
	}

	addModelFlags(cmd, mf)
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed for the deterministic RNG stream")
	cmd.Flags().StringVarP(&dataDirectory, "data-directory", "d", ".", "directory to load and save data")
	cmd.Flags().StringVarP(&inputFile, "input-file", "I", "patches.bin.dat", "input image corpus")
	cmd.Flags().StringVarP(&saveDirectory, "save-directory", "S", "", "directory to save weight data")
	cmd.Flags().StringVarP(&lateralWeight, "lateral-weight", "L", "", "binary file with lateral weights")
	cmd.Flags().StringVarP(&feedforwardWeight, "feedforward-weight", "F", "", "binary file with feedforward weights")
	cmd.Flags().IntVar(&saveLogInterval, "save-log-interval", 50000, "presentations between periodic weight saves")

	cmd.MarkFlagRequired("lateral-weight")
	cmd.MarkFlagRequired("feedforward-weight")

	return cmd
}
