package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/ioweights"
	"github.com/emer/v1stdp/sim"
	"github.com/emer/v1stdp/simphase"
)

func newTestCmd() *cobra.Command {
	mf := &modelFlags{}
	var (
		seed              int64
		step              int
		dataDirectory     string
		inputFile         string
		saveDirectory     string
		lateralWeight     string
		feedforwardWeight string
		saveLogInterval   int
		timepres          int
		imageRange        int
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the model against an image corpus using saved weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			log.WithField("seed", seed).Info("RandomSeed")

			w, err := ioweights.LoadBinary(lateralWeight, config.NBNEUR, config.NBNEUR)
			if err != nil {
				return err
			}
			wff, err := ioweights.LoadBinary(feedforwardWeight, config.NBNEUR, config.FFRFSIZE)
			if err != nil {
				return err
			}

			path := filepath.Join(dataDirectory, inputFile)
			patches, err := loadPatchesRanged(path, imageRange)
			if err != nil {
				return err
			}

			dir := saveDirectory
			if dir == "" {
				dir = dataDirectory
			}

			opt := sim.Options{
				Model:              mf.Model(),
				Seed:               seed,
				NBPres:             step,
				PresentationTimeMs: timepres,
				PhaseKind:          simphase.Testing,
				NBLastSpikesPres:   30,
				NBResps:            step,
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
	cmd.Flags().IntVarP(&step, "step", "N", 1000, "number of testing presentations")
	cmd.Flags().StringVarP(&dataDirectory, "data-directory", "d", ".", "directory to load and save data")
	cmd.Flags().StringVarP(&inputFile, "input-file", "I", "patches.bin.dat", "input image corpus")
	cmd.Flags().StringVarP(&saveDirectory, "save-directory", "S", "", "directory to save weight data")
	cmd.Flags().StringVarP(&lateralWeight, "lateral-weight", "L", "", "binary file with lateral weights")
	cmd.Flags().StringVarP(&feedforwardWeight, "feedforward-weight", "F", "", "binary file with feedforward weights")
	cmd.Flags().IntVar(&saveLogInterval, "save-log-interval", 50000, "presentations between periodic weight saves")
	cmd.Flags().IntVar(&timepres, "timepres", 350, "presentation time, ms")
	cmd.Flags().IntVarP(&imageRange, "image-range", "R", 0, "image range to use (0 = all, N = last N, -N = all but last N)")

	cmd.MarkFlagRequired("save-directory")
	cmd.MarkFlagRequired("lateral-weight")
	cmd.MarkFlagRequired("feedforward-weight")

	return cmd
}
