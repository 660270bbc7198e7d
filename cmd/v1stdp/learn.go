package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/sim"
	"github.com/emer/v1stdp/simphase"
)

func newLearnCmd() *cobra.Command {
	mf := &modelFlags{}
	var (
		seed            int64
		step            int
		dataDirectory   string
		inputFile       string
		saveDirectory   string
		saveLogInterval int
		timepres        int
		imageRange      int
	)

	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Learn the model from an image corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			log.WithField("seed", seed).Info("RandomSeed")

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
				Model:                     mf.Model(),
				Seed:                      seed,
				NBPres:                    step,
				PresentationTimeMs:        timepres,
				PhaseKind:                 simphase.Learning,
				StartLearningStimulation:  config.StartLearningStimulationDefault,
				NBLastSpikesPres:          30,
				NBResps:                   2000,
				SaveDirectory:             dir,
				SaveLogInterval:           saveLogInterval,
				Patches:                   patches,
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
	cmd.Flags().IntVarP(&step, "step", "N", 500000, "number of learning presentations")
	cmd.Flags().StringVarP(&dataDirectory, "data-directory", "d", ".", "directory to load and save data")
	cmd.Flags().StringVarP(&inputFile, "input-file", "I", "patches.bin.dat", "input image corpus")
	cmd.Flags().StringVarP(&saveDirectory, "save-directory", "S", "", "directory to save weight data")
	cmd.Flags().IntVar(&saveLogInterval, "save-log-interval", 50000, "presentations between periodic weight saves")
	cmd.Flags().IntVar(&timepres, "timepres", 350, "presentation time, ms")
	cmd.Flags().IntVarP(&imageRange, "image-range", "R", 0, "image range to use (0 = all, N = last N, -N = all but last N)")

	return cmd
}
