package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emer/v1stdp/config"
	"github.com/emer/v1stdp/ioweights"
	"github.com/emer/v1stdp/sim"
	"github.com/emer/v1stdp/simphase"
)

func newMixCmd() *cobra.Command {
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
		Use:   "mix stimulation-number-1 stimulation-number-2",
		Short: "Test the model with two mixed images",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			log.WithField("seed", seed).Info("RandomSeed")

			var stim1, stim2 int
			if _, err := fmt.Sscanf(args[0], "%d", &stim1); err != nil {
				return fmt.Errorf("stimulation-number-1: %w", err)
			}
			if _, err := fmt.Sscanf(args[1], "%d", &stim2); err != nil {
				return fmt.Errorf("stimulation-number-2: %w", err)
			}
			// -1: the nth pattern lives at index n-1.
			stim1--
			stim2--
			log.WithField("stim1", stim1).WithField("stim2", stim2).Info("Stim1, Stim2")

			w, err := ioweights.LoadBinary(lateralWeight, config.NBNEUR, config.NBNEUR)
			if err != nil {
				return err
			}
			wff, err := ioweights.LoadBinary(feedforwardWeight, config.NBNEUR, config.FFRFSIZE)
			if err != nil {
				return err
			}

			path := filepath.Join(dataDirectory, inputFile)
			patches, err := loadPatchesRanged(path, 0)
			if err != nil {
				return err
			}

			dir := saveDirectory
			if dir == "" {
				dir = dataDirectory
			}

			nbPres := config.NBMixes * 3

			opt := sim.Options{
				Model:              mf.Model(),
				Seed:               seed,
				NBPres:             nbPres,
				PresentationTimeMs: config.PresentationTimeMixing,
				PhaseKind:          simphase.Mixing,
				Stim1:              stim1,
				Stim2:              stim2,
				NBLastSpikesPres:   30,
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
