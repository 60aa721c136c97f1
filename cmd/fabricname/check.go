package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/fabricnaming/crosscheck"
	"github.com/sarchlab/fabricnaming/datarecording"
	"github.com/sarchlab/fabricnaming/fabric"
)

// Backends whose names the check command compares.
var checkedBackends = []string{"verilog", "spice"}

func newCheckCmd(a *app) *cobra.Command {
	var (
		nx, ny     int
		tracks     int
		pins       int
		recordPath string
	)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the backends agree on the names of a device.",
		Long: "`check --nx 6 --ny 6` synthesizes the name of every routing " +
			"block, track and grid pin of a 6x6 device for each backend " +
			"and fails on a name shared by two entities of one backend.\n\n" +
			"Both backends name through the same synthesizer and options, " +
			"so they agree by construction. The cross-backend report only " +
			"finds differences when another writer registers its names " +
			"with the ledger.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := crosscheck.Device{
				Size:         fabric.P(nx, ny),
				ChannelWidth: tracks,
				PinsPerSide:  pins,
			}

			b := crosscheck.MakeBuilder()

			if recordPath != "" {
				recorder := datarecording.New(recordPath)
				defer recorder.Close()

				b = b.WithRecorder(recorder)
			}

			ledger := b.Build()

			for _, backend := range checkedBackends {
				n := crosscheck.RegisterDevice(
					ledger, backend, a.newSynthesizer(), d)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d names\n", backend, n)
			}

			mismatches := ledger.Check()
			for _, m := range mismatches {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}

			if len(mismatches) > 0 {
				return fmt.Errorf("%d entities are named inconsistently",
					len(mismatches))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "backends agree")

			return nil
		},
	}

	checkCmd.Flags().IntVar(&nx, "nx", 4, "device width in tiles, I/O ring included")
	checkCmd.Flags().IntVar(&ny, "ny", 4, "device height in tiles, I/O ring included")
	checkCmd.Flags().IntVar(&tracks, "tracks", 4, "tracks per routing channel")
	checkCmd.Flags().IntVar(&pins, "pins", 2, "pins per grid side")
	checkCmd.Flags().StringVar(&recordPath, "record", "",
		"record the names into this SQLite database, without extension")

	return checkCmd
}
