package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/fabricnaming/circuitlib"
	"github.com/sarchlab/fabricnaming/naming"
	"github.com/sarchlab/fabricnaming/sram"
)

func newMuxCmd(a *app) *cobra.Command {
	var (
		modelName  string
		sramName   string
		size       int
		branchSize int
		levels     int
		instance   int
	)

	muxCmd := &cobra.Command{
		Use:   "mux",
		Short: "Print the names of a multiplexer.",
		Long: "`mux --model mux_tree --size 8` prints the module and port " +
			"names of an 8-input multiplexer built from a circuit model of " +
			"the library.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, err := a.model(modelName)
			if err != nil {
				return err
			}

			if size < 2 {
				return fmt.Errorf("a multiplexer needs at least 2 inputs, "+
					"got %d", size)
			}

			s := a.synth

			printName(cmd, "module", s.MuxModuleName(model, size, ""))

			if branchSize > 0 {
				printName(cmd, "branch module",
					s.MuxBranchModuleName(model, size, branchSize, ""))
			}

			for level := 0; level < levels; level++ {
				printName(cmd, fmt.Sprintf("level %d node", level),
					naming.MuxNodeName(level, false))
				printName(cmd, fmt.Sprintf("level %d branch", level),
					naming.MuxBranchInstanceName(level, instance, false))
			}

			printName(cmd, "input bus",
				s.MuxInputBusPortName(model, size, instance))
			printName(cmd, "config bus",
				s.MuxConfigBusPortName(model, size, 0, false))
			printName(cmd, "inverted config bus",
				s.MuxConfigBusPortName(model, size, 0, true))

			for _, role := range []sram.PortRole{
				sram.RoleInput,
				sram.RoleOutput,
			} {
				printName(cmd, "sram "+role.String(),
					s.MuxSRAMPortName(model, size, instance, role))
			}

			if sramName == "" {
				return nil
			}

			return printMemory(cmd, a, model, sramName)
		},
	}

	muxCmd.Flags().StringVar(&modelName, "model", "", "multiplexer circuit model")
	muxCmd.Flags().StringVar(&sramName, "sram", "",
		"SRAM circuit model of the configuration memory")
	muxCmd.Flags().IntVar(&size, "size", 2, "number of inputs")
	muxCmd.Flags().IntVar(&branchSize, "branch-size", 0,
		"number of inputs of a branch, 0 to skip")
	muxCmd.Flags().IntVar(&levels, "levels", 0, "number of tree levels")
	muxCmd.Flags().IntVar(&instance, "instance", 0, "instance index")

	return muxCmd
}

func printMemory(
	cmd *cobra.Command,
	a *app,
	model circuitlib.ModelID,
	sramName string,
) error {
	sramModel, err := a.model(sramName)
	if err != nil {
		return err
	}

	printName(cmd, "memory module",
		a.synth.MemoryModuleName(model, sramModel, ""))

	return nil
}
