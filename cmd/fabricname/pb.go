package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/fabricnaming/fabric"
	"github.com/sarchlab/fabricnaming/pbtype"
)

func newPBCmd(a *app) *cobra.Command {
	var (
		archPath string
		prefix   string
		border   string
	)

	pbCmd := &cobra.Command{
		Use:   "pb",
		Short: "Print the module names of the physical blocks of an architecture.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if archPath == "" {
				return fmt.Errorf("an architecture file is required")
			}

			arena, err := pbtype.LoadFile(archPath)
			if err != nil {
				return err
			}

			name := func(b pbtype.BlockID) string {
				return a.synth.GridPhysicalBlockModuleName(prefix, arena, b)
			}

			if border != "" {
				side, err := fabric.ParseSide(border)
				if err != nil {
					return err
				}

				name = func(b pbtype.BlockID) string {
					return a.synth.BorderGridPhysicalBlockModuleName(
						prefix, arena, b, side)
				}
			}

			for _, root := range arena.Roots() {
				arena.Walk(root, func(b pbtype.BlockID) {
					printName(cmd, arena.BlockName(b), name(b))
				})

				for _, port := range arena.Ports(root) {
					printName(cmd,
						arena.BlockName(root)+" port",
						a.synth.PhysicalBlockPortName(arena, port))
				}
			}

			return nil
		},
	}

	pbCmd.Flags().StringVar(&archPath, "arch", "",
		"YAML file with the physical block trees")
	pbCmd.Flags().StringVar(&prefix, "prefix", "logical_tile_",
		"module name prefix")
	pbCmd.Flags().StringVar(&border, "border", "",
		"border side of the grid, empty for core grids")

	return pbCmd
}
