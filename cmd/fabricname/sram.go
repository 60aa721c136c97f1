package main

import (
	"github.com/spf13/cobra"

	"github.com/sarchlab/fabricnaming/naming"
	"github.com/sarchlab/fabricnaming/sram"
)

func newSRAMCmd(a *app) *cobra.Command {
	var modelName string

	sramCmd := &cobra.Command{
		Use:   "sram",
		Short: "Print the port names of an SRAM model.",
		Long: "`sram --model sram6T` prints the port names of an SRAM model " +
			"under the configured SRAM organization.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, err := a.model(modelName)
			if err != nil {
				return err
			}

			org := a.opts.SRAMOrganization()
			s := a.synth

			printName(cmd, "organization", org.String())

			for _, role := range org.PortRoles() {
				printName(cmd, "port "+role.String(),
					s.SRAMPortName(org, model, role))
			}

			for _, role := range org.LocalPortRoles() {
				printName(cmd, "local port "+role.String(),
					s.SRAMLocalPortName(org, model, role))
			}

			if org == sram.MemoryBank {
				for _, role := range []sram.PortRole{sram.RoleBLB, sram.RoleWL} {
					printName(cmd, "reserved "+role.String(),
						naming.ReservedSRAMPortName(role))
				}
			}

			printName(cmd, "formal verification",
				s.FormalVerificationSRAMPortName(model))

			return nil
		},
	}

	sramCmd.Flags().StringVar(&modelName, "model", "", "SRAM circuit model")

	return sramCmd
}
