package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/fabricnaming/circuitlib"
	"github.com/sarchlab/fabricnaming/naming"
	"github.com/sarchlab/fabricnaming/options"
	"github.com/sarchlab/fabricnaming/sram"
)

// app holds what the persistent flags resolve to.
type app struct {
	configPath  string
	envPath     string
	libraryPath string
	verbose     bool
	sramOrg     string
	maxLen      int

	opts  options.Fabric
	lib   *circuitlib.CircuitLibrary
	synth *naming.Synthesizer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fabricname",
		Short: "Print the names of the modules and ports of an FPGA fabric.",
		Long: `fabricname prints the module, instance and port names that ` +
			`the Verilog and SPICE writers give to the parts of an FPGA ` +
			`fabric, and checks that the writers agree on them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "TOML file with fabric options")
	f.StringVar(&a.envPath, "env", "",
		".env file with FABRIC_* options; the process environment is "+
			"read when not given")
	f.StringVar(&a.libraryPath, "library", "", "YAML circuit library")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log details")
	f.StringVar(&a.sramOrg, "sram-org", "",
		"SRAM organization: standalone, scan-chain or memory-bank")
	f.IntVar(&a.maxLen, "max-identifier-length",
		naming.DefaultMaxIdentifierLength,
		"length above which names are shortened, 0 to disable")

	rootCmd.AddCommand(
		newMuxCmd(a),
		newRoutingCmd(a),
		newPBCmd(a),
		newSRAMCmd(a),
		newCheckCmd(a),
	)

	return rootCmd
}

// setup resolves the options. Flags win over the environment, which wins
// over the config file.
func (a *app) setup(cmd *cobra.Command) error {
	b := options.MakeBuilder()

	var err error

	if a.configPath != "" {
		if b, err = options.LoadFile(a.configPath); err != nil {
			return err
		}
	}

	if a.envPath != "" {
		b, err = options.ApplyEnvFile(b, a.envPath)
	} else {
		b, err = options.ApplyEnv(b)
	}

	if err != nil {
		return err
	}

	b, err = a.applyFlags(cmd, b)
	if err != nil {
		return err
	}

	a.opts = b.Build()

	if a.opts.VerboseOutput() {
		log.SetLevel(log.DebugLevel)
	}

	if err := a.loadLibrary(); err != nil {
		return err
	}

	a.synth = a.newSynthesizer()

	return nil
}

func (a *app) applyFlags(
	cmd *cobra.Command,
	b options.Builder,
) (options.Builder, error) {
	flags := cmd.Flags()

	if flags.Changed("verbose") {
		b = b.WithVerboseOutput(a.verbose)
	}

	if flags.Changed("sram-org") {
		org, err := sram.ParseOrganization(a.sramOrg)
		if err != nil {
			return options.Builder{}, err
		}

		b = b.WithSRAMOrganization(org)
	}

	if flags.Changed("max-identifier-length") {
		b = b.WithMaxIdentifierLength(a.maxLen)
	}

	return b, nil
}

func (a *app) loadLibrary() error {
	if a.libraryPath == "" {
		a.lib = circuitlib.NewCircuitLibrary()
		a.lib.Seal()

		return nil
	}

	lib, err := circuitlib.LoadFile(a.libraryPath)
	if err != nil {
		return err
	}

	a.lib = lib

	return nil
}

func (a *app) newSynthesizer() *naming.Synthesizer {
	return naming.MakeBuilder().
		WithLibrary(a.lib).
		WithMaxIdentifierLength(a.opts.MaxIdentifierLength()).
		Build()
}

func (a *app) model(name string) (circuitlib.ModelID, error) {
	if name == "" {
		return circuitlib.ModelIDInvalid, fmt.Errorf("a model name is required")
	}

	id, found := a.lib.ModelByName(name)
	if !found {
		return circuitlib.ModelIDInvalid,
			fmt.Errorf("unknown circuit model %q", name)
	}

	return id, nil
}

func printName(cmd *cobra.Command, what, name string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", what, name)
}
