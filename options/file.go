package options

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/sram"
)

// fileOptions mirrors Fabric in a TOML file. Missing keys keep the value of
// the builder the file is applied to.
type fileOptions struct {
	OutputDirectory        *string `toml:"output_directory"`
	SupportIcarusSimulator *bool   `toml:"support_icarus_simulator"`
	IncludeTiming          *bool   `toml:"include_timing"`
	IncludeSignalInit      *bool   `toml:"include_signal_init"`
	ExplicitPortMapping    *bool   `toml:"explicit_port_mapping"`
	CompressRouting        *bool   `toml:"compress_routing"`
	VerboseOutput          *bool   `toml:"verbose_output"`
	SRAMOrganization       *string `toml:"sram_organization"`
	MaxIdentifierLength    *int    `toml:"max_identifier_length"`
}

// LoadFile reads options from a TOML file on top of the defaults.
func LoadFile(path string) (Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Builder{}, fmt.Errorf("reading options: %w", err)
	}

	b, err := ParseTOML(MakeBuilder(), data)
	if err != nil {
		return Builder{}, fmt.Errorf("%s: %w", path, err)
	}

	log.WithField("file", path).Debug("loaded fabric options")

	return b, nil
}

// ParseTOML applies the options found in a TOML document to a builder.
func ParseTOML(b Builder, data []byte) (Builder, error) {
	var f fileOptions

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&f); err != nil {
		return Builder{}, fmt.Errorf("parsing options: %w", err)
	}

	return f.apply(b)
}

func (f fileOptions) apply(b Builder) (Builder, error) {
	if f.OutputDirectory != nil {
		b = b.WithOutputDirectory(*f.OutputDirectory)
	}

	if f.SupportIcarusSimulator != nil {
		b = b.WithIcarusSimulatorSupport(*f.SupportIcarusSimulator)
	}

	if f.IncludeTiming != nil {
		b = b.WithTiming(*f.IncludeTiming)
	}

	if f.IncludeSignalInit != nil {
		b = b.WithSignalInit(*f.IncludeSignalInit)
	}

	if f.ExplicitPortMapping != nil {
		b = b.WithExplicitPortMapping(*f.ExplicitPortMapping)
	}

	if f.CompressRouting != nil {
		b = b.WithCompressRouting(*f.CompressRouting)
	}

	if f.VerboseOutput != nil {
		b = b.WithVerboseOutput(*f.VerboseOutput)
	}

	if f.SRAMOrganization != nil {
		org, err := sram.ParseOrganization(*f.SRAMOrganization)
		if err != nil {
			return Builder{}, err
		}

		b = b.WithSRAMOrganization(org)
	}

	if f.MaxIdentifierLength != nil {
		b = b.WithMaxIdentifierLength(*f.MaxIdentifierLength)
	}

	if err := b.validate(); err != nil {
		return Builder{}, err
	}

	return b, nil
}

// Environment variables read by ApplyEnv.
const (
	EnvOutputDirectory        = "FABRIC_OUTPUT_DIRECTORY"
	EnvSupportIcarusSimulator = "FABRIC_SUPPORT_ICARUS_SIMULATOR"
	EnvIncludeTiming          = "FABRIC_INCLUDE_TIMING"
	EnvIncludeSignalInit      = "FABRIC_INCLUDE_SIGNAL_INIT"
	EnvExplicitPortMapping    = "FABRIC_EXPLICIT_PORT_MAPPING"
	EnvCompressRouting        = "FABRIC_COMPRESS_ROUTING"
	EnvVerboseOutput          = "FABRIC_VERBOSE_OUTPUT"
	EnvSRAMOrganization       = "FABRIC_SRAM_ORGANIZATION"
	EnvMaxIdentifierLength    = "FABRIC_MAX_IDENTIFIER_LENGTH"
)

// ApplyEnvFile applies the FABRIC_* variables of a .env file to a builder.
// Variables of the process environment take precedence over the file.
func ApplyEnvFile(b Builder, path string) (Builder, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Builder{}, fmt.Errorf("reading %s: %w", path, err)
	}

	for _, key := range envKeys() {
		if v, found := os.LookupEnv(key); found {
			vars[key] = v
		}
	}

	return applyEnv(b, vars)
}

// ApplyEnv applies the FABRIC_* variables of the process environment to a
// builder.
func ApplyEnv(b Builder) (Builder, error) {
	vars := make(map[string]string)

	for _, key := range envKeys() {
		if v, found := os.LookupEnv(key); found {
			vars[key] = v
		}
	}

	return applyEnv(b, vars)
}

func envKeys() []string {
	return []string{
		EnvOutputDirectory,
		EnvSupportIcarusSimulator,
		EnvIncludeTiming,
		EnvIncludeSignalInit,
		EnvExplicitPortMapping,
		EnvCompressRouting,
		EnvVerboseOutput,
		EnvSRAMOrganization,
		EnvMaxIdentifierLength,
	}
}

func applyEnv(b Builder, vars map[string]string) (Builder, error) {
	var f fileOptions

	if v, found := vars[EnvOutputDirectory]; found {
		f.OutputDirectory = &v
	}

	if v, found := vars[EnvSRAMOrganization]; found {
		f.SRAMOrganization = &v
	}

	flags := []struct {
		key    string
		target **bool
	}{
		{EnvSupportIcarusSimulator, &f.SupportIcarusSimulator},
		{EnvIncludeTiming, &f.IncludeTiming},
		{EnvIncludeSignalInit, &f.IncludeSignalInit},
		{EnvExplicitPortMapping, &f.ExplicitPortMapping},
		{EnvCompressRouting, &f.CompressRouting},
		{EnvVerboseOutput, &f.VerboseOutput},
	}

	for _, flag := range flags {
		v, found := vars[flag.key]
		if !found {
			continue
		}

		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Builder{}, fmt.Errorf("%s: %w", flag.key, err)
		}

		*flag.target = &enabled
	}

	if v, found := vars[EnvMaxIdentifierLength]; found {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Builder{}, fmt.Errorf("%s: %w", EnvMaxIdentifierLength, err)
		}

		f.MaxIdentifierLength = &n
	}

	return f.apply(b)
}
