package options

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/naming"
	"github.com/sarchlab/fabricnaming/sram"
)

// Builder can build Fabric options.
type Builder struct {
	opts Fabric
}

// MakeBuilder creates a builder with the default options: the current
// directory as output, scan-chain configuration and the default identifier
// length limit.
func MakeBuilder() Builder {
	return Builder{
		opts: Fabric{
			outputDirectory:     ".",
			sramOrganization:    sram.ScanChain,
			maxIdentifierLength: naming.DefaultMaxIdentifierLength,
		},
	}
}

// MakeBuilderFrom creates a builder that starts from existing options.
func MakeBuilderFrom(opts Fabric) Builder {
	return Builder{opts: opts}
}

// WithOutputDirectory sets where netlists are written.
func (b Builder) WithOutputDirectory(dir string) Builder {
	b.opts.outputDirectory = dir
	return b
}

// WithIcarusSimulatorSupport sets if netlists must be compatible with the
// Icarus simulator.
func (b Builder) WithIcarusSimulatorSupport(enabled bool) Builder {
	b.opts.supportIcarusSimulator = enabled
	return b
}

// WithTiming sets if timing annotations are written.
func (b Builder) WithTiming(enabled bool) Builder {
	b.opts.includeTiming = enabled
	return b
}

// WithSignalInit sets if signal initialization is written.
func (b Builder) WithSignalInit(enabled bool) Builder {
	b.opts.includeSignalInit = enabled
	return b
}

// WithExplicitPortMapping sets if module instances map ports by name.
func (b Builder) WithExplicitPortMapping(enabled bool) Builder {
	b.opts.explicitPortMapping = enabled
	return b
}

// WithCompressRouting sets if identical routing blocks share one module.
func (b Builder) WithCompressRouting(enabled bool) Builder {
	b.opts.compressRouting = enabled
	return b
}

// WithVerboseOutput sets if the run logs details.
func (b Builder) WithVerboseOutput(enabled bool) Builder {
	b.opts.verboseOutput = enabled
	return b
}

// WithSRAMOrganization sets the organization of configuration memories.
func (b Builder) WithSRAMOrganization(org sram.Organization) Builder {
	b.opts.sramOrganization = org
	return b
}

// WithMaxIdentifierLength sets the length above which names are shortened.
func (b Builder) WithMaxIdentifierLength(n int) Builder {
	b.opts.maxIdentifierLength = n
	return b
}

// validate reports the first invalid option.
func (b Builder) validate() error {
	if b.opts.outputDirectory == "" {
		return errors.New("output directory must not be empty")
	}

	if !b.opts.sramOrganization.Valid() {
		return fmt.Errorf("invalid SRAM organization %s", b.opts.sramOrganization)
	}

	n := b.opts.maxIdentifierLength
	if n != 0 && n < naming.MinMaxIdentifierLength {
		return fmt.Errorf("max identifier length must be 0 or at least %d, got %d",
			naming.MinMaxIdentifierLength, n)
	}

	return nil
}

func (b Builder) parametersMustBeValid() {
	if err := b.validate(); err != nil {
		log.Panic(err)
	}
}

// Build validates and returns the options.
func (b Builder) Build() Fabric {
	b.parametersMustBeValid()
	return b.opts
}
