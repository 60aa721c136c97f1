// Package options holds the switches of a fabric generation run. The naming
// layer and the netlist writers only read them.
package options

import (
	"github.com/sarchlab/fabricnaming/sram"
)

// Fabric is the set of options of one fabric generation run.
type Fabric struct {
	outputDirectory        string
	supportIcarusSimulator bool
	includeTiming          bool
	includeSignalInit      bool
	explicitPortMapping    bool
	compressRouting        bool
	verboseOutput          bool
	sramOrganization       sram.Organization
	maxIdentifierLength    int
}

// OutputDirectory returns where netlists are written.
func (f Fabric) OutputDirectory() string {
	return f.outputDirectory
}

// SupportIcarusSimulator tells if netlists must be compatible with the
// Icarus simulator.
func (f Fabric) SupportIcarusSimulator() bool {
	return f.supportIcarusSimulator
}

// IncludeTiming tells if timing annotations are written.
func (f Fabric) IncludeTiming() bool {
	return f.includeTiming
}

// IncludeSignalInit tells if signal initialization is written.
func (f Fabric) IncludeSignalInit() bool {
	return f.includeSignalInit
}

// ExplicitPortMapping tells if module instances map ports by name.
func (f Fabric) ExplicitPortMapping() bool {
	return f.explicitPortMapping
}

// CompressRouting tells if identical routing blocks share one module.
func (f Fabric) CompressRouting() bool {
	return f.compressRouting
}

// VerboseOutput tells if the run logs details.
func (f Fabric) VerboseOutput() bool {
	return f.verboseOutput
}

// SRAMOrganization returns the organization of the configuration memories.
func (f Fabric) SRAMOrganization() sram.Organization {
	return f.sramOrganization
}

// MaxIdentifierLength returns the length above which names are shortened.
func (f Fabric) MaxIdentifierLength() int {
	return f.maxIdentifierLength
}
