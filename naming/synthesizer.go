// Package naming synthesizes the module, instance and port names of a
// generated FPGA fabric.
//
// Every name is a pure function of its inputs and of the circuit library, so
// the Verilog and SPICE writers obtain identical names for identical
// entities. Invalid tags and handles are programming errors; they are
// reported through the logger and then panic.
package naming

import (
	"github.com/sarchlab/fabricnaming/circuitlib"
)

// DefaultMaxIdentifierLength is the identifier length limit used when the
// builder is not told otherwise.
const DefaultMaxIdentifierLength = 1024

// MinMaxIdentifierLength is the smallest accepted identifier length limit.
const MinMaxIdentifierLength = 32

// A Synthesizer produces names. It only reads its circuit library and can be
// shared by any number of goroutines.
type Synthesizer struct {
	lib    circuitlib.Library
	maxLen int
}

// Library returns the circuit library the synthesizer resolves models
// against.
func (s *Synthesizer) Library() circuitlib.Library {
	return s.lib
}

// MaxIdentifierLength returns the identifier length limit. Zero means no
// limit.
func (s *Synthesizer) MaxIdentifierLength() int {
	return s.maxLen
}

func (s *Synthesizer) bound(name string) string {
	return shorten(name, s.maxLen)
}
