package naming

import (
	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/circuitlib"
)

// Builder can build synthesizers.
type Builder struct {
	lib    circuitlib.Library
	maxLen int
}

// MakeBuilder creates a new builder with the default identifier length
// limit.
func MakeBuilder() Builder {
	return Builder{
		maxLen: DefaultMaxIdentifierLength,
	}
}

// WithLibrary sets the circuit library that model identifiers resolve
// against.
func (b Builder) WithLibrary(lib circuitlib.Library) Builder {
	b.lib = lib
	return b
}

// WithMaxIdentifierLength sets the length above which names are shortened.
// Zero disables shortening.
func (b Builder) WithMaxIdentifierLength(n int) Builder {
	b.maxLen = n
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.lib == nil {
		log.Panic("a circuit library is required to build a synthesizer")
	}

	if b.maxLen != 0 && b.maxLen < MinMaxIdentifierLength {
		log.Panicf("max identifier length must be 0 or at least %d, got %d",
			MinMaxIdentifierLength, b.maxLen)
	}
}

// Build creates the synthesizer.
func (b Builder) Build() *Synthesizer {
	b.parametersMustBeValid()

	return &Synthesizer{
		lib:    b.lib,
		maxLen: b.maxLen,
	}
}
