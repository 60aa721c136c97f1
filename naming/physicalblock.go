package naming

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/pbtype"
)

// PhysicalBlockModuleName returns the module name of a physical block. The
// name traces the block back to its top-level block, so that it is unique
// in the whole architecture:
//
//	<prefix><root>_mode[<mode>]_<block>_mode[<mode>]_..._<block>
//
// A top-level block gets a mode named after itself, which keeps the same
// shape as nested blocks and sets it apart from grid module names.
func (s *Synthesizer) PhysicalBlockModuleName(
	prefix string,
	arena *pbtype.Arena,
	block pbtype.BlockID,
) string {
	name := arena.BlockName(block)
	componentMustBeValid("block", name)

	current := block
	for {
		mode, hasParent := arena.ParentMode(current)
		if !hasParent {
			break
		}

		modeName := arena.ModeName(mode)
		componentMustBeValid("mode", modeName)
		name = "mode[" + modeName + "]_" + name

		current = arena.ModeParent(mode)
		parentName := arena.BlockName(current)
		componentMustBeValid("block", parentName)
		name = parentName + "_" + name
	}

	if arena.IsRoot(block) {
		name += "_mode[" + arena.BlockName(block) + "]"
	}

	return s.bound(prefix + name)
}

// PhysicalBlockPortName returns the name of a port of a physical block.
func (s *Synthesizer) PhysicalBlockPortName(
	arena *pbtype.Arena,
	port pbtype.PortID,
) string {
	return s.bound(arena.PortName(port))
}

// componentMustBeValid panics if a block or mode name could make two
// hierarchical names alias each other. Brackets only appear around mode
// names.
func componentMustBeValid(kind, name string) {
	IdentifierMustBeValid(name)

	if strings.ContainsAny(name, "[]") {
		log.Panicf("%s name %q must not contain brackets", kind, name)
	}
}
