// Package pbtype stores the physical block hierarchy of a tile as an arena
// of blocks and modes addressed by index.
//
// A block may have several modes, and each mode holds child blocks. A block
// created by AddChild always has a parent mode, and a mode always has a
// parent block, so the parent chain of every block is finite.
package pbtype

import (
	log "github.com/sirupsen/logrus"
)

// BlockID identifies a physical block in an Arena.
type BlockID int

// ModeID identifies a mode in an Arena.
type ModeID int

// PortID identifies a physical block port in an Arena.
type PortID int

// PortType is the type of a physical block port.
type PortType int

// Port types.
const (
	PortInput PortType = iota
	PortOutput
	PortClock
)

func (t PortType) String() string {
	switch t {
	case PortInput:
		return "input"
	case PortOutput:
		return "output"
	case PortClock:
		return "clock"
	default:
		log.Panicf("invalid port type %d", int(t))
	}

	panic("unreachable")
}

type block struct {
	name       string
	parentMode ModeID
	modes      []ModeID
	ports      []PortID
}

type mode struct {
	name        string
	parentBlock BlockID
	children    []BlockID
}

type port struct {
	name   string
	typ    PortType
	width  int
	parent BlockID
}

const noMode ModeID = -1

// An Arena owns the blocks, modes and ports of one or more block trees.
type Arena struct {
	blocks []block
	modes  []mode
	ports  []port
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// AddRoot adds a top-level block.
func (a *Arena) AddRoot(name string) BlockID {
	return a.addBlock(name, noMode)
}

// AddMode adds a mode to a block.
func (a *Arena) AddMode(parent BlockID, name string) ModeID {
	b := a.mustFindBlock(parent)

	if name == "" {
		log.Panicf("mode of block %s must have a name", b.name)
	}

	for _, m := range b.modes {
		if a.modes[m].name == name {
			log.Panicf("block %s already has mode %s", b.name, name)
		}
	}

	id := ModeID(len(a.modes))
	a.modes = append(a.modes, mode{name: name, parentBlock: parent})
	b.modes = append(b.modes, id)

	return id
}

// AddChild adds a block under a mode. Sibling blocks have distinct names.
func (a *Arena) AddChild(parent ModeID, name string) BlockID {
	m := a.mustFindMode(parent)

	for _, c := range m.children {
		if a.blocks[c].name == name {
			log.Panicf("mode %s already has block %s", m.name, name)
		}
	}

	id := a.addBlock(name, parent)
	m = &a.modes[parent]
	m.children = append(m.children, id)

	return id
}

// AddPort adds a port to a block.
func (a *Arena) AddPort(
	parent BlockID,
	name string,
	typ PortType,
	width int,
) PortID {
	b := a.mustFindBlock(parent)

	if name == "" {
		log.Panicf("port of block %s must have a name", b.name)
	}

	if width <= 0 {
		log.Panicf("port %s of block %s must have a positive width",
			name, b.name)
	}

	id := PortID(len(a.ports))
	a.ports = append(a.ports,
		port{name: name, typ: typ, width: width, parent: parent})
	b.ports = append(b.ports, id)

	return id
}

func (a *Arena) addBlock(name string, parentMode ModeID) BlockID {
	if name == "" {
		log.Panicf("physical block must have a name")
	}

	id := BlockID(len(a.blocks))
	a.blocks = append(a.blocks, block{name: name, parentMode: parentMode})

	return id
}

// NumBlocks returns the number of blocks in the arena.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// BlockName returns the name of a block.
func (a *Arena) BlockName(id BlockID) string {
	return a.mustFindBlock(id).name
}

// ParentMode returns the mode that contains a block. The second return
// value is false for root blocks.
func (a *Arena) ParentMode(id BlockID) (ModeID, bool) {
	b := a.mustFindBlock(id)
	if b.parentMode == noMode {
		return noMode, false
	}

	return b.parentMode, true
}

// IsRoot tells if a block is a top-level block.
func (a *Arena) IsRoot(id BlockID) bool {
	_, hasParent := a.ParentMode(id)
	return !hasParent
}

// Modes returns the modes of a block.
func (a *Arena) Modes(id BlockID) []ModeID {
	return a.mustFindBlock(id).modes
}

// Ports returns the ports of a block.
func (a *Arena) Ports(id BlockID) []PortID {
	return a.mustFindBlock(id).ports
}

// Roots returns all the top-level blocks.
func (a *Arena) Roots() []BlockID {
	var roots []BlockID

	for i, b := range a.blocks {
		if b.parentMode == noMode {
			roots = append(roots, BlockID(i))
		}
	}

	return roots
}

// ModeName returns the name of a mode.
func (a *Arena) ModeName(id ModeID) string {
	return a.mustFindMode(id).name
}

// ModeParent returns the block that owns a mode.
func (a *Arena) ModeParent(id ModeID) BlockID {
	return a.mustFindMode(id).parentBlock
}

// Children returns the blocks under a mode.
func (a *Arena) Children(id ModeID) []BlockID {
	return a.mustFindMode(id).children
}

// PortName returns the name of a port.
func (a *Arena) PortName(id PortID) string {
	return a.mustFindPort(id).name
}

// PortType returns the type of a port.
func (a *Arena) PortType(id PortID) PortType {
	return a.mustFindPort(id).typ
}

// PortWidth returns the number of pins of a port.
func (a *Arena) PortWidth(id PortID) int {
	return a.mustFindPort(id).width
}

// PortParent returns the block that owns a port.
func (a *Arena) PortParent(id PortID) BlockID {
	return a.mustFindPort(id).parent
}

// Walk visits every block of the tree rooted at root in depth-first order,
// parents before children.
func (a *Arena) Walk(root BlockID, visit func(BlockID)) {
	stack := []BlockID{root}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(id)

		modes := a.Modes(id)
		for i := len(modes) - 1; i >= 0; i-- {
			children := a.Children(modes[i])
			for j := len(children) - 1; j >= 0; j-- {
				stack = append(stack, children[j])
			}
		}
	}
}

func (a *Arena) mustFindBlock(id BlockID) *block {
	if id < 0 || int(id) >= len(a.blocks) {
		log.Panicf("physical block %d does not exist", int(id))
	}

	return &a.blocks[id]
}

func (a *Arena) mustFindMode(id ModeID) *mode {
	if id < 0 || int(id) >= len(a.modes) {
		log.Panicf("mode %d does not exist", int(id))
	}

	return &a.modes[id]
}

func (a *Arena) mustFindPort(id PortID) *port {
	if id < 0 || int(id) >= len(a.ports) {
		log.Panicf("physical block port %d does not exist", int(id))
	}

	return &a.ports[id]
}
