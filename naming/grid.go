package naming

import (
	"strconv"

	"github.com/sarchlab/fabricnaming/fabric"
	"github.com/sarchlab/fabricnaming/pbtype"
)

// GridPortName returns the name of a pin of a grid. The top-level netlist
// refers to pins of many grids and encodes the location of the grid. Inside
// the netlist of a grid, the location is irrelevant and the side is spelled
// out.
func (s *Synthesizer) GridPortName(
	p fabric.Point,
	height int,
	side fabric.Side,
	pinID int,
	forTopNetlist bool,
) string {
	indexMustNotBeNegative("grid height", height)
	indexMustNotBeNegative("pin id", pinID)
	side.MustBeValid()

	if forTopNetlist {
		return s.bound("grid_" + coordinate(p, "__") +
			"__pin_" + strconv.Itoa(height) +
			"__" + strconv.Itoa(side.Code()) +
			"__" + strconv.Itoa(pinID) + "_")
	}

	return s.bound(side.String() +
		"_height_" + strconv.Itoa(height) +
		"__pin_" + strconv.Itoa(pinID) + "_")
}

// GridBlockPrefix returns the module name prefix of a grid on an I/O side.
func (s *Synthesizer) GridBlockPrefix(prefix string, ioSide fabric.Side) string {
	ioSide.MustBeValid()
	return s.bound(prefix + ioSide.String() + "_")
}

// GridBlockNetlistName returns the netlist name of a grid block. I/O blocks
// carry the side of the device they sit on.
func (s *Synthesizer) GridBlockNetlistName(
	blockName string,
	isIO bool,
	ioSide fabric.Side,
	postfix string,
) string {
	name := blockName
	if isIO {
		ioSide.MustBeValid()
		name += "_" + ioSide.String()
	}

	return s.bound(name + postfix)
}

// GridBlockModuleName returns the module name of a grid block.
func (s *Synthesizer) GridBlockModuleName(
	prefix string,
	blockName string,
	isIO bool,
	ioSide fabric.Side,
) string {
	return s.bound(prefix + s.GridBlockNetlistName(blockName, isIO, ioSide, ""))
}

// GridPhysicalBlockModuleName returns the module name of a physical block
// used in a core grid.
func (s *Synthesizer) GridPhysicalBlockModuleName(
	prefix string,
	arena *pbtype.Arena,
	block pbtype.BlockID,
) string {
	return s.PhysicalBlockModuleName(prefix, arena, block)
}

// BorderGridPhysicalBlockModuleName returns the module name of a physical
// block used in a grid on a border of the device. The border side becomes
// part of the prefix.
func (s *Synthesizer) BorderGridPhysicalBlockModuleName(
	prefix string,
	arena *pbtype.Arena,
	block pbtype.BlockID,
	borderSide fabric.Side,
) string {
	return s.PhysicalBlockModuleName(
		s.GridBlockPrefix(prefix, borderSide), arena, block)
}
