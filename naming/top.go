package naming

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/circuitlib"
)

const fpgaTopModuleName = "fpga_top"

// FPGATopModuleName returns the name of the top-level module of the fabric.
func FPGATopModuleName() string {
	return fpgaTopModuleName
}

// FPGATopNetlistName returns the name of the netlist that holds the
// top-level module.
func FPGATopNetlistName(postfix string) string {
	return fpgaTopModuleName + postfix
}

func constValueMustBeBinary(v int) {
	if v != 0 && v != 1 {
		log.Panicf("constant value must be 0 or 1, got %d", v)
	}
}

// ConstValueModuleName returns the name of the module that drives a
// constant logic value.
func ConstValueModuleName(v int) string {
	constValueMustBeBinary(v)
	return "const" + strconv.Itoa(v)
}

// ConstValueModuleOutputPortName returns the name of the output of a
// constant module.
func ConstValueModuleOutputPortName(v int) string {
	constValueMustBeBinary(v)
	return "const" + strconv.Itoa(v)
}

// FPGAGlobalIOPortName returns the name of a global I/O port of the fabric
// that is driven by a circuit model.
func (s *Synthesizer) FPGAGlobalIOPortName(
	prefix string,
	model circuitlib.ModelID,
) string {
	return s.bound(prefix + s.lib.ModelName(model))
}
