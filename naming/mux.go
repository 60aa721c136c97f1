package naming

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/circuitlib"
	"github.com/sarchlab/fabricnaming/sram"
)

// MuxNodeName returns the name of the nodes at one level of a multiplexing
// structure, mux_l<level>_in, with a _buf postfix if the nodes drive an
// intermediate buffer.
func MuxNodeName(level int, buffered bool) string {
	indexMustNotBeNegative("mux level", level)

	name := "mux_l" + strconv.Itoa(level) + "_in"
	if buffered {
		name += "_buf"
	}

	return name
}

// MuxBranchInstanceName returns the instance name of a branch circuit at a
// level of a multiplexing structure.
func MuxBranchInstanceName(level, index int, buffered bool) string {
	indexMustNotBeNegative("mux branch index", index)
	return MuxNodeName(level, buffered) + "_" + strconv.Itoa(index) + "_"
}

// MuxModuleName returns the module name of a multiplexer. Multiplexers are
// named <model>_size<size>, while LUTs, whose internal multiplexer has a
// size fixed by the LUT, are named <model>_mux. The postfix is appended
// verbatim.
func (s *Synthesizer) MuxModuleName(
	model circuitlib.ModelID,
	size int,
	postfix string,
) string {
	indexMustNotBeNegative("mux size", size)

	name := s.lib.ModelName(model)

	switch kind := s.lib.ModelType(model); kind {
	case circuitlib.KindMux:
		name += "_size" + strconv.Itoa(size)
	case circuitlib.KindLUT:
		name += "_mux"
	default:
		log.Panicf("circuit model %s is a %s; only mux and lut models "+
			"have multiplexer names", name, kind)
	}

	return s.bound(name + postfix)
}

// MuxBranchModuleName returns the module name of a branch of a multiplexer.
// When the pass gates of the multiplexer are MUX2 standard cells, the branch
// is the standard cell itself.
func (s *Synthesizer) MuxBranchModuleName(
	model circuitlib.ModelID,
	size, branchSize int,
	postfix string,
) string {
	indexMustNotBeNegative("mux size", size)
	indexMustNotBeNegative("mux branch size", branchSize)

	passGate := s.lib.PassGateLogicModel(model)
	if s.lib.ModelType(passGate) == circuitlib.KindGate {
		gate := s.lib.GateType(passGate)
		if gate != circuitlib.GateMux2 {
			log.Panicf("pass gate %s of multiplexer %s is a %s gate; "+
				"only MUX2 gates can implement a branch",
				s.lib.ModelName(passGate), s.lib.ModelName(model), gate)
		}

		return s.lib.ModelName(passGate)
	}

	branchPostfix := "_size" + strconv.Itoa(branchSize) + postfix

	return s.MuxModuleName(model, size, branchPostfix)
}

// LocalDecoderModuleName returns the module name of the local decoder of a
// multiplexer.
func LocalDecoderModuleName(addrSize, dataSize int) string {
	indexMustNotBeNegative("decoder address size", addrSize)
	indexMustNotBeNegative("decoder data size", dataSize)

	return "decoder" + strconv.Itoa(addrSize) + "to" + strconv.Itoa(dataSize)
}

// SegmentWireModuleName returns the module name of a routing track wire of a
// segment type.
func (s *Synthesizer) SegmentWireModuleName(
	wireModelName string,
	segmentID int,
) string {
	indexMustNotBeNegative("segment id", segmentID)

	return s.bound(wireModelName + "_seg" + strconv.Itoa(segmentID))
}

// SegmentWireMidOutputName returns the name of the output of a routing track
// wire that feeds connection block multiplexers, as opposed to the regular
// output that feeds the next switch block.
func (s *Synthesizer) SegmentWireMidOutputName(regularOutputName string) string {
	return s.bound("mid_" + regularOutputName)
}

// MemoryModuleName returns the module name of the configuration memory of a
// circuit model.
func (s *Synthesizer) MemoryModuleName(
	model, sramModel circuitlib.ModelID,
	postfix string,
) string {
	return s.bound(s.lib.ModelName(model) + "_" +
		s.lib.ModelName(sramModel) + postfix)
}

// MuxInputBusPortName returns the name of the bus that gathers the inputs of
// one multiplexer instance.
func (s *Synthesizer) MuxInputBusPortName(
	model circuitlib.ModelID,
	size, instanceID int,
) string {
	indexMustNotBeNegative("mux instance id", instanceID)

	postfix := "_" + strconv.Itoa(instanceID) + "_inbus"
	return s.MuxModuleName(model, size, postfix)
}

// MuxConfigBusPortName returns the name of a local bus wired to the
// configuration ports of multiplexers. Inverted buses end with _b.
func (s *Synthesizer) MuxConfigBusPortName(
	model circuitlib.ModelID,
	size, busID int,
	inverted bool,
) string {
	indexMustNotBeNegative("config bus id", busID)

	postfix := "_configbus" + strconv.Itoa(busID)
	if inverted {
		postfix += "_b"
	}

	return s.MuxModuleName(model, size, postfix)
}

// MuxSRAMPortName returns the name of the local wires that connect the SRAM
// ports of a multiplexer instance. The name does not depend on the SRAM
// organization.
func (s *Synthesizer) MuxSRAMPortName(
	model circuitlib.ModelID,
	size, instanceID int,
	role sram.PortRole,
) string {
	prefix := s.MuxModuleName(model, size, "")
	return s.LocalSRAMPortName(prefix, instanceID, role)
}
