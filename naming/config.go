package naming

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/circuitlib"
	"github.com/sarchlab/fabricnaming/sram"
)

// Fixed port names of the configuration infrastructure.
const (
	ConfigChainHeadName            = "ccff_head"
	ConfigChainTailName            = "ccff_tail"
	ConfigChainDataOutName         = "mem_out"
	ConfigChainInvertedDataOutName = "mem_outb"
	MuxLocalDecoderAddrPortName    = "addr"
	MuxLocalDecoderDataPortName    = "data"
	MuxLocalDecoderDataInvPortName = "data_inv"
	LocalConfigBusPortName         = "config_bus"
)

func invalidRole(org sram.Organization, role sram.PortRole, sramName string) {
	log.Panicf("port role %s is not valid for SRAM %s under the %s organization",
		role, sramName, org)
}

// SRAMPortName returns the name of an SRAM port that appears in the port
// list of a module. The vocabulary depends on the organization:
//
//	standalone:  input => <sram>_out,       output => <sram>_outb
//	scan-chain:  head  => <sram>_ccff_head, tail   => <sram>_ccff_tail
//	memory-bank: <sram>_bl, <sram>_wl, <sram>_blb, <sram>_wlb
//
// A role that the organization does not have is a programming error.
func (s *Synthesizer) SRAMPortName(
	org sram.Organization,
	sramModel circuitlib.ModelID,
	role sram.PortRole,
) string {
	sramName := s.lib.ModelName(sramModel)
	name := sramName + "_"

	switch org {
	case sram.Standalone:
		switch role {
		case sram.RoleInput:
			name += "out"
		case sram.RoleOutput:
			name += "outb"
		default:
			invalidRole(org, role, sramName)
		}
	case sram.ScanChain:
		switch role {
		case sram.RoleHead:
			name += "ccff_head"
		case sram.RoleTail:
			name += "ccff_tail"
		default:
			invalidRole(org, role, sramName)
		}
	case sram.MemoryBank:
		switch role {
		case sram.RoleBL:
			name += "bl"
		case sram.RoleWL:
			name += "wl"
		case sram.RoleBLB:
			name += "blb"
		case sram.RoleWLB:
			name += "wlb"
		default:
			invalidRole(org, role, sramName)
		}
	default:
		log.Panicf("invalid SRAM organization %s", org)
	}

	return s.bound(name)
}

// SRAMLocalPortName returns the name of an SRAM bus that is an internal wire
// of a module. Scan chains use separate buses for the input, the output and
// the inverted output of their flip-flops.
func (s *Synthesizer) SRAMLocalPortName(
	org sram.Organization,
	sramModel circuitlib.ModelID,
	role sram.PortRole,
) string {
	sramName := s.lib.ModelName(sramModel)
	name := sramName + "_"

	switch org {
	case sram.Standalone, sram.MemoryBank:
		switch role {
		case sram.RoleInput:
			name += "out_local_bus"
		case sram.RoleOutput:
			name += "outb_local_bus"
		default:
			invalidRole(org, role, sramName)
		}
	case sram.ScanChain:
		switch role {
		case sram.RoleInput:
			name += "ccff_in_local_bus"
		case sram.RoleOutput:
			name += "ccff_out_local_bus"
		case sram.RoleInOut:
			name += "ccff_outb_local_bus"
		default:
			invalidRole(org, role, sramName)
		}
	default:
		log.Panicf("invalid SRAM organization %s", org)
	}

	return s.bound(name)
}

// LocalSRAMPortName returns the name of the local wires that connect the
// SRAM ports of one instance of a circuit inside a module. All the
// organizations share this convention.
func (s *Synthesizer) LocalSRAMPortName(
	prefix string,
	instanceID int,
	role sram.PortRole,
) string {
	indexMustNotBeNegative("SRAM instance id", instanceID)

	name := prefix + "_" + strconv.Itoa(instanceID) + "_"

	switch role {
	case sram.RoleInput:
		name += "out"
	case sram.RoleOutput:
		name += "outb"
	default:
		log.Panicf("port role %s is not valid for local SRAM port %s",
			role, prefix)
	}

	return s.bound(name)
}

// ReservedSRAMPortName returns the name of a reserved BLB or WL port.
//
// Whether the organization uses reserved ports is checked by the writers,
// not here.
func ReservedSRAMPortName(role sram.PortRole) string {
	switch role {
	case sram.RoleBLB:
		return "reserved_blb"
	case sram.RoleWL:
		return "reserved_wl"
	default:
		log.Panicf("port role %s has no reserved SRAM port", role)
	}

	panic("unreachable")
}

// FormalVerificationSRAMPortName returns the name of the SRAM port used in
// formal verification netlists.
func (s *Synthesizer) FormalVerificationSRAMPortName(
	sramModel circuitlib.ModelID,
) string {
	return s.bound(s.lib.ModelName(sramModel) + "_out_fm")
}
