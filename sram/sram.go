// Package sram defines how configuration memories are organized in a fabric
// and which roles their ports can play.
package sram

import (
	"fmt"
	"strings"
)

// Organization is the scheme used to connect configuration memories. One
// organization applies to a whole generation run. The zero value is not a
// valid organization.
type Organization int

// SRAM organizations.
const (
	OrganizationInvalid Organization = iota
	Standalone
	ScanChain
	MemoryBank
)

func (o Organization) String() string {
	switch o {
	case Standalone:
		return "standalone"
	case ScanChain:
		return "scan-chain"
	case MemoryBank:
		return "memory-bank"
	default:
		return fmt.Sprintf("Organization(%d)", int(o))
	}
}

// Valid tells if o is one of the known organizations.
func (o Organization) Valid() bool {
	return o >= Standalone && o <= MemoryBank
}

// ParseOrganization accepts the names printed by String, and the same names
// with underscores.
func ParseOrganization(name string) (Organization, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "_", "-") {
	case "standalone":
		return Standalone, nil
	case "scan-chain", "scanchain":
		return ScanChain, nil
	case "memory-bank", "memorybank":
		return MemoryBank, nil
	default:
		return OrganizationInvalid,
			fmt.Errorf("unknown SRAM organization %q", name)
	}
}

// PortRole is the role of a configuration memory port. The meaning of input
// and output depends on the organization: regular and inverted outputs for
// standalone memories, head and tail for scan chains.
type PortRole int

// Port roles.
const (
	RoleInvalid PortRole = iota
	RoleInput
	RoleOutput
	RoleInOut
	RoleBL
	RoleWL
	RoleBLB
	RoleWLB
)

// Scan-chain aliases.
const (
	RoleHead = RoleInput
	RoleTail = RoleOutput
)

func (r PortRole) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	case RoleInOut:
		return "inout"
	case RoleBL:
		return "bl"
	case RoleWL:
		return "wl"
	case RoleBLB:
		return "blb"
	case RoleWLB:
		return "wlb"
	default:
		return fmt.Sprintf("PortRole(%d)", int(r))
	}
}

// ParseRole accepts the names printed by String plus "head" and "tail".
func ParseRole(name string) (PortRole, error) {
	switch strings.ToLower(name) {
	case "input", "in", "head":
		return RoleInput, nil
	case "output", "out", "tail":
		return RoleOutput, nil
	case "inout":
		return RoleInOut, nil
	case "bl":
		return RoleBL, nil
	case "wl":
		return RoleWL, nil
	case "blb":
		return RoleBLB, nil
	case "wlb":
		return RoleWLB, nil
	default:
		return RoleInvalid, fmt.Errorf("unknown SRAM port role %q", name)
	}
}

// PortRoles returns the roles that module-level SRAM ports can play under
// the organization.
func (o Organization) PortRoles() []PortRole {
	switch o {
	case Standalone, ScanChain:
		return []PortRole{RoleInput, RoleOutput}
	case MemoryBank:
		return []PortRole{RoleBL, RoleWL, RoleBLB, RoleWLB}
	default:
		return nil
	}
}

// LocalPortRoles returns the roles that SRAM local buses can play under the
// organization.
func (o Organization) LocalPortRoles() []PortRole {
	switch o {
	case Standalone, MemoryBank:
		return []PortRole{RoleInput, RoleOutput}
	case ScanChain:
		return []PortRole{RoleInput, RoleOutput, RoleInOut}
	default:
		return nil
	}
}
