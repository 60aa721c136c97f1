package circuitlib

import (
	"fmt"
	"strings"
)

// ModelKind is the type of a circuit model.
type ModelKind int

// Circuit model kinds.
const (
	KindInvalid ModelKind = iota
	KindChanWire
	KindWire
	KindMux
	KindLUT
	KindFF
	KindSRAM
	KindHardLogic
	KindCCFF
	KindIOPad
	KindInvBuf
	KindPassGate
	KindGate
)

var kindNames = map[ModelKind]string{
	KindChanWire:  "chan_wire",
	KindWire:      "wire",
	KindMux:       "mux",
	KindLUT:       "lut",
	KindFF:        "ff",
	KindSRAM:      "sram",
	KindHardLogic: "hard_logic",
	KindCCFF:      "ccff",
	KindIOPad:     "iopad",
	KindInvBuf:    "inv_buf",
	KindPassGate:  "pass_gate",
	KindGate:      "gate",
}

func (k ModelKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ModelKind(%d)", int(k))
}

// ParseModelKind converts a kind name, as printed by String, to a ModelKind.
func ParseModelKind(name string) (ModelKind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}

	return KindInvalid, fmt.Errorf("unknown circuit model type %q", name)
}

// GateKind is the logic function of a gate model.
type GateKind int

// Gate kinds.
const (
	GateInvalid GateKind = iota
	GateAnd
	GateOr
	GateMux2
)

var gateNames = map[GateKind]string{
	GateAnd:  "AND",
	GateOr:   "OR",
	GateMux2: "MUX2",
}

func (g GateKind) String() string {
	if name, ok := gateNames[g]; ok {
		return name
	}

	return fmt.Sprintf("GateKind(%d)", int(g))
}

// ParseGateKind converts a gate name, in any letter case, to a GateKind.
func ParseGateKind(name string) (GateKind, error) {
	for g, n := range gateNames {
		if strings.EqualFold(n, name) {
			return g, nil
		}
	}

	return GateInvalid, fmt.Errorf("unknown gate type %q", name)
}
