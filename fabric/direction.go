package fabric

import (
	"fmt"
	"strings"
)

// PortDirection is the direction of a routing-track port. The zero value is
// not a valid direction.
type PortDirection int

// Port directions.
const (
	DirectionInvalid PortDirection = iota
	In
	Out
)

func (d PortDirection) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("PortDirection(%d)", int(d))
	}
}

// ParseDirection accepts "in" and "out" in any letter case.
func ParseDirection(name string) (PortDirection, error) {
	switch strings.ToLower(name) {
	case "in", "input":
		return In, nil
	case "out", "output":
		return Out, nil
	default:
		return DirectionInvalid, fmt.Errorf("unknown port direction %q", name)
	}
}
