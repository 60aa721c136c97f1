package fabric

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ChanType tells whether a routing channel runs horizontally or vertically.
// The zero value is not a valid channel type.
type ChanType int

// Channel types.
const (
	ChanTypeInvalid ChanType = iota
	ChanX
	ChanY
)

// Prefix returns the name prefix of the channel type.
func (t ChanType) Prefix() string {
	switch t {
	case ChanX:
		return "chanx"
	case ChanY:
		return "chany"
	default:
		log.Panicf("invalid channel type %d", int(t))
	}

	panic("unreachable")
}

func (t ChanType) String() string {
	switch t {
	case ChanX:
		return "CHANX"
	case ChanY:
		return "CHANY"
	default:
		return fmt.Sprintf("ChanType(%d)", int(t))
	}
}

// ParseChanType accepts "x", "chanx", "y" and "chany" in any letter case.
func ParseChanType(name string) (ChanType, error) {
	switch strings.ToLower(name) {
	case "x", "chanx":
		return ChanX, nil
	case "y", "chany":
		return ChanY, nil
	default:
		return ChanTypeInvalid, fmt.Errorf("unknown channel type %q", name)
	}
}
