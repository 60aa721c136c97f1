package fabric

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Side defines one of the four sides of a tile. The numeric value of a side
// is its code in flat port names.
type Side int

// All the sides of a tile, in code order.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

// NumSides is the number of sides of a tile.
const NumSides = 4

// Sides lists all the sides in code order.
func Sides() []Side {
	return []Side{Top, Right, Bottom, Left}
}

// String returns the canonical short name of the side. Use MustBeValid
// before putting the name into an identifier.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Code returns the numeric code of the side.
func (s Side) Code() int {
	s.MustBeValid()
	return int(s)
}

// Opposite returns the side facing s.
func (s Side) Opposite() Side {
	s.MustBeValid()
	return (s + 2) % NumSides
}

// MustBeValid panics if s is not one of the four sides.
func (s Side) MustBeValid() {
	if s < Top || s > Left {
		log.Panicf("invalid side %d", int(s))
	}
}

// ParseSide converts a side name, in any letter case, to a Side.
func ParseSide(name string) (Side, error) {
	for _, s := range Sides() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}

	return Top, fmt.Errorf("unknown side %q", name)
}
